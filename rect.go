package collide

import "fmt"

// Rect is an axis-aligned rectangle described by its center and half extents.
//
// Coordinates follow the screen convention: Y grows downward, so Top is
// the smaller y value.
type Rect struct {
	Center      Vector
	HalfExtents Vector
}

// NewRect returns a rectangle with the given center and half extents.
// It returns ErrInvalidShape if either half extent is negative.
func NewRect(center, halfExtents Vector) (Rect, error) {
	if halfExtents.X < 0 || halfExtents.Y < 0 {
		return Rect{}, fmt.Errorf("%w: negative half extents %v", ErrInvalidShape, halfExtents)
	}
	return Rect{Center: center, HalfExtents: halfExtents}, nil
}

// RectFromSize returns a rectangle centered at center with the given full
// width and height. It returns ErrInvalidShape for a negative size.
func RectFromSize(center, size Vector) (Rect, error) {
	return NewRect(center, size.Div(2))
}

// Size returns the full width and height.
func (r Rect) Size() Vector { return r.HalfExtents.Mul(2) }

// Left returns the smallest x coordinate.
func (r Rect) Left() float64 { return r.Center.X - r.HalfExtents.X }

// Right returns the largest x coordinate.
func (r Rect) Right() float64 { return r.Center.X + r.HalfExtents.X }

// Top returns the smallest y coordinate.
func (r Rect) Top() float64 { return r.Center.Y - r.HalfExtents.Y }

// Bottom returns the largest y coordinate.
func (r Rect) Bottom() float64 { return r.Center.Y + r.HalfExtents.Y }

// TopLeft returns the corner at (Left, Top).
func (r Rect) TopLeft() Vector { return Vector{X: r.Left(), Y: r.Top()} }

// TopRight returns the corner at (Right, Top).
func (r Rect) TopRight() Vector { return Vector{X: r.Right(), Y: r.Top()} }

// BottomRight returns the corner at (Right, Bottom).
func (r Rect) BottomRight() Vector { return Vector{X: r.Right(), Y: r.Bottom()} }

// BottomLeft returns the corner at (Left, Bottom).
func (r Rect) BottomLeft() Vector { return Vector{X: r.Left(), Y: r.Bottom()} }

// TopEdge runs from TopLeft to TopRight.
func (r Rect) TopEdge() Segment { return Segment{Start: r.TopLeft(), End: r.TopRight()} }

// RightEdge runs from TopRight to BottomRight.
func (r Rect) RightEdge() Segment { return Segment{Start: r.TopRight(), End: r.BottomRight()} }

// BottomEdge runs from BottomLeft to BottomRight.
func (r Rect) BottomEdge() Segment { return Segment{Start: r.BottomLeft(), End: r.BottomRight()} }

// LeftEdge runs from TopLeft to BottomLeft.
func (r Rect) LeftEdge() Segment { return Segment{Start: r.TopLeft(), End: r.BottomLeft()} }

// Corners returns the corners clockwise on screen from the top-left.
func (r Rect) Corners() [4]Vector {
	return [4]Vector{r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft()}
}

// Vertices returns the corners as a slice, in the order of Corners.
func (r Rect) Vertices() []Vector {
	c := r.Corners()
	return c[:]
}

// Edges returns the boundary loop following Corners.
func (r Rect) Edges() [4]Segment {
	var edges [4]Segment
	copy(edges[:], edgesOf(r.Vertices()))
	return edges
}

// Centroid returns the rectangle's center.
func (r Rect) Centroid() Vector { return r.Center }

// Bounds returns r.
func (r Rect) Bounds() Rect { return r }

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Vector) Rect {
	return Rect{Center: r.Center.Add(d), HalfExtents: r.HalfExtents}
}

// Polygon returns the rectangle as a polygon, for transforms that do not
// keep it axis-aligned.
func (r Rect) Polygon() Polygon {
	return Polygon{vertices: r.Vertices()}
}

// Contains reports whether p lies inside the rectangle. The boundary is inside.
func (r Rect) Contains(p Vector) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}

// ClosestPoint returns the point of the rectangle closest to p, clamping
// p's coordinates to the rectangle. Points inside are returned unchanged.
func (r Rect) ClosestPoint(p Vector) Vector {
	return Vector{
		X: max(r.Left(), min(p.X, r.Right())),
		Y: max(r.Top(), min(p.Y, r.Bottom())),
	}
}

// ClosestCorner returns the corner on p's side of the center, chosen
// independently per axis. Within Epsilon of the center the greater side
// (right, bottom) is chosen.
func (r Rect) ClosestCorner(p Vector) Vector {
	c := Vector{X: r.Right(), Y: r.Bottom()}
	if p.X < r.Center.X-Epsilon {
		c.X = r.Left()
	}
	if p.Y < r.Center.Y-Epsilon {
		c.Y = r.Top()
	}
	return c
}

// FarthestCorner returns the corner opposite p's side of the center.
// Within Epsilon of the center the greater side (right, bottom) is chosen,
// so at the exact center FarthestCorner equals ClosestCorner.
func (r Rect) FarthestCorner(p Vector) Vector {
	c := Vector{X: r.Right(), Y: r.Bottom()}
	if p.X > r.Center.X+Epsilon {
		c.X = r.Left()
	}
	if p.Y > r.Center.Y+Epsilon {
		c.Y = r.Top()
	}
	return c
}

// Project returns the rectangle's shadow on axis.
func (r Rect) Project(axis Axis) Segment {
	c := r.Corners()
	return axis.ProjectPoints(c[:]...)
}
