package collide

import "fmt"

// Circle is a disc with a center and a radius.
type Circle struct {
	Center Vector
	Radius float64
}

// NewCircle returns a circle, or ErrInvalidShape for a negative radius.
func NewCircle(center Vector, radius float64) (Circle, error) {
	if radius < 0 {
		return Circle{}, fmt.Errorf("%w: negative radius %v", ErrInvalidShape, radius)
	}
	return Circle{Center: center, Radius: radius}, nil
}

// Contains reports whether p lies strictly inside the circle.
// A point exactly on the circumference is outside, unlike Rect.Contains.
func (c Circle) Contains(p Vector) bool {
	return p.Sub(c.Center).LengthSq() < c.Radius*c.Radius
}

// ClosestPoint returns the point on the circumference along the ray from
// the center through p. It returns ErrDegenerateQuery when p is the center,
// where every circumference point is equally close.
func (c Circle) ClosestPoint(p Vector) (Vector, error) {
	dir, err := p.Sub(c.Center).Normalize()
	if err != nil {
		return Vector{}, ErrDegenerateQuery
	}
	return c.Center.Add(dir.Mul(c.Radius)), nil
}

// Centroid returns the circle's center.
func (c Circle) Centroid() Vector { return c.Center }

// Bounds returns the square enclosing the circle.
func (c Circle) Bounds() Rect {
	return Rect{Center: c.Center, HalfExtents: Vector{X: c.Radius, Y: c.Radius}}
}

// Translate returns the circle moved by d.
func (c Circle) Translate(d Vector) Circle {
	return Circle{Center: c.Center.Add(d), Radius: c.Radius}
}

// Project returns the circle's shadow on axis: the diameter parallel to the
// axis, projected.
func (c Circle) Project(axis Axis) Segment {
	offset := axis.Unit().Mul(c.Radius)
	return axis.ProjectPoints(c.Center.Sub(offset), c.Center.Add(offset))
}
