package collide

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Polygon is a closed polygon given by its vertices in boundary order.
//
// The polygon is assumed to be simple (non-self-intersecting); this is not
// validated. Separating-axis results are only meaningful for convex polygons.
//
// The zero value has no vertices and is not a valid shape; build polygons
// with NewPolygon. Centroid and Project return degenerate results at the
// origin for it rather than NaN.
type Polygon struct {
	vertices []Vector
}

// NewPolygon returns a polygon over a copy of vertices.
// It returns ErrInvalidShape for fewer than three vertices.
func NewPolygon(vertices ...Vector) (Polygon, error) {
	if len(vertices) < 3 {
		return Polygon{}, fmt.Errorf("%w: polygon needs at least 3 vertices, got %d", ErrInvalidShape, len(vertices))
	}
	return Polygon{vertices: append([]Vector(nil), vertices...)}, nil
}

// PolygonFromR2 builds a polygon from gonum vectors.
func PolygonFromR2(points []r2.Vec) (Polygon, error) {
	vertices := make([]Vector, len(points))
	for i, p := range points {
		vertices[i] = FromR2(p)
	}
	return NewPolygon(vertices...)
}

// Len returns the number of vertices.
func (p Polygon) Len() int { return len(p.vertices) }

// Vertex returns vertex i.
func (p Polygon) Vertex(i int) Vector { return p.vertices[i] }

// Vertices returns a copy of the vertices.
func (p Polygon) Vertices() []Vector {
	return append([]Vector(nil), p.vertices...)
}

// Edges returns the closed boundary loop; edge i runs from vertex i to i+1.
func (p Polygon) Edges() []Segment {
	return edgesOf(p.vertices)
}

// Centroid returns the mean of the vertices.
func (p Polygon) Centroid() Vector {
	if len(p.vertices) == 0 {
		return Vector{}
	}
	var sum Vector
	for _, v := range p.vertices {
		sum = sum.Add(v)
	}
	return sum.Div(float64(len(p.vertices)))
}

// Contains reports whether pt lies inside the polygon using even-odd ray
// casting. Points on the boundary may land on either side. The result for
// self-intersecting polygons is unspecified.
func (p Polygon) Contains(pt Vector) bool {
	inside := false
	n := len(p.vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := p.vertices[i], p.vertices[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) &&
			pt.X < (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
	}
	return inside
}

// ClosestPoint returns the point on the boundary closest to pt.
func (p Polygon) ClosestPoint(pt Vector) Vector {
	q, _ := closestOnEdges(p.Edges(), pt)
	return q
}

// Bounds returns the bounding rectangle.
func (p Polygon) Bounds() Rect {
	return boundsOf(p.vertices)
}

// Translate returns the polygon moved by d.
func (p Polygon) Translate(d Vector) Polygon {
	return p.Transform(Translation(d))
}

// Transform returns the polygon with its vertices transformed by m.
func (p Polygon) Transform(m Matrix) Polygon {
	out := make([]Vector, len(p.vertices))
	for i, v := range p.vertices {
		out[i] = m.Apply(v)
	}
	return Polygon{vertices: out}
}

// Project returns the polygon's shadow on axis.
func (p Polygon) Project(axis Axis) Segment {
	if len(p.vertices) == 0 {
		return Segment{Start: axis.Origin, End: axis.Origin}
	}
	return axis.ProjectPoints(p.vertices...)
}
