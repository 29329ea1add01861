package collide

import (
	"fmt"
	"math"
)

// Triangle is a triangle with corners A, B and C in any winding.
//
// Area-based queries assume the triangle is not degenerate; NewTriangle
// enforces that, plain struct literals do not.
type Triangle struct {
	A, B, C Vector
}

// NewTriangle returns a triangle, or ErrInvalidShape if its area is
// within Epsilon of zero.
func NewTriangle(a, b, c Vector) (Triangle, error) {
	t := Triangle{A: a, B: b, C: c}
	if nearlyZero(t.Area()) {
		return Triangle{}, fmt.Errorf("%w: degenerate triangle %v %v %v", ErrInvalidShape, a, b, c)
	}
	return t, nil
}

// Area returns the unsigned area.
func (t Triangle) Area() float64 {
	return math.Abs(t.B.Sub(t.A).Cross(t.C.Sub(t.A))) / 2
}

// Centroid returns the mean of the three corners.
func (t Triangle) Centroid() Vector {
	return t.A.Add(t.B).Add(t.C).Div(3)
}

// Vertices returns A, B, C.
func (t Triangle) Vertices() []Vector {
	return []Vector{t.A, t.B, t.C}
}

// Edges returns AB, BC and CA.
func (t Triangle) Edges() [3]Segment {
	return [3]Segment{
		{Start: t.A, End: t.B},
		{Start: t.B, End: t.C},
		{Start: t.C, End: t.A},
	}
}

// SubTriangles splits the triangle into three triangles sharing p:
// (A, B, p), (B, C, p) and (C, A, p). Sub-triangle i lies on edge i.
func (t Triangle) SubTriangles(p Vector) [3]Triangle {
	return [3]Triangle{
		{A: t.A, B: t.B, C: p},
		{A: t.B, B: t.C, C: p},
		{A: t.C, B: t.A, C: p},
	}
}

// CentroidSubTriangles is SubTriangles at the centroid. These are the
// interior regions used by ClassifyTriangle.
func (t Triangle) CentroidSubTriangles() [3]Triangle {
	return t.SubTriangles(t.Centroid())
}

// Contains reports whether p lies inside the triangle or on its boundary.
//
// The three sub-triangles around p cover exactly the triangle's area when
// p is inside and more when it is outside. The comparison uses the
// absolute tolerance Epsilon, so very large triangles accept points a
// hair outside and very small ones are compared coarsely.
func (t Triangle) Contains(p Vector) bool {
	sum := 0.0
	for _, sub := range t.SubTriangles(p) {
		sum += sub.Area()
	}
	return math.Abs(sum-t.Area()) < Epsilon
}

// ClosestPoint returns the point on the boundary closest to p.
func (t Triangle) ClosestPoint(p Vector) Vector {
	e := t.Edges()
	q, _ := closestOnEdges(e[:], p)
	return q
}

// ClosestSide returns the edge closest to p. The first edge in Edges order
// wins ties, which matters for points whose closest point is a corner.
func (t Triangle) ClosestSide(p Vector) Segment {
	e := t.Edges()
	_, i := closestOnEdges(e[:], p)
	return e[i]
}

// Bounds returns the bounding rectangle.
func (t Triangle) Bounds() Rect {
	return boundsOf(t.Vertices())
}

// Translate returns the triangle moved by d.
func (t Triangle) Translate(d Vector) Triangle {
	return Triangle{A: t.A.Add(d), B: t.B.Add(d), C: t.C.Add(d)}
}

// Transform returns the triangle with its corners transformed by m.
func (t Triangle) Transform(m Matrix) Triangle {
	return Triangle{A: m.Apply(t.A), B: m.Apply(t.B), C: m.Apply(t.C)}
}

// Project returns the triangle's shadow on axis.
func (t Triangle) Project(axis Axis) Segment {
	return axis.ProjectPoints(t.A, t.B, t.C)
}
