package collide

import "math"

// Axis is an infinite line that shapes are projected onto.
//
// Points on the axis are addressed by a parameter t: At(t) = Origin +
// Direction*t. Direction need not be unit length but must be non-zero;
// construct axes with NewAxis or AxisAlong to have that checked.
type Axis struct {
	Origin    Vector
	Direction Vector
}

// XAxis is the horizontal axis through the origin.
var XAxis = Axis{Direction: Vector{X: 1}}

// YAxis is the vertical axis through the origin.
var YAxis = Axis{Direction: Vector{Y: 1}}

// NewAxis returns the axis through origin with the given direction.
// It returns ErrDegenerateAxis for a zero direction.
func NewAxis(origin, direction Vector) (Axis, error) {
	if direction.IsZero() {
		return Axis{}, ErrDegenerateAxis
	}
	return Axis{Origin: origin, Direction: direction}, nil
}

// AxisAlong returns the axis containing segment s, directed from Start to End.
// It returns ErrDegenerateAxis for a zero-length segment.
func AxisAlong(s Segment) (Axis, error) {
	return NewAxis(s.Start, s.Vector())
}

// Param returns the axis parameter of p's orthogonal projection.
func (a Axis) Param(p Vector) float64 {
	return p.Sub(a.Origin).Dot(a.Direction) / a.Direction.LengthSq()
}

// At returns the point on the axis with parameter t.
func (a Axis) At(t float64) Vector {
	return a.Origin.Add(a.Direction.Mul(t))
}

// Project returns the orthogonal projection of p onto the axis.
func (a Axis) Project(p Vector) Vector {
	return a.At(a.Param(p))
}

// ProjectPoints returns the projection of a point set: the segment on the
// axis from the lowest to the highest projected parameter.
func (a Axis) ProjectPoints(points ...Vector) Segment {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		t := a.Param(p)
		lo = math.Min(lo, t)
		hi = math.Max(hi, t)
	}
	return Segment{Start: a.At(lo), End: a.At(hi)}
}

// Unit returns the unit direction of the axis.
// An axis with a zero Direction has no unit direction and yields the zero
// vector, which IsParallel treats as parallel to every axis.
func (a Axis) Unit() Vector {
	u, _ := a.Direction.Normalize()
	return u
}

// Offset returns the axis shifted by d along its left normal.
// An axis with a zero Direction has no normal and is returned unshifted.
func (a Axis) Offset(d float64) Axis {
	n, _ := a.Direction.Normal()
	return Axis{Origin: a.Origin.Add(n.Mul(d)), Direction: a.Direction}
}

// IsParallel reports whether two axes have parallel directions, comparing
// unit directions so the test does not depend on direction lengths.
func (a Axis) IsParallel(b Axis) bool {
	return nearlyZero(a.Unit().Cross(b.Unit()))
}

// Segment returns the part of the axis between parameters t0 and t1,
// which is how visualizations draw it.
func (a Axis) Segment(t0, t1 float64) Segment {
	return Segment{Start: a.At(t0), End: a.At(t1)}
}
