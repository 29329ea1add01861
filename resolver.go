package collide

import "log/slog"

// Displacement is the result of resolving two shapes along one axis.
//
// Vector is the translation that moves shape b out of shape a along the
// axis; apply its negation to a instead to move a out of b.
type Displacement struct {
	// Axis is the axis that was evaluated.
	Axis Axis

	// ProjectionA and ProjectionB are the shapes' shadows on the axis,
	// each running in the axis direction.
	ProjectionA, ProjectionB Segment

	// Overlap is the region shared by the projections. When one projection
	// encloses the other it is the enclosed projection's extent.
	Overlap Segment

	// Enclosed reports that one projection lies entirely inside the other.
	Enclosed bool

	// Penetration is the stretch b must travel to clear a. It equals
	// Overlap unless Enclosed, in which case it reaches to the enclosing
	// projection's far end on the side b is pushed toward.
	Penetration Segment

	// Vector is the displacement for b.
	Vector Vector

	// Point is where an arrow for Vector starts; see WithArrowOffset.
	Point Vector

	// LengthSq is the squared length of Vector.
	LengthSq float64
}

// ResolveAxis projects a and b onto axis and computes the displacement that
// separates them along it.
//
// ok is false when the projections do not overlap: the axis separates the
// shapes and no displacement exists. The returned Displacement still
// carries both projections in that case.
//
// b is pushed toward the negative axis direction when its projection's
// center has the lower parameter, and toward the positive direction
// otherwise. Exact ties fall back to comparing centroids by x then y, and
// failing that push b toward the positive direction.
//
// It returns ErrDegenerateAxis for an axis with zero direction.
func ResolveAxis(a, b Shape, axis Axis, opts ...Option) (d Displacement, ok bool, err error) {
	if axis.Direction.IsZero() {
		return Displacement{}, false, ErrDegenerateAxis
	}
	d, ok = resolveAxis(a, b, axis, buildOptions(opts))
	return d, ok, nil
}

// resolveAxis is ResolveAxis for a validated axis.
func resolveAxis(a, b Shape, axis Axis, o options) (Displacement, bool) {
	d := Displacement{
		Axis:        axis,
		ProjectionA: a.Project(axis),
		ProjectionB: b.Project(axis),
	}
	pa, pb := d.ProjectionA, d.ProjectionB

	overlap, ok := pa.Overlap(pb)
	if !ok {
		return d, false
	}
	d.Overlap = overlap

	a0, a1 := axis.Param(pa.Start), axis.Param(pa.End)
	b0, b1 := axis.Param(pb.Start), axis.Param(pb.End)
	lo, hi := axis.Param(overlap.Start), axis.Param(overlap.End)
	if lo > hi {
		lo, hi = hi, lo
	}

	bLeft := isLeftOf(b, a, (b0+b1)/2, (a0+a1)/2, axis.Direction.Length())

	bInA := pa.Contains(pb.Start) && pa.Contains(pb.End)
	aInB := pb.Contains(pa.Start) && pb.Contains(pa.End)
	d.Enclosed = bInA || aInB
	switch {
	case bInA && bLeft:
		lo = a0
	case bInA:
		hi = a1
	case aInB && bLeft:
		hi = b1
	case aInB:
		lo = b0
	}

	d.Penetration = axis.Segment(lo, hi)
	d.Vector = d.Penetration.Vector()
	d.Point = d.Penetration.Start
	if bLeft {
		d.Vector = d.Vector.Neg()
		d.Point = d.Penetration.End
	}
	if o.arrowOffset != 0 {
		n, _ := axis.Direction.Normal()
		d.Point = d.Point.Add(n.Mul(o.arrowOffset))
	}
	d.LengthSq = d.Vector.LengthSq()
	return d, true
}

// isLeftOf reports whether shape s lies before shape other along an axis,
// given their projection center parameters and the axis direction length.
func isLeftOf(s, other Shape, ts, tother, scale float64) bool {
	if !nearlyEqual(ts*scale, tother*scale) {
		return ts < tother
	}
	return s.Centroid().Less(other.Centroid())
}

func logSeparated(axis Axis) {
	if debugEnabled() {
		Logger().Debug("collide: separating axis",
			slog.Float64("dx", axis.Direction.X),
			slog.Float64("dy", axis.Direction.Y))
	}
}
