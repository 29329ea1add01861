package collide

import "log/slog"

// Result is the outcome of resolving two shapes over a set of axes.
type Result struct {
	// Colliding reports whether every evaluated axis overlapped.
	Colliding bool

	// MTV is the minimum translation vector: the displacement with the
	// smallest LengthSq, the earliest axis winning exact ties. It is only
	// set when Colliding.
	MTV Displacement

	// Displacements holds one entry per overlapping axis, in evaluation order.
	Displacements []Displacement

	// Separating holds the axes on which the projections did not overlap.
	// Without WithExhaustive it holds at most one axis, as evaluation stops
	// at the first.
	Separating []Axis
}

// Resolve runs the separating-axis test for a and b over the candidate
// axes chosen by set and returns the displacements that move b out of a.
//
// The shapes collide only if their projections overlap on every axis.
// Evaluation stops at the first separating axis unless WithExhaustive is
// given.
func Resolve(a, b Shape, set AxisSet, opts ...Option) (Result, error) {
	axes, err := CandidateAxes(a, b, set, opts...)
	if err != nil {
		return Result{}, err
	}
	return ResolveAxes(a, b, axes, opts...)
}

// ResolveAxes is Resolve over caller-chosen axes.
// It returns ErrDegenerateAxis if any axis has zero direction.
func ResolveAxes(a, b Shape, axes []Axis, opts ...Option) (Result, error) {
	for _, axis := range axes {
		if axis.Direction.IsZero() {
			return Result{}, ErrDegenerateAxis
		}
	}
	o := buildOptions(opts)

	var res Result
	for _, axis := range axes {
		d, ok := resolveAxis(a, b, axis, o)
		if !ok {
			logSeparated(axis)
			res.Separating = append(res.Separating, axis)
			if !o.exhaustive {
				break
			}
			continue
		}
		res.Displacements = append(res.Displacements, d)
	}

	res.Colliding = len(res.Separating) == 0 && len(res.Displacements) > 0
	if !res.Colliding {
		return res, nil
	}

	best := 0
	for i, d := range res.Displacements[1:] {
		if d.LengthSq < res.Displacements[best].LengthSq {
			best = i + 1
		}
	}
	res.MTV = res.Displacements[best]

	if debugEnabled() {
		Logger().Debug("collide: minimum translation",
			slog.Int("axes", len(axes)),
			slog.Float64("x", res.MTV.Vector.X),
			slog.Float64("y", res.MTV.Vector.Y),
			slog.Float64("lengthSq", res.MTV.LengthSq))
	}
	return res, nil
}
