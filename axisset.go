package collide

import (
	"fmt"
	"log/slog"
)

// AxisSet selects which candidate axes Resolve evaluates.
type AxisSet int

const (
	// Cartesian tests the world X and Y axes only. It is exact for pairs
	// of axis-aligned rectangles.
	Cartesian AxisSet = iota

	// CartesianPlusDiagonal adds, for a shape against a circle, the axis
	// through the shape's nearest corner and the circle's center when the
	// circle sits in a corner region. For two circles it adds the axis
	// through both centers.
	CartesianPlusDiagonal

	// EdgeNormals tests the normal of every edge of both shapes, plus the
	// corner and center axes CartesianPlusDiagonal would add. It is the
	// general separating-axis set for convex polygons and circles.
	EdgeNormals
)

var axisSetNames = [...]string{
	Cartesian:             "cartesian",
	CartesianPlusDiagonal: "cartesian-plus-diagonal",
	EdgeNormals:           "edge-normals",
}

// String returns the axis set name as accepted by ParseAxisSet.
func (s AxisSet) String() string {
	if s < 0 || int(s) >= len(axisSetNames) {
		return fmt.Sprintf("AxisSet(%d)", int(s))
	}
	return axisSetNames[s]
}

// ParseAxisSet returns the axis set with the given name.
func ParseAxisSet(name string) (AxisSet, error) {
	for i, n := range axisSetNames {
		if n == name {
			return AxisSet(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAxisSet, name)
}

// CandidateAxes returns the axes that set prescribes for a and b, in
// evaluation order. Axes parallel to an earlier one are dropped, so the
// order decides which of two equivalent axes is kept.
func CandidateAxes(a, b Shape, set AxisSet, opts ...Option) ([]Axis, error) {
	var axes []Axis
	add := func(axis Axis) {
		if axis.Direction.IsZero() {
			logSkipped(axis, "zero direction")
			return
		}
		for _, have := range axes {
			if have.IsParallel(axis) {
				logSkipped(axis, "parallel")
				return
			}
		}
		axes = append(axes, axis)
	}

	switch set {
	case Cartesian:
		add(XAxis)
		add(YAxis)
	case CartesianPlusDiagonal:
		add(XAxis)
		add(YAxis)
		if axis, ok := diagonalAxis(a, b, opts); ok {
			add(axis)
		}
	case EdgeNormals:
		for _, s := range []Shape{a, b} {
			p, ok := s.(Polygonal)
			if !ok {
				continue
			}
			for _, e := range edgesOf(p.Vertices()) {
				add(Axis{Origin: e.Start, Direction: e.Vector().Left()})
			}
		}
		if axis, ok := diagonalAxis(a, b, opts); ok {
			add(axis)
		}
		if len(axes) == 0 {
			// Two concentric circles.
			add(XAxis)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAxisSet, int(set))
	}
	return axes, nil
}

// diagonalAxis returns the corner or center axis for pairs involving a circle.
func diagonalAxis(a, b Shape, opts []Option) (Axis, bool) {
	ca, aIsCircle := a.(Circle)
	cb, bIsCircle := b.(Circle)
	switch {
	case aIsCircle && bIsCircle:
		axis, err := AxisAlong(Seg(ca.Center, cb.Center))
		return axis, err == nil
	case bIsCircle:
		return shapeCircleAxis(a, cb, opts)
	case aIsCircle:
		return shapeCircleAxis(b, ca, opts)
	}
	return Axis{}, false
}

func shapeCircleAxis(s Shape, c Circle, opts []Option) (Axis, bool) {
	switch s := s.(type) {
	case Rect:
		return CornerAxis(s, c, opts...)
	case Polygonal:
		return VertexAxis(s, c, opts...)
	}
	return Axis{}, false
}

func logSkipped(axis Axis, reason string) {
	if debugEnabled() {
		Logger().Debug("collide: skipped candidate axis",
			slog.String("reason", reason),
			slog.Float64("dx", axis.Direction.X),
			slog.Float64("dy", axis.Direction.Y))
	}
}
