// Package collide provides a small 2D geometry kernel for collision
// detection with the separating-axis theorem.
//
// # Overview
//
// The package covers the geometry behind separating-axis collision tests:
// vectors and segments, containment and closest-point queries on simple
// shapes, overlap of collinear segments, and the minimum translation
// vector (MTV) that pushes two overlapping shapes apart. Rendering, input
// and animation belong to the caller; every function here is a pure
// function of its arguments.
//
// # Quick Start
//
//	box, _ := collide.RectFromSize(collide.V(170, 170), collide.V(90, 90))
//	ball := collide.Circle{Center: collide.V(230, 100), Radius: 36}
//
//	res, err := collide.Resolve(box, ball, collide.CartesianPlusDiagonal)
//	if err != nil {
//		return err
//	}
//	if res.Colliding {
//		ball = ball.Translate(res.MTV.Vector)
//	}
//
// # Shapes
//
// Rect (axis-aligned), Circle, Triangle and Polygon implement Shape. All
// are value types: moving a shape means building a new value with
// Translate or Transform, never mutating one in place.
//
// Boundary conventions differ on purpose: Rect.Contains and
// Triangle.Contains include the boundary, Circle.Contains excludes it.
//
// # Separating Axes
//
// ResolveAxis projects two shapes onto one Axis and measures their overlap.
// Resolve evaluates a whole AxisSet, stops at the first separating axis
// (see WithExhaustive) and picks the MTV among the overlapping axes.
// CornerAxis, VertexAxis and ClassifyTriangle classify which feature of a
// shape is nearest to a point, which decides the extra axes to test.
//
// # Coordinate System
//
// Uses screen coordinates:
//   - X increases right
//   - Y increases down, so a Rect's Top is its smallest y
//
// # Tolerances
//
// Collinearity, orientation and tie-break tests share the absolute
// tolerance Epsilon. Degenerate inputs (zero vectors, zero-length segments
// and axes, queries at a circle's center) return the sentinel errors in
// errors.go instead of producing NaN.
package collide
