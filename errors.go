package collide

import "errors"

// Sentinel errors for geometric degeneracies.
// Callers test for them with errors.Is; the kernel may wrap them with context.
var (
	// ErrDegenerateVector is returned when a direction is derived from a zero vector.
	ErrDegenerateVector = errors.New("collide: zero-length vector has no direction")

	// ErrDegenerateAxis is returned when projecting onto a zero-length axis.
	ErrDegenerateAxis = errors.New("collide: zero-length axis")

	// ErrDegenerateSegment is returned by direction-dependent operations on a
	// segment whose start equals its end.
	ErrDegenerateSegment = errors.New("collide: zero-length segment")

	// ErrDegenerateQuery is returned when a query point coincides with the
	// point a shape measures directions from, e.g. a circle's center.
	ErrDegenerateQuery = errors.New("collide: query point coincides with shape center")

	// ErrInvalidShape is returned by constructors for shapes that violate
	// their invariants (negative radius or extent, zero-area triangle,
	// fewer than three polygon vertices).
	ErrInvalidShape = errors.New("collide: invalid shape")

	// ErrUnknownAxisSet is returned for an AxisSet value outside the enumeration.
	ErrUnknownAxisSet = errors.New("collide: unknown axis set")
)
