package collide

// Option configures a resolver call.
// Use functional options to customize Resolve and ResolveAxis.
//
// Example:
//
//	// Evaluate every axis, even after a separating one is found,
//	// and offset arrow anchors for drawing.
//	res, err := collide.Resolve(a, b, collide.CartesianPlusDiagonal,
//	    collide.WithExhaustive(), collide.WithArrowOffset(12))
type Option func(*options)

// options holds optional configuration for resolution.
type options struct {
	exhaustive     bool
	arrowOffset    float64
	diagonalMargin float64
}

// defaultDiagonalMargin is the clearance kept between a diagonal candidate
// axis and the shapes it was built from.
const defaultDiagonalMargin = 24

// defaultOptions returns the default resolution options.
func defaultOptions() options {
	return options{
		diagonalMargin: defaultDiagonalMargin,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithExhaustive makes Resolve evaluate every candidate axis instead of
// stopping at the first separating one. The collision verdict is the same;
// the Result simply carries a displacement for every overlapping axis,
// which is what visualizations draw.
func WithExhaustive() Option {
	return func(o *options) {
		o.exhaustive = true
	}
}

// WithArrowOffset shifts each displacement's application point by d along
// the axis normal so that arrows drawn for different axes do not overlap.
// It does not affect the displacement vectors.
func WithArrowOffset(d float64) Option {
	return func(o *options) {
		o.arrowOffset = d
	}
}

// WithDiagonalMargin sets the clearance between a diagonal candidate axis
// and the shapes it is built from. Projection lengths do not depend on it.
func WithDiagonalMargin(m float64) Option {
	return func(o *options) {
		o.diagonalMargin = m
	}
}
