package collide

import "gonum.org/v1/gonum/floats/scalar"

// Epsilon is the single absolute tolerance used for every collinearity,
// orientation and tie-break test in the package.
//
// The tolerance is absolute, not relative to the magnitude of the inputs.
// Results for inputs that sit right at the boundary (a cross product of
// almost exactly 0.001, say) may flip between platforms with different
// floating-point contraction rules.
const Epsilon = 0.001

// epsilonSq is the squared tolerance used for point-on-segment tests.
const epsilonSq = Epsilon * Epsilon

// nearlyEqual reports whether a and b differ by at most Epsilon.
func nearlyEqual(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Epsilon)
}

// nearlyZero reports whether |x| <= Epsilon.
func nearlyZero(x float64) bool {
	return scalar.EqualWithinAbs(x, 0, Epsilon)
}
