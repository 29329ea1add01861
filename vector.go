package collide

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vector represents a 2D point or displacement.
// Vector is an immutable value type: every operation returns a new Vector.
type Vector struct {
	X, Y float64
}

// V is a convenience function to create a Vector.
func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// FromR2 converts a gonum r2.Vec to a Vector.
func FromR2(v r2.Vec) Vector {
	return Vector{X: v.X, Y: v.Y}
}

// R2 converts the vector to a gonum r2.Vec.
func (v Vector) R2() r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by s.
func (v Vector) Mul(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by s.
func (v Vector) Div(s float64) Vector {
	return Vector{X: v.X / s, Y: v.Y / s}
}

// Neg returns the negation of the vector.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (the z-component of the 3D cross
// product with z=0). Zero means the vectors are parallel.
func (v Vector) Cross(w Vector) float64 {
	return v.X*w.Y - v.Y*w.X
}

// LengthSq returns the squared length of the vector.
func (v Vector) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the length of the vector.
func (v Vector) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// Distance returns the distance between two points.
func (v Vector) Distance(w Vector) float64 {
	return v.Sub(w).Length()
}

// Normalize returns a unit vector in the same direction.
// It returns ErrDegenerateVector for the zero vector.
func (v Vector) Normalize() (Vector, error) {
	length := v.Length()
	if length == 0 {
		return Vector{}, ErrDegenerateVector
	}
	return Vector{X: v.X / length, Y: v.Y / length}, nil
}

// Left returns the vector rotated 90 degrees to the left, (-y, x).
// With Y growing downward this is a clockwise turn on screen.
func (v Vector) Left() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// Right returns the vector rotated 90 degrees to the right, (y, -x).
func (v Vector) Right() Vector {
	return Vector{X: v.Y, Y: -v.X}
}

// Normal returns the unit-length left perpendicular.
// It returns ErrDegenerateVector for the zero vector.
func (v Vector) Normal() (Vector, error) {
	return v.Left().Normalize()
}

// ProjectOnto returns the vector projection of v onto axis:
// axis * (v·axis / |axis|²).
// It returns ErrDegenerateAxis if axis has zero length.
func (v Vector) ProjectOnto(axis Vector) (Vector, error) {
	lsq := axis.LengthSq()
	if lsq == 0 {
		return Vector{}, ErrDegenerateAxis
	}
	return axis.Mul(v.Dot(axis) / lsq), nil
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w.
func (v Vector) Lerp(w Vector, t float64) Vector {
	return Vector{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// IsZero reports whether both components are exactly zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Equal reports whether both components are within Epsilon of w's.
func (v Vector) Equal(w Vector) bool {
	return nearlyEqual(v.X, w.X) && nearlyEqual(v.Y, w.Y)
}

// Approx reports whether two vectors are equal within epsilon.
func (v Vector) Approx(w Vector, epsilon float64) bool {
	return math.Abs(v.X-w.X) <= epsilon && math.Abs(v.Y-w.Y) <= epsilon
}

// Less orders vectors by x, then y, with Epsilon tolerance.
func (v Vector) Less(w Vector) bool {
	if !nearlyEqual(v.X, w.X) {
		return v.X < w.X
	}
	return !nearlyEqual(v.Y, w.Y) && v.Y < w.Y
}
