package collide

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix is a 2D affine transformation in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// mapping (x, y) to (a*x + b*y + c, d*x + e*y + f).
//
// Matrices are used to place triangles and polygons; axis-aligned
// rectangles and circles are not closed under rotation or shear, so they
// are moved with Translate instead.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translation returns a matrix translating by d.
func Translation(d Vector) Matrix {
	return Matrix{A: 1, C: d.X, E: 1, F: d.Y}
}

// Scaling returns a matrix scaling by sx and sy.
func Scaling(sx, sy float64) Matrix {
	return Matrix{A: sx, E: sy}
}

// Rotation returns a matrix rotating by angle radians around the origin.
func Rotation(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		A: cos, B: -sin,
		D: sin, E: cos,
	}
}

// RotationAbout returns a matrix rotating by angle radians around pivot.
func RotationAbout(angle float64, pivot Vector) Matrix {
	return Translation(pivot).Multiply(Rotation(angle)).Multiply(Translation(pivot.Neg()))
}

// MatrixFromAff3 converts an x/image affine matrix.
func MatrixFromAff3(m f64.Aff3) Matrix {
	return Matrix{
		A: m[0], B: m[1], C: m[2],
		D: m[3], E: m[4], F: m[5],
	}
}

// Aff3 converts the matrix to the x/image representation.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

// Multiply returns m * other, which applies other first.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Apply transforms a point.
func (m Matrix) Apply(p Vector) Vector {
	return Vector{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// ApplyVector transforms a displacement (translation is ignored).
func (m Matrix) ApplyVector(v Vector) Vector {
	return Vector{
		X: m.A*v.X + m.B*v.Y,
		Y: m.D*v.X + m.E*v.Y,
	}
}

// Determinant returns the determinant of the linear part.
// A zero determinant collapses shapes to a line.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// IsIdentity reports whether the matrix is the identity.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// Transform returns the point transformed by m.
func (v Vector) Transform(m Matrix) Vector {
	return m.Apply(v)
}
