// Package mat4 provides the 4x4 float32 matrix operations gfx needs on top of
// the golang.org/x/image/math/f32 types.
//
// Matrices are row-major (m[4*r+c] is row r, column c) and use the row-vector
// convention: a point is transformed as v' = v * M, so the translation lives
// in the fourth row and the homogeneous w column is m[3], m[7], m[11], m[15].
package mat4

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Identity returns the identity matrix.
func Identity() f32.Mat4 {
	return f32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation creates a translation matrix.
func Translation(x, y, z float32) f32.Mat4 {
	return f32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scaling creates a scaling matrix.
func Scaling(x, y, z float32) f32.Mat4 {
	return f32.Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Mul multiplies two matrices (a * b). With row vectors, a is applied first.
func Mul(a, b f32.Mat4) f32.Mat4 {
	var m f32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[4*r+c] = a[4*r]*b[c] +
				a[4*r+1]*b[4+c] +
				a[4*r+2]*b[8+c] +
				a[4*r+3]*b[12+c]
		}
	}
	return m
}

// Transform applies m to the point v with an implicit w of 1.
// The result is not divided by the resulting w.
func Transform(v f32.Vec3, m f32.Mat4) f32.Vec3 {
	return f32.Vec3{
		v[0]*m[0] + v[1]*m[4] + v[2]*m[8] + m[12],
		v[0]*m[1] + v[1]*m[5] + v[2]*m[9] + m[13],
		v[0]*m[2] + v[1]*m[6] + v[2]*m[10] + m[14],
	}
}

// W returns the homogeneous coordinate of v transformed by m.
func W(v f32.Vec3, m f32.Mat4) float32 {
	return v[0]*m[3] + v[1]*m[7] + v[2]*m[11] + m[15]
}

// Determinant returns the determinant of m.
func Determinant(m f32.Mat4) float32 {
	s, c := minors(m)
	return float32(det(s, c))
}

// Invert returns the inverse of m.
// If m is singular, every element of the result is NaN and ok is false.
func Invert(m f32.Mat4) (inv f32.Mat4, ok bool) {
	s, c := minors(m)
	d := det(s, c)
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		nan := float32(math.NaN())
		for i := range inv {
			inv[i] = nan
		}
		return inv, false
	}

	a := widen(m)
	k := 1 / d
	out := [16]float64{
		(a[5]*c[5] - a[6]*c[4] + a[7]*c[3]) * k,
		(-a[1]*c[5] + a[2]*c[4] - a[3]*c[3]) * k,
		(a[13]*s[5] - a[14]*s[4] + a[15]*s[3]) * k,
		(-a[9]*s[5] + a[10]*s[4] - a[11]*s[3]) * k,

		(-a[4]*c[5] + a[6]*c[2] - a[7]*c[1]) * k,
		(a[0]*c[5] - a[2]*c[2] + a[3]*c[1]) * k,
		(-a[12]*s[5] + a[14]*s[2] - a[15]*s[1]) * k,
		(a[8]*s[5] - a[10]*s[2] + a[11]*s[1]) * k,

		(a[4]*c[4] - a[5]*c[2] + a[7]*c[0]) * k,
		(-a[0]*c[4] + a[1]*c[2] - a[3]*c[0]) * k,
		(a[12]*s[4] - a[13]*s[2] + a[15]*s[0]) * k,
		(-a[8]*s[4] + a[9]*s[2] - a[11]*s[0]) * k,

		(-a[4]*c[3] + a[5]*c[1] - a[6]*c[0]) * k,
		(a[0]*c[3] - a[1]*c[1] + a[2]*c[0]) * k,
		(-a[12]*s[3] + a[13]*s[1] - a[14]*s[0]) * k,
		(a[8]*s[3] - a[9]*s[1] + a[10]*s[0]) * k,
	}
	for i, v := range out {
		inv[i] = float32(v)
	}
	return inv, true
}

// minors returns the 2x2 sub-determinants of the top two rows (s) and the
// bottom two rows (c), computed in float64.
func minors(m f32.Mat4) (s, c [6]float64) {
	a := widen(m)
	s = [6]float64{
		a[0]*a[5] - a[4]*a[1],
		a[0]*a[6] - a[4]*a[2],
		a[0]*a[7] - a[4]*a[3],
		a[1]*a[6] - a[5]*a[2],
		a[1]*a[7] - a[5]*a[3],
		a[2]*a[7] - a[6]*a[3],
	}
	c = [6]float64{
		a[8]*a[13] - a[12]*a[9],
		a[8]*a[14] - a[12]*a[10],
		a[8]*a[15] - a[12]*a[11],
		a[9]*a[14] - a[13]*a[10],
		a[9]*a[15] - a[13]*a[11],
		a[10]*a[15] - a[14]*a[11],
	}
	return s, c
}

func det(s, c [6]float64) float64 {
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

func widen(m f32.Mat4) [16]float64 {
	var a [16]float64
	for i, v := range m {
		a[i] = float64(v)
	}
	return a
}

// PerspectiveFov creates a right-handed perspective projection mapping view
// depth [near, far] to [0, 1]. fovY is in radians.
func PerspectiveFov(fovY, aspect, near, far float32) f32.Mat4 {
	yScale := float32(1 / math.Tan(float64(fovY)/2))
	xScale := yScale / aspect
	depth := far / (near - far)
	return f32.Mat4{
		xScale, 0, 0, 0,
		0, yScale, 0, 0,
		0, 0, depth, -1,
		0, 0, near * depth, 0,
	}
}

// LookAt creates a right-handed view matrix.
func LookAt(eye, target, up f32.Vec3) f32.Mat4 {
	z := normalize(sub(eye, target))
	x := normalize(cross(up, z))
	y := cross(z, x)
	return f32.Mat4{
		x[0], y[0], z[0], 0,
		x[1], y[1], z[1], 0,
		x[2], y[2], z[2], 0,
		-dot(x, eye), -dot(y, eye), -dot(z, eye), 1,
	}
}

func sub(a, b f32.Vec3) f32.Vec3 {
	return f32.Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func dot(a, b f32.Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross(a, b f32.Vec3) f32.Vec3 {
	return f32.Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize(v f32.Vec3) f32.Vec3 {
	l := float32(math.Sqrt(float64(dot(v, v))))
	if l == 0 {
		return v
	}
	return f32.Vec3{v[0] / l, v[1] / l, v[2] / l}
}
