// Package geom builds the projection and the quad mesh drawn by the renderer.
package geom

import "github.com/go-gl/mathgl/mgl32"

// Matrix defines a 4x4 affine transform.
//
// Fields are stored row-major and points are treated as row vectors, so the
// translation lives in the fourth row. Read in declaration order, the fields
// form the column-major, column-vector layout OpenGL expects.
type Matrix struct {
	M11, M12, M13, M14 float32
	M21, M22, M23, M24 float32
	M31, M32, M33, M34 float32
	M41, M42, M43, M44 float32
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		M11: 1,
		M22: 1,
		M33: 1,
		M44: 1,
	}
}

// Ortho returns an orthographic projection which maps the box
// [left,right] x [bottom,top] x [near,far] onto the [-1,1] cube.
//
// The caller must ensure none of the three ranges is empty.
func Ortho(left, right, bottom, top, near, far float32) Matrix {
	m := Identity()
	m.M11 = 2 / (right - left)
	m.M22 = 2 / (top - bottom)
	m.M33 = -2 / (far - near)
	m.M41 = -((right + left) / (right - left))
	m.M42 = -((top + bottom) / (top - bottom))
	m.M43 = -((far + near) / (far - near))
	return m
}

// ScreenProjection returns a projection for a screen of the given size in
// pixels. The origin is in the top-left corner and Y grows downwards.
func ScreenProjection(width, height int) Matrix {
	return Ortho(0, float32(width), float32(height), 0, -10, 10)
}

// Mat4 returns m in the memory layout used by mgl32 and OpenGL.
func (m Matrix) Mat4() mgl32.Mat4 {
	return mgl32.Mat4{
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44,
	}
}

// Transform applies m to the point (x, y, z, w).
func (m Matrix) Transform(x, y, z, w float32) mgl32.Vec4 {
	return m.Mat4().Mul4x1(mgl32.Vec4{x, y, z, w})
}
