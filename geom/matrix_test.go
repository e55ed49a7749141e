package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIdentityTransform(t *testing.T) {
	m := Identity()

	for _, p := range []mgl32.Vec2{{0, 0}, {1, 2}, {-3.5, 1024}, {768, -0.25}} {
		have := m.Transform(p[0], p[1], 0, 1)
		want := mgl32.Vec4{p[0], p[1], 0, 1}
		if have != want {
			t.Fatalf("identity transform of %v:\nwant: %v\nhave: %v", p, want, have)
		}
	}
}

func TestOrtho(t *testing.T) {
	for i, v := range []struct {
		W, H, N, F float32
	}{
		{1024, 768, -10, 10},
		{640, 480, 0, 1},
		{1, 1, -1, 3},
		{320.5, 200, 5, -5},
	} {
		m := Ortho(0, v.W, v.H, 0, v.N, v.F)

		want := Matrix{
			M11: 2 / v.W,
			M22: -2 / v.H,
			M33: -2 / (v.F - v.N),
			M41: -1,
			M42: 1,
			M43: -((v.F + v.N) / (v.F - v.N)),
			M44: 1,
		}

		if m != want {
			t.Fatalf("test %d:\nwant: %+v\nhave: %+v", i+1, want, m)
		}
	}
}

func TestOrthoMatchesMathGL(t *testing.T) {
	for i, v := range [][6]float32{
		{0, 1024, 768, 0, -10, 10},
		{-5, 5, -2, 2, 0.1, 100},
		{10, 20, 30, 40, 50, 60},
	} {
		have := Ortho(v[0], v[1], v[2], v[3], v[4], v[5]).Mat4()
		want := mgl32.Ortho(v[0], v[1], v[2], v[3], v[4], v[5])

		if !have.ApproxEqualThreshold(want, 1e-6) {
			t.Fatalf("test %d:\nwant: %v\nhave: %v", i+1, want, have)
		}
	}
}

func TestOrthoHasNoShear(t *testing.T) {
	m := Ortho(-3, 7, 11, -2, 1, 9)
	for i, v := range []float32{m.M12, m.M13, m.M14, m.M21, m.M23, m.M24, m.M31, m.M32, m.M34} {
		if v != 0 {
			t.Fatalf("off-diagonal term %d: want 0, have %v", i, v)
		}
	}
	if m.M44 != 1 {
		t.Fatalf("m44: want 1, have %v", m.M44)
	}
}

func TestScreenProjection(t *testing.T) {
	m := ScreenProjection(1024, 768)

	for _, v := range []struct {
		X, Y float32
		Want mgl32.Vec2
	}{
		{0, 0, mgl32.Vec2{-1, 1}},
		{1024, 0, mgl32.Vec2{1, 1}},
		{0, 768, mgl32.Vec2{-1, -1}},
		{1024, 768, mgl32.Vec2{1, -1}},
		{512, 384, mgl32.Vec2{0, 0}},
	} {
		have := m.Transform(v.X, v.Y, 0, 1)
		if !(mgl32.Vec2{have[0], have[1]}).ApproxEqual(v.Want) || have[3] != 1 {
			t.Fatalf("pixel (%v, %v):\nwant: %v\nhave: %v", v.X, v.Y, v.Want, have)
		}
	}
}
