package indexed

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

var samplePix = []byte{
	0, 1, 1, 0, 2,
	0, 0, 0, 2, 1,
	0, 0, 1, 1, 1,
}

func TestNewImage(t *testing.T) {
	for i, v := range []struct {
		W, H int
		Pix  []byte
		Err  error
	}{
		{5, 3, samplePix, nil},
		{3, 5, samplePix, nil},
		{15, 1, samplePix, nil},
		{4, 3, samplePix, ErrDimensions},
		{0, 3, samplePix, ErrDimensions},
		{5, -3, samplePix, ErrDimensions},
		{1, 1, nil, ErrDimensions},
	} {
		img, err := NewImage(v.W, v.H, v.Pix)
		if errors.Cause(err) != v.Err {
			t.Fatalf("test %d:\nwant: %v\nhave: %v", i+1, v.Err, err)
		}

		if err == nil && (img.Width != v.W || img.Height != v.H) {
			t.Fatalf("test %d: want %d x %d; have %d x %d", i+1, v.W, v.H, img.Width, img.Height)
		}
	}
}

func TestImageAt(t *testing.T) {
	img, err := NewImage(5, 3, samplePix)
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range []struct {
		X, Y int
		Want uint8
	}{
		{0, 0, 0},
		{4, 0, 2},
		{3, 1, 2},
		{4, 1, 1},
		{2, 2, 1},
		{-1, -1, 0},
		{9, 0, 2},
		{4, 9, 1},
	} {
		if have := img.At(v.X, v.Y); have != v.Want {
			t.Fatalf("test %d (%d, %d): want %d; have %d", i+1, v.X, v.Y, v.Want, have)
		}
	}
}

func TestImageSample(t *testing.T) {
	img, err := NewImage(5, 3, samplePix)
	if err != nil {
		t.Fatal(err)
	}

	// Texel centers map back onto their own texel.
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			u := (float32(x) + 0.5) / float32(img.Width)
			v := (float32(y) + 0.5) / float32(img.Height)

			if have, want := img.Sample(u, v), img.At(x, y); have != want {
				t.Fatalf("texel (%d, %d) at uv (%v, %v): want %d; have %d", x, y, u, v, want, have)
			}
		}
	}

	// The far edges clamp to the last row and column.
	if have := img.Sample(1, 0); have != 2 {
		t.Fatalf("uv (1, 0): want 2; have %d", have)
	}
	if have := img.Sample(1, 1); have != 1 {
		t.Fatalf("uv (1, 1): want 1; have %d", have)
	}
	if have := img.Sample(-0.5, 2); have != 0 {
		t.Fatalf("uv (-0.5, 2): want 0; have %d", have)
	}
}

func TestImageSampleExtremes(t *testing.T) {
	img, err := NewImage(5, 3, samplePix)
	if err != nil {
		t.Fatal(err)
	}

	inf := float32(math.Inf(1))
	nan := float32(math.NaN())

	for i, v := range []struct {
		U, V float32
		Want uint8
	}{
		{1e30, 0, img.At(4, 0)},
		{inf, 0, img.At(4, 0)},
		{0, inf, img.At(0, 2)},
		{inf, inf, img.At(4, 2)},
		{-1e30, 0, img.At(0, 0)},
		{-inf, 1e30, img.At(0, 2)},
		{nan, 0, img.At(0, 0)},
		{1e30, nan, img.At(4, 0)},
	} {
		if have := img.Sample(v.U, v.V); have != v.Want {
			t.Fatalf("test %d uv (%v, %v): want %d; have %d", i+1, v.U, v.V, v.Want, have)
		}
	}
}

func TestImageMax(t *testing.T) {
	img, err := NewImage(5, 3, samplePix)
	if err != nil {
		t.Fatal(err)
	}

	if have := img.Max(); have != 2 {
		t.Fatalf("want 2; have %d", have)
	}
}
