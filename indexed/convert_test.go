package indexed

import (
	"image"
	"image/color"
	"testing"

	"github.com/pkg/errors"
)

func TestFromImagePaletted(t *testing.T) {
	pal := color.Palette{
		color.RGBA{255, 255, 255, 255},
		color.RGBA{255, 0, 0, 255},
		color.RGBA{0, 255, 0, 255},
	}

	src := image.NewPaletted(image.Rect(10, 20, 15, 23), pal)
	copy(src.Pix, samplePix)

	img, have, err := FromImage(src)
	if err != nil {
		t.Fatal(err)
	}

	if img.Width != 5 || img.Height != 3 {
		t.Fatalf("want 5 x 3; have %d x %d", img.Width, img.Height)
	}

	for i := range samplePix {
		if img.Pix[i] != samplePix[i] {
			t.Fatalf("pixel %d: want %d; have %d", i, samplePix[i], img.Pix[i])
		}
	}

	want := Palette{{255, 255, 255}, {255, 0, 0}, {0, 255, 0}}
	for i := range want {
		if have[i] != want[i] {
			t.Fatalf("entry %d:\nwant: %v\nhave: %v", i, want[i], have[i])
		}
	}
}

func TestFromImageSubImage(t *testing.T) {
	pal := color.Palette{color.Black, color.White}
	src := image.NewPaletted(image.Rect(0, 0, 4, 4), pal)
	src.SetColorIndex(2, 2, 1)

	img, _, err := FromImage(src.SubImage(image.Rect(1, 1, 3, 3)))
	if err != nil {
		t.Fatal(err)
	}

	want := []byte{0, 0, 0, 1}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("pixel %d: want %d; have %d", i, want[i], img.Pix[i])
		}
	}
}

func TestFromImageTrueColor(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}

	src.SetRGBA(0, 0, red)
	src.SetRGBA(1, 0, blue)
	src.SetRGBA(2, 0, red)
	src.SetRGBA(0, 1, blue)
	src.SetRGBA(1, 1, blue)
	src.SetRGBA(2, 1, red)

	img, pal, err := FromImage(src)
	if err != nil {
		t.Fatal(err)
	}

	if len(pal) != 2 || pal[0] != (RGB{255, 0, 0}) || pal[1] != (RGB{0, 0, 255}) {
		t.Fatalf("unexpected palette %v", pal)
	}

	want := []byte{0, 1, 0, 1, 1, 0}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("pixel %d: want %d; have %d", i, want[i], img.Pix[i])
		}
	}

	// The conversion must round trip through the palette.
	dst := Resolve(img, pal)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if have, want := dst.RGBAAt(x, y), src.RGBAAt(x, y); have != want {
				t.Fatalf("texel (%d, %d):\nwant: %v\nhave: %v", x, y, want, have)
			}
		}
	}
}

func TestFromImageTooManyColors(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 17, 16))
	for i := 0; i < 17*16; i++ {
		src.SetRGBA(i%17, i/17, color.RGBA{uint8(i), uint8(i >> 8), 0, 255})
	}

	_, _, err := FromImage(src)
	if errors.Cause(err) != ErrTooManyColors {
		t.Fatalf("want %v; have %v", ErrTooManyColors, err)
	}
}

func TestFromImageEmpty(t *testing.T) {
	_, _, err := FromImage(image.NewRGBA(image.Rectangle{}))
	if errors.Cause(err) != ErrDimensions {
		t.Fatalf("want %v; have %v", ErrDimensions, err)
	}
}
