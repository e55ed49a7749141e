package indexed

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// FromImage converts src into an index image and its palette.
//
// Paletted images keep their own palette. Any other image gets a palette of
// its distinct colors in the order they are first encountered, scanning rows
// top to bottom. Alpha is discarded.
func FromImage(src image.Image) (*Image, Palette, error) {
	if p, ok := src.(*image.Paletted); ok {
		return fromPaletted(p)
	}

	r := src.Bounds()
	if r.Empty() {
		return nil, nil, errors.Wrapf(ErrDimensions, "empty image")
	}

	pix := make([]byte, 0, r.Dx()*r.Dy())
	slots := make(map[RGB]uint8)
	var pal Palette

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := toRGB(src.At(x, y))

			n, ok := slots[c]
			if !ok {
				if len(pal) == MaxColors {
					return nil, nil, errors.Wrapf(ErrTooManyColors, "image has more than %d colors", MaxColors)
				}

				n = uint8(len(pal))
				slots[c] = n
				pal = append(pal, c)
			}

			pix = append(pix, n)
		}
	}

	img, err := NewImage(r.Dx(), r.Dy(), pix)
	return img, pal, err
}

func fromPaletted(src *image.Paletted) (*Image, Palette, error) {
	if len(src.Palette) == 0 {
		return nil, nil, errors.Wrapf(ErrPalette, "image has no palette")
	}

	if len(src.Palette) > MaxColors {
		return nil, nil, errors.Wrapf(ErrTooManyColors, "%d entries; at most %d are supported", len(src.Palette), MaxColors)
	}

	r := src.Bounds()
	if r.Empty() {
		return nil, nil, errors.Wrapf(ErrDimensions, "empty image")
	}

	pal := make(Palette, len(src.Palette))
	for i, c := range src.Palette {
		pal[i] = toRGB(c)
	}

	pix := make([]byte, 0, r.Dx()*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		off := src.PixOffset(r.Min.X, y)
		pix = append(pix, src.Pix[off:off+r.Dx()]...)
	}

	img, err := NewImage(r.Dx(), r.Dy(), pix)
	return img, pal, err
}

func toRGB(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{n.R, n.G, n.B}
}
