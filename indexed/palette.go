package indexed

import (
	"image/color"

	"github.com/pkg/errors"
)

// MaxColors defines the largest palette an 8-bit index can address.
const MaxColors = 256

// RGB defines a single palette entry.
type RGB [3]uint8

// RGBA returns c as an opaque color.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
}

// Palette defines an ordered list of colors, addressed by index.
type Palette []RGB

// ParsePalette reads a palette from a flat list of RGB triples.
func ParsePalette(b []byte) (Palette, error) {
	if len(b) == 0 || len(b)%3 != 0 {
		return nil, errors.Wrapf(ErrPalette, "length %d is not a non-zero multiple of 3", len(b))
	}

	if len(b)/3 > MaxColors {
		return nil, errors.Wrapf(ErrTooManyColors, "%d entries; at most %d are supported", len(b)/3, MaxColors)
	}

	p := make(Palette, len(b)/3)
	for i := range p {
		copy(p[i][:], b[i*3:])
	}

	return p, nil
}

// Bytes returns p as a flat list of RGB triples.
func (p Palette) Bytes() []byte {
	out := make([]byte, 0, len(p)*3)
	for _, c := range p {
		out = append(out, c[:]...)
	}
	return out
}

// Lookup returns the color for index i.
// Indices past the end of the palette resolve to the last entry.
// Lookup panics when p is empty.
func (p Palette) Lookup(i uint8) RGB {
	if int(i) >= len(p) {
		return p[len(p)-1]
	}
	return p[i]
}
