// Package indexed implements indexed-color images: a grid of palette slot
// numbers plus the palette they refer to.
package indexed

import (
	"math"

	"github.com/pkg/errors"
)

// Known error conditions.
var (
	ErrDimensions    = errors.New("invalid image dimensions")
	ErrPalette       = errors.New("invalid palette")
	ErrTooManyColors = errors.New("too many colors")
)

// Image defines a grid of palette indices, one byte per texel.
// Pix holds Height rows of Width bytes each, top row first.
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// NewImage creates an image with the given extents over pix.
// The length of pix must equal width*height exactly.
func NewImage(width, height int, pix []byte) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrDimensions, "%d x %d", width, height)
	}

	if len(pix) != width*height {
		return nil, errors.Wrapf(ErrDimensions, "%d bytes can not hold %d x %d texels", len(pix), width, height)
	}

	return &Image{
		Width:  width,
		Height: height,
		Pix:    pix,
	}, nil
}

// At returns the index stored at texel (x, y).
// Coordinates outside the image are clamped to the nearest edge.
func (m *Image) At(x, y int) uint8 {
	x = clamp(x, m.Width)
	y = clamp(y, m.Height)
	return m.Pix[y*m.Width+x]
}

// Sample returns the index at texture coordinate (u, v) using nearest
// neighbour filtering with clamp-to-edge wrapping, the same way the GPU
// samples the index texture.
func (m *Image) Sample(u, v float32) uint8 {
	return m.At(texel(u, m.Width), texel(v, m.Height))
}

// Max returns the largest index stored in the image.
func (m *Image) Max() uint8 {
	var n uint8
	for _, v := range m.Pix {
		if v > n {
			n = v
		}
	}
	return n
}

// texel returns the texel that covers normalized coordinate c
// along an axis of n texels. NaN maps to the first texel.
func texel(c float32, n int) int {
	if !(c > 0) {
		return 0
	}
	if c >= 1 {
		return n - 1
	}
	return clamp(int(math.Floor(float64(c)*float64(n))), n)
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
