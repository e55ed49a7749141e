package indexed

import "image"

// Resolve converts m into a true color image by sampling every texel center
// and looking the index up in pal. The result matches what the renderer draws for a quad of exactly
// m.Width x m.Height pixels.
func Resolve(m *Image, pal Palette) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))

	for y := 0; y < m.Height; y++ {
		v := (float32(y) + 0.5) / float32(m.Height)
		for x := 0; x < m.Width; x++ {
			u := (float32(x) + 0.5) / float32(m.Width)
			dst.SetRGBA(x, y, ResolveAt(m, pal, u, v).RGBA())
		}
	}

	return dst
}

// ResolveAt returns the color at texture coordinate (u, v).
func ResolveAt(m *Image, pal Palette, u, v float32) RGB {
	return pal.Lookup(m.Sample(u, v))
}
