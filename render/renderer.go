// Package render draws an indexed-color textured quad with OpenGL.
//
// The quad's texture holds palette indices rather than colors. The fragment
// shader fetches the raw index and resolves it through a one-dimensional
// palette texture.
package render

import (
	"log"
	"math"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"

	"github.com/hexaflex/palquad/geom"
	"github.com/hexaflex/palquad/indexed"
)

// Config defines everything the renderer needs to build its GPU resources.
type Config struct {
	Projection geom.Matrix     // Maps world coordinates to clip space.
	Mesh       [4]geom.Vertex  // Quad corners, as returned by geom.Quad.
	Sprite     *indexed.Image  // Palette indices.
	Palette    indexed.Palette // Colors addressed by the sprite's indices.
	Background [4]float32      // Framebuffer clear color (RGBA).
}

// validate checks c for conditions that would otherwise produce GL errors
// or an incomplete texture.
func (c *Config) validate() error {
	var errs ErrorSet

	if c.Sprite == nil {
		errs.Append(errors.Wrapf(indexed.ErrDimensions, "missing sprite data"))
	} else if _, err := indexed.NewImage(c.Sprite.Width, c.Sprite.Height, c.Sprite.Pix); err != nil {
		errs.Append(errors.Wrapf(err, "sprite data"))
	}

	if len(c.Palette) == 0 || len(c.Palette) > indexed.MaxColors {
		errs.Append(errors.Wrapf(indexed.ErrPalette, "palette has %d entries", len(c.Palette)))
	}

	if errs.Len() == 0 {
		return nil
	}

	return errs
}

// onScreen returns true if the projected mesh overlaps clip space.
func (c *Config) onScreen() bool {
	minX, minY := float32(math.Inf(1)), float32(math.Inf(1))
	maxX, maxY := float32(math.Inf(-1)), float32(math.Inf(-1))

	for _, v := range c.Mesh {
		p := c.Projection.Transform(v.Pos[0], v.Pos[1], 0, 1)
		x, y := p[0]/p[3], p[1]/p[3]

		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	return maxX > -1 && minX < 1 && maxY > -1 && minY < 1
}

// Renderer owns the shader program, mesh buffers and textures used to draw
// a single indexed-color quad. All resources are created by Startup and
// released by Shutdown. Nothing is modified between frames.
type Renderer struct {
	config     Config
	shader     uint32
	vao        uint32
	vbo        uint32
	ibo        uint32
	spriteTex  uint32
	paletteTex uint32
	indexCount int32
	started    bool
}

// New creates a renderer for the given configuration.
// GPU resources are not allocated until Startup is called.
func New(config Config) *Renderer {
	return &Renderer{config: config}
}

// Startup creates all GPU resources. It requires a current OpenGL context.
// If it fails, whatever was created so far is released again.
func (r *Renderer) Startup() error {
	if r.started {
		return nil
	}

	if err := r.config.validate(); err != nil {
		return err
	}

	if !r.config.onScreen() {
		log.Println("sprite quad lies entirely outside the viewport")
	}

	r.started = true

	if err := r.startup(); err != nil {
		return releaseError(err, r.Shutdown())
	}

	return nil
}

// releaseError folds an error from releasing partially created resources
// into the error which caused the release.
func releaseError(err, release error) error {
	if release == nil {
		return err
	}
	return ErrorSet{err, errors.Wrapf(release, "release after failed startup")}
}

func (r *Renderer) startup() error {
	var err error

	r.shader, err = compileProgram(vertex, fragment)
	if err != nil {
		return errors.Wrapf(err, "failed to compile shaders")
	}

	gl.UseProgram(r.shader)

	if err = r.makeMesh(); err != nil {
		return err
	}

	if err = r.makeTextures(); err != nil {
		return err
	}

	projection := r.config.Projection.Mat4()
	gl.UniformMatrix4fv(gl.GetUniformLocation(r.shader, glStr("projection")), 1, false, &projection[0])

	if err = checkError("projection"); err != nil {
		return err
	}

	bg := r.config.Background
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
	return nil
}

// makeMesh uploads the quad vertices and indices and records their
// layout in a vertex array.
func (r *Renderer) makeMesh() error {
	vertices := packVertices(r.config.Mesh[:])
	indices := geom.QuadIndices
	r.indexCount = int32(len(indices))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*int(unsafe.Sizeof(indices[0])), gl.Ptr(&indices[0]), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(posAttrib)
	gl.VertexAttribPointer(posAttrib, 2, gl.FLOAT, false, vertexStride, gl.PtrOffset(0))

	gl.EnableVertexAttribArray(uvAttrib)
	gl.VertexAttribPointer(uvAttrib, 2, gl.FLOAT, false, vertexStride, gl.PtrOffset(uvOffset))

	gl.BindVertexArray(0)
	return checkError("bind buffer objects")
}

// makeTextures uploads the sprite and palette and points the shader's
// samplers at them.
func (r *Renderer) makeTextures() error {
	sprite := r.config.Sprite
	log.Printf("sprite: %d x %d texels, palette: %d colors", sprite.Width, sprite.Height, len(r.config.Palette))

	if int(sprite.Max()) >= len(r.config.Palette) {
		log.Printf("sprite uses index %d; indices past %d resolve to the last palette entry",
			sprite.Max(), len(r.config.Palette)-1)
	}

	gl.ActiveTexture(gl.TEXTURE0 + spriteUnit)
	r.spriteTex = makeTexture(gl.TEXTURE_2D)
	uploadIndexTexture(r.spriteTex, sprite)
	gl.Uniform1i(gl.GetUniformLocation(r.shader, glStr("spriteData")), spriteUnit)

	if err := checkError("sprite texture"); err != nil {
		return err
	}

	gl.ActiveTexture(gl.TEXTURE0 + paletteUnit)
	r.paletteTex = makeTexture(gl.TEXTURE_1D)
	uploadPaletteTexture(r.paletteTex, r.config.Palette)
	gl.Uniform1i(gl.GetUniformLocation(r.shader, glStr("palette")), paletteUnit)

	return checkError("palette texture")
}

// Draw clears the framebuffer and renders the quad.
// The caller presents the result.
func (r *Renderer) Draw() error {
	if !r.started {
		return nil
	}

	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	err := checkError("render")
	gl.BindVertexArray(0)

	return err
}

// Shutdown releases all GPU resources. Calling it more than once is a no-op.
func (r *Renderer) Shutdown() error {
	if !r.started {
		return nil
	}

	r.started = false

	if r.paletteTex != 0 {
		gl.DeleteTextures(1, &r.paletteTex)
	}
	if r.spriteTex != 0 {
		gl.DeleteTextures(1, &r.spriteTex)
	}
	if r.ibo != 0 {
		gl.DeleteBuffers(1, &r.ibo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}

	r.paletteTex, r.spriteTex = 0, 0
	r.ibo, r.vbo, r.vao = 0, 0, 0
	r.shader = 0

	return checkError("shutdown")
}
