package render

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"

	"github.com/hexaflex/palquad/geom"
	"github.com/hexaflex/palquad/indexed"
)

// Interleaved vertex layout: pos.x, pos.y, uv.x, uv.y.
const (
	floatSize    = 4
	vertexFloats = 4
	vertexStride = vertexFloats * floatSize
	uvOffset     = 2 * floatSize
)

// packVertices interleaves position and texture coordinates for upload.
func packVertices(verts []geom.Vertex) []float32 {
	out := make([]float32, 0, len(verts)*vertexFloats)
	for _, v := range verts {
		out = append(out, v.Pos[0], v.Pos[1], v.UV[0], v.UV[1])
	}
	return out
}

// makeTexture creates a new texture for the given target.
// Sampling is exact: nearest filtering and no wrapping.
func makeTexture(target uint32) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(target, tex)
	gl.TexParameteri(target, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(target, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(target, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	if target == gl.TEXTURE_2D {
		gl.TexParameteri(target, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	}
	return tex
}

// glStr returns v as a C string, suitable for use with opengl.
func glStr(v string) *uint8 {
	return gl.Str(v + "\x00")
}

// uploadIndexTexture stores img in texture as an unsigned integer texture.
// Texel values reach the shader unnormalized.
func uploadIndexTexture(texture uint32, img *indexed.Image) {
	gl.ActiveTexture(gl.TEXTURE0 + spriteUnit)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8UI, int32(img.Width), int32(img.Height), 0,
		gl.RED_INTEGER, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
}

// uploadPaletteTexture stores pal in a one-dimensional RGB8 texture.
func uploadPaletteTexture(texture uint32, pal indexed.Palette) {
	gl.ActiveTexture(gl.TEXTURE0 + paletteUnit)
	gl.BindTexture(gl.TEXTURE_1D, texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage1D(gl.TEXTURE_1D, 0, gl.RGB8, int32(len(pal)), 0,
		gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(pal.Bytes()))
}

// compileProgram compiles the given shader sources into a program.
func compileProgram(vertex, fragment string) (uint32, error) {
	vs, err := compileShader(vertex, gl.VERTEX_SHADER)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to compile vertex shader")
	}

	defer gl.DeleteShader(vs)

	fs, err := compileShader(fragment, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to compile fragment shader")
	}

	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, errors.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))
	}

	return program, nil
}

// compileShader compiles the given shader source.
func compileShader(source string, stype uint32) (uint32, error) {
	shader := gl.CreateShader(stype)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, errors.New(strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}
