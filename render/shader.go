package render

// Vertex attribute locations, matching the layout qualifiers below.
const (
	posAttrib = 0
	uvAttrib  = 1
)

// Texture units the sampler uniforms are bound to.
const (
	spriteUnit  = 0
	paletteUnit = 1
)

const vertex = `
#version 330 core

layout (location = 0) in vec2 pos;
layout (location = 1) in vec2 uv;

uniform mat4 projection;

out vec2 fragTexCoord;

void main() {
    fragTexCoord = uv;
    gl_Position  = projection * vec4(pos, 0.0, 1.0);
}
`

const fragment = `
#version 330 core

uniform usampler2D spriteData;
uniform sampler1D  palette;

in  vec2 fragTexCoord;
out vec4 outputColor;

void main() {
    // The sprite texture holds raw palette indices. It is an unsigned integer
    // texture, so the red channel arrives as the literal byte value.
    uint index = texture(spriteData, fragTexCoord).r;

    // Indices past the end of the palette resolve to its last entry.
    int last = textureSize(palette, 0) - 1;
    outputColor = texelFetch(palette, min(int(index), last), 0);
}
`
