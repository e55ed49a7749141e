package geom

import "github.com/go-gl/mathgl/mgl32"

// Vertex defines a single mesh vertex.
type Vertex struct {
	Pos mgl32.Vec2 // World space position.
	UV  mgl32.Vec2 // Texture coordinate in [0,1].
}

// QuadIndices splits the four vertices returned by Quad into two triangles.
var QuadIndices = [6]uint32{
	0, 1, 3,
	1, 2, 3,
}

// Quad returns the corners of the rectangle at (x, y) with the given
// extents, in the order bottom-left, top-left, top-right, bottom-right.
// Each corner carries the matching texture coordinate.
func Quad(x, y, w, h float32) [4]Vertex {
	return [4]Vertex{
		{Pos: mgl32.Vec2{x, y}, UV: mgl32.Vec2{0, 0}},
		{Pos: mgl32.Vec2{x, y + h}, UV: mgl32.Vec2{0, 1}},
		{Pos: mgl32.Vec2{x + w, y + h}, UV: mgl32.Vec2{1, 1}},
		{Pos: mgl32.Vec2{x + w, y}, UV: mgl32.Vec2{1, 0}},
	}
}
