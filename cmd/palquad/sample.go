package main

// The sprite drawn by the demo: 5 x 3 palette indices.
const (
	spriteWidth  = 5
	spriteHeight = 3
)

var spriteData = []byte{
	0, 1, 1, 0, 2,
	0, 0, 0, 2, 1,
	0, 0, 1, 1, 1,
}

// paletteData holds RGB triples: white, red, green.
var paletteData = []byte{
	255, 255, 255,
	255, 0, 0,
	0, 255, 0,
}
