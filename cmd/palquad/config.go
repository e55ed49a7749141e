package main

import (
	"flag"
	"fmt"
	"os"
)

// Config defines program configuration.
type Config struct {
	Width       int     // Window width in pixels.
	Height      int     // Window height in pixels.
	ScaleFactor int     // Amount by which each sprite texel is scaled.
	X, Y        float32 // Position of the sprite's top-left corner, in pixels.
	VSync       bool    // Wait for vertical sync when presenting a frame?
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config
	c.Width = 1024
	c.Height = 768
	c.ScaleFactor = 1
	c.VSync = true

	flag.Usage = func() {
		fmt.Printf("%s [options]\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.IntVar(&c.Width, "width", c.Width, "Window width in pixels.")
	flag.IntVar(&c.Height, "height", c.Height, "Window height in pixels.")
	flag.IntVar(&c.ScaleFactor, "scale-factor", c.ScaleFactor, "Pixel scale factor for the sprite.")
	x := flag.Float64("x", 0, "Horizontal sprite position in pixels.")
	y := flag.Float64("y", 0, "Vertical sprite position in pixels.")
	flag.BoolVar(&c.VSync, "vsync", c.VSync, "Synchronize frame presentation with the display refresh.")

	version := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *version {
		fmt.Println(Version())
		os.Exit(0)
	}

	if c.Width <= 0 || c.Height <= 0 || c.ScaleFactor <= 0 {
		fmt.Fprintln(os.Stderr, "width, height and scale-factor must be positive")
		os.Exit(1)
	}

	c.X = float32(*x)
	c.Y = float32(*y)
	return &c
}
