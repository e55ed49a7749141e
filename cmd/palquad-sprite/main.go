// Command palquad-sprite converts an image into the index and palette byte
// literals embedded by palquad.
package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/pkg/errors"

	"github.com/hexaflex/palquad/indexed"
)

func main() {
	if err := run(parseArgs()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run converts the configured input image and writes the generated source
// and, if requested, a preview of the resolved colors.
func run(c *Config) error {
	img, err := loadImage(c.Input)
	if err != nil {
		return err
	}

	sprite, palette, err := indexed.FromImage(img)
	if err != nil {
		return errors.Wrapf(err, "%s", c.Input)
	}

	out, closeOut, err := makeWriter(c.Output)
	if err != nil {
		return err
	}

	err = translate(out, c.Package, sprite, palette)
	if err = firstError(err, closeOut()); err != nil {
		return errors.Wrapf(err, "write %s", outputName(c.Output))
	}

	if c.Preview != "" {
		return writePreview(c.Preview, sprite, palette)
	}

	return nil
}

// translate writes sprite and palette to out as Go source.
func translate(out io.Writer, pkg string, sprite *indexed.Image, palette indexed.Palette) error {
	w := &errWriter{w: out}

	w.printf("// Code generated by %s. DO NOT EDIT.\n\n", AppName)
	w.printf("package %s\n\n", pkg)
	w.printf("const (\n\tspriteWidth  = %d\n\tspriteHeight = %d\n)\n\n", sprite.Width, sprite.Height)

	w.printf("var spriteData = []byte{\n")
	for y := 0; y < sprite.Height; y++ {
		w.printf("\t")
		row := sprite.Pix[y*sprite.Width : (y+1)*sprite.Width]
		for x, v := range row {
			if x > 0 {
				w.printf(" ")
			}
			w.printf("%d,", v)
		}
		w.printf("\n")
	}
	w.printf("}\n\n")

	w.printf("var paletteData = []byte{\n")
	for _, c := range palette {
		w.printf("\t%d, %d, %d,\n", c[0], c[1], c[2])
	}
	w.printf("}\n")

	return w.err
}

// errWriter remembers the first write error and skips all writes after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) printf(f string, argv ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, f, argv...)
}

// loadImage loads an image from the input file.
func loadImage(file string) (image.Image, error) {
	fd, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer fd.Close()

	img, _, err := image.Decode(fd)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", file)
	}

	return img, nil
}

// writePreview stores the sprite, resolved through its palette, as a PNG file.
func writePreview(file string, sprite *indexed.Image, palette indexed.Palette) error {
	out, closeOut, err := makeWriter(file)
	if err != nil {
		return err
	}

	err = png.Encode(out, indexed.Resolve(sprite, palette))
	if err = firstError(err, closeOut()); err != nil {
		return errors.Wrapf(err, "write %s", file)
	}

	return nil
}

// makeWriter creates an output writer and a close function for it.
// An empty file name writes to stdout.
func makeWriter(file string) (io.Writer, func() error, error) {
	if file == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	dir, _ := filepath.Split(file)
	if dir != "" {
		if err := os.MkdirAll(dir, 0744); err != nil {
			return nil, nil, err
		}
	}

	fd, err := os.Create(file)
	if err != nil {
		return nil, nil, err
	}

	return fd, fd.Close, nil
}

// firstError returns the first non-nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func outputName(file string) string {
	if file == "" {
		return "stdout"
	}
	return file
}
