package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// Grid is a rendered canvas, one color per pixel, row-major with y = 0 at the top.
type Grid struct {
	Width, Height int
	Pixels        []color.RGBA
}

func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// At returns the color of screen pixel (x, y).
func (g *Grid) At(x, y int) color.RGBA {
	return g.Pixels[x+y*g.Width]
}

func (g *Grid) Set(x, y int, c color.RGBA) {
	g.Pixels[x+y*g.Width] = c
}

// Row returns the colors of screen row y.
func (g *Grid) Row(y int) []color.RGBA {
	return g.Pixels[y*g.Width : (y+1)*g.Width]
}

// Image copies the grid into an RGBA image.
func (g *Grid) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for i, c := range g.Pixels {
		img.SetRGBA(i%g.Width, i/g.Width, c)
	}
	return img
}

// EncodePNG writes the grid to w as a PNG.
func (g *Grid) EncodePNG(w io.Writer) error {
	err := png.Encode(w, g.Image())
	if err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
