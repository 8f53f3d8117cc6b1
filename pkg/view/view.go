// Package view describes which part of the complex plane is shown on a canvas and
// maps canvas pixels onto that part of the plane.
package view

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidScale = errors.New("scale must be a positive finite number")

var ErrInvalidCenter = errors.New("center must be finite")

// A Canvas is the pixel grid a view is rendered onto.
type Canvas struct {
	Width, Height int
}

// DefaultCanvas is the 600x600 drawing area of the viewer.
var DefaultCanvas = Canvas{Width: 600, Height: 600}

// Pixels is the number of pixels on the canvas.
func (c Canvas) Pixels() int {
	return c.Width * c.Height
}

// State is the window onto the complex plane plus the iteration cap.
type State struct {
	// CenterX and CenterY are the point of the plane shown in the middle of the canvas.
	CenterX, CenterY float64

	// Scale is the distance in the plane between two neighbouring pixels.
	Scale float64

	// Limit is the maximum number of iterations per pixel.
	Limit uint
}

// DefaultState is the view shown on startup.
var DefaultState = State{
	CenterX: 0.0,
	CenterY: 0.0,
	Scale:   0.01,
	Limit:   400,
}

// Validate reports whether the state can be rendered.
func (s State) Validate() error {
	if math.IsNaN(s.CenterX) || math.IsInf(s.CenterX, 0) ||
		math.IsNaN(s.CenterY) || math.IsInf(s.CenterY, 0) {
		return fmt.Errorf("%w: (%g, %g)", ErrInvalidCenter, s.CenterX, s.CenterY)
	}
	if !(s.Scale > 0) || math.IsInf(s.Scale, 1) {
		return fmt.Errorf("%w: %g", ErrInvalidScale, s.Scale)
	}
	return nil
}

// scaledSize is the extent of the plane covered by the canvas width.
func (s State) scaledSize(c Canvas) float64 {
	return s.Scale * float64(c.Width)
}

// Map returns the point of the plane at pixel (col, row).
//
// row counts upwards from the bottom of the canvas, so larger rows have larger
// imaginary parts. Both axes are offset by half the width-derived extent, so
// non-square canvases are anchored the same way horizontally and vertically.
func Map(col, row int, s State, c Canvas) complex128 {
	scaledSize := s.scaledSize(c)

	re := s.Scale*float64(col) + (s.CenterX - scaledSize/2)
	im := s.Scale*float64(row) + (s.CenterY - scaledSize/2)

	return complex(re, im)
}

// Row converts a screen row, counted downwards from the top, into the row
// passed to Map.
func (c Canvas) Row(y int) int {
	return c.Height - y
}

// Recenter returns the state after clicking screen pixel (x, y): the view is
// centered on the clicked point and the scale is halved.
func (s State) Recenter(x, y int, c Canvas) State {
	scaledSize := s.scaledSize(c)
	width := float64(c.Width)

	s.CenterX = s.CenterX - 0.5*scaledSize + (float64(x)/width)*scaledSize
	s.CenterY = s.CenterY - 0.5*scaledSize + (float64(c.Height-y)/width)*scaledSize
	s.Scale *= 0.5

	return s
}
