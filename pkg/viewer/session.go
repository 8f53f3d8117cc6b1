// Package viewer holds the interactive state of a Mandelbrot viewer: the text
// parameters, click-to-zoom, presets and palette selection.
package viewer

import (
	"context"
	"fmt"
	"sync"

	"github.com/willbeason/mandelbrot/pkg/palette"
	"github.com/willbeason/mandelbrot/pkg/render"
	"github.com/willbeason/mandelbrot/pkg/view"
)

// Params are the four text inputs of the viewer.
type Params struct {
	X     string `json:"x"`
	Y     string `json:"y"`
	Scale string `json:"scale"`
	Limit string `json:"limit"`
}

// Snapshot is what a viewer displays besides the image.
type Snapshot struct {
	Params  Params         `json:"params"`
	Palette palette.Choice `json:"palette"`
	Width   int            `json:"width"`
	Height  int            `json:"height"`
}

// A Session is safe for concurrent use.
type Session struct {
	canvas view.Canvas
	seeds  palette.Seeds

	mu     sync.Mutex
	state  view.State
	choice palette.Choice
}

// NewSession starts a session showing view.DefaultState in black and white.
// seeds are used by the Random palette for the lifetime of the session.
func NewSession(canvas view.Canvas, seeds palette.Seeds) *Session {
	return &Session{
		canvas: canvas,
		seeds:  seeds,
		state:  view.DefaultState,
		choice: palette.BlackWhite,
	}
}

func (s *Session) State() view.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetState replaces the view if it is valid.
func (s *Session) SetState(st view.State) error {
	if err := st.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	return nil
}

func (s *Session) Palette() palette.Choice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.choice
}

func (s *Session) Canvas() view.Canvas {
	return s.canvas
}

// Recompute re-reads the text parameters. On error the view is unchanged.
func (s *Session) Recompute(p Params) error {
	st, err := view.Parse(p.X, p.Y, p.Scale, p.Limit)
	if err != nil {
		return fmt.Errorf("could not read parameters: %w", err)
	}

	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	return nil
}

// Click zooms in on screen pixel (x, y). Clicks left or right of the canvas
// are ignored and report false.
func (s *Session) Click(x, y int) bool {
	if x < 0 || x >= s.canvas.Width {
		return false
	}

	s.mu.Lock()
	s.state = s.state.Recenter(x, y, s.canvas)
	s.mu.Unlock()
	return true
}

// SelectPreset jumps to the named preset, keeping the iteration limit.
func (s *Session) SelectPreset(name string) error {
	p, err := view.LookupPreset(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.state = p.Apply(s.state)
	s.mu.Unlock()
	return nil
}

func (s *Session) SelectPalette(name string) error {
	c, err := palette.ParseChoice(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.choice = c
	s.mu.Unlock()
	return nil
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	st, c := s.state, s.choice
	s.mu.Unlock()

	var p Params
	p.X, p.Y, p.Scale, p.Limit = st.Format()

	return Snapshot{
		Params:  p,
		Palette: c,
		Width:   s.canvas.Width,
		Height:  s.canvas.Height,
	}
}

// Options returns the render inputs for the current view.
func (s *Session) Options() render.Options {
	s.mu.Lock()
	defer s.mu.Unlock()

	return render.Options{
		State:   s.state,
		Canvas:  s.canvas,
		Palette: s.choice,
		Seeds:   s.seeds,
	}
}

// Render draws the current view.
func (s *Session) Render(ctx context.Context) (*render.Grid, error) {
	return render.Render(ctx, s.Options())
}
