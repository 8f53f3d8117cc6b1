package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/willbeason/mandelbrot/pkg/palette"
	"github.com/willbeason/mandelbrot/pkg/view"
	"github.com/willbeason/mandelbrot/pkg/viewer"
)

// options are the flags shared by every command that renders.
type options struct {
	x, y, scale   float64
	limit         uint
	width, height int
	preset        string
	palette       palette.Choice
	seed          int64
}

func newOptions() *options {
	return &options{
		x:       view.DefaultState.CenterX,
		y:       view.DefaultState.CenterY,
		scale:   view.DefaultState.Scale,
		limit:   view.DefaultState.Limit,
		width:   view.DefaultCanvas.Width,
		height:  view.DefaultCanvas.Height,
		palette: palette.BlackWhite,
	}
}

func (o *options) addFlags(flags *pflag.FlagSet) {
	flags.Float64Var(&o.x, "x", o.x, "real part of the point at the center of the canvas")
	flags.Float64Var(&o.y, "y", o.y, "imaginary part of the point at the center of the canvas")
	flags.Float64Var(&o.scale, "scale", o.scale, "distance in the plane between neighbouring pixels")
	flags.UintVar(&o.limit, "limit", o.limit, "maximum iterations per pixel")
	flags.IntVar(&o.width, "width", o.width, "canvas width in pixels")
	flags.IntVar(&o.height, "height", o.height, "canvas height in pixels")
	flags.StringVar(&o.preset, "preset", o.preset, "named region to show instead of --x, --y and --scale")
	flags.Var(&o.palette, "palette", "one of banded, blackwhite, christmas, aquamarine, random")
	flags.Int64Var(&o.seed, "seed", o.seed, "seed for the random palette; 0 picks one from the clock")
}

func (o *options) canvas() (view.Canvas, error) {
	if o.width <= 0 || o.height <= 0 {
		return view.Canvas{}, fmt.Errorf("canvas must be at least 1x1, got %dx%d", o.width, o.height)
	}
	return view.Canvas{Width: o.width, Height: o.height}, nil
}

// seeds draws the random palette's seeds. Called once per process.
func (o *options) seeds() palette.Seeds {
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return palette.NewSeeds(rand.New(rand.NewSource(seed)))
}

// newSession builds a session from the flags.
func (o *options) newSession(seeds palette.Seeds) (*viewer.Session, error) {
	c, err := o.canvas()
	if err != nil {
		return nil, err
	}

	s := viewer.NewSession(c, seeds)

	err = s.SetState(view.State{CenterX: o.x, CenterY: o.y, Scale: o.scale, Limit: o.limit})
	if err != nil {
		return nil, err
	}

	if o.preset != "" {
		if err := s.SelectPreset(o.preset); err != nil {
			return nil, err
		}
	}

	if err := s.SelectPalette(o.palette.String()); err != nil {
		return nil, err
	}

	return s, nil
}

func mainCmd() *cobra.Command {
	cmd := renderCmd()
	cmd.Use = "mandelbrot"
	cmd.Short = "Render the Mandelbrot set"

	cmd.AddCommand(renderCmd(), zoomCmd(), presetsCmd(), serveCmd())

	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		stop()
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
