// Package render fills a canvas by running the escape-time iteration for every
// pixel and coloring the result.
package render

import (
	"context"
	"runtime"
	"sync"

	"github.com/willbeason/mandelbrot/pkg/palette"
	"github.com/willbeason/mandelbrot/pkg/transforms"
	"github.com/willbeason/mandelbrot/pkg/view"
)

// Options are the inputs of a render pass.
type Options struct {
	State   view.State
	Canvas  view.Canvas
	Palette palette.Choice
	Seeds   palette.Seeds

	// Parallel is the number of worker goroutines. Zero means one per CPU.
	Parallel int
}

// Render colors every pixel of the canvas.
//
// Rows are handed to workers over a channel, and each worker writes only the
// rows it receives. Cancelling ctx stops the workers between rows and Render
// returns ctx.Err().
func Render(ctx context.Context, opts Options) (*Grid, error) {
	escaper := transforms.Mandelbrot{Limit: opts.State.Limit}
	return RenderWith(ctx, escaper, opts)
}

// RenderWith is Render with the escape count computed by e.
func RenderWith(ctx context.Context, e transforms.Escaper, opts Options) (*Grid, error) {
	c := opts.Canvas
	grid := NewGrid(c.Width, c.Height)

	yChannel := make(chan int)

	go func() {
		defer close(yChannel)
		for y := 0; y < c.Height; y++ {
			select {
			case yChannel <- y:
			case <-ctx.Done():
				return
			}
		}
	}()

	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}

	ywg := sync.WaitGroup{}
	ywg.Add(parallel)
	for i := 0; i < parallel; i++ {
		go func() {
			defer ywg.Done()
			for y := range yChannel {
				if ctx.Err() != nil {
					continue
				}
				renderRow(grid.Row(y), c.Row(y), e, opts)
			}
		}()
	}
	ywg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return grid, nil
}

// renderRow fills one screen row. row is the mapper's bottom-up row index.
func renderRow(out []palette.Color, row int, e transforms.Escaper, opts Options) {
	for x := range out {
		z := view.Map(x, row, opts.State, opts.Canvas)
		tries := e.Escape(z)
		out[x] = palette.ColorFor(tries, opts.State.Limit, opts.Palette, opts.Seeds)
	}
}
