package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/willbeason/mandelbrot/pkg/palette"
	"github.com/willbeason/mandelbrot/pkg/render"
	"github.com/willbeason/mandelbrot/pkg/view"
	"github.com/willbeason/mandelbrot/pkg/viewer"
)

func renderCmd() *cobra.Command {
	opts := newOptions()
	var out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the view to a PNG file",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true

			s, err := opts.newSession(opts.seeds())
			if err != nil {
				return err
			}

			return renderSession(cmd, s, out)
		},
	}

	opts.addFlags(cmd.Flags())
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file; defaults to out/<timestamp>.png")

	return cmd
}

func zoomCmd() *cobra.Command {
	opts := newOptions()
	var out string

	cmd := &cobra.Command{
		Use:   "zoom X,Y...",
		Short: "Click on canvas pixels in order, then render the resulting view",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clicks := make([][2]int, len(args))
			for i, arg := range args {
				x, y, err := parseClick(arg)
				if err != nil {
					return err
				}
				clicks[i] = [2]int{x, y}
			}

			cmd.SilenceUsage = true

			s, err := opts.newSession(opts.seeds())
			if err != nil {
				return err
			}

			for _, c := range clicks {
				if !s.Click(c[0], c[1]) {
					fmt.Fprintf(cmd.ErrOrStderr(), "click (%d, %d) is outside the canvas, ignored\n", c[0], c[1])
				}
			}

			return renderSession(cmd, s, out)
		},
	}

	opts.addFlags(cmd.Flags())
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file; defaults to out/<timestamp>.png")

	return cmd
}

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the named regions and palettes",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			for _, p := range view.Presets {
				fmt.Fprintf(w, "%-10s x=%g y=%g scale=%g\n", p.Name, p.CenterX, p.CenterY, p.Scale)
			}

			names := make([]string, len(palette.Choices))
			for i, c := range palette.Choices {
				names[i] = c.String()
			}
			fmt.Fprintf(w, "palettes: %s\n", strings.Join(names, ", "))
		},
	}
}

// parseClick reads a click position written as "x,y".
func parseClick(arg string) (int, int, error) {
	xs, ys, ok := strings.Cut(arg, ",")
	if !ok {
		return 0, 0, fmt.Errorf("click %q: want x,y", arg)
	}

	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return 0, 0, fmt.Errorf("click %q: %w", arg, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return 0, 0, fmt.Errorf("click %q: %w", arg, err)
	}

	return x, y, nil
}

func renderSession(cmd *cobra.Command, s *viewer.Session, out string) error {
	start := time.Now()
	grid, err := s.Render(cmd.Context())
	if err != nil {
		return err
	}

	path, err := writePNG(grid, out)
	if err != nil {
		return err
	}

	printSnapshot(cmd.OutOrStdout(), s.Snapshot())
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s in %s\n", path, time.Since(start).Round(time.Millisecond))

	return nil
}

func printSnapshot(w io.Writer, snap viewer.Snapshot) {
	p := snap.Params
	fmt.Fprintf(w, "x=%s y=%s scale=%s limit=%s palette=%s\n", p.X, p.Y, p.Scale, p.Limit, snap.Palette)
}

// writePNG encodes grid to path, or to a timestamped file under out/ if path is empty.
func writePNG(grid *render.Grid, path string) (string, error) {
	if path == "" {
		err := os.MkdirAll("out", os.ModePerm)
		if err != nil {
			return "", err
		}
		path = fmt.Sprintf("out/%s.png", time.Now().Format("20060102150405"))
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	err = grid.EncodePNG(f)
	if err != nil {
		_ = f.Close()
		return "", err
	}

	err = f.Close()
	if err != nil {
		return "", err
	}

	return path, nil
}
