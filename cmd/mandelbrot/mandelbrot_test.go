package main

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/willbeason/mandelbrot/pkg/palette"
	"github.com/willbeason/mandelbrot/pkg/view"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := mainCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func decodeSize(t *testing.T, path string) (int, int) {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestRenderCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.png")

	out, err := execute(t, "render", "--width", "24", "--height", "16", "--limit", "30",
		"--palette", "christmas", "--out", path)
	if err != nil {
		t.Fatal(err)
	}

	if w, h := decodeSize(t, path); w != 24 || h != 16 {
		t.Errorf("image is %dx%d, want 24x16", w, h)
	}
	if !strings.Contains(out, "palette=christmas") || !strings.Contains(out, "wrote "+path) {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRootRenders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "root.png")

	out, err := execute(t, "--width", "8", "--height", "8", "--preset", "example-2", "--out", path)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "x=-1.0079296875 y=0.3112109375 scale=1.953125e-05 limit=400") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRenderCmd_InvalidFlags(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "render", "--scale", "0", "--out", filepath.Join(dir, "a.png"))
	if !errors.Is(err, view.ErrInvalidScale) {
		t.Errorf("--scale 0 error = %v, want %v", err, view.ErrInvalidScale)
	}

	_, err = execute(t, "render", "--preset", "nowhere", "--out", filepath.Join(dir, "b.png"))
	if !errors.Is(err, view.ErrUnknownPreset) {
		t.Errorf("--preset nowhere error = %v, want %v", err, view.ErrUnknownPreset)
	}

	_, err = execute(t, "render", "--palette", "plaid")
	if err == nil {
		t.Error("--palette plaid succeeded, want error")
	}

	_, err = execute(t, "render", "--width", "0")
	if err == nil {
		t.Error("--width 0 succeeded, want error")
	}
}

func TestZoomCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zoom.png")

	out, err := execute(t, "zoom", "--width", "20", "--height", "20", "--limit", "10",
		"--out", path, "10,10", "10, 10")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "x=0 y=0 scale=0.0025 limit=10 palette=blackwhite") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if w, h := decodeSize(t, path); w != 20 || h != 20 {
		t.Errorf("image is %dx%d, want 20x20", w, h)
	}
}

func TestZoomCmd_BadClick(t *testing.T) {
	_, err := execute(t, "zoom", "--out", filepath.Join(t.TempDir(), "z.png"), "10;10")
	if err == nil {
		t.Error("zoom 10;10 succeeded, want error")
	}
}

func TestPresetsCmd(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range view.PresetNames() {
		if !strings.Contains(out, name) {
			t.Errorf("output is missing preset %q:\n%s", name, out)
		}
	}
	if !strings.Contains(out, "palettes: banded, blackwhite, christmas, aquamarine, random") {
		t.Errorf("output is missing palettes:\n%s", out)
	}
}

func TestParseClick(t *testing.T) {
	x, y, err := parseClick(" 12 ,340")
	if err != nil {
		t.Fatal(err)
	}
	if x != 12 || y != 340 {
		t.Errorf("parseClick = (%d, %d), want (12, 340)", x, y)
	}

	for _, bad := range []string{"", "1", "a,2", "1,b", "1,2,3"} {
		if _, _, err := parseClick(bad); err == nil {
			t.Errorf("parseClick(%q) succeeded, want error", bad)
		}
	}
}

func TestOptions_Seeds(t *testing.T) {
	opts := newOptions()
	opts.seed = 99

	a, b := opts.seeds(), opts.seeds()
	if a != b {
		t.Errorf("fixed seed gave %+v and %+v", a, b)
	}
	if a.R < 1 || a.G < 1 || a.B < 1 {
		t.Errorf("seeds %+v contain a zero", a)
	}
}

func TestOptions_NewSession(t *testing.T) {
	opts := newOptions()
	opts.palette = palette.Aquamarine
	opts.preset = "example-3"
	opts.limit = 12

	s, err := opts.newSession(palette.Seeds{R: 1, G: 1, B: 1})
	if err != nil {
		t.Fatal(err)
	}

	want := view.State{CenterX: -0.1578125, CenterY: 1.0328125, Scale: 1.5625e-4, Limit: 12}
	if got := s.State(); got != want {
		t.Errorf("State() = %+v, want %+v", got, want)
	}
	if got := s.Palette(); got != palette.Aquamarine {
		t.Errorf("Palette() = %v, want %v", got, palette.Aquamarine)
	}
	if got := s.Canvas(); got != view.DefaultCanvas {
		t.Errorf("Canvas() = %+v, want %+v", got, view.DefaultCanvas)
	}
}
