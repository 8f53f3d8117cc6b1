package transforms

import (
	"math"
	"testing"
)

func TestIterate_Bounded(t *testing.T) {
	points := []complex128{
		0, 1, -1, 2, -2, complex(2, 2), complex(-0.75, 0.1), complex(0.25, 0.5),
		complex(-1.7, 0.0001), complex(1e10, -1e10), complex(math.Inf(1), 0),
	}

	for _, limit := range []uint{0, 1, 2, 10, 400} {
		for _, p := range points {
			got := Iterate(p, limit)
			if got > limit {
				t.Errorf("Iterate(%v, %d) = %d, want <= %d", p, limit, got, limit)
			}
		}
	}
}

func TestIterate_OriginNeverEscapes(t *testing.T) {
	for _, limit := range []uint{0, 1, 7, 100, 1000} {
		if got := Iterate(0, limit); got != limit {
			t.Errorf("Iterate(0, %d) = %d, want %d", limit, got, limit)
		}
	}
}

func TestIterate(t *testing.T) {
	tcs := []struct {
		name  string
		c     complex128
		limit uint
		want  uint
	}{
		{name: "zero limit", c: complex(-0.5, 0.5), limit: 0, want: 0},
		{name: "escapes after one step", c: complex(2, 2), limit: 1, want: 1},
		{name: "escapes after one step with room", c: complex(2, 2), limit: 50, want: 1},
		// z1 = 2, |z1| = 2 is not inside the open disc.
		{name: "boundary is exclusive", c: 2, limit: 50, want: 1},
		// z1 = 1, z2 = 2.
		{name: "real axis", c: 1, limit: 50, want: 2},
		{name: "period two bulb", c: -1, limit: 64, want: 64},
		{name: "main cardioid", c: complex(-0.1, 0.1), limit: 300, want: 300},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := Iterate(tc.c, tc.limit)
			if got != tc.want {
				t.Errorf("Iterate(%v, %d) = %d, want %d", tc.c, tc.limit, got, tc.want)
			}
		})
	}
}

func TestMandelbrot_Escape(t *testing.T) {
	m := Mandelbrot{Limit: 20}

	var e Escaper = m
	if got := e.Escape(complex(2, 2)); got != 1 {
		t.Errorf("Escape(2+2i) = %d, want 1", got)
	}
	if got := e.Escape(0); got != 20 {
		t.Errorf("Escape(0) = %d, want 20", got)
	}
}

func TestEscaperFunc(t *testing.T) {
	calls := 0
	f := EscaperFunc(func(c complex128) uint {
		calls++
		return uint(real(c))
	})

	if got := f.Escape(3); got != 3 || calls != 1 {
		t.Errorf("EscaperFunc.Escape(3) = %d after %d calls, want 3 after 1", got, calls)
	}
}
