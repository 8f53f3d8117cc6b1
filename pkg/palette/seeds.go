package palette

import "math/rand"

// Seeds are the per-channel moduli of the Random palette.
//
// They are drawn once per process and never change afterwards.
type Seeds struct {
	R, G, B int
}

// NewSeeds draws R from [1, 127) and G and B from [1, 255).
func NewSeeds(rng *rand.Rand) Seeds {
	return Seeds{
		R: rng.Intn(127),
		G: rng.Intn(255),
		B: rng.Intn(255),
	}.nonZero()
}

// nonZero replaces seeds below one by one, so the Random palette never divides by zero.
func (s Seeds) nonZero() Seeds {
	s.R = max(s.R, 1)
	s.G = max(s.G, 1)
	s.B = max(s.B, 1)
	return s
}
