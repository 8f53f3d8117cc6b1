package transforms

// Mandelbrot is the quadratic map z -> z*z + c started from z = 0.
type Mandelbrot struct {
	// Limit is the maximum number of iterations before a point is assumed to be in the set.
	Limit uint
}

// Escape returns the number of iterations before c escapes the radius-2 disc, at most m.Limit.
func (m Mandelbrot) Escape(c complex128) uint {
	return Iterate(c, m.Limit)
}

// Iterate counts how many times z -> z*z + c is applied before |z| reaches 2.
// Returns limit if the point never escapes.
func Iterate(c complex128, limit uint) uint {
	re, im := real(c), imag(c)
	a, b := 0.0, 0.0

	tries := uint(0)
	// Compare the squared magnitude so no square root is taken per iteration.
	for a*a+b*b < 4 && tries < limit {
		a, b = a*a-b*b+re, 2*a*b+im
		tries++
	}

	return tries
}

var _ Escaper = Mandelbrot{}
