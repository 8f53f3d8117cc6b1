package transforms

// An Escaper computes the escape count of a point in the complex plane.
type Escaper interface {
	Escape(c complex128) uint
}

// EscaperFunc adapts a function to the Escaper interface.
type EscaperFunc func(c complex128) uint

func (f EscaperFunc) Escape(c complex128) uint {
	return f(c)
}
