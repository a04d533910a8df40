package comp

import "github.com/born-ml/tenskind/internal/simd"

// SubMultipler is implemented by dynamic components whose run-time extent is
// always a multiple of a known value (a lattice volume divisible by 16, say).
type SubMultipler interface {
	MaxKnownSubMultiple() int
}

// Vectorizer lets a component override whether it may be folded into a SIMD
// register of elements of dt.
type Vectorizer interface {
	Vectorizable(dt simd.DataType) bool
}

// MaxKnownSubMultiple returns the largest value known to divide the extent of c.
func MaxKnownSubMultiple(c Component) int {
	if s, ok := c.(Sizer); ok {
		return s.Size()
	}
	if m, ok := c.(SubMultipler); ok && m.MaxKnownSubMultiple() > 0 {
		return m.MaxKnownSubMultiple()
	}
	return 1
}

// Vectorizable reports whether c may take part in a vectorized run for dt.
// Static components qualify unless they say otherwise.
func Vectorizable(c Component, dt simd.DataType) bool {
	if v, ok := c.(Vectorizer); ok {
		return v.Vectorizable(dt)
	}
	return HasSize(c)
}
