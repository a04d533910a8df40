package kind

import "fmt"

// Shape holds the concrete extent of every component of a kind instance.
type Shape []int

// NumElements returns the product of the extents. The empty shape of a kind
// without components addresses a single scalar.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every extent is positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("extent %d is %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// ComputeStrides returns the row-major strides of s: the last component runs
// fastest and stride i is the product of the extents after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	step := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = step
		step *= s[i]
	}
	return strides
}
