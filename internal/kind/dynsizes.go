package kind

import (
	"github.com/born-ml/tenskind/internal/comp"
	"golang.org/x/exp/constraints"
)

// DynSizes holds the run-time extents of the dynamic components of one kind
// instance, in the order the dynamic components appear in the kind.
type DynSizes []int

// NewDynSizes validates sizes against k: there must be exactly one positive
// size per dynamic component of k.
func NewDynSizes[T constraints.Integer](k *Kind, sizes ...T) (DynSizes, error) {
	if err := AssertIsKind(k); err != nil {
		return nil, err
	}
	if len(sizes) != k.NDynamic() {
		return nil, violation(ConstraintDynSizes, ErrDynSizes, k.String(),
			"got %d sizes for %d dynamic components", len(sizes), k.NDynamic())
	}
	ds := make(DynSizes, len(sizes))
	for i, s := range sizes {
		if s <= 0 {
			return nil, violation(ConstraintDynSizes, ErrDynSizes, k.String(),
				"size %d of %s is %d (must be > 0)", i, k.comps[k.dynPos[i]].Name(), s)
		}
		ds[i] = int(s)
	}
	return ds, nil
}

// MustDynSizes is like NewDynSizes but panics on mismatch.
func MustDynSizes[T constraints.Integer](k *Kind, sizes ...T) DynSizes {
	ds, err := NewDynSizes(k, sizes...)
	if err != nil {
		panic(err)
	}
	return ds
}

func (k *Kind) checkDynSizes(ds DynSizes) error {
	if len(ds) != k.NDynamic() {
		return violation(ConstraintDynSizes, ErrDynSizes, k.String(),
			"got %d sizes for %d dynamic components", len(ds), k.NDynamic())
	}
	if err := Shape(ds).Validate(); err != nil {
		return violation(ConstraintDynSizes, ErrDynSizes, k.String(), "%v", err)
	}
	return nil
}

// CompSize returns the extent of the component of k named like c in an
// instance of k with dynamic sizes ds. Only the name of c is looked at; the
// extent is the one k declares for that component.
func (k *Kind) CompSize(c comp.Component, ds DynSizes) (int, error) {
	p := k.PosOf(c)
	if p == NotPresent {
		return 0, violation(ConstraintHasComp, ErrNotPresent, comp.Describe(c), "in %s", k)
	}
	if s, ok := k.comps[p].(comp.Sizer); ok {
		return s.Size(), nil
	}
	if err := k.checkDynSizes(ds); err != nil {
		return 0, err
	}
	for slot, dp := range k.dynPos {
		if dp == p {
			return ds[slot], nil
		}
	}
	return 0, violation(ConstraintIsDynamic, ErrNotDynamic, c.Name(), "in %s", k)
}

// Shape returns the extent of every component of k given the dynamic sizes.
func (k *Kind) Shape(ds DynSizes) (Shape, error) {
	if err := k.checkDynSizes(ds); err != nil {
		return nil, err
	}
	s := make(Shape, len(k.comps))
	next := 0
	for i, c := range k.comps {
		if sz, ok := c.(comp.Sizer); ok {
			s[i] = sz.Size()
			continue
		}
		s[i] = ds[next]
		next++
	}
	return s, nil
}

// TotalSize returns the number of elements of an instance of k.
func (k *Kind) TotalSize(ds DynSizes) (int, error) {
	s, err := k.Shape(ds)
	if err != nil {
		return 0, err
	}
	return s.NumElements(), nil
}

// Index returns the row-major offset of the element at idx, one index per
// component, the last component running fastest.
func (k *Kind) Index(ds DynSizes, idx ...int) (int, error) {
	if len(idx) != len(k.comps) {
		return 0, violation(ConstraintIndex, ErrIndex, k.String(),
			"got %d indices for %d components", len(idx), len(k.comps))
	}
	s, err := k.Shape(ds)
	if err != nil {
		return 0, err
	}
	off := 0
	for i, stride := range s.ComputeStrides() {
		if idx[i] < 0 || idx[i] >= s[i] {
			return 0, violation(ConstraintIndex, ErrIndex, k.String(),
				"index %d of %s is outside [0,%d)", idx[i], k.comps[i].Name(), s[i])
		}
		off += idx[i] * stride
	}
	return off, nil
}
