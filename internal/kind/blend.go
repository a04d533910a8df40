package kind

import (
	"github.com/born-ml/tenskind/internal/comp"
	"go.uber.org/zap"
)

// BlendWith returns the components of a followed by the components of b that
// are not already in a. A component present in both must have the same size
// in both: equal static sizes, or dynamic in both.
//
//	BlendWith(TensKind<rwcol,spin>, TensKind<rwcol,cncol>) == TensKind<rwcol,spin,cncol>
func BlendWith(a, b *Kind) (*Kind, error) {
	if err := AssertAreKinds(a, b); err != nil {
		return nil, err
	}

	out := make([]comp.Component, 0, a.Len()+b.Len())
	out = append(out, a.comps...)
	for _, c := range b.comps {
		p := a.PosOf(c)
		if p == NotPresent {
			out = append(out, c)
			continue
		}
		if prev := a.comps[p]; comp.SizeOf(prev) != comp.SizeOf(c) {
			return nil, violation(ConstraintBlendable, ErrBlendConflict, a.String()+" + "+b.String(),
				"%s is %s on one side and %s on the other", c.Name(), comp.Describe(prev), comp.Describe(c))
		}
	}
	return New(out...)
}

// Blend folds BlendWith over kinds from left to right. A single kind is
// returned unchanged.
func Blend(kinds ...*Kind) (*Kind, error) {
	vs := make([]any, len(kinds))
	for i, k := range kinds {
		vs[i] = k
	}
	if err := AssertAreKinds(vs...); err != nil {
		return nil, err
	}

	res := kinds[0]
	for _, k := range kinds[1:] {
		next, err := BlendWith(res, k)
		if err != nil {
			return nil, err
		}
		res = next
	}

	if len(kinds) > 1 {
		Logger().Debug("kinds blended", zap.Int("inputs", len(kinds)), zap.Stringer("result", res))
	}
	return res, nil
}

// MustBlend is like Blend but panics on failure.
func MustBlend(kinds ...*Kind) *Kind {
	k, err := Blend(kinds...)
	if err != nil {
		panic(err)
	}
	return k
}

// BlendAny blends an untyped list, failing unless every element is a kind.
func BlendAny(vs ...any) (*Kind, error) {
	if err := AssertAreKinds(vs...); err != nil {
		return nil, err
	}
	kinds := make([]*Kind, len(vs))
	for i, v := range vs {
		kinds[i] = v.(*Kind)
	}
	return Blend(kinds...)
}
