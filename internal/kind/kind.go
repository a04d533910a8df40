// Package kind implements tensor kinds: ordered lists of named components
// describing the shape of a tensor before any tensor exists.
//
// Kinds are immutable. They are meant to be declared once, as package-level
// variables, through the Must* constructors or the typed Of1..Of6 helpers:
//
//	var (
//		Spinor = kind.Of2[physics.Col, physics.Spin]()
//		Field  = kind.MustBlend(Spinor, kind.Of1[physics.Spacetime]())
//	)
//
// An ill-formed kind (duplicate components, conflicting blends, invalid
// merges) then aborts the program during initialization, before any tensor
// data is allocated. The error-returning variants serve callers that build
// kinds programmatically.
package kind

import (
	"strings"

	"github.com/born-ml/tenskind/internal/comp"
	"go.uber.org/zap"
)

// NotPresent marks the position of a component absent from a kind.
const NotPresent = -1

// Kind is an ordered list of distinct tensor components.
type Kind struct {
	comps  []comp.Component
	dynPos []int          // Positions of the dynamic components, ascending.
	pos    map[string]int // Component name to position.
}

// New returns the kind made of comps, in order. Every component must be valid
// and no two components may share a name.
func New(comps ...comp.Component) (*Kind, error) {
	k := &Kind{
		comps: make([]comp.Component, len(comps)),
		pos:   make(map[string]int, len(comps)),
	}
	copy(k.comps, comps)

	for i, c := range k.comps {
		if err := comp.Validate(c); err != nil {
			return nil, violation(ConstraintIsTensComp, ErrInvalidComp, describeComps(comps),
				"component %d: %v", i, err)
		}
		if prev, dup := k.pos[c.Name()]; dup {
			return nil, violation(ConstraintAllDifferent, ErrDuplicateComp, describeComps(comps),
				"%s appears at positions %d and %d", c.Name(), prev, i)
		}
		k.pos[c.Name()] = i
		if comp.IsDynamic(c) {
			k.dynPos = append(k.dynPos, i)
		}
	}

	Logger().Debug("kind created", zap.Stringer("kind", k), zap.Int("dynamic", len(k.dynPos)))
	return k, nil
}

// MustNew is like New but panics if the kind is ill-formed.
func MustNew(comps ...comp.Component) *Kind {
	k, err := New(comps...)
	if err != nil {
		panic(err)
	}
	return k
}

// FromTuple builds a kind from an untyped list. Each element must be a
// component and must not itself be a kind.
func FromTuple(tuple []any) (*Kind, error) {
	comps := make([]comp.Component, len(tuple))
	for i, v := range tuple {
		if err := AssertIsNotKind(v); err != nil {
			return nil, err
		}
		c, ok := v.(comp.Component)
		if !ok || c == nil {
			return nil, violation(ConstraintIsTensComp, ErrNotComponent, describe(v),
				"tuple element %d of %d", i, len(tuple))
		}
		comps[i] = c
	}
	return New(comps...)
}

// Tuple returns the components of k as an untyped list, the inverse of FromTuple.
func (k *Kind) Tuple() []any {
	out := make([]any, len(k.comps))
	for i, c := range k.comps {
		out[i] = c
	}
	return out
}

// Comps returns a copy of the components of k.
func (k *Kind) Comps() []comp.Component {
	out := make([]comp.Component, len(k.comps))
	copy(out, k.comps)
	return out
}

// Len returns the number of components.
func (k *Kind) Len() int {
	return len(k.comps)
}

// Comp returns the component at position i.
func (k *Kind) Comp(i int) comp.Component {
	return k.comps[i]
}

// IsTensKind is always true. It lets generic code holding a kind behind an
// interface tell it apart from other values.
func (k *Kind) IsTensKind() bool {
	return true
}

// IsDynamicAt reports whether the component at position i is dynamic.
func (k *Kind) IsDynamicAt(i int) bool {
	return comp.IsDynamic(k.comps[i])
}

// AreDynamic reports, per position, whether the component is dynamic.
func (k *Kind) AreDynamic() []bool {
	out := make([]bool, len(k.comps))
	for _, p := range k.dynPos {
		out[p] = true
	}
	return out
}

// NDynamic returns the number of dynamic components.
func (k *Kind) NDynamic() int {
	return len(k.dynPos)
}

// IsDynamic reports whether k has at least one dynamic component.
func (k *Kind) IsDynamic() bool {
	return len(k.dynPos) > 0
}

// IsFullyStatic reports whether every component of k has a fixed size.
func (k *Kind) IsFullyStatic() bool {
	return len(k.dynPos) == 0
}

// DynCompsPos returns the positions of the dynamic components.
func (k *Kind) DynCompsPos() []int {
	return append([]int(nil), k.dynPos...)
}

// DynComps returns the dynamic components in kind order.
func (k *Kind) DynComps() []comp.Component {
	out := make([]comp.Component, len(k.dynPos))
	for i, p := range k.dynPos {
		out[i] = k.comps[p]
	}
	return out
}

// DynCompPos returns the slot of the dynamic component c in the dynamic-size
// list of k.
func (k *Kind) DynCompPos(c comp.Component) (int, error) {
	if c == nil || comp.HasSize(c) {
		return 0, violation(ConstraintIsDynamic, ErrNotDynamic, comp.Describe(c), "in %s", k)
	}
	p := k.PosOf(c)
	if p == NotPresent {
		return 0, violation(ConstraintHasComp, ErrNotPresent, c.Name(), "in %s", k)
	}
	for n, d := range k.dynPos {
		if d == p {
			return n, nil
		}
	}
	// A component found by name but not dynamic in k.
	return 0, violation(ConstraintIsDynamic, ErrNotDynamic, c.Name(), "static in %s", k)
}

// PosOf returns the position of c in k, or NotPresent.
func (k *Kind) PosOf(c comp.Component) int {
	if c == nil {
		return NotPresent
	}
	return k.posOfName(c.Name())
}

func (k *Kind) posOfName(name string) int {
	if p, ok := k.pos[name]; ok {
		return p
	}
	return NotPresent
}

// Has reports whether c is a component of k.
func (k *Kind) Has(c comp.Component) bool {
	return k.PosOf(c) != NotPresent
}

// Contains reports whether every component of other is in k.
func (k *Kind) Contains(other *Kind) bool {
	for _, c := range other.comps {
		if !k.Has(c) {
			return false
		}
	}
	return true
}

// AllBut returns k without c. It returns k itself when c is absent.
func (k *Kind) AllBut(c comp.Component) *Kind {
	p := k.PosOf(c)
	if p == NotPresent {
		return k
	}
	rest := make([]comp.Component, 0, len(k.comps)-1)
	rest = append(rest, k.comps[:p]...)
	rest = append(rest, k.comps[p+1:]...)
	return MustNew(rest...)
}

// Equal reports whether k and other have the same components in the same order.
func (k *Kind) Equal(other *Kind) bool {
	if k == other {
		return true
	}
	if k == nil || other == nil || len(k.comps) != len(other.comps) {
		return false
	}
	for i, c := range k.comps {
		o := other.comps[i]
		if c.Name() != o.Name() || comp.SizeOf(c) != comp.SizeOf(o) {
			return false
		}
	}
	return true
}

// Names returns the component names in order.
func (k *Kind) Names() []string {
	out := make([]string, len(k.comps))
	for i, c := range k.comps {
		out[i] = c.Name()
	}
	return out
}

// MaxStaticIdx returns the product of the static sizes, dynamic components
// counting as one.
func (k *Kind) MaxStaticIdx() int {
	n := 1
	for _, c := range k.comps {
		if s := comp.SizeOf(c); s != comp.Dynamic {
			n *= s
		}
	}
	return n
}

// String renders k as TensKind<col[3],spin[4],site[dyn]>.
func (k *Kind) String() string {
	if k == nil {
		return "TensKind<nil>"
	}
	return "TensKind<" + describeComps(k.comps) + ">"
}

func describeComps(comps []comp.Component) string {
	parts := make([]string, len(comps))
	for i, c := range comps {
		parts[i] = comp.Describe(c)
	}
	return strings.Join(parts, ",")
}
