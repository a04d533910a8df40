package kind

import (
	"github.com/born-ml/tenskind/internal/comp"
	"go.uber.org/zap"
)

// MergePolicy decides whether next may join the run that prev ends.
type MergePolicy func(prev, next comp.Component) bool

// SameClass merges components that are both static or both dynamic.
func SameClass(prev, next comp.Component) bool {
	return comp.SameClass(prev, next)
}

// SameClassTwinSafe is SameClass, but never merges a component that has a
// twin, so the row and column components of matrices stay addressable.
func SameClassTwinSafe(prev, next comp.Component) bool {
	return !comp.HasTwin(prev) && !comp.HasTwin(next) && comp.SameClass(prev, next)
}

// Delims scans k left to right and returns the group boundaries: 0, then
// every position where policy rejects a component together with its
// predecessor, then k.Len(). A nil policy means SameClass.
func Delims(k *Kind, policy MergePolicy) ([]int, error) {
	if err := AssertIsKind(k); err != nil {
		return nil, err
	}
	if policy == nil {
		policy = SameClass
	}
	delims := []int{0}
	for i := 1; i < len(k.comps); i++ {
		if !policy(k.comps[i-1], k.comps[i]) {
			delims = append(delims, i)
		}
	}
	if len(k.comps) > 0 {
		delims = append(delims, len(k.comps))
	}
	return delims, nil
}

// MergedView is k with each group of merged components replaced by a single
// component. The source kind and the grouping remain available.
type MergedView struct {
	Source *Kind // Kind that was merged.
	Delims []int // Group boundaries; group g spans [Delims[g], Delims[g+1]).
	Kind   *Kind // One component per group.
	groups [][]int
}

// MergeAt merges k along the given delimiters after checking them with
// ValidCompMerge.
func MergeAt(k *Kind, delims []int, policy MergePolicy) (*MergedView, error) {
	if err := ValidCompMerge(k, delims, policy); err != nil {
		return nil, err
	}

	v := &MergedView{
		Source: k,
		Delims: append([]int(nil), delims...),
		groups: make([][]int, 0, len(delims)-1),
	}
	merged := make([]comp.Component, 0, len(delims)-1)
	for g := 1; g < len(delims); g++ {
		start, end := delims[g-1], delims[g]
		axes := make([]int, 0, end-start)
		for i := start; i < end; i++ {
			axes = append(axes, i)
		}
		v.groups = append(v.groups, axes)
		merged = append(merged, comp.Group(k.comps[start:end]...))
	}

	mk, err := New(merged...)
	if err != nil {
		return nil, err
	}
	v.Kind = mk

	Logger().Debug("kind merged",
		zap.Stringer("source", k),
		zap.Ints("delims", v.Delims),
		zap.Stringer("merged", mk))
	return v, nil
}

// Merge groups k into the maximal runs accepted by policy.
func Merge(k *Kind, policy MergePolicy) (*MergedView, error) {
	delims, err := Delims(k, policy)
	if err != nil {
		return nil, err
	}
	return MergeAt(k, delims, policy)
}

// MustMerge is like Merge but panics on failure.
func MustMerge(k *Kind, policy MergePolicy) *MergedView {
	v, err := Merge(k, policy)
	if err != nil {
		panic(err)
	}
	return v
}

// NGroups returns the number of groups.
func (v *MergedView) NGroups() int {
	return len(v.groups)
}

// Group returns the source positions of group g.
func (v *MergedView) Group(g int) []int {
	return append([]int(nil), v.groups[g]...)
}

// Groups returns the source positions of every group.
func (v *MergedView) Groups() [][]int {
	out := make([][]int, len(v.groups))
	for g := range v.groups {
		out[g] = v.Group(g)
	}
	return out
}

// GroupOf returns the group holding source position axis, or NotPresent.
func (v *MergedView) GroupOf(axis int) int {
	for g := 1; g < len(v.Delims); g++ {
		if axis >= v.Delims[g-1] && axis < v.Delims[g] {
			return g - 1
		}
	}
	return NotPresent
}

// Expand rebuilds the per-component kind from the merged one.
func (v *MergedView) Expand() *Kind {
	var comps []comp.Component
	for _, c := range v.Kind.comps {
		comps = append(comps, comp.Members(c)...)
	}
	return MustNew(comps...)
}
