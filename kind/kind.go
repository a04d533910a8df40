// Copyright 2025 The tenskind Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package kind

import (
	"github.com/born-ml/tenskind/internal/comp"
	"github.com/born-ml/tenskind/internal/kind"
	"github.com/born-ml/tenskind/internal/simd"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Component identifies one axis of a tensor kind by its name.
type Component = comp.Component

// Sizer is implemented by components with a fixed extent.
type Sizer = comp.Sizer

// Twinner is implemented by components that have a twin (matrix row/column).
type Twinner = comp.Twinner

// SubMultipler is implemented by dynamic components with a known divisor.
type SubMultipler = comp.SubMultipler

// Vectorizer lets a component override SIMD eligibility.
type Vectorizer = comp.Vectorizer

// Kind is an immutable ordered list of distinct components.
type Kind = kind.Kind

// DynSizes holds the run-time extents of the dynamic components of a kind.
type DynSizes = kind.DynSizes

// Shape holds the concrete extent of every component of a kind instance.
type Shape = kind.Shape

// MergePolicy decides whether two adjacent components may be merged.
type MergePolicy = kind.MergePolicy

// MergedView is a kind with runs of components grouped together.
type MergedView = kind.MergedView

// ConstraintError reports which constraint rejected which subject.
type ConstraintError = kind.ConstraintError

// DType is a constraint for fundamental types with a SIMD lane count.
type DType = simd.DType

// DataType identifies a fundamental type for SIMD decisions.
type DataType = simd.DataType

// SIMDConfig controls the SIMD register width.
type SIMDConfig = simd.Config

// Dynamic is the size of components whose extent is only known at run time.
const Dynamic = comp.Dynamic

// NotPresent marks the position of a component absent from a kind.
const NotPresent = kind.NotPresent

// Errors wrapped by ConstraintError.
var (
	ErrNotKind       = kind.ErrNotKind
	ErrIsKind        = kind.ErrIsKind
	ErrNotComponent  = kind.ErrNotComponent
	ErrInvalidComp   = kind.ErrInvalidComp
	ErrDuplicateComp = kind.ErrDuplicateComp
	ErrNotDynamic    = kind.ErrNotDynamic
	ErrInvalidMerge  = kind.ErrInvalidMerge
	ErrBlendConflict = kind.ErrBlendConflict
	ErrDynSizes      = kind.ErrDynSizes
	ErrIndex         = kind.ErrIndex
	ErrNotPresent    = kind.ErrNotPresent
)

// Component helpers.

// Static returns an ad-hoc component with a fixed extent.
func Static(name string, size int) Component { return comp.Static(name, size) }

// Dyn returns an ad-hoc dynamic component.
func Dyn(name string) Component { return comp.Dyn(name) }

// NewTwins returns a row and a column component, each the twin of the other.
func NewTwins(name string, size int) (row, col Component) { return comp.NewTwins(name, size) }

// HasSize reports whether c declares a fixed extent.
func HasSize(c Component) bool { return comp.HasSize(c) }

// SizeOf returns the declared extent of c, or Dynamic.
func SizeOf(c Component) int { return comp.SizeOf(c) }

// Members returns the components a merged component was built from.
func Members(c Component) []Component { return comp.Members(c) }

// Construction.

// New returns the kind made of comps, in order.
func New(comps ...Component) (*Kind, error) { return kind.New(comps...) }

// MustNew is like New but panics if the kind is ill-formed.
func MustNew(comps ...Component) *Kind { return kind.MustNew(comps...) }

// FromTuple builds a kind from an untyped list of components.
func FromTuple(tuple []any) (*Kind, error) { return kind.FromTuple(tuple) }

// Of1 returns the kind <A>.
func Of1[A Component]() *Kind { return kind.Of1[A]() }

// Of2 returns the kind <A,B>.
func Of2[A, B Component]() *Kind { return kind.Of2[A, B]() }

// Of3 returns the kind <A,B,C>.
func Of3[A, B, C Component]() *Kind { return kind.Of3[A, B, C]() }

// Of4 returns the kind <A,B,C,D>.
func Of4[A, B, C, D Component]() *Kind { return kind.Of4[A, B, C, D]() }

// Of5 returns the kind <A,B,C,D,E>.
func Of5[A, B, C, D, E Component]() *Kind { return kind.Of5[A, B, C, D, E]() }

// Of6 returns the kind <A,B,C,D,E,F>.
func Of6[A, B, C, D, E, F Component]() *Kind { return kind.Of6[A, B, C, D, E, F]() }

// Has reports whether component C is part of k.
func Has[C Component](k *Kind) bool { return kind.Has[C](k) }

// PosOf returns the position of component C in k, or NotPresent.
func PosOf[C Component](k *Kind) int { return kind.PosOf[C](k) }

// DynPos returns the slot of the dynamic component C in the dynamic sizes of k.
func DynPos[C Component](k *Kind) (int, error) { return kind.DynPos[C](k) }

// NewDynSizes validates one positive size per dynamic component of k.
func NewDynSizes[T constraints.Integer](k *Kind, sizes ...T) (DynSizes, error) {
	return kind.NewDynSizes(k, sizes...)
}

// MustDynSizes is like NewDynSizes but panics on mismatch.
func MustDynSizes[T constraints.Integer](k *Kind, sizes ...T) DynSizes {
	return kind.MustDynSizes(k, sizes...)
}

// Constraints.

// IsKind reports whether v is a usable tensor kind.
func IsKind(v any) bool { return kind.IsKind(v) }

// AssertIsKind fails unless v is a tensor kind.
func AssertIsKind(v any) error { return kind.AssertIsKind(v) }

// AssertIsNotKind fails if v is a tensor kind.
func AssertIsNotKind(v any) error { return kind.AssertIsNotKind(v) }

// AssertAreKinds fails unless every element of vs is a tensor kind.
func AssertAreKinds(vs ...any) error { return kind.AssertAreKinds(vs...) }

// AssertIsDynamic fails unless k has a dynamic component.
func AssertIsDynamic(k *Kind) error { return kind.AssertIsDynamic(k) }

// ValidCompMerge checks that delims partitions k into mergeable runs.
func ValidCompMerge(k *Kind, delims []int, policy MergePolicy) error {
	return kind.ValidCompMerge(k, delims, policy)
}

// Must panics if err is non-nil.
func Must(err error) { kind.Must(err) }

// Merge.

// SameClass merges components that are both static or both dynamic.
func SameClass(prev, next Component) bool { return kind.SameClass(prev, next) }

// SameClassTwinSafe is SameClass but keeps twinned components apart.
func SameClassTwinSafe(prev, next Component) bool { return kind.SameClassTwinSafe(prev, next) }

// Delims returns the group boundaries of k under policy.
func Delims(k *Kind, policy MergePolicy) ([]int, error) { return kind.Delims(k, policy) }

// Merge groups k into the maximal runs accepted by policy.
func Merge(k *Kind, policy MergePolicy) (*MergedView, error) { return kind.Merge(k, policy) }

// MustMerge is like Merge but panics on failure.
func MustMerge(k *Kind, policy MergePolicy) *MergedView { return kind.MustMerge(k, policy) }

// MergeAt merges k along explicit delimiters.
func MergeAt(k *Kind, delims []int, policy MergePolicy) (*MergedView, error) {
	return kind.MergeAt(k, delims, policy)
}

// FirstVectorizingComp returns the outermost position from which the
// innermost components of k fill whole SIMD registers of F, or -1.
func FirstVectorizingComp[F DType](k *Kind) int { return kind.FirstVectorizingComp[F](k) }

// Blend.

// BlendWith returns a followed by the components of b not already in a.
func BlendWith(a, b *Kind) (*Kind, error) { return kind.BlendWith(a, b) }

// Blend folds BlendWith over kinds from left to right.
func Blend(kinds ...*Kind) (*Kind, error) { return kind.Blend(kinds...) }

// MustBlend is like Blend but panics on failure.
func MustBlend(kinds ...*Kind) *Kind { return kind.MustBlend(kinds...) }

// Position lookup.

// PositionsIn returns the position of every component of k in each kind of
// list, NotPresent where absent.
func PositionsIn(k *Kind, list ...*Kind) ([][]int, error) { return kind.PositionsIn(k, list...) }

// PresentPositionsIn is like PositionsIn but skips absent components.
func PresentPositionsIn(k *Kind, list ...*Kind) ([][]int, error) {
	return kind.PresentPositionsIn(k, list...)
}

// PresentCompsIn returns, for each kind of list, the positions in k of the
// components of k that kind holds.
func PresentCompsIn(k *Kind, list ...*Kind) ([][]int, error) {
	return kind.PresentCompsIn(k, list...)
}

// Logging.

// SetLogger installs l as the destination of debug traces. Nil silences them.
func SetLogger(l *zap.Logger) { kind.SetLogger(l) }
