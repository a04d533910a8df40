package kind

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors wrapped by every ConstraintError.
var (
	ErrNotKind       = errors.New("not a tensor kind")
	ErrIsKind        = errors.New("unexpected tensor kind")
	ErrNotComponent  = errors.New("not a tensor component")
	ErrInvalidComp   = errors.New("invalid tensor component")
	ErrDuplicateComp = errors.New("duplicate tensor component")
	ErrNotDynamic    = errors.New("tensor kind is not dynamic")
	ErrInvalidMerge  = errors.New("invalid component merge")
	ErrBlendConflict = errors.New("conflicting components in blend")
	ErrDynSizes      = errors.New("dynamic sizes do not match kind")
	ErrIndex         = errors.New("index out of range")
	ErrNotPresent    = errors.New("component not present in kind")
)

// Names of the constraints reported in ConstraintError.Constraint.
const (
	ConstraintIsTensKind     = "IsTensKind"
	ConstraintIsNotTensKind  = "IsNotTensKind"
	ConstraintAreTensKinds   = "AreTensKinds"
	ConstraintIsTensComp     = "IsTensComp"
	ConstraintAllDifferent   = "AllDifferent"
	ConstraintIsDynamic      = "IsDynamic"
	ConstraintValidCompMerge = "ValidCompMerge"
	ConstraintBlendable      = "Blendable"
	ConstraintDynSizes       = "DynSizes"
	ConstraintIndex          = "Index"
	ConstraintHasComp        = "HasComp"
)

// ConstraintError reports which constraint rejected which subject.
type ConstraintError struct {
	Constraint string // Name of the violated constraint.
	Subject    string // Kind or value the constraint was checked on.
	Detail     string
	Err        error // One of the sentinel errors above.
}

func (e *ConstraintError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("kind: %s violated by %s: %v", e.Constraint, e.Subject, e.Err)
	}
	return fmt.Sprintf("kind: %s violated by %s: %v: %s", e.Constraint, e.Subject, e.Err, e.Detail)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

func violation(constraint string, sentinel error, subject, format string, args ...any) error {
	err := &ConstraintError{
		Constraint: constraint,
		Subject:    subject,
		Detail:     fmt.Sprintf(format, args...),
		Err:        sentinel,
	}
	Logger().Debug("constraint violated",
		zap.String("constraint", constraint),
		zap.String("subject", subject),
		zap.String("detail", err.Detail))
	return err
}

// Must panics if err is non-nil. It turns any constraint check into an
// assertion that aborts package initialization.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

func describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case *Kind:
		if x == nil {
			return "(*Kind)(nil)"
		}
		return x.String()
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%T", v)
	}
}

// IsKind reports whether v is a usable tensor kind.
func IsKind(v any) bool {
	k, ok := v.(*Kind)
	return ok && k != nil
}

// AssertIsKind fails unless v is a tensor kind.
func AssertIsKind(v any) error {
	if !IsKind(v) {
		return violation(ConstraintIsTensKind, ErrNotKind, describe(v), "")
	}
	return nil
}

// AssertIsNotKind fails if v is a tensor kind, guarding slots that take
// components or other values from receiving a kind by mistake.
func AssertIsNotKind(v any) error {
	if _, ok := v.(*Kind); ok {
		return violation(ConstraintIsNotTensKind, ErrIsKind, describe(v), "")
	}
	return nil
}

// AssertAreKinds fails unless every element of vs is a tensor kind.
func AssertAreKinds(vs ...any) error {
	if len(vs) == 0 {
		return violation(ConstraintAreTensKinds, ErrNotKind, "[]", "empty list")
	}
	for i, v := range vs {
		if !IsKind(v) {
			return violation(ConstraintAreTensKinds, ErrNotKind, describe(v), "element %d of %d", i, len(vs))
		}
	}
	return nil
}

// AssertIsDynamic fails unless k has at least one dynamic component.
func AssertIsDynamic(k *Kind) error {
	if err := AssertIsKind(k); err != nil {
		return err
	}
	if !k.IsDynamic() {
		return violation(ConstraintIsDynamic, ErrNotDynamic, k.String(), "all %d components are static", k.Len())
	}
	return nil
}

// ValidCompMerge checks that delims partitions k into runs the policy allows
// to merge: delims starts at 0, ends at k.Len(), is strictly increasing, and
// within every run each component is accepted by the policy together with its
// predecessor. A nil policy means SameClass.
func ValidCompMerge(k *Kind, delims []int, policy MergePolicy) error {
	if err := AssertIsKind(k); err != nil {
		return err
	}
	if policy == nil {
		policy = SameClass
	}
	subject := k.String()

	if len(delims) == 0 {
		return violation(ConstraintValidCompMerge, ErrInvalidMerge, subject, "no delimiters")
	}
	if delims[0] != 0 {
		return violation(ConstraintValidCompMerge, ErrInvalidMerge, subject, "first delimiter is %d, not 0", delims[0])
	}
	if last := delims[len(delims)-1]; last != k.Len() {
		return violation(ConstraintValidCompMerge, ErrInvalidMerge, subject,
			"last delimiter is %d, not the number of components %d", last, k.Len())
	}
	for g := 1; g < len(delims); g++ {
		start, end := delims[g-1], delims[g]
		if end <= start {
			return violation(ConstraintValidCompMerge, ErrInvalidMerge, subject,
				"delimiters %v are not strictly increasing at %d", delims, g)
		}
		for i := start + 1; i < end; i++ {
			if !policy(k.comps[i-1], k.comps[i]) {
				return violation(ConstraintValidCompMerge, ErrInvalidMerge, subject,
					"components %s and %s cannot be merged", k.comps[i-1].Name(), k.comps[i].Name())
			}
		}
	}
	return nil
}
