package kind

import "github.com/born-ml/tenskind/internal/comp"

// Twinned returns k with every component replaced by its twin, the transpose
// of a matrix kind.
func (k *Kind) Twinned() (*Kind, error) {
	tw := make([]comp.Component, len(k.comps))
	for i, c := range k.comps {
		tw[i] = comp.TwinOf(c)
	}
	return New(tw...)
}

// IsMatrixComp reports, per position, whether the component has a twin that
// is also part of k.
func (k *Kind) IsMatrixComp() []bool {
	out := make([]bool, len(k.comps))
	for i, c := range k.comps {
		out[i] = comp.HasTwin(c) && k.Has(comp.TwinOf(c))
	}
	return out
}

// IsDiagComp reports, per position, whether the component survives in the
// diagonal of k: untwinned components and the first of each twin pair do.
func (k *Kind) IsDiagComp() []bool {
	out := make([]bool, len(k.comps))
	for i, c := range k.comps {
		p := k.PosOf(comp.TwinOf(c))
		out[i] = p == NotPresent || p >= i
	}
	return out
}

// Diag returns the kind of the diagonal of k, dropping the second component
// of every twin pair.
func (k *Kind) Diag() *Kind {
	var keep []comp.Component
	for i, d := range k.IsDiagComp() {
		if d {
			keep = append(keep, k.comps[i])
		}
	}
	return MustNew(keep...)
}
