package kind

// PositionsIn returns, for each kind of list, the position in that kind of
// every component of k, in the order of k. Absent components are reported as
// NotPresent.
func PositionsIn(k *Kind, list ...*Kind) ([][]int, error) {
	if err := assertLookup(k, list); err != nil {
		return nil, err
	}
	out := make([][]int, len(list))
	for i, other := range list {
		pos := make([]int, len(k.comps))
		for j, c := range k.comps {
			pos[j] = other.PosOf(c)
		}
		out[i] = pos
	}
	return out, nil
}

// PresentPositionsIn is like PositionsIn but skips the components of k absent
// from each kind. A kind sharing nothing with k yields an empty slice.
func PresentPositionsIn(k *Kind, list ...*Kind) ([][]int, error) {
	if err := assertLookup(k, list); err != nil {
		return nil, err
	}
	out := make([][]int, len(list))
	for i, other := range list {
		pos := []int{}
		for _, c := range k.comps {
			if p := other.PosOf(c); p != NotPresent {
				pos = append(pos, p)
			}
		}
		out[i] = pos
	}
	return out, nil
}

// PresentCompsIn returns, for each kind of list, the positions in k of the
// components of k that kind holds.
func PresentCompsIn(k *Kind, list ...*Kind) ([][]int, error) {
	if err := assertLookup(k, list); err != nil {
		return nil, err
	}
	out := make([][]int, len(list))
	for i, other := range list {
		idx := []int{}
		for j, c := range k.comps {
			if other.Has(c) {
				idx = append(idx, j)
			}
		}
		out[i] = idx
	}
	return out, nil
}

// assertLookup checks the operands of a position lookup. An empty list is
// allowed and yields no rows.
func assertLookup(k *Kind, list []*Kind) error {
	if err := AssertIsKind(k); err != nil {
		return err
	}
	if len(list) == 0 {
		return nil
	}
	vs := make([]any, len(list))
	for i, other := range list {
		vs[i] = other
	}
	return AssertAreKinds(vs...)
}
