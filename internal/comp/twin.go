package comp

// Twinner is implemented by components that have a twin, as the row and
// column indices of a matrix do.
type Twinner interface {
	Twin() Component
}

// HasTwin reports whether c declares a twin distinct from itself.
func HasTwin(c Component) bool {
	t, ok := c.(Twinner)
	if !ok {
		return false
	}
	tw := t.Twin()
	return tw != nil && tw.Name() != c.Name()
}

// TwinOf returns the twin of c, or c itself when it has none.
func TwinOf(c Component) Component {
	if HasTwin(c) {
		return c.(Twinner).Twin()
	}
	return c
}

type twinPair struct {
	names [2]string
	size  int
}

// twinComp is a dynamic twin; sizedTwinComp adds the extent.
type twinComp struct {
	pair *twinPair
	idx  int
}

func (c twinComp) Name() string    { return c.pair.names[c.idx] }
func (c twinComp) Twin() Component { return twinComp{pair: c.pair, idx: 1 - c.idx} }

type sizedTwinComp struct {
	twinComp
}

func (c sizedTwinComp) Size() int { return c.pair.size }
func (c sizedTwinComp) Twin() Component {
	return sizedTwinComp{twinComp{pair: c.pair, idx: 1 - c.idx}}
}

// NewTwins returns a row and a column component of the given size, each the
// twin of the other. Their names are "rw"+name and "cn"+name. A size of
// Dynamic yields dynamic twins.
func NewTwins(name string, size int) (row, col Component) {
	pair := &twinPair{names: [2]string{"rw" + name, "cn" + name}, size: size}
	if size == Dynamic {
		return twinComp{pair: pair, idx: 0}, twinComp{pair: pair, idx: 1}
	}
	return sizedTwinComp{twinComp{pair: pair, idx: 0}}, sizedTwinComp{twinComp{pair: pair, idx: 1}}
}
