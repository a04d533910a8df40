package comp

import "strings"

// GroupSep joins member names in the name of a merged group.
const GroupSep = "*"

// Grouped is implemented by components built by Group.
type Grouped interface {
	Component
	Members() []Component
}

type group struct {
	name    string
	members []Component
	subMult int
}

func (g group) Name() string { return g.name }

func (g group) Members() []Component {
	out := make([]Component, len(g.members))
	copy(out, g.members)
	return out
}

func (g group) MaxKnownSubMultiple() int { return g.subMult }

type sizedGroup struct {
	group
	size int
}

func (g sizedGroup) Size() int { return g.size }

// Group returns the component standing for the contiguous run members. Its
// extent is the product of the member extents, or dynamic when any member is
// dynamic. A single member is returned unchanged.
func Group(members ...Component) Component {
	if len(members) == 1 {
		return members[0]
	}

	names := make([]string, len(members))
	size, subMult := 1, 1
	dynamic := false
	for i, m := range members {
		names[i] = m.Name()
		subMult *= MaxKnownSubMultiple(m)
		if s, ok := m.(Sizer); ok {
			size *= s.Size()
		} else {
			dynamic = true
		}
	}

	g := group{
		name:    strings.Join(names, GroupSep),
		members: append([]Component(nil), members...),
		subMult: subMult,
	}
	if dynamic {
		return g
	}
	return sizedGroup{group: g, size: size}
}

// Members returns the axes c was grouped from, or c alone.
func Members(c Component) []Component {
	if g, ok := c.(Grouped); ok {
		return g.Members()
	}
	return []Component{c}
}
