package comp

import (
	"testing"

	"github.com/born-ml/tenskind/internal/simd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type col struct{}

func (col) Name() string { return "col" }
func (col) Size() int    { return 3 }

type site struct{}

func (site) Name() string { return "site" }

// evenSite is dynamic but always a multiple of 16.
type evenSite struct{}

func (evenSite) Name() string             { return "evensite" }
func (evenSite) MaxKnownSubMultiple() int { return 16 }

// scalarOnly refuses vectorization despite being static.
type scalarOnly struct{}

func (scalarOnly) Name() string                    { return "scalar" }
func (scalarOnly) Size() int                       { return 8 }
func (scalarOnly) Vectorizable(simd.DataType) bool { return false }

func TestHasSize(t *testing.T) {
	tests := []struct {
		c       Component
		hasSize bool
		size    int
	}{
		{col{}, true, 3},
		{site{}, false, Dynamic},
		{Static("spin", 4), true, 4},
		{Dyn("vol"), false, Dynamic},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.hasSize, HasSize(tt.c), tt.c.Name())
		assert.Equal(t, !tt.hasSize, IsDynamic(tt.c), tt.c.Name())
		assert.Equal(t, tt.size, SizeOf(tt.c), tt.c.Name())
	}
}

func TestSameClass(t *testing.T) {
	assert.True(t, SameClass(col{}, Static("spin", 4)))
	assert.True(t, SameClass(site{}, Dyn("vol")))
	assert.False(t, SameClass(col{}, site{}))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "col[3]", Describe(col{}))
	assert.Equal(t, "site[dyn]", Describe(site{}))
	assert.Equal(t, "<nil>", Describe(nil))
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(col{}))
	require.NoError(t, Validate(site{}))

	require.NoError(t, Validate(Group(col{}, site{})))

	for _, c := range []Component{nil, Static("", 2), Static("zero", 0), Static("neg", -3), Static("col*spin", 12), Dyn("a*b")} {
		err := Validate(c)
		assert.ErrorIs(t, err, ErrInvalid, Describe(c))
	}
}

func TestMaxKnownSubMultiple(t *testing.T) {
	assert.Equal(t, 3, MaxKnownSubMultiple(col{}))
	assert.Equal(t, 1, MaxKnownSubMultiple(site{}))
	assert.Equal(t, 16, MaxKnownSubMultiple(evenSite{}))
}

func TestVectorizable(t *testing.T) {
	assert.True(t, Vectorizable(col{}, simd.Float64))
	assert.False(t, Vectorizable(site{}, simd.Float64))
	assert.False(t, Vectorizable(scalarOnly{}, simd.Float64))
}

func TestTwins(t *testing.T) {
	rw, cn := NewTwins("col", 3)

	assert.Equal(t, "rwcol", rw.Name())
	assert.Equal(t, "cncol", cn.Name())
	assert.Equal(t, 3, SizeOf(rw))
	assert.True(t, HasTwin(rw))
	assert.True(t, HasTwin(cn))
	assert.Equal(t, "cncol", TwinOf(rw).Name())
	assert.Equal(t, "rwcol", TwinOf(cn).Name())
	assert.Equal(t, 3, SizeOf(TwinOf(rw)))

	assert.False(t, HasTwin(col{}))
	assert.Equal(t, col{}, TwinOf(col{}))
}

func TestDynamicTwins(t *testing.T) {
	rw, cn := NewTwins("site", Dynamic)

	assert.True(t, IsDynamic(rw))
	assert.True(t, IsDynamic(cn))
	assert.True(t, IsDynamic(TwinOf(rw)))
	assert.Equal(t, "cnsite", TwinOf(rw).Name())
}

func TestGroup(t *testing.T) {
	spin := Static("spin", 4)

	g := Group(col{}, spin)
	assert.Equal(t, "col*spin", g.Name())
	assert.Equal(t, 12, SizeOf(g))
	assert.Equal(t, 12, MaxKnownSubMultiple(g))
	assert.Equal(t, []Component{col{}, spin}, Members(g))

	dg := Group(evenSite{}, col{})
	assert.True(t, IsDynamic(dg))
	assert.Equal(t, 48, MaxKnownSubMultiple(dg))

	assert.Equal(t, col{}, Group(col{}), "single member is returned as is")
	assert.Equal(t, []Component{site{}}, Members(site{}))
}

func TestGroupMembersAreCopied(t *testing.T) {
	g := Group(col{}, site{})
	m := Members(g)
	m[0] = Dyn("other")
	assert.Equal(t, "col", Members(g)[0].Name())
}
