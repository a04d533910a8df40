package kind

import (
	"testing"

	"github.com/born-ml/tenskind/internal/comp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwinnedKind(t *testing.T) {
	rw, cn := comp.NewTwins("col", 3)
	k := MustNew(rw, spin{}, cn)

	tw, err := k.Twinned()
	require.NoError(t, err)
	assert.Equal(t, []string{"cncol", "spin", "rwcol"}, tw.Names())

	back, err := tw.Twinned()
	require.NoError(t, err)
	assert.True(t, back.Equal(k))
}

func TestMatrixAndDiagComps(t *testing.T) {
	rw, cn := comp.NewTwins("col", 3)
	rs, cs := comp.NewTwins("spin", 4)

	k := MustNew(rw, rs, space{}, cn, cs)
	assert.Equal(t, []bool{true, true, false, true, true}, k.IsMatrixComp())
	assert.Equal(t, []bool{true, true, true, false, false}, k.IsDiagComp())
	assert.Equal(t, []string{"rwcol", "rwspin", "space"}, k.Diag().Names())

	// A lone row component is not matricial and stays in the diagonal.
	lone := MustNew(rw, spin{})
	assert.Equal(t, []bool{false, false}, lone.IsMatrixComp())
	assert.True(t, lone.Diag().Equal(lone))
}
