package physics

import (
	"testing"

	"github.com/born-ml/tenskind/kind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardKinds(t *testing.T) {
	tests := []struct {
		name    string
		k       *kind.Kind
		names   []string
		dynamic bool
	}{
		{"complex", Complex, []string{"compl"}, false},
		{"spincolor", Spincolor, []string{"spin", "col", "compl"}, false},
		{"su3", SU3Matrix, []string{"rwcol", "cncol", "compl"}, false},
		{"gauge", GaugeConf, []string{"spacetime", "dir", "rwcol", "cncol", "compl"}, true},
		{"spincolor field", SpincolorField, []string{"spacetime", "spin", "col", "compl"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.names, tt.k.Names())
			assert.Equal(t, tt.dynamic, tt.k.IsDynamic())
		})
	}
}

func TestColorSpinSpaceBlend(t *testing.T) {
	a := kind.Of2[Col, Spin]()
	b := kind.Of2[Spin, Spacetime]()

	blended := kind.MustBlend(a, b)
	assert.Equal(t, []string{"col", "spin", "spacetime"}, blended.Names())
	assert.False(t, a.IsDynamic())
	assert.True(t, blended.IsDynamic())

	slot, err := kind.DynPos[Spacetime](blended)
	require.NoError(t, err)
	assert.Equal(t, 0, slot)

	ds, err := kind.NewDynSizes(blended, Volume(4, 4, 4, 8))
	require.NoError(t, err)
	n, err := blended.TotalSize(ds)
	require.NoError(t, err)
	assert.Equal(t, NCol*NSpin*512, n)
}

func TestMatrixKinds(t *testing.T) {
	assert.Equal(t, []bool{true, true, false}, SU3Matrix.IsMatrixComp())
	assert.Equal(t, []string{"rwcol", "compl"}, SU3Matrix.Diag().Names())

	tr, err := SU3Matrix.Twinned()
	require.NoError(t, err)
	assert.Equal(t, []string{"cncol", "rwcol", "compl"}, tr.Names())

	v := kind.MustMerge(GaugeConf, kind.SameClassTwinSafe)
	assert.Equal(t, []string{"spacetime", "dir", "rwcol", "cncol", "compl"}, v.Kind.Names())
}

func TestVectorization(t *testing.T) {
	// spin*col*compl = 24 doubles: three AVX-512 registers.
	assert.Equal(t, 1, kind.FirstVectorizingComp[float64](SpincolorField))
	// A lone color vector never fills a register.
	assert.Equal(t, -1, kind.FirstVectorizingComp[float64](ColorVector))
}

func TestVolume(t *testing.T) {
	assert.Equal(t, 1, Volume())
	assert.Equal(t, 16*16*16*32, Volume(16, 16, 16, 32))
}
