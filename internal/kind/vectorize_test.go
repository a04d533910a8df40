package kind

import (
	"testing"

	"github.com/born-ml/tenskind/internal/comp"
	"github.com/born-ml/tenskind/internal/simd"
	"github.com/stretchr/testify/assert"
)

// scalarSpin is static but refuses vectorization.
type scalarSpin struct{}

func (scalarSpin) Name() string                    { return "sspin" }
func (scalarSpin) Size() int                       { return 4 }
func (scalarSpin) Vectorizable(simd.DataType) bool { return false }

// volume is dynamic, always a multiple of 16, and may be vectorized.
type volume struct{}

func (volume) Name() string                    { return "volume" }
func (volume) MaxKnownSubMultiple() int        { return 16 }
func (volume) Vectorizable(simd.DataType) bool { return true }

func TestFirstVectorizingComp(t *testing.T) {
	tests := []struct {
		name    string
		kind    *Kind
		float64 int
		float32 int
	}{
		{"spin compl fills float64", MustNew(space{}, col{}, spin{}, compl{}), 2, -1},
		{"dir spin fills both", MustNew(space{}, dir{}, spin{}), 1, 1},
		{"dynamic blocks", MustNew(col{}, space{}, compl{}), -1, -1},
		{"single component", MustNew(compl{}), -1, -1},
		{"outermost never used", MustNew(dir{}, compl{}), -1, -1},
		{"refusing component", MustNew(space{}, dir{}, scalarSpin{}), -1, -1},
		{"known sub-multiple", MustNew(col{}, volume{}), 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.float64, FirstVectorizingComp[float64](tt.kind), "float64")
			assert.Equal(t, tt.float32, FirstVectorizingComp[float32](tt.kind), "float32")
		})
	}
}

func TestFirstVectorizingCompNarrowRegister(t *testing.T) {
	k := MustNew(space{}, col{}, compl{})
	sse := simd.Config{Alignment: 16}

	assert.Equal(t, 2, k.FirstVectorizingComp(simd.Float64, sse))
	assert.Equal(t, -1, k.FirstVectorizingComp(simd.Float64, simd.DefaultConfig()))
}

func TestFirstVectorizingCompOnMergedKind(t *testing.T) {
	k := MustNew(space{}, col{}, spin{}, compl{})
	v := MustMerge(k, nil)

	// The merged static block col*spin*compl holds three float64 registers.
	assert.Equal(t, 1, FirstVectorizingComp[float64](v.Kind))
	assert.Equal(t, 24, comp.SizeOf(v.Kind.Comp(1)))
}
