package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type myFloat float64

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	assert.Equal(t, "float32", Float32.String())
	assert.Equal(t, "uint8", Uint8.String())
	assert.Equal(t, "unknown", DataType(42).String())
	assert.Panics(t, func() { DataType(42).Size() })
}

func TestDataTypeOf(t *testing.T) {
	assert.Equal(t, Float32, DataTypeOf[float32]())
	assert.Equal(t, Float64, DataTypeOf[float64]())
	assert.Equal(t, Int32, DataTypeOf[int32]())
	assert.Equal(t, Int64, DataTypeOf[int64]())
	assert.Equal(t, Uint8, DataTypeOf[uint8]())
	assert.Equal(t, Float64, DataTypeOf[myFloat]())
}

func TestLanes(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 16, cfg.Lanes(Float32))
	assert.Equal(t, 8, cfg.Lanes(Float64))
	assert.Equal(t, 64, cfg.Lanes(Uint8))
	assert.Equal(t, 8, Lanes[float64]())

	narrow := Config{Alignment: 4}
	assert.Equal(t, 1, narrow.Lanes(Float64))
}

func TestConfigValidate(t *testing.T) {
	for _, a := range []int{0, -8, 48} {
		assert.Error(t, Config{Alignment: a}.Validate(), "alignment %d", a)
	}
	assert.NoError(t, Config{Alignment: 32}.Validate())
}

func TestCanBeSizeOfVector(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.CanBeSizeOfVector(Float64, 8))
	assert.True(t, cfg.CanBeSizeOfVector(Float64, 24))
	assert.False(t, cfg.CanBeSizeOfVector(Float64, 12))
	assert.False(t, cfg.CanBeSizeOfVector(Float64, -8))

	assert.True(t, cfg.CanBeFactorOfVector(Float64, 4))
	assert.False(t, cfg.CanBeFactorOfVector(Float64, 3))
	assert.False(t, cfg.CanBeFactorOfVector(Float64, 0))
}
