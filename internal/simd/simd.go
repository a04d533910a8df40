package simd

import (
	"fmt"
	"unsafe"
)

// DefaultAlignment is the register width in bytes of AVX-512.
const DefaultAlignment = 64

// Config controls the SIMD geometry.
type Config struct {
	Alignment int // Register width in bytes. Must be a power of two.
}

// DefaultConfig returns the geometry of the widest register commonly available.
func DefaultConfig() Config {
	return Config{Alignment: DefaultAlignment}
}

// Validate checks that the alignment is a positive power of two.
func (c Config) Validate() error {
	if c.Alignment <= 0 || c.Alignment&(c.Alignment-1) != 0 {
		return fmt.Errorf("simd: alignment %d is not a positive power of two", c.Alignment)
	}
	return nil
}

// Lanes returns the number of elements of type dt held by one register.
func (c Config) Lanes(dt DataType) int {
	n := c.Alignment / dt.Size()
	if n < 1 {
		return 1
	}
	return n
}

// CanBeSizeOfVector reports whether size elements of dt fill a whole number
// of registers.
func (c Config) CanBeSizeOfVector(dt DataType, size int) bool {
	return size >= 0 && size%c.Lanes(dt) == 0
}

// CanBeFactorOfVector reports whether size divides the lane count of dt.
func (c Config) CanBeFactorOfVector(dt DataType, size int) bool {
	return size > 0 && c.Lanes(dt)%size == 0
}

// Lanes returns the lane count of T under the default configuration.
func Lanes[T DType]() int {
	return DefaultConfig().Lanes(DataTypeOf[T]())
}

func sizeOf[T DType](v T) int {
	return int(unsafe.Sizeof(v))
}
