// Package simd describes the SIMD register geometry used to decide which
// tensor axes can be folded into a single vectorized loop.
package simd

// DType is a constraint for the fundamental types a tensor can hold.
// Only fixed-width numeric types have a meaningful SIMD lane count.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// DataType represents runtime type information for a fundamental type.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Uint8
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Uint8:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	default:
		return "unknown"
	}
}

// DataTypeOf infers the DataType of the generic type T.
func DataTypeOf[T DType]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	}
	// Named types (~float32 and friends) fall through the type switch.
	return dataTypeOfUnderlying(dummy)
}

func dataTypeOfUnderlying[T DType](dummy T) DataType {
	// Distinguish by width and by whether a fraction survives.
	half := T(1) / T(2)
	switch size := sizeOf(dummy); {
	case size == 1:
		return Uint8
	case size == 4 && half != 0:
		return Float32
	case size == 4:
		return Int32
	case half != 0:
		return Float64
	default:
		return Int64
	}
}
