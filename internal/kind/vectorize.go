package kind

import (
	"github.com/born-ml/tenskind/internal/comp"
	"github.com/born-ml/tenskind/internal/simd"
)

// FirstVectorizingComp returns the outermost position from which the
// innermost components of k fill a whole number of SIMD registers of F, or -1.
func FirstVectorizingComp[F simd.DType](k *Kind) int {
	return k.FirstVectorizingComp(simd.DataTypeOf[F](), simd.DefaultConfig())
}

// FirstVectorizingComp scans k from the innermost component outward,
// accumulating the known extent of each vectorizable component. It returns
// the position at which the accumulated extent becomes a multiple of the lane
// count of dt. It returns -1 when a component that cannot be vectorized comes
// first or when only the outermost component is left, which always remains an
// outer loop.
func (k *Kind) FirstVectorizingComp(dt simd.DataType, cfg simd.Config) int {
	acc := 1
	for pos := len(k.comps) - 1; pos > 0; pos-- {
		c := k.comps[pos]
		if !comp.Vectorizable(c, dt) {
			return -1
		}
		acc *= comp.MaxKnownSubMultiple(c)
		if cfg.CanBeSizeOfVector(dt, acc) {
			return pos
		}
	}
	return -1
}
