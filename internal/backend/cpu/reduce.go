package cpu

import (
	"fmt"
	"math"

	"github.com/tensorext/tensorext/internal/tensor"
)

// SumDim sums tensor elements along the specified dimension.
//
// Parameters:
//   - dim: dimension to reduce (supports negative indexing: -1 = last dim)
//   - keepDim: if true, keep the reduced dimension with size 1; if false, remove it
//
// Example:
//
//	x := tensor.Randn[float32](Shape{2, 3, 4}, backend)
//	y := backend.SumDim(x, -1, true)   // shape: [2, 3, 1]
//	z := backend.SumDim(x, -1, false)  // shape: [2, 3]
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return cpu.reduce("sumdim", x, dim, keepDim, false)
}

// MaxDim computes the maximum of tensor elements along the specified dimension.
// Same dim/keepDim semantics as SumDim.
func (cpu *CPUBackend) MaxDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return cpu.reduce("maxdim", x, dim, keepDim, true)
}

func (cpu *CPUBackend) reduce(name string, x *tensor.RawTensor, dim int, keepDim, isMax bool) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("%s: dimension %d out of range for %dD tensor", name, dim, ndim))
	}

	var outShape tensor.Shape
	if keepDim {
		outShape = shape.Clone()
		outShape[dim] = 1
	} else {
		outShape = make(tensor.Shape, 0, ndim-1)
		for i := 0; i < ndim; i++ {
			if i != dim {
				outShape = append(outShape, shape[i])
			}
		}
	}

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float32:
		if isMax {
			reduceKernel(x.AsFloat32(), result.AsFloat32(), shape, dim, float32(math.Inf(-1)), maxOf[float32])
		} else {
			reduceKernel(x.AsFloat32(), result.AsFloat32(), shape, dim, 0, sumOf[float32])
		}
	case tensor.Float64:
		if isMax {
			reduceKernel(x.AsFloat64(), result.AsFloat64(), shape, dim, math.Inf(-1), maxOf[float64])
		} else {
			reduceKernel(x.AsFloat64(), result.AsFloat64(), shape, dim, 0, sumOf[float64])
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", name, x.DType()))
	}

	return result
}

func sumOf[T ~float32 | ~float64](acc, v T) T { return acc + v }

func maxOf[T ~float32 | ~float64](acc, v T) T {
	if v > acc {
		return v
	}
	return acc
}

// reduceKernel folds f along dim using the (outer, axis, inner) decomposition
// of the input shape.
func reduceKernel[T ~float32 | ~float64](src, dst []T, shape tensor.Shape, dim int, init T, f func(T, T) T) {
	outerSize := 1
	for i := 0; i < dim; i++ {
		outerSize *= shape[i]
	}
	axisSize := shape[dim]
	innerSize := 1
	for i := dim + 1; i < len(shape); i++ {
		innerSize *= shape[i]
	}

	for outer := 0; outer < outerSize; outer++ {
		for inner := 0; inner < innerSize; inner++ {
			baseIdx := outer*axisSize*innerSize + inner
			acc := init
			for i := 0; i < axisSize; i++ {
				acc = f(acc, src[baseIdx+i*innerSize])
			}
			dst[outer*innerSize+inner] = acc
		}
	}
}
