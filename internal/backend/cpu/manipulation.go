package cpu

import (
	"fmt"

	"github.com/tensorext/tensorext/internal/tensor"
)

// Shape manipulation operations. These are dtype-agnostic: they move
// fixed-size elements around, so all kernels work on raw bytes.

// Reshape returns a tensor with the same data but different shape.
// The new shape must have the same number of elements.
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	result, err := t.WithShape(newShape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return result
}

// Transpose transposes the tensor by permuting its dimensions.
// If axes is empty, all dimensions are reversed.
func (cpu *CPUBackend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := t.Shape()
	ndim := len(shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: axes length %d != ndim %d", len(axes), ndim))
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			panic(fmt.Sprintf("transpose: invalid axis %d for %dD tensor", ax, ndim))
		}
		if seen[ax] {
			panic(fmt.Sprintf("transpose: duplicate axis %d", ax))
		}
		seen[ax] = true
	}

	newShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		newShape[i] = shape[ax]
	}

	result, err := tensor.NewRaw(newShape, t.DType(), t.Device())
	if err != nil {
		panic(fmt.Sprintf("transpose: %v", err))
	}

	elemSize := t.DType().Size()
	srcStrides := shape.ComputeStrides()
	outStrides := newShape.ComputeStrides()
	src := t.Data()
	dst := result.Data()

	for i := 0; i < t.NumElements(); i++ {
		rem := i
		srcIdx := 0
		for d := 0; d < ndim; d++ {
			coord := rem / outStrides[d]
			rem %= outStrides[d]
			srcIdx += coord * srcStrides[axes[d]]
		}
		copy(dst[i*elemSize:(i+1)*elemSize], src[srcIdx*elemSize:(srcIdx+1)*elemSize])
	}

	return result
}

// Chunk splits the tensor into n equal parts along the specified dimension.
// The dimension size must be divisible by n.
// Supports negative dim indexing (-1 = last dimension).
func (cpu *CPUBackend) Chunk(x *tensor.RawTensor, n, dim int) []*tensor.RawTensor {
	if n <= 0 {
		panic(fmt.Sprintf("chunk: n must be positive, got %d", n))
	}

	shape := x.Shape()
	ndim := len(shape)

	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("chunk: dimension %d out of range for %dD tensor", dim, ndim))
	}

	dimSize := shape[dim]
	if dimSize%n != 0 {
		panic(fmt.Sprintf("chunk: dimension %d size %d not divisible by %d", dim, dimSize, n))
	}
	chunkSize := dimSize / n

	chunkShape := shape.Clone()
	chunkShape[dim] = chunkSize

	outerSize := 1
	for i := 0; i < dim; i++ {
		outerSize *= shape[i]
	}
	innerSize := 1
	for i := dim + 1; i < ndim; i++ {
		innerSize *= shape[i]
	}

	elemSize := x.DType().Size()
	blockBytes := chunkSize * innerSize * elemSize
	rowBytes := dimSize * innerSize * elemSize
	src := x.Data()

	results := make([]*tensor.RawTensor, n)
	for i := 0; i < n; i++ {
		chunk, err := tensor.NewRaw(chunkShape, x.DType(), cpu.device)
		if err != nil {
			panic(fmt.Sprintf("chunk: %v", err))
		}
		dst := chunk.Data()
		for outer := 0; outer < outerSize; outer++ {
			srcOff := outer*rowBytes + i*blockBytes
			copy(dst[outer*blockBytes:(outer+1)*blockBytes], src[srcOff:srcOff+blockBytes])
		}
		results[i] = chunk
	}

	return results
}
