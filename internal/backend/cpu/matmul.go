package cpu

import (
	"fmt"

	"github.com/tensorext/tensorext/internal/parallel"
	"github.com/tensorext/tensorext/internal/tensor"
)

// MatMul performs plain 2D matrix multiplication: (M, K) @ (K, N) -> (M, N).
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape := a.Shape()
	bShape := b.Shape()

	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: only 2D tensors supported, got %dD and %dD", len(aShape), len(bShape)))
	}

	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]

	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n))
	}

	result, err := tensor.NewRaw(tensor.Shape{m, n}, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("matmul: failed to create result tensor: %v", err))
	}

	switch a.DType() {
	case tensor.Float32:
		matmulKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n)
	case tensor.Float64:
		matmulKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, k, n)
	case tensor.Int32:
		matmulKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), m, k, n)
	case tensor.Int64:
		matmulKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), m, k, n)
	default:
		panic(fmt.Sprintf("matmul: unsupported dtype %s", a.DType()))
	}

	return result
}

// BatchMatMul treats the trailing two dimensions as matrices and broadcasts
// all leading (batch) dimensions, NumPy matmul style:
//
//	[3, 1, M, K] @ [1, 4, K, N] -> [3, 4, M, N]
//	[B, M, K]    @ [K, N]       -> [B, M, N]
//
// Both inputs must be at least 2D; a 2D operand broadcasts across every
// batch element of the other.
func (cpu *CPUBackend) BatchMatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape := a.Shape()
	bShape := b.Shape()

	if len(aShape) < 2 || len(bShape) < 2 {
		panic(fmt.Sprintf("batchmatmul: inputs must be at least 2D, got %dD and %dD", len(aShape), len(bShape)))
	}

	m, k := aShape[len(aShape)-2], aShape[len(aShape)-1]
	kAlt, n := bShape[len(bShape)-2], bShape[len(bShape)-1]
	if k != kAlt {
		panic(fmt.Sprintf("batchmatmul: inner dimension mismatch: %d vs %d", k, kAlt))
	}

	batchA := aShape[:len(aShape)-2]
	batchB := bShape[:len(bShape)-2]

	outBatch, _, err := tensor.BroadcastShapes(tensor.Shape(batchA), tensor.Shape(batchB))
	if err != nil {
		panic(fmt.Sprintf("batchmatmul: batch dimensions not broadcast-compatible: %v", err))
	}

	outShape := append(outBatch.Clone(), m, n)
	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("batchmatmul: failed to create result tensor: %v", err))
	}

	// Batch offsets are resolved in matrix units: each batch coordinate maps
	// into a and b through broadcast strides, then scales by the matrix size.
	batchSize := outBatch.NumElements()
	outStrides := outBatch.ComputeStrides()
	aStrides := tensor.BroadcastStrides(tensor.Shape(batchA), outBatch)
	bStrides := tensor.BroadcastStrides(tensor.Shape(batchB), outBatch)

	switch a.DType() {
	case tensor.Float32:
		batchMatmulKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(),
			batchSize, m, k, n, outStrides, aStrides, bStrides, cpu.parallel)
	case tensor.Float64:
		batchMatmulKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(),
			batchSize, m, k, n, outStrides, aStrides, bStrides, cpu.parallel)
	default:
		panic(fmt.Sprintf("batchmatmul: unsupported dtype %s", a.DType()))
	}

	return result
}

// matmulKernel computes C[i,j] = sum_k A[i,k] * B[k,j].
func matmulKernel[T number](c, a, b []T, m, k, n int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
}

// batchMatmulKernel runs one 2D matmul per output batch element, in parallel
// across batches.
func batchMatmulKernel[T number](
	c, a, b []T,
	batchSize, m, k, n int,
	outStrides, aStrides, bStrides []int,
	cfg parallel.Config,
) {
	matrixSizeA := m * k
	matrixSizeB := k * n
	matrixSizeC := m * n

	parallel.For(batchSize, func(batch int) {
		aOffset := tensor.FlatIndex(batch, outStrides, aStrides) * matrixSizeA
		bOffset := tensor.FlatIndex(batch, outStrides, bStrides) * matrixSizeB
		cOffset := batch * matrixSizeC
		matmulKernel(c[cOffset:cOffset+matrixSizeC], a[aOffset:aOffset+matrixSizeA], b[bOffset:bOffset+matrixSizeB], m, k, n)
	}, cfg)
}
