package tensorext

import (
	"github.com/pkg/errors"
	"github.com/tensorext/tensorext/tensor"
)

// Chunk splits t into n equal pieces along dim, which may be negative to
// count from the last dimension. The dimension length must divide evenly
// by n.
func Chunk[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], n, dim int) ([]*tensor.Tensor[T, B], error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrConfig, "chunk: number of chunks must be positive, got %d", n)
	}
	shape := t.Shape()
	dim, err := normalizeDim(dim, len(shape), "chunk")
	if err != nil {
		return nil, err
	}
	if shape[dim]%n != 0 {
		return nil, errors.Wrapf(ErrShape, "chunk: dimension %d of length %d is not divisible into %d chunks", dim, shape[dim], n)
	}
	return t.Chunk(n, dim), nil
}

// Unbind removes dim and returns a slice of tensors, one per index along it,
// each with dim squeezed out. Unbinding the only dimension of a vector
// yields scalar tensors of shape [1].
func Unbind[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], dim int) ([]*tensor.Tensor[T, B], error) {
	shape := t.Shape()
	dim, err := normalizeDim(dim, len(shape), "unbind")
	if err != nil {
		return nil, err
	}
	parts := t.Chunk(shape[dim], dim)

	outShape := make([]int, 0, len(shape)-1)
	for d, size := range shape {
		if d != dim {
			outShape = append(outShape, size)
		}
	}
	if len(outShape) == 0 {
		outShape = []int{1}
	}
	for i, p := range parts {
		parts[i] = p.Reshape(outShape...)
	}
	return parts, nil
}

func normalizeDim(dim, ndim int, op string) (int, error) {
	d := dim
	if d < 0 {
		d += ndim
	}
	if d < 0 || d >= ndim {
		return 0, errors.Wrapf(ErrShape, "%s: dimension %d out of range for %d-dimensional tensor", op, dim, ndim)
	}
	return d, nil
}
