package tensorext

import (
	"github.com/pkg/errors"
	"github.com/tensorext/tensorext/tensor"
)

// Outer computes the outer product of two 1-D tensors, returning an
// [len(a), len(b)] matrix with result[i][j] = a[i] * b[j].
func Outer[T tensor.DType, B tensor.Backend](a, b *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if len(a.Shape()) != 1 || len(b.Shape()) != 1 {
		return nil, errors.Wrapf(ErrShape, "outer: both inputs must be 1-dimensional, got %v and %v", a.Shape(), b.Shape())
	}
	n := a.Shape()[0]
	m := b.Shape()[0]
	return a.Reshape(n, 1).Mul(b.Reshape(1, m)), nil
}
