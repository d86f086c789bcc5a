package tensorext

import (
	"github.com/tensorext/tensorext/tensor"
)

// ValuesLike returns a tensor with the shape, element type, and backend of t,
// filled with value.
func ValuesLike[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], value T) *tensor.Tensor[T, B] {
	return tensor.Full(t.Shape(), value, t.Backend())
}

// ZerosLike returns a zero-filled tensor shaped like t.
func ZerosLike[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	var zero T
	return ValuesLike(t, zero)
}

// OnesLike returns a one-filled tensor shaped like t.
func OnesLike[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	return ValuesLikeScalar(t, 1)
}

// ValuesLikeScalar is ValuesLike with the fill value given as a float64.
// The value must be exactly representable in t's element type; otherwise
// it reports ErrCast and no tensor is allocated.
func ValuesLikeScalar[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], value float64) (*tensor.Tensor[T, B], error) {
	v, err := scalarTo[T](value)
	if err != nil {
		return nil, err
	}
	return ValuesLike(t, v), nil
}
