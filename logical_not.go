package tensorext

import (
	"github.com/pkg/errors"
	"github.com/tensorext/tensorext/tensor"
)

// LogicalNot negates a tensor elementwise under a truthiness reading of its
// elements. Boolean tensors invert directly. Integer tensors treat zero as
// false and everything else as true, returning 0/1 in the same element type.
// Floating tensors have no exact truthiness and are rejected with ErrType.
func LogicalNot[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	b := t.Backend()
	switch dt := t.DType(); dt {
	case tensor.Bool:
		return tensor.New[T](b.Not(t.Raw()), b), nil
	case tensor.Int32, tensor.Int64, tensor.Uint8:
		zeros := tensor.Zeros[T](t.Shape(), b)
		isZero := t.Eq(zeros)
		return tensor.New[T](b.Cast(isZero.Raw(), dt), b), nil
	default:
		return nil, errors.Wrapf(ErrType, "logical_not: cannot negate %s tensor", dt)
	}
}
