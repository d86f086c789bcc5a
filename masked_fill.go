package tensorext

import (
	"github.com/pkg/errors"
	"github.com/tensorext/tensorext/tensor"
)

// MaskedFill replaces the elements of t where mask is true with value,
// leaving the rest untouched. The mask broadcasts against t's shape; the
// result takes the broadcast shape.
func MaskedFill[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], mask *tensor.Tensor[bool, B], value T) (*tensor.Tensor[T, B], error) {
	if _, _, err := tensor.BroadcastShapes(t.Shape(), mask.Shape()); err != nil {
		return nil, errors.Wrapf(ErrShape, "masked_fill: mask %v does not broadcast against %v", mask.Shape(), t.Shape())
	}
	fill := tensor.Full(tensor.Shape{1}, value, t.Backend())
	return tensor.Where(mask, fill, t), nil
}
