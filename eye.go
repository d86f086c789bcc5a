package tensorext

import (
	"github.com/pkg/errors"
	"github.com/tensorext/tensorext/tensor"
)

// Eye returns a tensor of the given shape whose trailing two dimensions hold
// identity matrices: ones on the main diagonal, zeros elsewhere. Leading
// dimensions repeat the identity across the batch. Rectangular trailing
// dimensions are allowed; the diagonal runs from the top-left corner.
func Eye[T tensor.DType, B tensor.Backend](shape tensor.Shape, b B) (*tensor.Tensor[T, B], error) {
	if len(shape) < 2 {
		return nil, errors.Wrapf(ErrShape, "eye: shape must have at least 2 dimensions, got %v", shape)
	}
	rows := shape[len(shape)-2]
	cols := shape[len(shape)-1]

	js := tensor.Arange[int64](0, int64(cols), b).Reshape(1, cols)
	is := tensor.Arange[int64](0, int64(rows), b).Reshape(rows, 1)
	onDiag := js.Eq(is)

	ones := tensor.Ones[T](shape, b)
	zeros := tensor.Zeros[T](shape, b)
	return tensor.Where(onDiag, ones, zeros), nil
}
