package tensorext

import (
	"github.com/pkg/errors"
	"github.com/tensorext/tensorext/tensor"
)

// bandKeepMask builds a [rows, cols] boolean mask over matrix coordinates.
// For upper masks it keeps positions with j-i >= diagonal, for lower masks
// j-i <= diagonal. Built from broadcast index arithmetic so it runs on any
// backend.
func bandKeepMask[B tensor.Backend](rows, cols, diagonal int, upper bool, b B) *tensor.Tensor[bool, B] {
	js := tensor.Arange[int64](0, int64(cols), b).Reshape(1, cols)
	is := tensor.Arange[int64](0, int64(rows), b).Reshape(rows, 1)
	diff := js.Sub(is)
	k := tensor.Full[int64](tensor.Shape{1, 1}, int64(diagonal), b)
	if upper {
		return diff.GreaterEqual(k)
	}
	return diff.LowerEqual(k)
}

// Triu returns the upper triangular part of the matrices in t, zeroing every
// element below the diagonal. The mask applies to the trailing two
// dimensions; leading batch dimensions pass through unchanged.
//
// diagonal selects which diagonal bounds the kept band: 0 keeps the main
// diagonal and above, positive values shift the band up and to the right,
// negative values extend it down and to the left.
func Triu[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], diagonal int) (*tensor.Tensor[T, B], error) {
	return triangular(t, diagonal, true)
}

// Tril returns the lower triangular part of the matrices in t, zeroing every
// element above the diagonal. It is the complement of Triu: for any t and k,
// Triu(t, k) + Tril(t, k-1) reconstructs t.
func Tril[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], diagonal int) (*tensor.Tensor[T, B], error) {
	return triangular(t, diagonal, false)
}

func triangular[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], diagonal int, upper bool) (*tensor.Tensor[T, B], error) {
	shape := t.Shape()
	if len(shape) < 2 {
		name := "tril"
		if upper {
			name = "triu"
		}
		return nil, errors.Wrapf(ErrShape, "%s: tensor must have at least 2 dimensions, got shape %v", name, shape)
	}
	rows := shape[len(shape)-2]
	cols := shape[len(shape)-1]
	keep := bandKeepMask(rows, cols, diagonal, upper, t.Backend())
	zeros := tensor.Zeros[T](shape, t.Backend())
	return tensor.Where(keep, t, zeros), nil
}
