package tensorext

import (
	"math"

	"github.com/pkg/errors"
	"github.com/tensorext/tensorext/tensor"
)

// Equal reports whether two tensors have the same shape and identical
// elements. Floating comparisons follow IEEE semantics, so a NaN element
// makes the tensors unequal even against itself.
func Equal[T tensor.DType, B tensor.Backend](a, b *tensor.Tensor[T, B]) bool {
	if !a.Shape().Equal(b.Shape()) {
		return false
	}
	ad := a.Data()
	bd := b.Data()
	for i := range ad {
		if ad[i] != bd[i] {
			return false
		}
	}
	return true
}

// AllClose reports whether every element pair of a and b satisfies
// |a - b| <= atol + rtol*|b|, comparing in float64 regardless of the input
// element type. Any NaN on either side makes the tensors differ. Mismatched
// shapes are an ErrShape, not a false result.
func AllClose[T tensor.DType, B tensor.Backend](a, b *tensor.Tensor[T, B], rtol, atol float64) (bool, error) {
	if !a.Shape().Equal(b.Shape()) {
		return false, errors.Wrapf(ErrShape, "allclose: shapes %v and %v differ", a.Shape(), b.Shape())
	}
	ad := a.Float64().Data()
	bd := b.Float64().Data()
	for i := range ad {
		x, y := ad[i], bd[i]
		if x == y {
			continue
		}
		if math.IsNaN(x) || math.IsNaN(y) {
			return false, nil
		}
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false, nil
		}
	}
	return true, nil
}
