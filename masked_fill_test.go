package tensorext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensorext/tensorext/backend/cpu"
	"github.com/tensorext/tensorext/tensor"
)

func TestMaskedFill(t *testing.T) {
	b := cpu.New()
	x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, b)
	require.NoError(t, err)
	mask, err := tensor.FromSlice([]bool{true, false, false, true}, tensor.Shape{2, 2}, b)
	require.NoError(t, err)

	got, err := MaskedFill(x, mask, float32(-1))
	require.NoError(t, err)
	assert.Equal(t, []float32{-1, 2, 3, -1}, got.Data())
	assert.Equal(t, []float32{1, 2, 3, 4}, x.Data(), "input must be untouched")
}

func TestMaskedFillBroadcast(t *testing.T) {
	b := cpu.New()
	x, err := tensor.FromSlice([]float64{
		1, 2, 3,
		4, 5, 6,
	}, tensor.Shape{2, 3}, b)
	require.NoError(t, err)

	// Row mask broadcasts down the matrix.
	mask, err := tensor.FromSlice([]bool{false, true, false}, tensor.Shape{1, 3}, b)
	require.NoError(t, err)

	got, err := MaskedFill(x, mask, float64(9))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 9, 3, 4, 9, 6}, got.Data())
}

func TestMaskedFillShapeMismatch(t *testing.T) {
	b := cpu.New()
	x := tensor.Zeros[float32](tensor.Shape{2, 3}, b)
	mask := tensor.Zeros[bool](tensor.Shape{2, 4}, b)

	_, err := MaskedFill(x, mask, float32(0))
	assert.ErrorIs(t, err, ErrShape)
}
