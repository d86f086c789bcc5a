package tensorext

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensorext/tensorext/backend/cpu"
	"github.com/tensorext/tensorext/tensor"
)

func TestValuesLike(t *testing.T) {
	b := cpu.New()
	x := tensor.Randn[float32](tensor.Shape{2, 3}, b)

	got := ValuesLike(x, float32(2.5))
	assert.Equal(t, x.Shape(), got.Shape())
	assert.Equal(t, x.DType(), got.DType())
	assert.Equal(t, []float32{2.5, 2.5, 2.5, 2.5, 2.5, 2.5}, got.Data())
}

func TestValuesLikeIndependent(t *testing.T) {
	b := cpu.New()
	x, err := tensor.FromSlice([]int64{1, 2, 3}, tensor.Shape{3}, b)
	require.NoError(t, err)

	got := ValuesLike(x, int64(7))
	got.Set(int64(0), 0)
	assert.Equal(t, []int64{1, 2, 3}, x.Data(), "source must be untouched")
}

func TestZerosOnesLike(t *testing.T) {
	b := cpu.New()
	x := tensor.Randn[float64](tensor.Shape{4}, b)

	z := ZerosLike(x)
	assert.Equal(t, []float64{0, 0, 0, 0}, z.Data())

	o, err := OnesLike(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 1}, o.Data())
}

func TestValuesLikeScalar(t *testing.T) {
	b := cpu.New()

	t.Run("integral into int32", func(t *testing.T) {
		x := tensor.Zeros[int32](tensor.Shape{2}, b)
		got, err := ValuesLikeScalar(x, 12)
		require.NoError(t, err)
		assert.Equal(t, []int32{12, 12}, got.Data())
	})

	t.Run("fraction into int32", func(t *testing.T) {
		x := tensor.Zeros[int32](tensor.Shape{2}, b)
		_, err := ValuesLikeScalar(x, 1.5)
		assert.ErrorIs(t, err, ErrCast)
	})

	t.Run("overflow into uint8", func(t *testing.T) {
		x := tensor.Zeros[uint8](tensor.Shape{2}, b)
		_, err := ValuesLikeScalar(x, 256)
		assert.ErrorIs(t, err, ErrCast)
	})

	t.Run("negative into uint8", func(t *testing.T) {
		x := tensor.Zeros[uint8](tensor.Shape{2}, b)
		_, err := ValuesLikeScalar(x, -1)
		assert.ErrorIs(t, err, ErrCast)
	})

	t.Run("overflow into float32", func(t *testing.T) {
		x := tensor.Zeros[float32](tensor.Shape{2}, b)
		_, err := ValuesLikeScalar(x, 1e300)
		assert.ErrorIs(t, err, ErrCast)
	})

	t.Run("nan into float64", func(t *testing.T) {
		x := tensor.Zeros[float64](tensor.Shape{2}, b)
		got, err := ValuesLikeScalar(x, math.NaN())
		require.NoError(t, err)
		assert.True(t, math.IsNaN(got.Data()[0]))
	})

	t.Run("nan into int64", func(t *testing.T) {
		x := tensor.Zeros[int64](tensor.Shape{2}, b)
		_, err := ValuesLikeScalar(x, math.NaN())
		assert.ErrorIs(t, err, ErrCast)
	})

	t.Run("bool accepts only 0 and 1", func(t *testing.T) {
		x := tensor.Zeros[bool](tensor.Shape{2}, b)
		got, err := ValuesLikeScalar(x, 1)
		require.NoError(t, err)
		assert.Equal(t, []bool{true, true}, got.Data())

		_, err = ValuesLikeScalar(x, 2)
		assert.ErrorIs(t, err, ErrCast)
	})
}
