package tensorext

import (
	"math"

	"github.com/pkg/errors"
	"github.com/tensorext/tensorext/tensor"
	"github.com/x448/float16"
)

// scalarOf converts a float64 to a floating element type. Callers check the
// tensor dtype first; non-float instantiations are a programming error.
func scalarOf[T tensor.DType](v float64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(v)).(T)
	case float64:
		return any(v).(T)
	case float16.Float16:
		return any(float16.Fromfloat32(float32(v))).(T)
	default:
		panic("tensorext: scalarOf requires a floating element type")
	}
}

// scalarTo converts a float64 to any element type, reporting ErrCast when
// the value is not exactly representable (integer overflow, fractional part,
// non-finite value into an integer, or a non-0/1 value into a bool).
func scalarTo[T tensor.DType](v float64) (T, error) {
	var zero T
	switch any(zero).(type) {
	case float32:
		if !math.IsInf(v, 0) && math.Abs(v) > math.MaxFloat32 {
			return zero, errors.Wrapf(ErrCast, "value %v overflows float32", v)
		}
		return any(float32(v)).(T), nil
	case float64:
		return any(v).(T), nil
	case float16.Float16:
		if !math.IsInf(v, 0) && math.Abs(v) > 65504 {
			return zero, errors.Wrapf(ErrCast, "value %v overflows float16", v)
		}
		return any(float16.Fromfloat32(float32(v))).(T), nil
	case int32:
		if !isIntegral(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return zero, errors.Wrapf(ErrCast, "value %v is not representable as int32", v)
		}
		return any(int32(v)).(T), nil
	case int64:
		if !isIntegral(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return zero, errors.Wrapf(ErrCast, "value %v is not representable as int64", v)
		}
		return any(int64(v)).(T), nil
	case uint8:
		if !isIntegral(v) || v < 0 || v > math.MaxUint8 {
			return zero, errors.Wrapf(ErrCast, "value %v is not representable as uint8", v)
		}
		return any(uint8(v)).(T), nil
	case bool:
		switch v {
		case 0:
			return any(false).(T), nil
		case 1:
			return any(true).(T), nil
		default:
			return zero, errors.Wrapf(ErrCast, "value %v is not representable as bool", v)
		}
	default:
		return zero, errors.Wrapf(ErrCast, "unsupported element type")
	}
}

func isIntegral(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v == math.Trunc(v)
}
