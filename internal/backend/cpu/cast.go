package cpu

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/tensorext/tensorext/internal/tensor"
)

// Cast converts the tensor to a different data type.
//
// Numeric casts follow Go conversion semantics (truncation toward zero for
// float-to-int). Bool sources become 0/1; numeric targets of Bool are
// nonzero-tests. Float16 round-trips through float32 in both directions.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x
	}

	result, err := tensor.NewRaw(x.Shape(), dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		castTo(result, x.AsFloat32())
	case tensor.Float64:
		castTo(result, x.AsFloat64())
	case tensor.Int32:
		castTo(result, x.AsInt32())
	case tensor.Int64:
		castTo(result, x.AsInt64())
	case tensor.Uint8:
		castTo(result, x.AsUint8())
	case tensor.Float16:
		src := x.AsFloat16()
		widened := make([]float32, len(src))
		for i, v := range src {
			widened[i] = v.Float32()
		}
		castTo(result, widened)
	case tensor.Bool:
		src := x.AsBool()
		widened := make([]uint8, len(src))
		for i, v := range src {
			if v {
				widened[i] = 1
			}
		}
		castTo(result, widened)
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %v", x.DType()))
	}

	return result
}

func castTo[S number](result *tensor.RawTensor, src []S) {
	switch result.DType() {
	case tensor.Float32:
		dst := result.AsFloat32()
		for i, v := range src {
			dst[i] = float32(v)
		}
	case tensor.Float64:
		dst := result.AsFloat64()
		for i, v := range src {
			dst[i] = float64(v)
		}
	case tensor.Float16:
		dst := result.AsFloat16()
		for i, v := range src {
			dst[i] = float16.Fromfloat32(float32(v))
		}
	case tensor.Int32:
		dst := result.AsInt32()
		for i, v := range src {
			dst[i] = int32(v)
		}
	case tensor.Int64:
		dst := result.AsInt64()
		for i, v := range src {
			dst[i] = int64(v)
		}
	case tensor.Uint8:
		dst := result.AsUint8()
		for i, v := range src {
			dst[i] = uint8(v)
		}
	case tensor.Bool:
		dst := result.AsBool()
		for i, v := range src {
			dst[i] = v != 0
		}
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %v", result.DType()))
	}
}
