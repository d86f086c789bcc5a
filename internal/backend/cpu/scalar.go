package cpu

import (
	"fmt"

	"github.com/tensorext/tensorext/internal/tensor"
)

// Scalar operations - element-wise operations with a scalar value broadcast
// to every element. The scalar's Go type must match the tensor's dtype.

// MulScalar multiplies each element of the tensor by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp(opMul, x, scalar)
}

// AddScalar adds a scalar value to each element of the tensor.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp(opAdd, x, scalar)
}

// SubScalar subtracts a scalar value from each element of the tensor.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp(opSub, x, scalar)
}

// DivScalar divides each element of the tensor by a scalar value.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp(opDiv, x, scalar)
}

func (cpu *CPUBackend) scalarOp(op binOp, x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%sScalar: failed to create result tensor: %v", op, err))
	}

	switch x.DType() {
	case tensor.Float32:
		scalarKernel(result.AsFloat32(), x.AsFloat32(), scalar.(float32), arith[float32](op))
	case tensor.Float64:
		scalarKernel(result.AsFloat64(), x.AsFloat64(), scalar.(float64), arith[float64](op))
	case tensor.Int32:
		scalarKernel(result.AsInt32(), x.AsInt32(), scalar.(int32), arith[int32](op))
	case tensor.Int64:
		scalarKernel(result.AsInt64(), x.AsInt64(), scalar.(int64), arith[int64](op))
	case tensor.Uint8:
		scalarKernel(result.AsUint8(), x.AsUint8(), scalar.(uint8), arith[uint8](op))
	default:
		panic(fmt.Sprintf("%sScalar: unsupported dtype %v", op, x.DType()))
	}

	return result
}

func scalarKernel[T number](dst, src []T, scalar T, f func(T, T) T) {
	for i, v := range src {
		dst[i] = f(v, scalar)
	}
}
