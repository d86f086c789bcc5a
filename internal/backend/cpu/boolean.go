package cpu

import (
	"fmt"

	"github.com/tensorext/tensorext/internal/tensor"
)

// Boolean operations - work on bool tensors, broadcasting both operands.

// Or computes element-wise logical OR.
func (cpu *CPUBackend) Or(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.boolBinary("or", a, b, func(x, y bool) bool { return x || y })
}

// And computes element-wise logical AND.
func (cpu *CPUBackend) And(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.boolBinary("and", a, b, func(x, y bool) bool { return x && y })
}

// Not computes element-wise logical NOT.
func (cpu *CPUBackend) Not(x *tensor.RawTensor) *tensor.RawTensor {
	if x.DType() != tensor.Bool {
		panic("not: tensor must be bool dtype")
	}

	result, err := tensor.NewRaw(x.Shape(), tensor.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("not: %v", err))
	}

	src := x.AsBool()
	dst := result.AsBool()
	for i := range dst {
		dst[i] = !src[i]
	}

	return result
}

func (cpu *CPUBackend) boolBinary(name string, a, b *tensor.RawTensor, f func(bool, bool) bool) *tensor.RawTensor {
	if a.DType() != tensor.Bool || b.DType() != tensor.Bool {
		panic(fmt.Sprintf("%s: both tensors must be bool dtype", name))
	}

	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, tensor.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	aData := a.AsBool()
	bData := b.AsBool()
	dst := result.AsBool()

	if a.Shape().Equal(b.Shape()) {
		for i := range dst {
			dst[i] = f(aData[i], bData[i])
		}
		return result
	}

	outStrides := outShape.ComputeStrides()
	aStrides := tensor.BroadcastStrides(a.Shape(), outShape)
	bStrides := tensor.BroadcastStrides(b.Shape(), outShape)

	for i := range dst {
		av := aData[tensor.FlatIndex(i, outStrides, aStrides)]
		bv := bData[tensor.FlatIndex(i, outStrides, bStrides)]
		dst[i] = f(av, bv)
	}

	return result
}
