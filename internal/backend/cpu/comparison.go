package cpu

import (
	"fmt"

	"github.com/tensorext/tensorext/internal/tensor"
)

// Comparison operations - return bool tensors, broadcasting both operands.

type cmpOp int

const (
	opGreater cmpOp = iota
	opLower
	opGreaterEqual
	opLowerEqual
	opEqual
	opNotEqual
)

func (op cmpOp) String() string {
	switch op {
	case opGreater:
		return "greater"
	case opLower:
		return "lower"
	case opGreaterEqual:
		return "greaterEqual"
	case opLowerEqual:
		return "lowerEqual"
	case opEqual:
		return "equal"
	case opNotEqual:
		return "notEqual"
	default:
		return "unknown"
	}
}

// Greater returns a > b element-wise.
func (cpu *CPUBackend) Greater(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare(opGreater, a, b)
}

// Lower returns a < b element-wise.
func (cpu *CPUBackend) Lower(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare(opLower, a, b)
}

// GreaterEqual returns a >= b element-wise.
func (cpu *CPUBackend) GreaterEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare(opGreaterEqual, a, b)
}

// LowerEqual returns a <= b element-wise.
func (cpu *CPUBackend) LowerEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare(opLowerEqual, a, b)
}

// Equal returns a == b element-wise.
func (cpu *CPUBackend) Equal(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare(opEqual, a, b)
}

// NotEqual returns a != b element-wise.
func (cpu *CPUBackend) NotEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare(opNotEqual, a, b)
}

func (cpu *CPUBackend) compare(op cmpOp, a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", op, a.DType(), b.DType()))
	}

	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	result, err := tensor.NewRaw(outShape, tensor.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	switch a.DType() {
	case tensor.Float32:
		compareKernel(result.AsBool(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, predicate[float32](op))
	case tensor.Float64:
		compareKernel(result.AsBool(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, predicate[float64](op))
	case tensor.Int32:
		compareKernel(result.AsBool(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, predicate[int32](op))
	case tensor.Int64:
		compareKernel(result.AsBool(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, predicate[int64](op))
	case tensor.Uint8:
		compareKernel(result.AsBool(), a.AsUint8(), b.AsUint8(), a.Shape(), b.Shape(), outShape, predicate[uint8](op))
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, a.DType()))
	}

	return result
}

func predicate[T number](op cmpOp) func(T, T) bool {
	switch op {
	case opGreater:
		return func(x, y T) bool { return x > y }
	case opLower:
		return func(x, y T) bool { return x < y }
	case opGreaterEqual:
		return func(x, y T) bool { return x >= y }
	case opLowerEqual:
		return func(x, y T) bool { return x <= y }
	case opEqual:
		return func(x, y T) bool { return x == y }
	case opNotEqual:
		return func(x, y T) bool { return x != y }
	default:
		panic("unknown comparison op")
	}
}

func compareKernel[T number](dst []bool, a, b []T, aShape, bShape, outShape tensor.Shape, f func(T, T) bool) {
	if aShape.Equal(bShape) {
		for i := range dst {
			dst[i] = f(a[i], b[i])
		}
		return
	}

	outStrides := outShape.ComputeStrides()
	aStrides := tensor.BroadcastStrides(aShape, outShape)
	bStrides := tensor.BroadcastStrides(bShape, outShape)

	for i := range dst {
		av := a[tensor.FlatIndex(i, outStrides, aStrides)]
		bv := b[tensor.FlatIndex(i, outStrides, bStrides)]
		dst[i] = f(av, bv)
	}
}
