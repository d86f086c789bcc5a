package cpu

import (
	"fmt"

	"github.com/tensorext/tensorext/internal/tensor"
)

// Where selects elements from x or y based on condition.
//
// For each element:
//   - If condition is true, select from x
//   - If condition is false, select from y
//
// Condition, x and y are broadcast to a common shape. The selection is
// dtype-agnostic: elements are copied byte-wise, so any dtype works.
func (cpu *CPUBackend) Where(condition, x, y *tensor.RawTensor) *tensor.RawTensor {
	if condition.DType() != tensor.Bool {
		panic(fmt.Sprintf("where: condition must be bool, got %s", condition.DType()))
	}
	if x.DType() != y.DType() {
		panic(fmt.Sprintf("where: x and y must have same dtype, got %s and %s", x.DType(), y.DType()))
	}

	outShape1, _, err := tensor.BroadcastShapes(condition.Shape(), x.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: failed to broadcast condition and x: %v", err))
	}
	outShape, _, err := tensor.BroadcastShapes(outShape1, y.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: failed to broadcast with y: %v", err))
	}

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("where: failed to create result tensor: %v", err))
	}

	outStrides := outShape.ComputeStrides()
	condStrides := tensor.BroadcastStrides(condition.Shape(), outShape)
	xStrides := tensor.BroadcastStrides(x.Shape(), outShape)
	yStrides := tensor.BroadcastStrides(y.Shape(), outShape)

	cond := condition.AsBool()
	xData := x.Data()
	yData := y.Data()
	dst := result.Data()
	elemSize := x.DType().Size()

	for i := 0; i < result.NumElements(); i++ {
		if cond[tensor.FlatIndex(i, outStrides, condStrides)] {
			srcIdx := tensor.FlatIndex(i, outStrides, xStrides)
			copy(dst[i*elemSize:(i+1)*elemSize], xData[srcIdx*elemSize:(srcIdx+1)*elemSize])
		} else {
			srcIdx := tensor.FlatIndex(i, outStrides, yStrides)
			copy(dst[i*elemSize:(i+1)*elemSize], yData[srcIdx*elemSize:(srcIdx+1)*elemSize])
		}
	}

	return result
}
