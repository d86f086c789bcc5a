package tensor

import "github.com/tensorext/tensorext/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// It is the narrow tensor-operation seam the extension ops are written
// against: elementwise arithmetic, batched matmul with broadcasting over
// leading dimensions, comparisons, boolean ops, axis reductions, masked
// selection, shape manipulation and dtype casting.
//
// Implementations:
//   - backend/cpu: pure Go reference implementation
//
// Example:
//
//	import (
//	    "github.com/tensorext/tensorext/tensor"
//	    "github.com/tensorext/tensorext/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y)  // Uses backend.Add under the hood
type Backend = tensor.Backend
