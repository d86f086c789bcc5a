// Package cpu exposes the pure Go reference backend.
package cpu

import (
	internalcpu "github.com/tensorext/tensorext/internal/backend/cpu"
	"github.com/tensorext/tensorext/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/tensorext/tensorext/backend/cpu"
//	    "github.com/tensorext/tensorext/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
func New() *Backend {
	return internalcpu.New()
}
