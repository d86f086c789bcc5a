package tensorext

import "github.com/pkg/errors"

// Error taxonomy for the extension operations. Every failure wraps one of
// these sentinels, so callers classify with errors.Is:
//
//	if errors.Is(err, tensorext.ErrShape) { ... }
//
// All errors are returned synchronously at the offending call; no operation
// retries or partially applies.
var (
	// ErrShape reports incompatible or insufficient tensor dimensions.
	ErrShape = errors.New("shape error")

	// ErrConfig reports mutually exclusive or out-of-range options.
	ErrConfig = errors.New("config error")

	// ErrType reports an element type unsuited to the requested
	// interpretation (e.g. logical negation of a floating tensor).
	ErrType = errors.New("type error")

	// ErrCast reports a scalar not representable in a target element type.
	ErrCast = errors.New("cast error")
)
