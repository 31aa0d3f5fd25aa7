package frame

import "errors"

// Domain errors for the equilibrium solver.
var (
	// ErrInvalidGeometry indicates a geometry the equilibrium equations
	// cannot be solved for (zero-length B-C span).
	ErrInvalidGeometry = errors.New("frame: invalid geometry")

	// ErrNotFinite indicates a NaN or infinite input parameter.
	ErrNotFinite = errors.New("frame: parameter is not finite")
)
