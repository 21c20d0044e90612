package chaos

import (
	"errors"
	"fmt"
)

// Error categories. Specific failures wrap one of these so callers can match
// either the category or the exact cause with errors.Is.
var (
	// ErrConfiguration indicates an invalid family, method, step size,
	// iteration count, or parameter list.
	ErrConfiguration = errors.New("chaos: invalid configuration")

	// ErrState indicates an operation on data that is not there or not
	// addressable, such as projecting onto an unknown plane.
	ErrState = errors.New("chaos: invalid state")

	// ErrNoTrajectory indicates a projection was requested before any
	// trajectory was computed or supplied.
	ErrNoTrajectory = fmt.Errorf("%w: no trajectory to project", ErrState)
)
