package navstack

import (
	"errors"
	"fmt"
)

// Sentinel errors for invalid arguments.
var (
	// ErrEmptyRoutes indicates a navigator was given no routes to show.
	ErrEmptyRoutes = errors.New("navstack: routes cannot be empty")

	// ErrInvalidConfig indicates a Config field is out of range.
	ErrInvalidConfig = errors.New("navstack: invalid config")
)

// InfrastructureError represents a failure of the host system backing a
// surface (renderer, input device). The navigation core itself never
// produces one.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "create_layer", "open_touch")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("navstack: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("navstack: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

func invalidConfig(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
