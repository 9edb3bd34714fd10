package termination

import (
	"errors"
	"fmt"
)

// Domain errors for termination conditions.
var (
	// ErrAlreadyTerminated indicates Evaluate was called on a condition
	// that has already been met. Recoverable only via Reset.
	ErrAlreadyTerminated = errors.New("termination condition has already been reached")

	// ErrInvalidConfiguration indicates a condition was constructed with
	// invalid parameters.
	ErrInvalidConfiguration = errors.New("invalid termination condition configuration")

	// ErrNotSerializable indicates a condition has no serializable
	// configuration.
	ErrNotSerializable = errors.New("termination condition is not serializable")
)

// alreadyTerminated wraps ErrAlreadyTerminated with the condition name.
func alreadyTerminated(name string) error {
	return fmt.Errorf("%s: %w", name, ErrAlreadyTerminated)
}
