package computer

import (
	"errors"
	"fmt"
)

// ErrMissingComponent indicates a required component was not configured.
var ErrMissingComponent = errors.New("computer: missing required component")

// ValidationError names the component that failed validation.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("computer: missing required component %q", e.Field)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrMissingComponent
}
