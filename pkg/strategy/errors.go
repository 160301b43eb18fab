package strategy

import (
	"errors"
	"fmt"
)

// ErrUnknownBehaviorKind is returned when no factory is registered for a key.
var ErrUnknownBehaviorKind = errors.New("strategy: unknown behavior kind")

// UnknownBehaviorKindError carries the key that failed to resolve.
type UnknownBehaviorKindError struct {
	Key string
}

func (e *UnknownBehaviorKindError) Error() string {
	return fmt.Sprintf("strategy: unknown behavior kind %q", e.Key)
}

// Is reports ErrUnknownBehaviorKind as a match so callers can use errors.Is.
func (e *UnknownBehaviorKindError) Is(target error) bool {
	return target == ErrUnknownBehaviorKind
}

// IsUnknownBehaviorKindError reports whether err is or wraps an UnknownBehaviorKindError.
func IsUnknownBehaviorKindError(err error) bool {
	var e *UnknownBehaviorKindError
	return errors.As(err, &e)
}
