package equalheight

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAnimationSpeed is returned when an animation speed is not a
	// non-negative number with an optional "s" or "ms" suffix.
	ErrInvalidAnimationSpeed = errors.New("invalid animation speed")

	// ErrOutsideScope is returned when a holder or member is constructed
	// without an enclosing scope.
	ErrOutsideScope = errors.New("equalheight: used outside of a scope")

	// ErrEmptyName is returned when a member has no group name.
	ErrEmptyName = errors.New("equalheight: member name is required")

	// ErrNilNode is returned when a member has nothing to measure.
	ErrNilNode = errors.New("equalheight: member node is required")
)

// ConfigError reports a scope option that could not be applied.
type ConfigError struct {
	Option string
	Value  string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("equalheight: option %s=%q: %v", e.Option, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
