package accel

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel every configuration validation failure
// matches via errors.Is.
var ErrInvalidConfig = errors.New("invalid acceleration config")

// ConfigError reports one invalid Config field.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid acceleration config: %s %s", e.Field, e.Message)
}

// Is reports ErrInvalidConfig as a match, so callers can classify the
// failure without keeping the concrete type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
