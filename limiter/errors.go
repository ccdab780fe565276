package limiter

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates an invalid configuration.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError wraps a configuration problem with the offending field.
type ConfigError struct {
	Field string // Config field or environment variable
	Err   error  // Underlying error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("limiter config %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func wrapConfigError(field string, err error) error {
	return &ConfigError{Field: field, Err: err}
}
