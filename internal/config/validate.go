package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidLogLevel    = errors.New("log_level must be 'debug', 'info', 'warn', or 'error'")
	ErrInvalidKillTimeout = errors.New("kill_timeout must be a positive duration")
	ErrInvalidMarker      = errors.New("marker must be a file name")
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidationError wraps a validation error with context.
type ValidationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks every set field. Unset fields are valid and take defaults.
func (c *GlobalConfig) Validate() error {
	if c == nil {
		return nil
	}
	if err := ValidateLogLevel(c.LogLevel); err != nil {
		return err
	}
	if err := ValidateKillTimeout(c.KillTimeout); err != nil {
		return err
	}
	return ValidateMarker(c.Marker)
}

// ValidateLogLevel validates a log level string. Empty is allowed.
func ValidateLogLevel(level string) error {
	if level == "" || validLogLevels[strings.ToLower(level)] {
		return nil
	}
	return &ValidationError{
		Field:   "log_level",
		Value:   level,
		Message: "unknown level",
		Err:     ErrInvalidLogLevel,
	}
}

// ValidateKillTimeout validates a kill timeout duration string. Empty is allowed.
func ValidateKillTimeout(timeout string) error {
	if timeout == "" {
		return nil
	}
	d, err := time.ParseDuration(timeout)
	if err != nil || d <= 0 {
		return &ValidationError{
			Field:   "kill_timeout",
			Value:   timeout,
			Message: "must be a positive Go duration such as \"10s\"",
			Err:     ErrInvalidKillTimeout,
		}
	}
	return nil
}

// ValidateMarker validates the marker executable name. Empty is allowed.
func ValidateMarker(marker string) error {
	if marker == "" {
		return nil
	}
	if strings.ContainsAny(marker, `/\`) {
		return &ValidationError{
			Field:   "marker",
			Value:   marker,
			Message: "must not contain path separators",
			Err:     ErrInvalidMarker,
		}
	}
	return nil
}
