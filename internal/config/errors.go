package config

import "fmt"

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType int

const (
	// ConfigNotFound indicates the configuration file was not found.
	ConfigNotFound ConfigErrorType = iota
	// ConfigInvalid indicates the configuration file could not be read or parsed.
	ConfigInvalid
	// ConfigValidationFailed indicates a parsed value is not acceptable.
	ConfigValidationFailed
)

// String returns the string representation of the error type.
func (t ConfigErrorType) String() string {
	switch t {
	case ConfigNotFound:
		return "NotFound"
	case ConfigInvalid:
		return "Invalid"
	case ConfigValidationFailed:
		return "ValidationFailed"
	default:
		return "Unknown"
	}
}

// ConfigError represents a configuration-related error.
type ConfigError struct {
	// Type is the error type.
	Type ConfigErrorType
	// Message is the error message.
	Message string
	// File is the configuration file path.
	File string
	// Field is the configuration key that caused the error.
	Field string
	// Line is the 1-based line of a syntax error, or 0 when unknown.
	Line int
	// Column is the 1-based column of a syntax error, or 0 when unknown.
	Column int
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	location := e.File
	if e.Line > 0 {
		location = fmt.Sprintf("%s:%d:%d", e.File, e.Line, e.Column)
	}
	if e.Field != "" {
		location = fmt.Sprintf("%s [field: %s]", location, e.Field)
	}
	if e.Cause != nil {
		return fmt.Sprintf("configuration error in %s: %s: %v", location, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error in %s: %s", location, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a new ConfigError.
func NewConfigError(typ ConfigErrorType, file, message string) *ConfigError {
	return &ConfigError{
		Type:    typ,
		File:    file,
		Message: message,
	}
}

// NewConfigErrorWithField creates a new ConfigError with a field name.
func NewConfigErrorWithField(typ ConfigErrorType, file, field, message string) *ConfigError {
	return &ConfigError{
		Type:    typ,
		File:    file,
		Field:   field,
		Message: message,
	}
}

// NewConfigErrorWithCause creates a new ConfigError with a cause.
func NewConfigErrorWithCause(typ ConfigErrorType, file, message string, cause error) *ConfigError {
	return &ConfigError{
		Type:    typ,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}
