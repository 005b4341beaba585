package provider

import "fmt"

// ProviderErrorType represents the type of provider error.
type ProviderErrorType int

const (
	// ProviderNotFound indicates the root directory does not exist.
	ProviderNotFound ProviderErrorType = iota
	// ProviderListFailed indicates the directory walk failed.
	ProviderListFailed
	// ProviderInvalidPattern indicates an include or exclude glob is malformed.
	ProviderInvalidPattern
)

// String returns the string representation of the error type.
func (t ProviderErrorType) String() string {
	switch t {
	case ProviderNotFound:
		return "NotFound"
	case ProviderListFailed:
		return "ListFailed"
	case ProviderInvalidPattern:
		return "InvalidPattern"
	default:
		return "Unknown"
	}
}

// ProviderError represents a provider-specific error.
type ProviderError struct {
	// Type is the error type classification.
	Type ProviderErrorType
	// Message is the human-readable error message.
	Message string
	// Provider is the provider name (e.g., "local").
	Provider string
	// Path is the root or pattern that caused the error.
	Path string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s provider error [%s] for '%s': %s (caused by: %v)",
			e.Provider, e.Type.String(), e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s provider error [%s] for '%s': %s",
		e.Provider, e.Type.String(), e.Path, e.Message)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewProviderError creates a new ProviderError.
func NewProviderError(typ ProviderErrorType, provider, path, message string, cause error) *ProviderError {
	return &ProviderError{
		Type:     typ,
		Message:  message,
		Provider: provider,
		Path:     path,
		Cause:    cause,
	}
}

// NewNotFoundError creates a not found error.
func NewNotFoundError(provider, path string) *ProviderError {
	return NewProviderError(ProviderNotFound, provider, path, "directory not found", nil)
}

// NewListError creates a list failed error.
func NewListError(provider, path string, cause error) *ProviderError {
	return NewProviderError(ProviderListFailed, provider, path, "failed to list files", cause)
}

// NewInvalidPatternError creates an invalid pattern error.
func NewInvalidPatternError(provider, pattern string) *ProviderError {
	return NewProviderError(ProviderInvalidPattern, provider, pattern, "invalid glob pattern", nil)
}
