package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ConfigLoadFailed indicates the configuration or template could not be loaded.
	ConfigLoadFailed AppErrorType = iota
	// ResolutionFailed indicates a directive referenced a missing file.
	ResolutionFailed
	// ScanFailed indicates a source root or file could not be read.
	ScanFailed
	// EmbedFailed indicates a referenced file could not be embedded.
	EmbedFailed
	// WriteFailed indicates the output artifact could not be written.
	WriteFailed
	// CleanTargetMissing indicates clean found no artifact to remove.
	CleanTargetMissing
	// CleanFailed indicates the artifact could not be removed.
	CleanFailed
	// InitTargetExists indicates init found an existing configuration file.
	InitTargetExists
	// InitFailed indicates the configuration file could not be written.
	InitFailed
)

// String returns the string representation of the error type.
func (t AppErrorType) String() string {
	switch t {
	case ConfigLoadFailed:
		return "ConfigLoadFailed"
	case ResolutionFailed:
		return "ResolutionFailed"
	case ScanFailed:
		return "ScanFailed"
	case EmbedFailed:
		return "EmbedFailed"
	case WriteFailed:
		return "WriteFailed"
	case CleanTargetMissing:
		return "CleanTargetMissing"
	case CleanFailed:
		return "CleanFailed"
	case InitTargetExists:
		return "InitTargetExists"
	case InitFailed:
		return "InitFailed"
	default:
		return "Unknown"
	}
}

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Path is the file the error concerns, if any.
	Path string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// newPathError creates an AppError that names a file.
func newPathError(errType AppErrorType, path, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}
