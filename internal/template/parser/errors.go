package parser

import "fmt"

// ParseErrorType represents the type of parsing error.
type ParseErrorType int

const (
	// ReferenceNotFound indicates a directive references a file that does not exist.
	ReferenceNotFound ParseErrorType = iota
	// ReferenceNotFile indicates a directive references a directory or other non-regular file.
	ReferenceNotFile
)

// String returns the string representation of the error type.
func (t ParseErrorType) String() string {
	switch t {
	case ReferenceNotFound:
		return "ReferenceNotFound"
	case ReferenceNotFile:
		return "ReferenceNotFile"
	default:
		return "Unknown"
	}
}

// ParseError represents a directive error with source context.
type ParseError struct {
	// Type is the error type.
	Type ParseErrorType
	// Message is the error message.
	Message string
	// File is the source file containing the directive.
	File string
	// Line is the line number of the directive (1-indexed, 0 if unknown).
	Line int
	// Directive is the call name of the offending directive.
	Directive string
	// Path is the resolved path the directive referenced.
	Path string
	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s (directive: %s)", e.File, e.Line, e.Message, e.Directive)
	}
	if e.File != "" {
		return fmt.Sprintf("%s: %s (directive: %s)", e.File, e.Message, e.Directive)
	}
	if e.Directive != "" {
		return fmt.Sprintf("%s (directive: %s)", e.Message, e.Directive)
	}
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// newReferenceError creates a ParseError for a directive whose target cannot be embedded.
func newReferenceError(typ ParseErrorType, file string, line int, directive, path string, cause error) *ParseError {
	message := "call references non-existent file " + path
	if typ == ReferenceNotFile {
		message = "call references a path that is not a regular file " + path
	}
	return &ParseError{
		Type:      typ,
		Message:   message,
		File:      file,
		Line:      line,
		Directive: directive,
		Path:      path,
		Cause:     cause,
	}
}
