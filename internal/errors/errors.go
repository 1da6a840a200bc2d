package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput   = errors.New("input is empty or contains only whitespace")
	ErrInvalidJSON  = errors.New("invalid JSON format")
	ErrMissingColon = errors.New("header must be in format key:value")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeIO       ErrorType = "io"
	ErrorTypeParse    ErrorType = "parse"
	ErrorTypeURL      ErrorType = "url"
	ErrorTypeHeader   ErrorType = "header"
	ErrorTypeNetwork  ErrorType = "network"
	ErrorTypeResponse ErrorType = "response"
	ErrorTypeUnknown  ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	// Check if target is also an *AppError and if the types match
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewIOError creates a new error for file, stdin, or stdout access failures
func NewIOError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeIO,
		Message: message,
		Err:     err,
	}
}

// NewParseError creates a new error for JSON text that is malformed under
// the active grammar
func NewParseError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: message,
		Err:     err,
	}
}

// NewURLError creates a new error for malformed request URLs
func NewURLError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeURL,
		Message: message,
		Err:     err,
	}
}

// NewHeaderError creates a new error for malformed header arguments
func NewHeaderError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeHeader,
		Message: message,
		Err:     err,
	}
}

// NewNetworkError creates a new error for transport-level failures
// (connection, timeout, TLS, DNS)
func NewNetworkError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeNetwork,
		Message: message,
		Err:     err,
	}
}

// NewResponseError creates a new error for response bodies that claimed to
// be JSON but failed to parse
func NewResponseError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeResponse,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeIO:
			return fmt.Sprintf("I/O error: %s", appErr.Message)
		case ErrorTypeParse:
			return fmt.Sprintf("JSON parsing error: %s", appErr.Message)
		case ErrorTypeURL:
			return fmt.Sprintf("Invalid URL: %s", appErr.Message)
		case ErrorTypeHeader:
			return fmt.Sprintf("Invalid header: %s", appErr.Message)
		case ErrorTypeNetwork:
			return fmt.Sprintf("Network error: %s", appErr.Message)
		case ErrorTypeResponse:
			return fmt.Sprintf("Response error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide valid JSON data."
	}
	if errors.Is(err, ErrInvalidJSON) {
		return "Error: The input contains invalid JSON. Please check your JSON syntax."
	}
	if errors.Is(err, ErrMissingColon) {
		return "Error: Headers must be supplied as key:value, e.g. -H \"Accept: application/json\"."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
