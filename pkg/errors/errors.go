package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors - fatal before any filesystem work
	ErrNoHome     ErrorCode = "NO_HOME"
	ErrNoPackages ErrorCode = "NO_PACKAGES"
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// Package errors
	ErrPackageNotFound ErrorCode = "PACKAGE_NOT_FOUND"
	ErrPackageAccess   ErrorCode = "PACKAGE_ACCESS"

	// Redirect errors - abort the current package only
	ErrRedirectUnresolved ErrorCode = "REDIRECT_UNRESOLVED"

	// Merge errors
	ErrConflict      ErrorCode = "DEST_CONFLICT"
	ErrIO            ErrorCode = "IO_FAILURE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrSymlinkRemove ErrorCode = "SYMLINK_REMOVE"
)

// XdotError represents a structured error with code and details
type XdotError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *XdotError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *XdotError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *XdotError) Is(target error) bool {
	var targetErr *XdotError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new XdotError with the given code and message
func New(code ErrorCode, message string) *XdotError {
	return &XdotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new XdotError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *XdotError {
	return &XdotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an XdotError
func Wrap(err error, code ErrorCode, message string) *XdotError {
	if err == nil {
		return nil
	}
	return &XdotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *XdotError {
	if err == nil {
		return nil
	}
	return &XdotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *XdotError) WithDetail(key string, value interface{}) *XdotError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var xdotErr *XdotError
	if errors.As(err, &xdotErr) {
		return xdotErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an XdotError
func GetErrorCode(err error) ErrorCode {
	var xdotErr *XdotError
	if errors.As(err, &xdotErr) {
		return xdotErr.Code
	}
	return ErrUnknown
}
