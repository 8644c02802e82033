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
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Grid errors
	ErrSubsectorInvalid ErrorCode = "SUBSECTOR_INVALID"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Names file errors
	ErrNamesRead  ErrorCode = "NAMES_READ"
	ErrNamesParse ErrorCode = "NAMES_PARSE"

	// Output errors
	ErrFormatWrite ErrorCode = "FORMAT_WRITE"
	ErrFileCreate  ErrorCode = "FILE_CREATE"
	ErrFileWrite   ErrorCode = "FILE_WRITE"
	ErrDirCreate   ErrorCode = "DIR_CREATE"
)

// GensecError represents a structured error with code and details
type GensecError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GensecError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GensecError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a GensecError with the same code
func (e *GensecError) Is(target error) bool {
	var targetErr *GensecError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GensecError with the given code and message
func New(code ErrorCode, message string) *GensecError {
	return &GensecError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GensecError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GensecError {
	return &GensecError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GensecError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &GensecError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message. A nil err yields nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &GensecError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GensecError) WithDetail(key string, value interface{}) *GensecError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var gerr *GensecError
	if errors.As(err, &gerr) {
		return gerr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GensecError
func GetErrorCode(err error) ErrorCode {
	var gerr *GensecError
	if errors.As(err, &gerr) {
		return gerr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GensecError
func GetErrorDetails(err error) map[string]interface{} {
	var gerr *GensecError
	if errors.As(err, &gerr) {
		return gerr.Details
	}
	return nil
}
