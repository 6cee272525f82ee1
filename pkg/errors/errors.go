// Package errors provides structured error types for the tilings module.
//
// Every contract violation in the core packages is reported as an [*Error]
// carrying a machine-readable [Code], so callers can branch on the kind of
// failure without matching message strings.
//
// # Error Codes
//
// Codes follow a hierarchical naming convention:
//   - INVALID_*: malformed input (patterns, directions, strategies, tilings)
//   - NOT_FOUND / FILE_NOT_FOUND: missing resources
//   - INTERNAL_*: precondition violations and other programming errors
//
// # Usage
//
//	gp, err := gridded.New([]int{0, 0}, cells)
//	if errors.Is(err, errors.ErrCodeInvalidPattern) {
//	    // reject the input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidTiling, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidPattern   Code = "INVALID_PATTERN"
	ErrCodeLengthMismatch   Code = "LENGTH_MISMATCH"
	ErrCodeInvalidDirection Code = "INVALID_DIRECTION"
	ErrCodeInvalidStrategy  Code = "INVALID_STRATEGY"
	ErrCodeInvalidTiling    Code = "INVALID_TILING"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	// Geometry errors
	ErrCodeSpansAxis Code = "OBSTRUCTION_SPANS_AXIS"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Algorithm errors
	ErrCodeDiverged Code = "SEPARATION_DIVERGED"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Precondition returns an INTERNAL_ERROR for a violated call-order contract,
// such as querying a graph before it has been reduced.
func Precondition(format string, args ...any) *Error {
	return New(ErrCodeInternal, "precondition violated: "+format, args...)
}
