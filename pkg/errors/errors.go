// Package errors provides structured error types for pixelforge.
//
// Every failure surfaced by the grid engine and the exporters carries a
// machine-readable [Code] so callers (the CLI, or an embedding UI) can tell
// a rejected dimension from a broken encoder without string matching.
//
// # Error Codes
//
//   - INVALID_*: input validation failures, rejected before any work starts
//   - OUT_OF_BOUNDS: a direct cell write outside the grid extent
//   - ENCODING_FAILURE: an image/archive encoder failed for one artifact
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidDimension, "size must be positive, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidDimension) {
//	    // reject request
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeEncodingFailure, origErr, "encode %s", name)
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category. A Code is itself an error
// so it can be the target of the standard errors.Is.
type Code string

func (c Code) Error() string { return string(c) }

const (
	ErrCodeInvalidDimension Code = "INVALID_DIMENSION"
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidPath      Code = "INVALID_PATH"
	ErrCodeOutOfBounds      Code = "OUT_OF_BOUNDS"
	ErrCodeFileNotFound     Code = "FILE_NOT_FOUND"
	ErrCodeEncodingFailure  Code = "ENCODING_FAILURE"
	ErrCodeUnsupported      Code = "UNSUPPORTED"
	ErrCodeInternal         Code = "INTERNAL_ERROR"
)

// Error pairs a Code with a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches a Code target against this error's own code only; the
// standard library walks the cause chain.
func (e *Error) Is(target error) bool {
	c, ok := target.(Code)
	return ok && e.Code == c
}

func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether any error in err's tree carries code. Both wrapped
// causes and the members of a [Join] are searched, so a favicon bundle
// failure reports the ENCODING_FAILURE of each entry as well as the
// INVALID_DIMENSION underneath it.
func Is(err error, code Code) bool {
	return errors.Is(err, code)
}

// GetCode returns the code of the outermost *Error in err, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of the outermost *Error without its code
// prefix, or err.Error() for foreign errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Join combines errors; nil entries are dropped and a nil result means
// no error occurred.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
