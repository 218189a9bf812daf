// Package errors provides structured error types for deptree.
//
// Every failure in a run maps to one of a small set of codes so the CLI can
// report a readable message and pick an exit status:
//   - CONFIGURATION_ERROR: missing API key, conflicting or empty input, bad config file
//   - REQUEST_ERROR: transport-level failure talking to the analysis service
//   - API_ERROR: the service answered with a non-success status
//   - RESPONSE_FORMAT_ERROR: the response decoded but does not have the expected shape
//   - ENCODING_ERROR: a token cannot be represented in the DOT output
//   - RENDER_ERROR: the layout engine rejected the DOT document
//
// # Usage
//
//	err := errors.New(errors.ErrCodeConfiguration, "no API key provided")
//	if errors.Is(err, errors.ErrCodeConfiguration) {
//	    // Handle configuration error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRequest, origErr, "POST %s", url)
package errors

import (
	"context"
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the failure categories of a run.
const (
	ErrCodeConfiguration  Code = "CONFIGURATION_ERROR"
	ErrCodeRequest        Code = "REQUEST_ERROR"
	ErrCodeAPI            Code = "API_ERROR"
	ErrCodeResponseFormat Code = "RESPONSE_FORMAT_ERROR"
	ErrCodeEncoding       Code = "ENCODING_ERROR"
	ErrCodeRender         Code = "RENDER_ERROR"
	ErrCodeInternal       Code = "INTERNAL_ERROR"
)

// Exit statuses returned by [ExitCode].
const (
	ExitFailure       = 1
	ExitConfiguration = 2
	ExitInterrupted   = 130 // shell convention for SIGINT
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
// For *Error types, returns the message without the code prefix, followed by
// the API message when the cause is an [APIError].
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	var apiErr *APIError
	if errors.As(e.Cause, &apiErr) && apiErr.Message != "" {
		return fmt.Sprintf("%s: %s", e.Message, apiErr.Message)
	}
	if e.Cause != nil && e.Code != ErrCodeAPI {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// ExitCode maps an error to a process exit status.
// Configuration errors exit with 2 so scripts can tell them apart from
// failures that happened after the run started.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case Is(err, ErrCodeConfiguration):
		return ExitConfiguration
	default:
		return ExitFailure
	}
}

// APIError carries the details of a non-success response from the analysis
// service. It is wrapped as the Cause of an [ErrCodeAPI] error.
type APIError struct {
	Status  int    // HTTP status code
	Code    string // Service-specific error code, if the body carried one
	Message string // Message from the response body
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch {
	case e.Code != "" && e.Message != "":
		return fmt.Sprintf("status %d: %s: %s", e.Status, e.Code, e.Message)
	case e.Message != "":
		return fmt.Sprintf("status %d: %s", e.Status, e.Message)
	default:
		return fmt.Sprintf("status %d", e.Status)
	}
}
