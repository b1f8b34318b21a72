// Package errors provides error types for NotiHub
package errors

import (
	stderrors "errors"
	"fmt"
)

// Error represents a NotiHub error with structured information
type Error struct {
	// Core error information
	Code     ErrorCode `json:"code"`
	Message  string    `json:"message"`
	Provider string    `json:"provider,omitempty"`
	Op       string    `json:"op,omitempty"`
	Target   string    `json:"target,omitempty"`

	// Cause is the original provider error. It stays reachable through
	// errors.Is and errors.As and is never swallowed.
	Cause error `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	switch {
	case e.Provider != "" && e.Op != "":
		return fmt.Sprintf("%s: %s (provider: %s, op: %s)", e.Code, e.Message, e.Provider, e.Op)
	case e.Provider != "":
		return fmt.Sprintf("%s: %s (provider: %s)", e.Code, e.Message, e.Provider)
	case e.Op != "":
		return fmt.Sprintf("%s: %s (op: %s)", e.Code, e.Message, e.Op)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// Unwrap returns the underlying cause error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error by code
func (e *Error) Is(target error) bool {
	if targetErr, ok := target.(*Error); ok {
		return e.Code == targetErr.Code
	}
	return false
}

// WithCause adds a cause error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithProvider sets the provider name
func (e *Error) WithProvider(provider string) *Error {
	e.Provider = provider
	return e
}

// WithOp sets the operation that produced the error
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// WithTarget sets the delivery target. Targets are kept out of the error
// string because phone numbers and addresses do not belong in logs.
func (e *Error) WithTarget(target string) *Error {
	e.Target = target
	return e
}

// Constructor functions

// New creates a new Error
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new Error with formatted message
func Newf(code ErrorCode, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with an Error
func Wrap(err error, code ErrorCode, message string) *Error {
	return New(code, message).WithCause(err)
}

// Wrapf wraps an existing error with an Error and formatted message
func Wrapf(err error, code ErrorCode, format string, args ...any) *Error {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// Error classification functions

// CodeOf extracts the error code from an error chain. It returns an empty
// code when no NotiHub error is present in the chain.
func CodeOf(err error) ErrorCode {
	var hubErr *Error
	if stderrors.As(err, &hubErr) {
		return hubErr.Code
	}
	return ""
}

// IsInvalidArgument checks if error is a validation error
func IsInvalidArgument(err error) bool {
	return CodeOf(err) == ErrInvalidArgument
}

// IsMissingCredentials checks if error is a missing-credentials error
func IsMissingCredentials(err error) bool {
	return CodeOf(err) == ErrMissingCredentials
}

// IsUnsupportedOperation checks if error is an unsupported-channel error
func IsUnsupportedOperation(err error) bool {
	return CodeOf(err) == ErrUnsupportedOperation
}

// IsServiceError checks if error is a provider failure
func IsServiceError(err error) bool {
	return CodeOf(err) == ErrServiceError
}

// IsNotFound checks if error is a provider not-found error
func IsNotFound(err error) bool {
	return CodeOf(err) == ErrNotFound
}

// IsCallerFault checks if error stems from the caller rather than the provider
func IsCallerFault(err error) bool {
	return callerFault(CodeOf(err))
}

// Error extraction functions

// GetErrorMessage extracts the error message from an error
func GetErrorMessage(err error) string {
	var hubErr *Error
	if stderrors.As(err, &hubErr) {
		return hubErr.Message
	}
	return err.Error()
}

// GetErrorProvider extracts the provider name from an error
func GetErrorProvider(err error) string {
	var hubErr *Error
	if stderrors.As(err, &hubErr) {
		return hubErr.Provider
	}
	return ""
}
