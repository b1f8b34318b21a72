// Package errors provides error codes for NotiHub
package errors

// ErrorCode represents a NotiHub error code
type ErrorCode string

// Validation Error Codes
//
// These are raised locally, before any provider request goes out.
const (
	// ErrInvalidArgument indicates a request that fails validation
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// ErrMissingCredentials indicates missing authentication credentials
	ErrMissingCredentials ErrorCode = "MISSING_CREDENTIALS"
)

// Capability Error Codes
const (
	// ErrUnsupportedOperation indicates a channel the notifier does not implement
	ErrUnsupportedOperation ErrorCode = "UNSUPPORTED_OPERATION"
)

// Provider Error Codes
//
// These wrap failures reported by the provider SDK after a request was made.
const (
	// ErrServiceError indicates a provider call that failed
	ErrServiceError ErrorCode = "SERVICE_ERROR"

	// ErrNotFound indicates a provider-side resource that does not exist
	ErrNotFound ErrorCode = "NOT_FOUND"
)

// callerFault reports whether the code describes a caller mistake rather
// than a provider failure. Caller mistakes never warrant a retry.
func callerFault(code ErrorCode) bool {
	switch code {
	case ErrInvalidArgument, ErrMissingCredentials, ErrUnsupportedOperation:
		return true
	}
	return false
}
