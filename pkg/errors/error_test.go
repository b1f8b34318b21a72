package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name: "basic error",
			err: &Error{
				Code:    ErrInvalidArgument,
				Message: "phone number is required",
			},
			expected: "INVALID_ARGUMENT: phone number is required",
		},
		{
			name: "error with provider",
			err: &Error{
				Code:     ErrServiceError,
				Message:  "publish failed",
				Provider: "aws",
			},
			expected: "SERVICE_ERROR: publish failed (provider: aws)",
		},
		{
			name: "error with provider and op",
			err: &Error{
				Code:     ErrServiceError,
				Message:  "publish failed",
				Provider: "aws",
				Op:       "SendSMSNotification",
			},
			expected: "SERVICE_ERROR: publish failed (provider: aws, op: SendSMSNotification)",
		},
		{
			name: "error with op only",
			err: &Error{
				Code:    ErrInvalidArgument,
				Message: "recipients are required",
				Op:      "SendEmailNotification",
			},
			expected: "INVALID_ARGUMENT: recipients are required (op: SendEmailNotification)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_TargetNotInMessage(t *testing.T) {
	err := New(ErrServiceError, "publish failed").WithTarget("+15550006666")

	if got := err.Error(); got != "SERVICE_ERROR: publish failed" {
		t.Errorf("Error.Error() = %v, target must not leak into the message", got)
	}
	if err.Target != "+15550006666" {
		t.Errorf("Error.Target = %v, want +15550006666", err.Target)
	}
}

func TestNew(t *testing.T) {
	err := New(ErrInvalidArgument, "test message")

	if err.Code != ErrInvalidArgument {
		t.Errorf("New() code = %v, want %v", err.Code, ErrInvalidArgument)
	}
	if err.Message != "test message" {
		t.Errorf("New() message = %v, want %v", err.Message, "test message")
	}
}

func TestNewf(t *testing.T) {
	err := Newf(ErrUnsupportedOperation, "%s does not support %s", "twilio", "email")

	expected := "twilio does not support email"
	if err.Message != expected {
		t.Errorf("Newf() message = %v, want %v", err.Message, expected)
	}
}

func TestWrap(t *testing.T) {
	originalErr := errors.New("original error")
	err := Wrap(originalErr, ErrServiceError, "wrapper message")

	if err.Code != ErrServiceError {
		t.Errorf("Wrap() code = %v, want %v", err.Code, ErrServiceError)
	}
	if err.Cause != originalErr {
		t.Errorf("Wrap() cause = %v, want %v", err.Cause, originalErr)
	}
}

func TestWrapf(t *testing.T) {
	originalErr := errors.New("original")
	err := Wrapf(originalErr, ErrServiceError, "wrapped %s", "error")

	if err.Message != "wrapped error" {
		t.Errorf("Wrapf() message = %v, want 'wrapped error'", err.Message)
	}
	if err.Cause != originalErr {
		t.Errorf("Wrapf() cause = %v, want %v", err.Cause, originalErr)
	}
}

func TestError_Unwrap(t *testing.T) {
	originalErr := errors.New("original")
	err := Wrap(originalErr, ErrServiceError, "wrapped")

	if unwrapped := err.Unwrap(); unwrapped != originalErr {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, originalErr)
	}
	if !errors.Is(err, originalErr) {
		t.Error("errors.Is() should reach the cause through the wrapper")
	}
}

func TestError_Is(t *testing.T) {
	err1 := New(ErrInvalidArgument, "test1")
	err2 := New(ErrInvalidArgument, "test2")
	err3 := New(ErrServiceError, "test3")

	if !err1.Is(err2) {
		t.Error("Is() should return true for same error code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different error code")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorCode
	}{
		{
			name:     "hub error",
			err:      New(ErrInvalidArgument, "test"),
			expected: ErrInvalidArgument,
		},
		{
			name:     "wrapped hub error",
			err:      Wrap(errors.New("base"), ErrServiceError, "wrapped"),
			expected: ErrServiceError,
		},
		{
			name:     "hub error wrapped by fmt",
			err:      fmt.Errorf("outer: %w", New(ErrNotFound, "missing")),
			expected: ErrNotFound,
		},
		{
			name:     "standard error",
			err:      errors.New("test"),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.expected {
				t.Errorf("CodeOf() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		predicate func(error) bool
		expected  bool
	}{
		{"invalid argument", New(ErrInvalidArgument, "t"), IsInvalidArgument, true},
		{"invalid argument mismatch", New(ErrServiceError, "t"), IsInvalidArgument, false},
		{"unsupported operation", New(ErrUnsupportedOperation, "t"), IsUnsupportedOperation, true},
		{"service error", New(ErrServiceError, "t"), IsServiceError, true},
		{"not found", New(ErrNotFound, "t"), IsNotFound, true},
		{"missing credentials", New(ErrMissingCredentials, "t"), IsMissingCredentials, true},
		{"standard error", errors.New("t"), IsServiceError, false},
		{"nil error", nil, IsServiceError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.predicate(tt.err); got != tt.expected {
				t.Errorf("predicate = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsCallerFault(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"invalid argument", New(ErrInvalidArgument, "t"), true},
		{"missing credentials", New(ErrMissingCredentials, "t"), true},
		{"unsupported operation", New(ErrUnsupportedOperation, "t"), true},
		{"service error", New(ErrServiceError, "t"), false},
		{"not found", New(ErrNotFound, "t"), false},
		{"standard error", errors.New("t"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCallerFault(tt.err); got != tt.expected {
				t.Errorf("IsCallerFault() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Builders(t *testing.T) {
	err := New(ErrServiceError, "send failed").
		WithProvider("aws").
		WithOp("SendEmailNotification").
		WithTarget("user@example.com")

	if err.Provider != "aws" {
		t.Errorf("WithProvider() provider = %v, want 'aws'", err.Provider)
	}
	if err.Op != "SendEmailNotification" {
		t.Errorf("WithOp() op = %v, want 'SendEmailNotification'", err.Op)
	}
	if err.Target != "user@example.com" {
		t.Errorf("WithTarget() target = %v, want 'user@example.com'", err.Target)
	}
}

func TestGetErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "hub error",
			err:      New(ErrInvalidArgument, "validation error"),
			expected: "validation error",
		},
		{
			name:     "standard error",
			err:      errors.New("standard error"),
			expected: "standard error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetErrorMessage(tt.err); got != tt.expected {
				t.Errorf("GetErrorMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorProvider(t *testing.T) {
	withProvider := New(ErrServiceError, "failed").WithProvider("twilio")
	if got := GetErrorProvider(withProvider); got != "twilio" {
		t.Errorf("GetErrorProvider() = %v, want 'twilio'", got)
	}
	if got := GetErrorProvider(errors.New("plain")); got != "" {
		t.Errorf("GetErrorProvider() = %v, want ''", got)
	}
}
