// Package notihub provides notification clients for delivering SMS,
// templated email and mobile push through cloud providers. The combined
// AWS notifier covers all three channels plus topic, device endpoint and
// email template management; the Twilio notifier covers SMS only.
//
// Basic usage:
//
//	hub, err := notihub.NewAWSNotifier(context.Background(),
//		notihub.WithAWSRegion("us-east-1"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	id, err := hub.SendSMSNotification(ctx, "+15551234567", "deploy finished", nil)
//
// Twilio for SMS only:
//
//	sms, err := notihub.NewTwilioNotifier(notihub.WithTwilioCredentialsFromEnv())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sid, err := sms.SendSMSNotification(ctx, "+15551234567", "deploy finished", nil)
package notihub

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"

	"github.com/kart-io/notihub/client"
	"github.com/kart-io/notihub/observability"
	"github.com/kart-io/notihub/pkg/errors"
	"github.com/kart-io/notihub/pkg/logger"
	"github.com/kart-io/notihub/pkg/notifier"
	"github.com/kart-io/notihub/pkg/providers/aws"
	"github.com/kart-io/notihub/pkg/providers/twilio"
)

// ================================
// Core type aliases
// ================================

type (
	// Notifier is the capability contract every provider implements
	Notifier = notifier.Notifier

	// EmailMessage carries a templated email send
	EmailMessage = notifier.EmailMessage

	// Attributes is the provider-specific parameter bag
	Attributes = notifier.Attributes

	// Result is the structured response of lifecycle operations
	Result = notifier.Result

	// MockNotifier records sends for tests
	MockNotifier = notifier.Mock

	// AWSNotifier is the combined AWS notifier
	AWSNotifier = aws.Notifier

	// AWSConfig holds the AWS notifier settings
	AWSConfig = aws.Config

	// AWSOption configures the AWS notifier
	AWSOption = aws.Option

	// PushCampaign describes a Pinpoint campaign send
	PushCampaign = aws.PushCampaign

	// TwilioNotifier is the SMS-only Twilio notifier
	TwilioNotifier = twilio.Notifier

	// TwilioConfig holds the Twilio notifier settings
	TwilioConfig = twilio.Config

	// TwilioOption configures the Twilio notifier
	TwilioOption = twilio.Option

	// Error is the rich error type returned by every operation
	Error = errors.Error

	// ErrorCode classifies notifier failures
	ErrorCode = errors.ErrorCode

	// Logger is the logging interface
	Logger = logger.Logger

	// LogLevel defines log levels
	LogLevel = logger.LogLevel

	// TelemetryProvider exports traces and metrics
	TelemetryProvider = observability.TelemetryProvider

	// TelemetryConfig controls telemetry export
	TelemetryConfig = observability.Config
)

// Constants for notification channels
const (
	ChannelSMS   = notifier.ChannelSMS
	ChannelEmail = notifier.ChannelEmail
	ChannelPush  = notifier.ChannelPush
)

// Constants for error codes
const (
	ErrInvalidArgument      = errors.ErrInvalidArgument
	ErrMissingCredentials   = errors.ErrMissingCredentials
	ErrUnsupportedOperation = errors.ErrUnsupportedOperation
	ErrServiceError         = errors.ErrServiceError
	ErrNotFound             = errors.ErrNotFound
)

// Constants for log levels
const (
	LogLevelSilent = logger.Silent
	LogLevelError  = logger.Error
	LogLevelWarn   = logger.Warn
	LogLevelInfo   = logger.Info
	LogLevelDebug  = logger.Debug
)

// ================================
// Main constructor functions
// ================================

// NewAWSNotifier creates the combined AWS notifier. With no credential
// options the SDK default chain resolves credentials.
func NewAWSNotifier(ctx context.Context, opts ...AWSOption) (Notifier, error) {
	return client.NewAWSNotifier(ctx, opts...)
}

// NewTwilioNotifier creates the SMS-only Twilio notifier.
func NewTwilioNotifier(opts ...TwilioOption) (Notifier, error) {
	return client.NewTwilioNotifier(opts...)
}

// NewMockNotifier creates a recording notifier for tests.
func NewMockNotifier(name string) *MockNotifier {
	return notifier.NewMock(name)
}

// ================================
// AWS configuration functions
// ================================

// WithAWSCredentials sets an explicit AWS credential pair
func WithAWSCredentials(accessKeyID, secretAccessKey string) AWSOption {
	return aws.WithCredentials(accessKeyID, secretAccessKey)
}

// WithAWSSessionToken sets the session token for temporary credentials
func WithAWSSessionToken(token string) AWSOption {
	return aws.WithSessionToken(token)
}

// WithAWSRegion sets the AWS region
func WithAWSRegion(region string) AWSOption {
	return aws.WithRegion(region)
}

// WithAWSConfig replaces the whole AWS configuration
func WithAWSConfig(cfg AWSConfig) AWSOption {
	return aws.WithConfig(cfg)
}

// WithAWSLogger sets the logger of the AWS notifier
func WithAWSLogger(log Logger) AWSOption {
	return aws.WithLogger(log)
}

// WithAWSTelemetry sets the telemetry provider of the AWS notifier
func WithAWSTelemetry(tp *TelemetryProvider) AWSOption {
	return aws.WithTelemetry(tp)
}

// WithAWSHTTPClient overrides the HTTP client of the AWS SDK clients
func WithAWSHTTPClient(client awssdk.HTTPClient) AWSOption {
	return aws.WithHTTPClient(client)
}

// ================================
// Twilio configuration functions
// ================================

// WithTwilioCredentials sets the Twilio account SID and auth token
func WithTwilioCredentials(accountSID, authToken string) TwilioOption {
	return twilio.WithCredentials(accountSID, authToken)
}

// WithTwilioPhoneNumber sets the default Twilio sender number
func WithTwilioPhoneNumber(phoneNumber string) TwilioOption {
	return twilio.WithPhoneNumber(phoneNumber)
}

// WithTwilioCredentialsFromEnv reads the Twilio settings from
// TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_PHONE_NUMBER
func WithTwilioCredentialsFromEnv() TwilioOption {
	return twilio.WithCredentialsFromEnv()
}

// WithTwilioConfig replaces the whole Twilio configuration
func WithTwilioConfig(cfg TwilioConfig) TwilioOption {
	return twilio.WithConfig(cfg)
}

// WithTwilioLogger sets the logger of the Twilio notifier
func WithTwilioLogger(log Logger) TwilioOption {
	return twilio.WithLogger(log)
}

// WithTwilioTelemetry sets the telemetry provider of the Twilio notifier
func WithTwilioTelemetry(tp *TelemetryProvider) TwilioOption {
	return twilio.WithTelemetry(tp)
}

// ================================
// Logger and telemetry helpers
// ================================

// NewDefaultLogger returns the standard logger at Warn level
func NewDefaultLogger() Logger {
	return logger.New()
}

// NewTelemetryProvider creates a telemetry provider from configuration
func NewTelemetryProvider(cfg *TelemetryConfig) (*TelemetryProvider, error) {
	return observability.NewTelemetryProvider(cfg)
}

// ================================
// Error classification helpers
// ================================

// CodeOf returns the error code of err, or the empty string when err
// carries none
func CodeOf(err error) ErrorCode {
	return errors.CodeOf(err)
}

// IsInvalidArgument reports whether err is an invalid-argument error
func IsInvalidArgument(err error) bool {
	return errors.IsInvalidArgument(err)
}

// IsMissingCredentials reports whether err is a missing-credentials error
func IsMissingCredentials(err error) bool {
	return errors.IsMissingCredentials(err)
}

// IsUnsupportedOperation reports whether err is an unsupported-operation error
func IsUnsupportedOperation(err error) bool {
	return errors.IsUnsupportedOperation(err)
}

// IsServiceError reports whether err is a service error
func IsServiceError(err error) bool {
	return errors.IsServiceError(err)
}

// IsNotFound reports whether err is a not-found error
func IsNotFound(err error) bool {
	return errors.IsNotFound(err)
}
