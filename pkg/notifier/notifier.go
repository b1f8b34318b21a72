// Package notifier defines the capability contract every NotiHub provider
// implements, together with the request and response types shared across
// providers.
//
// A provider that does not offer a channel still implements the full
// interface and fails the unsupported methods with an
// UNSUPPORTED_OPERATION error, so callers can hold any provider behind
// the same Notifier value.
package notifier

import (
	"context"
)

// Channel names used in logs, errors, and telemetry attributes.
const (
	ChannelSMS   = "sms"
	ChannelEmail = "email"
	ChannelPush  = "push"
)

// Attributes is the open, provider-specific parameter bag attached to a
// send. Keys and values pass through to the provider verbatim; NotiHub
// never interprets them, and keys a provider does not understand are the
// provider's business.
type Attributes map[string]string

// Notifier is the capability contract. Every method blocks until the
// provider accepts or rejects the request; the string result is the
// provider-issued message identifier.
type Notifier interface {
	// Name identifies the provider, e.g. "aws" or "twilio".
	Name() string

	// SendSMSNotification delivers a text message to a single phone number.
	SendSMSNotification(ctx context.Context, phoneNumber, message string, attrs Attributes) (string, error)

	// SendEmailNotification delivers a templated email to the recipient
	// sets carried by the message.
	SendEmailNotification(ctx context.Context, email EmailMessage) (string, error)

	// SendPushNotification delivers a push message to a single device
	// identified by a provider-specific device token or endpoint ARN.
	SendPushNotification(ctx context.Context, device, message string, attrs Attributes) (string, error)
}

// Result is the structured pass-through of a provider response for
// resource-lifecycle operations. Keys keep the provider's own field
// names ("TopicArn", "SubscriptionArn", "EndpointArn", ...).
type Result map[string]any

// String returns the value under key when it is a string, and ""
// otherwise.
func (r Result) String(key string) string {
	if v, ok := r[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
