// Package client is the entry point for constructing notifiers. The
// factory functions return the capability contract so callers depend on
// pkg/notifier instead of the provider packages.
package client

import (
	"context"

	"github.com/kart-io/notihub/pkg/notifier"
	"github.com/kart-io/notihub/pkg/providers/aws"
	"github.com/kart-io/notihub/pkg/providers/twilio"
)

// NewAWSNotifier returns the combined AWS notifier covering SMS, email
// and push. With no credential options the SDK default chain resolves
// credentials.
func NewAWSNotifier(ctx context.Context, opts ...aws.Option) (notifier.Notifier, error) {
	n, err := aws.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// NewTwilioNotifier returns the SMS-only Twilio notifier. Email and
// push sends fail with an unsupported-operation error.
func NewTwilioNotifier(opts ...twilio.Option) (notifier.Notifier, error) {
	n, err := twilio.New(opts...)
	if err != nil {
		return nil, err
	}
	return n, nil
}
