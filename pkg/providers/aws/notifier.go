// Package aws implements the combined AWS notifier: SMS through SNS
// direct publish, templated email through SES, mobile push through SNS
// platform endpoints and Pinpoint campaigns, plus the topic, device
// endpoint, and email template lifecycle operations behind them.
package aws

import (
	"context"
	"time"

	"github.com/kart-io/notihub/observability"
	"github.com/kart-io/notihub/pkg/errors"
	"github.com/kart-io/notihub/pkg/logger"
	"github.com/kart-io/notihub/pkg/notifier"
	"github.com/kart-io/notihub/pkg/providers/aws/clients"
)

// MessagingClient is the SNS surface the notifier depends on.
type MessagingClient interface {
	PublishToPhone(ctx context.Context, phoneNumber, message string, attrs notifier.Attributes) (string, error)
	PublishToTarget(ctx context.Context, targetARN, message string, attrs notifier.Attributes) (string, error)
	PublishToTopic(ctx context.Context, topicARN, message, subject string, attrs notifier.Attributes) (string, error)
	CreateTopic(ctx context.Context, name string) (notifier.Result, error)
	GetTopic(ctx context.Context, topicARN string) (notifier.Result, error)
	DeleteTopic(ctx context.Context, topicARN string) error
	Subscribe(ctx context.Context, topicARN, protocol, endpoint string) (notifier.Result, error)
	CreatePlatformEndpoint(ctx context.Context, platformAppARN, token, customUserData string) (notifier.Result, error)
	SetEndpointAttributes(ctx context.Context, endpointARN string, attributes map[string]string) error
	DeleteEndpoint(ctx context.Context, endpointARN string) error
}

// EmailClient is the SES surface the notifier depends on.
type EmailClient interface {
	SendTemplatedEmail(ctx context.Context, email notifier.EmailMessage) (string, error)
	CreateTemplate(ctx context.Context, name, subject, textBody, htmlBody string) error
	UpdateTemplate(ctx context.Context, name, subject, textBody, htmlBody string) error
	GetTemplate(ctx context.Context, name string) (notifier.Result, error)
	DeleteTemplate(ctx context.Context, name string) error
	ListTemplates(ctx context.Context) (notifier.Result, error)
}

// PushClient is the Pinpoint surface the notifier depends on.
type PushClient interface {
	SendCampaign(ctx context.Context, campaign clients.PushCampaign) (notifier.Result, error)
	GetEndpoint(ctx context.Context, applicationID, endpointID string) (notifier.Result, error)
	GetUserEndpoints(ctx context.Context, applicationID, userID string) (notifier.Result, error)
}

var (
	_ MessagingClient = (*clients.SNSClient)(nil)
	_ EmailClient     = (*clients.SESClient)(nil)
	_ PushClient      = (*clients.PinpointClient)(nil)
)

// Notifier sends notifications through AWS. SMS and device push ride on
// SNS, templated email on SES, and campaign push with endpoint lookups
// on Pinpoint. Instances are immutable after construction.
type Notifier struct {
	config    Config
	messaging MessagingClient
	email     EmailClient
	push      PushClient
	logger    logger.Logger
	telemetry *observability.TelemetryProvider
}

var _ notifier.Notifier = (*Notifier)(nil)

// New creates an AWS notifier backed by real SNS, SES and Pinpoint
// clients. Explicit credentials from the options win; otherwise the SDK
// default chain resolves them.
func New(ctx context.Context, opts ...Option) (*Notifier, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt.apply(s)
	}

	cfg, err := s.config.resolve(ctx, s.httpClient)
	if err != nil {
		return nil, err
	}

	return &Notifier{
		config:    s.config,
		messaging: clients.NewSNSClient(cfg, s.logger),
		email:     clients.NewSESClient(cfg, s.logger),
		push:      clients.NewPinpointClient(cfg, s.logger),
		logger:    s.logger,
		telemetry: s.telemetry,
	}, nil
}

// NewWithClients creates an AWS notifier around existing service
// clients. Tests use it to substitute stubs for the real SDK clients.
func NewWithClients(messaging MessagingClient, email EmailClient, push PushClient, opts ...Option) *Notifier {
	s := defaultSettings()
	for _, opt := range opts {
		opt.apply(s)
	}

	return &Notifier{
		config:    s.config,
		messaging: messaging,
		email:     email,
		push:      push,
		logger:    s.logger,
		telemetry: s.telemetry,
	}
}

// Name returns the provider name.
func (n *Notifier) Name() string {
	return clients.ProviderName
}

// Config returns a copy of the notifier configuration.
func (n *Notifier) Config() Config {
	return n.config
}

// SendSMSNotification sends an SMS through an SNS direct publish to the
// phone number. Attributes pass through as SNS message attributes, for
// example "AWS.SNS.SMS.SMSType".
func (n *Notifier) SendSMSNotification(ctx context.Context, phoneNumber, message string, attrs notifier.Attributes) (string, error) {
	if err := notifier.ValidateSMSArgs(clients.ProviderName, phoneNumber, message); err != nil {
		return "", err
	}

	return n.send(ctx, notifier.ChannelSMS, func(ctx context.Context) (string, error) {
		return n.messaging.PublishToPhone(ctx, phoneNumber, message, attrs)
	})
}

// SendEmailNotification sends a templated email through SES. Recipient
// lists are normalized so Cc and Bcc always reach the wire as empty
// slices, never nil.
func (n *Notifier) SendEmailNotification(ctx context.Context, email notifier.EmailMessage) (string, error) {
	if err := notifier.ValidateEmailMessage(clients.ProviderName, email); err != nil {
		return "", err
	}

	normalized := email.Normalize()
	return n.send(ctx, notifier.ChannelEmail, func(ctx context.Context) (string, error) {
		return n.email.SendTemplatedEmail(ctx, normalized)
	})
}

// SendPushNotification sends a push message to a device through an SNS
// target publish. The device argument is the endpoint ARN returned by
// CreateDeviceEndpoint.
func (n *Notifier) SendPushNotification(ctx context.Context, device, message string, attrs notifier.Attributes) (string, error) {
	if err := notifier.ValidatePushArgs(clients.ProviderName, device, message); err != nil {
		return "", err
	}

	return n.send(ctx, notifier.ChannelPush, func(ctx context.Context) (string, error) {
		return n.messaging.PublishToTarget(ctx, device, message, attrs)
	})
}

// send wraps a channel send with tracing, metrics and logging.
func (n *Notifier) send(ctx context.Context, channel string, fn func(context.Context) (string, error)) (string, error) {
	ctx, span := n.telemetry.TraceSend(ctx, clients.ProviderName, channel)
	defer span.End()

	start := time.Now()
	id, err := fn(ctx)
	duration := time.Since(start)
	if err != nil {
		n.telemetry.RecordSendFailure(ctx, clients.ProviderName, channel, duration, string(errors.CodeOf(err)))
		n.telemetry.SetSpanError(span, err)
		n.logger.Error("notification send failed", "provider", clients.ProviderName, "channel", channel, "error", err)
		return "", err
	}

	n.telemetry.RecordSendSuccess(ctx, clients.ProviderName, channel, duration)
	n.telemetry.SetSpanSuccess(span)
	n.logger.Info("notification sent", "provider", clients.ProviderName, "channel", channel, "message_id", id)
	return id, nil
}

// traceOp wraps a lifecycle operation with tracing and error logging.
func (n *Notifier) traceOp(ctx context.Context, op string, fn func(context.Context) error) error {
	ctx, span := n.telemetry.TraceOperation(ctx, "notihub."+op)
	defer span.End()

	if err := fn(ctx); err != nil {
		n.telemetry.SetSpanError(span, err)
		n.logger.Error("operation failed", "provider", clients.ProviderName, "op", op, "error", err)
		return err
	}

	n.telemetry.SetSpanSuccess(span)
	return nil
}

// requiredArg builds the error returned when a lifecycle operation is
// called without one of its identifiers.
func requiredArg(op, message string) error {
	return errors.New(errors.ErrInvalidArgument, message).
		WithProvider(clients.ProviderName).
		WithOp(op)
}
