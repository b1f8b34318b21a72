// Package twilio implements the SMS-only Twilio notifier. Email and
// push sends fail with an unsupported-operation error without touching
// the network.
package twilio

import (
	"context"
	"time"

	twiliosdk "github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/kart-io/notihub/observability"
	"github.com/kart-io/notihub/pkg/errors"
	"github.com/kart-io/notihub/pkg/logger"
	"github.com/kart-io/notihub/pkg/notifier"
)

// ProviderName identifies this notifier in logs, errors and telemetry.
const ProviderName = "twilio"

// MessageCreator is the slice of the Twilio REST client used for SMS
// sends.
type MessageCreator interface {
	CreateMessage(params *twilioapi.CreateMessageParams) (*twilioapi.ApiV2010Message, error)
}

// Notifier sends SMS through the Twilio REST API. It implements the
// full capability contract but only offers the SMS channel. Instances
// are immutable after construction.
type Notifier struct {
	config    Config
	messages  MessageCreator
	logger    logger.Logger
	telemetry *observability.TelemetryProvider
}

var _ notifier.Notifier = (*Notifier)(nil)

// New creates a Twilio notifier. The account SID and auth token are
// required; the default sender number is optional and can be supplied
// per message through the "from" attribute instead.
func New(opts ...Option) (*Notifier, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt.apply(s)
	}

	if !s.config.HasCredentials() {
		return nil, errors.New(errors.ErrMissingCredentials, "twilio account SID and auth token must be provided").
			WithProvider(ProviderName).
			WithOp("New")
	}

	messages := s.messages
	if messages == nil {
		rc := twiliosdk.NewRestClientWithParams(twiliosdk.ClientParams{
			Username: s.config.AccountSID,
			Password: s.config.AuthToken,
		})
		messages = rc.Api
	}

	return &Notifier{
		config:    s.config,
		messages:  messages,
		logger:    s.logger,
		telemetry: s.telemetry,
	}, nil
}

// Name returns the provider name.
func (n *Notifier) Name() string {
	return ProviderName
}

// Config returns a copy of the notifier configuration.
func (n *Notifier) Config() Config {
	return n.config
}

// SendSMSNotification sends an SMS through the Twilio messages API and
// returns the message SID. The sender number resolves from the "from"
// attribute first, then the configured default; other attribute keys
// are ignored.
func (n *Notifier) SendSMSNotification(ctx context.Context, phoneNumber, message string, attrs notifier.Attributes) (string, error) {
	if err := notifier.ValidateSMSArgs(ProviderName, phoneNumber, message); err != nil {
		return "", err
	}

	from := attrs["from"]
	if from == "" {
		from = n.config.PhoneNumber
	}
	if from == "" {
		return "", errors.New(errors.ErrInvalidArgument, "twilio phone number must be provided for sending SMS").
			WithProvider(ProviderName).
			WithOp("SendSMSNotification")
	}

	return n.send(ctx, notifier.ChannelSMS, func(ctx context.Context) (string, error) {
		// The Twilio REST client carries no context, so cancellation
		// is checked before dispatch.
		if err := ctx.Err(); err != nil {
			return "", errors.Wrap(err, errors.ErrServiceError, "send aborted").
				WithProvider(ProviderName).
				WithOp("SendSMSNotification")
		}

		params := &twilioapi.CreateMessageParams{}
		params.SetTo(phoneNumber)
		params.SetFrom(from)
		params.SetBody(message)

		resp, err := n.messages.CreateMessage(params)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrServiceError, "twilio message create failed").
				WithProvider(ProviderName).
				WithOp("SendSMSNotification")
		}

		var sid string
		if resp != nil && resp.Sid != nil {
			sid = *resp.Sid
		}
		return sid, nil
	})
}

// SendEmailNotification always fails: this notifier offers no email
// channel.
func (n *Notifier) SendEmailNotification(ctx context.Context, email notifier.EmailMessage) (string, error) {
	return "", unsupported("SendEmailNotification", notifier.ChannelEmail)
}

// SendPushNotification always fails: this notifier offers no push
// channel.
func (n *Notifier) SendPushNotification(ctx context.Context, device, message string, attrs notifier.Attributes) (string, error) {
	return "", unsupported("SendPushNotification", notifier.ChannelPush)
}

// send wraps a channel send with tracing, metrics and logging.
func (n *Notifier) send(ctx context.Context, channel string, fn func(context.Context) (string, error)) (string, error) {
	ctx, span := n.telemetry.TraceSend(ctx, ProviderName, channel)
	defer span.End()

	start := time.Now()
	id, err := fn(ctx)
	duration := time.Since(start)
	if err != nil {
		n.telemetry.RecordSendFailure(ctx, ProviderName, channel, duration, string(errors.CodeOf(err)))
		n.telemetry.SetSpanError(span, err)
		n.logger.Error("notification send failed", "provider", ProviderName, "channel", channel, "error", err)
		return "", err
	}

	n.telemetry.RecordSendSuccess(ctx, ProviderName, channel, duration)
	n.telemetry.SetSpanSuccess(span)
	n.logger.Info("notification sent", "provider", ProviderName, "channel", channel, "message_id", id)
	return id, nil
}

// unsupported builds the error returned for channels this notifier does
// not offer. No network activity happens for these sends.
func unsupported(op, channel string) error {
	return errors.New(errors.ErrUnsupportedOperation, channel+" notifications are not supported by the twilio provider").
		WithProvider(ProviderName).
		WithOp(op)
}
