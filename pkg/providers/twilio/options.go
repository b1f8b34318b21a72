package twilio

import (
	"os"

	"github.com/kart-io/notihub/observability"
	"github.com/kart-io/notihub/pkg/logger"
)

// Option configures the Twilio notifier.
type Option interface {
	apply(*settings)
}

type optionFunc func(*settings)

func (f optionFunc) apply(s *settings) {
	f(s)
}

// settings collects construction-time dependencies before they are
// frozen into the notifier.
type settings struct {
	config    Config
	messages  MessageCreator
	logger    logger.Logger
	telemetry *observability.TelemetryProvider
}

func defaultSettings() *settings {
	return &settings{
		logger:    logger.Discard,
		telemetry: observability.Disabled(),
	}
}

// WithConfig replaces the whole notifier configuration.
func WithConfig(cfg Config) Option {
	return optionFunc(func(s *settings) {
		s.config = cfg
	})
}

// WithCredentials sets the account SID and auth token.
func WithCredentials(accountSID, authToken string) Option {
	return optionFunc(func(s *settings) {
		s.config.AccountSID = accountSID
		s.config.AuthToken = authToken
	})
}

// WithPhoneNumber sets the default sender number.
func WithPhoneNumber(phoneNumber string) Option {
	return optionFunc(func(s *settings) {
		s.config.PhoneNumber = phoneNumber
	})
}

// WithCredentialsFromEnv reads TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and
// TWILIO_PHONE_NUMBER from the environment. Unset or empty variables
// leave the current values untouched.
func WithCredentialsFromEnv() Option {
	return optionFunc(func(s *settings) {
		if v := os.Getenv("TWILIO_ACCOUNT_SID"); v != "" {
			s.config.AccountSID = v
		}
		if v := os.Getenv("TWILIO_AUTH_TOKEN"); v != "" {
			s.config.AuthToken = v
		}
		if v := os.Getenv("TWILIO_PHONE_NUMBER"); v != "" {
			s.config.PhoneNumber = v
		}
	})
}

// WithLogger sets the logger used by the notifier.
func WithLogger(log logger.Logger) Option {
	return optionFunc(func(s *settings) {
		if log != nil {
			s.logger = log
		}
	})
}

// WithTelemetry sets the telemetry provider used for traces and metrics.
func WithTelemetry(tp *observability.TelemetryProvider) Option {
	return optionFunc(func(s *settings) {
		if tp != nil {
			s.telemetry = tp
		}
	})
}

// WithRestClient overrides the Twilio REST message client, typically
// with a stub under test.
func WithRestClient(messages MessageCreator) Option {
	return optionFunc(func(s *settings) {
		s.messages = messages
	})
}
