package aws

import (
	awssdk "github.com/aws/aws-sdk-go-v2/aws"

	"github.com/kart-io/notihub/observability"
	"github.com/kart-io/notihub/pkg/logger"
)

// Option configures the AWS notifier.
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
	config     Config
	logger     logger.Logger
	telemetry  *observability.TelemetryProvider
	httpClient awssdk.HTTPClient
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

// WithCredentials sets an explicit credential pair, bypassing the SDK
// default chain.
func WithCredentials(accessKeyID, secretAccessKey string) Option {
	return optionFunc(func(s *settings) {
		s.config.AccessKeyID = accessKeyID
		s.config.SecretAccessKey = secretAccessKey
	})
}

// WithSessionToken sets the session token used alongside temporary
// credentials.
func WithSessionToken(token string) Option {
	return optionFunc(func(s *settings) {
		s.config.SessionToken = token
	})
}

// WithRegion sets the AWS region the service clients talk to.
func WithRegion(region string) Option {
	return optionFunc(func(s *settings) {
		s.config.Region = region
	})
}

// WithLogger sets the logger used by the notifier and its service
// clients.
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

// WithHTTPClient overrides the HTTP client of the underlying SDK
// clients.
func WithHTTPClient(client awssdk.HTTPClient) Option {
	return optionFunc(func(s *settings) {
		s.httpClient = client
	})
}
