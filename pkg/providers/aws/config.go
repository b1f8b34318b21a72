package aws

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"github.com/kart-io/notihub/pkg/errors"
	"github.com/kart-io/notihub/pkg/providers/aws/clients"
)

// Config holds the immutable settings of the AWS notifier. Leaving the
// credential pair empty delegates resolution to the SDK default chain
// (environment variables, shared config files, instance roles).
type Config struct {
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
	SessionToken    string `json:"session_token,omitempty"`
	Region          string `json:"region"`
}

// HasStaticCredentials reports whether an explicit credential pair was
// provided.
func (c Config) HasStaticCredentials() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}

// resolve loads the SDK configuration shared by the three service clients.
func (c Config) resolve(ctx context.Context, httpClient awssdk.HTTPClient) (awssdk.Config, error) {
	var optFns []func(*awsconfig.LoadOptions) error
	if c.Region != "" {
		optFns = append(optFns, awsconfig.WithRegion(c.Region))
	}
	if c.HasStaticCredentials() {
		optFns = append(optFns, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, c.SessionToken)))
	}
	if httpClient != nil {
		optFns = append(optFns, awsconfig.WithHTTPClient(httpClient))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return awssdk.Config{}, errors.Wrap(err, errors.ErrMissingCredentials,
			"aws configuration could not be resolved").
			WithProvider(clients.ProviderName).
			WithOp("New")
	}
	return cfg, nil
}
