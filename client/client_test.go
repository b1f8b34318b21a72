package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/notihub/pkg/errors"
	"github.com/kart-io/notihub/pkg/providers/aws"
	"github.com/kart-io/notihub/pkg/providers/twilio"
)

func TestNewAWSNotifier(t *testing.T) {
	n, err := NewAWSNotifier(context.Background(),
		aws.WithCredentials("AKIAEXAMPLE", "secret"),
		aws.WithRegion("us-east-1"))
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, "aws", n.Name())
}

func TestNewAWSNotifierWithoutCredentials(t *testing.T) {
	// No static credentials: construction succeeds and the SDK default
	// chain resolves credentials at first use.
	n, err := NewAWSNotifier(context.Background(), aws.WithRegion("us-east-1"))
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, "aws", n.Name())
}

func TestNewTwilioNotifier(t *testing.T) {
	n, err := NewTwilioNotifier(
		twilio.WithCredentials("AC0123456789", "auth-token"),
		twilio.WithPhoneNumber("+15550001111"))
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, "twilio", n.Name())
}

func TestNewTwilioNotifierMissingCredentials(t *testing.T) {
	n, err := NewTwilioNotifier()
	require.Error(t, err)
	assert.True(t, errors.IsMissingCredentials(err))
	assert.True(t, n == nil, "failed construction must return an untyped nil")
}
