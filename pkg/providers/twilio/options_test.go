package twilio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/notihub/pkg/logger"
)

func TestOptionsApply(t *testing.T) {
	s := defaultSettings()
	opts := []Option{
		WithCredentials("AC0123456789", "auth-token"),
		WithPhoneNumber("+15550001111"),
	}
	for _, opt := range opts {
		opt.apply(s)
	}

	assert.Equal(t, "AC0123456789", s.config.AccountSID)
	assert.Equal(t, "auth-token", s.config.AuthToken)
	assert.Equal(t, "+15550001111", s.config.PhoneNumber)
	assert.Equal(t, logger.Discard, s.logger)
	assert.NotNil(t, s.telemetry)
}

func TestWithConfigReplacesEverything(t *testing.T) {
	s := defaultSettings()
	WithPhoneNumber("+15550001111").apply(s)
	WithConfig(Config{AccountSID: "AC9", AuthToken: "t9"}).apply(s)

	assert.Equal(t, "AC9", s.config.AccountSID)
	assert.Empty(t, s.config.PhoneNumber)
}

func TestWithCredentialsFromEnv(t *testing.T) {
	t.Setenv("TWILIO_ACCOUNT_SID", "AC-from-env")
	t.Setenv("TWILIO_AUTH_TOKEN", "token-from-env")
	t.Setenv("TWILIO_PHONE_NUMBER", "+15557770000")

	s := defaultSettings()
	WithCredentialsFromEnv().apply(s)

	assert.Equal(t, "AC-from-env", s.config.AccountSID)
	assert.Equal(t, "token-from-env", s.config.AuthToken)
	assert.Equal(t, "+15557770000", s.config.PhoneNumber)
}

func TestWithCredentialsFromEnvKeepsExistingValues(t *testing.T) {
	t.Setenv("TWILIO_ACCOUNT_SID", "")
	t.Setenv("TWILIO_AUTH_TOKEN", "")
	t.Setenv("TWILIO_PHONE_NUMBER", "")

	s := defaultSettings()
	WithCredentials("AC-explicit", "token-explicit").apply(s)
	WithCredentialsFromEnv().apply(s)

	assert.Equal(t, "AC-explicit", s.config.AccountSID)
	assert.Equal(t, "token-explicit", s.config.AuthToken)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("TWILIO_ACCOUNT_SID", "AC-from-env")
	t.Setenv("TWILIO_AUTH_TOKEN", "token-from-env")
	t.Setenv("TWILIO_PHONE_NUMBER", "+15557770000")

	n, err := New(WithCredentialsFromEnv(), WithRestClient(&stubMessages{}))
	require.NoError(t, err)

	cfg := n.Config()
	assert.Equal(t, "AC-from-env", cfg.AccountSID)
	assert.Equal(t, "+15557770000", cfg.PhoneNumber)
}

func TestHasCredentials(t *testing.T) {
	assert.False(t, Config{}.HasCredentials())
	assert.False(t, Config{AccountSID: "AC1"}.HasCredentials())
	assert.False(t, Config{AuthToken: "token"}.HasCredentials())
	assert.True(t, Config{AccountSID: "AC1", AuthToken: "token"}.HasCredentials())
}

func TestNotifierConfigIsACopy(t *testing.T) {
	n, _ := newTestNotifier(t, WithPhoneNumber("+15550001111"))

	cfg := n.Config()
	cfg.PhoneNumber = "+15559990000"

	assert.Equal(t, "+15550001111", n.Config().PhoneNumber)
}
