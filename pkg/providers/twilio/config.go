package twilio

// Config holds the immutable settings of the Twilio notifier.
// PhoneNumber is the default sender; the "from" attribute on a send
// overrides it per message.
type Config struct {
	AccountSID  string `json:"account_sid"`
	AuthToken   string `json:"auth_token"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// HasCredentials reports whether the credential pair is present.
func (c Config) HasCredentials() bool {
	return c.AccountSID != "" && c.AuthToken != ""
}
