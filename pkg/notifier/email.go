package notifier

// EmailMessage describes one templated email send. The zero value is not
// sendable; Subject, Sender, Template, and at least one recipient are
// required.
type EmailMessage struct {
	// Subject of the email. Providers that render templates may push the
	// subject into the template before sending.
	Subject string `json:"subject"`

	// Data holds the template substitution values. Providers serialize it
	// as JSON template data.
	Data map[string]any `json:"data,omitempty"`

	// Recipients is the ordered primary recipient list.
	Recipients []string `json:"recipients"`

	// Sender is the originating address.
	Sender string `json:"sender"`

	// Template names the provider-side template to render.
	Template string `json:"template"`

	// CCEmails and BCCEmails are independently optional.
	CCEmails  []string `json:"cc_emails,omitempty"`
	BCCEmails []string `json:"bcc_emails,omitempty"`

	// Attributes is the provider-specific parameter bag.
	Attributes Attributes `json:"attributes,omitempty"`
}

// Normalize returns a copy with nil recipient slices replaced by empty
// ones, so adapters always receive non-nil cc/bcc lists.
func (m EmailMessage) Normalize() EmailMessage {
	if m.Recipients == nil {
		m.Recipients = []string{}
	}
	if m.CCEmails == nil {
		m.CCEmails = []string{}
	}
	if m.BCCEmails == nil {
		m.BCCEmails = []string{}
	}
	return m
}

// RecipientCount returns the total number of addresses across to, cc,
// and bcc.
func (m EmailMessage) RecipientCount() int {
	return len(m.Recipients) + len(m.CCEmails) + len(m.BCCEmails)
}
