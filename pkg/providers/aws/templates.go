package aws

import (
	"context"

	"github.com/kart-io/notihub/pkg/notifier"
)

// CreateEmailTemplate registers a new SES email template. At least one
// of textBody and htmlBody should be set for the template to render.
func (n *Notifier) CreateEmailTemplate(ctx context.Context, name, subject, textBody, htmlBody string) error {
	if name == "" {
		return requiredArg("CreateEmailTemplate", "template name is required")
	}
	if subject == "" {
		return requiredArg("CreateEmailTemplate", "template subject is required")
	}

	return n.traceOp(ctx, "CreateEmailTemplate", func(ctx context.Context) error {
		return n.email.CreateTemplate(ctx, name, subject, textBody, htmlBody)
	})
}

// UpdateEmailTemplate replaces the subject and body parts of an existing
// SES email template.
func (n *Notifier) UpdateEmailTemplate(ctx context.Context, name, subject, textBody, htmlBody string) error {
	if name == "" {
		return requiredArg("UpdateEmailTemplate", "template name is required")
	}
	if subject == "" {
		return requiredArg("UpdateEmailTemplate", "template subject is required")
	}

	return n.traceOp(ctx, "UpdateEmailTemplate", func(ctx context.Context) error {
		return n.email.UpdateTemplate(ctx, name, subject, textBody, htmlBody)
	})
}

// GetEmailTemplate fetches a template definition under "Template".
// Unknown names surface a not-found coded service error.
func (n *Notifier) GetEmailTemplate(ctx context.Context, name string) (notifier.Result, error) {
	if name == "" {
		return nil, requiredArg("GetEmailTemplate", "template name is required")
	}

	var result notifier.Result
	err := n.traceOp(ctx, "GetEmailTemplate", func(ctx context.Context) error {
		var err error
		result, err = n.email.GetTemplate(ctx, name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteEmailTemplate removes a template. Deleting an unknown template
// succeeds on the AWS side.
func (n *Notifier) DeleteEmailTemplate(ctx context.Context, name string) error {
	if name == "" {
		return requiredArg("DeleteEmailTemplate", "template name is required")
	}

	return n.traceOp(ctx, "DeleteEmailTemplate", func(ctx context.Context) error {
		return n.email.DeleteTemplate(ctx, name)
	})
}

// ListEmailTemplates lists template metadata under "TemplatesMetadata".
func (n *Notifier) ListEmailTemplates(ctx context.Context) (notifier.Result, error) {
	var result notifier.Result
	err := n.traceOp(ctx, "ListEmailTemplates", func(ctx context.Context) error {
		var err error
		result, err = n.email.ListTemplates(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
