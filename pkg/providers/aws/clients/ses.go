package clients

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/kart-io/notihub/pkg/errors"
	"github.com/kart-io/notihub/pkg/logger"
	"github.com/kart-io/notihub/pkg/notifier"
)

// SESAPI is the slice of the SES client the adapter uses.
type SESAPI interface {
	SendTemplatedEmail(ctx context.Context, params *ses.SendTemplatedEmailInput, optFns ...func(*ses.Options)) (*ses.SendTemplatedEmailOutput, error)
	CreateTemplate(ctx context.Context, params *ses.CreateTemplateInput, optFns ...func(*ses.Options)) (*ses.CreateTemplateOutput, error)
	UpdateTemplate(ctx context.Context, params *ses.UpdateTemplateInput, optFns ...func(*ses.Options)) (*ses.UpdateTemplateOutput, error)
	GetTemplate(ctx context.Context, params *ses.GetTemplateInput, optFns ...func(*ses.Options)) (*ses.GetTemplateOutput, error)
	DeleteTemplate(ctx context.Context, params *ses.DeleteTemplateInput, optFns ...func(*ses.Options)) (*ses.DeleteTemplateOutput, error)
	ListTemplates(ctx context.Context, params *ses.ListTemplatesInput, optFns ...func(*ses.Options)) (*ses.ListTemplatesOutput, error)
}

// SESClient adapts the SES service: templated email sends and template
// lifecycle management.
type SESClient struct {
	api    SESAPI
	logger logger.Logger
}

var _ SESAPI = (*ses.Client)(nil)

// NewSESClient creates an adapter backed by a real SES client for the
// given AWS configuration.
func NewSESClient(cfg aws.Config, log logger.Logger) *SESClient {
	return NewSESClientWithAPI(ses.NewFromConfig(cfg), log)
}

// NewSESClientWithAPI creates an adapter around an existing client,
// typically a stub under test.
func NewSESClientWithAPI(api SESAPI, log logger.Logger) *SESClient {
	if log == nil {
		log = logger.Discard
	}
	return &SESClient{api: api, logger: log}
}

// SendTemplatedEmail renders the named template with the message data
// and sends it to the recipient sets. When the requested subject differs
// from the template's stored subject part, the template is updated
// first, so a repeated send with the same subject costs no extra write.
func (c *SESClient) SendTemplatedEmail(ctx context.Context, email notifier.EmailMessage) (string, error) {
	c.logger.Debug("sending templated email",
		"template", email.Template,
		"recipients", len(email.Recipients),
		"cc", len(email.CCEmails),
		"bcc", len(email.BCCEmails))

	if email.Subject != "" {
		if err := c.syncTemplateSubject(ctx, email.Template, email.Subject); err != nil {
			return "", err
		}
	}

	templateData := email.Data
	if templateData == nil {
		templateData = map[string]any{}
	}
	data, err := json.Marshal(templateData)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidArgument, "email data is not JSON-serializable").
			WithOp("SendEmailNotification").WithProvider(ProviderName)
	}

	out, err := c.api.SendTemplatedEmail(ctx, &ses.SendTemplatedEmailInput{
		Source:       aws.String(email.Sender),
		Template:     aws.String(email.Template),
		TemplateData: aws.String(string(data)),
		Destination: &sestypes.Destination{
			ToAddresses:  email.Recipients,
			CcAddresses:  email.CCEmails,
			BccAddresses: email.BCCEmails,
		},
		Tags: messageTags(email.Attributes),
	})
	if err != nil {
		return "", serviceError(err, "SendEmailNotification", "ses send templated email failed")
	}
	return aws.ToString(out.MessageId), nil
}

// syncTemplateSubject aligns the template's subject part with the
// requested subject, preserving the stored text and HTML parts.
func (c *SESClient) syncTemplateSubject(ctx context.Context, templateName, subject string) error {
	out, err := c.api.GetTemplate(ctx, &ses.GetTemplateInput{TemplateName: aws.String(templateName)})
	if err != nil {
		return serviceError(err, "SendEmailNotification", "ses get template failed")
	}
	if out.Template == nil || aws.ToString(out.Template.SubjectPart) == subject {
		return nil
	}

	c.logger.Debug("updating template subject", "template", templateName)
	_, err = c.api.UpdateTemplate(ctx, &ses.UpdateTemplateInput{
		Template: &sestypes.Template{
			TemplateName: aws.String(templateName),
			SubjectPart:  aws.String(subject),
			TextPart:     out.Template.TextPart,
			HtmlPart:     out.Template.HtmlPart,
		},
	})
	if err != nil {
		return serviceError(err, "SendEmailNotification", "ses update template subject failed")
	}
	return nil
}

// CreateTemplate registers a new email template.
func (c *SESClient) CreateTemplate(ctx context.Context, name, subject, textBody, htmlBody string) error {
	c.logger.Debug("creating email template", "name", name)

	_, err := c.api.CreateTemplate(ctx, &ses.CreateTemplateInput{
		Template: emailTemplate(name, subject, textBody, htmlBody),
	})
	if err != nil {
		return serviceError(err, "CreateEmailTemplate", "ses create template failed")
	}
	return nil
}

// UpdateTemplate replaces an existing email template.
func (c *SESClient) UpdateTemplate(ctx context.Context, name, subject, textBody, htmlBody string) error {
	c.logger.Debug("updating email template", "name", name)

	_, err := c.api.UpdateTemplate(ctx, &ses.UpdateTemplateInput{
		Template: emailTemplate(name, subject, textBody, htmlBody),
	})
	if err != nil {
		return serviceError(err, "UpdateEmailTemplate", "ses update template failed")
	}
	return nil
}

// GetTemplate fetches an email template.
func (c *SESClient) GetTemplate(ctx context.Context, name string) (notifier.Result, error) {
	out, err := c.api.GetTemplate(ctx, &ses.GetTemplateInput{TemplateName: aws.String(name)})
	if err != nil {
		return nil, serviceError(err, "GetEmailTemplate", "ses get template failed")
	}

	template := map[string]any{}
	if out.Template != nil {
		template["TemplateName"] = aws.ToString(out.Template.TemplateName)
		template["SubjectPart"] = aws.ToString(out.Template.SubjectPart)
		template["TextPart"] = aws.ToString(out.Template.TextPart)
		template["HtmlPart"] = aws.ToString(out.Template.HtmlPart)
	}
	return notifier.Result{"Template": template}, nil
}

// DeleteTemplate removes an email template.
func (c *SESClient) DeleteTemplate(ctx context.Context, name string) error {
	c.logger.Debug("deleting email template", "name", name)

	if _, err := c.api.DeleteTemplate(ctx, &ses.DeleteTemplateInput{TemplateName: aws.String(name)}); err != nil {
		return serviceError(err, "DeleteEmailTemplate", "ses delete template failed")
	}
	return nil
}

// ListTemplates lists the account's email template metadata.
func (c *SESClient) ListTemplates(ctx context.Context) (notifier.Result, error) {
	out, err := c.api.ListTemplates(ctx, &ses.ListTemplatesInput{})
	if err != nil {
		return nil, serviceError(err, "ListEmailTemplates", "ses list templates failed")
	}

	metadata := make([]map[string]any, 0, len(out.TemplatesMetadata))
	for _, tm := range out.TemplatesMetadata {
		entry := map[string]any{"Name": aws.ToString(tm.Name)}
		if tm.CreatedTimestamp != nil {
			entry["CreatedTimestamp"] = *tm.CreatedTimestamp
		}
		metadata = append(metadata, entry)
	}

	result := notifier.Result{"TemplatesMetadata": metadata}
	if out.NextToken != nil {
		result["NextToken"] = aws.ToString(out.NextToken)
	}
	return result, nil
}

func emailTemplate(name, subject, textBody, htmlBody string) *sestypes.Template {
	return &sestypes.Template{
		TemplateName: aws.String(name),
		SubjectPart:  aws.String(subject),
		TextPart:     aws.String(textBody),
		HtmlPart:     aws.String(htmlBody),
	}
}

// messageTags converts the open attribute bag into SES message tags.
func messageTags(attrs notifier.Attributes) []sestypes.MessageTag {
	if len(attrs) == 0 {
		return nil
	}
	tags := make([]sestypes.MessageTag, 0, len(attrs))
	for k, v := range attrs {
		tags = append(tags, sestypes.MessageTag{Name: aws.String(k), Value: aws.String(v)})
	}
	return tags
}
