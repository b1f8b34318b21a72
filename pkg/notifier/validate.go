package notifier

import (
	"github.com/kart-io/notihub/pkg/errors"
)

// Validation helpers shared by the provider notifiers. All violations
// return an INVALID_ARGUMENT error carrying the operation and provider,
// and are raised before any network call.

// ValidateSMSArgs checks the required arguments of an SMS send.
func ValidateSMSArgs(provider, phoneNumber, message string) error {
	if phoneNumber == "" {
		return errors.New(errors.ErrInvalidArgument, "phone number is required").
			WithOp("SendSMSNotification").WithProvider(provider)
	}
	if message == "" {
		return errors.New(errors.ErrInvalidArgument, "message is required").
			WithOp("SendSMSNotification").WithProvider(provider)
	}
	return nil
}

// ValidatePushArgs checks the required arguments of a push send.
func ValidatePushArgs(provider, device, message string) error {
	if device == "" {
		return errors.New(errors.ErrInvalidArgument, "device is required").
			WithOp("SendPushNotification").WithProvider(provider)
	}
	if message == "" {
		return errors.New(errors.ErrInvalidArgument, "message is required").
			WithOp("SendPushNotification").WithProvider(provider)
	}
	return nil
}

// ValidateEmailMessage checks the required fields of an email send.
// Checks run in field order: subject, sender, template, recipients.
func ValidateEmailMessage(provider string, m EmailMessage) error {
	if m.Subject == "" {
		return errors.New(errors.ErrInvalidArgument, "subject is required").
			WithOp("SendEmailNotification").WithProvider(provider)
	}
	if m.Sender == "" {
		return errors.New(errors.ErrInvalidArgument, "sender is required").
			WithOp("SendEmailNotification").WithProvider(provider)
	}
	if m.Template == "" {
		return errors.New(errors.ErrInvalidArgument, "template is required").
			WithOp("SendEmailNotification").WithProvider(provider)
	}
	if m.RecipientCount() == 0 {
		return errors.New(errors.ErrInvalidArgument, "at least one recipient is required").
			WithOp("SendEmailNotification").WithProvider(provider)
	}
	return nil
}
