// Package clients contains the AWS service client adapters used by the
// combined AWS notifier: SNS for messaging and topics, SES for
// transactional email, and Pinpoint for mobile push and device
// management. Each adapter wraps exactly one SDK client behind a narrow
// interface so tests can substitute stubs, holds no state beyond that
// handle, and retains no payloads across calls.
package clients

import (
	stderrors "errors"

	"github.com/aws/smithy-go"

	"github.com/kart-io/notihub/pkg/errors"
)

// ProviderName labels errors, logs, and telemetry produced by the AWS
// adapters.
const ProviderName = "aws"

// serviceError wraps an SDK failure as a SERVICE_ERROR, keeping the SDK
// error reachable as the cause. Provider rejections that indicate a
// missing resource surface as NOT_FOUND instead.
func serviceError(err error, op, message string) error {
	code := errors.ErrServiceError
	var apiErr smithy.APIError
	if stderrors.As(err, &apiErr) && isNotFoundCode(apiErr.ErrorCode()) {
		code = errors.ErrNotFound
	}
	return errors.Wrap(err, code, message).WithOp(op).WithProvider(ProviderName)
}

// isNotFoundCode matches the not-found rejection codes of the three
// services: SNS ("NotFound"), Pinpoint ("NotFoundException"), and the
// SES template variant.
func isNotFoundCode(code string) bool {
	switch code {
	case "NotFound", "NotFoundException", "ResourceNotFoundException", "TemplateDoesNotExist":
		return true
	}
	return false
}
