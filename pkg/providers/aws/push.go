package aws

import (
	"context"

	"github.com/kart-io/notihub/pkg/notifier"
	"github.com/kart-io/notihub/pkg/providers/aws/clients"
)

// PushCampaign describes a Pinpoint push send. It is an alias of the
// clients type so callers never import the clients package directly.
type PushCampaign = clients.PushCampaign

// SendPinpointPushNotification delivers a push campaign to the endpoint
// IDs through Pinpoint and returns the per-endpoint delivery results
// under "EndpointResult".
func (n *Notifier) SendPinpointPushNotification(ctx context.Context, campaign PushCampaign) (notifier.Result, error) {
	if campaign.ApplicationID == "" {
		return nil, requiredArg("SendPinpointPushNotification", "pinpoint application ID is required")
	}
	if len(campaign.EndpointIDs) == 0 {
		return nil, requiredArg("SendPinpointPushNotification", "at least one endpoint ID is required")
	}
	if campaign.Title == "" {
		return nil, requiredArg("SendPinpointPushNotification", "campaign title is required")
	}
	if campaign.Body == "" {
		return nil, requiredArg("SendPinpointPushNotification", "campaign body is required")
	}

	var result notifier.Result
	err := n.traceOp(ctx, "SendPinpointPushNotification", func(ctx context.Context) error {
		var err error
		result, err = n.push.SendCampaign(ctx, campaign)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetPinpointEndpoint fetches a single Pinpoint endpoint. Unknown IDs
// surface a not-found coded service error.
func (n *Notifier) GetPinpointEndpoint(ctx context.Context, applicationID, endpointID string) (notifier.Result, error) {
	if applicationID == "" {
		return nil, requiredArg("GetPinpointEndpoint", "pinpoint application ID is required")
	}
	if endpointID == "" {
		return nil, requiredArg("GetPinpointEndpoint", "endpoint ID is required")
	}

	var result notifier.Result
	err := n.traceOp(ctx, "GetPinpointEndpoint", func(ctx context.Context) error {
		var err error
		result, err = n.push.GetEndpoint(ctx, applicationID, endpointID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetPinpointUserEndpoints fetches every endpoint registered for a user
// under "Item", the way Pinpoint reports the list.
func (n *Notifier) GetPinpointUserEndpoints(ctx context.Context, applicationID, userID string) (notifier.Result, error) {
	if applicationID == "" {
		return nil, requiredArg("GetPinpointUserEndpoints", "pinpoint application ID is required")
	}
	if userID == "" {
		return nil, requiredArg("GetPinpointUserEndpoints", "user ID is required")
	}

	var result notifier.Result
	err := n.traceOp(ctx, "GetPinpointUserEndpoints", func(ctx context.Context) error {
		var err error
		result, err = n.push.GetUserEndpoints(ctx, applicationID, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
