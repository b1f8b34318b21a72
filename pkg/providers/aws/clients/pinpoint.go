package clients

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/pinpoint"
	pinpointtypes "github.com/aws/aws-sdk-go-v2/service/pinpoint/types"

	"github.com/kart-io/notihub/pkg/errors"
	"github.com/kart-io/notihub/pkg/logger"
	"github.com/kart-io/notihub/pkg/notifier"
)

// PinpointAPI is the slice of the Pinpoint client the adapter uses.
type PinpointAPI interface {
	SendMessages(ctx context.Context, params *pinpoint.SendMessagesInput, optFns ...func(*pinpoint.Options)) (*pinpoint.SendMessagesOutput, error)
	GetEndpoint(ctx context.Context, params *pinpoint.GetEndpointInput, optFns ...func(*pinpoint.Options)) (*pinpoint.GetEndpointOutput, error)
	GetUserEndpoints(ctx context.Context, params *pinpoint.GetUserEndpointsInput, optFns ...func(*pinpoint.Options)) (*pinpoint.GetUserEndpointsOutput, error)
}

// PushCampaign describes one Pinpoint push delivery to a set of
// endpoints. Title and Body fill the visible notification; DeepLinkURL
// switches the tap action from OPEN_APP to DEEP_LINK; SilentPush sends a
// data-only message that wakes the app without alerting the user.
type PushCampaign struct {
	ApplicationID string            `json:"application_id"`
	EndpointIDs   []string          `json:"endpoint_ids"`
	Title         string            `json:"title"`
	Body          string            `json:"body"`
	DeepLinkURL   string            `json:"deep_link_url,omitempty"`
	ImageURL      string            `json:"image_url,omitempty"`
	CustomData    map[string]string `json:"custom_data,omitempty"`
	SilentPush    bool              `json:"silent_push,omitempty"`
	TimeToLive    int               `json:"time_to_live,omitempty"`
	Priority      string            `json:"priority,omitempty"`
}

func (p PushCampaign) action() pinpointtypes.Action {
	if p.DeepLinkURL != "" {
		return pinpointtypes.ActionDeepLink
	}
	return pinpointtypes.ActionOpenApp
}

// customData returns the campaign payload enriched with the deep link
// and image URL under the keys the mobile clients read them from.
func (p PushCampaign) customData() map[string]any {
	data := make(map[string]any, len(p.CustomData)+2)
	for k, v := range p.CustomData {
		data[k] = v
	}
	if p.DeepLinkURL != "" {
		data["deeplink"] = p.DeepLinkURL
	}
	if p.ImageURL != "" {
		data["image_url"] = p.ImageURL
	}
	return data
}

// apnsPayload builds the raw APNS JSON: default sound, alert with title
// and body (or content-available for silent pushes), mutable-content
// when an image is attached, custom data at the top level.
func (p PushCampaign) apnsPayload() ([]byte, error) {
	aps := map[string]any{"sound": "default"}
	if p.SilentPush {
		aps["content-available"] = 1
	} else {
		aps["alert"] = map[string]any{"title": p.Title, "body": p.Body}
	}
	if p.ImageURL != "" {
		aps["mutable-content"] = 1
	}

	payload := map[string]any{"aps": aps}
	for k, v := range p.customData() {
		payload[k] = v
	}
	return json.Marshal(payload)
}

// gcmPayload builds the raw FCM JSON: custom data plus title and body in
// the data block, a notification block unless the push is silent, and
// optional priority and time_to_live.
func (p PushCampaign) gcmPayload() ([]byte, error) {
	data := p.customData()
	data["title"] = p.Title
	data["body"] = p.Body

	payload := map[string]any{"data": data}
	if !p.SilentPush {
		notification := map[string]any{"title": p.Title, "body": p.Body}
		if p.ImageURL != "" {
			notification["image"] = p.ImageURL
		}
		payload["notification"] = notification
	}
	if p.Priority != "" {
		payload["priority"] = p.Priority
	}
	if p.TimeToLive > 0 {
		payload["time_to_live"] = p.TimeToLive
	}
	return json.Marshal(payload)
}

// PinpointClient adapts the Pinpoint service: campaign-style pushes to
// endpoint sets and device endpoint lookups.
type PinpointClient struct {
	api    PinpointAPI
	logger logger.Logger
}

var _ PinpointAPI = (*pinpoint.Client)(nil)

// NewPinpointClient creates an adapter backed by a real Pinpoint client
// for the given AWS configuration.
func NewPinpointClient(cfg aws.Config, log logger.Logger) *PinpointClient {
	return NewPinpointClientWithAPI(pinpoint.NewFromConfig(cfg), log)
}

// NewPinpointClientWithAPI creates an adapter around an existing client,
// typically a stub under test.
func NewPinpointClientWithAPI(api PinpointAPI, log logger.Logger) *PinpointClient {
	if log == nil {
		log = logger.Discard
	}
	return &PinpointClient{api: api, logger: log}
}

// SendCampaign delivers the campaign to every endpoint and returns the
// per-endpoint delivery results keyed the way Pinpoint reports them.
func (c *PinpointClient) SendCampaign(ctx context.Context, campaign PushCampaign) (notifier.Result, error) {
	c.logger.Debug("sending push campaign",
		"application_id", campaign.ApplicationID,
		"endpoints", len(campaign.EndpointIDs),
		"silent", campaign.SilentPush)

	apnsJSON, err := campaign.apnsPayload()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidArgument, "push payload is not JSON-serializable").
			WithOp("SendPinpointPushNotification").WithProvider(ProviderName)
	}
	gcmJSON, err := campaign.gcmPayload()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidArgument, "push payload is not JSON-serializable").
			WithOp("SendPinpointPushNotification").WithProvider(ProviderName)
	}

	action := campaign.action()

	apns := &pinpointtypes.APNSMessage{Action: action, RawContent: aws.String(string(apnsJSON))}
	gcm := &pinpointtypes.GCMMessage{Action: action, RawContent: aws.String(string(gcmJSON))}
	fallback := &pinpointtypes.DefaultPushNotificationMessage{
		Action: action,
		Title:  aws.String(campaign.Title),
		Body:   aws.String(campaign.Body),
	}
	if campaign.DeepLinkURL != "" {
		apns.Url = aws.String(campaign.DeepLinkURL)
		gcm.Url = aws.String(campaign.DeepLinkURL)
		fallback.Url = aws.String(campaign.DeepLinkURL)
	}

	endpoints := make(map[string]pinpointtypes.EndpointSendConfiguration, len(campaign.EndpointIDs))
	for _, id := range campaign.EndpointIDs {
		endpoints[id] = pinpointtypes.EndpointSendConfiguration{}
	}

	out, err := c.api.SendMessages(ctx, &pinpoint.SendMessagesInput{
		ApplicationId: aws.String(campaign.ApplicationID),
		MessageRequest: &pinpointtypes.MessageRequest{
			Endpoints: endpoints,
			MessageConfiguration: &pinpointtypes.DirectMessageConfiguration{
				APNSMessage:                    apns,
				GCMMessage:                     gcm,
				DefaultPushNotificationMessage: fallback,
			},
		},
	})
	if err != nil {
		return nil, serviceError(err, "SendPinpointPushNotification", "pinpoint send messages failed")
	}
	return messageResponseResult(out.MessageResponse), nil
}

// GetEndpoint fetches a single device endpoint.
func (c *PinpointClient) GetEndpoint(ctx context.Context, applicationID, endpointID string) (notifier.Result, error) {
	out, err := c.api.GetEndpoint(ctx, &pinpoint.GetEndpointInput{
		ApplicationId: aws.String(applicationID),
		EndpointId:    aws.String(endpointID),
	})
	if err != nil {
		return nil, serviceError(err, "GetPinpointEndpoint", "pinpoint get endpoint failed")
	}
	return endpointResult(out.EndpointResponse), nil
}

// GetUserEndpoints lists every endpoint registered for a user.
func (c *PinpointClient) GetUserEndpoints(ctx context.Context, applicationID, userID string) (notifier.Result, error) {
	out, err := c.api.GetUserEndpoints(ctx, &pinpoint.GetUserEndpointsInput{
		ApplicationId: aws.String(applicationID),
		UserId:        aws.String(userID),
	})
	if err != nil {
		return nil, serviceError(err, "GetPinpointUserEndpoints", "pinpoint get user endpoints failed")
	}

	items := make([]any, 0)
	if out.EndpointsResponse != nil {
		for _, er := range out.EndpointsResponse.Item {
			items = append(items, map[string]any(endpointResult(&er)))
		}
	}
	return notifier.Result{"Item": items}, nil
}

func messageResponseResult(mr *pinpointtypes.MessageResponse) notifier.Result {
	result := notifier.Result{}
	if mr == nil {
		return result
	}
	result["ApplicationId"] = aws.ToString(mr.ApplicationId)
	if mr.RequestId != nil {
		result["RequestId"] = aws.ToString(mr.RequestId)
	}

	endpointResults := make(map[string]any, len(mr.EndpointResult))
	for id, er := range mr.EndpointResult {
		entry := map[string]any{"DeliveryStatus": string(er.DeliveryStatus)}
		if er.MessageId != nil {
			entry["MessageId"] = aws.ToString(er.MessageId)
		}
		if er.StatusMessage != nil {
			entry["StatusMessage"] = aws.ToString(er.StatusMessage)
		}
		endpointResults[id] = entry
	}
	result["EndpointResult"] = endpointResults
	return result
}

func endpointResult(er *pinpointtypes.EndpointResponse) notifier.Result {
	result := notifier.Result{}
	if er == nil {
		return result
	}
	result["Id"] = aws.ToString(er.Id)
	result["Address"] = aws.ToString(er.Address)
	result["ChannelType"] = string(er.ChannelType)
	if er.EndpointStatus != nil {
		result["EndpointStatus"] = aws.ToString(er.EndpointStatus)
	}
	if er.OptOut != nil {
		result["OptOut"] = aws.ToString(er.OptOut)
	}
	if len(er.Attributes) > 0 {
		attributes := make(map[string]any, len(er.Attributes))
		for k, v := range er.Attributes {
			attributes[k] = v
		}
		result["Attributes"] = attributes
	}
	if er.User != nil && er.User.UserId != nil {
		result["User"] = map[string]any{"UserId": aws.ToString(er.User.UserId)}
	}
	return result
}
