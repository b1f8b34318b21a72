package aws

import (
	"context"

	"github.com/kart-io/notihub/pkg/notifier"
)

// channelTopic labels topic fan-out publishes in logs and telemetry. It
// is not part of the capability contract channels.
const channelTopic = "topic"

// CreateTopic creates an SNS topic and returns its ARN under "TopicArn".
// Creating an existing topic is idempotent on the AWS side.
func (n *Notifier) CreateTopic(ctx context.Context, name string) (notifier.Result, error) {
	if name == "" {
		return nil, requiredArg("CreateTopic", "topic name is required")
	}

	var result notifier.Result
	err := n.traceOp(ctx, "CreateTopic", func(ctx context.Context) error {
		var err error
		result, err = n.messaging.CreateTopic(ctx, name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetTopic fetches the attributes of a topic under "Attributes".
func (n *Notifier) GetTopic(ctx context.Context, topicARN string) (notifier.Result, error) {
	if topicARN == "" {
		return nil, requiredArg("GetTopic", "topic ARN is required")
	}

	var result notifier.Result
	err := n.traceOp(ctx, "GetTopic", func(ctx context.Context) error {
		var err error
		result, err = n.messaging.GetTopic(ctx, topicARN)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteTopic removes a topic and all of its subscriptions.
func (n *Notifier) DeleteTopic(ctx context.Context, topicARN string) error {
	if topicARN == "" {
		return requiredArg("DeleteTopic", "topic ARN is required")
	}

	return n.traceOp(ctx, "DeleteTopic", func(ctx context.Context) error {
		return n.messaging.DeleteTopic(ctx, topicARN)
	})
}

// SubscribeToTopic subscribes an endpoint to a topic and returns the
// subscription ARN under "SubscriptionArn". For protocols that require
// confirmation the ARN reads "pending confirmation".
func (n *Notifier) SubscribeToTopic(ctx context.Context, topicARN, protocol, endpoint string) (notifier.Result, error) {
	if topicARN == "" {
		return nil, requiredArg("SubscribeToTopic", "topic ARN is required")
	}
	if protocol == "" {
		return nil, requiredArg("SubscribeToTopic", "subscription protocol is required")
	}
	if endpoint == "" {
		return nil, requiredArg("SubscribeToTopic", "subscription endpoint is required")
	}

	var result notifier.Result
	err := n.traceOp(ctx, "SubscribeToTopic", func(ctx context.Context) error {
		var err error
		result, err = n.messaging.Subscribe(ctx, topicARN, protocol, endpoint)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SendTopicNotification publishes a message to every subscriber of the
// topic and returns the message ID. Subject is optional and only
// meaningful for email subscribers.
func (n *Notifier) SendTopicNotification(ctx context.Context, topicARN, message, subject string, attrs notifier.Attributes) (string, error) {
	if topicARN == "" {
		return "", requiredArg("SendTopicNotification", "topic ARN is required")
	}
	if message == "" {
		return "", requiredArg("SendTopicNotification", "message is required")
	}

	return n.send(ctx, channelTopic, func(ctx context.Context) (string, error) {
		return n.messaging.PublishToTopic(ctx, topicARN, message, subject, attrs)
	})
}

// CreateDeviceEndpoint registers a device token with an SNS platform
// application and returns the endpoint ARN under "EndpointArn". The ARN
// is the device argument SendPushNotification expects.
func (n *Notifier) CreateDeviceEndpoint(ctx context.Context, platformAppARN, deviceToken, customUserData string) (notifier.Result, error) {
	if platformAppARN == "" {
		return nil, requiredArg("CreateDeviceEndpoint", "platform application ARN is required")
	}
	if deviceToken == "" {
		return nil, requiredArg("CreateDeviceEndpoint", "device token is required")
	}

	var result notifier.Result
	err := n.traceOp(ctx, "CreateDeviceEndpoint", func(ctx context.Context) error {
		var err error
		result, err = n.messaging.CreatePlatformEndpoint(ctx, platformAppARN, deviceToken, customUserData)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateDeviceEndpoint overwrites attributes of a device endpoint, for
// example {"Token": "...", "Enabled": "true"}.
func (n *Notifier) UpdateDeviceEndpoint(ctx context.Context, endpointARN string, attributes map[string]string) error {
	if endpointARN == "" {
		return requiredArg("UpdateDeviceEndpoint", "endpoint ARN is required")
	}

	return n.traceOp(ctx, "UpdateDeviceEndpoint", func(ctx context.Context) error {
		return n.messaging.SetEndpointAttributes(ctx, endpointARN, attributes)
	})
}

// DeleteDeviceEndpoint removes a device endpoint.
func (n *Notifier) DeleteDeviceEndpoint(ctx context.Context, endpointARN string) error {
	if endpointARN == "" {
		return requiredArg("DeleteDeviceEndpoint", "endpoint ARN is required")
	}

	return n.traceOp(ctx, "DeleteDeviceEndpoint", func(ctx context.Context) error {
		return n.messaging.DeleteEndpoint(ctx, endpointARN)
	})
}
