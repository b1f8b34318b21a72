package clients

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"

	"github.com/kart-io/notihub/pkg/logger"
	"github.com/kart-io/notihub/pkg/notifier"
)

// SNSAPI is the slice of the SNS client the adapter uses.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
	CreateTopic(ctx context.Context, params *sns.CreateTopicInput, optFns ...func(*sns.Options)) (*sns.CreateTopicOutput, error)
	GetTopicAttributes(ctx context.Context, params *sns.GetTopicAttributesInput, optFns ...func(*sns.Options)) (*sns.GetTopicAttributesOutput, error)
	DeleteTopic(ctx context.Context, params *sns.DeleteTopicInput, optFns ...func(*sns.Options)) (*sns.DeleteTopicOutput, error)
	Subscribe(ctx context.Context, params *sns.SubscribeInput, optFns ...func(*sns.Options)) (*sns.SubscribeOutput, error)
	CreatePlatformEndpoint(ctx context.Context, params *sns.CreatePlatformEndpointInput, optFns ...func(*sns.Options)) (*sns.CreatePlatformEndpointOutput, error)
	SetEndpointAttributes(ctx context.Context, params *sns.SetEndpointAttributesInput, optFns ...func(*sns.Options)) (*sns.SetEndpointAttributesOutput, error)
	DeleteEndpoint(ctx context.Context, params *sns.DeleteEndpointInput, optFns ...func(*sns.Options)) (*sns.DeleteEndpointOutput, error)
}

// SNSClient adapts the SNS service: direct publishes to phone numbers
// and platform endpoints, topic lifecycle, and device endpoint
// lifecycle.
type SNSClient struct {
	api    SNSAPI
	logger logger.Logger
}

var _ SNSAPI = (*sns.Client)(nil)

// NewSNSClient creates an adapter backed by a real SNS client for the
// given AWS configuration.
func NewSNSClient(cfg aws.Config, log logger.Logger) *SNSClient {
	return NewSNSClientWithAPI(sns.NewFromConfig(cfg), log)
}

// NewSNSClientWithAPI creates an adapter around an existing client,
// typically a stub under test.
func NewSNSClientWithAPI(api SNSAPI, log logger.Logger) *SNSClient {
	if log == nil {
		log = logger.Discard
	}
	return &SNSClient{api: api, logger: log}
}

// PublishToPhone sends a direct SMS publish. Attributes pass through as
// String-typed SNS message attributes.
func (c *SNSClient) PublishToPhone(ctx context.Context, phoneNumber, message string, attrs notifier.Attributes) (string, error) {
	c.logger.Debug("publishing SMS", "attributes", len(attrs))

	out, err := c.api.Publish(ctx, &sns.PublishInput{
		PhoneNumber:       aws.String(phoneNumber),
		Message:           aws.String(message),
		MessageAttributes: messageAttributes(attrs),
	})
	if err != nil {
		return "", serviceError(err, "SendSMSNotification", "sns publish to phone number failed")
	}
	return aws.ToString(out.MessageId), nil
}

// PublishToTarget sends a push publish to a platform endpoint ARN.
func (c *SNSClient) PublishToTarget(ctx context.Context, targetARN, message string, attrs notifier.Attributes) (string, error) {
	c.logger.Debug("publishing to target", "target_arn", targetARN)

	out, err := c.api.Publish(ctx, &sns.PublishInput{
		TargetArn:         aws.String(targetARN),
		Message:           aws.String(message),
		MessageAttributes: messageAttributes(attrs),
	})
	if err != nil {
		return "", serviceError(err, "SendPushNotification", "sns publish to target failed")
	}
	return aws.ToString(out.MessageId), nil
}

// PublishToTopic fans a message out to every subscriber of a topic. The
// subject is optional and only applies to email subscribers.
func (c *SNSClient) PublishToTopic(ctx context.Context, topicARN, message, subject string, attrs notifier.Attributes) (string, error) {
	c.logger.Debug("publishing to topic", "topic_arn", topicARN)

	input := &sns.PublishInput{
		TopicArn:          aws.String(topicARN),
		Message:           aws.String(message),
		MessageAttributes: messageAttributes(attrs),
	}
	if subject != "" {
		input.Subject = aws.String(subject)
	}

	out, err := c.api.Publish(ctx, input)
	if err != nil {
		return "", serviceError(err, "SendTopicNotification", "sns publish to topic failed")
	}
	return aws.ToString(out.MessageId), nil
}

// CreateTopic creates a topic and returns the provider response.
func (c *SNSClient) CreateTopic(ctx context.Context, name string) (notifier.Result, error) {
	c.logger.Debug("creating topic", "name", name)

	out, err := c.api.CreateTopic(ctx, &sns.CreateTopicInput{Name: aws.String(name)})
	if err != nil {
		return nil, serviceError(err, "CreateTopic", "sns create topic failed")
	}
	return notifier.Result{"TopicArn": aws.ToString(out.TopicArn)}, nil
}

// GetTopic fetches the attributes of an existing topic.
func (c *SNSClient) GetTopic(ctx context.Context, topicARN string) (notifier.Result, error) {
	out, err := c.api.GetTopicAttributes(ctx, &sns.GetTopicAttributesInput{TopicArn: aws.String(topicARN)})
	if err != nil {
		return nil, serviceError(err, "GetTopic", "sns get topic attributes failed")
	}

	attributes := make(map[string]any, len(out.Attributes))
	for k, v := range out.Attributes {
		attributes[k] = v
	}
	return notifier.Result{"Attributes": attributes}, nil
}

// DeleteTopic removes a topic.
func (c *SNSClient) DeleteTopic(ctx context.Context, topicARN string) error {
	c.logger.Debug("deleting topic", "topic_arn", topicARN)

	if _, err := c.api.DeleteTopic(ctx, &sns.DeleteTopicInput{TopicArn: aws.String(topicARN)}); err != nil {
		return serviceError(err, "DeleteTopic", "sns delete topic failed")
	}
	return nil
}

// Subscribe subscribes an endpoint to a topic under the given protocol.
func (c *SNSClient) Subscribe(ctx context.Context, topicARN, protocol, endpoint string) (notifier.Result, error) {
	c.logger.Debug("subscribing to topic", "topic_arn", topicARN, "protocol", protocol)

	out, err := c.api.Subscribe(ctx, &sns.SubscribeInput{
		TopicArn: aws.String(topicARN),
		Protocol: aws.String(protocol),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, serviceError(err, "SubscribeToTopic", "sns subscribe failed")
	}
	return notifier.Result{"SubscriptionArn": aws.ToString(out.SubscriptionArn)}, nil
}

// CreatePlatformEndpoint registers a device token with a platform
// application and returns the endpoint ARN.
func (c *SNSClient) CreatePlatformEndpoint(ctx context.Context, platformAppARN, token, customUserData string) (notifier.Result, error) {
	c.logger.Debug("creating platform endpoint", "platform_application_arn", platformAppARN)

	input := &sns.CreatePlatformEndpointInput{
		PlatformApplicationArn: aws.String(platformAppARN),
		Token:                  aws.String(token),
	}
	if customUserData != "" {
		input.CustomUserData = aws.String(customUserData)
	}

	out, err := c.api.CreatePlatformEndpoint(ctx, input)
	if err != nil {
		return nil, serviceError(err, "CreateDeviceEndpoint", "sns create platform endpoint failed")
	}
	return notifier.Result{"EndpointArn": aws.ToString(out.EndpointArn)}, nil
}

// SetEndpointAttributes updates the attributes of a device endpoint.
func (c *SNSClient) SetEndpointAttributes(ctx context.Context, endpointARN string, attributes map[string]string) error {
	c.logger.Debug("updating endpoint attributes", "endpoint_arn", endpointARN)

	_, err := c.api.SetEndpointAttributes(ctx, &sns.SetEndpointAttributesInput{
		EndpointArn: aws.String(endpointARN),
		Attributes:  attributes,
	})
	if err != nil {
		return serviceError(err, "UpdateDeviceEndpoint", "sns set endpoint attributes failed")
	}
	return nil
}

// DeleteEndpoint removes a device endpoint.
func (c *SNSClient) DeleteEndpoint(ctx context.Context, endpointARN string) error {
	c.logger.Debug("deleting endpoint", "endpoint_arn", endpointARN)

	if _, err := c.api.DeleteEndpoint(ctx, &sns.DeleteEndpointInput{EndpointArn: aws.String(endpointARN)}); err != nil {
		return serviceError(err, "DeleteDeviceEndpoint", "sns delete endpoint failed")
	}
	return nil
}

// messageAttributes converts the open attribute bag into String-typed
// SNS message attributes. Keys are not inspected.
func messageAttributes(attrs notifier.Attributes) map[string]snstypes.MessageAttributeValue {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]snstypes.MessageAttributeValue, len(attrs))
	for k, v := range attrs {
		out[k] = snstypes.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(v),
		}
	}
	return out
}
