package clients

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/notihub/pkg/errors"
	"github.com/kart-io/notihub/pkg/notifier"
)

type stubSNS struct {
	publish                func(*sns.PublishInput) (*sns.PublishOutput, error)
	createTopic            func(*sns.CreateTopicInput) (*sns.CreateTopicOutput, error)
	getTopicAttributes     func(*sns.GetTopicAttributesInput) (*sns.GetTopicAttributesOutput, error)
	deleteTopic            func(*sns.DeleteTopicInput) (*sns.DeleteTopicOutput, error)
	subscribe              func(*sns.SubscribeInput) (*sns.SubscribeOutput, error)
	createPlatformEndpoint func(*sns.CreatePlatformEndpointInput) (*sns.CreatePlatformEndpointOutput, error)
	setEndpointAttributes  func(*sns.SetEndpointAttributesInput) (*sns.SetEndpointAttributesOutput, error)
	deleteEndpoint         func(*sns.DeleteEndpointInput) (*sns.DeleteEndpointOutput, error)
}

func (s *stubSNS) Publish(_ context.Context, in *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	return s.publish(in)
}

func (s *stubSNS) CreateTopic(_ context.Context, in *sns.CreateTopicInput, _ ...func(*sns.Options)) (*sns.CreateTopicOutput, error) {
	return s.createTopic(in)
}

func (s *stubSNS) GetTopicAttributes(_ context.Context, in *sns.GetTopicAttributesInput, _ ...func(*sns.Options)) (*sns.GetTopicAttributesOutput, error) {
	return s.getTopicAttributes(in)
}

func (s *stubSNS) DeleteTopic(_ context.Context, in *sns.DeleteTopicInput, _ ...func(*sns.Options)) (*sns.DeleteTopicOutput, error) {
	return s.deleteTopic(in)
}

func (s *stubSNS) Subscribe(_ context.Context, in *sns.SubscribeInput, _ ...func(*sns.Options)) (*sns.SubscribeOutput, error) {
	return s.subscribe(in)
}

func (s *stubSNS) CreatePlatformEndpoint(_ context.Context, in *sns.CreatePlatformEndpointInput, _ ...func(*sns.Options)) (*sns.CreatePlatformEndpointOutput, error) {
	return s.createPlatformEndpoint(in)
}

func (s *stubSNS) SetEndpointAttributes(_ context.Context, in *sns.SetEndpointAttributesInput, _ ...func(*sns.Options)) (*sns.SetEndpointAttributesOutput, error) {
	return s.setEndpointAttributes(in)
}

func (s *stubSNS) DeleteEndpoint(_ context.Context, in *sns.DeleteEndpointInput, _ ...func(*sns.Options)) (*sns.DeleteEndpointOutput, error) {
	return s.deleteEndpoint(in)
}

func TestSNSClient_PublishToPhone(t *testing.T) {
	var captured *sns.PublishInput
	stub := &stubSNS{
		publish: func(in *sns.PublishInput) (*sns.PublishOutput, error) {
			captured = in
			return &sns.PublishOutput{MessageId: aws.String("msg-123")}, nil
		},
	}
	client := NewSNSClientWithAPI(stub, nil)

	id, err := client.PublishToPhone(context.Background(), "+15550001111", "hello", notifier.Attributes{
		"AWS.SNS.SMS.SMSType": "Transactional",
	})

	require.NoError(t, err)
	assert.Equal(t, "msg-123", id)
	require.NotNil(t, captured)
	assert.Equal(t, "+15550001111", aws.ToString(captured.PhoneNumber))
	assert.Equal(t, "hello", aws.ToString(captured.Message))
	assert.Nil(t, captured.TopicArn)
	assert.Nil(t, captured.TargetArn)

	attr, ok := captured.MessageAttributes["AWS.SNS.SMS.SMSType"]
	require.True(t, ok)
	assert.Equal(t, "String", aws.ToString(attr.DataType))
	assert.Equal(t, "Transactional", aws.ToString(attr.StringValue))
}

func TestSNSClient_PublishToPhone_NoAttributes(t *testing.T) {
	var captured *sns.PublishInput
	stub := &stubSNS{
		publish: func(in *sns.PublishInput) (*sns.PublishOutput, error) {
			captured = in
			return &sns.PublishOutput{MessageId: aws.String("msg-123")}, nil
		},
	}
	client := NewSNSClientWithAPI(stub, nil)

	_, err := client.PublishToPhone(context.Background(), "+15550001111", "hello", nil)

	require.NoError(t, err)
	assert.Nil(t, captured.MessageAttributes)
}

func TestSNSClient_PublishToPhone_ServiceError(t *testing.T) {
	cause := &snstypes.InvalidParameterException{Message: aws.String("bad number")}
	stub := &stubSNS{
		publish: func(*sns.PublishInput) (*sns.PublishOutput, error) {
			return nil, cause
		},
	}
	client := NewSNSClientWithAPI(stub, nil)

	id, err := client.PublishToPhone(context.Background(), "+15550001111", "hello", nil)

	require.Error(t, err)
	assert.Empty(t, id)
	assert.True(t, errors.IsServiceError(err))
	var apiErr *snstypes.InvalidParameterException
	assert.ErrorAs(t, err, &apiErr, "the SDK error must stay reachable as the cause")
}

func TestSNSClient_PublishToTarget(t *testing.T) {
	var captured *sns.PublishInput
	stub := &stubSNS{
		publish: func(in *sns.PublishInput) (*sns.PublishOutput, error) {
			captured = in
			return &sns.PublishOutput{MessageId: aws.String("push-1")}, nil
		},
	}
	client := NewSNSClientWithAPI(stub, nil)

	id, err := client.PublishToTarget(context.Background(), "endpoint-123", "wake up", nil)

	require.NoError(t, err)
	assert.Equal(t, "push-1", id)
	assert.Equal(t, "endpoint-123", aws.ToString(captured.TargetArn))
	assert.Nil(t, captured.PhoneNumber)
}

func TestSNSClient_PublishToTopic(t *testing.T) {
	var captured *sns.PublishInput
	stub := &stubSNS{
		publish: func(in *sns.PublishInput) (*sns.PublishOutput, error) {
			captured = in
			return &sns.PublishOutput{MessageId: aws.String("topic-msg-1")}, nil
		},
	}
	client := NewSNSClientWithAPI(stub, nil)

	id, err := client.PublishToTopic(context.Background(), "arn:topic", "news", "Daily update", nil)

	require.NoError(t, err)
	assert.Equal(t, "topic-msg-1", id)
	assert.Equal(t, "arn:topic", aws.ToString(captured.TopicArn))
	assert.Equal(t, "Daily update", aws.ToString(captured.Subject))
}

func TestSNSClient_PublishToTopic_NoSubject(t *testing.T) {
	var captured *sns.PublishInput
	stub := &stubSNS{
		publish: func(in *sns.PublishInput) (*sns.PublishOutput, error) {
			captured = in
			return &sns.PublishOutput{MessageId: aws.String("topic-msg-1")}, nil
		},
	}
	client := NewSNSClientWithAPI(stub, nil)

	_, err := client.PublishToTopic(context.Background(), "arn:topic", "news", "", nil)

	require.NoError(t, err)
	assert.Nil(t, captured.Subject)
}

func TestSNSClient_CreateTopic(t *testing.T) {
	stub := &stubSNS{
		createTopic: func(in *sns.CreateTopicInput) (*sns.CreateTopicOutput, error) {
			assert.Equal(t, "orders", aws.ToString(in.Name))
			return &sns.CreateTopicOutput{TopicArn: aws.String("arn:aws:sns:us-east-1:1:orders")}, nil
		},
	}
	client := NewSNSClientWithAPI(stub, nil)

	result, err := client.CreateTopic(context.Background(), "orders")

	require.NoError(t, err)
	assert.Equal(t, "arn:aws:sns:us-east-1:1:orders", result.String("TopicArn"))
}

func TestSNSClient_GetTopic(t *testing.T) {
	stub := &stubSNS{
		getTopicAttributes: func(in *sns.GetTopicAttributesInput) (*sns.GetTopicAttributesOutput, error) {
			assert.Equal(t, "arn:topic", aws.ToString(in.TopicArn))
			return &sns.GetTopicAttributesOutput{
				Attributes: map[string]string{"TopicArn": "arn:topic", "DisplayName": "Orders"},
			}, nil
		},
	}
	client := NewSNSClientWithAPI(stub, nil)

	result, err := client.GetTopic(context.Background(), "arn:topic")

	require.NoError(t, err)
	attributes, ok := result["Attributes"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "arn:topic", attributes["TopicArn"])
}

func TestSNSClient_DeleteTopic_NotFound(t *testing.T) {
	stub := &stubSNS{
		deleteTopic: func(*sns.DeleteTopicInput) (*sns.DeleteTopicOutput, error) {
			return nil, &snstypes.NotFoundException{Message: aws.String("Topic does not exist")}
		},
	}
	client := NewSNSClientWithAPI(stub, nil)

	err := client.DeleteTopic(context.Background(), "arn:gone")

	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestSNSClient_Subscribe(t *testing.T) {
	stub := &stubSNS{
		subscribe: func(in *sns.SubscribeInput) (*sns.SubscribeOutput, error) {
			assert.Equal(t, "arn:topic", aws.ToString(in.TopicArn))
			assert.Equal(t, "email", aws.ToString(in.Protocol))
			assert.Equal(t, "user@example.com", aws.ToString(in.Endpoint))
			return &sns.SubscribeOutput{SubscriptionArn: aws.String("pending confirmation")}, nil
		},
	}
	client := NewSNSClientWithAPI(stub, nil)

	result, err := client.Subscribe(context.Background(), "arn:topic", "email", "user@example.com")

	require.NoError(t, err)
	assert.Equal(t, "pending confirmation", result.String("SubscriptionArn"))
}

func TestSNSClient_CreatePlatformEndpoint(t *testing.T) {
	var captured *sns.CreatePlatformEndpointInput
	stub := &stubSNS{
		createPlatformEndpoint: func(in *sns.CreatePlatformEndpointInput) (*sns.CreatePlatformEndpointOutput, error) {
			captured = in
			return &sns.CreatePlatformEndpointOutput{EndpointArn: aws.String("arn:endpoint")}, nil
		},
	}
	client := NewSNSClientWithAPI(stub, nil)

	result, err := client.CreatePlatformEndpoint(context.Background(), "arn:app", "device-token", "user-42")

	require.NoError(t, err)
	assert.Equal(t, "arn:endpoint", result.String("EndpointArn"))
	assert.Equal(t, "arn:app", aws.ToString(captured.PlatformApplicationArn))
	assert.Equal(t, "device-token", aws.ToString(captured.Token))
	assert.Equal(t, "user-42", aws.ToString(captured.CustomUserData))
}

func TestSNSClient_CreatePlatformEndpoint_NoUserData(t *testing.T) {
	var captured *sns.CreatePlatformEndpointInput
	stub := &stubSNS{
		createPlatformEndpoint: func(in *sns.CreatePlatformEndpointInput) (*sns.CreatePlatformEndpointOutput, error) {
			captured = in
			return &sns.CreatePlatformEndpointOutput{EndpointArn: aws.String("arn:endpoint")}, nil
		},
	}
	client := NewSNSClientWithAPI(stub, nil)

	_, err := client.CreatePlatformEndpoint(context.Background(), "arn:app", "device-token", "")

	require.NoError(t, err)
	assert.Nil(t, captured.CustomUserData)
}

func TestSNSClient_SetEndpointAttributes(t *testing.T) {
	stub := &stubSNS{
		setEndpointAttributes: func(in *sns.SetEndpointAttributesInput) (*sns.SetEndpointAttributesOutput, error) {
			assert.Equal(t, "arn:endpoint", aws.ToString(in.EndpointArn))
			assert.Equal(t, map[string]string{"Enabled": "true"}, in.Attributes)
			return &sns.SetEndpointAttributesOutput{}, nil
		},
	}
	client := NewSNSClientWithAPI(stub, nil)

	err := client.SetEndpointAttributes(context.Background(), "arn:endpoint", map[string]string{"Enabled": "true"})

	assert.NoError(t, err)
}

func TestSNSClient_DeleteEndpoint(t *testing.T) {
	called := false
	stub := &stubSNS{
		deleteEndpoint: func(in *sns.DeleteEndpointInput) (*sns.DeleteEndpointOutput, error) {
			called = true
			assert.Equal(t, "arn:endpoint", aws.ToString(in.EndpointArn))
			return &sns.DeleteEndpointOutput{}, nil
		},
	}
	client := NewSNSClientWithAPI(stub, nil)

	require.NoError(t, client.DeleteEndpoint(context.Background(), "arn:endpoint"))
	assert.True(t, called)
}
