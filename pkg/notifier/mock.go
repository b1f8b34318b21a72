package notifier

import (
	"context"
	"sync"
	"time"
)

// Mock is a recording Notifier implementation for testing purposes.
// It captures every call per channel and returns a configurable
// identifier or failure.
type Mock struct {
	name       string
	identifier string
	err        error
	delay      time.Duration

	mu         sync.Mutex
	smsCalls   []SMSCall
	emailCalls []EmailMessage
	pushCalls  []PushCall
}

// SMSCall records one SendSMSNotification invocation.
type SMSCall struct {
	PhoneNumber string
	Message     string
	Attributes  Attributes
}

// PushCall records one SendPushNotification invocation.
type PushCall struct {
	Device     string
	Message    string
	Attributes Attributes
}

var _ Notifier = (*Mock)(nil)

// NewMock creates a new mock notifier.
func NewMock(name string) *Mock {
	return &Mock{
		name:       name,
		identifier: "mock-message-id",
	}
}

// WithIdentifier sets the identifier returned by successful sends.
func (m *Mock) WithIdentifier(id string) *Mock {
	m.identifier = id
	return m
}

// WithFailure makes every send fail with err.
func (m *Mock) WithFailure(err error) *Mock {
	m.err = err
	return m
}

// WithDelay sets artificial delay for testing.
func (m *Mock) WithDelay(delay time.Duration) *Mock {
	m.delay = delay
	return m
}

// Name returns the notifier name.
func (m *Mock) Name() string {
	return m.name
}

// SendSMSNotification records the call and returns the configured result.
func (m *Mock) SendSMSNotification(_ context.Context, phoneNumber, message string, attrs Attributes) (string, error) {
	m.wait()
	m.mu.Lock()
	m.smsCalls = append(m.smsCalls, SMSCall{PhoneNumber: phoneNumber, Message: message, Attributes: attrs})
	m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	return m.identifier, nil
}

// SendEmailNotification records the call and returns the configured result.
func (m *Mock) SendEmailNotification(_ context.Context, email EmailMessage) (string, error) {
	m.wait()
	m.mu.Lock()
	m.emailCalls = append(m.emailCalls, email)
	m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	return m.identifier, nil
}

// SendPushNotification records the call and returns the configured result.
func (m *Mock) SendPushNotification(_ context.Context, device, message string, attrs Attributes) (string, error) {
	m.wait()
	m.mu.Lock()
	m.pushCalls = append(m.pushCalls, PushCall{Device: device, Message: message, Attributes: attrs})
	m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	return m.identifier, nil
}

func (m *Mock) wait() {
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
}

// SMSCalls returns the recorded SMS calls for testing assertions.
func (m *Mock) SMSCalls() []SMSCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SMSCall(nil), m.smsCalls...)
}

// EmailCalls returns the recorded email calls for testing assertions.
func (m *Mock) EmailCalls() []EmailMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]EmailMessage(nil), m.emailCalls...)
}

// PushCalls returns the recorded push calls for testing assertions.
func (m *Mock) PushCalls() []PushCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]PushCall(nil), m.pushCalls...)
}

// GetSendCount returns the number of sends performed across all channels.
func (m *Mock) GetSendCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.smsCalls) + len(m.emailCalls) + len(m.pushCalls)
}

// Reset clears the recorded calls.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.smsCalls = nil
	m.emailCalls = nil
	m.pushCalls = nil
}
