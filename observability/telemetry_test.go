package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTelemetryProviderNilConfig(t *testing.T) {
	tp, err := NewTelemetryProvider(nil)
	require.NoError(t, err)
	require.NotNil(t, tp)
	assert.NotNil(t, tp.GetTracer())
	assert.NotNil(t, tp.GetMeter())
}

func TestDisabledProviderIsSafe(t *testing.T) {
	tp := Disabled()

	ctx, span := tp.TraceSend(context.Background(), "aws", "sms")
	require.NotNil(t, ctx)
	require.NotNil(t, span)

	tp.SetSpanError(span, assert.AnError)
	tp.SetSpanSuccess(span)
	span.End()

	tp.RecordSendSuccess(ctx, "aws", "sms", 5*time.Millisecond)
	tp.RecordSendFailure(ctx, "aws", "sms", 5*time.Millisecond, "SERVICE_ERROR")

	assert.NoError(t, tp.Shutdown(context.Background()))
}

func TestTraceOperationReturnsUsableSpan(t *testing.T) {
	tp := Disabled()

	ctx, span := tp.TraceOperation(context.Background(), "notihub.CreateTopic")
	require.NotNil(t, ctx)
	require.NotNil(t, span)
	span.End()
}
