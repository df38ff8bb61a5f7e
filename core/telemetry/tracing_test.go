package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartSpanRecords(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	th := NewTracingHandler(tp)

	ctx, span := th.StartSpan(context.Background(), "panel.Redraw")
	require.NotNil(t, ctx)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, "panel.Redraw", ended[0].Name())
}

func TestStartSpanNilHandler(t *testing.T) {
	var th *TracingHandler

	ctx, span := th.StartSpan(nil, "invoke.Dispatch")
	require.NotNil(t, ctx)
	require.NotNil(t, span)
	require.False(t, span.SpanContext().IsValid())
	span.End()
}

func TestNewTracingHandlerNilProvider(t *testing.T) {
	th := NewTracingHandler(nil)

	_, span := th.StartSpan(context.Background(), "noop")
	require.False(t, span.IsRecording())
	span.End()
}
