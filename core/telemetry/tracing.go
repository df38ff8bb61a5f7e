package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "github.com/anoideaopen/inspector"

// TracingHandler wraps the panel's tracer. A nil handler or one built without
// a provider emits no spans, so callers never have to branch on telemetry
// being configured.
type TracingHandler struct {
	tracer trace.Tracer
}

// NewTracingHandler creates a handler over the given provider. A nil provider
// yields a noop handler.
func NewTracingHandler(tp trace.TracerProvider) *TracingHandler {
	if tp == nil {
		tp = noop.NewTracerProvider()
	}

	return &TracingHandler{tracer: tp.Tracer(tracerName)}
}

// StartSpan starts a span with the given name. It is safe on a nil handler.
func (th *TracingHandler) StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}

	if th == nil || th.tracer == nil {
		return noop.NewTracerProvider().Tracer(tracerName).Start(ctx, name, opts...)
	}

	return th.tracer.Start(ctx, name, opts...)
}
