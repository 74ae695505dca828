package instrument

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracingSink opens a span per attempt and records the outcome on it.
type tracingSink struct {
	tracer trace.Tracer
	desc   Descriptor

	// span covers the current attempt; attempts are sequential.
	span trace.Span
}

func (s *tracingSink) OnStart(ctx context.Context) context.Context {
	attrs := []attribute.KeyValue{
		attribute.String("invoke.operation", s.desc.Operation),
	}
	if s.desc.Category != "" {
		attrs = append(attrs, attribute.String("invoke.category", s.desc.Category))
	}

	ctx, span := s.tracer.Start(ctx, s.desc.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	s.span = span
	return ctx
}

func (s *tracingSink) OnSuccess(ctx context.Context, result any) {
	if s.span == nil {
		return
	}
	s.span.SetStatus(codes.Ok, "")
	s.span.End()
	s.span = nil
}

func (s *tracingSink) OnFailure(ctx context.Context, err error) {
	if s.span == nil {
		return
	}
	s.span.SetStatus(codes.Error, err.Error())
	s.span.RecordError(err)
	s.span.End()
	s.span = nil
}
