package mocks

import (
	"context"

	"homestay/infras/otel"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type noopOtel struct {
	tracer oteltrace.Tracer
}

// NewScope implements otel.Otel with spans that are never recorded.
func (o *noopOtel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	ctx, span := o.tracer.Start(ctx, spanName)

	return ctx, otel.NewScope(span)
}

func NewOtel() otel.Otel {
	return &noopOtel{tracer: noop.NewTracerProvider().Tracer("test")}
}
