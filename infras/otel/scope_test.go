package otel_test

import (
	"context"
	"errors"
	"testing"

	"homestay/infras/otel"
	"homestay/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func record(t *testing.T, fn func(scope otel.Scope)) trace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, scope := otel.NewWithProvider(provider).NewScope(context.Background(), "booking", "Create")
	fn(scope)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	return spans[0]
}

func attributes(span trace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	result := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		result[kv.Key] = kv.Value
	}

	return result
}

func TestScope_TraceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus codes.Code
		wantReason string
	}{
		{
			name:       "conflict keeps status unset",
			err:        failure.ConflictWithReason(failure.ReasonRoomBooked, "room 101 is already booked"),
			wantStatus: codes.Unset,
			wantReason: failure.ReasonRoomBooked,
		},
		{
			name:       "infrastructure error marks span",
			err:        errors.New("connection refused"),
			wantStatus: codes.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := record(t, func(scope otel.Scope) {
				scope.TraceIfError(tt.err)
			})

			assert.Equal(t, tt.wantStatus, span.Status().Code)
			assert.Len(t, span.Events(), 1)

			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, attributes(span)["failure.reason"].AsString())
			}
		})
	}
}

func TestScope_TraceIfErrorNil(t *testing.T) {
	span := record(t, func(scope otel.Scope) {
		scope.TraceIfError(nil)
	})

	assert.Empty(t, span.Events())
	assert.Equal(t, codes.Unset, span.Status().Code)
}

func TestScope_SetAttributes(t *testing.T) {
	span := record(t, func(scope otel.Scope) {
		scope.SetAttributes(map[string]any{
			"booking.reference": "BKG-2025-0007",
			"booking.rooms":     2,
			"booking.total":     decimal.NewFromInt(11200),
			"booking.paid":      true,
			"booking.guests":    int64(3),
		})
		scope.AddEvent("availability checked")
	})

	attrs := attributes(span)

	assert.Equal(t, "BKG-2025-0007", attrs["booking.reference"].AsString())
	assert.Equal(t, int64(2), attrs["booking.rooms"].AsInt64())
	assert.Equal(t, "11200.00", attrs["booking.total"].AsString())
	assert.True(t, attrs["booking.paid"].AsBool())
	assert.Equal(t, int64(3), attrs["booking.guests"].AsInt64())
	require.Len(t, span.Events(), 1)
	assert.Equal(t, "availability checked", span.Events()[0].Name)
}
