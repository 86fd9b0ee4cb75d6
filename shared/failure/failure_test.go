package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"homestay/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "check-out date must be after check-in date",
	}

	if f.Error() != "check-out date must be after check-in date" {
		t.Errorf("unexpected error message %q", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
		reason  string
	}{
		{
			name:    "bad request from error",
			err:     failure.BadRequest(errors.New("rooms is required")),
			code:    http.StatusBadRequest,
			message: "rooms is required",
		},
		{
			name:    "bad request from string",
			err:     failure.BadRequestFromString("invalid date"),
			code:    http.StatusBadRequest,
			message: "invalid date",
		},
		{
			name:    "bad request with reason",
			err:     failure.BadRequestWithReason(failure.ReasonCapacityExceeded, "room 101 holds 2 guests"),
			code:    http.StatusBadRequest,
			message: "room 101 holds 2 guests",
			reason:  failure.ReasonCapacityExceeded,
		},
		{
			name:    "not found carries reason",
			err:     failure.NotFound("room not found"),
			code:    http.StatusNotFound,
			message: "room not found",
			reason:  failure.ReasonNotFound,
		},
		{
			name:    "conflict",
			err:     failure.Conflict("lead already exists"),
			code:    http.StatusConflict,
			message: "lead already exists",
		},
		{
			name:    "conflict with reason",
			err:     failure.ConflictWithReason(failure.ReasonRoomBooked, "room 101 is already booked"),
			code:    http.StatusConflict,
			message: "room 101 is already booked",
			reason:  failure.ReasonRoomBooked,
		},
		{
			name:    "unauthorized",
			err:     failure.Unauthorized("voucher expired"),
			code:    http.StatusUnauthorized,
			message: "voucher expired",
		},
		{
			name:    "forbidden",
			err:     failure.Forbidden("invalid api key"),
			code:    http.StatusForbidden,
			message: "invalid api key",
		},
		{
			name:    "unimplemented",
			err:     failure.Unimplemented("Refund"),
			code:    http.StatusNotImplemented,
			message: "Refund",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure
			if !errors.As(tt.err, &f) {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}

			if f.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, f.Code)
			}

			if f.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, f.Message)
			}

			if f.Reason != tt.reason {
				t.Errorf("expected reason %q, got %q", tt.reason, f.Reason)
			}
		})
	}
}

func TestNilInputs(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected nil for BadRequest(nil)")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected nil for InternalError(nil)")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("create booking: %w", failure.ConflictWithReason(failure.ReasonRoomBlocked, "blocked")),
			expected: http.StatusConflict,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := failure.GetCode(tt.input); result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestHasReason(t *testing.T) {
	booked := fmt.Errorf("tx: %w", failure.ConflictWithReason(failure.ReasonRoomBooked, "booked"))

	if !failure.HasReason(booked, failure.ReasonRoomBooked) {
		t.Error("expected wrapped error to carry room_booked")
	}

	if failure.HasReason(booked, failure.ReasonRoomBlocked) {
		t.Error("room_booked must be distinguishable from room_blocked")
	}

	if failure.HasReason(errors.New("plain"), "") {
		t.Error("empty reason must never match")
	}

	if failure.GetReason(nil) != "" {
		t.Error("expected empty reason for nil")
	}
}
