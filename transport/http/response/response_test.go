package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"homestay/shared/constant"
	"homestay/shared/failure"
	"homestay/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name:       "failure with reason",
			err:        failure.ConflictWithReason(failure.ReasonRoomBooked, "room 101 is already booked"),
			wantStatus: http.StatusConflict,
			wantBody:   map[string]any{"error": "room 101 is already booked", "reason": failure.ReasonRoomBooked},
		},
		{
			name:       "failure without reason",
			err:        failure.BadRequestFromString("invalid date"),
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "invalid date"},
		},
		{
			name:       "plain error",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]any{"error": "connection refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, body)
			assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"reference": "BKG-2025-0007"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"reference":"BKG-2025-0007"}}`, rec.Body.String())
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), constant.ResponseErrorRequestLimitExceeded)
}
