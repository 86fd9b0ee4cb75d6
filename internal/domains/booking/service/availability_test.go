package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"homestay/infras/otel"
	"homestay/infras/otel/mocks"
	bookingMocks "homestay/internal/domains/booking/mocks"
	"homestay/internal/domains/booking/service"
	roomMocks "homestay/internal/domains/room/mocks"
	roomModel "homestay/internal/domains/room/model"
	"homestay/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
)

type availabilityFixture struct {
	svc      service.Availability
	repo     *bookingMocks.MockBooking
	roomRepo *roomMocks.MockRoom
}

func newAvailabilityFixture(t *testing.T) availabilityFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := availabilityFixture{
		repo:     bookingMocks.NewMockBooking(ctrl),
		roomRepo: roomMocks.NewMockRoom(ctrl),
	}

	f.svc = service.NewAvailability(f.repo, f.roomRepo, mocks.NewOtel())

	return f
}

func date(value string) time.Time {
	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func TestAvailability_AssertAvailable(t *testing.T) {
	tests := []struct {
		name       string
		checkIn    string
		checkOut   string
		room       roomModel.Room
		overlaps   int
		wantCode   int
		wantReason string
	}{
		{
			name:     "free room",
			checkIn:  "2025-01-15",
			checkOut: "2025-01-18",
			room:     availableRoom(roomID1, homestayID, 2),
		},
		{
			name:       "overlapping stay",
			checkIn:    "2025-01-12",
			checkOut:   "2025-01-14",
			room:       availableRoom(roomID1, homestayID, 2),
			overlaps:   1,
			wantCode:   http.StatusConflict,
			wantReason: failure.ReasonRoomBooked,
		},
		{
			name:       "blocked room",
			checkIn:    "2025-01-15",
			checkOut:   "2025-01-18",
			room:       roomWithStatus(roomModel.StatusBlocked),
			wantCode:   http.StatusConflict,
			wantReason: failure.ReasonRoomBlocked,
		},
		{
			name:       "room under maintenance",
			checkIn:    "2025-01-15",
			checkOut:   "2025-01-18",
			room:       roomWithStatus(roomModel.StatusMaintenance),
			wantCode:   http.StatusConflict,
			wantReason: failure.ReasonRoomBlocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAvailabilityFixture(t)
			checkIn, checkOut := date(tt.checkIn), date(tt.checkOut)

			f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.room, nil)

			if tt.room.Selectable() {
				f.repo.EXPECT().
					CountOverlapping(gomock.Any(), tt.room.ID, checkIn, checkOut).
					Return(tt.overlaps, nil)
			}

			err := f.svc.AssertAvailable(context.Background(), tt.room.ID, checkIn, checkOut)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.True(t, failure.HasReason(err, tt.wantReason))
		})
	}
}

func TestAvailability_InvalidRange(t *testing.T) {
	f := newAvailabilityFixture(t)

	for _, stay := range [][2]string{{"2025-01-15", "2025-01-15"}, {"2025-01-15", "2025-01-10"}} {
		err := f.svc.AssertAvailable(context.Background(), roomID1, date(stay[0]), date(stay[1]))

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.True(t, failure.HasReason(err, failure.ReasonInvalidDateRange))
	}
}

func TestAvailability_UnknownRoom(t *testing.T) {
	f := newAvailabilityFixture(t)

	f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)

	err := f.svc.AssertAvailable(context.Background(), roomID1, date("2025-01-10"), date("2025-01-15"))

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestAvailability_IsAvailable(t *testing.T) {
	t.Run("booked room is reported as false", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(roomID1, homestayID, 2), nil)
		f.repo.EXPECT().CountOverlapping(gomock.Any(), roomID1, gomock.Any(), gomock.Any()).Return(2, nil)

		available, err := f.svc.IsAvailable(context.Background(), roomID1, date("2025-01-10"), date("2025-01-15"))

		assert.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("stay starting on an existing check-out day is free", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(roomID1, homestayID, 2), nil)
		f.repo.EXPECT().CountOverlapping(gomock.Any(), roomID1, date("2025-01-15"), date("2025-01-18")).Return(0, nil)

		available, err := f.svc.IsAvailable(context.Background(), roomID1, date("2025-01-15"), date("2025-01-18"))

		assert.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("lookup failure is an error", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(roomID1, homestayID, 2), nil)
		f.repo.EXPECT().CountOverlapping(gomock.Any(), roomID1, gomock.Any(), gomock.Any()).Return(0, errors.New("connection reset"))

		available, err := f.svc.IsAvailable(context.Background(), roomID1, date("2025-01-10"), date("2025-01-15"))

		assert.Error(t, err)
		assert.False(t, available)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestAvailability_CheckUsesTransaction(t *testing.T) {
	f := newAvailabilityFixture(t)
	room := availableRoom(roomID1, homestayID, 2)

	f.repo.EXPECT().
		CountOverlappingTx(gomock.Any(), gomock.Nil(), roomID1, date("2025-01-10"), date("2025-01-15")).
		Return(1, nil)

	err := f.svc.Check(context.Background(), nil, room, date("2025-01-10"), date("2025-01-15"))

	assert.True(t, failure.HasReason(err, failure.ReasonRoomBooked))
}

func roomWithStatus(status string) roomModel.Room {
	room := availableRoom(roomID1, homestayID, 2)
	room.Status = status

	return room
}

func TestAvailability_TracesFailures(t *testing.T) {
	tests := []struct {
		name       string
		checkIn    string
		checkOut   string
		setup      func(f availabilityFixture)
		wantReason string
		wantStatus codes.Code
	}{
		{
			name:       "empty range",
			checkIn:    "2025-01-15",
			checkOut:   "2025-01-15",
			setup:      func(availabilityFixture) {},
			wantReason: failure.ReasonInvalidDateRange,
			wantStatus: codes.Unset,
		},
		{
			name:     "booked room",
			checkIn:  "2025-01-14",
			checkOut: "2025-01-16",
			setup: func(f availabilityFixture) {
				f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(roomID1, homestayID, 2), nil)
				f.repo.EXPECT().CountOverlapping(gomock.Any(), roomID1, gomock.Any(), gomock.Any()).Return(1, nil)
			},
			wantReason: failure.ReasonRoomBooked,
			wantStatus: codes.Unset,
		},
		{
			name:     "lookup failure",
			checkIn:  "2025-01-14",
			checkOut: "2025-01-16",
			setup: func(f availabilityFixture) {
				f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, errors.New("connection reset"))
			},
			wantStatus: codes.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			recorder := tracetest.NewSpanRecorder()
			provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

			f := availabilityFixture{
				repo:     bookingMocks.NewMockBooking(ctrl),
				roomRepo: roomMocks.NewMockRoom(ctrl),
			}
			f.svc = service.NewAvailability(f.repo, f.roomRepo, otel.NewWithProvider(provider))
			tt.setup(f)

			err := f.svc.AssertAvailable(context.Background(), roomID1, date(tt.checkIn), date(tt.checkOut))
			require.Error(t, err)

			spans := recorder.Ended()
			require.Len(t, spans, 1)

			span := spans[0]
			assert.Equal(t, tt.wantStatus, span.Status().Code)

			events := span.Events()
			require.NotEmpty(t, events)
			assert.Equal(t, "exception", events[0].Name)

			var reason string
			for _, kv := range span.Attributes() {
				if kv.Key == attribute.Key("failure.reason") {
					reason = kv.Value.AsString()
				}
			}

			assert.Equal(t, tt.wantReason, reason)
		})
	}
}
