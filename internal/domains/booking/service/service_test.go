package service_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"homestay/config"
	jwtInfra "homestay/infras/jwt"
	jwtMocks "homestay/infras/jwt/mocks"
	"homestay/infras/otel/mocks"
	pgMocks "homestay/infras/postgres/mocks"
	s3Mocks "homestay/infras/s3/mocks"
	bookingMocks "homestay/internal/domains/booking/mocks"
	"homestay/internal/domains/booking/model"
	"homestay/internal/domains/booking/model/dto"
	"homestay/internal/domains/booking/service"
	homestayDto "homestay/internal/domains/homestay/model/dto"
	homestayMocks "homestay/internal/domains/homestay/service/mocks"
	eventMocks "homestay/internal/domains/lead/event/mocks"
	leadDto "homestay/internal/domains/lead/model/dto"
	leadMocks "homestay/internal/domains/lead/service/mocks"
	roomMocks "homestay/internal/domains/room/mocks"
	roomModel "homestay/internal/domains/room/model"
	cacheMocks "homestay/shared/cache/mocks"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/failure"
	"homestay/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	homestayID = "2f1d2c3b-4a5e-4f60-9a7b-8c9d0e1f2a3b"
	leadID     = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
	bookingID  = "4d3c2b1a-0f9e-4d8c-9b7a-6f5e4d3c2b1a"
	roomID1    = "7c0e8d4a-1b2c-4d3e-8f9a-0b1c2d3e4f5a"
	roomID2    = "8d1f9e5b-2c3d-4e4f-9a0b-1c2d3e4f5a6b"
	paymentID  = "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d"
)

type fixture struct {
	svc        service.Booking
	repo       *bookingMocks.MockBooking
	lines      *bookingMocks.MockBookingRoom
	payments   *bookingMocks.MockPayment
	roomRepo   *roomMocks.MockRoom
	lead       *leadMocks.MockLead
	homestay   *homestayMocks.MockHomestay
	publisher  *eventMocks.MockPublisher
	transactor *pgMocks.MockTransactor
	jwt        *jwtMocks.MockJWT
	s3         *s3Mocks.MockS3
	cache      *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:       bookingMocks.NewMockBooking(ctrl),
		lines:      bookingMocks.NewMockBookingRoom(ctrl),
		payments:   bookingMocks.NewMockPayment(ctrl),
		roomRepo:   roomMocks.NewMockRoom(ctrl),
		lead:       leadMocks.NewMockLead(ctrl),
		homestay:   homestayMocks.NewMockHomestay(ctrl),
		publisher:  eventMocks.NewMockPublisher(ctrl),
		transactor: pgMocks.NewMockTransactor(ctrl),
		jwt:        jwtMocks.NewMockJWT(ctrl),
		s3:         s3Mocks.NewMockS3(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "homestay"

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	otel := mocks.NewOtel()
	availability := service.NewAvailability(f.repo, f.roomRepo, otel)

	f.svc = service.New(f.repo, f.lines, f.payments, f.roomRepo, availability, f.lead, f.homestay,
		f.publisher, f.transactor, f.jwt, f.s3, cfg, f.cache, otel)

	return f
}

func (f fixture) expectTx() {
	f.transactor.EXPECT().
		WithTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sql.TxOptions, fn func(*sqlx.Tx) error) error {
			return fn(nil)
		})
}

func (f fixture) expectLookups() {
	f.lead.EXPECT().Get(gomock.Any(), leadID).Return(leadDto.LeadResponse{
		ID:     leadID,
		Name:   "Asha Menon",
		Email:  "asha@example.com",
		Phone:  "+919800000001",
		Adults: 2,
	}, nil)
	f.homestay.EXPECT().Get(gomock.Any(), homestayID).Return(homestayDto.HomestayResponse{ID: homestayID}, nil)
}

// expectRooms serves rooms by id from the transaction and reports overlaps per room.
func (f fixture) expectRooms(rooms map[string]roomModel.Room, overlaps map[string]int) {
	f.roomRepo.EXPECT().
		LockTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup) (roomModel.Room, error) {
			id, _ := filter.Filters[0].(gDto.Filter).Value.(string)

			return rooms[id], nil
		}).
		AnyTimes()

	f.repo.EXPECT().
		CountOverlappingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, roomID string, _, _ time.Time) (int, error) {
			return overlaps[roomID], nil
		}).
		AnyTimes()
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "front-desk")
}

func availableRoom(id, homestay string, capacity int) roomModel.Room {
	return roomModel.Room{
		ID:           id,
		HomestayID:   homestay,
		RoomNumber:   "R-" + id[:4],
		RoomName:     "Garden View",
		Capacity:     capacity,
		PricePerHead: decimal.NewFromInt(1000),
		Status:       roomModel.StatusAvailable,
	}
}

func twoRooms() map[string]roomModel.Room {
	second := availableRoom(roomID2, homestayID, 2)
	second.PricePerHead = decimal.NewFromInt(1500)

	return map[string]roomModel.Room{
		roomID1: availableRoom(roomID1, homestayID, 2),
		roomID2: second,
	}
}

func createRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		LeadID:       leadID,
		HomestayID:   homestayID,
		CheckInDate:  "2025-01-10",
		CheckOutDate: "2025-01-13",
		Rooms: []dto.BookingRoomRequest{
			{RoomID: roomID1, Guests: 2},
			{RoomID: roomID2, Guests: 1},
		},
		DiscountAmount: decimal.NewFromInt(500),
		TaxPercent:     decimal.NewFromInt(12),
	}
}

func TestService_Create(t *testing.T) {
	f := newFixture(t)
	f.expectLookups()
	f.expectTx()
	f.expectRooms(twoRooms(), nil)

	var (
		header model.Booking
		lines  []model.BookingRoom
	)

	f.repo.EXPECT().LockRoomsTx(gomock.Any(), gomock.Nil(), []string{roomID1, roomID2}).Return(nil)
	f.repo.EXPECT().NextSequenceTx(gomock.Any(), gomock.Nil(), model.SequenceReference).Return(int64(7), nil)
	f.repo.EXPECT().
		InsertTx(gomock.Any(), gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
			header = booking

			return nil
		})
	f.lines.EXPECT().
		InsertBulkTx(gomock.Any(), gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, rows []model.BookingRoom) error {
			lines = rows

			return nil
		})
	f.publisher.EXPECT().PublishConverted(gomock.Any(), leadID, gomock.Any()).Return(nil)

	res, err := f.svc.Create(userContext(), createRequest())
	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("BKG-%d-0007", timezone.Now().Year()), header.Reference)
	assert.Equal(t, model.StatusPending, header.Status)
	assert.Equal(t, 3, header.Nights)
	assert.Equal(t, 2, header.TotalRooms)
	assert.Equal(t, 2, header.Adults)
	assert.Equal(t, "Asha Menon", header.GuestName)
	assert.Equal(t, "front-desk", header.CreatedBy)
	assert.Equal(t, "10500", header.GrossAmount.String())
	assert.Equal(t, "10000", header.Subtotal.String())
	assert.Equal(t, "1200", header.TaxAmount.String())
	assert.Equal(t, "11200", header.TotalAmount.String())
	assert.True(t, header.PaidAmount.IsZero())
	assert.Equal(t, "11200", header.BalanceAmount.String())
	assert.False(t, header.IsPaymentComplete)

	if assert.Len(t, lines, 2) {
		assert.Equal(t, roomID1, lines[0].RoomID)
		assert.Equal(t, "2000", lines[0].RatePerNight.String())
		assert.Equal(t, "6000", lines[0].TotalAmount.String())
		assert.Equal(t, roomID2, lines[1].RoomID)
		assert.Equal(t, "4500", lines[1].TotalAmount.String())

		for _, line := range lines {
			assert.Equal(t, header.ID, line.BookingID)
			assert.Equal(t, model.LineStatusReserved, line.Status)
			assert.Equal(t, header.CheckInDate, line.CheckInDate)
			assert.Equal(t, header.CheckOutDate, line.CheckOutDate)
		}
	}

	assert.Equal(t, header.ID, res.ID)
	assert.Equal(t, header.Reference, res.Reference)
	assert.Equal(t, model.StatusPending, res.Status)
	assert.Equal(t, "2025-01-10", res.CheckInDate)
	assert.Equal(t, "2025-01-13", res.CheckOutDate)
	assert.Len(t, res.Rooms, 2)
}

func TestService_Create_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(req *dto.CreateBookingRequest)
		rooms      func() map[string]roomModel.Room
		overlaps   map[string]int
		wantCode   int
		wantReason string
	}{
		{
			name: "capacity exceeded",
			mutate: func(req *dto.CreateBookingRequest) {
				req.Rooms[0].Guests = 3
			},
			rooms:      twoRooms,
			wantCode:   http.StatusBadRequest,
			wantReason: failure.ReasonCapacityExceeded,
		},
		{
			name:       "second room already booked",
			rooms:      twoRooms,
			overlaps:   map[string]int{roomID2: 1},
			wantCode:   http.StatusConflict,
			wantReason: failure.ReasonRoomBooked,
		},
		{
			name: "room blocked",
			rooms: func() map[string]roomModel.Room {
				rooms := twoRooms()
				blocked := rooms[roomID1]
				blocked.Status = roomModel.StatusBlocked
				rooms[roomID1] = blocked

				return rooms
			},
			wantCode:   http.StatusConflict,
			wantReason: failure.ReasonRoomBlocked,
		},
		{
			name: "room of another homestay",
			rooms: func() map[string]roomModel.Room {
				rooms := twoRooms()
				rooms[roomID2] = availableRoom(roomID2, "0f0f0f0f-0f0f-4f0f-8f0f-0f0f0f0f0f0f", 2)

				return rooms
			},
			wantCode:   http.StatusBadRequest,
			wantReason: failure.ReasonRoomHomestayMismatch,
		},
		{
			name: "unknown room",
			rooms: func() map[string]roomModel.Room {
				return map[string]roomModel.Room{roomID1: availableRoom(roomID1, homestayID, 2)}
			},
			wantCode:   http.StatusNotFound,
			wantReason: failure.ReasonNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectLookups()
			f.expectTx()
			f.expectRooms(tt.rooms(), tt.overlaps)
			f.repo.EXPECT().LockRoomsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

			req := createRequest()
			if tt.mutate != nil {
				tt.mutate(&req)
			}

			_, err := f.svc.Create(userContext(), req)

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.True(t, failure.HasReason(err, tt.wantReason), "got reason %q", failure.GetReason(err))
		})
	}
}

func TestService_Create_DiscountExceedsSubtotal(t *testing.T) {
	f := newFixture(t)
	f.expectLookups()
	f.expectTx()
	f.expectRooms(twoRooms(), nil)
	f.repo.EXPECT().LockRoomsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	req := createRequest()
	req.DiscountAmount = decimal.NewFromInt(20000)

	_, err := f.svc.Create(userContext(), req)

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.True(t, failure.HasReason(err, failure.ReasonDiscountExceedsTotal))
}

func TestService_Create_InvalidRequest(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(req *dto.CreateBookingRequest)
		wantReason string
	}{
		{
			name: "same day check-out",
			mutate: func(req *dto.CreateBookingRequest) {
				req.CheckOutDate = req.CheckInDate
			},
			wantReason: failure.ReasonInvalidDateRange,
		},
		{
			name: "check-out before check-in",
			mutate: func(req *dto.CreateBookingRequest) {
				req.CheckInDate, req.CheckOutDate = "2025-01-15", "2025-01-10"
			},
			wantReason: failure.ReasonInvalidDateRange,
		},
		{
			name: "room requested twice",
			mutate: func(req *dto.CreateBookingRequest) {
				req.Rooms[1].RoomID = roomID1
			},
			wantReason: failure.ReasonDuplicateRoomInRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			req := createRequest()
			tt.mutate(&req)

			_, err := f.svc.Create(userContext(), req)

			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.True(t, failure.HasReason(err, tt.wantReason))
		})
	}
}

func TestService_Create_UnknownLead(t *testing.T) {
	f := newFixture(t)

	f.lead.EXPECT().Get(gomock.Any(), leadID).Return(leadDto.LeadResponse{}, failure.NotFound("lead not found"))

	_, err := f.svc.Create(userContext(), createRequest())

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestService_Create_ConcurrentWriterWins(t *testing.T) {
	f := newFixture(t)
	f.expectLookups()
	f.expectTx()
	f.expectRooms(twoRooms(), nil)

	f.repo.EXPECT().LockRoomsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().NextSequenceTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(8), nil)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.lines.EXPECT().
		InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("failed to bulk insert data (booking_room): %w", &pq.Error{Code: constant.PqErrorCodeExclusionViolation}))

	_, err := f.svc.Create(userContext(), createRequest())

	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.True(t, failure.HasReason(err, failure.ReasonRoomBooked))
}

func TestService_Create_NotifierFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	f.expectLookups()
	f.expectTx()
	f.expectRooms(twoRooms(), nil)

	f.repo.EXPECT().LockRoomsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().NextSequenceTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(9), nil)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.lines.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.publisher.EXPECT().PublishConverted(gomock.Any(), leadID, gomock.Any()).Return(errors.New("broker unreachable"))

	res, err := f.svc.Create(userContext(), createRequest())
	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.NotEmpty(t, res.ID)
}

func storedBooking(status string) model.Booking {
	return model.Booking{
		ID:            bookingID,
		Reference:     "BKG-2025-0007",
		LeadID:        leadID,
		HomestayID:    homestayID,
		GuestName:     "Asha Menon",
		CheckInDate:   date("2025-01-10"),
		CheckOutDate:  date("2025-01-13"),
		Nights:        3,
		Status:        status,
		TotalAmount:   decimal.NewFromInt(11200),
		BalanceAmount: decimal.NewFromInt(11200),
	}
}

func TestService_Get(t *testing.T) {
	t.Run("by id with lines", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusPending), nil)
		f.lines.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.BookingRoom{
			{ID: "l1", BookingID: bookingID, RoomID: roomID1, RoomNumber: "101", Guests: 2, TotalAmount: decimal.NewFromInt(6000), Status: model.LineStatusReserved},
			{ID: "l2", BookingID: bookingID, RoomID: roomID2, RoomNumber: "102", Guests: 1, TotalAmount: decimal.NewFromInt(4500), Status: model.LineStatusReserved},
		}, nil)

		res, err := f.svc.Get(context.Background(), bookingID)
		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "BKG-2025-0007", res.Reference)
		assert.Equal(t, model.StatusPending, res.Status)
		assert.Equal(t, "11200", res.TotalAmount.String())
		assert.Len(t, res.Rooms, 2)
		assert.Equal(t, "101", res.Rooms[0].RoomNumber)
	})

	t.Run("by reference", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Booking, error) {
				assert.Equal(t, "BKG-2025-0007", filter.Filters[0].(gDto.Filter).Value)

				return storedBooking(model.StatusConfirmed), nil
			})
		f.lines.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		res, err := f.svc.GetByReference(context.Background(), "bkg-2025-0007")

		assert.NoError(t, err)
		assert.Equal(t, bookingID, res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.Get(context.Background(), bookingID)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestService_GetAll(t *testing.T) {
	f := newFixture(t)
	params := gDto.QueryParams{Page: 1, Limit: 10}

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Booking{storedBooking(model.StatusPending)}, nil)

	res, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})
	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Bookings, 1)
}

func TestService_Update(t *testing.T) {
	notes := "late arrival"

	t.Run("empty", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Update(userContext(), dto.UpdateBookingRequest{}, bookingID)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("cancelled booking", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusCancelled), nil)

		err := f.svc.Update(userContext(), dto.UpdateBookingRequest{Notes: &notes}, bookingID)

		assert.True(t, failure.HasReason(err, failure.ReasonInvalidStatusChange))
	})

	t.Run("notes only", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusConfirmed), nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, &notes, fields[model.FieldNotes])
				assert.NotContains(t, fields, "total_amount")
				assert.Equal(t, "front-desk", fields[constant.FieldModifiedBy])

				return nil
			})

		err := f.svc.Update(userContext(), dto.UpdateBookingRequest{Notes: &notes}, bookingID)
		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})
}

// expectTransition serves the locked booking and captures the header and line updates.
func (f fixture) expectTransition(t *testing.T, current string, header, lines *map[string]any) {
	f.expectTx()
	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedBooking(current), nil)
	f.repo.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
			*header = fields

			return nil
		})
	f.lines.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error {
			*lines = fields

			assert.Equal(t, bookingID, filter.Filters[0].(gDto.Filter).Value)

			return nil
		})
}

func TestService_UpdateStatus(t *testing.T) {
	t.Run("confirm keeps rooms reserved", func(t *testing.T) {
		f := newFixture(t)

		var header, lines map[string]any
		f.expectTransition(t, model.StatusPending, &header, &lines)

		err := f.svc.UpdateStatus(userContext(), dto.UpdateBookingStatusRequest{Status: model.StatusConfirmed}, bookingID)
		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, header[model.FieldStatus])
		assert.Equal(t, model.LineStatusReserved, lines[model.FieldStatus])
	})

	t.Run("cancel cascades to rooms", func(t *testing.T) {
		f := newFixture(t)

		var header, lines map[string]any
		f.expectTransition(t, model.StatusConfirmed, &header, &lines)

		err := f.svc.UpdateStatus(userContext(), dto.UpdateBookingStatusRequest{
			Status:             model.StatusCancelled,
			CancellationReason: "flight cancelled",
			Reason:             "guest called",
		}, bookingID)
		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, header[model.FieldStatus])
		assert.Equal(t, "flight cancelled", header[model.FieldCancellationReason])
		assert.Contains(t, header, model.FieldCancelledAt)
		assert.Contains(t, header[model.FieldNotes], "Status changed to cancelled: guest called")
		assert.Equal(t, model.LineStatusCancelled, lines[model.FieldStatus])
	})

	t.Run("terminal booking cannot move", func(t *testing.T) {
		f := newFixture(t)

		f.expectTx()
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusCheckedOut), nil)

		err := f.svc.UpdateStatus(userContext(), dto.UpdateBookingStatusRequest{Status: model.StatusConfirmed}, bookingID)

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.True(t, failure.HasReason(err, failure.ReasonInvalidStatusChange))
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.expectTx()
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		err := f.svc.UpdateStatus(userContext(), dto.UpdateBookingStatusRequest{Status: model.StatusConfirmed}, bookingID)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestService_CheckInOut(t *testing.T) {
	t.Run("check in a confirmed booking", func(t *testing.T) {
		f := newFixture(t)

		var header, lines map[string]any
		f.expectTransition(t, model.StatusConfirmed, &header, &lines)

		err := f.svc.CheckIn(userContext(), dto.CheckInRequest{ActualCheckIn: "2025-01-10T14:05:00+05:30"}, bookingID)
		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusCheckedIn, header[model.FieldStatus])
		assert.Equal(t, model.LineStatusOccupied, lines[model.FieldStatus])

		at, ok := header[model.FieldActualCheckIn].(time.Time)
		if assert.True(t, ok) {
			assert.Equal(t, time.Date(2025, 1, 10, 8, 35, 0, 0, time.UTC), at.UTC())
		}
	})

	t.Run("check in a pending booking", func(t *testing.T) {
		f := newFixture(t)

		f.expectTx()
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusPending), nil)

		err := f.svc.CheckIn(userContext(), dto.CheckInRequest{}, bookingID)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.True(t, failure.HasReason(err, failure.ReasonInvalidStatusChange))
	})

	t.Run("check out", func(t *testing.T) {
		f := newFixture(t)

		var header, lines map[string]any
		f.expectTransition(t, model.StatusCheckedIn, &header, &lines)

		err := f.svc.CheckOut(userContext(), dto.CheckOutRequest{Notes: "left keys at desk"}, bookingID)
		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusCheckedOut, header[model.FieldStatus])
		assert.Contains(t, header, model.FieldActualCheckOut)
		assert.Contains(t, header[model.FieldNotes], "Checked out: left keys at desk")
		assert.Equal(t, model.LineStatusCheckedOut, lines[model.FieldStatus])
	})

	t.Run("check out before check in", func(t *testing.T) {
		f := newFixture(t)

		f.expectTx()
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusConfirmed), nil)

		err := f.svc.CheckOut(userContext(), dto.CheckOutRequest{}, bookingID)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestService_AddPayment(t *testing.T) {
	tests := []struct {
		name         string
		status       string
		paid         decimal.Decimal
		req          dto.CreatePaymentRequest
		wantPaid     string
		wantBalance  string
		wantComplete bool
		wantStatus   string
	}{
		{
			name:        "advance confirms a pending booking",
			status:      model.StatusPending,
			paid:        decimal.Zero,
			req:         dto.CreatePaymentRequest{Amount: decimal.NewFromInt(5000), PaymentType: model.PaymentTypeAdvance},
			wantPaid:    "5000",
			wantBalance: "6200",
			wantStatus:  model.StatusConfirmed,
		},
		{
			name:         "full settlement",
			status:       model.StatusCheckedIn,
			paid:         decimal.NewFromInt(5000),
			req:          dto.CreatePaymentRequest{Amount: decimal.NewFromInt(6200)},
			wantPaid:     "11200",
			wantBalance:  "0",
			wantComplete: true,
		},
		{
			name:        "refund lowers the paid amount",
			status:      model.StatusConfirmed,
			paid:        decimal.NewFromInt(5000),
			req:         dto.CreatePaymentRequest{Amount: decimal.NewFromInt(1000), PaymentType: model.PaymentTypeRefund},
			wantPaid:    "4000",
			wantBalance: "7200",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			booking := storedBooking(tt.status)
			booking.Settle(tt.paid)

			var (
				payment model.Payment
				fields  map[string]any
			)

			f.expectTx()
			f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking, nil)
			f.repo.EXPECT().NextSequenceTx(gomock.Any(), gomock.Any(), model.SequencePaymentReference).Return(int64(3), nil)
			f.payments.EXPECT().
				InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *sqlx.Tx, row model.Payment) error {
					payment = row

					return nil
				})
			f.repo.EXPECT().
				UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *sqlx.Tx, update map[string]any, _ gDto.FilterGroup) error {
					fields = update

					return nil
				})

			res, err := f.svc.AddPayment(userContext(), tt.req, bookingID)
			time.Sleep(10 * time.Millisecond)

			assert.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("PAY-%d-0003", timezone.Now().Year()), payment.Reference)
			assert.Equal(t, bookingID, payment.BookingID)
			assert.Equal(t, payment.Reference, res.Reference)

			paid, _ := fields[model.FieldPaidAmount].(decimal.Decimal)
			balance, _ := fields[model.FieldBalanceAmount].(decimal.Decimal)
			assert.Equal(t, tt.wantPaid, paid.String())
			assert.Equal(t, tt.wantBalance, balance.String())
			assert.Equal(t, tt.wantComplete, fields[model.FieldIsPaymentComplete])

			if tt.wantStatus == "" {
				assert.NotContains(t, fields, model.FieldStatus)
			} else {
				assert.Equal(t, tt.wantStatus, fields[model.FieldStatus])
			}
		})
	}
}

func TestService_AddPayment_Rejected(t *testing.T) {
	t.Run("cancelled booking", func(t *testing.T) {
		f := newFixture(t)

		f.expectTx()
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusCancelled), nil)

		_, err := f.svc.AddPayment(userContext(), dto.CreatePaymentRequest{Amount: decimal.NewFromInt(100)}, bookingID)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("refund above paid amount", func(t *testing.T) {
		f := newFixture(t)

		f.expectTx()
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusConfirmed), nil)

		_, err := f.svc.AddPayment(userContext(), dto.CreatePaymentRequest{
			Amount:      decimal.NewFromInt(100),
			PaymentType: model.PaymentTypeRefund,
		}, bookingID)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("database failure", func(t *testing.T) {
		f := newFixture(t)

		f.transactor.EXPECT().WithTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		_, err := f.svc.AddPayment(userContext(), dto.CreatePaymentRequest{Amount: decimal.NewFromInt(100)}, bookingID)

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestService_ListPayments(t *testing.T) {
	f := newFixture(t)
	params := gDto.QueryParams{Page: 1, Limit: 10}

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusConfirmed), nil)
	f.payments.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.payments.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Payment{
		{ID: paymentID, BookingID: bookingID, Reference: "PAY-2025-0003", Amount: decimal.NewFromInt(5000)},
	}, nil)

	res, err := f.svc.ListPayments(context.Background(), params, bookingID)

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, "PAY-2025-0003", res.Payments[0].Reference)
}

func TestService_UploadReceipt(t *testing.T) {
	oldReceipt := "https://cdn.example.com/receipt/PAY-2025-0003-1.png"

	t.Run("replaces the previous receipt", func(t *testing.T) {
		f := newFixture(t)

		f.payments.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Payment{
			ID: paymentID, BookingID: bookingID, Reference: "PAY-2025-0003", ReceiptURL: oldReceipt,
		}, nil)
		f.s3.EXPECT().
			UploadFile(gomock.Any(), "homestay", "receipt", gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/receipt/PAY-2025-0003-2.png", nil)
		f.payments.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.s3.EXPECT().GetObjectNameFromURL("homestay", oldReceipt).Return("receipt/PAY-2025-0003-1.png")
		f.s3.EXPECT().DeleteFile(gomock.Any(), "homestay", "", "receipt/PAY-2025-0003-1.png").Return(nil)

		res, err := f.svc.UploadReceipt(userContext(), nil, receiptHeader(), bookingID, paymentID)

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/receipt/PAY-2025-0003-2.png", res.ReceiptURL)
	})

	t.Run("payment of another booking", func(t *testing.T) {
		f := newFixture(t)

		f.payments.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Payment{}, nil)

		_, err := f.svc.UploadReceipt(userContext(), nil, receiptHeader(), bookingID, paymentID)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func receiptHeader() *multipart.FileHeader {
	return &multipart.FileHeader{Filename: "transfer.png", Size: 2048}
}

func TestService_Statistics(t *testing.T) {
	f := newFixture(t)

	f.homestay.EXPECT().Get(gomock.Any(), homestayID).Return(homestayDto.HomestayResponse{ID: homestayID}, nil)
	f.repo.EXPECT().Statistics(gomock.Any(), homestayID).Return(model.Statistics{
		TotalBookings:     4,
		PendingBookings:   1,
		CancelledBookings: 1,
		TotalRevenue:      decimal.NewFromInt(22400),
		TotalPaid:         decimal.NewFromInt(5000),
		PendingAmount:     decimal.NewFromInt(17400),
	}, nil)

	res, err := f.svc.Statistics(context.Background(), homestayID)

	assert.NoError(t, err)
	assert.Equal(t, 4, res.TotalBookings)
	assert.Equal(t, "17400", res.PendingAmount.String())
}

func TestService_TodayCheckIns(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
			status := filter.Filters[0].(gDto.Filter)
			day := filter.Filters[1].(gDto.Filter)

			assert.Equal(t, model.StatusConfirmed, status.Value)
			assert.Equal(t, model.FieldCheckInDate, day.Field)
			assert.Equal(t, timezone.Today(), day.Value)

			return []model.Booking{storedBooking(model.StatusConfirmed)}, nil
		})

	res, err := f.svc.TodayCheckIns(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestService_Availability(t *testing.T) {
	f := newFixture(t)

	f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(roomID1, homestayID, 2), nil)
	f.repo.EXPECT().CountOverlapping(gomock.Any(), roomID1, date("2025-01-14"), date("2025-01-16")).Return(1, nil)

	res, err := f.svc.Availability(context.Background(), dto.AvailabilityRequest{
		RoomID: roomID1, CheckInDate: "2025-01-14", CheckOutDate: "2025-01-16",
	})

	assert.NoError(t, err)
	assert.False(t, res.Available)
	assert.Equal(t, "2025-01-14", res.CheckInDate)
}

func TestService_Voucher(t *testing.T) {
	t.Run("signs a voucher", func(t *testing.T) {
		f := newFixture(t)
		expires := time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusConfirmed), nil)
		f.jwt.EXPECT().
			SignVoucher(gomock.Any(), date("2025-01-13")).
			DoAndReturn(func(claims jwtInfra.VoucherClaims, _ time.Time) (string, time.Time, error) {
				assert.Equal(t, "BKG-2025-0007", claims.Reference)
				assert.Equal(t, "2025-01-10", claims.CheckInDate)

				return "signed.voucher.token", expires, nil
			})

		res, err := f.svc.Voucher(context.Background(), bookingID)

		assert.NoError(t, err)
		assert.Equal(t, "signed.voucher.token", res.Token)
	})

	t.Run("cancelled booking", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusCancelled), nil)

		_, err := f.svc.Voucher(context.Background(), bookingID)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestService_VerifyVoucher(t *testing.T) {
	t.Run("valid voucher", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().VerifyVoucher("token").Return(&jwtInfra.VoucherClaims{BookingID: bookingID}, nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusCheckedIn), nil)

		res, err := f.svc.VerifyVoucher(context.Background(), "token")

		assert.NoError(t, err)
		assert.Equal(t, model.StatusCheckedIn, res.Status)
		assert.Equal(t, "BKG-2025-0007", res.Reference)
	})

	t.Run("expired voucher", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().VerifyVoucher("token").Return(nil, jwtInfra.ErrExpiredToken)

		_, err := f.svc.VerifyVoucher(context.Background(), "token")

		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("booking cancelled after issue", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().VerifyVoucher("token").Return(&jwtInfra.VoucherClaims{BookingID: bookingID}, nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusCancelled), nil)

		_, err := f.svc.VerifyVoucher(context.Background(), "token")

		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}
