package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"homestay/config"
	"homestay/infras/otel/mocks"
	postgresMocks "homestay/infras/postgres/mocks"
	homestayDto "homestay/internal/domains/homestay/model/dto"
	homestayMocks "homestay/internal/domains/homestay/service/mocks"
	leadMocks "homestay/internal/domains/lead/mocks"
	"homestay/internal/domains/lead/model"
	"homestay/internal/domains/lead/model/dto"
	"homestay/internal/domains/lead/service"
	cacheMocks "homestay/shared/cache/mocks"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	leadID     = "4b7e1c2a-9d3f-4a5b-8c6d-7e8f9a0b1c2d"
	bookingID  = "9a8b7c6d-5e4f-4a3b-9c2d-1e0f9a8b7c6d"
	homestayID = "2f1d2c3b-4a5e-4f60-9a7b-8c9d0e1f2a3b"
)

type fixture struct {
	svc        service.Lead
	repo       *leadMocks.MockLead
	followUps  *leadMocks.MockFollowUp
	homestay   *homestayMocks.MockHomestay
	transactor *postgresMocks.MockTransactor
	cache      *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:       leadMocks.NewMockLead(ctrl),
		followUps:  leadMocks.NewMockFollowUp(ctrl),
		homestay:   homestayMocks.NewMockHomestay(ctrl),
		transactor: postgresMocks.NewMockTransactor(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, f.followUps, f.homestay, f.transactor, cfg, f.cache, mocks.NewOtel())

	return f
}

func storedLead() model.Lead {
	return model.Lead{
		ID:       leadID,
		Name:     "Asha Menon",
		Email:    "asha@example.com",
		Phone:    "+91-9876543210",
		Source:   model.SourceWebsite,
		Status:   model.StatusQualified,
		Priority: model.PriorityMedium,
		Adults:   2,
		Notes:    "prefers garden view",
	}
}

func TestLeadService_Create(t *testing.T) {
	createReq := dto.CreateLeadRequest{
		Name:         "Asha Menon",
		Email:        " Asha@Example.com ",
		Phone:        "+91-9876543210",
		HomestayID:   homestayID,
		CheckInDate:  "2025-01-10",
		CheckOutDate: "2025-01-13",
	}

	tests := []struct {
		name      string
		req       dto.CreateLeadRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "creates new lead with defaults",
			req:  createReq,
			setupMock: func(f fixture) {
				f.homestay.EXPECT().Get(gomock.Any(), homestayID).Return(homestayDto.HomestayResponse{ID: homestayID}, nil)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, lead model.Lead) error {
						assert.Equal(t, "asha@example.com", lead.Email)
						assert.Equal(t, model.StatusNew, lead.Status)
						assert.Equal(t, model.PriorityMedium, lead.Priority)
						assert.Equal(t, 1, lead.Adults)
						assert.Equal(t, time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), *lead.CheckOutDate)

						return nil
					})
			},
		},
		{
			name: "inverted stay dates",
			req: dto.CreateLeadRequest{
				Name:         "Asha Menon",
				Email:        "asha@example.com",
				Phone:        "+91-9876543210",
				CheckInDate:  "2025-01-13",
				CheckOutDate: "2025-01-13",
			},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "duplicate email or phone",
			req:  dto.CreateLeadRequest{Name: "Asha Menon", Email: "asha@example.com", Phone: "+91-9876543210"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "unique index race",
			req:  dto.CreateLeadRequest{Name: "Asha Menon", Email: "asha@example.com", Phone: "+91-9876543210"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "unknown homestay",
			req:  createReq,
			setupMock: func(f fixture) {
				f.homestay.EXPECT().Get(gomock.Any(), homestayID).Return(homestayDto.HomestayResponse{}, failure.NotFound("homestay not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "2025-01-10", res.CheckInDate)
			assert.Equal(t, homestayID, res.HomestayID)
		})
	}
}

func TestLeadService_Get(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), "lead:get:"+leadID, gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Lead{}, nil)

	_, err := f.svc.Get(context.Background(), leadID)

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestLeadService_Update(t *testing.T) {
	adults := 4

	tests := []struct {
		name      string
		req       dto.UpdateLeadRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:      "empty request",
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "same email is not rechecked",
			req:  dto.UpdateLeadRequest{Email: "asha@example.com", Adults: &adults, CheckInDate: "2025-03-01"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedLead(), nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, &adults, fields["adults"])
						assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), fields[model.FieldCheckInDate])

						return nil
					})
			},
		},
		{
			name: "phone taken by another lead",
			req:  dto.UpdateLeadRequest{Phone: "+91-9000000000"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedLead(), nil)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Update(context.Background(), tt.req, leadID)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestLeadService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name   string
		req    dto.UpdateLeadStatusRequest
		assert func(t *testing.T, fields map[string]any)
	}{
		{
			name: "converted stamps time and booking",
			req:  dto.UpdateLeadStatusRequest{Status: model.StatusConverted, BookingID: bookingID},
			assert: func(t *testing.T, fields map[string]any) {
				assert.Equal(t, bookingID, fields[model.FieldBookingID])
				assert.Contains(t, fields, model.FieldConvertedAt)
				assert.NotContains(t, fields, model.FieldNotes)
			},
		},
		{
			name: "lost keeps reason and appends note",
			req:  dto.UpdateLeadStatusRequest{Status: model.StatusLost, LostReason: "budget", Reason: "went elsewhere"},
			assert: func(t *testing.T, fields map[string]any) {
				assert.Equal(t, "budget", fields[model.FieldLostReason])

				notes, _ := fields[model.FieldNotes].(string)
				assert.True(t, strings.HasPrefix(notes, "prefers garden view\n\n["))
				assert.True(t, strings.HasSuffix(notes, "Status changed to lost: went elsewhere"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedLead(), nil)
			f.repo.EXPECT().
				Update(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
					assert.Equal(t, tt.req.Status, fields[model.FieldStatus])
					tt.assert(t, fields)

					return nil
				})

			assert.NoError(t, f.svc.UpdateStatus(context.Background(), tt.req, leadID))

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestLeadService_MarkConverted(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedLead(), nil)
	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, model.StatusConverted, fields[model.FieldStatus])
			assert.Equal(t, bookingID, fields[model.FieldBookingID])
			assert.Equal(t, constant.SystemUser, fields[constant.FieldModifiedBy])

			return nil
		})

	assert.NoError(t, f.svc.MarkConverted(context.Background(), leadID, bookingID))

	converted := storedLead()
	converted.Status = model.StatusConverted
	converted.BookingID = func() *string { id := bookingID; return &id }()

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(converted, nil)

	assert.NoError(t, f.svc.MarkConverted(context.Background(), leadID, bookingID), "redelivery must not write again")

	time.Sleep(10 * time.Millisecond)
}

func TestLeadService_Delete(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedLead(), nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeFkViolation})

	err := f.svc.Delete(context.Background(), leadID)

	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}
