package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"homestay/config"
	"homestay/infras/otel/mocks"
	s3Mocks "homestay/infras/s3/mocks"
	homestayDto "homestay/internal/domains/homestay/model/dto"
	homestayMocks "homestay/internal/domains/homestay/service/mocks"
	roomMocks "homestay/internal/domains/room/mocks"
	"homestay/internal/domains/room/model"
	"homestay/internal/domains/room/model/dto"
	"homestay/internal/domains/room/service"
	cacheMocks "homestay/shared/cache/mocks"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/failure"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	homestayID = "2f1d2c3b-4a5e-4f60-9a7b-8c9d0e1f2a3b"
	roomID     = "7c0e8d4a-1b2c-4d3e-8f9a-0b1c2d3e4f5a"
	imageURL   = "https://cdn.example.com/room/old.png"
)

type fixture struct {
	svc      service.Room
	repo     *roomMocks.MockRoom
	homestay *homestayMocks.MockHomestay
	s3       *s3Mocks.MockS3
	cache    *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:     roomMocks.NewMockRoom(ctrl),
		homestay: homestayMocks.NewMockHomestay(ctrl),
		s3:       s3Mocks.NewMockS3(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "homestay"

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, f.homestay, cfg, f.cache, mocks.NewOtel(), f.s3)

	return f
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "front-desk")
}

func storedRoom() model.Room {
	return model.Room{
		ID:           roomID,
		HomestayID:   homestayID,
		RoomNumber:   "101",
		Capacity:     2,
		PricePerHead: decimal.NewFromInt(1000),
		Image:        imageURL,
		Status:       model.StatusAvailable,
	}
}

func TestRoomService_Create(t *testing.T) {
	createReq := func() dto.CreateRoomRequest {
		return dto.CreateRoomRequest{
			HomestayID:   homestayID,
			RoomNumber:   "101",
			Capacity:     2,
			PricePerHead: decimal.RequireFromString("1250.50"),
		}
	}

	tests := []struct {
		name      string
		req       func() dto.CreateRoomRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "creates room and refreshes homestay counter",
			req:  createReq,
			setupMock: func(f fixture) {
				f.homestay.EXPECT().Get(gomock.Any(), homestayID).Return(homestayDto.HomestayResponse{ID: homestayID}, nil)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) error {
						assert.Equal(t, model.StatusAvailable, room.Status)
						assert.Equal(t, model.TypeNonView, room.RoomType)
						assert.True(t, room.PricePerHead.Equal(decimal.RequireFromString("1250.5")))

						return nil
					})
				f.homestay.EXPECT().RefreshRoomCount(gomock.Any(), homestayID).Return(nil)
			},
		},
		{
			name: "homestay not found",
			req:  createReq,
			setupMock: func(f fixture) {
				f.homestay.EXPECT().Get(gomock.Any(), homestayID).Return(homestayDto.HomestayResponse{}, failure.NotFound("homestay not found"))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "room number taken",
			req:  createReq,
			setupMock: func(f fixture) {
				f.homestay.EXPECT().Get(gomock.Any(), homestayID).Return(homestayDto.HomestayResponse{ID: homestayID}, nil)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "unique violation on insert removes uploaded image",
			req: func() dto.CreateRoomRequest {
				req := createReq()
				req.Image = &multipart.FileHeader{Filename: "room.png"}

				return req
			},
			setupMock: func(f fixture) {
				f.homestay.EXPECT().Get(gomock.Any(), homestayID).Return(homestayDto.HomestayResponse{ID: homestayID}, nil)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.s3.EXPECT().
					UploadFile(gomock.Any(), "homestay", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/room/new.png", nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
				f.s3.EXPECT().GetObjectNameFromURL("homestay", "https://cdn.example.com/room/new.png").Return("room/new.png")
				f.s3.EXPECT().DeleteFile(gomock.Any(), "homestay", constant.Empty, "room/new.png").Return(nil)
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(userContext(), tt.req())

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "101", res.RoomNumber)
			assert.Equal(t, "front-desk", res.CreatedBy)
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), "room:get:"+roomID, gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedRoom(), nil)

	res, err := f.svc.Get(context.Background(), roomID)

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, homestayID, res.HomestayID)
	assert.Equal(t, "1000", res.PricePerHead.String())

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

	_, err = f.svc.Get(context.Background(), roomID)
	assert.True(t, failure.HasReason(err, failure.ReasonNotFound))
}

func TestRoomService_GetAll(t *testing.T) {
	f := newFixture(t)
	params := gDto.QueryParams{Page: 2, Limit: 5}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(6, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Room{storedRoom()}, nil)

	res, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Rooms, 1)
}

func TestRoomService_Update(t *testing.T) {
	capacity := 3
	price := decimal.NewFromInt(0)

	tests := []struct {
		name      string
		req       dto.UpdateRoomRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:      "empty request",
			req:       dto.UpdateRoomRequest{},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "room not found",
			req:  dto.UpdateRoomRequest{Capacity: &capacity},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "free price and capacity are written",
			req:  dto.UpdateRoomRequest{Capacity: &capacity, PricePerHead: &price},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedRoom(), nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, &capacity, fields[model.FieldCapacity])
						assert.Equal(t, &price, fields[model.FieldPricePerHead])
						assert.NotContains(t, fields, model.FieldImage)

						return nil
					})
			},
		},
		{
			name: "renumbering onto a taken number",
			req:  dto.UpdateRoomRequest{RoomNumber: "102"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedRoom(), nil)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "new image replaces the old one",
			req:  dto.UpdateRoomRequest{Image: &multipart.FileHeader{Filename: "garden.jpg"}},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedRoom(), nil)
				f.s3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/room/garden.jpg", nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "https://cdn.example.com/room/garden.jpg", fields[model.FieldImage])

						return nil
					})
				f.s3.EXPECT().GetObjectNameFromURL(gomock.Any(), imageURL).Return("room/old.png")
				f.s3.EXPECT().DeleteFile(gomock.Any(), gomock.Any(), constant.Empty, "room/old.png").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Update(userContext(), tt.req, roomID)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestRoomService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "deletes room, image and refreshes counter",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedRoom(), nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				f.s3.EXPECT().GetObjectNameFromURL(gomock.Any(), imageURL).Return("room/old.png")
				f.s3.EXPECT().DeleteFile(gomock.Any(), gomock.Any(), gomock.Any(), "room/old.png").Return(nil)
				f.homestay.EXPECT().RefreshRoomCount(gomock.Any(), homestayID).Return(nil)
			},
		},
		{
			name: "room on a booking",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedRoom(), nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeFkViolation})
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Delete(context.Background(), roomID)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestRoomService_Block(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.BlockRoomRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "blocks with dates",
			req:  dto.BlockRoomRequest{Reason: "roof repair", BlockedFrom: "2025-02-01", BlockedUntil: "2025-02-05"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedRoom(), nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusBlocked, fields[model.FieldStatus])
						assert.Equal(t, "roof repair", fields[model.FieldBlockReason])
						assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), fields[model.FieldBlockedFrom])

						return nil
					})
			},
		},
		{
			name:      "inverted range",
			req:       dto.BlockRoomRequest{Reason: "painting", BlockedFrom: "2025-02-05", BlockedUntil: "2025-02-01"},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "maintenance",
			req:  dto.BlockRoomRequest{Reason: "plumbing", Status: model.StatusMaintenance},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedRoom(), nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusMaintenance, fields[model.FieldStatus])
						assert.Nil(t, fields[model.FieldBlockedFrom])

						return nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Block(userContext(), tt.req, roomID)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestRoomService_Unblock(t *testing.T) {
	f := newFixture(t)

	blocked := storedRoom()
	blocked.Status = model.StatusBlocked
	blocked.BlockReason = "roof repair"

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(blocked, nil)
	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, model.StatusAvailable, fields[model.FieldStatus])
			assert.Equal(t, constant.Empty, fields[model.FieldBlockReason])

			return nil
		})

	assert.NoError(t, f.svc.Unblock(userContext(), roomID))

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedRoom(), nil)
	assert.NoError(t, f.svc.Unblock(userContext(), roomID), "already available is a no-op")

	time.Sleep(10 * time.Millisecond)
}
