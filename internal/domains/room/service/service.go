package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"strconv"

	"homestay/config"
	"homestay/infras/otel"
	"homestay/infras/s3"
	homestayService "homestay/internal/domains/homestay/service"
	"homestay/internal/domains/room/model"
	"homestay/internal/domains/room/model/dto"
	"homestay/internal/domains/room/repository"
	"homestay/shared"
	"homestay/shared/cache"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/failure"
	"homestay/shared/timezone"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) error
	Delete(ctx context.Context, id string) error
	Block(ctx context.Context, req dto.BlockRoomRequest, id string) error
	Unblock(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Room
	homestay homestayService.Homestay
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	s3       s3.S3
}

func New(repo repository.Room, homestay homestayService.Homestay, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Room {
	return &serviceImpl{
		repo:     repo,
		homestay: homestay,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		s3:       s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.homestay.Get(ctx, req.HomestayID); err != nil {
		return res, err
	}

	if err = s.assertRoomNumberFree(ctx, req.HomestayID, req.RoomNumber); err != nil {
		return res, err
	}

	room := req.ToModel(user)

	if req.Image != nil {
		room.Image, err = s.uploadImage(ctx, req.ImageFile, req.Image, room.ID)
		if err != nil {
			return res, err
		}
	}

	if err = s.repo.Insert(ctx, room); err != nil {
		log.Error().Err(err).Msg("failed to create room")
		s.deleteImage(ctx, room.Image)

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict(fmt.Sprintf("room number %s already exists in this homestay", req.RoomNumber)) // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	if err := s.homestay.RefreshRoomCount(ctx, room.HomestayID); err != nil {
		log.Error().Err(err).Str("homestay_id", room.HomestayID).Msg("room created but homestay room count is stale")
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	rooms, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(rooms, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.getRoom(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	room, err := s.getRoom(ctx, id)
	if err != nil {
		return err
	}

	if req.RoomNumber != constant.Empty && req.RoomNumber != room.RoomNumber {
		if err = s.assertRoomNumberFree(ctx, room.HomestayID, req.RoomNumber); err != nil {
			return err
		}
	}

	if req.Image != nil {
		req.ImageURL, err = s.uploadImage(ctx, req.ImageFile, req.Image, room.ID)
		if err != nil {
			return err
		}
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update room")
		s.deleteImage(ctx, req.ImageURL)

		return fmt.Errorf("failed to update room: %w", err)
	}

	if req.ImageURL != constant.Empty {
		s.deleteImage(ctx, room.Image)
	}

	s.invalidate(ctx, id)

	return nil
}

// Delete refuses rooms that appear on any booking.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.getRoom(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
			return failure.Conflict("room has bookings and cannot be deleted, block it instead") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.deleteImage(ctx, room.Image)

	if err := s.homestay.RefreshRoomCount(ctx, room.HomestayID); err != nil {
		log.Error().Err(err).Str("homestay_id", room.HomestayID).Msg("room deleted but homestay room count is stale")
	}

	s.invalidate(ctx, id)

	return nil
}

// Block takes the room out of sale. Existing bookings are kept.
func (s *serviceImpl) Block(ctx context.Context, req dto.BlockRoomRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Block")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields, err := req.ToFields(user)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if _, err = s.getRoom(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to block room")

		return fmt.Errorf("failed to block room: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Unblock(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Unblock")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	room, err := s.getRoom(ctx, id)
	if err != nil {
		return err
	}

	if room.Status == model.StatusAvailable {
		return nil
	}

	fields := map[string]any{
		model.FieldStatus:        model.StatusAvailable,
		model.FieldBlockReason:   constant.Empty,
		model.FieldBlockedFrom:   nil,
		model.FieldBlockedUntil:  nil,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to unblock room")

		return fmt.Errorf("failed to unblock room: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) getRoom(ctx context.Context, id string) (model.Room, error) {
	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) assertRoomNumberFree(ctx context.Context, homestayID, roomNumber string) error {
	exist, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldHomestayID, Value: homestayID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldRoomNumber, Value: roomNumber, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check room number")

		return fmt.Errorf("failed to check room number: %w", err)
	}

	if exist {
		return failure.Conflict(fmt.Sprintf("room number %s already exists in this homestay", roomNumber)) // nolint:wrapcheck
	}

	return nil
}

// uploadImage stores the image under the room id so a replacement never collides with another room.
func (s *serviceImpl) uploadImage(ctx context.Context, file multipart.File, header *multipart.FileHeader, roomID string) (string, error) {
	bucketName := s.cfg.External.S3.BucketName
	fileName := roomID + "-" + strconv.FormatInt(timezone.Now().Unix(), 10) + path.Ext(header.Filename)

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, file, header, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload room image to S3")

		return constant.Empty, fmt.Errorf("failed to upload room image to S3: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) deleteImage(ctx context.Context, url string) {
	if url == constant.Empty {
		return
	}

	bucketName := s.cfg.External.S3.BucketName

	objectName := s.s3.GetObjectNameFromURL(bucketName, url)
	if objectName == constant.Empty {
		log.Warn().Str("url", url).Msg("failed to extract object name from URL")

		return
	}

	if err := s.s3.DeleteFile(ctx, bucketName, constant.Empty, objectName); err != nil {
		log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete room image from S3")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()
}
