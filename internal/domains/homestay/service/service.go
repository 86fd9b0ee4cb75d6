package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"homestay/config"
	"homestay/infras/otel"
	"homestay/internal/domains/homestay/model"
	"homestay/internal/domains/homestay/model/dto"
	"homestay/internal/domains/homestay/repository"
	"homestay/shared"
	"homestay/shared/cache"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetHomestay    = "homestay:get"
	cacheGetAllHomestay = "homestay:gets"
	cacheCountHomestay  = "homestay:count"
)

type Homestay interface {
	Create(ctx context.Context, req dto.CreateHomestayRequest) (dto.HomestayResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHomestaysResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.HomestayResponse, error)
	Update(ctx context.Context, req dto.UpdateHomestayRequest, id string) error
	Delete(ctx context.Context, id string) error
	RefreshRoomCount(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Homestay
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Homestay, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Homestay {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHomestayRequest) (res dto.HomestayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	homestay := req.ToModel(user)

	if err = s.repo.Insert(ctx, homestay); err != nil {
		log.Error().Err(err).Msg("failed to create homestay")

		return res, fmt.Errorf("failed to create homestay: %w", err)
	}

	res.FromModel(homestay)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllHomestay)
		shared.InvalidateCaches(c, s.cache, cacheCountHomestay)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetHomestaysResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllHomestay, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for homestays")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count homestays")

		return res, fmt.Errorf("failed to count homestays: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get homestays")

		return res, fmt.Errorf("failed to get homestays: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save homestays to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountHomestay, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for homestay count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count homestays")

		return res, fmt.Errorf("failed to count homestays: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save homestay count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HomestayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetHomestay, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for homestay")

		return res, nil
	}

	homestay, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get homestay")

		return res, fmt.Errorf("failed to get homestay: %w", err)
	}

	if homestay.ID == constant.Empty {
		return res, failure.NotFound("homestay not found") // nolint:wrapcheck
	}

	res.FromModel(homestay)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save homestay to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHomestayRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateHomestayRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if homestay exists")

		return fmt.Errorf("failed to check if homestay exists: %w", err)
	}

	if !exist {
		return failure.NotFound("homestay not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update homestay")

		return fmt.Errorf("failed to update homestay: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Delete refuses homestays still referenced by rooms, leads or bookings.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if homestay exists")

		return fmt.Errorf("failed to check if homestay exists: %w", err)
	}

	if !exist {
		return failure.NotFound("homestay not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
			return failure.Conflict("homestay still has rooms or bookings") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete homestay")

		return fmt.Errorf("failed to delete homestay: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// RefreshRoomCount recomputes total_rooms after rooms are added or removed.
func (s *serviceImpl) RefreshRoomCount(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshRoomCount")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.RefreshRoomCount(ctx, id); err != nil {
		log.Error().Err(err).Str("homestay_id", id).Msg("failed to refresh homestay room count")

		return fmt.Errorf("failed to refresh homestay room count: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHomestay, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete homestay from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHomestay)
		shared.InvalidateCaches(c, s.cache, cacheCountHomestay)
	}()
}
