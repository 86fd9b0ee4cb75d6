package service

//go:generate go run go.uber.org/mock/mockgen -source=./custom.go -destination=./mocks/custom_mock.go -package=mocks

import (
	"context"
	"fmt"

	"homestay/config"
	"homestay/infras/otel"
	"homestay/infras/postgres"
	leadService "homestay/internal/domains/lead/service"
	"homestay/internal/domains/tourpackage/model"
	"homestay/internal/domains/tourpackage/model/dto"
	"homestay/internal/domains/tourpackage/repository"
	"homestay/shared"
	"homestay/shared/cache"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/failure"
	"homestay/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetCustom    = "package:custom:get"
	cacheGetAllCustom = "package:custom:gets"
	cacheCountCustom  = "package:custom:count"
)

type CustomPackage interface {
	Create(ctx context.Context, req dto.CreateCustomPackageRequest) (dto.CustomPackageResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCustomPackagesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.CustomPackageResponse, error)
	GetByReference(ctx context.Context, reference string) (dto.CustomPackageResponse, error)
	Update(ctx context.Context, req dto.UpdateCustomPackageRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateCustomStatusRequest, id string) error
	SendQuote(ctx context.Context, req dto.SendQuoteRequest, id string) error
	Confirm(ctx context.Context, req dto.ConfirmCustomPackageRequest, id string) error
	Delete(ctx context.Context, id string) error
	AddItinerary(ctx context.Context, req dto.CreateCustomItineraryRequest, id string) (dto.CustomItineraryResponse, error)
	UpdateItinerary(ctx context.Context, req dto.UpdateCustomItineraryRequest, id, itineraryID string) error
	DeleteItinerary(ctx context.Context, id, itineraryID string) error
}

type customServiceImpl struct {
	repo        repository.CustomPackage
	itineraries repository.CustomItinerary
	lead        leadService.Lead
	transactor  postgres.Transactor
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func NewCustomPackage(
	repo repository.CustomPackage,
	itineraries repository.CustomItinerary,
	lead leadService.Lead,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) CustomPackage {
	return &customServiceImpl{
		repo:        repo,
		itineraries: itineraries,
		lead:        lead,
		transactor:  transactor,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Create opens a draft for the customer. A given lead must exist. The reference takes the next
// value of the custom package sequence.
func (s *customServiceImpl) Create(ctx context.Context, req dto.CreateCustomPackageRequest) (res dto.CustomPackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCustomPackage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	custom, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if custom.LeadID != nil {
		if _, err = s.lead.Get(ctx, *custom.LeadID); err != nil {
			return res, err //nolint:wrapcheck
		}
	}

	err = s.transactor.WithTx(ctx, nil, func(tx *sqlx.Tx) error {
		seq, err := s.repo.NextSequenceTx(ctx, tx, model.SequenceCustomReference)
		if err != nil {
			return err //nolint:wrapcheck
		}

		custom.Reference = model.Reference(custom.CreatedAt.Year(), seq)

		return s.repo.InsertTx(ctx, tx, custom) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create custom package")

		if uniqueViolation(err) {
			return res, failure.Conflict("custom package reference already exists") // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to create custom package: %w", err)
	}

	res.FromModel(custom)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCustom)
		shared.InvalidateCaches(c, s.cache, cacheCountCustom)
		shared.InvalidateCaches(c, s.cache, cachePackageReport)
	}()

	return res, nil
}

func (s *customServiceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCustomPackagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllCustomPackages")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCustom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for custom packages")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count custom packages")

		return res, fmt.Errorf("failed to count custom packages: %w", err)
	}

	customs, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get custom packages")

		return res, fmt.Errorf("failed to get custom packages: %w", err)
	}

	res.FromModels(customs, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save custom packages to cache")
		}
	}()

	return res, nil
}

func (s *customServiceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountCustomPackages")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCustom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for custom package count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count custom packages")

		return res, fmt.Errorf("failed to count custom packages: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save custom package count to cache")
		}
	}()

	return res, nil
}

// Get returns the custom package with its itinerary by day.
func (s *customServiceImpl) Get(ctx context.Context, id string) (res dto.CustomPackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCustomPackage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetCustom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for custom package")

		return res, nil
	}

	custom, err := s.getCustom(ctx, shared.FilterByID(id, model.FieldID, model.CustomTableName))
	if err != nil {
		return res, err
	}

	byCustom := gDto.And(gDto.Filter{Field: model.FieldCustomPackageID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.CustomItineraryTableName})

	itineraries, err := s.itineraries.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldDayNumber, SortDir: gDto.SortDirAsc}, byCustom)
	if err != nil {
		log.Error().Err(err).Msg("failed to get custom package itinerary")

		return res, fmt.Errorf("failed to get custom package itinerary: %w", err)
	}

	res.FromModel(custom)
	res.Itinerary = dto.CustomItinerariesFromModels(itineraries)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save custom package to cache")
		}
	}()

	return res, nil
}

func (s *customServiceImpl) GetByReference(ctx context.Context, reference string) (res dto.CustomPackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCustomPackageByReference")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.And(gDto.Filter{Field: model.FieldReference, Value: reference, Operator: gDto.FilterOperatorEq, Table: model.CustomTableName})

	custom, err := s.getCustom(ctx, filter, model.FieldID)
	if err != nil {
		return res, err
	}

	return s.Get(ctx, custom.ID)
}

func (s *customServiceImpl) Update(ctx context.Context, req dto.UpdateCustomPackageRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateCustomPackage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields, err := req.ToFields(user)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if _, err = s.getCustom(ctx, shared.FilterByID(id, model.FieldID, model.CustomTableName), model.FieldID); err != nil {
		return err
	}

	return s.update(ctx, fields, id, "failed to update custom package")
}

func (s *customServiceImpl) UpdateStatus(ctx context.Context, req dto.UpdateCustomStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateCustomPackageStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.getCustom(ctx, shared.FilterByID(id, model.FieldID, model.CustomTableName), model.FieldID); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	return s.update(ctx, fields, id, "failed to update custom package status")
}

// SendQuote records the quoted prices and marks the quote as sent.
func (s *customServiceImpl) SendQuote(ctx context.Context, req dto.SendQuoteRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendQuote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields, err := req.ToFields(user)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	custom, err := s.getCustom(ctx, shared.FilterByID(id, model.FieldID, model.CustomTableName))
	if err != nil {
		return err
	}

	if custom.Closed() {
		return failure.ConflictWithReason(failure.ReasonInvalidStatusChange, // nolint:wrapcheck
			fmt.Sprintf("cannot send a quote for a %s custom package", custom.Status))
	}

	return s.update(ctx, fields, id, "failed to send quote")
}

// Confirm settles the final price. The discount is the quoted total less the final price, so a
// package without a quote, or a final price above the quote, is rejected.
func (s *customServiceImpl) Confirm(ctx context.Context, req dto.ConfirmCustomPackageRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmCustomPackage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	custom, err := s.getCustom(ctx, shared.FilterByID(id, model.FieldID, model.CustomTableName))
	if err != nil {
		return err
	}

	if custom.Closed() {
		return failure.ConflictWithReason(failure.ReasonInvalidStatusChange, // nolint:wrapcheck
			fmt.Sprintf("cannot confirm a %s custom package", custom.Status))
	}

	if !custom.Quoted() {
		return failure.BadRequestWithReason(failure.ReasonQuoteRequired, "custom package has no quote to confirm") // nolint:wrapcheck
	}

	if req.FinalPrice.GreaterThan(custom.TotalQuotedPrice.Decimal) {
		return failure.BadRequestFromString(fmt.Sprintf("final price %s exceeds the quoted total %s", // nolint:wrapcheck
			req.FinalPrice.StringFixed(2), custom.TotalQuotedPrice.Decimal.StringFixed(2)))
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return s.update(ctx, dto.ConfirmFields(custom, req.FinalPrice, user), id, "failed to confirm custom package")
}

func (s *customServiceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteCustomPackage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.getCustom(ctx, shared.FilterByID(id, model.FieldID, model.CustomTableName), model.FieldID); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.CustomTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete custom package")

		return fmt.Errorf("failed to delete custom package: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *customServiceImpl) AddItinerary(ctx context.Context, req dto.CreateCustomItineraryRequest, id string) (res dto.CustomItineraryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddCustomItinerary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.getCustom(ctx, shared.FilterByID(id, model.FieldID, model.CustomTableName), model.FieldID); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	itinerary, err := req.ToModel(id, user)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.itineraries.Insert(ctx, itinerary); err != nil {
		log.Error().Err(err).Msg("failed to add custom itinerary day")

		if uniqueViolation(err) {
			return res, failure.Conflict(fmt.Sprintf("day %d already exists in this custom package", req.DayNumber)) // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to add custom itinerary day: %w", err)
	}

	res.FromModel(itinerary)
	s.invalidate(ctx, id)

	return res, nil
}

func (s *customServiceImpl) UpdateItinerary(ctx context.Context, req dto.UpdateCustomItineraryRequest, id, itineraryID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateCustomItinerary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := s.itineraryFilter(id, itineraryID)

	if err = s.assertItinerary(ctx, filter); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.itineraries.Update(ctx, req.ToFields(user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update custom itinerary day")

		if uniqueViolation(err) {
			return failure.Conflict("day already exists in this custom package") // nolint:wrapcheck
		}

		return fmt.Errorf("failed to update custom itinerary day: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *customServiceImpl) DeleteItinerary(ctx context.Context, id, itineraryID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteCustomItinerary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := s.itineraryFilter(id, itineraryID)

	if err = s.assertItinerary(ctx, filter); err != nil {
		return err
	}

	if err = s.itineraries.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete custom itinerary day")

		return fmt.Errorf("failed to delete custom itinerary day: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *customServiceImpl) update(ctx context.Context, fields map[string]any, id, msg string) error {
	if err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.CustomTableName)); err != nil {
		log.Error().Err(err).Msg(msg)

		return fmt.Errorf("%s: %w", msg, err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *customServiceImpl) getCustom(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CustomPackage, error) {
	custom, err := s.repo.Get(ctx, filter, columns...)
	if err != nil {
		log.Error().Err(err).Msg("failed to get custom package")

		return custom, fmt.Errorf("failed to get custom package: %w", err)
	}

	if custom.ID == constant.Empty {
		return custom, failure.NotFound("custom package not found") // nolint:wrapcheck
	}

	return custom, nil
}

func (s *customServiceImpl) itineraryFilter(id, itineraryID string) gDto.FilterGroup {
	return gDto.And(
		gDto.Filter{Field: model.FieldID, Value: itineraryID, Operator: gDto.FilterOperatorEq, Table: model.CustomItineraryTableName},
		gDto.Filter{Field: model.FieldCustomPackageID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.CustomItineraryTableName},
	)
}

func (s *customServiceImpl) assertItinerary(ctx context.Context, filter gDto.FilterGroup) error {
	itinerary, err := s.itineraries.Get(ctx, filter, model.FieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get custom itinerary day")

		return fmt.Errorf("failed to get custom itinerary day: %w", err)
	}

	if itinerary.ID == constant.Empty {
		return failure.NotFound("custom itinerary day not found") // nolint:wrapcheck
	}

	return nil
}

func (s *customServiceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCustom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete custom package from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCustom)
		shared.InvalidateCaches(c, s.cache, cacheCountCustom)
		shared.InvalidateCaches(c, s.cache, cachePackageReport)
	}()
}
