package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"homestay/config"
	"homestay/infras/otel"
	"homestay/infras/postgres"
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
	"github.com/shopspring/decimal"
)

const (
	cacheGetPackage    = "package:get"
	cacheGetAllPackage = "package:gets"
	cacheCountPackage  = "package:count"
	cachePackageReport = "package:report"

	reportStatistics = "statistics"
)

type Package interface {
	Create(ctx context.Context, req dto.CreatePackageRequest) (dto.PackageResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPackagesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.PackageResponse, error)
	GetByCode(ctx context.Context, code string) (dto.PackageResponse, error)
	Update(ctx context.Context, req dto.UpdatePackageRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdatePackageStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
	Featured(ctx context.Context) ([]dto.PackageResponse, error)
	Popular(ctx context.Context) ([]dto.PackageResponse, error)
	Statistics(ctx context.Context) (dto.StatisticsResponse, error)
	AddItinerary(ctx context.Context, req dto.CreateItineraryRequest, id string) (dto.ItineraryResponse, error)
	UpdateItinerary(ctx context.Context, req dto.UpdateItineraryRequest, id, itineraryID string) error
	DeleteItinerary(ctx context.Context, id, itineraryID string) error
	AddPricing(ctx context.Context, req dto.CreatePricingRequest, id string) (dto.PricingResponse, error)
	UpdatePricing(ctx context.Context, req dto.UpdatePricingRequest, id, pricingID string) error
	DeletePricing(ctx context.Context, id, pricingID string) error
	ReplacePricing(ctx context.Context, req dto.BulkPricingRequest, id string) ([]dto.PricingResponse, error)
	PricingForPersons(ctx context.Context, id string, persons int) (dto.PricingResponse, error)
	AddInclusion(ctx context.Context, req dto.CreateInclusionRequest, id string) (dto.InclusionResponse, error)
	UpdateInclusion(ctx context.Context, req dto.UpdateInclusionRequest, id, inclusionID string) error
	DeleteInclusion(ctx context.Context, id, inclusionID string) error
}

type serviceImpl struct {
	repo        repository.Package
	itineraries repository.Itinerary
	pricing     repository.Pricing
	inclusions  repository.Inclusion
	transactor  postgres.Transactor
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Package,
	itineraries repository.Itinerary,
	pricing repository.Pricing,
	inclusions repository.Inclusion,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Package {
	return &serviceImpl{
		repo:        repo,
		itineraries: itineraries,
		pricing:     pricing,
		inclusions:  inclusions,
		transactor:  transactor,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Create stores the package with its days, pricing tiers and inclusions in one transaction. The
// code takes the next value of the package sequence.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePackageRequest) (res dto.PackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	pkg, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = checkFloor(pkg.MinPricePerHead, pkg.BasePricePerHead); err != nil {
		return res, err
	}

	itineraries := make([]model.Itinerary, len(req.Itineraries))
	for i := range req.Itineraries {
		itineraries[i] = req.Itineraries[i].ToModel(pkg.ID, user)
	}

	pricing := make([]model.Pricing, len(req.Pricing))
	for i := range req.Pricing {
		if pricing[i], err = req.Pricing[i].ToModel(pkg.ID, user); err != nil {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}

		if err = checkFloor(pkg.MinPricePerHead, pricing[i].PricePerHead); err != nil {
			return res, err
		}
	}

	if err = assertDistinct(itineraries, pricing); err != nil {
		return res, err
	}

	inclusions := make([]model.Inclusion, len(req.Inclusions))
	for i := range req.Inclusions {
		inclusions[i] = req.Inclusions[i].ToModel(pkg.ID, user)
	}

	err = s.transactor.WithTx(ctx, nil, func(tx *sqlx.Tx) error {
		seq, err := s.repo.NextSequenceTx(ctx, tx, model.SequenceCode)
		if err != nil {
			return err //nolint:wrapcheck
		}

		pkg.Code = model.Code(pkg.Destination, pkg.Nights, seq)

		if err := s.repo.InsertTx(ctx, tx, pkg); err != nil {
			return err //nolint:wrapcheck
		}

		if err := s.itineraries.InsertBulkTx(ctx, tx, itineraries); err != nil {
			return err //nolint:wrapcheck
		}

		if err := s.pricing.InsertBulkTx(ctx, tx, pricing); err != nil {
			return err //nolint:wrapcheck
		}

		return s.inclusions.InsertBulkTx(ctx, tx, inclusions) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create package")

		if uniqueViolation(err) {
			return res, failure.Conflict("package code already exists") // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to create package: %w", err)
	}

	res.FromModel(pkg)
	res.Itineraries = dto.ItinerariesFromModels(itineraries)
	res.Pricing = dto.PricingFromModels(pricing)
	res.Inclusions = dto.InclusionsFromModels(inclusions)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPackage)
		shared.InvalidateCaches(c, s.cache, cacheCountPackage)
		shared.InvalidateCaches(c, s.cache, cachePackageReport)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPackagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPackage, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for packages")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count packages")

		return res, fmt.Errorf("failed to count packages: %w", err)
	}

	packages, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get packages")

		return res, fmt.Errorf("failed to get packages: %w", err)
	}

	res.FromModels(packages, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save packages to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountPackage, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for package count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count packages")

		return res, fmt.Errorf("failed to count packages: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save package count to cache")
		}
	}()

	return res, nil
}

// Get returns the package with its days in order, its pricing tiers and its inclusions.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetPackage, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for package")

		return res, nil
	}

	pkg, err := s.getPackage(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return res, err
	}

	res.FromModel(pkg)

	if err = s.details(ctx, &res); err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save package to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByCode(ctx context.Context, code string) (res dto.PackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByCode")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pkg, err := s.getPackage(ctx, gDto.And(gDto.Filter{Field: model.FieldCode, Value: code, Operator: gDto.FilterOperatorEq, Table: model.TableName}), model.FieldID)
	if err != nil {
		return res, err
	}

	return s.Get(ctx, pkg.ID)
}

// Update rejects a change that would leave the base price under the minimum, checked against the
// merged values.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePackageRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
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

	pkg, err := s.getPackage(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return err
	}

	merged := req.Apply(pkg)

	if err = checkFloor(merged.MinPricePerHead, merged.BasePricePerHead); err != nil {
		return err
	}

	if merged.MaxPersons < merged.MinPersons {
		return failure.BadRequest(dto.ErrPersonsRange) // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update package")

		return fmt.Errorf("failed to update package: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdatePackageStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.getPackage(ctx, shared.FilterByID(id, model.FieldID, model.TableName), model.FieldID); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update package status")

		return fmt.Errorf("failed to update package status: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Delete removes the package. Days, tiers and inclusions go with it.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.getPackage(ctx, shared.FilterByID(id, model.FieldID, model.TableName), model.FieldID); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete package")

		return fmt.Errorf("failed to delete package: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Featured(ctx context.Context) (res []dto.PackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Featured")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.And(
		gDto.Filter{Field: model.FieldStatus, Value: model.StatusActive, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldIsFeatured, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	)

	return s.list(ctx, gDto.QueryParams{SortBy: model.FieldDisplayOrder, SortDir: gDto.SortDirAsc}, filter)
}

func (s *serviceImpl) Popular(ctx context.Context) (res []dto.PackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Popular")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.And(gDto.Filter{Field: model.FieldStatus, Value: model.StatusActive, Operator: gDto.FilterOperatorEq, Table: model.TableName})

	return s.list(ctx, gDto.QueryParams{Page: 1, Limit: model.PopularLimit, SortBy: model.FieldDisplayOrder, SortDir: gDto.SortDirAsc}, filter)
}

func (s *serviceImpl) Statistics(ctx context.Context) (res dto.StatisticsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Statistics")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cachePackageReport, reportStatistics)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for package statistics")

		return res, nil
	}

	stats, err := s.repo.Statistics(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get package statistics")

		return res, fmt.Errorf("failed to get package statistics: %w", err)
	}

	res.FromModel(stats)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save package statistics to cache")
		}
	}()

	return res, nil
}

// list serves the storefront lists through the package list cache.
func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res []dto.PackageResponse, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPackage, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for package list")

		return res, nil
	}

	packages, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get packages")

		return res, fmt.Errorf("failed to get packages: %w", err)
	}

	res = dto.PackagesFromModels(packages)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save package list to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) details(ctx context.Context, res *dto.PackageResponse) error {
	byPackage := gDto.And(gDto.Filter{Field: model.FieldPackageID, Value: res.ID, Operator: gDto.FilterOperatorEq})

	itineraries, err := s.itineraries.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldDayNumber, SortDir: gDto.SortDirAsc}, byPackage)
	if err != nil {
		log.Error().Err(err).Msg("failed to get package itinerary")

		return fmt.Errorf("failed to get package itinerary: %w", err)
	}

	pricing, err := s.pricing.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldPersons, SortDir: gDto.SortDirAsc}, byPackage)
	if err != nil {
		log.Error().Err(err).Msg("failed to get package pricing")

		return fmt.Errorf("failed to get package pricing: %w", err)
	}

	inclusions, err := s.inclusions.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldDisplayOrder, SortDir: gDto.SortDirAsc}, byPackage)
	if err != nil {
		log.Error().Err(err).Msg("failed to get package inclusions")

		return fmt.Errorf("failed to get package inclusions: %w", err)
	}

	res.Itineraries = dto.ItinerariesFromModels(itineraries)
	res.Pricing = dto.PricingFromModels(pricing)
	res.Inclusions = dto.InclusionsFromModels(inclusions)

	return nil
}

func (s *serviceImpl) getPackage(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Package, error) {
	pkg, err := s.repo.Get(ctx, filter, columns...)
	if err != nil {
		log.Error().Err(err).Msg("failed to get package")

		return pkg, fmt.Errorf("failed to get package: %w", err)
	}

	if pkg.ID == constant.Empty {
		return pkg, failure.NotFound("package not found") // nolint:wrapcheck
	}

	return pkg, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPackage, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete package from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPackage)
		shared.InvalidateCaches(c, s.cache, cacheCountPackage)
		shared.InvalidateCaches(c, s.cache, cachePackageReport)
	}()
}

// checkFloor rejects a per-head price under the package minimum.
func checkFloor(minimum, price decimal.Decimal) error {
	if price.LessThan(minimum) {
		return failure.BadRequestWithReason(failure.ReasonPriceBelowMinimum, // nolint:wrapcheck
			fmt.Sprintf("price per head %s is below the package minimum %s", price.StringFixed(2), minimum.StringFixed(2)))
	}

	return nil
}

// assertDistinct rejects a request repeating a day number or a pricing tier.
func assertDistinct(itineraries []model.Itinerary, pricing []model.Pricing) error {
	days := map[int]struct{}{}

	for _, itinerary := range itineraries {
		if _, ok := days[itinerary.DayNumber]; ok {
			return failure.Conflict(fmt.Sprintf("day %d is listed more than once", itinerary.DayNumber)) // nolint:wrapcheck
		}

		days[itinerary.DayNumber] = struct{}{}
	}

	tiers := map[string]struct{}{}

	for _, tier := range pricing {
		key := fmt.Sprintf("%d:%s:%s", tier.NumberOfPersons, tier.RoomType, tier.SeasonType)
		if _, ok := tiers[key]; ok {
			return failure.Conflict(fmt.Sprintf("pricing for %d persons in %s rooms in %s season is listed more than once", // nolint:wrapcheck
				tier.NumberOfPersons, tier.RoomType, tier.SeasonType))
		}

		tiers[key] = struct{}{}
	}

	return nil
}
