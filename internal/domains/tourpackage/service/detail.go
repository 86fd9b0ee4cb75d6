package service

import (
	"context"
	"errors"
	"fmt"

	"homestay/internal/domains/tourpackage/model"
	"homestay/internal/domains/tourpackage/model/dto"
	"homestay/shared"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

func (s *serviceImpl) AddItinerary(ctx context.Context, req dto.CreateItineraryRequest, id string) (res dto.ItineraryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddItinerary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.getPackage(ctx, shared.FilterByID(id, model.FieldID, model.TableName), model.FieldID); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	itinerary := req.ToModel(id, user)

	if err = s.itineraries.Insert(ctx, itinerary); err != nil {
		log.Error().Err(err).Msg("failed to add itinerary day")

		if uniqueViolation(err) {
			return res, failure.Conflict(fmt.Sprintf("day %d already exists in this package", req.DayNumber)) // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to add itinerary day: %w", err)
	}

	res.FromModel(itinerary)
	s.invalidate(ctx, id)

	return res, nil
}

func (s *serviceImpl) UpdateItinerary(ctx context.Context, req dto.UpdateItineraryRequest, id, itineraryID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateItinerary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := detailFilter(model.ItineraryTableName, id, itineraryID)

	itinerary, err := s.itineraries.Get(ctx, filter, model.FieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get itinerary day")

		return fmt.Errorf("failed to get itinerary day: %w", err)
	}

	if itinerary.ID == constant.Empty {
		return failure.NotFound("itinerary day not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.itineraries.Update(ctx, req.ToFields(user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update itinerary day")

		if uniqueViolation(err) {
			return failure.Conflict("day already exists in this package") // nolint:wrapcheck
		}

		return fmt.Errorf("failed to update itinerary day: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) DeleteItinerary(ctx context.Context, id, itineraryID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteItinerary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := detailFilter(model.ItineraryTableName, id, itineraryID)

	itinerary, err := s.itineraries.Get(ctx, filter, model.FieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get itinerary day")

		return fmt.Errorf("failed to get itinerary day: %w", err)
	}

	if itinerary.ID == constant.Empty {
		return failure.NotFound("itinerary day not found") // nolint:wrapcheck
	}

	if err = s.itineraries.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete itinerary day")

		return fmt.Errorf("failed to delete itinerary day: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// AddPricing adds a tier. The per-head price must not be under the package minimum and the tier
// must not already exist for the head count, room type and season.
func (s *serviceImpl) AddPricing(ctx context.Context, req dto.CreatePricingRequest, id string) (res dto.PricingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddPricing")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pkg, err := s.getPackage(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	pricing, err := req.ToModel(id, user)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = checkFloor(pkg.MinPricePerHead, pricing.PricePerHead); err != nil {
		return res, err
	}

	exist, err := s.pricing.Exist(ctx, tierFilter(pricing, constant.Empty))
	if err != nil {
		log.Error().Err(err).Msg("failed to check pricing tier")

		return res, fmt.Errorf("failed to check pricing tier: %w", err)
	}

	if exist {
		return res, tierConflict(pricing)
	}

	if err = s.pricing.Insert(ctx, pricing); err != nil {
		log.Error().Err(err).Msg("failed to add pricing tier")

		if uniqueViolation(err) {
			return res, tierConflict(pricing)
		}

		return res, fmt.Errorf("failed to add pricing tier: %w", err)
	}

	res.FromModel(pricing)
	s.invalidate(ctx, id)

	return res, nil
}

// UpdatePricing recalculates the tier total and checks the price floor again.
func (s *serviceImpl) UpdatePricing(ctx context.Context, req dto.UpdatePricingRequest, id, pricingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePricing")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	pkg, err := s.getPackage(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return err
	}

	filter := detailFilter(model.PricingTableName, id, pricingID)

	pricing, err := s.pricing.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pricing tier")

		return fmt.Errorf("failed to get pricing tier: %w", err)
	}

	if pricing.ID == constant.Empty {
		return failure.NotFound("pricing tier not found") // nolint:wrapcheck
	}

	merged := req.Apply(pricing)

	if err = checkFloor(pkg.MinPricePerHead, merged.PricePerHead); err != nil {
		return err
	}

	exist, err := s.pricing.Exist(ctx, tierFilter(merged, pricingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check pricing tier")

		return fmt.Errorf("failed to check pricing tier: %w", err)
	}

	if exist {
		return tierConflict(merged)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.pricing.Update(ctx, req.ToFields(pricing, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update pricing tier")

		if uniqueViolation(err) {
			return tierConflict(merged)
		}

		return fmt.Errorf("failed to update pricing tier: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) DeletePricing(ctx context.Context, id, pricingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeletePricing")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := detailFilter(model.PricingTableName, id, pricingID)

	pricing, err := s.pricing.Get(ctx, filter, model.FieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pricing tier")

		return fmt.Errorf("failed to get pricing tier: %w", err)
	}

	if pricing.ID == constant.Empty {
		return failure.NotFound("pricing tier not found") // nolint:wrapcheck
	}

	if err = s.pricing.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete pricing tier")

		return fmt.Errorf("failed to delete pricing tier: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// ReplacePricing swaps every tier of the package for the given ones in one transaction.
func (s *serviceImpl) ReplacePricing(ctx context.Context, req dto.BulkPricingRequest, id string) (res []dto.PricingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReplacePricing")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pkg, err := s.getPackage(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	tiers := make([]model.Pricing, len(req.Tiers))
	for i := range req.Tiers {
		if tiers[i], err = req.Tiers[i].ToModel(id, user); err != nil {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}

		if err = checkFloor(pkg.MinPricePerHead, tiers[i].PricePerHead); err != nil {
			return res, err
		}
	}

	if err = assertDistinct(nil, tiers); err != nil {
		return res, err
	}

	byPackage := gDto.And(gDto.Filter{Field: model.FieldPackageID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.PricingTableName})

	err = s.transactor.WithTx(ctx, nil, func(tx *sqlx.Tx) error {
		if err := s.pricing.DeleteTx(ctx, tx, byPackage); err != nil {
			return err //nolint:wrapcheck
		}

		return s.pricing.InsertBulkTx(ctx, tx, tiers) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to replace pricing tiers")

		return res, fmt.Errorf("failed to replace pricing tiers: %w", err)
	}

	s.invalidate(ctx, id)

	return dto.PricingFromModels(tiers), nil
}

// PricingForPersons returns the active tier for the head count, preferring the default tier.
func (s *serviceImpl) PricingForPersons(ctx context.Context, id string, persons int) (res dto.PricingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PricingForPersons")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.And(
		gDto.Filter{Field: model.FieldPackageID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.PricingTableName},
		gDto.Filter{Field: model.FieldPersons, Value: persons, Operator: gDto.FilterOperatorEq, Table: model.PricingTableName},
		gDto.Filter{Field: model.FieldIsActive, Value: true, Operator: gDto.FilterOperatorEq, Table: model.PricingTableName},
	)

	tiers, err := s.pricing.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldPricePerHead, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pricing tiers")

		return res, fmt.Errorf("failed to get pricing tiers: %w", err)
	}

	if len(tiers) == 0 {
		return res, failure.NotFound(fmt.Sprintf("no pricing for %d persons", persons)) // nolint:wrapcheck
	}

	chosen := tiers[0]

	for _, tier := range tiers {
		if tier.IsDefault {
			chosen = tier

			break
		}
	}

	res.FromModel(chosen)

	return res, nil
}

func (s *serviceImpl) AddInclusion(ctx context.Context, req dto.CreateInclusionRequest, id string) (res dto.InclusionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddInclusion")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.getPackage(ctx, shared.FilterByID(id, model.FieldID, model.TableName), model.FieldID); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	inclusion := req.ToModel(id, user)

	if err = s.inclusions.Insert(ctx, inclusion); err != nil {
		log.Error().Err(err).Msg("failed to add inclusion")

		return res, fmt.Errorf("failed to add inclusion: %w", err)
	}

	res.FromModel(inclusion)
	s.invalidate(ctx, id)

	return res, nil
}

func (s *serviceImpl) UpdateInclusion(ctx context.Context, req dto.UpdateInclusionRequest, id, inclusionID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateInclusion")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := detailFilter(model.InclusionTableName, id, inclusionID)

	inclusion, err := s.inclusions.Get(ctx, filter, model.FieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inclusion")

		return fmt.Errorf("failed to get inclusion: %w", err)
	}

	if inclusion.ID == constant.Empty {
		return failure.NotFound("inclusion not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.inclusions.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update inclusion")

		return fmt.Errorf("failed to update inclusion: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) DeleteInclusion(ctx context.Context, id, inclusionID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteInclusion")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := detailFilter(model.InclusionTableName, id, inclusionID)

	inclusion, err := s.inclusions.Get(ctx, filter, model.FieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inclusion")

		return fmt.Errorf("failed to get inclusion: %w", err)
	}

	if inclusion.ID == constant.Empty {
		return failure.NotFound("inclusion not found") // nolint:wrapcheck
	}

	if err = s.inclusions.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete inclusion")

		return fmt.Errorf("failed to delete inclusion: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// detailFilter matches one child row of the package.
func detailFilter(table, packageID, id string) gDto.FilterGroup {
	return gDto.And(
		gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: table},
		gDto.Filter{Field: model.FieldPackageID, Value: packageID, Operator: gDto.FilterOperatorEq, Table: table},
	)
}

// tierFilter matches the tier with the same head count, room type and season, other than excludeID.
func tierFilter(pricing model.Pricing, excludeID string) gDto.FilterGroup {
	filter := gDto.And(
		gDto.Filter{Field: model.FieldPackageID, Value: pricing.PackageID, Operator: gDto.FilterOperatorEq, Table: model.PricingTableName},
		gDto.Filter{Field: model.FieldPersons, Value: pricing.NumberOfPersons, Operator: gDto.FilterOperatorEq, Table: model.PricingTableName},
		gDto.Filter{Field: model.FieldRoomType, Value: pricing.RoomType, Operator: gDto.FilterOperatorEq, Table: model.PricingTableName},
		gDto.Filter{Field: model.FieldSeasonType, Value: pricing.SeasonType, Operator: gDto.FilterOperatorEq, Table: model.PricingTableName},
	)

	if excludeID != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{Field: model.FieldID, Value: excludeID, Operator: gDto.FilterOperatorNotEq, Table: model.PricingTableName})
	}

	return filter
}

func tierConflict(pricing model.Pricing) error {
	return failure.Conflict(fmt.Sprintf("pricing for %d persons in %s rooms in %s season already exists", // nolint:wrapcheck
		pricing.NumberOfPersons, pricing.RoomType, pricing.SeasonType))
}

func uniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
}
