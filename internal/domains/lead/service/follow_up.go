package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homestay/internal/domains/lead/model"
	"homestay/internal/domains/lead/model/dto"
	"homestay/shared"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/failure"
	"homestay/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	followUpWindow = 7 * 24 * time.Hour

	reportStatistics = "statistics"
	reportSources    = "sources"
)

func (s *serviceImpl) Assign(ctx context.Context, req dto.AssignLeadRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Assign")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.getLead(ctx, id); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := map[string]any{
		model.FieldAssignedTo:    req.AssignedTo,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to assign lead")

		return fmt.Errorf("failed to assign lead: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// CreateFollowUp logs a contact with the lead. The follow-up row and the lead's contact dates and
// status are written in one transaction against the locked lead row.
func (s *serviceImpl) CreateFollowUp(ctx context.Context, req dto.CreateFollowUpRequest, id string) (res dto.FollowUpResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateFollowUp")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	followUp, err := req.ToModel(id, user, now)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	err = s.transactor.WithTx(ctx, nil, func(tx *sqlx.Tx) error {
		lead, err := s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to get lead: %w", err)
		}

		if lead.ID == constant.Empty {
			return failure.NotFound("lead not found") // nolint:wrapcheck
		}

		if err := s.followUpRepo.InsertTx(ctx, tx, followUp); err != nil {
			return err //nolint:wrapcheck
		}

		return s.repo.UpdateTx(ctx, tx, dto.LeadFields(followUp, lead, user, now), shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
	})
	if err != nil {
		var fail *failure.Failure
		if errors.As(err, &fail) {
			return res, err
		}

		log.Error().Err(err).Msg("failed to create follow-up")

		return res, fmt.Errorf("failed to create follow-up: %w", err)
	}

	res.FromModel(followUp)
	s.invalidate(ctx, id)

	return res, nil
}

func (s *serviceImpl) ListFollowUps(ctx context.Context, id string) (res []dto.FollowUpResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListFollowUps")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.getLead(ctx, id); err != nil {
		return res, err
	}

	params := gDto.QueryParams{SortBy: model.FieldFollowUpDate, SortDir: gDto.SortDirDesc}
	filter := gDto.And(gDto.Filter{Field: model.FieldFollowUpLeadID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.FollowUpTableName})

	followUps, err := s.followUpRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get follow-ups")

		return res, fmt.Errorf("failed to get follow-ups: %w", err)
	}

	return dto.FollowUpsFromModels(followUps), nil
}

func (s *serviceImpl) GetFollowUp(ctx context.Context, id, followUpID string) (res dto.FollowUpResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetFollowUp")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.And(
		gDto.Filter{Field: model.FieldID, Value: followUpID, Operator: gDto.FilterOperatorEq, Table: model.FollowUpTableName},
		gDto.Filter{Field: model.FieldFollowUpLeadID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.FollowUpTableName},
	)

	followUp, err := s.followUpRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get follow-up")

		return res, fmt.Errorf("failed to get follow-up: %w", err)
	}

	if followUp.ID == constant.Empty {
		return res, failure.NotFound("follow-up not found") // nolint:wrapcheck
	}

	res.FromModel(followUp)

	return res, nil
}

// UpcomingFollowUps lists open leads due for contact within the next week, soonest first.
func (s *serviceImpl) UpcomingFollowUps(ctx context.Context) (res []dto.LeadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpcomingFollowUps")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := timezone.Now()

	return s.dueLeads(ctx,
		gDto.Filter{ArgName: "due_from", Field: model.FieldNextFollowUp, Value: now, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
		gDto.Filter{ArgName: "due_until", Field: model.FieldNextFollowUp, Value: now.Add(followUpWindow), Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
	)
}

// OverdueFollowUps lists open leads whose next contact date has passed, oldest first.
func (s *serviceImpl) OverdueFollowUps(ctx context.Context) (res []dto.LeadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OverdueFollowUps")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.dueLeads(ctx,
		gDto.Filter{ArgName: "due_until", Field: model.FieldNextFollowUp, Value: timezone.Now(), Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
	)
}

func (s *serviceImpl) dueLeads(ctx context.Context, window ...gDto.Filter) ([]dto.LeadResponse, error) {
	filter := gDto.And(gDto.Filter{Field: model.FieldStatus, Value: model.FollowUpStatuses, Operator: gDto.FilterOperatorIn, Table: model.TableName})
	for _, bound := range window {
		filter.Filters = append(filter.Filters, bound)
	}

	params := gDto.QueryParams{SortBy: model.FieldNextFollowUp, SortDir: gDto.SortDirAsc, Limit: gDto.MaxLimit}

	leads, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get due leads")

		return nil, fmt.Errorf("failed to get due leads: %w", err)
	}

	return dto.LeadsFromModels(leads), nil
}

func (s *serviceImpl) Statistics(ctx context.Context) (res dto.StatisticsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Statistics")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheLeadReport, reportStatistics)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for lead statistics")

		return res, nil
	}

	stats, err := s.repo.Statistics(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get lead statistics")

		return res, fmt.Errorf("failed to get lead statistics: %w", err)
	}

	res.FromModel(stats)
	s.saveReport(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) CountBySource(ctx context.Context) (res []dto.SourceCountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountBySource")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheLeadReport, reportSources)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for lead sources")

		return res, nil
	}

	counts, err := s.repo.CountBySource(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count leads by source")

		return res, fmt.Errorf("failed to count leads by source: %w", err)
	}

	res = dto.SourceCountsFromModels(counts)
	s.saveReport(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) saveReport(ctx context.Context, key string, report any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, report, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save lead report to cache")
		}
	}()
}
