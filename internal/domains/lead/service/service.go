package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"homestay/config"
	"homestay/infras/otel"
	"homestay/infras/postgres"
	homestayService "homestay/internal/domains/homestay/service"
	"homestay/internal/domains/lead/model"
	"homestay/internal/domains/lead/model/dto"
	"homestay/internal/domains/lead/repository"
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
	cacheGetLead    = "lead:get"
	cacheGetAllLead = "lead:gets"
	cacheCountLead  = "lead:count"
	cacheLeadReport = "lead:report"
)

type Lead interface {
	Create(ctx context.Context, req dto.CreateLeadRequest) (dto.LeadResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetLeadsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.LeadResponse, error)
	Update(ctx context.Context, req dto.UpdateLeadRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateLeadStatusRequest, id string) error
	MarkConverted(ctx context.Context, id, bookingID string) error
	Delete(ctx context.Context, id string) error
	Assign(ctx context.Context, req dto.AssignLeadRequest, id string) error
	CreateFollowUp(ctx context.Context, req dto.CreateFollowUpRequest, id string) (dto.FollowUpResponse, error)
	ListFollowUps(ctx context.Context, id string) ([]dto.FollowUpResponse, error)
	GetFollowUp(ctx context.Context, id, followUpID string) (dto.FollowUpResponse, error)
	UpcomingFollowUps(ctx context.Context) ([]dto.LeadResponse, error)
	OverdueFollowUps(ctx context.Context) ([]dto.LeadResponse, error)
	Statistics(ctx context.Context) (dto.StatisticsResponse, error)
	CountBySource(ctx context.Context) ([]dto.SourceCountResponse, error)
}

type serviceImpl struct {
	repo         repository.Lead
	followUpRepo repository.FollowUp
	homestay     homestayService.Homestay
	transactor   postgres.Transactor
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Lead,
	followUpRepo repository.FollowUp,
	homestay homestayService.Homestay,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Lead {
	return &serviceImpl{
		repo:         repo,
		followUpRepo: followUpRepo,
		homestay:     homestay,
		transactor:   transactor,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateLeadRequest) (res dto.LeadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	lead, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if lead.HomestayID != nil {
		if _, err = s.homestay.Get(ctx, *lead.HomestayID); err != nil {
			return res, err
		}
	}

	if err = s.assertContactFree(ctx, lead.Email, lead.Phone, constant.Empty); err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, lead); err != nil {
		log.Error().Err(err).Msg("failed to create lead")

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("lead with this email or phone already exists") // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to create lead: %w", err)
	}

	res.FromModel(lead)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllLead)
		shared.InvalidateCaches(c, s.cache, cacheCountLead)
		shared.InvalidateCaches(c, s.cache, cacheLeadReport)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetLeadsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllLead, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for leads")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count leads")

		return res, fmt.Errorf("failed to count leads: %w", err)
	}

	leads, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get leads")

		return res, fmt.Errorf("failed to get leads: %w", err)
	}

	res.FromModels(leads, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save leads to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountLead, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for lead count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count leads")

		return res, fmt.Errorf("failed to count leads: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save lead count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.LeadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetLead, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for lead")

		return res, nil
	}

	lead, err := s.getLead(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(lead)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save lead to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateLeadRequest, id string) (err error) {
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

	lead, err := s.getLead(ctx, id)
	if err != nil {
		return err
	}

	if req.HomestayID != nil {
		if _, err = s.homestay.Get(ctx, *req.HomestayID); err != nil {
			return err
		}
	}

	email, phone := constant.Empty, constant.Empty
	if req.Email != constant.Empty && req.Email != lead.Email {
		email = req.Email
	}

	if req.Phone != constant.Empty && req.Phone != lead.Phone {
		phone = req.Phone
	}

	if err = s.assertContactFree(ctx, email, phone, id); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update lead")

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return failure.Conflict("lead with this email or phone already exists") // nolint:wrapcheck
		}

		return fmt.Errorf("failed to update lead: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateLeadStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	lead, err := s.getLead(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Update(ctx, req.ToFields(lead, user, timezone.Now()), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update lead status")

		return fmt.Errorf("failed to update lead status: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// MarkConverted links the lead to a booking. Repeating it for the same booking is a no-op, so the
// conversion event may be delivered more than once.
func (s *serviceImpl) MarkConverted(ctx context.Context, id, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkConverted")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	lead, err := s.getLead(ctx, id)
	if err != nil {
		return err
	}

	if lead.Converted() && *lead.BookingID == bookingID {
		return nil
	}

	req := dto.UpdateLeadStatusRequest{Status: model.StatusConverted, BookingID: bookingID}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = constant.SystemUser
	}

	if err = s.repo.Update(ctx, req.ToFields(lead, user, timezone.Now()), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to mark lead converted")

		return fmt.Errorf("failed to mark lead converted: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.getLead(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
			return failure.Conflict("lead has bookings and cannot be deleted") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete lead")

		return fmt.Errorf("failed to delete lead: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) getLead(ctx context.Context, id string) (model.Lead, error) {
	lead, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get lead")

		return lead, fmt.Errorf("failed to get lead: %w", err)
	}

	if lead.ID == constant.Empty {
		return lead, failure.NotFound("lead not found") // nolint:wrapcheck
	}

	return lead, nil
}

// assertContactFree rejects an email or phone already used by another lead. Empty values are not checked.
func (s *serviceImpl) assertContactFree(ctx context.Context, email, phone, excludeID string) error {
	contacts := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorOr}

	if email != constant.Empty {
		contacts.Filters = append(contacts.Filters, gDto.Filter{Field: model.FieldEmail, Value: email, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if phone != constant.Empty {
		contacts.Filters = append(contacts.Filters, gDto.Filter{Field: model.FieldPhone, Value: phone, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if len(contacts.Filters) == 0 {
		return nil
	}

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: []any{contacts}}
	if excludeID != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{Field: model.FieldID, Value: excludeID, Operator: gDto.FilterOperatorNotEq, Table: model.TableName})
	}

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check lead contact")

		return fmt.Errorf("failed to check lead contact: %w", err)
	}

	if exist {
		return failure.Conflict("lead with this email or phone already exists") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetLead, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete lead from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllLead)
		shared.InvalidateCaches(c, s.cache, cacheCountLead)
		shared.InvalidateCaches(c, s.cache, cacheLeadReport)
	}()
}
