package lead

import (
	"net/http"

	"homestay/infras/otel"
	"homestay/internal/domains/lead/model"
	"homestay/internal/domains/lead/model/dto"
	"homestay/internal/domains/lead/service"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/validator"
	"homestay/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const querySearch = "q"

type Handler struct {
	service service.Lead
	otel    otel.Otel
}

func New(service service.Lead, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/leads", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateLead)
		routerGroup.Get("/", handler.GetLeads)
		routerGroup.Get("/statistics", handler.GetLeadStatistics)
		routerGroup.Get("/statistics/by-source", handler.GetLeadsBySource)
		routerGroup.Get("/follow-ups/upcoming", handler.GetUpcomingFollowUps)
		routerGroup.Get("/follow-ups/overdue", handler.GetOverdueFollowUps)
		routerGroup.Get("/{id}", handler.GetLeadByID)
		routerGroup.Patch("/{id}", handler.UpdateLead)
		routerGroup.Patch("/{id}/status", handler.UpdateLeadStatus)
		routerGroup.Patch("/{id}/assign", handler.AssignLead)
		routerGroup.Delete("/{id}", handler.DeleteLead)
		routerGroup.Post("/{id}/follow-ups", handler.CreateFollowUp)
		routerGroup.Get("/{id}/follow-ups", handler.GetFollowUps)
		routerGroup.Get("/{id}/follow-ups/{followUpId}", handler.GetFollowUpByID)
	})
}

// CreateLead registers a new enquiry.
// @Summary Create a lead
// @Description Create a lead. Email and phone must not belong to another lead.
// @Tags Lead
// @Accept json
// @Produce json
// @Param request body dto.CreateLeadRequest true "Create Lead Request"
// @Success 201 {object} response.Data[dto.LeadResponse] "Lead created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/leads [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateLead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateLead")
	defer scope.End()

	req := dto.CreateLeadRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create lead")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetLeads retrieves leads based on query parameters.
// @Summary Get all leads
// @Tags Lead
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param q query string false "Search name, email or phone"
// @Param status query string false "Filter by status"
// @Param source query string false "Filter by source"
// @Param priority query string false "Filter by priority" Enums(low, medium, high, urgent)
// @Success 200 {object} response.Data[dto.GetLeadsResponse] "List of leads"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/leads [get]
func (handler *Handler) GetLeads(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLeads")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.And(gDto.Filter{
		Field:    model.FieldName,
		Operator: gDto.FilterOperatorLike,
		Value:    query.Get(model.FieldName),
		Table:    model.TableName,
	})

	if search := query.Get(querySearch); search != "" {
		contact := gDto.Or()
		for _, field := range []string{model.FieldName, model.FieldEmail, model.FieldPhone} {
			contact.Filters = append(contact.Filters, gDto.Filter{
				ArgName:  querySearch + "_" + field,
				Field:    field,
				Operator: gDto.FilterOperatorLike,
				Value:    search,
				Table:    model.TableName,
			})
		}

		filterGroup.Filters = append(filterGroup.Filters, contact)
	}

	for _, field := range []string{model.FieldStatus, model.FieldSource, model.FieldPriority} {
		if value := query.Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	leads, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get leads")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, leads)
}

// GetLeadByID retrieves a lead by its ID.
// @Summary Get a lead by ID
// @Tags Lead
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} response.Data[dto.LeadResponse] "Lead details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/leads/{id} [get]
func (handler *Handler) GetLeadByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLeadByID")
	defer scope.End()

	lead, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get lead by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, lead)
}

// UpdateLead updates lead details.
// @Summary Update a lead by ID
// @Tags Lead
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body dto.UpdateLeadRequest true "Update Lead Request"
// @Success 200 {object} response.Message "Lead updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/leads/{id} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateLead")
	defer scope.End()

	req := dto.UpdateLeadRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update lead")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Lead updated successfully")
}

// UpdateLeadStatus moves a lead through the sales pipeline.
// @Summary Update lead status
// @Tags Lead
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body dto.UpdateLeadStatusRequest true "Update Lead Status Request"
// @Success 200 {object} response.Message "Lead status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/leads/{id}/status [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateLeadStatus")
	defer scope.End()

	req := dto.UpdateLeadStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update lead status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Lead moved to " + req.Status + " by user " + user)

	response.WithMessage(w, http.StatusOK, "Lead status updated successfully")
}

// DeleteLead deletes a lead by its ID.
// @Summary Delete a lead by ID
// @Tags Lead
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} response.Message "Lead deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/leads/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteLead")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete lead")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Lead deleted successfully")
}

// AssignLead hands a lead to a member of the sales desk.
// @Summary Assign a lead
// @Tags Lead
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body dto.AssignLeadRequest true "Assign Lead Request"
// @Success 200 {object} response.Message "Lead assigned successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/leads/{id}/assign [patch]
// @Security ApiKeyAuth
func (handler *Handler) AssignLead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignLead")
	defer scope.End()

	req := dto.AssignLeadRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Assign(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assign lead")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Lead assigned successfully")
}

// CreateFollowUp logs a contact with a lead.
// @Summary Log a follow-up
// @Description Log a call, message or meeting. Interested, not interested and booking confirmed outcomes move the lead status.
// @Tags Lead
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body dto.CreateFollowUpRequest true "Create Follow-up Request"
// @Success 201 {object} response.Data[dto.FollowUpResponse] "Follow-up created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/leads/{id}/follow-ups [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateFollowUp(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFollowUp")
	defer scope.End()

	req := dto.CreateFollowUpRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateFollowUp(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create follow-up")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetFollowUps lists the follow-ups of a lead, newest first.
// @Summary Get follow-ups of a lead
// @Tags Lead
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} response.Data[[]dto.FollowUpResponse] "List of follow-ups"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/leads/{id}/follow-ups [get]
func (handler *Handler) GetFollowUps(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFollowUps")
	defer scope.End()

	res, err := handler.service.ListFollowUps(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get follow-ups")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetFollowUpByID retrieves one follow-up of a lead.
// @Summary Get a follow-up by ID
// @Tags Lead
// @Produce json
// @Param id path string true "Lead ID"
// @Param followUpId path string true "Follow-up ID"
// @Success 200 {object} response.Data[dto.FollowUpResponse] "Follow-up details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/leads/{id}/follow-ups/{followUpId} [get]
func (handler *Handler) GetFollowUpByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFollowUpByID")
	defer scope.End()

	res, err := handler.service.GetFollowUp(ctx, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamFollowUp))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get follow-up")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetUpcomingFollowUps lists contacted and qualified leads due within seven days.
// @Summary Get upcoming follow-ups
// @Tags Lead
// @Produce json
// @Success 200 {object} response.Data[[]dto.LeadResponse] "Leads due for contact"
// @Failure 500 {object} response.Error
// @Router /v1/leads/follow-ups/upcoming [get]
func (handler *Handler) GetUpcomingFollowUps(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUpcomingFollowUps")
	defer scope.End()

	res, err := handler.service.UpcomingFollowUps(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get upcoming follow-ups")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetOverdueFollowUps lists contacted and qualified leads whose next contact date has passed.
// @Summary Get overdue follow-ups
// @Tags Lead
// @Produce json
// @Success 200 {object} response.Data[[]dto.LeadResponse] "Leads overdue for contact"
// @Failure 500 {object} response.Error
// @Router /v1/leads/follow-ups/overdue [get]
func (handler *Handler) GetOverdueFollowUps(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOverdueFollowUps")
	defer scope.End()

	res, err := handler.service.OverdueFollowUps(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get overdue follow-ups")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetLeadStatistics reports pipeline counts and the conversion rate.
// @Summary Get lead statistics
// @Tags Lead
// @Produce json
// @Success 200 {object} response.Data[dto.StatisticsResponse] "Lead statistics"
// @Failure 500 {object} response.Error
// @Router /v1/leads/statistics [get]
func (handler *Handler) GetLeadStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLeadStatistics")
	defer scope.End()

	res, err := handler.service.Statistics(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get lead statistics")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetLeadsBySource counts leads per source.
// @Summary Get lead counts by source
// @Tags Lead
// @Produce json
// @Success 200 {object} response.Data[[]dto.SourceCountResponse] "Lead counts by source"
// @Failure 500 {object} response.Error
// @Router /v1/leads/statistics/by-source [get]
func (handler *Handler) GetLeadsBySource(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLeadsBySource")
	defer scope.End()

	res, err := handler.service.CountBySource(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to count leads by source")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
