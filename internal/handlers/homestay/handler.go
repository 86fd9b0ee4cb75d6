package homestay

import (
	"net/http"

	"homestay/infras/otel"
	"homestay/internal/domains/homestay/model"
	"homestay/internal/domains/homestay/model/dto"
	"homestay/internal/domains/homestay/service"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/validator"
	"homestay/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Homestay
	otel    otel.Otel
}

func New(service service.Homestay, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/homestays", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateHomestay)
		routerGroup.Get("/", handler.GetHomestays)
		routerGroup.Get("/{id}", handler.GetHomestayByID)
		routerGroup.Patch("/{id}", handler.UpdateHomestay)
		routerGroup.Delete("/{id}", handler.DeleteHomestay)
	})
}

// CreateHomestay handles the creation of a new homestay.
// @Summary Create a new homestay
// @Description Create a new homestay property.
// @Tags Homestay
// @Accept json
// @Produce json
// @Param request body dto.CreateHomestayRequest true "Create Homestay Request"
// @Success 201 {object} response.Data[dto.HomestayResponse] "Homestay created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/homestays [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateHomestay(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHomestay")
	defer scope.End()

	req := dto.CreateHomestayRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create homestay")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Homestay created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetHomestays retrieves homestays based on query parameters.
// @Summary Get all homestays
// @Description Retrieve homestays with optional filtering and pagination.
// @Tags Homestay
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param city query string false "Filter by city"
// @Param status query string false "Filter by status" Enums(active, inactive, maintenance)
// @Success 200 {object} response.Data[dto.GetHomestaysResponse] "List of homestays"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/homestays [get]
func (handler *Handler) GetHomestays(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHomestays")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    query.Get(model.FieldName),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCity,
				Operator: gDto.FilterOperatorLike,
				Value:    query.Get(model.FieldCity),
				Table:    model.TableName,
			},
		},
	}

	if status := query.Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	homestays, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get homestays")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Homestays retrieved successfully")

	response.WithJSON(w, http.StatusOK, homestays)
}

// GetHomestayByID retrieves a homestay by its ID.
// @Summary Get a homestay by ID
// @Tags Homestay
// @Accept json
// @Produce json
// @Param id path string true "Homestay ID"
// @Success 200 {object} response.Data[dto.HomestayResponse] "Homestay details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/homestays/{id} [get]
func (handler *Handler) GetHomestayByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHomestayByID")
	defer scope.End()

	homestay, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get homestay by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, homestay)
}

// UpdateHomestay updates an existing homestay by its ID.
// @Summary Update a homestay by ID
// @Tags Homestay
// @Accept json
// @Produce json
// @Param id path string true "Homestay ID"
// @Param request body dto.UpdateHomestayRequest true "Update Homestay Request"
// @Success 200 {object} response.Message "Homestay updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/homestays/{id} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateHomestay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHomestay")
	defer scope.End()

	req := dto.UpdateHomestayRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update homestay")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Homestay updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Homestay updated successfully")
}

// DeleteHomestay deletes a homestay by its ID.
// @Summary Delete a homestay by ID
// @Tags Homestay
// @Produce json
// @Param id path string true "Homestay ID"
// @Success 200 {object} response.Message "Homestay deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/homestays/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteHomestay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHomestay")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete homestay")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Homestay deleted successfully")
}
