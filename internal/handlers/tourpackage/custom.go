package tourpackage

import (
	"net/http"

	"homestay/internal/domains/tourpackage/model"
	"homestay/internal/domains/tourpackage/model/dto"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/failure"
	"homestay/shared/validator"
	"homestay/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// CreateCustomPackage opens a draft custom package, optionally for an existing lead.
// @Summary Create a custom package
// @Tags Custom Package
// @Accept json
// @Produce json
// @Param request body dto.CreateCustomPackageRequest true "Create Custom Package Request"
// @Success 201 {object} response.Data[dto.CustomPackageResponse] "Custom package created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/custom [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateCustomPackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCustomPackage")
	defer scope.End()

	req := dto.CreateCustomPackageRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.custom.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create custom package")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// @Summary Get all custom packages
// @Tags Custom Package
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param q query string false "Search title, customer name or customer email"
// @Param status query string false "Filter by status" Enums(draft, quote_sent, confirmed, cancelled, completed)
// @Param assigned_to query string false "Filter by assigned staff member"
// @Success 200 {object} response.Data[dto.GetCustomPackagesResponse] "List of custom packages"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/custom [get]
func (handler *Handler) GetCustomPackages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomPackages")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.And()

	if status := query.Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.CustomTableName,
		})
	}

	if assignee := query.Get(model.FieldAssignedTo); assignee != "" {
		if err := validator.ValidateVar(assignee, "uuid"); err != nil {
			response.WithError(w, failure.BadRequestFromString("assigned_to must be a valid UUID"))

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAssignedTo,
			Operator: gDto.FilterOperatorEq,
			Value:    assignee,
			Table:    model.CustomTableName,
		})
	}

	if search := query.Get(querySearch); search != "" {
		customer := gDto.Or()
		for _, field := range []string{model.FieldTitle, model.FieldCustomerName, model.FieldCustomerEmail} {
			customer.Filters = append(customer.Filters, gDto.Filter{
				ArgName:  querySearch + "_" + field,
				Field:    field,
				Operator: gDto.FilterOperatorLike,
				Value:    search,
				Table:    model.CustomTableName,
			})
		}

		filterGroup.Filters = append(filterGroup.Filters, customer)
	}

	customs, err := handler.custom.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get custom packages")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, customs)
}

// @Summary Get a custom package by reference
// @Tags Custom Package
// @Produce json
// @Param reference path string true "Custom package reference"
// @Success 200 {object} response.Data[dto.CustomPackageResponse] "Custom package details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/custom/reference/{reference} [get]
func (handler *Handler) GetCustomPackageByReference(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomPackageByReference")
	defer scope.End()

	custom, err := handler.custom.GetByReference(ctx, chi.URLParam(r, constant.RequestParamReference))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get custom package by reference")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, custom)
}

// @Summary Get a custom package by ID
// @Tags Custom Package
// @Produce json
// @Param id path string true "Custom package ID"
// @Success 200 {object} response.Data[dto.CustomPackageResponse] "Custom package details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/custom/{id} [get]
func (handler *Handler) GetCustomPackageByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomPackageByID")
	defer scope.End()

	custom, err := handler.custom.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get custom package by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, custom)
}

// @Summary Update a custom package by ID
// @Tags Custom Package
// @Accept json
// @Produce json
// @Param id path string true "Custom package ID"
// @Param request body dto.UpdateCustomPackageRequest true "Update Custom Package Request"
// @Success 200 {object} response.Message "Custom package updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/custom/{id} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateCustomPackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCustomPackage")
	defer scope.End()

	req := dto.UpdateCustomPackageRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.custom.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update custom package")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Custom package updated successfully")
}

// @Summary Update the status of a custom package
// @Tags Custom Package
// @Accept json
// @Produce json
// @Param id path string true "Custom package ID"
// @Param request body dto.UpdateCustomStatusRequest true "Update Custom Status Request"
// @Success 200 {object} response.Message "Custom package status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/custom/{id}/status [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateCustomPackageStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCustomPackageStatus")
	defer scope.End()

	req := dto.UpdateCustomStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.custom.UpdateStatus(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update custom package status")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Custom package status updated successfully")
}

// SendQuote records the quoted prices and moves the package to quote_sent.
// @Summary Send a quote for a custom package
// @Tags Custom Package
// @Accept json
// @Produce json
// @Param id path string true "Custom package ID"
// @Param request body dto.SendQuoteRequest true "Send Quote Request"
// @Success 200 {object} response.Message "Quote sent successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/custom/{id}/quote [post]
// @Security ApiKeyAuth
func (handler *Handler) SendQuote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendQuote")
	defer scope.End()

	req := dto.SendQuoteRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.custom.SendQuote(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send quote")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Quote sent successfully")
}

// ConfirmCustomPackage accepts a final price at or below the quote and records the discount.
// @Summary Confirm a custom package
// @Tags Custom Package
// @Accept json
// @Produce json
// @Param id path string true "Custom package ID"
// @Param request body dto.ConfirmCustomPackageRequest true "Confirm Custom Package Request"
// @Success 200 {object} response.Message "Custom package confirmed successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/custom/{id}/confirm [post]
// @Security ApiKeyAuth
func (handler *Handler) ConfirmCustomPackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmCustomPackage")
	defer scope.End()

	req := dto.ConfirmCustomPackageRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.custom.Confirm(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm custom package")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Custom package confirmed successfully")
}

// @Summary Delete a custom package by ID
// @Tags Custom Package
// @Produce json
// @Param id path string true "Custom package ID"
// @Success 200 {object} response.Message "Custom package deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/custom/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteCustomPackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCustomPackage")
	defer scope.End()

	if err := handler.custom.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete custom package")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Custom package deleted successfully")
}

// @Summary Add an itinerary day to a custom package
// @Tags Custom Package
// @Accept json
// @Produce json
// @Param id path string true "Custom package ID"
// @Param request body dto.CreateCustomItineraryRequest true "Create Custom Itinerary Request"
// @Success 201 {object} response.Data[dto.CustomItineraryResponse] "Itinerary day added"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/custom/{id}/itinerary [post]
// @Security ApiKeyAuth
func (handler *Handler) AddCustomItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddCustomItinerary")
	defer scope.End()

	req := dto.CreateCustomItineraryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.custom.AddItinerary(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add custom itinerary day")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// @Summary Update an itinerary day of a custom package
// @Tags Custom Package
// @Accept json
// @Produce json
// @Param id path string true "Custom package ID"
// @Param detailId path string true "Itinerary ID"
// @Param request body dto.UpdateCustomItineraryRequest true "Update Custom Itinerary Request"
// @Success 200 {object} response.Message "Itinerary updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/custom/{id}/itinerary/{detailId} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateCustomItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCustomItinerary")
	defer scope.End()

	req := dto.UpdateCustomItineraryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	err := handler.custom.UpdateItinerary(ctx, req, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamDetailID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update custom itinerary day")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Itinerary updated successfully")
}

// @Summary Delete an itinerary day of a custom package
// @Tags Custom Package
// @Produce json
// @Param id path string true "Custom package ID"
// @Param detailId path string true "Itinerary ID"
// @Success 200 {object} response.Message "Itinerary deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/custom/{id}/itinerary/{detailId} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteCustomItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCustomItinerary")
	defer scope.End()

	if err := handler.custom.DeleteItinerary(ctx, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamDetailID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete custom itinerary day")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Custom itinerary deleted successfully")
}
