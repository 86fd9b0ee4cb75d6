package tourpackage

import (
	"net/http"

	"homestay/internal/domains/tourpackage/model/dto"
	"homestay/shared"
	"homestay/shared/constant"
	"homestay/shared/failure"
	"homestay/shared/validator"
	"homestay/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// @Summary Add an itinerary day to a package
// @Tags Package
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Param request body dto.CreateItineraryRequest true "Create Itinerary Request"
// @Success 201 {object} response.Data[dto.ItineraryResponse] "Itinerary day added"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id}/itinerary [post]
// @Security ApiKeyAuth
func (handler *Handler) AddItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddItinerary")
	defer scope.End()

	req := dto.CreateItineraryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.AddItinerary(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add itinerary day")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// @Summary Update an itinerary day of a package
// @Tags Package
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Param detailId path string true "Itinerary ID"
// @Param request body dto.UpdateItineraryRequest true "Update Itinerary Request"
// @Success 200 {object} response.Message "Itinerary updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id}/itinerary/{detailId} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItinerary")
	defer scope.End()

	req := dto.UpdateItineraryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	err := handler.service.UpdateItinerary(ctx, req, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamDetailID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update itinerary day")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Itinerary updated successfully")
}

// @Summary Delete an itinerary day of a package
// @Tags Package
// @Produce json
// @Param id path string true "Package ID"
// @Param detailId path string true "Itinerary ID"
// @Success 200 {object} response.Message "Itinerary deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id}/itinerary/{detailId} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItinerary")
	defer scope.End()

	if err := handler.service.DeleteItinerary(ctx, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamDetailID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete itinerary day")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Itinerary deleted successfully")
}

// AddPricing adds one pricing tier. The price per head may not undercut the package minimum.
// @Summary Add a pricing tier to a package
// @Tags Package
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Param request body dto.CreatePricingRequest true "Create Pricing Request"
// @Success 201 {object} response.Data[dto.PricingResponse] "Pricing tier added"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id}/pricing [post]
// @Security ApiKeyAuth
func (handler *Handler) AddPricing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddPricing")
	defer scope.End()

	req := dto.CreatePricingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.AddPricing(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add pricing tier")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// ReplacePricing swaps every pricing tier of a package in one transaction.
// @Summary Replace the pricing tiers of a package
// @Tags Package
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Param request body dto.BulkPricingRequest true "Bulk Pricing Request"
// @Success 200 {object} response.Data[[]dto.PricingResponse] "Pricing tiers replaced"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id}/pricing [put]
// @Security ApiKeyAuth
func (handler *Handler) ReplacePricing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReplacePricing")
	defer scope.End()

	req := dto.BulkPricingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ReplacePricing(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to replace pricing tiers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetPricingForPersons quotes the active tier for a group size.
// @Summary Get the pricing tier for a group size
// @Tags Package
// @Produce json
// @Param id path string true "Package ID"
// @Param persons path int true "Number of persons"
// @Success 200 {object} response.Data[dto.PricingResponse] "Pricing tier"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id}/pricing/persons/{persons} [get]
func (handler *Handler) GetPricingForPersons(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPricingForPersons")
	defer scope.End()

	persons, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamPersons))
	if err != nil || persons < 1 {
		response.WithError(w, failure.BadRequestFromString("persons must be a positive number"))

		return
	}

	res, err := handler.service.PricingForPersons(ctx, chi.URLParam(r, constant.RequestParamID), persons)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pricing for persons")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// @Summary Update a pricing tier of a package
// @Tags Package
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Param detailId path string true "Pricing ID"
// @Param request body dto.UpdatePricingRequest true "Update Pricing Request"
// @Success 200 {object} response.Message "Pricing updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id}/pricing/{detailId} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdatePricing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePricing")
	defer scope.End()

	req := dto.UpdatePricingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	err := handler.service.UpdatePricing(ctx, req, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamDetailID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update pricing tier")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Pricing updated successfully")
}

// @Summary Delete a pricing tier of a package
// @Tags Package
// @Produce json
// @Param id path string true "Package ID"
// @Param detailId path string true "Pricing ID"
// @Success 200 {object} response.Message "Pricing deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id}/pricing/{detailId} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeletePricing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePricing")
	defer scope.End()

	if err := handler.service.DeletePricing(ctx, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamDetailID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete pricing tier")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Pricing deleted successfully")
}

// @Summary Add an inclusion or exclusion to a package
// @Tags Package
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Param request body dto.CreateInclusionRequest true "Create Inclusion Request"
// @Success 201 {object} response.Data[dto.InclusionResponse] "Inclusion added"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id}/inclusions [post]
// @Security ApiKeyAuth
func (handler *Handler) AddInclusion(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddInclusion")
	defer scope.End()

	req := dto.CreateInclusionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.AddInclusion(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add inclusion")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// @Summary Update an inclusion of a package
// @Tags Package
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Param detailId path string true "Inclusion ID"
// @Param request body dto.UpdateInclusionRequest true "Update Inclusion Request"
// @Success 200 {object} response.Message "Inclusion updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id}/inclusions/{detailId} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateInclusion(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateInclusion")
	defer scope.End()

	req := dto.UpdateInclusionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	err := handler.service.UpdateInclusion(ctx, req, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamDetailID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update inclusion")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Inclusion updated successfully")
}

// @Summary Delete an inclusion of a package
// @Tags Package
// @Produce json
// @Param id path string true "Package ID"
// @Param detailId path string true "Inclusion ID"
// @Success 200 {object} response.Message "Inclusion deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id}/inclusions/{detailId} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteInclusion(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteInclusion")
	defer scope.End()

	if err := handler.service.DeleteInclusion(ctx, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamDetailID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete inclusion")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Inclusion deleted successfully")
}
