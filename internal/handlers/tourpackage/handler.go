package tourpackage

import (
	"net/http"
	"strconv"

	"homestay/infras/otel"
	"homestay/internal/domains/tourpackage/model"
	"homestay/internal/domains/tourpackage/model/dto"
	"homestay/internal/domains/tourpackage/service"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/failure"
	"homestay/shared/validator"
	"homestay/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	querySearch   = "q"
	queryFeatured = "featured"

	// Tags are searched as one comma separated string.
	tagsExpression = "array_to_string(packages.tags, ',')"
)

type Handler struct {
	service service.Package
	custom  service.CustomPackage
	otel    otel.Otel
}

func New(service service.Package, custom service.CustomPackage, otel otel.Otel) Handler {
	return Handler{
		service: service,
		custom:  custom,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/packages", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePackage)
		routerGroup.Get("/", handler.GetPackages)
		routerGroup.Get("/featured", handler.GetFeaturedPackages)
		routerGroup.Get("/popular", handler.GetPopularPackages)
		routerGroup.Get("/statistics", handler.GetPackageStatistics)
		routerGroup.Get("/code/{code}", handler.GetPackageByCode)

		routerGroup.Route("/custom", func(custom chi.Router) {
			custom.Post("/", handler.CreateCustomPackage)
			custom.Get("/", handler.GetCustomPackages)
			custom.Get("/reference/{reference}", handler.GetCustomPackageByReference)
			custom.Get("/{id}", handler.GetCustomPackageByID)
			custom.Patch("/{id}", handler.UpdateCustomPackage)
			custom.Patch("/{id}/status", handler.UpdateCustomPackageStatus)
			custom.Post("/{id}/quote", handler.SendQuote)
			custom.Post("/{id}/confirm", handler.ConfirmCustomPackage)
			custom.Delete("/{id}", handler.DeleteCustomPackage)
			custom.Post("/{id}/itinerary", handler.AddCustomItinerary)
			custom.Patch("/{id}/itinerary/{detailId}", handler.UpdateCustomItinerary)
			custom.Delete("/{id}/itinerary/{detailId}", handler.DeleteCustomItinerary)
		})

		routerGroup.Get("/{id}", handler.GetPackageByID)
		routerGroup.Patch("/{id}", handler.UpdatePackage)
		routerGroup.Patch("/{id}/status", handler.UpdatePackageStatus)
		routerGroup.Delete("/{id}", handler.DeletePackage)

		routerGroup.Post("/{id}/itinerary", handler.AddItinerary)
		routerGroup.Patch("/{id}/itinerary/{detailId}", handler.UpdateItinerary)
		routerGroup.Delete("/{id}/itinerary/{detailId}", handler.DeleteItinerary)

		routerGroup.Post("/{id}/pricing", handler.AddPricing)
		routerGroup.Put("/{id}/pricing", handler.ReplacePricing)
		routerGroup.Get("/{id}/pricing/persons/{persons}", handler.GetPricingForPersons)
		routerGroup.Patch("/{id}/pricing/{detailId}", handler.UpdatePricing)
		routerGroup.Delete("/{id}/pricing/{detailId}", handler.DeletePricing)

		routerGroup.Post("/{id}/inclusions", handler.AddInclusion)
		routerGroup.Patch("/{id}/inclusions/{detailId}", handler.UpdateInclusion)
		routerGroup.Delete("/{id}/inclusions/{detailId}", handler.DeleteInclusion)
	})
}

// CreatePackage creates a predefined package.
// @Summary Create a package
// @Description Create a package with its itinerary, pricing tiers and inclusions. The code is generated.
// @Tags Package
// @Accept json
// @Produce json
// @Param request body dto.CreatePackageRequest true "Create Package Request"
// @Success 201 {object} response.Data[dto.PackageResponse] "Package created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages [post]
// @Security ApiKeyAuth
func (handler *Handler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePackage")
	defer scope.End()

	req := dto.CreatePackageRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create package")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetPackages lists packages. Without sort_by they come in display order.
// @Summary Get all packages
// @Tags Package
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param q query string false "Search name and tags"
// @Param type query string false "Filter by type" Enums(predefined, custom)
// @Param category query string false "Filter by category"
// @Param status query string false "Filter by status" Enums(active, inactive, draft)
// @Param destination query string false "Filter by destination"
// @Param nights query int false "Filter by nights"
// @Param featured query bool false "Only featured packages"
// @Success 200 {object} response.Data[dto.GetPackagesResponse] "List of packages"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages [get]
func (handler *Handler) GetPackages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackages")
	defer scope.End()

	query := r.URL.Query()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if query.Get(constant.RequestParamSortBy) == "" {
		queryParams.SortBy = model.FieldDisplayOrder
		queryParams.SortDir = gDto.SortDirAsc
	}

	filterGroup := gDto.And()

	for _, field := range []string{model.FieldType, model.FieldCategory, model.FieldStatus} {
		if value := query.Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	if destination := query.Get(model.FieldDestination); destination != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDestination,
			Operator: gDto.FilterOperatorLike,
			Value:    destination,
			Table:    model.TableName,
		})
	}

	if value := query.Get(model.FieldNights); value != "" {
		nights, err := strconv.Atoi(value)
		if err != nil || nights < 1 {
			response.WithError(w, failure.BadRequestFromString("nights must be a positive number"))

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldNights,
			Operator: gDto.FilterOperatorEq,
			Value:    nights,
			Table:    model.TableName,
		})
	}

	if value := query.Get(queryFeatured); value != "" {
		featured, err := strconv.ParseBool(value)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString("featured must be true or false"))

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsFeatured,
			Operator: gDto.FilterOperatorEq,
			Value:    featured,
			Table:    model.TableName,
		})
	}

	if search := query.Get(querySearch); search != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Or(
			gDto.Filter{ArgName: querySearch + "_name", Field: model.FieldName, Operator: gDto.FilterOperatorLike, Value: search, Table: model.TableName},
			gDto.Filter{ArgName: querySearch + "_tags", Field: tagsExpression, Operator: gDto.FilterOperatorLike, Value: search},
		))
	}

	packages, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get packages")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, packages)
}

// GetFeaturedPackages lists the active featured packages.
// @Summary Get featured packages
// @Tags Package
// @Produce json
// @Success 200 {object} response.Data[[]dto.PackageResponse] "Featured packages"
// @Failure 500 {object} response.Error
// @Router /v1/packages/featured [get]
func (handler *Handler) GetFeaturedPackages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeaturedPackages")
	defer scope.End()

	packages, err := handler.service.Featured(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get featured packages")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, packages)
}

// GetPopularPackages lists the first active packages in display order.
// @Summary Get popular packages
// @Tags Package
// @Produce json
// @Success 200 {object} response.Data[[]dto.PackageResponse] "Popular packages"
// @Failure 500 {object} response.Error
// @Router /v1/packages/popular [get]
func (handler *Handler) GetPopularPackages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPopularPackages")
	defer scope.End()

	packages, err := handler.service.Popular(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get popular packages")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, packages)
}

// @Summary Get package statistics
// @Tags Package
// @Produce json
// @Success 200 {object} response.Data[dto.StatisticsResponse] "Statistics"
// @Failure 500 {object} response.Error
// @Router /v1/packages/statistics [get]
func (handler *Handler) GetPackageStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackageStatistics")
	defer scope.End()

	stats, err := handler.service.Statistics(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get package statistics")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}

// @Summary Get a package by code
// @Tags Package
// @Produce json
// @Param code path string true "Package code"
// @Success 200 {object} response.Data[dto.PackageResponse] "Package details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/code/{code} [get]
func (handler *Handler) GetPackageByCode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackageByCode")
	defer scope.End()

	pkg, err := handler.service.GetByCode(ctx, chi.URLParam(r, constant.RequestParamCode))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get package by code")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, pkg)
}

// GetPackageByID returns a package with its itinerary, pricing tiers and inclusions.
// @Summary Get a package by ID
// @Tags Package
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} response.Data[dto.PackageResponse] "Package details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id} [get]
func (handler *Handler) GetPackageByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackageByID")
	defer scope.End()

	pkg, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get package by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, pkg)
}

// @Summary Update a package by ID
// @Tags Package
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Param request body dto.UpdatePackageRequest true "Update Package Request"
// @Success 200 {object} response.Message "Package updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePackage")
	defer scope.End()

	req := dto.UpdatePackageRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update package")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Package updated successfully")
}

// @Summary Update the status of a package
// @Tags Package
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Param request body dto.UpdatePackageStatusRequest true "Update Package Status Request"
// @Success 200 {object} response.Message "Package status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id}/status [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdatePackageStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePackageStatus")
	defer scope.End()

	req := dto.UpdatePackageStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update package status")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Package status updated successfully")
}

// DeletePackage removes a package together with its itinerary, pricing tiers and inclusions.
// @Summary Delete a package by ID
// @Tags Package
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} response.Message "Package deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePackage")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete package")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Package deleted successfully")
}
