package room

import (
	"fmt"
	"net/http"

	"homestay/infras/otel"
	"homestay/internal/domains/room/model"
	"homestay/internal/domains/room/model/dto"
	"homestay/internal/domains/room/service"
	"homestay/shared"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/failure"
	"homestay/shared/validator"
	"homestay/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Patch("/{id}", handler.UpdateRoom)
		routerGroup.Delete("/{id}", handler.DeleteRoom)
		routerGroup.Post("/{id}/block", handler.BlockRoom)
		routerGroup.Post("/{id}/unblock", handler.UnblockRoom)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Create a room in a homestay. The room number must be unique within the homestay.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param homestay_id formData string true "Homestay ID"
// @Param room_number formData string true "Room number"
// @Param room_name formData string false "Room name"
// @Param room_type formData string false "Room type" Enums(view, non_view)
// @Param capacity formData integer true "Maximum guests"
// @Param price_per_head formData string true "Nightly price per guest"
// @Param description formData string false "Description"
// @Param status formData string false "Initial status" Enums(available, blocked, maintenance)
// @Param image formData file false "Room image"
// @Success 201 {object} response.Data[dto.RoomResponse] "Room created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, failure.BadRequest(err))

		return
	}

	req := dto.CreateRoomRequest{
		HomestayID:  request.FormValue(model.FieldHomestayID),
		RoomNumber:  request.FormValue(model.FieldRoomNumber),
		RoomName:    request.FormValue(model.FieldRoomName),
		RoomType:    request.FormValue(model.FieldRoomType),
		Description: request.FormValue("description"),
		Status:      request.FormValue(model.FieldStatus),
	}

	if capStr := request.FormValue(model.FieldCapacity); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.Capacity = c
		}
	}

	price, err := decimal.NewFromString(request.FormValue(model.FieldPricePerHead))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, failure.BadRequestFromString("price_per_head must be a decimal number"))

		return
	}

	req.PricePerHead = price

	file, fileHeader, err := request.FormFile(model.FieldImage)
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetRooms retrieves rooms based on query parameters.
// @Summary Get all rooms
// @Description Retrieve rooms with optional filtering and pagination.
// @Tags Room
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param homestay_id query string false "Filter by homestay"
// @Param status query string false "Filter by status" Enums(available, blocked, maintenance)
// @Param room_type query string false "Filter by room type" Enums(view, non_view)
// @Param room_name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomName,
				Operator: gDto.FilterOperatorLike,
				Value:    query.Get(model.FieldRoomName),
				Table:    model.TableName,
			},
		},
	}

	for _, field := range []string{model.FieldHomestayID, model.FieldStatus, model.FieldRoomType} {
		if value := query.Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	room, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom updates an existing room by its ID.
// @Summary Update a room by ID
// @Description Update details or pricing of a room. Only the fields sent are changed.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Room ID"
// @Param room_number formData string false "Room number"
// @Param room_name formData string false "Room name"
// @Param room_type formData string false "Room type" Enums(view, non_view)
// @Param capacity formData integer false "Maximum guests"
// @Param price_per_head formData string false "Nightly price per guest"
// @Param description formData string false "Description"
// @Param image formData file false "Room image"
// @Success 200 {object} response.Message "Room updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.UpdateRoomRequest{
		RoomNumber:  r.FormValue(model.FieldRoomNumber),
		RoomName:    r.FormValue(model.FieldRoomName),
		RoomType:    r.FormValue(model.FieldRoomType),
		Description: r.FormValue("description"),
	}

	if capStr := r.FormValue(model.FieldCapacity); capStr != "" {
		c, err := shared.ConvertStringToInt(capStr)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString("capacity must be a number"))

			return
		}

		req.Capacity = &c
	}

	if priceStr := r.FormValue(model.FieldPricePerHead); priceStr != "" {
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString(fmt.Sprintf("invalid price_per_head %q", priceStr)))

			return
		}

		req.PricePerHead = &price
	}

	file, fileHeader, err := r.FormFile(model.FieldImage)
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// DeleteRoom deletes a room by its ID.
// @Summary Delete a room by ID
// @Description Rooms that appear on a booking cannot be deleted; block them instead.
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message "Room deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}

// BlockRoom takes a room out of sale.
// @Summary Block a room
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.BlockRoomRequest true "Block Room Request"
// @Success 200 {object} response.Message "Room blocked successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/block [post]
// @Security ApiKeyAuth
func (handler *Handler) BlockRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BlockRoom")
	defer scope.End()

	req := dto.BlockRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Block(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to block room")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Room blocked successfully")
}

// UnblockRoom puts a blocked room back on sale.
// @Summary Unblock a room
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message "Room unblocked successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/unblock [post]
// @Security ApiKeyAuth
func (handler *Handler) UnblockRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UnblockRoom")
	defer scope.End()

	if err := handler.service.Unblock(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to unblock room")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Room unblocked successfully")
}
