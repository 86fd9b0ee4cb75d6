package booking

import (
	"net/http"

	"homestay/infras/otel"
	"homestay/internal/domains/booking/model"
	"homestay/internal/domains/booking/model/dto"
	"homestay/internal/domains/booking/service"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/failure"
	"homestay/shared/validator"
	"homestay/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryCheckInFrom = "check_in_from"
	queryCheckInTo   = "check_in_to"
	dateTag          = "omitempty,datetime=2006-01-02"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/availability", handler.CheckAvailability)
		routerGroup.Get("/statistics", handler.GetStatistics)
		routerGroup.Get("/check-ins/today", handler.GetTodayCheckIns)
		routerGroup.Get("/check-outs/today", handler.GetTodayCheckOuts)
		routerGroup.Post("/vouchers/verify", handler.VerifyVoucher)
		routerGroup.Get("/reference/{reference}", handler.GetBookingByReference)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
		routerGroup.Patch("/{id}/status", handler.UpdateBookingStatus)
		routerGroup.Post("/{id}/check-in", handler.CheckIn)
		routerGroup.Post("/{id}/check-out", handler.CheckOut)
		routerGroup.Post("/{id}/payments", handler.AddPayment)
		routerGroup.Get("/{id}/payments", handler.GetPayments)
		routerGroup.Post("/{id}/payments/{paymentId}/receipt", handler.UploadReceipt)
		routerGroup.Get("/{id}/voucher", handler.GetVoucher)
	})
}

// CreateBooking books one or more rooms for a lead.
// @Summary Create a booking
// @Description Book rooms of one homestay for a lead. Every room is checked and priced in one transaction; if any room cannot be booked nothing is written.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Room blocked or already booked"
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking " + res.Reference + " created by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetBookings retrieves bookings based on query parameters.
// @Summary Get all bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param guest_name query string false "Filter by guest name"
// @Param status query string false "Filter by status" Enums(pending, confirmed, checked_in, checked_out, cancelled, no_show)
// @Param homestay_id query string false "Filter by homestay"
// @Param lead_id query string false "Filter by lead"
// @Param check_in_from query string false "Earliest check-in date (YYYY-MM-DD)"
// @Param check_in_to query string false "Latest check-in date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldGuestName,
				Operator: gDto.FilterOperatorLike,
				Value:    query.Get(model.FieldGuestName),
				Table:    model.TableName,
			},
		},
	}

	for _, field := range []string{model.FieldStatus, model.FieldHomestayID, model.FieldLeadID} {
		if value := query.Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	bounds := []struct {
		param    string
		argName  string
		operator string
	}{
		{param: queryCheckInFrom, argName: queryCheckInFrom, operator: gDto.FilterOperatorGreaterEq},
		{param: queryCheckInTo, argName: queryCheckInTo, operator: gDto.FilterOperatorLessEq},
	}

	for _, bound := range bounds {
		value := query.Get(bound.param)
		if err := validator.ValidateVar(value, dateTag); err != nil {
			response.WithError(w, failure.BadRequestFromString(bound.param+" must be a date in YYYY-MM-DD format"))

			return
		}

		if value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				ArgName:  bound.argName,
				Field:    model.FieldCheckInDate,
				Operator: bound.operator,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking with its rooms.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	booking, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// GetBookingByReference retrieves a booking by its reference, e.g. BKG-2025-0001.
// @Summary Get a booking by reference
// @Tags Booking
// @Produce json
// @Param reference path string true "Booking reference"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/reference/{reference} [get]
func (handler *Handler) GetBookingByReference(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByReference")
	defer scope.End()

	booking, err := handler.service.GetByReference(ctx, chi.URLParam(r, constant.RequestParamReference))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by reference")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking changes guest notes of a booking.
// @Summary Update a booking by ID
// @Description Only special requests, expected arrival time and notes can change. Cancelled and checked out bookings are read only.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Message "Booking updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	req := dto.UpdateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Booking updated successfully")
}

// UpdateBookingStatus moves a booking through its lifecycle.
// @Summary Change the status of a booking
// @Description Allowed moves: pending to confirmed, cancelled or no_show; confirmed to checked_in, cancelled or no_show; checked_in to checked_out. Room lines follow the booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingStatusRequest true "Update Booking Status Request"
// @Success 200 {object} response.Message "Booking status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Status change not allowed"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/status [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	req := dto.UpdateBookingStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("status", req.Status).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking moved to " + req.Status)

	response.WithMessage(w, http.StatusOK, "Booking status updated successfully")
}

// CheckIn records the arrival of the guests of a confirmed booking.
// @Summary Check in a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CheckInRequest false "Check In Request"
// @Success 200 {object} response.Message "Booking checked in successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/check-in [post]
// @Security ApiKeyAuth
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	req := dto.CheckInRequest{}

	if err := decodeOptional(r, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CheckIn(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in booking")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Booking checked in successfully")
}

// CheckOut records the departure of the guests of a checked in booking.
// @Summary Check out a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CheckOutRequest false "Check Out Request"
// @Success 200 {object} response.Message "Booking checked out successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/check-out [post]
// @Security ApiKeyAuth
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	req := dto.CheckOutRequest{}

	if err := decodeOptional(r, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CheckOut(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out booking")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Booking checked out successfully")
}

// AddPayment records a payment or refund against a booking.
// @Summary Add a payment
// @Description The first positive payment confirms a pending booking. Refunds cannot exceed the amount paid.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CreatePaymentRequest true "Create Payment Request"
// @Success 201 {object} response.Data[dto.PaymentResponse] "Payment recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/payments [post]
// @Security ApiKeyAuth
func (handler *Handler) AddPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddPayment")
	defer scope.End()

	req := dto.CreatePaymentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.AddPayment(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment " + res.Reference + " recorded")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetPayments lists the payments of a booking.
// @Summary Get payments of a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetPaymentsResponse] "List of payments"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/payments [get]
func (handler *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	payments, err := handler.service.ListPayments(ctx, queryParams, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, payments)
}

// UploadReceipt attaches a receipt to a payment, replacing any previous one.
// @Summary Upload a payment receipt
// @Tags Booking
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Booking ID"
// @Param paymentId path string true "Payment ID"
// @Param file formData file true "Receipt (jpeg, png or pdf, up to 5 MB)"
// @Success 200 {object} response.Data[dto.PaymentResponse] "Receipt uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/payments/{paymentId}/receipt [post]
// @Security ApiKeyAuth
func (handler *Handler) UploadReceipt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadReceipt")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("file is required"))

		return
	}
	defer file.Close()

	req := dto.UploadReceiptRequest{File: *fileHeader}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadReceipt(ctx, file, fileHeader,
		chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamPaymentID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload receipt")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CheckAvailability tells whether a room is free for a stay.
// @Summary Check room availability
// @Description A room is free when it is not blocked or under maintenance and no live booking overlaps the stay. Check-out day is free for the next guest.
// @Tags Booking
// @Produce json
// @Param room_id query string true "Room ID"
// @Param check_in_date query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out_date query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/availability [get]
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	query := r.URL.Query()
	req := dto.AvailabilityRequest{
		RoomID:       query.Get("room_id"),
		CheckInDate:  query.Get(model.FieldCheckInDate),
		CheckOutDate: query.Get(model.FieldCheckOutDate),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Availability(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetStatistics summarises bookings and revenue.
// @Summary Get booking statistics
// @Tags Booking
// @Produce json
// @Param homestay_id query string false "Limit to one homestay"
// @Success 200 {object} response.Data[dto.StatisticsResponse] "Statistics"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/statistics [get]
func (handler *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatistics")
	defer scope.End()

	homestayID := r.URL.Query().Get(model.FieldHomestayID)
	if err := validator.ValidateVar(homestayID, "omitempty,uuid"); err != nil {
		response.WithError(w, failure.BadRequestFromString("homestay_id must be a valid UUID"))

		return
	}

	stats, err := handler.service.Statistics(ctx, homestayID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking statistics")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}

// GetTodayCheckIns lists confirmed bookings arriving today.
// @Summary Get today's check-ins
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[[]dto.BookingResponse] "Arrivals"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/check-ins/today [get]
func (handler *Handler) GetTodayCheckIns(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodayCheckIns")
	defer scope.End()

	bookings, err := handler.service.TodayCheckIns(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get today's check-ins")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetTodayCheckOuts lists checked in bookings leaving today.
// @Summary Get today's check-outs
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[[]dto.BookingResponse] "Departures"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/check-outs/today [get]
func (handler *Handler) GetTodayCheckOuts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodayCheckOuts")
	defer scope.End()

	bookings, err := handler.service.TodayCheckOuts(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get today's check-outs")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetVoucher issues a signed voucher the guest can present on arrival.
// @Summary Get a booking voucher
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.VoucherResponse] "Voucher"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/voucher [get]
// @Security ApiKeyAuth
func (handler *Handler) GetVoucher(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVoucher")
	defer scope.End()

	voucher, err := handler.service.Voucher(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to issue voucher")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, voucher)
}

// VerifyVoucher checks a voucher presented at the front desk.
// @Summary Verify a booking voucher
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.VerifyVoucherRequest true "Verify Voucher Request"
// @Success 200 {object} response.Data[dto.VoucherDetailResponse] "Voucher details"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error "Invalid or expired voucher"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/vouchers/verify [post]
func (handler *Handler) VerifyVoucher(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyVoucher")
	defer scope.End()

	req := dto.VerifyVoucherRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.VerifyVoucher(ctx, req.Token)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify voucher")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// decodeOptional validates a body that clients may leave out entirely.
func decodeOptional[T any](r *http.Request, req *T) error {
	if r.ContentLength == 0 {
		return validator.ValidateStruct(req) //nolint:wrapcheck
	}

	return validator.Validate(r.Body, req) //nolint:wrapcheck
}
