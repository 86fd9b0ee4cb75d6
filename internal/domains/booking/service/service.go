package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"slices"
	"strings"
	"time"

	"homestay/config"
	jwtInfra "homestay/infras/jwt"
	"homestay/infras/otel"
	"homestay/infras/postgres"
	"homestay/infras/s3"
	"homestay/internal/domains/booking/model"
	"homestay/internal/domains/booking/model/dto"
	"homestay/internal/domains/booking/pricing"
	"homestay/internal/domains/booking/repository"
	homestayService "homestay/internal/domains/homestay/service"
	leadEvent "homestay/internal/domains/lead/event"
	leadService "homestay/internal/domains/lead/service"
	roomModel "homestay/internal/domains/room/model"
	roomRepository "homestay/internal/domains/room/repository"
	"homestay/shared"
	"homestay/shared/cache"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/failure"
	gModel "homestay/shared/model"
	"homestay/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	receiptDirectory = "receipt"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetByReference(ctx context.Context, reference string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) error
	CheckIn(ctx context.Context, req dto.CheckInRequest, id string) error
	CheckOut(ctx context.Context, req dto.CheckOutRequest, id string) error
	AddPayment(ctx context.Context, req dto.CreatePaymentRequest, id string) (dto.PaymentResponse, error)
	ListPayments(ctx context.Context, req gDto.QueryParams, id string) (dto.GetPaymentsResponse, error)
	UploadReceipt(ctx context.Context, file multipart.File, header *multipart.FileHeader, id, paymentID string) (dto.PaymentResponse, error)
	Statistics(ctx context.Context, homestayID string) (dto.StatisticsResponse, error)
	TodayCheckIns(ctx context.Context) ([]dto.BookingResponse, error)
	TodayCheckOuts(ctx context.Context) ([]dto.BookingResponse, error)
	Availability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	Voucher(ctx context.Context, id string) (dto.VoucherResponse, error)
	VerifyVoucher(ctx context.Context, token string) (dto.VoucherDetailResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	roomLineRepo repository.BookingRoom
	paymentRepo  repository.Payment
	roomRepo     roomRepository.Room
	availability Availability
	lead         leadService.Lead
	homestay     homestayService.Homestay
	publisher    leadEvent.Publisher
	transactor   postgres.Transactor
	jwt          jwtInfra.JWT
	s3           s3.S3
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	roomLineRepo repository.BookingRoom,
	paymentRepo repository.Payment,
	roomRepo roomRepository.Room,
	availability Availability,
	lead leadService.Lead,
	homestay homestayService.Homestay,
	publisher leadEvent.Publisher,
	transactor postgres.Transactor,
	jwt jwtInfra.JWT,
	s3 s3.S3,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		roomLineRepo: roomLineRepo,
		paymentRepo:  paymentRepo,
		roomRepo:     roomRepo,
		availability: availability,
		lead:         lead,
		homestay:     homestay,
		publisher:    publisher,
		transactor:   transactor,
		jwt:          jwt,
		s3:           s3,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create books one or more rooms of a homestay for a lead. Every room is locked, validated and
// priced inside one transaction, so either the header and all of its lines are written or
// nothing is.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := req.Stay()
	if errors.Is(err, dto.ErrStayRange) {
		return res, failure.BadRequestWithReason(failure.ReasonInvalidDateRange, err.Error()) // nolint:wrapcheck
	}

	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	roomIDs, err := req.RoomIDs()
	if err != nil {
		return res, failure.BadRequestWithReason(failure.ReasonDuplicateRoomInRequest, err.Error()) // nolint:wrapcheck
	}

	lead, err := s.lead.Get(ctx, req.LeadID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if _, err = s.homestay.Get(ctx, req.HomestayID); err != nil {
		return res, err //nolint:wrapcheck
	}

	now := timezone.Now()
	adults, children := req.Guests(lead.Adults, lead.Children)
	metadata := gModel.NewMetadata(user, now)

	booking := model.Booking{
		ID:                  uuid.NewString(),
		LeadID:              lead.ID,
		HomestayID:          req.HomestayID,
		GuestName:           lead.Name,
		GuestEmail:          lead.Email,
		GuestPhone:          lead.Phone,
		Adults:              adults,
		Children:            children,
		TotalGuests:         adults + children,
		CheckInDate:         checkIn,
		CheckOutDate:        checkOut,
		Nights:              timezone.Nights(checkIn, checkOut),
		TotalRooms:          len(req.Rooms),
		Status:              model.StatusPending,
		SpecialRequests:     req.SpecialRequests,
		Notes:               req.Notes,
		ExpectedArrivalTime: req.ExpectedArrivalTime,
		Metadata:            metadata,
	}

	lines := make([]model.BookingRoom, len(req.Rooms))

	err = s.transactor.WithTx(ctx, nil, func(tx *sqlx.Tx) error {
		if err := s.repo.LockRoomsTx(ctx, tx, roomIDs); err != nil {
			return err //nolint:wrapcheck
		}

		priced := make([]pricing.Line, len(req.Rooms))

		for i, line := range req.Rooms {
			room, err := s.reserveRoom(ctx, tx, line, booking)
			if err != nil {
				return err
			}

			priced[i] = pricing.Line{RoomID: room.ID, PricePerHead: room.PricePerHead, Guests: line.Guests}
			lines[i] = model.BookingRoom{
				ID:              uuid.NewString(),
				BookingID:       booking.ID,
				RoomID:          room.ID,
				RoomNumber:      room.RoomNumber,
				RoomName:        room.RoomName,
				Guests:          line.Guests,
				IsFullyOccupied: line.IsFullyOccupied,
				Notes:           line.Notes,
				CheckInDate:     checkIn,
				CheckOutDate:    checkOut,
				Status:          model.LineStatusReserved,
				Metadata:        metadata,
			}
		}

		totals, err := pricing.ComputeTotals(priced, booking.Nights, req.DiscountAmount, req.TaxPercent)
		if err != nil {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		if totals.Subtotal.IsNegative() {
			return failure.BadRequestWithReason(failure.ReasonDiscountExceedsTotal, // nolint:wrapcheck
				fmt.Sprintf("discount %s exceeds the room total %s", req.DiscountAmount.StringFixed(2), totals.Gross.StringFixed(2)))
		}

		totals = totals.Rounded()
		for i := range lines {
			lines[i].RatePerNight = totals.Lines[i].RatePerNight
			lines[i].TotalAmount = totals.Lines[i].Total
		}

		booking.GrossAmount = totals.Gross
		booking.DiscountAmount = totals.Discount
		booking.Subtotal = totals.Subtotal
		booking.TaxPercent = totals.TaxPercent
		booking.TaxAmount = totals.Tax
		booking.TotalAmount = totals.GrandTotal
		booking.Settle(booking.PaidAmount)

		booking.Reference, err = s.nextReference(ctx, tx, model.SequenceReference, s.cfg.Booking.ReferencePrefix, model.DefaultReference, now)
		if err != nil {
			return err
		}

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return err //nolint:wrapcheck
		}

		return s.roomLineRepo.InsertBulkTx(ctx, tx, lines) //nolint:wrapcheck
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation {
			return res, failure.ConflictWithReason(failure.ReasonRoomBooked, "one of the rooms was booked for these dates by another request") // nolint:wrapcheck
		}

		var fail *failure.Failure
		if errors.As(err, &fail) {
			return res, err
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := s.publisher.PublishConverted(ctx, lead.ID, booking.ID); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Str("leadID", lead.ID).Msg("failed to notify lead conversion")
	}

	slices.SortFunc(lines, compareLines)
	res.FromModel(booking, lines)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

// reserveRoom resolves a requested room and checks it can take the line. The room row is locked
// inside the transaction after its advisory lock is held, so blocking the room waits for the booking.
func (s *serviceImpl) reserveRoom(ctx context.Context, tx *sqlx.Tx, line dto.BookingRoomRequest, booking model.Booking) (roomModel.Room, error) {
	room, err := s.roomRepo.LockTx(ctx, tx, shared.FilterByID(line.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound(fmt.Sprintf("room %s not found", line.RoomID)) // nolint:wrapcheck
	}

	if line.Guests > room.Capacity {
		return room, failure.BadRequestWithReason(failure.ReasonCapacityExceeded, // nolint:wrapcheck
			fmt.Sprintf("room %s holds %d guests, %d requested", room.RoomNumber, room.Capacity, line.Guests))
	}

	if room.HomestayID != booking.HomestayID {
		return room, failure.BadRequestWithReason(failure.ReasonRoomHomestayMismatch, // nolint:wrapcheck
			fmt.Sprintf("room %s does not belong to the selected homestay", room.RoomNumber))
	}

	if err = s.availability.Check(ctx, tx, room, booking.CheckInDate, booking.CheckOutDate); err != nil {
		return room, err //nolint:wrapcheck
	}

	return room, nil
}

// nextReference formats PREFIX-YEAR-NNNN from a database sequence.
func (s *serviceImpl) nextReference(ctx context.Context, tx *sqlx.Tx, sequence, prefix, fallback string, now time.Time) (string, error) {
	next, err := s.repo.NextSequenceTx(ctx, tx, sequence)
	if err != nil {
		return constant.Empty, err //nolint:wrapcheck
	}

	if prefix == constant.Empty {
		prefix = fallback
	}

	return fmt.Sprintf("%s-%d-%04d", strings.ToUpper(prefix), now.Year(), next), nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.Bookings = toResponses(bookings)
	res.TotalData = total
	res.TotalPage = shared.CalculateTotalPage(total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getBooking(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return res, err
	}

	res, err = s.withLines(ctx, booking)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByReference(ctx context.Context, reference string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByReference")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.getBooking(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldReference, Value: strings.ToUpper(reference), Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	})
	if err != nil {
		return res, err
	}

	return s.withLines(ctx, booking)
}

// Update changes the guest facing notes of a booking. Amounts, dates and rooms are fixed once the
// booking exists.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return err
	}

	if slices.Contains(model.ReleasedStatuses, booking.Status) {
		return failure.BadRequestWithReason(failure.ReasonInvalidStatusChange, fmt.Sprintf("cannot update a %s booking", booking.Status)) // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, req.ToFields(user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Availability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut, err := dto.ParseStay(req.CheckInDate, req.CheckOutDate)
	if errors.Is(err, dto.ErrStayRange) {
		return res, failure.BadRequestWithReason(failure.ReasonInvalidDateRange, err.Error()) // nolint:wrapcheck
	}

	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	available, err := s.availability.IsAvailable(ctx, req.RoomID, checkIn, checkOut)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return dto.AvailabilityResponse{
		RoomID:       req.RoomID,
		CheckInDate:  timezone.FormatDate(checkIn),
		CheckOutDate: timezone.FormatDate(checkOut),
		Available:    available,
	}, nil
}

func (s *serviceImpl) getBooking(ctx context.Context, filter gDto.FilterGroup) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) withLines(ctx context.Context, booking model.Booking) (res dto.BookingResponse, err error) {
	lines, err := s.roomLineRepo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldRoomID, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldBookingID, Value: booking.ID, Operator: gDto.FilterOperatorEq, Table: model.BookingRoomTableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking rooms")

		return res, fmt.Errorf("failed to get booking rooms: %w", err)
	}

	res.FromModel(booking, lines)

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func toResponses(bookings []model.Booking) []dto.BookingResponse {
	res := make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		res[i].FromModel(booking, nil)
	}

	return res
}

// compareLines orders room lines the way they are read back.
func compareLines(a, b model.BookingRoom) int {
	return strings.Compare(a.RoomID, b.RoomID)
}
