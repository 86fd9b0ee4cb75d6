package dto

import (
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"homestay/internal/domains/booking/model"
	"homestay/shared"
	gDto "homestay/shared/dto"
	"homestay/shared/timezone"

	"github.com/shopspring/decimal"
)

var (
	ErrStayRange     = errors.New("check_out_date must be after check_in_date")
	ErrDuplicateRoom = errors.New("a room can appear only once per booking")
)

type BookingRoomRequest struct {
	RoomID          string `json:"room_id"           validate:"required,uuid"`
	Guests          int    `json:"guests"            validate:"required,min=1"`
	IsFullyOccupied bool   `json:"is_fully_occupied"`
	Notes           string `json:"notes"             validate:"omitempty,max=500"`
}

type CreateBookingRequest struct {
	LeadID              string               `json:"lead_id"               validate:"required,uuid"`
	HomestayID          string               `json:"homestay_id"           validate:"required,uuid"`
	CheckInDate         string               `json:"check_in_date"         validate:"required,datetime=2006-01-02"`
	CheckOutDate        string               `json:"check_out_date"        validate:"required,datetime=2006-01-02"`
	Rooms               []BookingRoomRequest `json:"rooms"                 validate:"required,min=1,dive"`
	Adults              int                  `json:"adults"                validate:"omitempty,min=1"`
	Children            int                  `json:"children"              validate:"omitempty,min=0"`
	DiscountAmount      decimal.Decimal      `json:"discount_amount"       validate:"gte=0,decimalplaces=2"         swaggertype:"string"`
	TaxPercent          decimal.Decimal      `json:"tax_percent"           validate:"gte=0,lte=100,decimalplaces=2" swaggertype:"string"`
	SpecialRequests     string               `json:"special_requests"      validate:"omitempty,max=1000"`
	ExpectedArrivalTime string               `json:"expected_arrival_time" validate:"omitempty,datetime=15:04"`
	Notes               string               `json:"notes"                 validate:"omitempty"`
}

// Stay parses the stay dates as calendar days.
func (c *CreateBookingRequest) Stay() (checkIn, checkOut time.Time, err error) {
	return ParseStay(c.CheckInDate, c.CheckOutDate)
}

// RoomIDs returns the requested room ids in caller order.
func (c *CreateBookingRequest) RoomIDs() ([]string, error) {
	ids := make([]string, 0, len(c.Rooms))
	seen := make(map[string]struct{}, len(c.Rooms))

	for _, room := range c.Rooms {
		if _, ok := seen[room.RoomID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRoom, room.RoomID)
		}

		seen[room.RoomID] = struct{}{}
		ids = append(ids, room.RoomID)
	}

	return ids, nil
}

// Guests returns the party size, falling back to the lead's counts and then to the room lines.
func (c *CreateBookingRequest) Guests(leadAdults, leadChildren int) (adults, children int) {
	adults, children = c.Adults, c.Children

	if adults == 0 {
		adults, children = leadAdults, leadChildren
	}

	if adults == 0 {
		for _, room := range c.Rooms {
			adults += room.Guests
		}
	}

	return adults, children
}

func ParseStay(checkInDate, checkOutDate string) (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.ParseDate(checkInDate)
	if err != nil {
		return checkIn, checkOut, err //nolint:wrapcheck
	}

	checkOut, err = timezone.ParseDate(checkOutDate)
	if err != nil {
		return checkIn, checkOut, err //nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, ErrStayRange
	}

	return checkIn, checkOut, nil
}

type UpdateBookingRequest struct {
	SpecialRequests     *string `db:"special_requests"      json:"special_requests"      validate:"omitempty,max=1000"`
	ExpectedArrivalTime *string `db:"expected_arrival_time" json:"expected_arrival_time" validate:"omitempty,datetime=15:04"`
	Notes               *string `db:"notes"                 json:"notes"                 validate:"omitempty"`
}

func (u *UpdateBookingRequest) ToFields(user string) map[string]any {
	return shared.TransformFields(*u, user)
}

func (u *UpdateBookingRequest) IsEmpty() bool {
	return u.SpecialRequests == nil && u.ExpectedArrivalTime == nil && u.Notes == nil
}

type UpdateBookingStatusRequest struct {
	Status             string `json:"status"              validate:"required,oneof=pending confirmed checked_in checked_out cancelled no_show"`
	Reason             string `json:"reason"              validate:"omitempty,max=500"`
	CancellationReason string `json:"cancellation_reason" validate:"omitempty,max=500"`
}

type CheckInRequest struct {
	ActualCheckIn string `json:"actual_check_in" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Notes         string `json:"notes"           validate:"omitempty,max=500"`
}

type CheckOutRequest struct {
	ActualCheckOut string `json:"actual_check_out" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Notes          string `json:"notes"            validate:"omitempty,max=500"`
}

// ActualTime returns the supplied moment or now when none was sent.
func ActualTime(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return now, nil
	}

	at, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", value, err)
	}

	return at, nil
}

type CreatePaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"         validate:"gt=0,decimalplaces=2"                                 swaggertype:"string"`
	PaymentType   string          `json:"payment_type"   validate:"omitempty,oneof=advance partial full refund"`
	PaymentMethod string          `json:"payment_method" validate:"omitempty,oneof=cash card upi bank_transfer cheque online"`
	TransactionID string          `json:"transaction_id" validate:"omitempty,max=100"`
	PaymentDate   string          `json:"payment_date"   validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Notes         string          `json:"notes"          validate:"omitempty,max=500"`
}

type UploadReceiptRequest struct {
	File multipart.FileHeader `validate:"required,mimetypes=image/jpeg image/png application/pdf,maxfilesize=5"`
}

type AvailabilityRequest struct {
	RoomID       string `json:"room_id"        validate:"required,uuid"`
	CheckInDate  string `json:"check_in_date"  validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
}

type AvailabilityResponse struct {
	RoomID       string `json:"room_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Available    bool   `json:"available"`
}

type BookingRoomResponse struct {
	ID              string          `json:"id"`
	RoomID          string          `json:"room_id"`
	RoomNumber      string          `json:"room_number"`
	RoomName        string          `json:"room_name"`
	Guests          int             `json:"guests"`
	RatePerNight    decimal.Decimal `json:"rate_per_night" swaggertype:"string"`
	TotalAmount     decimal.Decimal `json:"total_amount"   swaggertype:"string"`
	IsFullyOccupied bool            `json:"is_fully_occupied"`
	Notes           string          `json:"notes"`
	Status          string          `json:"status"`
}

func (r *BookingRoomResponse) FromModel(model model.BookingRoom) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.RoomNumber = model.RoomNumber
	r.RoomName = model.RoomName
	r.Guests = model.Guests
	r.RatePerNight = model.RatePerNight
	r.TotalAmount = model.TotalAmount
	r.IsFullyOccupied = model.IsFullyOccupied
	r.Notes = model.Notes
	r.Status = model.Status
}

type BookingResponse struct {
	ID                  string                `json:"id"`
	Reference           string                `json:"reference"`
	LeadID              string                `json:"lead_id"`
	HomestayID          string                `json:"homestay_id"`
	GuestName           string                `json:"guest_name"`
	GuestEmail          string                `json:"guest_email"`
	GuestPhone          string                `json:"guest_phone"`
	Adults              int                   `json:"adults"`
	Children            int                   `json:"children"`
	TotalGuests         int                   `json:"total_guests"`
	CheckInDate         string                `json:"check_in_date"`
	CheckOutDate        string                `json:"check_out_date"`
	Nights              int                   `json:"nights"`
	TotalRooms          int                   `json:"total_rooms"`
	Status              string                `json:"status"`
	GrossAmount         decimal.Decimal       `json:"gross_amount"    swaggertype:"string"`
	DiscountAmount      decimal.Decimal       `json:"discount_amount" swaggertype:"string"`
	Subtotal            decimal.Decimal       `json:"subtotal"        swaggertype:"string"`
	TaxPercent          decimal.Decimal       `json:"tax_percent"     swaggertype:"string"`
	TaxAmount           decimal.Decimal       `json:"tax_amount"      swaggertype:"string"`
	TotalAmount         decimal.Decimal       `json:"total_amount"    swaggertype:"string"`
	PaidAmount          decimal.Decimal       `json:"paid_amount"     swaggertype:"string"`
	BalanceAmount       decimal.Decimal       `json:"balance_amount"  swaggertype:"string"`
	IsPaymentComplete   bool                  `json:"is_payment_complete"`
	SpecialRequests     string                `json:"special_requests"`
	Notes               string                `json:"notes"`
	ExpectedArrivalTime string                `json:"expected_arrival_time"`
	ActualCheckIn       string                `json:"actual_check_in,omitempty"`
	ActualCheckOut      string                `json:"actual_check_out,omitempty"`
	CancelledAt         string                `json:"cancelled_at,omitempty"`
	CancellationReason  string                `json:"cancellation_reason,omitempty"`
	Rooms               []BookingRoomResponse `json:"rooms,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking, rooms []model.BookingRoom) {
	r.ID = booking.ID
	r.Reference = booking.Reference
	r.LeadID = booking.LeadID
	r.HomestayID = booking.HomestayID
	r.GuestName = booking.GuestName
	r.GuestEmail = booking.GuestEmail
	r.GuestPhone = booking.GuestPhone
	r.Adults = booking.Adults
	r.Children = booking.Children
	r.TotalGuests = booking.TotalGuests
	r.CheckInDate = timezone.FormatDate(booking.CheckInDate)
	r.CheckOutDate = timezone.FormatDate(booking.CheckOutDate)
	r.Nights = booking.Nights
	r.TotalRooms = booking.TotalRooms
	r.Status = booking.Status
	r.GrossAmount = booking.GrossAmount
	r.DiscountAmount = booking.DiscountAmount
	r.Subtotal = booking.Subtotal
	r.TaxPercent = booking.TaxPercent
	r.TaxAmount = booking.TaxAmount
	r.TotalAmount = booking.TotalAmount
	r.PaidAmount = booking.PaidAmount
	r.BalanceAmount = booking.BalanceAmount
	r.IsPaymentComplete = booking.IsPaymentComplete
	r.SpecialRequests = booking.SpecialRequests
	r.Notes = booking.Notes
	r.ExpectedArrivalTime = booking.ExpectedArrivalTime
	r.ActualCheckIn = formatMoment(booking.ActualCheckIn)
	r.ActualCheckOut = formatMoment(booking.ActualCheckOut)
	r.CancelledAt = formatMoment(booking.CancelledAt)
	r.CancellationReason = booking.CancellationReason

	if len(rooms) > 0 {
		r.Rooms = make([]BookingRoomResponse, len(rooms))
		for i, room := range rooms {
			r.Rooms[i].FromModel(room)
		}
	}

	r.Metadata.FromModel(booking.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

type PaymentResponse struct {
	ID            string          `json:"id"`
	Reference     string          `json:"reference"`
	BookingID     string          `json:"booking_id"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string"`
	PaymentType   string          `json:"payment_type"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	TransactionID string          `json:"transaction_id"`
	PaymentDate   string          `json:"payment_date"`
	ReceiptURL    string          `json:"receipt_url,omitempty"`
	Notes         string          `json:"notes"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.Reference = model.Reference
	r.BookingID = model.BookingID
	r.Amount = model.Amount
	r.PaymentType = model.PaymentType
	r.PaymentMethod = model.PaymentMethod
	r.Status = model.Status
	r.TransactionID = model.TransactionID
	r.PaymentDate = formatMoment(&model.PaymentDate)
	r.ReceiptURL = model.ReceiptURL
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

type StatisticsResponse struct {
	TotalBookings      int             `json:"total_bookings"`
	PendingBookings    int             `json:"pending_bookings"`
	ConfirmedBookings  int             `json:"confirmed_bookings"`
	CheckedInBookings  int             `json:"checked_in_bookings"`
	CheckedOutBookings int             `json:"checked_out_bookings"`
	CancelledBookings  int             `json:"cancelled_bookings"`
	NoShowBookings     int             `json:"no_show_bookings"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"  swaggertype:"string"`
	TotalPaid          decimal.Decimal `json:"total_paid"     swaggertype:"string"`
	PendingAmount      decimal.Decimal `json:"pending_amount" swaggertype:"string"`
}

func (r *StatisticsResponse) FromModel(stats model.Statistics) {
	r.TotalBookings = stats.TotalBookings
	r.PendingBookings = stats.PendingBookings
	r.ConfirmedBookings = stats.ConfirmedBookings
	r.CheckedInBookings = stats.CheckedInBookings
	r.CheckedOutBookings = stats.CheckedOutBookings
	r.CancelledBookings = stats.CancelledBookings
	r.NoShowBookings = stats.NoShowBookings
	r.TotalRevenue = stats.TotalRevenue
	r.TotalPaid = stats.TotalPaid
	r.PendingAmount = stats.PendingAmount
}

type VoucherResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

type VerifyVoucherRequest struct {
	Token string `json:"token" validate:"required"`
}

type VoucherDetailResponse struct {
	BookingID    string `json:"booking_id"`
	Reference    string `json:"reference"`
	HomestayID   string `json:"homestay_id"`
	GuestName    string `json:"guest_name"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Status       string `json:"status"`
}

func formatMoment(at *time.Time) string {
	if at == nil || at.IsZero() {
		return ""
	}

	return timezone.ToAppTime(*at).Format(time.RFC3339)
}
