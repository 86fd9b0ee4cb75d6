package model

import (
	"time"

	"homestay/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                  = "id"
	FieldReference           = "reference"
	FieldLeadID              = "lead_id"
	FieldGuestName           = "guest_name"
	FieldHomestayID          = "homestay_id"
	FieldCheckInDate         = "check_in_date"
	FieldCheckOutDate        = "check_out_date"
	FieldStatus              = "status"
	FieldPaidAmount          = "paid_amount"
	FieldBalanceAmount       = "balance_amount"
	FieldIsPaymentComplete   = "is_payment_complete"
	FieldNotes               = "notes"
	FieldActualCheckIn       = "actual_check_in"
	FieldActualCheckOut      = "actual_check_out"
	FieldCancelledAt         = "cancelled_at"
	FieldCancellationReason  = "cancellation_reason"
	FieldSpecialRequests     = "special_requests"
	FieldExpectedArrivalTime = "expected_arrival_time"

	SequenceReference = "booking_reference_seq"
	DefaultReference  = "BKG"
)

type Booking struct {
	ID                  string          `db:"id"`
	Reference           string          `db:"reference"`
	LeadID              string          `db:"lead_id"`
	HomestayID          string          `db:"homestay_id"`
	GuestName           string          `db:"guest_name"`
	GuestEmail          string          `db:"guest_email"`
	GuestPhone          string          `db:"guest_phone"`
	Adults              int             `db:"adults"`
	Children            int             `db:"children"`
	TotalGuests         int             `db:"total_guests"`
	CheckInDate         time.Time       `db:"check_in_date"`
	CheckOutDate        time.Time       `db:"check_out_date"`
	Nights              int             `db:"nights"`
	TotalRooms          int             `db:"total_rooms"`
	Status              string          `db:"status"`
	GrossAmount         decimal.Decimal `db:"gross_amount"`
	DiscountAmount      decimal.Decimal `db:"discount_amount"`
	Subtotal            decimal.Decimal `db:"subtotal"`
	TaxPercent          decimal.Decimal `db:"tax_percent"`
	TaxAmount           decimal.Decimal `db:"tax_amount"`
	TotalAmount         decimal.Decimal `db:"total_amount"`
	PaidAmount          decimal.Decimal `db:"paid_amount"`
	BalanceAmount       decimal.Decimal `db:"balance_amount"`
	IsPaymentComplete   bool            `db:"is_payment_complete"`
	SpecialRequests     string          `db:"special_requests"`
	Notes               string          `db:"notes"`
	ExpectedArrivalTime string          `db:"expected_arrival_time"`
	ActualCheckIn       *time.Time      `db:"actual_check_in"`
	ActualCheckOut      *time.Time      `db:"actual_check_out"`
	CancelledAt         *time.Time      `db:"cancelled_at"`
	CancellationReason  string          `db:"cancellation_reason"`
	model.Metadata
}

// Settle applies a paid amount and keeps balance = total - paid. A booking that owes nothing, a
// zero total included, is complete; payment never changes the booking status.
func (b *Booking) Settle(paid decimal.Decimal) {
	b.PaidAmount = paid
	b.BalanceAmount = b.TotalAmount.Sub(paid)
	b.IsPaymentComplete = !b.BalanceAmount.IsPositive()
}
