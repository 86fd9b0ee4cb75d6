package model

import (
	"time"

	"homestay/shared/model"

	"github.com/shopspring/decimal"
)

const (
	PaymentTableName  = "payments"
	PaymentEntityName = "payment"

	FieldReceiptURL  = "receipt_url"
	FieldPaymentDate = "payment_date"

	SequencePaymentReference = "payment_reference_seq"
	DefaultPaymentReference  = "PAY"
)

const (
	PaymentTypeAdvance = "advance"
	PaymentTypePartial = "partial"
	PaymentTypeFull    = "full"
	PaymentTypeRefund  = "refund"

	PaymentMethodCash = "cash"

	PaymentStatusCompleted = "completed"
)

type Payment struct {
	ID            string          `db:"id"`
	Reference     string          `db:"reference"`
	BookingID     string          `db:"booking_id"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentType   string          `db:"payment_type"`
	PaymentMethod string          `db:"payment_method"`
	Status        string          `db:"status"`
	TransactionID string          `db:"transaction_id"`
	PaymentDate   time.Time       `db:"payment_date"`
	ReceiptURL    string          `db:"receipt_url"`
	Notes         string          `db:"notes"`
	model.Metadata
}

// Signed returns the amount as it counts toward the paid total.
func (p Payment) Signed() decimal.Decimal {
	if p.PaymentType == PaymentTypeRefund {
		return p.Amount.Neg()
	}

	return p.Amount
}
