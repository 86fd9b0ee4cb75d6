package model_test

import (
	"testing"

	"homestay/internal/domains/booking/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		allowed  bool
	}{
		{model.StatusPending, model.StatusConfirmed, true},
		{model.StatusPending, model.StatusCancelled, true},
		{model.StatusPending, model.StatusNoShow, true},
		{model.StatusPending, model.StatusCheckedIn, false},
		{model.StatusConfirmed, model.StatusCheckedIn, true},
		{model.StatusConfirmed, model.StatusCancelled, true},
		{model.StatusConfirmed, model.StatusPending, false},
		{model.StatusCheckedIn, model.StatusCheckedOut, true},
		{model.StatusCheckedIn, model.StatusCancelled, false},
		{model.StatusCheckedOut, model.StatusCheckedIn, false},
		{model.StatusCancelled, model.StatusConfirmed, false},
		{model.StatusNoShow, model.StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.allowed, model.CanTransition(tt.from, tt.to))
		})
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, model.Terminal(model.StatusCheckedOut))
	assert.True(t, model.Terminal(model.StatusCancelled))
	assert.True(t, model.Terminal(model.StatusNoShow))
	assert.False(t, model.Terminal(model.StatusPending))
	assert.False(t, model.Terminal(model.StatusCheckedIn))
}

func TestLineStatusFor(t *testing.T) {
	assert.Equal(t, model.LineStatusReserved, model.LineStatusFor(model.StatusPending))
	assert.Equal(t, model.LineStatusReserved, model.LineStatusFor(model.StatusConfirmed))
	assert.Equal(t, model.LineStatusReserved, model.LineStatusFor(model.StatusNoShow))
	assert.Equal(t, model.LineStatusOccupied, model.LineStatusFor(model.StatusCheckedIn))
	assert.Equal(t, model.LineStatusCheckedOut, model.LineStatusFor(model.StatusCheckedOut))
	assert.Equal(t, model.LineStatusCancelled, model.LineStatusFor(model.StatusCancelled))
}

func TestBooking_Settle(t *testing.T) {
	booking := model.Booking{TotalAmount: decimal.RequireFromString("11200.00")}

	booking.Settle(decimal.NewFromInt(5000))
	assert.Equal(t, "6200", booking.BalanceAmount.String())
	assert.False(t, booking.IsPaymentComplete)

	booking.Settle(decimal.NewFromInt(11200))
	assert.True(t, booking.BalanceAmount.IsZero())
	assert.True(t, booking.IsPaymentComplete)

	booking.Settle(decimal.NewFromInt(11500))
	assert.Equal(t, "-300", booking.BalanceAmount.String())
	assert.True(t, booking.IsPaymentComplete)
}

func TestBooking_SettleZeroTotal(t *testing.T) {
	booking := model.Booking{Status: model.StatusPending, TotalAmount: decimal.Zero}

	booking.Settle(decimal.Zero)

	assert.True(t, booking.BalanceAmount.IsZero())
	assert.True(t, booking.IsPaymentComplete)
	assert.Equal(t, model.StatusPending, booking.Status)
}

func TestPayment_Signed(t *testing.T) {
	assert.Equal(t, "500", model.Payment{Amount: decimal.NewFromInt(500), PaymentType: model.PaymentTypeAdvance}.Signed().String())
	assert.Equal(t, "-500", model.Payment{Amount: decimal.NewFromInt(500), PaymentType: model.PaymentTypeRefund}.Signed().String())
}
