package pricing_test

import (
	"testing"

	"homestay/internal/domains/booking/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestComputeTotals_TwoRooms(t *testing.T) {
	lines := []pricing.Line{
		{RoomID: "A", PricePerHead: dec("1000"), Guests: 2},
		{RoomID: "B", PricePerHead: dec("1500"), Guests: 1},
	}

	totals, err := pricing.ComputeTotals(lines, 3, dec("500"), dec("12"))

	assert.NoError(t, err)
	assert.True(t, totals.Lines[0].RatePerNight.Equal(dec("2000")))
	assert.True(t, totals.Lines[0].Total.Equal(dec("6000")))
	assert.True(t, totals.Lines[1].RatePerNight.Equal(dec("1500")))
	assert.True(t, totals.Lines[1].Total.Equal(dec("4500")))
	assert.True(t, totals.Gross.Equal(dec("10500")))
	assert.True(t, totals.Subtotal.Equal(dec("10000")))
	assert.True(t, totals.Tax.Equal(dec("1200")))
	assert.True(t, totals.GrandTotal.Equal(dec("11200")))
	assert.Equal(t, "11200.00", totals.Rounded().GrandTotal.StringFixed(2))
}

func TestComputeTotals_NoDrift(t *testing.T) {
	lines := make([]pricing.Line, 10)
	for i := range lines {
		lines[i] = pricing.Line{RoomID: "R", PricePerHead: dec("0.1"), Guests: 1}
	}

	totals, err := pricing.ComputeTotals(lines, 1, decimal.Zero, decimal.Zero)

	assert.NoError(t, err)
	assert.True(t, totals.GrandTotal.Equal(dec("1")), "ten lines of 0.1 must sum to exactly 1, got %s", totals.GrandTotal)
}

func TestComputeTotals_RoundsOnlyWhenAsked(t *testing.T) {
	lines := []pricing.Line{{RoomID: "A", PricePerHead: dec("333.33"), Guests: 1}}

	totals, err := pricing.ComputeTotals(lines, 1, decimal.Zero, dec("18"))

	assert.NoError(t, err)
	assert.Equal(t, "59.9994", totals.Tax.String())
	assert.Equal(t, "393.3294", totals.GrandTotal.String())

	rounded := totals.Rounded()
	assert.Equal(t, "60", rounded.Tax.String())
	assert.Equal(t, "393.33", rounded.GrandTotal.String())
	assert.Equal(t, "59.9994", totals.Tax.String(), "Rounded must not modify the receiver")
}

func TestTotals_RoundedAddsUp(t *testing.T) {
	lines := []pricing.Line{{RoomID: "A", PricePerHead: dec("2.004"), Guests: 1}}

	totals, err := pricing.ComputeTotals(lines, 1, decimal.Zero, dec("25"))

	assert.NoError(t, err)
	assert.Equal(t, "2.505", totals.GrandTotal.String())

	rounded := totals.Rounded()
	assert.Equal(t, "2.00", rounded.Subtotal.StringFixed(2))
	assert.Equal(t, "0.50", rounded.Tax.StringFixed(2))
	assert.Equal(t, "2.50", rounded.GrandTotal.StringFixed(2))
	assert.True(t, rounded.GrandTotal.Equal(rounded.Subtotal.Add(rounded.Tax)))
}

func TestTotals_RoundedTaxPercent(t *testing.T) {
	lines := []pricing.Line{{RoomID: "A", PricePerHead: dec("1000"), Guests: 1}}

	totals, err := pricing.ComputeTotals(lines, 1, decimal.Zero, dec("12.5"))

	assert.NoError(t, err)
	assert.Equal(t, "12.50", totals.Rounded().TaxPercent.StringFixed(2))
	assert.Equal(t, "1125.00", totals.Rounded().GrandTotal.StringFixed(2))
}

func TestComputeTotals_DiscountAboveGross(t *testing.T) {
	lines := []pricing.Line{{RoomID: "A", PricePerHead: dec("1000"), Guests: 1}}

	totals, err := pricing.ComputeTotals(lines, 1, dec("1500"), dec("10"))

	assert.NoError(t, err)
	assert.True(t, totals.Subtotal.Equal(dec("-500")))
	assert.True(t, totals.Tax.Equal(dec("-50")))
	assert.True(t, totals.GrandTotal.Equal(dec("-550")))
}

func TestComputeTotals_Invalid(t *testing.T) {
	line := pricing.Line{RoomID: "A", PricePerHead: dec("1000"), Guests: 1}

	tests := []struct {
		name     string
		lines    []pricing.Line
		nights   int
		discount decimal.Decimal
		tax      decimal.Decimal
		wantErr  error
	}{
		{name: "no lines", nights: 1, wantErr: pricing.ErrNoLines},
		{name: "zero nights", lines: []pricing.Line{line}, nights: 0, wantErr: pricing.ErrNoNights},
		{name: "no guests", lines: []pricing.Line{{RoomID: "A", PricePerHead: dec("10")}}, nights: 1, wantErr: pricing.ErrNoGuests},
		{name: "negative discount", lines: []pricing.Line{line}, nights: 1, discount: dec("-1"), wantErr: pricing.ErrNegativeIn},
		{name: "negative tax", lines: []pricing.Line{line}, nights: 1, tax: dec("-5"), wantErr: pricing.ErrNegativeIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pricing.ComputeTotals(tt.lines, tt.nights, tt.discount, tt.tax)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
