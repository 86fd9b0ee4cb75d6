// Package pricing computes booking amounts. Prices are per guest per night and every amount is
// a decimal; nothing is rounded until Rounded is called.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

const displayPlaces = 2

var (
	ErrNoLines    = errors.New("at least one room line is required")
	ErrNoNights   = errors.New("stay must be at least one night")
	ErrNoGuests   = errors.New("every room line needs at least one guest")
	ErrNegativeIn = errors.New("price, discount and tax must not be negative")

	hundred = decimal.NewFromInt(100)
)

type Line struct {
	RoomID       string
	PricePerHead decimal.Decimal
	Guests       int
}

type LineTotal struct {
	RoomID       string
	RatePerNight decimal.Decimal
	Total        decimal.Decimal
}

type Totals struct {
	Lines      []LineTotal
	Gross      decimal.Decimal
	Discount   decimal.Decimal
	Subtotal   decimal.Decimal
	TaxPercent decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
}

// ComputeTotals prices each line as pricePerHead x guests x nights, takes the flat discount off
// the combined gross once, then adds taxPercent of what remains. A discount larger than the gross
// gives a negative subtotal; deciding whether that is acceptable is left to the caller.
func ComputeTotals(lines []Line, nights int, discount, taxPercent decimal.Decimal) (Totals, error) {
	if len(lines) == 0 {
		return Totals{}, ErrNoLines
	}

	if nights < 1 {
		return Totals{}, ErrNoNights
	}

	if discount.IsNegative() || taxPercent.IsNegative() {
		return Totals{}, ErrNegativeIn
	}

	stay := decimal.NewFromInt(int64(nights))
	totals := Totals{
		Lines:      make([]LineTotal, len(lines)),
		Gross:      decimal.Zero,
		Discount:   discount,
		TaxPercent: taxPercent,
	}

	for i, line := range lines {
		if line.Guests < 1 {
			return Totals{}, ErrNoGuests
		}

		if line.PricePerHead.IsNegative() {
			return Totals{}, ErrNegativeIn
		}

		rate := line.PricePerHead.Mul(decimal.NewFromInt(int64(line.Guests)))
		total := rate.Mul(stay)

		totals.Lines[i] = LineTotal{RoomID: line.RoomID, RatePerNight: rate, Total: total}
		totals.Gross = totals.Gross.Add(total)
	}

	totals.Subtotal = totals.Gross.Sub(discount)
	totals.Tax = totals.Subtotal.Mul(taxPercent).Div(hundred)
	totals.GrandTotal = totals.Subtotal.Add(totals.Tax)

	return totals, nil
}

// Rounded returns a copy with every amount rounded half away from zero to two places. The grand
// total is the sum of the rounded subtotal and tax, so the stored amounts always add up.
func (t Totals) Rounded() Totals {
	rounded := Totals{
		Lines:      make([]LineTotal, len(t.Lines)),
		Gross:      t.Gross.Round(displayPlaces),
		Discount:   t.Discount.Round(displayPlaces),
		Subtotal:   t.Subtotal.Round(displayPlaces),
		TaxPercent: t.TaxPercent.Round(displayPlaces),
		Tax:        t.Tax.Round(displayPlaces),
	}
	rounded.GrandTotal = rounded.Subtotal.Add(rounded.Tax)

	for i, line := range t.Lines {
		rounded.Lines[i] = LineTotal{
			RoomID:       line.RoomID,
			RatePerNight: line.RatePerNight.Round(displayPlaces),
			Total:        line.Total.Round(displayPlaces),
		}
	}

	return rounded
}
