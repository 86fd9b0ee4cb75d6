package model_test

import (
	"testing"

	"homestay/internal/domains/tourpackage/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	tests := []struct {
		destination string
		nights      int
		seq         int64
		want        string
	}{
		{"Darjeeling", 3, 1, "PKG-DAR-3N4D-001"},
		{"gangtok", 2, 42, "PKG-GAN-2N3D-042"},
		{"Ooty", 4, 1250, "PKG-OOT-4N5D-1250"},
		{"St. Mary's", 1, 9, "PKG-STM-1N2D-009"},
		{"Io", 5, 3, "PKG-IO-5N6D-003"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Code(tt.destination, tt.nights, tt.seq))
		})
	}
}

func TestReference(t *testing.T) {
	assert.Equal(t, "CPKG-2025-0007", model.Reference(2025, 7))
	assert.Equal(t, "CPKG-2026-12345", model.Reference(2026, 12345))
}

func TestPricing_Total(t *testing.T) {
	tier := model.Pricing{NumberOfPersons: 3, PricePerHead: decimal.RequireFromString("3333.335")}

	assert.Equal(t, "10000.01", tier.Total().String())
}

func TestCustomPackage_QuotedAndClosed(t *testing.T) {
	custom := model.CustomPackage{Status: model.CustomDraft}
	assert.False(t, custom.Quoted())
	assert.False(t, custom.Closed())

	custom.TotalQuotedPrice = decimal.NewNullDecimal(decimal.NewFromInt(40000))
	custom.Status = model.CustomCancelled
	assert.True(t, custom.Quoted())
	assert.True(t, custom.Closed())
}
