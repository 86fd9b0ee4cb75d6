package model

import (
	"time"

	"homestay/shared/model"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	ItineraryTableName  = "package_itineraries"
	ItineraryEntityName = "package_itinerary"

	PricingTableName  = "package_pricing"
	PricingEntityName = "package_pricing"

	InclusionTableName  = "package_inclusions"
	InclusionEntityName = "package_inclusion"
)

const (
	RoomStandard = "standard"
	RoomDeluxe   = "deluxe"
	RoomPremium  = "premium"
	RoomLuxury   = "luxury"
)

const (
	SeasonRegular   = "regular"
	SeasonPeak      = "peak"
	SeasonOffSeason = "off_season"
	SeasonFestive   = "festive"
)

const (
	InclusionIncluded = "included"
	InclusionExcluded = "excluded"

	InclusionCategoryOther = "other"
)

// Itinerary is one day of a predefined package.
type Itinerary struct {
	ID                string         `db:"id"`
	PackageID         string         `db:"package_id"`
	DayNumber         int            `db:"day_number"`
	Title             string         `db:"title"`
	Description       string         `db:"description"`
	PlacesToVisit     pq.StringArray `db:"places_to_visit"`
	Activities        pq.StringArray `db:"activities"`
	MealsIncluded     pq.StringArray `db:"meals_included"`
	Accommodation     string         `db:"accommodation"`
	DrivingDistanceKm int            `db:"driving_distance_km"`
	DrivingTime       string         `db:"driving_time"`
	Altitude          string         `db:"altitude"`
	HasOvernightStay  bool           `db:"has_overnight_stay"`
	DisplayOrder      int            `db:"display_order"`
	model.Metadata
}

// Pricing is the per-head price of a package for one head count, room type and season.
type Pricing struct {
	ID               string              `db:"id"`
	PackageID        string              `db:"package_id"`
	NumberOfPersons  int                 `db:"number_of_persons"`
	RoomType         string              `db:"room_type"`
	SeasonType       string              `db:"season_type"`
	PricePerHead     decimal.Decimal     `db:"price_per_head"`
	TotalPrice       decimal.Decimal     `db:"total_price"`
	CostPricePerHead decimal.NullDecimal `db:"cost_price_per_head"`
	ValidFrom        *time.Time          `db:"valid_from"`
	ValidUntil       *time.Time          `db:"valid_until"`
	IsDefault        bool                `db:"is_default"`
	IsActive         bool                `db:"is_active"`
	Notes            string              `db:"notes"`
	model.Metadata
}

// Total is the price of the tier for its whole party.
func (p Pricing) Total() decimal.Decimal {
	return p.PricePerHead.Mul(decimal.NewFromInt(int64(p.NumberOfPersons))).Round(2)
}

type Inclusion struct {
	ID           string `db:"id"`
	PackageID    string `db:"package_id"`
	Type         string `db:"type"`
	Category     string `db:"category"`
	Description  string `db:"description"`
	IconName     string `db:"icon_name"`
	DisplayOrder int    `db:"display_order"`
	IsHighlight  bool   `db:"is_highlight"`
	model.Metadata
}
