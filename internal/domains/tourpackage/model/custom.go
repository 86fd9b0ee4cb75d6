package model

import (
	"fmt"
	"time"

	"homestay/shared/model"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	CustomTableName  = "custom_packages"
	CustomEntityName = "custom_package"

	CustomItineraryTableName  = "custom_package_itineraries"
	CustomItineraryEntityName = "custom_package_itinerary"

	SequenceCustomReference = "custom_package_reference_seq"
	DefaultCustomReference  = "CPKG"

	FieldReference       = "reference"
	FieldLeadID          = "lead_id"
	FieldTitle           = "title"
	FieldCustomerName    = "customer_name"
	FieldCustomerEmail   = "customer_email"
	FieldAssignedTo      = "assigned_to"
	FieldQuotedPerHead   = "quoted_price_per_head"
	FieldTotalQuoted     = "total_quoted_price"
	FieldFinalPrice      = "final_price"
	FieldDiscountAmount  = "discount_amount"
	FieldQuoteValidUntil = "quote_valid_until"
	FieldCustomPackageID = "custom_package_id"
)

const (
	CustomDraft       = "draft"
	CustomQuoteSent   = "quote_sent"
	CustomNegotiating = "negotiating"
	CustomConfirmed   = "confirmed"
	CustomCancelled   = "cancelled"
	CustomCompleted   = "completed"
)

// CustomPackage is a tour put together and quoted for one customer.
type CustomPackage struct {
	ID                      string              `db:"id"`
	Reference               string              `db:"reference"`
	LeadID                  *string             `db:"lead_id"`
	CustomerName            string              `db:"customer_name"`
	CustomerEmail           string              `db:"customer_email"`
	CustomerPhone           string              `db:"customer_phone"`
	Title                   string              `db:"title"`
	Destinations            pq.StringArray      `db:"destinations"`
	Nights                  int                 `db:"nights"`
	Days                    int                 `db:"days"`
	Adults                  int                 `db:"adults"`
	Children                int                 `db:"children"`
	TravelStartDate         *time.Time          `db:"travel_start_date"`
	TravelEndDate           *time.Time          `db:"travel_end_date"`
	CustomerBudget          decimal.NullDecimal `db:"customer_budget"`
	QuotedPricePerHead      decimal.NullDecimal `db:"quoted_price_per_head"`
	TotalQuotedPrice        decimal.NullDecimal `db:"total_quoted_price"`
	FinalPrice              decimal.NullDecimal `db:"final_price"`
	CostPrice               decimal.NullDecimal `db:"cost_price"`
	DiscountAmount          decimal.Decimal     `db:"discount_amount"`
	Status                  string              `db:"status"`
	SpecialRequirements     string              `db:"special_requirements"`
	AccommodationPreference string              `db:"accommodation_preference"`
	TransportPreference     string              `db:"transport_preference"`
	MealPreference          string              `db:"meal_preference"`
	InternalNotes           string              `db:"internal_notes"`
	Inclusions              pq.StringArray      `db:"inclusions"`
	Exclusions              pq.StringArray      `db:"exclusions"`
	BookingID               *string             `db:"booking_id"`
	AssignedTo              string              `db:"assigned_to"`
	QuoteValidUntil         *time.Time          `db:"quote_valid_until"`
	model.Metadata
}

// Quoted reports whether a total price has been sent to the customer.
func (c CustomPackage) Quoted() bool {
	return c.TotalQuotedPrice.Valid
}

// CustomItinerary is one planned day of a custom package.
type CustomItinerary struct {
	ID                string              `db:"id"`
	CustomPackageID   string              `db:"custom_package_id"`
	DayNumber         int                 `db:"day_number"`
	Date              *time.Time          `db:"date"`
	Title             string              `db:"title"`
	Destination       string              `db:"destination"`
	Activities        string              `db:"activities"`
	PlacesToVisit     pq.StringArray      `db:"places_to_visit"`
	AccommodationName string              `db:"accommodation_name"`
	AccommodationCost decimal.NullDecimal `db:"accommodation_cost"`
	MealsIncluded     pq.StringArray      `db:"meals_included"`
	TransportDetails  string              `db:"transport_details"`
	TransportCost     decimal.NullDecimal `db:"transport_cost"`
	DrivingDistanceKm int                 `db:"driving_distance_km"`
	Notes             string              `db:"notes"`
	EstimatedDayCost  decimal.NullDecimal `db:"estimated_day_cost"`
	DisplayOrder      int                 `db:"display_order"`
	model.Metadata
}

// Reference formats CPKG-<year>-<seq> with the sequence padded to four digits.
func Reference(year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%04d", DefaultCustomReference, year, seq)
}

// Closed reports whether the package can no longer be quoted or confirmed.
func (c CustomPackage) Closed() bool {
	return c.Status == CustomCancelled || c.Status == CustomCompleted
}
