package dto

import (
	"errors"

	"homestay/internal/domains/tourpackage/model"
	"homestay/shared"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	gModel "homestay/shared/model"
	"homestay/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

var ErrTravelRange = errors.New("travel_end_date must not be before travel_start_date")

type CreateCustomPackageRequest struct {
	LeadID                  string              `json:"lead_id"                  validate:"omitempty,uuid"`
	CustomerName            string              `json:"customer_name"            validate:"required,max=255"`
	CustomerEmail           string              `json:"customer_email"           validate:"omitempty,email,max=255"`
	CustomerPhone           string              `json:"customer_phone"           validate:"omitempty,max=20"`
	Title                   string              `json:"title"                    validate:"required,max=255"`
	Destinations            []string            `json:"destinations"             validate:"omitempty"`
	Nights                  int                 `json:"nights"                   validate:"required,min=1"`
	Days                    int                 `json:"days"                     validate:"omitempty,min=1"`
	Adults                  int                 `json:"adults"                   validate:"required,min=1"`
	Children                int                 `json:"children"                 validate:"omitempty,min=0"`
	TravelStartDate         string              `json:"travel_start_date"        validate:"omitempty,datetime=2006-01-02"`
	TravelEndDate           string              `json:"travel_end_date"          validate:"omitempty,datetime=2006-01-02"`
	CustomerBudget          decimal.NullDecimal `json:"customer_budget"          swaggertype:"string"`
	SpecialRequirements     string              `json:"special_requirements"     validate:"omitempty"`
	AccommodationPreference string              `json:"accommodation_preference" validate:"omitempty,max=100"`
	TransportPreference     string              `json:"transport_preference"     validate:"omitempty,max=100"`
	MealPreference          string              `json:"meal_preference"          validate:"omitempty,max=100"`
	InternalNotes           string              `json:"internal_notes"           validate:"omitempty"`
	Inclusions              []string            `json:"inclusions"               validate:"omitempty"`
	Exclusions              []string            `json:"exclusions"               validate:"omitempty"`
	AssignedTo              string              `json:"assigned_to"              validate:"omitempty,max=100"`
}

// ToModel builds a draft custom package. The reference is assigned by the caller.
func (c *CreateCustomPackageRequest) ToModel(user string) (model.CustomPackage, error) {
	start, end, err := parseValidity(c.TravelStartDate, c.TravelEndDate)
	if errors.Is(err, ErrValidityRange) {
		return model.CustomPackage{}, ErrTravelRange
	}

	if err != nil {
		return model.CustomPackage{}, err
	}

	custom := model.CustomPackage{
		ID:                      uuid.NewString(),
		CustomerName:            c.CustomerName,
		CustomerEmail:           c.CustomerEmail,
		CustomerPhone:           c.CustomerPhone,
		Title:                   c.Title,
		Destinations:            pq.StringArray(orEmpty(c.Destinations)),
		Nights:                  c.Nights,
		Days:                    c.Days,
		Adults:                  c.Adults,
		Children:                c.Children,
		TravelStartDate:         start,
		TravelEndDate:           end,
		CustomerBudget:          c.CustomerBudget,
		DiscountAmount:          decimal.Zero,
		Status:                  model.CustomDraft,
		SpecialRequirements:     c.SpecialRequirements,
		AccommodationPreference: c.AccommodationPreference,
		TransportPreference:     c.TransportPreference,
		MealPreference:          c.MealPreference,
		InternalNotes:           c.InternalNotes,
		Inclusions:              pq.StringArray(orEmpty(c.Inclusions)),
		Exclusions:              pq.StringArray(orEmpty(c.Exclusions)),
		AssignedTo:              c.AssignedTo,
		Metadata:                gModel.NewMetadata(user, timezone.Now()),
	}

	if c.LeadID != "" {
		custom.LeadID = &c.LeadID
	}

	if custom.Days == 0 {
		custom.Days = custom.Nights + 1
	}

	return custom, nil
}

type UpdateCustomPackageRequest struct {
	CustomerName            string           `db:"customer_name"            json:"customer_name"            validate:"omitempty,max=255"`
	CustomerEmail           string           `db:"customer_email"           json:"customer_email"           validate:"omitempty,email,max=255"`
	CustomerPhone           string           `db:"customer_phone"           json:"customer_phone"           validate:"omitempty,max=20"`
	Title                   string           `db:"title"                    json:"title"                    validate:"omitempty,max=255"`
	Destinations            pq.StringArray   `db:"destinations"             json:"destinations"             validate:"omitempty"         swaggertype:"array,string"`
	Nights                  *int             `db:"nights"                   json:"nights"                   validate:"omitempty,min=1"`
	Days                    *int             `db:"days"                     json:"days"                     validate:"omitempty,min=1"`
	Adults                  *int             `db:"adults"                   json:"adults"                   validate:"omitempty,min=1"`
	Children                *int             `db:"children"                 json:"children"                 validate:"omitempty,min=0"`
	CustomerBudget          *decimal.Decimal `db:"customer_budget"          json:"customer_budget"          validate:"omitempty,gte=0"   swaggertype:"string"`
	CostPrice               *decimal.Decimal `db:"cost_price"               json:"cost_price"               validate:"omitempty,gte=0,decimalplaces=2" swaggertype:"string"`
	SpecialRequirements     string           `db:"special_requirements"     json:"special_requirements"     validate:"omitempty"`
	AccommodationPreference string           `db:"accommodation_preference" json:"accommodation_preference" validate:"omitempty,max=100"`
	TransportPreference     string           `db:"transport_preference"     json:"transport_preference"     validate:"omitempty,max=100"`
	MealPreference          string           `db:"meal_preference"          json:"meal_preference"          validate:"omitempty,max=100"`
	InternalNotes           string           `db:"internal_notes"           json:"internal_notes"           validate:"omitempty"`
	Inclusions              pq.StringArray   `db:"inclusions"               json:"inclusions"               validate:"omitempty"         swaggertype:"array,string"`
	Exclusions              pq.StringArray   `db:"exclusions"               json:"exclusions"               validate:"omitempty"         swaggertype:"array,string"`
	AssignedTo              string           `db:"assigned_to"              json:"assigned_to"              validate:"omitempty,max=100"`
	TravelStartDate         string           `json:"travel_start_date"        validate:"omitempty,datetime=2006-01-02"`
	TravelEndDate           string           `json:"travel_end_date"          validate:"omitempty,datetime=2006-01-02"`
}

func (u *UpdateCustomPackageRequest) IsEmpty() bool {
	return u.CustomerName == "" && u.CustomerEmail == "" && u.CustomerPhone == "" && u.Title == "" &&
		u.Destinations == nil && u.Nights == nil && u.Days == nil && u.Adults == nil && u.Children == nil &&
		u.CustomerBudget == nil && u.CostPrice == nil && u.SpecialRequirements == "" &&
		u.AccommodationPreference == "" && u.TransportPreference == "" && u.MealPreference == "" &&
		u.InternalNotes == "" && u.Inclusions == nil && u.Exclusions == nil && u.AssignedTo == "" &&
		u.TravelStartDate == "" && u.TravelEndDate == ""
}

func (u *UpdateCustomPackageRequest) ToFields(user string) (map[string]any, error) {
	fields := shared.TransformFields(*u, user)

	start, end, err := parseValidity(u.TravelStartDate, u.TravelEndDate)
	if errors.Is(err, ErrValidityRange) {
		return nil, ErrTravelRange
	}

	if err != nil {
		return nil, err
	}

	if start != nil {
		fields["travel_start_date"] = *start
	}

	if end != nil {
		fields["travel_end_date"] = *end
	}

	return fields, nil
}

type UpdateCustomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft quote_sent negotiating confirmed cancelled completed"`
}

type SendQuoteRequest struct {
	QuotedPricePerHead decimal.Decimal `json:"quoted_price_per_head" validate:"gt=0,decimalplaces=2"         swaggertype:"string"`
	TotalQuotedPrice   decimal.Decimal `json:"total_quoted_price"    validate:"gt=0,decimalplaces=2"         swaggertype:"string"`
	QuoteValidUntil    string          `json:"quote_valid_until"     validate:"omitempty,datetime=2006-01-02"`
}

// ToFields records the quote and moves the package to quote_sent.
func (s *SendQuoteRequest) ToFields(user string) (map[string]any, error) {
	validUntil, err := parseDate(s.QuoteValidUntil)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{
		model.FieldQuotedPerHead: s.QuotedPricePerHead,
		model.FieldTotalQuoted:   s.TotalQuotedPrice,
		model.FieldStatus:        model.CustomQuoteSent,
	}

	if validUntil != nil {
		fields[model.FieldQuoteValidUntil] = *validUntil
	}

	return withModified(fields, user), nil
}

type ConfirmCustomPackageRequest struct {
	FinalPrice decimal.Decimal `json:"final_price" validate:"gt=0,decimalplaces=2" swaggertype:"string"`
}

type CreateCustomItineraryRequest struct {
	DayNumber         int                 `json:"day_number"          validate:"required,min=1"`
	Date              string              `json:"date"                validate:"omitempty,datetime=2006-01-02"`
	Title             string              `json:"title"               validate:"required,max=255"`
	Destination       string              `json:"destination"         validate:"omitempty,max=100"`
	Activities        string              `json:"activities"          validate:"omitempty"`
	PlacesToVisit     []string            `json:"places_to_visit"     validate:"omitempty"`
	AccommodationName string              `json:"accommodation_name"  validate:"omitempty,max=255"`
	AccommodationCost decimal.NullDecimal `json:"accommodation_cost"  swaggertype:"string"`
	MealsIncluded     []string            `json:"meals_included"      validate:"omitempty,dive,oneof=breakfast lunch dinner snacks"`
	TransportDetails  string              `json:"transport_details"   validate:"omitempty"`
	TransportCost     decimal.NullDecimal `json:"transport_cost"      swaggertype:"string"`
	DrivingDistanceKm int                 `json:"driving_distance_km" validate:"omitempty,min=0"`
	Notes             string              `json:"notes"               validate:"omitempty"`
	EstimatedDayCost  decimal.NullDecimal `json:"estimated_day_cost"  swaggertype:"string"`
}

func (c *CreateCustomItineraryRequest) ToModel(customID, user string) (model.CustomItinerary, error) {
	date, err := parseDate(c.Date)
	if err != nil {
		return model.CustomItinerary{}, err
	}

	return model.CustomItinerary{
		ID:                uuid.NewString(),
		CustomPackageID:   customID,
		DayNumber:         c.DayNumber,
		Date:              date,
		Title:             c.Title,
		Destination:       c.Destination,
		Activities:        c.Activities,
		PlacesToVisit:     pq.StringArray(orEmpty(c.PlacesToVisit)),
		AccommodationName: c.AccommodationName,
		AccommodationCost: c.AccommodationCost,
		MealsIncluded:     pq.StringArray(orEmpty(c.MealsIncluded)),
		TransportDetails:  c.TransportDetails,
		TransportCost:     c.TransportCost,
		DrivingDistanceKm: c.DrivingDistanceKm,
		Notes:             c.Notes,
		EstimatedDayCost:  c.EstimatedDayCost,
		DisplayOrder:      c.DayNumber,
		Metadata:          gModel.NewMetadata(user, timezone.Now()),
	}, nil
}

type UpdateCustomItineraryRequest struct {
	DayNumber         *int             `db:"day_number"          json:"day_number"          validate:"omitempty,min=1"`
	Title             string           `db:"title"               json:"title"               validate:"omitempty,max=255"`
	Destination       string           `db:"destination"         json:"destination"         validate:"omitempty,max=100"`
	Activities        string           `db:"activities"          json:"activities"          validate:"omitempty"`
	PlacesToVisit     pq.StringArray   `db:"places_to_visit"     json:"places_to_visit"     validate:"omitempty"                                       swaggertype:"array,string"`
	AccommodationName string           `db:"accommodation_name"  json:"accommodation_name"  validate:"omitempty,max=255"`
	AccommodationCost *decimal.Decimal `db:"accommodation_cost"  json:"accommodation_cost"  validate:"omitempty,gte=0"                                 swaggertype:"string"`
	MealsIncluded     pq.StringArray   `db:"meals_included"      json:"meals_included"      validate:"omitempty,dive,oneof=breakfast lunch dinner snacks" swaggertype:"array,string"`
	TransportDetails  string           `db:"transport_details"   json:"transport_details"   validate:"omitempty"`
	TransportCost     *decimal.Decimal `db:"transport_cost"      json:"transport_cost"      validate:"omitempty,gte=0"                                 swaggertype:"string"`
	DrivingDistanceKm *int             `db:"driving_distance_km" json:"driving_distance_km" validate:"omitempty,min=0"`
	Notes             string           `db:"notes"               json:"notes"               validate:"omitempty"`
	EstimatedDayCost  *decimal.Decimal `db:"estimated_day_cost"  json:"estimated_day_cost"  validate:"omitempty,gte=0"                                 swaggertype:"string"`
}

func (u *UpdateCustomItineraryRequest) IsEmpty() bool {
	return u.DayNumber == nil && u.Title == "" && u.Destination == "" && u.Activities == "" &&
		u.PlacesToVisit == nil && u.AccommodationName == "" && u.AccommodationCost == nil &&
		u.MealsIncluded == nil && u.TransportDetails == "" && u.TransportCost == nil &&
		u.DrivingDistanceKm == nil && u.Notes == "" && u.EstimatedDayCost == nil
}

func (u *UpdateCustomItineraryRequest) ToFields(user string) map[string]any {
	fields := shared.TransformFields(*u, user)

	if u.DayNumber != nil {
		fields[model.FieldDisplayOrder] = *u.DayNumber
	}

	return fields
}

type CustomItineraryResponse struct {
	ID                string   `json:"id"`
	DayNumber         int      `json:"day_number"`
	Date              string   `json:"date,omitempty"`
	Title             string   `json:"title"`
	Destination       string   `json:"destination,omitempty"`
	Activities        string   `json:"activities,omitempty"`
	PlacesToVisit     []string `json:"places_to_visit"`
	AccommodationName string   `json:"accommodation_name,omitempty"`
	AccommodationCost *string  `json:"accommodation_cost,omitempty"`
	MealsIncluded     []string `json:"meals_included"`
	TransportDetails  string   `json:"transport_details,omitempty"`
	TransportCost     *string  `json:"transport_cost,omitempty"`
	DrivingDistanceKm int      `json:"driving_distance_km"`
	Notes             string   `json:"notes,omitempty"`
	EstimatedDayCost  *string  `json:"estimated_day_cost,omitempty"`
}

func (r *CustomItineraryResponse) FromModel(model model.CustomItinerary) {
	r.ID = model.ID
	r.DayNumber = model.DayNumber
	r.Date = formatDate(model.Date)
	r.Title = model.Title
	r.Destination = model.Destination
	r.Activities = model.Activities
	r.PlacesToVisit = orEmpty(model.PlacesToVisit)
	r.AccommodationName = model.AccommodationName
	r.AccommodationCost = nullable(model.AccommodationCost)
	r.MealsIncluded = orEmpty(model.MealsIncluded)
	r.TransportDetails = model.TransportDetails
	r.TransportCost = nullable(model.TransportCost)
	r.DrivingDistanceKm = model.DrivingDistanceKm
	r.Notes = model.Notes
	r.EstimatedDayCost = nullable(model.EstimatedDayCost)
}

func CustomItinerariesFromModels(models []model.CustomItinerary) []CustomItineraryResponse {
	res := make([]CustomItineraryResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type CustomPackageResponse struct {
	ID                      string                    `json:"id"`
	Reference               string                    `json:"reference"`
	LeadID                  *string                   `json:"lead_id,omitempty"`
	CustomerName            string                    `json:"customer_name"`
	CustomerEmail           string                    `json:"customer_email,omitempty"`
	CustomerPhone           string                    `json:"customer_phone,omitempty"`
	Title                   string                    `json:"title"`
	Destinations            []string                  `json:"destinations"`
	Nights                  int                       `json:"nights"`
	Days                    int                       `json:"days"`
	Adults                  int                       `json:"adults"`
	Children                int                       `json:"children"`
	TravelStartDate         string                    `json:"travel_start_date,omitempty"`
	TravelEndDate           string                    `json:"travel_end_date,omitempty"`
	CustomerBudget          *string                   `json:"customer_budget,omitempty"`
	QuotedPricePerHead      *string                   `json:"quoted_price_per_head,omitempty"`
	TotalQuotedPrice        *string                   `json:"total_quoted_price,omitempty"`
	FinalPrice              *string                   `json:"final_price,omitempty"`
	CostPrice               *string                   `json:"cost_price,omitempty"`
	DiscountAmount          decimal.Decimal           `json:"discount_amount"                    swaggertype:"string"`
	Status                  string                    `json:"status"`
	SpecialRequirements     string                    `json:"special_requirements,omitempty"`
	AccommodationPreference string                    `json:"accommodation_preference,omitempty"`
	TransportPreference     string                    `json:"transport_preference,omitempty"`
	MealPreference          string                    `json:"meal_preference,omitempty"`
	InternalNotes           string                    `json:"internal_notes,omitempty"`
	Inclusions              []string                  `json:"inclusions"`
	Exclusions              []string                  `json:"exclusions"`
	BookingID               *string                   `json:"booking_id,omitempty"`
	AssignedTo              string                    `json:"assigned_to,omitempty"`
	QuoteValidUntil         string                    `json:"quote_valid_until,omitempty"`
	Itinerary               []CustomItineraryResponse `json:"itinerary,omitempty"`
	gDto.Metadata
}

func (r *CustomPackageResponse) FromModel(model model.CustomPackage) {
	r.ID = model.ID
	r.Reference = model.Reference
	r.LeadID = model.LeadID
	r.CustomerName = model.CustomerName
	r.CustomerEmail = model.CustomerEmail
	r.CustomerPhone = model.CustomerPhone
	r.Title = model.Title
	r.Destinations = orEmpty(model.Destinations)
	r.Nights = model.Nights
	r.Days = model.Days
	r.Adults = model.Adults
	r.Children = model.Children
	r.TravelStartDate = formatDate(model.TravelStartDate)
	r.TravelEndDate = formatDate(model.TravelEndDate)
	r.CustomerBudget = nullable(model.CustomerBudget)
	r.QuotedPricePerHead = nullable(model.QuotedPricePerHead)
	r.TotalQuotedPrice = nullable(model.TotalQuotedPrice)
	r.FinalPrice = nullable(model.FinalPrice)
	r.CostPrice = nullable(model.CostPrice)
	r.DiscountAmount = model.DiscountAmount
	r.Status = model.Status
	r.SpecialRequirements = model.SpecialRequirements
	r.AccommodationPreference = model.AccommodationPreference
	r.TransportPreference = model.TransportPreference
	r.MealPreference = model.MealPreference
	r.InternalNotes = model.InternalNotes
	r.Inclusions = orEmpty(model.Inclusions)
	r.Exclusions = orEmpty(model.Exclusions)
	r.BookingID = model.BookingID
	r.AssignedTo = model.AssignedTo
	r.QuoteValidUntil = formatDate(model.QuoteValidUntil)

	r.Metadata.FromModel(model.Metadata)
}

type GetCustomPackagesResponse struct {
	CustomPackages []CustomPackageResponse `json:"custom_packages"`
	TotalPage      int                     `json:"total_page"`
	TotalData      int                     `json:"total_data"`
}

func (r *GetCustomPackagesResponse) FromModels(models []model.CustomPackage, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.CustomPackages = make([]CustomPackageResponse, len(models))

	for i, mod := range models {
		r.CustomPackages[i].FromModel(mod)
	}
}

// ConfirmFields records the agreed price. The discount is what was given off the quoted total.
func ConfirmFields(custom model.CustomPackage, finalPrice decimal.Decimal, user string) map[string]any {
	return withModified(map[string]any{
		model.FieldFinalPrice:     finalPrice,
		model.FieldDiscountAmount: custom.TotalQuotedPrice.Decimal.Sub(finalPrice).Round(2),
		model.FieldStatus:         model.CustomConfirmed,
	}, user)
}

func withModified(fields map[string]any, user string) map[string]any {
	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = user

	return fields
}
