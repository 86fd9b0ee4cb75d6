package dto

import (
	"homestay/internal/domains/tourpackage/model"
	"homestay/shared"
	gModel "homestay/shared/model"
	"homestay/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type CreateItineraryRequest struct {
	DayNumber         int      `json:"day_number"          validate:"required,min=1"`
	Title             string   `json:"title"               validate:"required,max=255"`
	Description       string   `json:"description"         validate:"omitempty"`
	PlacesToVisit     []string `json:"places_to_visit"     validate:"omitempty"`
	Activities        []string `json:"activities"          validate:"omitempty"`
	MealsIncluded     []string `json:"meals_included"      validate:"omitempty,dive,oneof=breakfast lunch dinner snacks"`
	Accommodation     string   `json:"accommodation"       validate:"omitempty,max=255"`
	DrivingDistanceKm int      `json:"driving_distance_km" validate:"omitempty,min=0"`
	DrivingTime       string   `json:"driving_time"        validate:"omitempty,max=50"`
	Altitude          string   `json:"altitude"            validate:"omitempty,max=50"`
	HasOvernightStay  *bool    `json:"has_overnight_stay"`
}

// ToModel orders the day by its number.
func (c *CreateItineraryRequest) ToModel(packageID, user string) model.Itinerary {
	overnight := true
	if c.HasOvernightStay != nil {
		overnight = *c.HasOvernightStay
	}

	return model.Itinerary{
		ID:                uuid.NewString(),
		PackageID:         packageID,
		DayNumber:         c.DayNumber,
		Title:             c.Title,
		Description:       c.Description,
		PlacesToVisit:     pq.StringArray(orEmpty(c.PlacesToVisit)),
		Activities:        pq.StringArray(orEmpty(c.Activities)),
		MealsIncluded:     pq.StringArray(orEmpty(c.MealsIncluded)),
		Accommodation:     c.Accommodation,
		DrivingDistanceKm: c.DrivingDistanceKm,
		DrivingTime:       c.DrivingTime,
		Altitude:          c.Altitude,
		HasOvernightStay:  overnight,
		DisplayOrder:      c.DayNumber,
		Metadata:          gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateItineraryRequest struct {
	DayNumber         *int           `db:"day_number"          json:"day_number"          validate:"omitempty,min=1"`
	Title             string         `db:"title"               json:"title"               validate:"omitempty,max=255"`
	Description       string         `db:"description"         json:"description"         validate:"omitempty"`
	PlacesToVisit     pq.StringArray `db:"places_to_visit"     json:"places_to_visit"     validate:"omitempty"                                   swaggertype:"array,string"`
	Activities        pq.StringArray `db:"activities"          json:"activities"          validate:"omitempty"                                   swaggertype:"array,string"`
	MealsIncluded     pq.StringArray `db:"meals_included"      json:"meals_included"      validate:"omitempty,dive,oneof=breakfast lunch dinner snacks" swaggertype:"array,string"`
	Accommodation     string         `db:"accommodation"       json:"accommodation"       validate:"omitempty,max=255"`
	DrivingDistanceKm *int           `db:"driving_distance_km" json:"driving_distance_km" validate:"omitempty,min=0"`
	DrivingTime       string         `db:"driving_time"        json:"driving_time"        validate:"omitempty,max=50"`
	Altitude          string         `db:"altitude"            json:"altitude"            validate:"omitempty,max=50"`
	HasOvernightStay  *bool          `db:"has_overnight_stay"  json:"has_overnight_stay"`
}

func (u *UpdateItineraryRequest) IsEmpty() bool {
	return u.DayNumber == nil && u.Title == "" && u.Description == "" && u.PlacesToVisit == nil &&
		u.Activities == nil && u.MealsIncluded == nil && u.Accommodation == "" && u.DrivingDistanceKm == nil &&
		u.DrivingTime == "" && u.Altitude == "" && u.HasOvernightStay == nil
}

// ToFields keeps the display order on the day number when the day moves.
func (u *UpdateItineraryRequest) ToFields(user string) map[string]any {
	fields := shared.TransformFields(*u, user)

	if u.DayNumber != nil {
		fields[model.FieldDisplayOrder] = *u.DayNumber
	}

	return fields
}

type ItineraryResponse struct {
	ID                string   `json:"id"`
	DayNumber         int      `json:"day_number"`
	Title             string   `json:"title"`
	Description       string   `json:"description,omitempty"`
	PlacesToVisit     []string `json:"places_to_visit"`
	Activities        []string `json:"activities"`
	MealsIncluded     []string `json:"meals_included"`
	Accommodation     string   `json:"accommodation,omitempty"`
	DrivingDistanceKm int      `json:"driving_distance_km"`
	DrivingTime       string   `json:"driving_time,omitempty"`
	Altitude          string   `json:"altitude,omitempty"`
	HasOvernightStay  bool     `json:"has_overnight_stay"`
}

func (r *ItineraryResponse) FromModel(model model.Itinerary) {
	r.ID = model.ID
	r.DayNumber = model.DayNumber
	r.Title = model.Title
	r.Description = model.Description
	r.PlacesToVisit = orEmpty(model.PlacesToVisit)
	r.Activities = orEmpty(model.Activities)
	r.MealsIncluded = orEmpty(model.MealsIncluded)
	r.Accommodation = model.Accommodation
	r.DrivingDistanceKm = model.DrivingDistanceKm
	r.DrivingTime = model.DrivingTime
	r.Altitude = model.Altitude
	r.HasOvernightStay = model.HasOvernightStay
}

func ItinerariesFromModels(models []model.Itinerary) []ItineraryResponse {
	res := make([]ItineraryResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type CreatePricingRequest struct {
	NumberOfPersons  int                 `json:"number_of_persons"   validate:"required,min=1"`
	RoomType         string              `json:"room_type"           validate:"omitempty,oneof=standard deluxe premium luxury"`
	SeasonType       string              `json:"season_type"         validate:"omitempty,oneof=regular peak off_season festive"`
	PricePerHead     decimal.Decimal     `json:"price_per_head"      validate:"gt=0,decimalplaces=2"`
	CostPricePerHead decimal.NullDecimal `json:"cost_price_per_head" swaggertype:"string"`
	ValidFrom        string              `json:"valid_from"          validate:"omitempty,datetime=2006-01-02"`
	ValidUntil       string              `json:"valid_until"         validate:"omitempty,datetime=2006-01-02"`
	IsDefault        bool                `json:"is_default"`
	IsActive         *bool               `json:"is_active"`
	Notes            string              `json:"notes"               validate:"omitempty"`
}

// ToModel prices the whole party at the per-head rate. Tiers default to standard rooms in the
// regular season and start active.
func (c *CreatePricingRequest) ToModel(packageID, user string) (model.Pricing, error) {
	validFrom, validUntil, err := parseValidity(c.ValidFrom, c.ValidUntil)
	if err != nil {
		return model.Pricing{}, err
	}

	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	pricing := model.Pricing{
		ID:               uuid.NewString(),
		PackageID:        packageID,
		NumberOfPersons:  c.NumberOfPersons,
		RoomType:         valueOr(c.RoomType, model.RoomStandard),
		SeasonType:       valueOr(c.SeasonType, model.SeasonRegular),
		PricePerHead:     c.PricePerHead,
		CostPricePerHead: c.CostPricePerHead,
		ValidFrom:        validFrom,
		ValidUntil:       validUntil,
		IsDefault:        c.IsDefault,
		IsActive:         active,
		Notes:            c.Notes,
		Metadata:         gModel.NewMetadata(user, timezone.Now()),
	}
	pricing.TotalPrice = pricing.Total()

	return pricing, nil
}

type UpdatePricingRequest struct {
	NumberOfPersons  *int             `db:"number_of_persons"   json:"number_of_persons"   validate:"omitempty,min=1"`
	RoomType         string           `db:"room_type"           json:"room_type"           validate:"omitempty,oneof=standard deluxe premium luxury"`
	SeasonType       string           `db:"season_type"         json:"season_type"         validate:"omitempty,oneof=regular peak off_season festive"`
	PricePerHead     *decimal.Decimal `db:"price_per_head"      json:"price_per_head"      validate:"omitempty,gt=0,decimalplaces=2"`
	CostPricePerHead *decimal.Decimal `db:"cost_price_per_head" json:"cost_price_per_head" validate:"omitempty,gte=0,decimalplaces=2"`
	IsDefault        *bool            `db:"is_default"          json:"is_default"`
	IsActive         *bool            `db:"is_active"           json:"is_active"`
	Notes            string           `db:"notes"               json:"notes"               validate:"omitempty"`
}

func (u *UpdatePricingRequest) IsEmpty() bool {
	return u.NumberOfPersons == nil && u.RoomType == "" && u.SeasonType == "" && u.PricePerHead == nil &&
		u.CostPricePerHead == nil && u.IsDefault == nil && u.IsActive == nil && u.Notes == ""
}

// Apply returns the tier as it will be stored, with the total recalculated.
func (u *UpdatePricingRequest) Apply(pricing model.Pricing) model.Pricing {
	if u.NumberOfPersons != nil {
		pricing.NumberOfPersons = *u.NumberOfPersons
	}

	if u.RoomType != "" {
		pricing.RoomType = u.RoomType
	}

	if u.SeasonType != "" {
		pricing.SeasonType = u.SeasonType
	}

	if u.PricePerHead != nil {
		pricing.PricePerHead = *u.PricePerHead
	}

	pricing.TotalPrice = pricing.Total()

	return pricing
}

func (u *UpdatePricingRequest) ToFields(pricing model.Pricing, user string) map[string]any {
	fields := shared.TransformFields(*u, user)
	fields[model.FieldTotalPrice] = u.Apply(pricing).TotalPrice

	return fields
}

type BulkPricingRequest struct {
	Tiers []CreatePricingRequest `json:"tiers" validate:"required,min=1,dive"`
}

type PricingResponse struct {
	ID               string          `json:"id"`
	NumberOfPersons  int             `json:"number_of_persons"`
	RoomType         string          `json:"room_type"`
	SeasonType       string          `json:"season_type"`
	PricePerHead     decimal.Decimal `json:"price_per_head"                swaggertype:"string"`
	TotalPrice       decimal.Decimal `json:"total_price"                   swaggertype:"string"`
	CostPricePerHead *string         `json:"cost_price_per_head,omitempty"`
	ValidFrom        string          `json:"valid_from,omitempty"`
	ValidUntil       string          `json:"valid_until,omitempty"`
	IsDefault        bool            `json:"is_default"`
	IsActive         bool            `json:"is_active"`
	Notes            string          `json:"notes,omitempty"`
}

func (r *PricingResponse) FromModel(model model.Pricing) {
	r.ID = model.ID
	r.NumberOfPersons = model.NumberOfPersons
	r.RoomType = model.RoomType
	r.SeasonType = model.SeasonType
	r.PricePerHead = model.PricePerHead
	r.TotalPrice = model.TotalPrice
	r.CostPricePerHead = nullable(model.CostPricePerHead)
	r.ValidFrom = formatDate(model.ValidFrom)
	r.ValidUntil = formatDate(model.ValidUntil)
	r.IsDefault = model.IsDefault
	r.IsActive = model.IsActive
	r.Notes = model.Notes
}

func PricingFromModels(models []model.Pricing) []PricingResponse {
	res := make([]PricingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type CreateInclusionRequest struct {
	Type         string `json:"type"          validate:"omitempty,oneof=included excluded"`
	Category     string `json:"category"      validate:"omitempty,oneof=transport accommodation meals sightseeing permits guide activities taxes insurance other"`
	Description  string `json:"description"   validate:"required,max=500"`
	IconName     string `json:"icon_name"     validate:"omitempty,max=50"`
	DisplayOrder int    `json:"display_order" validate:"omitempty,min=0"`
	IsHighlight  bool   `json:"is_highlight"`
}

func (c *CreateInclusionRequest) ToModel(packageID, user string) model.Inclusion {
	return model.Inclusion{
		ID:           uuid.NewString(),
		PackageID:    packageID,
		Type:         valueOr(c.Type, model.InclusionIncluded),
		Category:     valueOr(c.Category, model.InclusionCategoryOther),
		Description:  c.Description,
		IconName:     c.IconName,
		DisplayOrder: c.DisplayOrder,
		IsHighlight:  c.IsHighlight,
		Metadata:     gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateInclusionRequest struct {
	Type         string `db:"type"          json:"type"          validate:"omitempty,oneof=included excluded"`
	Category     string `db:"category"      json:"category"      validate:"omitempty,oneof=transport accommodation meals sightseeing permits guide activities taxes insurance other"`
	Description  string `db:"description"   json:"description"   validate:"omitempty,max=500"`
	IconName     string `db:"icon_name"     json:"icon_name"     validate:"omitempty,max=50"`
	DisplayOrder *int   `db:"display_order" json:"display_order" validate:"omitempty,min=0"`
	IsHighlight  *bool  `db:"is_highlight"  json:"is_highlight"`
}

func (u *UpdateInclusionRequest) IsEmpty() bool {
	return u.Type == "" && u.Category == "" && u.Description == "" && u.IconName == "" &&
		u.DisplayOrder == nil && u.IsHighlight == nil
}

type InclusionResponse struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	IconName     string `json:"icon_name,omitempty"`
	DisplayOrder int    `json:"display_order"`
	IsHighlight  bool   `json:"is_highlight"`
}

func (r *InclusionResponse) FromModel(model model.Inclusion) {
	r.ID = model.ID
	r.Type = model.Type
	r.Category = model.Category
	r.Description = model.Description
	r.IconName = model.IconName
	r.DisplayOrder = model.DisplayOrder
	r.IsHighlight = model.IsHighlight
}

func InclusionsFromModels(models []model.Inclusion) []InclusionResponse {
	res := make([]InclusionResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

func nullable(value decimal.NullDecimal) *string {
	if !value.Valid {
		return nil
	}

	formatted := value.Decimal.StringFixed(2)

	return &formatted
}
