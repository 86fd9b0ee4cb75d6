package dto

import (
	"errors"
	"strings"
	"time"

	"homestay/internal/domains/tourpackage/model"
	"homestay/shared"
	gDto "homestay/shared/dto"
	gModel "homestay/shared/model"
	"homestay/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

var (
	ErrValidityRange = errors.New("valid_until must not be before valid_from")
	ErrPersonsRange  = errors.New("max_persons must not be below min_persons")
)

type CreatePackageRequest struct {
	Name                string                   `json:"name"                 validate:"required,max=255"`
	ShortTitle          string                   `json:"short_title"          validate:"omitempty,max=100"`
	Description         string                   `json:"description"          validate:"required"`
	Type                string                   `json:"type"                 validate:"omitempty,oneof=predefined custom"`
	Category            string                   `json:"category"             validate:"omitempty,oneof=adventure honeymoon family budget luxury weekend_getaway pilgrimage wildlife cultural"`
	Nights              int                      `json:"nights"               validate:"required,min=1"`
	Days                int                      `json:"days"                 validate:"omitempty,min=1"`
	Destination         string                   `json:"destination"          validate:"required,max=100"`
	StartingPoint       string                   `json:"starting_point"       validate:"omitempty,max=100"`
	EndingPoint         string                   `json:"ending_point"         validate:"omitempty,max=100"`
	DestinationsCovered []string                 `json:"destinations_covered" validate:"omitempty"`
	MinPersons          int                      `json:"min_persons"          validate:"omitempty,min=1"`
	MaxPersons          int                      `json:"max_persons"          validate:"omitempty,min=1"`
	MinPricePerHead     decimal.Decimal          `json:"min_price_per_head"   validate:"gte=0,decimalplaces=2"`
	BasePricePerHead    decimal.Decimal          `json:"base_price_per_head"  validate:"gte=0,decimalplaces=2"`
	BestTimeToVisit     string                   `json:"best_time_to_visit"   validate:"omitempty,max=255"`
	DifficultyLevel     string                   `json:"difficulty_level"     validate:"omitempty,max=50"`
	Highlights          []string                 `json:"highlights"           validate:"omitempty"`
	Tags                []string                 `json:"tags"                 validate:"omitempty"`
	ThumbnailImage      string                   `json:"thumbnail_image"      validate:"omitempty,url,max=500"`
	Status              string                   `json:"status"               validate:"omitempty,oneof=active inactive draft"`
	IsFeatured          bool                     `json:"is_featured"`
	DisplayOrder        int                      `json:"display_order"        validate:"omitempty,min=0"`
	ValidFrom           string                   `json:"valid_from"           validate:"omitempty,datetime=2006-01-02"`
	ValidUntil          string                   `json:"valid_until"          validate:"omitempty,datetime=2006-01-02"`
	TermsAndConditions  string                   `json:"terms_and_conditions" validate:"omitempty"`
	CancellationPolicy  string                   `json:"cancellation_policy"  validate:"omitempty"`
	ImportantNotes      string                   `json:"important_notes"      validate:"omitempty"`
	Itineraries         []CreateItineraryRequest `json:"itineraries"          validate:"omitempty,dive"`
	Pricing             []CreatePricingRequest   `json:"pricing"              validate:"omitempty,dive"`
	Inclusions          []CreateInclusionRequest `json:"inclusions"           validate:"omitempty,dive"`
}

// ToModel fills the defaults of a new package: days follow the nights, two to eight persons, family
// category and draft status. The code is assigned by the caller.
func (c *CreatePackageRequest) ToModel(user string) (model.Package, error) {
	validFrom, validUntil, err := parseValidity(c.ValidFrom, c.ValidUntil)
	if err != nil {
		return model.Package{}, err
	}

	pkg := model.Package{
		ID:                  uuid.NewString(),
		Name:                c.Name,
		ShortTitle:          c.ShortTitle,
		Description:         c.Description,
		Type:                valueOr(c.Type, model.TypePredefined),
		Category:            valueOr(c.Category, model.CategoryFamily),
		Nights:              c.Nights,
		Days:                c.Days,
		Destination:         strings.TrimSpace(c.Destination),
		StartingPoint:       c.StartingPoint,
		EndingPoint:         c.EndingPoint,
		DestinationsCovered: pq.StringArray(orEmpty(c.DestinationsCovered)),
		MinPersons:          c.MinPersons,
		MaxPersons:          c.MaxPersons,
		MinPricePerHead:     c.MinPricePerHead,
		BasePricePerHead:    c.BasePricePerHead,
		BestTimeToVisit:     c.BestTimeToVisit,
		DifficultyLevel:     c.DifficultyLevel,
		Highlights:          pq.StringArray(orEmpty(c.Highlights)),
		Tags:                pq.StringArray(orEmpty(c.Tags)),
		ThumbnailImage:      c.ThumbnailImage,
		Status:              valueOr(c.Status, model.StatusDraft),
		IsFeatured:          c.IsFeatured,
		DisplayOrder:        c.DisplayOrder,
		ValidFrom:           validFrom,
		ValidUntil:          validUntil,
		TermsAndConditions:  c.TermsAndConditions,
		CancellationPolicy:  c.CancellationPolicy,
		ImportantNotes:      c.ImportantNotes,
		Metadata:            gModel.NewMetadata(user, timezone.Now()),
	}

	if pkg.Days == 0 {
		pkg.Days = pkg.Nights + 1
	}

	if pkg.MinPersons == 0 {
		pkg.MinPersons = 2
	}

	if pkg.MaxPersons == 0 {
		pkg.MaxPersons = max(8, pkg.MinPersons)
	}

	if pkg.MaxPersons < pkg.MinPersons {
		return model.Package{}, ErrPersonsRange
	}

	return pkg, nil
}

type UpdatePackageRequest struct {
	Name                string           `db:"name"                 json:"name"                 validate:"omitempty,max=255"`
	ShortTitle          string           `db:"short_title"          json:"short_title"          validate:"omitempty,max=100"`
	Description         string           `db:"description"          json:"description"          validate:"omitempty"`
	Category            string           `db:"category"             json:"category"             validate:"omitempty,oneof=adventure honeymoon family budget luxury weekend_getaway pilgrimage wildlife cultural"`
	Nights              *int             `db:"nights"               json:"nights"               validate:"omitempty,min=1"`
	Days                *int             `db:"days"                 json:"days"                 validate:"omitempty,min=1"`
	Destination         string           `db:"destination"          json:"destination"          validate:"omitempty,max=100"`
	StartingPoint       string           `db:"starting_point"       json:"starting_point"       validate:"omitempty,max=100"`
	EndingPoint         string           `db:"ending_point"         json:"ending_point"         validate:"omitempty,max=100"`
	DestinationsCovered pq.StringArray   `db:"destinations_covered" json:"destinations_covered" validate:"omitempty"                   swaggertype:"array,string"`
	MinPersons          *int             `db:"min_persons"          json:"min_persons"          validate:"omitempty,min=1"`
	MaxPersons          *int             `db:"max_persons"          json:"max_persons"          validate:"omitempty,min=1"`
	MinPricePerHead     *decimal.Decimal `db:"min_price_per_head"   json:"min_price_per_head"   validate:"omitempty,gte=0,decimalplaces=2"`
	BasePricePerHead    *decimal.Decimal `db:"base_price_per_head"  json:"base_price_per_head"  validate:"omitempty,gte=0,decimalplaces=2"`
	BestTimeToVisit     string           `db:"best_time_to_visit"   json:"best_time_to_visit"   validate:"omitempty,max=255"`
	DifficultyLevel     string           `db:"difficulty_level"     json:"difficulty_level"     validate:"omitempty,max=50"`
	Highlights          pq.StringArray   `db:"highlights"           json:"highlights"           validate:"omitempty"                   swaggertype:"array,string"`
	Tags                pq.StringArray   `db:"tags"                 json:"tags"                 validate:"omitempty"                   swaggertype:"array,string"`
	ThumbnailImage      string           `db:"thumbnail_image"      json:"thumbnail_image"      validate:"omitempty,url,max=500"`
	IsFeatured          *bool            `db:"is_featured"          json:"is_featured"`
	DisplayOrder        *int             `db:"display_order"        json:"display_order"        validate:"omitempty,min=0"`
	ValidFrom           string           `json:"valid_from"           validate:"omitempty,datetime=2006-01-02"`
	ValidUntil          string           `json:"valid_until"          validate:"omitempty,datetime=2006-01-02"`
	TermsAndConditions  string           `db:"terms_and_conditions" json:"terms_and_conditions" validate:"omitempty"`
	CancellationPolicy  string           `db:"cancellation_policy"  json:"cancellation_policy"  validate:"omitempty"`
	ImportantNotes      string           `db:"important_notes"      json:"important_notes"      validate:"omitempty"`
}

func (u *UpdatePackageRequest) IsEmpty() bool {
	return u.Name == "" && u.ShortTitle == "" && u.Description == "" && u.Category == "" && u.Nights == nil &&
		u.Days == nil && u.Destination == "" && u.StartingPoint == "" && u.EndingPoint == "" &&
		u.DestinationsCovered == nil && u.MinPersons == nil && u.MaxPersons == nil && u.MinPricePerHead == nil &&
		u.BasePricePerHead == nil && u.BestTimeToVisit == "" && u.DifficultyLevel == "" && u.Highlights == nil &&
		u.Tags == nil && u.ThumbnailImage == "" && u.IsFeatured == nil && u.DisplayOrder == nil &&
		u.ValidFrom == "" && u.ValidUntil == "" && u.TermsAndConditions == "" && u.CancellationPolicy == "" &&
		u.ImportantNotes == ""
}

// Apply returns pkg with the requested changes, so the price floor and the head count range can be
// checked against the values the row will hold.
func (u *UpdatePackageRequest) Apply(pkg model.Package) model.Package {
	if u.MinPricePerHead != nil {
		pkg.MinPricePerHead = *u.MinPricePerHead
	}

	if u.BasePricePerHead != nil {
		pkg.BasePricePerHead = *u.BasePricePerHead
	}

	if u.MinPersons != nil {
		pkg.MinPersons = *u.MinPersons
	}

	if u.MaxPersons != nil {
		pkg.MaxPersons = *u.MaxPersons
	}

	return pkg
}

func (u *UpdatePackageRequest) ToFields(user string) (map[string]any, error) {
	fields := shared.TransformFields(*u, user)

	validFrom, validUntil, err := parseValidity(u.ValidFrom, u.ValidUntil)
	if err != nil {
		return nil, err
	}

	if validFrom != nil {
		fields["valid_from"] = *validFrom
	}

	if validUntil != nil {
		fields["valid_until"] = *validUntil
	}

	return fields, nil
}

type UpdatePackageStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive draft"`
}

type PackageResponse struct {
	ID                  string              `json:"id"`
	Code                string              `json:"code"`
	Name                string              `json:"name"`
	ShortTitle          string              `json:"short_title,omitempty"`
	Description         string              `json:"description"`
	Type                string              `json:"type"`
	Category            string              `json:"category"`
	Nights              int                 `json:"nights"`
	Days                int                 `json:"days"`
	Destination         string              `json:"destination"`
	StartingPoint       string              `json:"starting_point,omitempty"`
	EndingPoint         string              `json:"ending_point,omitempty"`
	DestinationsCovered []string            `json:"destinations_covered"`
	MinPersons          int                 `json:"min_persons"`
	MaxPersons          int                 `json:"max_persons"`
	MinPricePerHead     decimal.Decimal     `json:"min_price_per_head"  swaggertype:"string"`
	BasePricePerHead    decimal.Decimal     `json:"base_price_per_head" swaggertype:"string"`
	BestTimeToVisit     string              `json:"best_time_to_visit,omitempty"`
	DifficultyLevel     string              `json:"difficulty_level,omitempty"`
	Highlights          []string            `json:"highlights"`
	Tags                []string            `json:"tags"`
	ThumbnailImage      string              `json:"thumbnail_image,omitempty"`
	Status              string              `json:"status"`
	IsFeatured          bool                `json:"is_featured"`
	DisplayOrder        int                 `json:"display_order"`
	ValidFrom           string              `json:"valid_from,omitempty"`
	ValidUntil          string              `json:"valid_until,omitempty"`
	TermsAndConditions  string              `json:"terms_and_conditions,omitempty"`
	CancellationPolicy  string              `json:"cancellation_policy,omitempty"`
	ImportantNotes      string              `json:"important_notes,omitempty"`
	Itineraries         []ItineraryResponse `json:"itineraries,omitempty"`
	Pricing             []PricingResponse   `json:"pricing,omitempty"`
	Inclusions          []InclusionResponse `json:"inclusions,omitempty"`
	gDto.Metadata
}

func (r *PackageResponse) FromModel(model model.Package) {
	r.ID = model.ID
	r.Code = model.Code
	r.Name = model.Name
	r.ShortTitle = model.ShortTitle
	r.Description = model.Description
	r.Type = model.Type
	r.Category = model.Category
	r.Nights = model.Nights
	r.Days = model.Days
	r.Destination = model.Destination
	r.StartingPoint = model.StartingPoint
	r.EndingPoint = model.EndingPoint
	r.DestinationsCovered = orEmpty(model.DestinationsCovered)
	r.MinPersons = model.MinPersons
	r.MaxPersons = model.MaxPersons
	r.MinPricePerHead = model.MinPricePerHead
	r.BasePricePerHead = model.BasePricePerHead
	r.BestTimeToVisit = model.BestTimeToVisit
	r.DifficultyLevel = model.DifficultyLevel
	r.Highlights = orEmpty(model.Highlights)
	r.Tags = orEmpty(model.Tags)
	r.ThumbnailImage = model.ThumbnailImage
	r.Status = model.Status
	r.IsFeatured = model.IsFeatured
	r.DisplayOrder = model.DisplayOrder
	r.ValidFrom = formatDate(model.ValidFrom)
	r.ValidUntil = formatDate(model.ValidUntil)
	r.TermsAndConditions = model.TermsAndConditions
	r.CancellationPolicy = model.CancellationPolicy
	r.ImportantNotes = model.ImportantNotes

	r.Metadata.FromModel(model.Metadata)
}

func PackagesFromModels(models []model.Package) []PackageResponse {
	res := make([]PackageResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type GetPackagesResponse struct {
	Packages  []PackageResponse `json:"packages"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPackagesResponse) FromModels(models []model.Package, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Packages = PackagesFromModels(models)
}

type StatisticsResponse struct {
	Predefined PredefinedStatistics `json:"predefined"`
	Custom     CustomStatistics     `json:"custom"`
}

type PredefinedStatistics struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Draft    int `json:"draft"`
	Featured int `json:"featured"`
}

type CustomStatistics struct {
	Total     int `json:"total"`
	Draft     int `json:"draft"`
	QuoteSent int `json:"quote_sent"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
}

func (r *StatisticsResponse) FromModel(stats model.Statistics) {
	r.Predefined = PredefinedStatistics{
		Total:    stats.TotalPackages,
		Active:   stats.ActivePackages,
		Draft:    stats.DraftPackages,
		Featured: stats.FeaturedPackages,
	}
	r.Custom = CustomStatistics{
		Total:     stats.TotalCustom,
		Draft:     stats.DraftCustom,
		QuoteSent: stats.QuoteSentCustom,
		Confirmed: stats.ConfirmedCustom,
		Completed: stats.CompletedCustom,
	}
}

func parseValidity(fromValue, untilValue string) (from, until *time.Time, err error) {
	if from, err = parseDate(fromValue); err != nil {
		return nil, nil, err
	}

	if until, err = parseDate(untilValue); err != nil {
		return nil, nil, err
	}

	if from != nil && until != nil && until.Before(*from) {
		return nil, nil, ErrValidityRange
	}

	return from, until, nil
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	date, err := timezone.ParseDate(value)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &date, nil
}

func formatDate(date *time.Time) string {
	if date == nil {
		return ""
	}

	return timezone.FormatDate(*date)
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

func orEmpty[S ~[]string](values S) []string {
	if values == nil {
		return []string{}
	}

	return values
}
