package model

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"homestay/shared/model"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	TableName  = "packages"
	EntityName = "package"

	SequenceCode = "package_code_seq"

	FieldID           = "id"
	FieldCode         = "code"
	FieldName         = "name"
	FieldType         = "type"
	FieldCategory     = "category"
	FieldNights       = "nights"
	FieldDestination  = "destination"
	FieldMinPrice     = "min_price_per_head"
	FieldBasePrice    = "base_price_per_head"
	FieldStatus       = "status"
	FieldIsFeatured   = "is_featured"
	FieldDisplayOrder = "display_order"
	FieldTags         = "tags"
	FieldPackageID    = "package_id"
	FieldDayNumber    = "day_number"
	FieldPersons      = "number_of_persons"
	FieldIsActive     = "is_active"
	FieldRoomType     = "room_type"
	FieldSeasonType   = "season_type"
	FieldPricePerHead = "price_per_head"
	FieldTotalPrice   = "total_price"
	FieldDays         = "days"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusDraft    = "draft"
)

const (
	TypePredefined = "predefined"
	TypeCustom     = "custom"
)

const CategoryFamily = "family"

// PopularLimit caps the popular package list.
const PopularLimit = 5

type Package struct {
	ID                  string          `db:"id"`
	Code                string          `db:"code"`
	Name                string          `db:"name"`
	ShortTitle          string          `db:"short_title"`
	Description         string          `db:"description"`
	Type                string          `db:"type"`
	Category            string          `db:"category"`
	Nights              int             `db:"nights"`
	Days                int             `db:"days"`
	Destination         string          `db:"destination"`
	StartingPoint       string          `db:"starting_point"`
	EndingPoint         string          `db:"ending_point"`
	DestinationsCovered pq.StringArray  `db:"destinations_covered"`
	MinPersons          int             `db:"min_persons"`
	MaxPersons          int             `db:"max_persons"`
	MinPricePerHead     decimal.Decimal `db:"min_price_per_head"`
	BasePricePerHead    decimal.Decimal `db:"base_price_per_head"`
	BestTimeToVisit     string          `db:"best_time_to_visit"`
	DifficultyLevel     string          `db:"difficulty_level"`
	Highlights          pq.StringArray  `db:"highlights"`
	Tags                pq.StringArray  `db:"tags"`
	ThumbnailImage      string          `db:"thumbnail_image"`
	Status              string          `db:"status"`
	IsFeatured          bool            `db:"is_featured"`
	DisplayOrder        int             `db:"display_order"`
	ValidFrom           *time.Time      `db:"valid_from"`
	ValidUntil          *time.Time      `db:"valid_until"`
	TermsAndConditions  string          `db:"terms_and_conditions"`
	CancellationPolicy  string          `db:"cancellation_policy"`
	ImportantNotes      string          `db:"important_notes"`
	model.Metadata
}

// Code formats PKG-<DST>-<n>N<n+1>D-<seq> where DST is the first three letters of the destination.
func Code(destination string, nights int, seq int64) string {
	prefix := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return unicode.ToUpper(r)
		}

		return -1
	}, destination)

	if runes := []rune(prefix); len(runes) > 3 {
		prefix = string(runes[:3])
	}

	return fmt.Sprintf("PKG-%s-%dN%dD-%03d", prefix, nights, nights+1, seq)
}

// Statistics counts predefined and custom packages by status.
type Statistics struct {
	TotalPackages    int `db:"total_packages"`
	ActivePackages   int `db:"active_packages"`
	DraftPackages    int `db:"draft_packages"`
	FeaturedPackages int `db:"featured_packages"`
	TotalCustom      int `db:"total_custom"`
	DraftCustom      int `db:"draft_custom"`
	QuoteSentCustom  int `db:"quote_sent_custom"`
	ConfirmedCustom  int `db:"confirmed_custom"`
	CompletedCustom  int `db:"completed_custom"`
}
