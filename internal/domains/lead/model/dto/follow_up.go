package dto

import (
	"time"

	"homestay/internal/domains/lead/model"
	"homestay/shared/constant"
	gModel "homestay/shared/model"
	"homestay/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AssignLeadRequest struct {
	AssignedTo string `json:"assigned_to" validate:"required,max=100"`
}

type CreateFollowUpRequest struct {
	Type             string `json:"type"                validate:"required,oneof=call email sms whatsapp meeting note other"`
	Outcome          string `json:"outcome"             validate:"omitempty,oneof=successful no_answer busy callback_requested not_interested interested booking_confirmed need_more_info other"`
	Notes            string `json:"notes"               validate:"required"`
	DurationMinutes  *int   `json:"duration_minutes"    validate:"omitempty,min=1"`
	FollowUpDate     string `json:"follow_up_date"      validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	NextFollowUpDate string `json:"next_follow_up_date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	PerformedBy      string `json:"performed_by"        validate:"omitempty,max=100"`
}

// ToModel builds the follow-up of leadID. The follow-up date defaults to now and the performer to
// the acting user.
func (c *CreateFollowUpRequest) ToModel(leadID, user string, now time.Time) (model.FollowUp, error) {
	followUpDate := now

	if c.FollowUpDate != "" {
		date, err := timezone.Parse(constant.DateFormat, c.FollowUpDate)
		if err != nil {
			return model.FollowUp{}, err
		}

		followUpDate = date
	}

	var next *time.Time

	if c.NextFollowUpDate != "" {
		date, err := timezone.Parse(constant.DateFormat, c.NextFollowUpDate)
		if err != nil {
			return model.FollowUp{}, err
		}

		next = &date
	}

	performedBy := c.PerformedBy
	if performedBy == "" {
		performedBy = user
	}

	return model.FollowUp{
		ID:               uuid.NewString(),
		LeadID:           leadID,
		Type:             c.Type,
		Outcome:          c.Outcome,
		Notes:            c.Notes,
		DurationMinutes:  c.DurationMinutes,
		FollowUpDate:     followUpDate,
		NextFollowUpDate: next,
		PerformedBy:      performedBy,
		Metadata:         gModel.NewMetadata(user, now),
	}, nil
}

// LeadFields returns the lead columns a logged follow-up changes: contact dates and, for a
// decisive outcome, the status.
func LeadFields(followUp model.FollowUp, lead model.Lead, user string, now time.Time) map[string]any {
	fields := map[string]any{
		model.FieldLastContact:   followUp.FollowUpDate,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	if followUp.NextFollowUpDate != nil {
		fields[model.FieldNextFollowUp] = *followUp.NextFollowUpDate
	}

	if status, changed := followUp.StatusAfter(lead); changed {
		fields[model.FieldStatus] = status

		if status == model.StatusConverted {
			fields[model.FieldConvertedAt] = now
		}
	}

	return fields
}

type FollowUpResponse struct {
	ID               string `json:"id"`
	LeadID           string `json:"lead_id"`
	Type             string `json:"type"`
	Outcome          string `json:"outcome,omitempty"`
	Notes            string `json:"notes"`
	DurationMinutes  *int   `json:"duration_minutes,omitempty"`
	FollowUpDate     string `json:"follow_up_date"`
	NextFollowUpDate string `json:"next_follow_up_date,omitempty"`
	PerformedBy      string `json:"performed_by"`
	CreatedAt        string `json:"created_at"`
}

func (r *FollowUpResponse) FromModel(model model.FollowUp) {
	r.ID = model.ID
	r.LeadID = model.LeadID
	r.Type = model.Type
	r.Outcome = model.Outcome
	r.Notes = model.Notes
	r.DurationMinutes = model.DurationMinutes
	r.FollowUpDate = timezone.Format(model.FollowUpDate, constant.DateFormat)
	r.PerformedBy = model.PerformedBy
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)

	if model.NextFollowUpDate != nil {
		r.NextFollowUpDate = timezone.Format(*model.NextFollowUpDate, constant.DateFormat)
	}
}

func FollowUpsFromModels(models []model.FollowUp) []FollowUpResponse {
	res := make([]FollowUpResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type StatisticsResponse struct {
	Total          int             `json:"total"`
	New            int             `json:"new"`
	Qualified      int             `json:"qualified"`
	Converted      int             `json:"converted"`
	Lost           int             `json:"lost"`
	Active         int             `json:"active"`
	ConversionRate decimal.Decimal `json:"conversion_rate" swaggertype:"string"`
}

// FromModel derives the active count and the conversion rate as a percentage to two places.
func (r *StatisticsResponse) FromModel(stats model.Statistics) {
	r.Total = stats.Total
	r.New = stats.New
	r.Qualified = stats.Qualified
	r.Converted = stats.Converted
	r.Lost = stats.Lost
	r.Active = stats.Total - stats.Converted - stats.Lost
	r.ConversionRate = decimal.Zero

	if stats.Total > 0 {
		r.ConversionRate = decimal.NewFromInt(int64(stats.Converted)).
			Mul(decimal.NewFromInt(100)).
			DivRound(decimal.NewFromInt(int64(stats.Total)), 2)
	}
}

type SourceCountResponse struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

func SourceCountsFromModels(models []model.SourceCount) []SourceCountResponse {
	res := make([]SourceCountResponse, len(models))
	for i, mod := range models {
		res[i] = SourceCountResponse{Source: mod.Source, Count: mod.Count}
	}

	return res
}
