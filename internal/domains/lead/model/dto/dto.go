package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"homestay/internal/domains/lead/model"
	"homestay/shared"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	gModel "homestay/shared/model"
	"homestay/shared/timezone"

	"github.com/google/uuid"
)

var ErrStayRange = errors.New("check_out_date must be after check_in_date")

type CreateLeadRequest struct {
	Name         string `json:"name"           validate:"required,max=100"`
	Email        string `json:"email"          validate:"required,email,max=100"`
	Phone        string `json:"phone"          validate:"required,max=20"`
	Source       string `json:"source"         validate:"omitempty,oneof=website phone_call email social_media referral walk_in online_ad booking_platform agent other"`
	Priority     string `json:"priority"       validate:"omitempty,oneof=low medium high urgent"`
	Adults       int    `json:"adults"         validate:"omitempty,min=1"`
	Children     int    `json:"children"       validate:"omitempty,min=0"`
	HomestayID   string `json:"homestay_id"    validate:"omitempty,uuid"`
	CheckInDate  string `json:"check_in_date"  validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"omitempty,datetime=2006-01-02"`
	Notes        string `json:"notes"          validate:"omitempty"`
}

func (c *CreateLeadRequest) ToModel(user string) (model.Lead, error) {
	checkIn, checkOut, err := parseStay(c.CheckInDate, c.CheckOutDate)
	if err != nil {
		return model.Lead{}, err
	}

	source := model.SourceWebsite
	if c.Source != "" {
		source = c.Source
	}

	priority := model.PriorityMedium
	if c.Priority != "" {
		priority = c.Priority
	}

	adults := 1
	if c.Adults > 0 {
		adults = c.Adults
	}

	var homestayID *string
	if c.HomestayID != "" {
		homestayID = &c.HomestayID
	}

	return model.Lead{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Email:        strings.ToLower(strings.TrimSpace(c.Email)),
		Phone:        strings.TrimSpace(c.Phone),
		Source:       source,
		Status:       model.StatusNew,
		Priority:     priority,
		Adults:       adults,
		Children:     c.Children,
		HomestayID:   homestayID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Notes:        c.Notes,
		Metadata:     gModel.NewMetadata(user, timezone.Now()),
	}, nil
}

type UpdateLeadRequest struct {
	Name         string  `db:"name"        json:"name"           validate:"omitempty,max=100"`
	Email        string  `db:"email"       json:"email"          validate:"omitempty,email,max=100"`
	Phone        string  `db:"phone"       json:"phone"          validate:"omitempty,max=20"`
	Source       string  `db:"source"      json:"source"         validate:"omitempty,oneof=website phone_call email social_media referral walk_in online_ad booking_platform agent other"`
	Priority     string  `db:"priority"    json:"priority"       validate:"omitempty,oneof=low medium high urgent"`
	Adults       *int    `db:"adults"      json:"adults"         validate:"omitempty,min=1"`
	Children     *int    `db:"children"    json:"children"       validate:"omitempty,min=0"`
	HomestayID   *string `db:"homestay_id" json:"homestay_id"    validate:"omitempty,uuid"`
	CheckInDate  string  `json:"check_in_date"  validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate string  `json:"check_out_date" validate:"omitempty,datetime=2006-01-02"`
	Notes        string  `db:"notes"       json:"notes"          validate:"omitempty"`
}

// ToFields returns the columns to write. Stay dates are validated against each other only when both are sent.
func (u *UpdateLeadRequest) ToFields(user string) (map[string]any, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Phone = strings.TrimSpace(u.Phone)

	fields := shared.TransformFields(*u, user)

	checkIn, checkOut, err := parseStay(u.CheckInDate, u.CheckOutDate)
	if err != nil {
		return nil, err
	}

	if checkIn != nil {
		fields[model.FieldCheckInDate] = *checkIn
	}

	if checkOut != nil {
		fields[model.FieldCheckOutDate] = *checkOut
	}

	return fields, nil
}

func (u *UpdateLeadRequest) IsEmpty() bool {
	return u.Name == "" && u.Email == "" && u.Phone == "" && u.Source == "" && u.Priority == "" &&
		u.Adults == nil && u.Children == nil && u.HomestayID == nil && u.CheckInDate == "" &&
		u.CheckOutDate == "" && u.Notes == ""
}

type UpdateLeadStatusRequest struct {
	Status     string `json:"status"      validate:"required,oneof=new contacted qualified proposal_sent negotiation converted lost inactive"`
	BookingID  string `json:"booking_id"  validate:"omitempty,uuid"`
	LostReason string `json:"lost_reason" validate:"omitempty,max=500"`
	Reason     string `json:"reason"      validate:"omitempty,max=500"`
}

// ToFields stamps conversion and loss details. A reason is appended to the notes as a dated line.
func (u *UpdateLeadStatusRequest) ToFields(lead model.Lead, user string, now time.Time) map[string]any {
	fields := map[string]any{
		model.FieldStatus:        u.Status,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	switch u.Status {
	case model.StatusConverted:
		fields[model.FieldConvertedAt] = now

		if u.BookingID != "" {
			fields[model.FieldBookingID] = u.BookingID
		}
	case model.StatusLost:
		if u.LostReason != "" {
			fields[model.FieldLostReason] = u.LostReason
		}
	}

	if u.Reason != "" {
		fields[model.FieldNotes] = shared.AppendNote(lead.Notes, now, fmt.Sprintf("Status changed to %s: %s", u.Status, u.Reason))
	}

	return fields
}

type LeadResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Source       string `json:"source"`
	Status       string `json:"status"`
	Priority     string `json:"priority"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	HomestayID   string `json:"homestay_id,omitempty"`
	CheckInDate  string `json:"check_in_date,omitempty"`
	CheckOutDate string `json:"check_out_date,omitempty"`
	BookingID    string `json:"booking_id,omitempty"`
	ConvertedAt  string `json:"converted_at,omitempty"`
	LostReason   string `json:"lost_reason,omitempty"`
	Notes        string `json:"notes"`
	AssignedTo   string `json:"assigned_to,omitempty"`
	LastContact  string `json:"last_contacted_at,omitempty"`
	NextFollowUp string `json:"next_follow_up_at,omitempty"`
	gDto.Metadata
}

func (r *LeadResponse) FromModel(model model.Lead) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Source = model.Source
	r.Status = model.Status
	r.Priority = model.Priority
	r.Adults = model.Adults
	r.Children = model.Children
	r.LostReason = model.LostReason
	r.Notes = model.Notes

	if model.HomestayID != nil {
		r.HomestayID = *model.HomestayID
	}

	if model.CheckInDate != nil {
		r.CheckInDate = timezone.FormatDate(*model.CheckInDate)
	}

	if model.CheckOutDate != nil {
		r.CheckOutDate = timezone.FormatDate(*model.CheckOutDate)
	}

	if model.BookingID != nil {
		r.BookingID = *model.BookingID
	}

	if model.ConvertedAt != nil {
		r.ConvertedAt = model.ConvertedAt.Format(time.RFC3339)
	}

	r.AssignedTo = model.AssignedTo

	if model.LastContactedAt != nil {
		r.LastContact = timezone.Format(*model.LastContactedAt, constant.DateFormat)
	}

	if model.NextFollowUpAt != nil {
		r.NextFollowUp = timezone.Format(*model.NextFollowUpAt, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetLeadsResponse struct {
	Leads     []LeadResponse `json:"leads"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func LeadsFromModels(models []model.Lead) []LeadResponse {
	res := make([]LeadResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

func (r *GetLeadsResponse) FromModels(models []model.Lead, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Leads = LeadsFromModels(models)
}

func parseStay(checkInValue, checkOutValue string) (checkIn, checkOut *time.Time, err error) {
	if checkInValue != "" {
		date, err := timezone.ParseDate(checkInValue)
		if err != nil {
			return nil, nil, err
		}

		checkIn = &date
	}

	if checkOutValue != "" {
		date, err := timezone.ParseDate(checkOutValue)
		if err != nil {
			return nil, nil, err
		}

		checkOut = &date
	}

	if checkIn != nil && checkOut != nil && !checkOut.After(*checkIn) {
		return nil, nil, ErrStayRange
	}

	return checkIn, checkOut, nil
}
