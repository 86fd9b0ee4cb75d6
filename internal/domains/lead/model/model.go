package model

import (
	"time"

	"homestay/shared/model"
)

const (
	TableName  = "leads"
	EntityName = "lead"

	FieldID           = "id"
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldSource       = "source"
	FieldStatus       = "status"
	FieldPriority     = "priority"
	FieldHomestayID   = "homestay_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldBookingID    = "booking_id"
	FieldConvertedAt  = "converted_at"
	FieldLostReason   = "lost_reason"
	FieldNotes        = "notes"
	FieldAssignedTo   = "assigned_to"
	FieldLastContact  = "last_contacted_at"
	FieldNextFollowUp = "next_follow_up_at"
)

const (
	StatusNew          = "new"
	StatusContacted    = "contacted"
	StatusQualified    = "qualified"
	StatusProposalSent = "proposal_sent"
	StatusNegotiation  = "negotiation"
	StatusConverted    = "converted"
	StatusLost         = "lost"
	StatusInactive     = "inactive"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

const SourceWebsite = "website"

// FollowUpStatuses are the statuses whose next follow-up date is tracked by the sales desk.
var FollowUpStatuses = []string{StatusContacted, StatusQualified}

type Lead struct {
	ID           string     `db:"id"`
	Name         string     `db:"name"`
	Email        string     `db:"email"`
	Phone        string     `db:"phone"`
	Source       string     `db:"source"`
	Status       string     `db:"status"`
	Priority     string     `db:"priority"`
	Adults       int        `db:"adults"`
	Children     int        `db:"children"`
	HomestayID   *string    `db:"homestay_id"`
	CheckInDate  *time.Time `db:"check_in_date"`
	CheckOutDate *time.Time `db:"check_out_date"`
	BookingID    *string    `db:"booking_id"`
	ConvertedAt  *time.Time `db:"converted_at"`
	LostReason   string     `db:"lost_reason"`
	Notes        string     `db:"notes"`
	AssignedTo   string     `db:"assigned_to"`
	// LastContactedAt and NextFollowUpAt are maintained by follow-ups.
	LastContactedAt *time.Time `db:"last_contacted_at"`
	NextFollowUpAt  *time.Time `db:"next_follow_up_at"`
	model.Metadata
}

// Converted reports whether the lead already points at a booking.
func (l Lead) Converted() bool {
	return l.Status == StatusConverted && l.BookingID != nil
}

// Statistics counts leads by pipeline stage.
type Statistics struct {
	Total     int `db:"total"`
	New       int `db:"new_leads"`
	Qualified int `db:"qualified"`
	Converted int `db:"converted"`
	Lost      int `db:"lost"`
}

// SourceCount is the number of leads that came in through one source.
type SourceCount struct {
	Source string `db:"source"`
	Count  int    `db:"count"`
}
