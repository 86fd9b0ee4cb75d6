package model

import (
	"time"

	"homestay/shared/model"
)

const (
	FollowUpTableName  = "lead_follow_ups"
	FollowUpEntityName = "lead_follow_up"

	FieldFollowUpLeadID = "lead_id"
	FieldFollowUpDate   = "follow_up_date"
)

const (
	FollowUpCall     = "call"
	FollowUpEmail    = "email"
	FollowUpSMS      = "sms"
	FollowUpWhatsApp = "whatsapp"
	FollowUpMeeting  = "meeting"
	FollowUpNote     = "note"
	FollowUpOther    = "other"
)

const (
	OutcomeSuccessful        = "successful"
	OutcomeNoAnswer          = "no_answer"
	OutcomeBusy              = "busy"
	OutcomeCallbackRequested = "callback_requested"
	OutcomeNotInterested     = "not_interested"
	OutcomeInterested        = "interested"
	OutcomeBookingConfirmed  = "booking_confirmed"
	OutcomeNeedMoreInfo      = "need_more_info"
	OutcomeOther             = "other"
)

type FollowUp struct {
	ID               string     `db:"id"`
	LeadID           string     `db:"lead_id"`
	Type             string     `db:"type"`
	Outcome          string     `db:"outcome"`
	Notes            string     `db:"notes"`
	DurationMinutes  *int       `db:"duration_minutes"`
	FollowUpDate     time.Time  `db:"follow_up_date"`
	NextFollowUpDate *time.Time `db:"next_follow_up_date"`
	PerformedBy      string     `db:"performed_by"`
	model.Metadata
}

// StatusAfter returns the status a lead moves to once this follow-up is logged. The second value
// is false when the outcome leaves the status alone. A converted lead never moves.
func (f FollowUp) StatusAfter(lead Lead) (string, bool) {
	if lead.Status == StatusConverted {
		return lead.Status, false
	}

	var status string

	switch f.Outcome {
	case OutcomeInterested:
		status = StatusQualified
	case OutcomeNotInterested:
		status = StatusLost
	case OutcomeBookingConfirmed:
		status = StatusConverted
	default:
		return lead.Status, false
	}

	return status, status != lead.Status
}
