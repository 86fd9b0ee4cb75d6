package model

import "slices"

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
	StatusNoShow     = "no_show"
)

const (
	LineStatusReserved   = "reserved"
	LineStatusOccupied   = "occupied"
	LineStatusCheckedOut = "checked_out"
	LineStatusCancelled  = "cancelled"
)

var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled, StatusNoShow},
	StatusCheckedIn: {StatusCheckedOut},
}

// ReleasedStatuses no longer hold their rooms.
var ReleasedStatuses = []string{StatusCancelled, StatusCheckedOut}

func CanTransition(from, to string) bool {
	return slices.Contains(transitions[from], to)
}

func Terminal(status string) bool {
	return len(transitions[status]) == 0
}

// LineStatusFor derives the status of every room line from the booking status.
func LineStatusFor(status string) string {
	switch status {
	case StatusCheckedIn:
		return LineStatusOccupied
	case StatusCheckedOut:
		return LineStatusCheckedOut
	case StatusCancelled:
		return LineStatusCancelled
	default:
		return LineStatusReserved
	}
}
