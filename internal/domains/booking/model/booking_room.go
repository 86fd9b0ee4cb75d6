package model

import (
	"time"

	"homestay/shared/model"

	"github.com/shopspring/decimal"
)

const (
	BookingRoomTableName  = "booking_rooms"
	BookingRoomEntityName = "booking_room"

	FieldBookingID = "booking_id"
	FieldRoomID    = "room_id"
)

// BookingRoom is one room line of a booking. Stay dates are copied from the header so the
// database can reject overlapping live lines for the same room.
type BookingRoom struct {
	ID              string          `db:"id"`
	BookingID       string          `db:"booking_id"`
	RoomID          string          `db:"room_id"`
	RoomNumber      string          `db:"room_number"       table:"rooms"`
	RoomName        string          `db:"room_name"         table:"rooms"`
	Guests          int             `db:"guests"`
	RatePerNight    decimal.Decimal `db:"rate_per_night"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	IsFullyOccupied bool            `db:"is_fully_occupied"`
	Notes           string          `db:"notes"`
	CheckInDate     time.Time       `db:"check_in_date"`
	CheckOutDate    time.Time       `db:"check_out_date"`
	Status          string          `db:"status"`
	model.Metadata
}

func (BookingRoom) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = booking_rooms.room_id"
}
