package model

import (
	"time"

	"homestay/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldHomestayID   = "homestay_id"
	FieldRoomNumber   = "room_number"
	FieldRoomName     = "room_name"
	FieldRoomType     = "room_type"
	FieldCapacity     = "capacity"
	FieldPricePerHead = "price_per_head"
	FieldImage        = "image"
	FieldStatus       = "status"
	FieldBlockReason  = "block_reason"
	FieldBlockedFrom  = "blocked_from"
	FieldBlockedUntil = "blocked_until"
)

const (
	StatusAvailable   = "available"
	StatusBlocked     = "blocked"
	StatusMaintenance = "maintenance"
)

const (
	TypeView    = "view"
	TypeNonView = "non_view"
)

type Room struct {
	ID           string          `db:"id"`
	HomestayID   string          `db:"homestay_id"`
	RoomNumber   string          `db:"room_number"`
	RoomName     string          `db:"room_name"`
	RoomType     string          `db:"room_type"`
	Capacity     int             `db:"capacity"`
	PricePerHead decimal.Decimal `db:"price_per_head"`
	Description  string          `db:"description"`
	Image        string          `db:"image"`
	Status       string          `db:"status"`
	BlockReason  string          `db:"block_reason"`
	BlockedFrom  *time.Time      `db:"blocked_from"`
	BlockedUntil *time.Time      `db:"blocked_until"`
	model.Metadata
}

// Selectable reports whether the room may be put on a new booking.
func (r Room) Selectable() bool {
	return r.Status != StatusBlocked && r.Status != StatusMaintenance
}
