package model

import "homestay/shared/model"

const (
	TableName  = "homestays"
	EntityName = "homestay"

	FieldID           = "id"
	FieldName         = "name"
	FieldCity         = "city"
	FieldContactEmail = "contact_email"
	FieldStatus       = "status"
	FieldTotalRooms   = "total_rooms"
)

const (
	StatusActive      = "active"
	StatusInactive    = "inactive"
	StatusMaintenance = "maintenance"
)

type Homestay struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Address      string `db:"address"`
	City         string `db:"city"`
	ContactPhone string `db:"contact_phone"`
	ContactEmail string `db:"contact_email"`
	Status       string `db:"status"`
	TotalRooms   int    `db:"total_rooms"`
	model.Metadata
}
