package dto

import (
	"errors"
	"mime/multipart"
	"time"

	"homestay/internal/domains/room/model"
	"homestay/shared"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	gModel "homestay/shared/model"
	"homestay/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrBlockRange = errors.New("blocked_until must not be before blocked_from")

type CreateRoomRequest struct {
	HomestayID   string                `json:"homestay_id"    validate:"required,uuid"`
	RoomNumber   string                `json:"room_number"    validate:"required,max=20"`
	RoomName     string                `json:"room_name"      validate:"omitempty,max=100"`
	RoomType     string                `json:"room_type"      validate:"omitempty,oneof=view non_view"`
	Capacity     int                   `json:"capacity"       validate:"required,min=1"`
	PricePerHead decimal.Decimal       `json:"price_per_head" validate:"gte=0,decimalplaces=2"`
	Description  string                `json:"description"    validate:"omitempty"`
	Status       string                `json:"status"         validate:"omitempty,oneof=available blocked maintenance"`
	Image        *multipart.FileHeader `json:"image"          swaggerignore:"true" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile    multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	roomType := model.TypeNonView
	if c.RoomType != "" {
		roomType = c.RoomType
	}

	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Room{
		ID:           uuid.NewString(),
		HomestayID:   c.HomestayID,
		RoomNumber:   c.RoomNumber,
		RoomName:     c.RoomName,
		RoomType:     roomType,
		Capacity:     c.Capacity,
		PricePerHead: c.PricePerHead,
		Description:  c.Description,
		Status:       status,
		Metadata:     gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateRoomRequest struct {
	RoomNumber   string                `db:"room_number"    json:"room_number"    validate:"omitempty,max=20"`
	RoomName     string                `db:"room_name"      json:"room_name"      validate:"omitempty,max=100"`
	RoomType     string                `db:"room_type"      json:"room_type"      validate:"omitempty,oneof=view non_view"`
	Capacity     *int                  `db:"capacity"       json:"capacity"       validate:"omitempty,min=1"`
	PricePerHead *decimal.Decimal      `db:"price_per_head" json:"price_per_head" validate:"omitempty,gte=0,decimalplaces=2"`
	Description  string                `db:"description"    json:"description"    validate:"omitempty"`
	Image        *multipart.FileHeader `json:"image"        swaggerignore:"true"  validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile    multipart.File        `json:"-"`
	ImageURL     string                `db:"image"          json:"-"`
}

func (u *UpdateRoomRequest) IsEmpty() bool {
	return u.RoomNumber == "" && u.RoomName == "" && u.RoomType == "" && u.Capacity == nil &&
		u.PricePerHead == nil && u.Description == "" && u.Image == nil
}

// BlockRoomRequest takes a room out of sale. Status defaults to blocked.
type BlockRoomRequest struct {
	Status       string `json:"status"        validate:"omitempty,oneof=blocked maintenance"`
	Reason       string `json:"reason"        validate:"required,max=500"`
	BlockedFrom  string `json:"blocked_from"  validate:"omitempty,datetime=2006-01-02"`
	BlockedUntil string `json:"blocked_until" validate:"omitempty,datetime=2006-01-02"`
}

func (b *BlockRoomRequest) ToFields(user string) (map[string]any, error) {
	status := model.StatusBlocked
	if b.Status != "" {
		status = b.Status
	}

	fields := map[string]any{
		model.FieldStatus:        status,
		model.FieldBlockReason:   b.Reason,
		model.FieldBlockedFrom:   nil,
		model.FieldBlockedUntil:  nil,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	var from, until time.Time

	if b.BlockedFrom != "" {
		parsed, err := timezone.ParseDate(b.BlockedFrom)
		if err != nil {
			return nil, err
		}

		from = parsed
		fields[model.FieldBlockedFrom] = from
	}

	if b.BlockedUntil != "" {
		parsed, err := timezone.ParseDate(b.BlockedUntil)
		if err != nil {
			return nil, err
		}

		until = parsed
		fields[model.FieldBlockedUntil] = until
	}

	if !from.IsZero() && !until.IsZero() && until.Before(from) {
		return nil, ErrBlockRange
	}

	return fields, nil
}

type RoomResponse struct {
	ID           string          `json:"id"`
	HomestayID   string          `json:"homestay_id"`
	RoomNumber   string          `json:"room_number"`
	RoomName     string          `json:"room_name"`
	RoomType     string          `json:"room_type"`
	Capacity     int             `json:"capacity"`
	PricePerHead decimal.Decimal `json:"price_per_head" swaggertype:"string"`
	Description  string          `json:"description"`
	Image        string          `json:"image"`
	Status       string          `json:"status"`
	BlockReason  string          `json:"block_reason,omitempty"`
	BlockedFrom  string          `json:"blocked_from,omitempty"`
	BlockedUntil string          `json:"blocked_until,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.HomestayID = model.HomestayID
	r.RoomNumber = model.RoomNumber
	r.RoomName = model.RoomName
	r.RoomType = model.RoomType
	r.Capacity = model.Capacity
	r.PricePerHead = model.PricePerHead
	r.Description = model.Description
	r.Image = model.Image
	r.Status = model.Status
	r.BlockReason = model.BlockReason

	if model.BlockedFrom != nil {
		r.BlockedFrom = timezone.FormatDate(*model.BlockedFrom)
	}

	if model.BlockedUntil != nil {
		r.BlockedUntil = timezone.FormatDate(*model.BlockedUntil)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
