package dto

import (
	"homestay/internal/domains/homestay/model"
	"homestay/shared"
	gDto "homestay/shared/dto"
	gModel "homestay/shared/model"
	"homestay/shared/timezone"

	"github.com/google/uuid"
)

type CreateHomestayRequest struct {
	Name         string `json:"name"          validate:"required,max=150"`
	Address      string `json:"address"       validate:"omitempty"`
	City         string `json:"city"          validate:"omitempty,max=100"`
	ContactPhone string `json:"contact_phone" validate:"omitempty,max=20"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email,max=100"`
	Status       string `json:"status"        validate:"omitempty,oneof=active inactive maintenance"`
}

func (c *CreateHomestayRequest) ToModel(user string) model.Homestay {
	status := model.StatusActive
	if c.Status != "" {
		status = c.Status
	}

	return model.Homestay{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Address:      c.Address,
		City:         c.City,
		ContactPhone: c.ContactPhone,
		ContactEmail: c.ContactEmail,
		Status:       status,
		Metadata:     gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateHomestayRequest struct {
	Name         string `db:"name"          json:"name"          validate:"omitempty,max=150"`
	Address      string `db:"address"       json:"address"       validate:"omitempty"`
	City         string `db:"city"          json:"city"          validate:"omitempty,max=100"`
	ContactPhone string `db:"contact_phone" json:"contact_phone" validate:"omitempty,max=20"`
	ContactEmail string `db:"contact_email" json:"contact_email" validate:"omitempty,email,max=100"`
	Status       string `db:"status"        json:"status"        validate:"omitempty,oneof=active inactive maintenance"`
}

type HomestayResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`
	Status       string `json:"status"`
	TotalRooms   int    `json:"total_rooms"`
	gDto.Metadata
}

func (r *HomestayResponse) FromModel(model model.Homestay) {
	r.ID = model.ID
	r.Name = model.Name
	r.Address = model.Address
	r.City = model.City
	r.ContactPhone = model.ContactPhone
	r.ContactEmail = model.ContactEmail
	r.Status = model.Status
	r.TotalRooms = model.TotalRooms
	r.Metadata.FromModel(model.Metadata)
}

type GetHomestaysResponse struct {
	Homestays []HomestayResponse `json:"homestays"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetHomestaysResponse) FromModels(models []model.Homestay, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Homestays = make([]HomestayResponse, len(models))
	for i, mod := range models {
		r.Homestays[i].FromModel(mod)
	}
}
