package repository

//go:generate go run go.uber.org/mock/mockgen -source=./booking_room.go -destination=../mocks/booking_room_mock.go -package=mocks

import (
	"context"

	"homestay/infras/otel"
	"homestay/infras/postgres"
	"homestay/internal/domains/booking/model"
	gDto "homestay/shared/dto"
	gRepo "homestay/shared/repository"

	"github.com/jmoiron/sqlx"
)

type BookingRoom interface {
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.BookingRoom) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingRoom, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type bookingRoomRepository struct {
	gRepo.Repository[model.BookingRoom]
}

func NewBookingRoom(db *postgres.Connection, otel otel.Otel) BookingRoom {
	return &bookingRoomRepository{
		Repository: gRepo.NewRepository[model.BookingRoom](model.BookingRoomEntityName, model.BookingRoomTableName, model.FieldID, db, otel),
	}
}
