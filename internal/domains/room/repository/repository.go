package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"homestay/infras/otel"
	"homestay/infras/postgres"
	"homestay/internal/domains/room/model"
	gDto "homestay/shared/dto"
	gRepo "homestay/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	// LockTx reads a room and holds its row lock until the booking transaction ends, so a room
	// cannot be blocked or repriced while it is being booked.
	LockTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) LockTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.Room, error) {
	return r.GetForUpdateTx(ctx, sqltx, filter) //nolint:wrapcheck
}
