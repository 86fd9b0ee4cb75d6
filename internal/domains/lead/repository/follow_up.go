package repository

//go:generate go run go.uber.org/mock/mockgen -source=./follow_up.go -destination=../mocks/follow_up_mock.go -package=mocks

import (
	"context"

	"homestay/infras/otel"
	"homestay/infras/postgres"
	"homestay/internal/domains/lead/model"
	gDto "homestay/shared/dto"
	gRepo "homestay/shared/repository"

	"github.com/jmoiron/sqlx"
)

type FollowUp interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.FollowUp) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.FollowUp, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.FollowUp, error)
}

type followUpRepository struct {
	gRepo.Repository[model.FollowUp]
}

func NewFollowUp(db *postgres.Connection, otel otel.Otel) FollowUp {
	return &followUpRepository{
		Repository: gRepo.NewRepository[model.FollowUp](model.FollowUpEntityName, model.FollowUpTableName, model.FieldID, db, otel),
	}
}
