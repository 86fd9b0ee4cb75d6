package repository

//go:generate go run go.uber.org/mock/mockgen -source=./payment.go -destination=../mocks/payment_mock.go -package=mocks

import (
	"context"

	"homestay/infras/otel"
	"homestay/infras/postgres"
	"homestay/internal/domains/booking/model"
	gDto "homestay/shared/dto"
	gRepo "homestay/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Payment interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Payment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Payment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type paymentRepository struct {
	gRepo.Repository[model.Payment]
}

func NewPayment(db *postgres.Connection, otel otel.Otel) Payment {
	return &paymentRepository{
		Repository: gRepo.NewRepository[model.Payment](model.PaymentEntityName, model.PaymentTableName, model.FieldID, db, otel),
	}
}
