package repository

//go:generate go run go.uber.org/mock/mockgen -source=./custom.go -destination=../mocks/custom_mock.go -package=mocks

import (
	"context"

	"homestay/infras/otel"
	"homestay/infras/postgres"
	"homestay/internal/domains/tourpackage/model"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/logger"
	gRepo "homestay/shared/repository"

	"github.com/jmoiron/sqlx"
)

type CustomPackage interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.CustomPackage) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CustomPackage, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CustomPackage, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	NextSequenceTx(ctx context.Context, sqltx *sqlx.Tx, sequence string) (int64, error)
}

type CustomItinerary interface {
	Insert(ctx context.Context, model model.CustomItinerary) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CustomItinerary, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CustomItinerary, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type customPackageRepository struct {
	gRepo.Repository[model.CustomPackage]
	otel otel.Otel
}

type customItineraryRepository struct {
	gRepo.Repository[model.CustomItinerary]
}

func NewCustomPackage(db *postgres.Connection, otel otel.Otel) CustomPackage {
	return &customPackageRepository{
		Repository: gRepo.NewRepository[model.CustomPackage](model.CustomEntityName, model.CustomTableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func NewCustomItinerary(db *postgres.Connection, otel otel.Otel) CustomItinerary {
	return &customItineraryRepository{
		Repository: gRepo.NewRepository[model.CustomItinerary](model.CustomItineraryEntityName, model.CustomItineraryTableName, model.FieldID, db, otel),
	}
}

func (r *customPackageRepository) NextSequenceTx(ctx context.Context, sqltx *sqlx.Tx, sequence string) (int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".custom_package.NextSequenceTx")
	defer scope.End()

	next, err := nextSequence(ctx, sqltx, sequence)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, err
	}

	return next, nil
}
