package repository

//go:generate go run go.uber.org/mock/mockgen -source=./detail.go -destination=../mocks/detail_mock.go -package=mocks

import (
	"context"

	"homestay/infras/otel"
	"homestay/infras/postgres"
	"homestay/internal/domains/tourpackage/model"
	gDto "homestay/shared/dto"
	gRepo "homestay/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Itinerary interface {
	Insert(ctx context.Context, model model.Itinerary) error
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.Itinerary) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Itinerary, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Itinerary, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Pricing interface {
	Insert(ctx context.Context, model model.Pricing) error
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.Pricing) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Pricing, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Pricing, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type Inclusion interface {
	Insert(ctx context.Context, model model.Inclusion) error
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.Inclusion) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Inclusion, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Inclusion, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type itineraryRepository struct {
	gRepo.Repository[model.Itinerary]
}

type pricingRepository struct {
	gRepo.Repository[model.Pricing]
}

type inclusionRepository struct {
	gRepo.Repository[model.Inclusion]
}

func NewItinerary(db *postgres.Connection, otel otel.Otel) Itinerary {
	return &itineraryRepository{
		Repository: gRepo.NewRepository[model.Itinerary](model.ItineraryEntityName, model.ItineraryTableName, model.FieldID, db, otel),
	}
}

func NewPricing(db *postgres.Connection, otel otel.Otel) Pricing {
	return &pricingRepository{
		Repository: gRepo.NewRepository[model.Pricing](model.PricingEntityName, model.PricingTableName, model.FieldID, db, otel),
	}
}

func NewInclusion(db *postgres.Connection, otel otel.Otel) Inclusion {
	return &inclusionRepository{
		Repository: gRepo.NewRepository[model.Inclusion](model.InclusionEntityName, model.InclusionTableName, model.FieldID, db, otel),
	}
}
