package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"homestay/infras/otel"
	"homestay/infras/postgres"
	"homestay/internal/domains/lead/model"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/logger"
	gRepo "homestay/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	queryStatistics = `SELECT
			COUNT(id) AS total,
			COUNT(id) FILTER (WHERE status = 'new') AS new_leads,
			COUNT(id) FILTER (WHERE status = 'qualified') AS qualified,
			COUNT(id) FILTER (WHERE status = 'converted') AS converted,
			COUNT(id) FILTER (WHERE status = 'lost') AS lost
		FROM leads`

	queryCountBySource = `SELECT source, COUNT(id) AS count
		FROM leads
		GROUP BY source
		ORDER BY count DESC, source`
)

type Lead interface {
	Insert(ctx context.Context, model model.Lead) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Lead, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.Lead, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Lead, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Statistics(ctx context.Context) (model.Statistics, error)
	CountBySource(ctx context.Context) ([]model.SourceCount, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Lead]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Lead {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Lead](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Statistics(ctx context.Context) (model.Statistics, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".lead.Statistics")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryStatistics)

	var stats model.Statistics

	if err := r.db.Read.GetContext(ctx, &stats, queryStatistics); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return stats, fmt.Errorf("failed to aggregate leads: %w", err)
	}

	return stats, nil
}

func (r *repositoryImpl) CountBySource(ctx context.Context) ([]model.SourceCount, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".lead.CountBySource")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryCountBySource)

	counts := []model.SourceCount{}

	if err := r.db.Read.SelectContext(ctx, &counts, queryCountBySource); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return counts, fmt.Errorf("failed to count leads by source: %w", err)
	}

	return counts, nil
}
