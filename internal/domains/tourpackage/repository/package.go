package repository

//go:generate go run go.uber.org/mock/mockgen -source=./package.go -destination=../mocks/package_mock.go -package=mocks

import (
	"context"
	"fmt"

	"homestay/infras/otel"
	"homestay/infras/postgres"
	"homestay/internal/domains/tourpackage/model"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/logger"
	gRepo "homestay/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	queryNextSequence = `SELECT nextval(CAST(:sequence AS regclass))`

	queryStatistics = `SELECT
			predefined.total_packages,
			predefined.active_packages,
			predefined.draft_packages,
			predefined.featured_packages,
			custom.total_custom,
			custom.draft_custom,
			custom.quote_sent_custom,
			custom.confirmed_custom,
			custom.completed_custom
		FROM (
			SELECT
				COUNT(id) AS total_packages,
				COUNT(id) FILTER (WHERE status = 'active') AS active_packages,
				COUNT(id) FILTER (WHERE status = 'draft') AS draft_packages,
				COUNT(id) FILTER (WHERE is_featured) AS featured_packages
			FROM packages
		) AS predefined
		CROSS JOIN (
			SELECT
				COUNT(id) AS total_custom,
				COUNT(id) FILTER (WHERE status = 'draft') AS draft_custom,
				COUNT(id) FILTER (WHERE status = 'quote_sent') AS quote_sent_custom,
				COUNT(id) FILTER (WHERE status = 'confirmed') AS confirmed_custom,
				COUNT(id) FILTER (WHERE status = 'completed') AS completed_custom
			FROM custom_packages
		) AS custom`
)

type Package interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Package) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Package, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Package, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	NextSequenceTx(ctx context.Context, sqltx *sqlx.Tx, sequence string) (int64, error)
	Statistics(ctx context.Context) (model.Statistics, error)
}

type packageRepository struct {
	gRepo.Repository[model.Package]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Package {
	return &packageRepository{
		Repository: gRepo.NewRepository[model.Package](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *packageRepository) NextSequenceTx(ctx context.Context, sqltx *sqlx.Tx, sequence string) (int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".package.NextSequenceTx")
	defer scope.End()

	next, err := nextSequence(ctx, sqltx, sequence)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, err
	}

	return next, nil
}

// Statistics counts predefined packages and custom packages in one round trip.
func (r *packageRepository) Statistics(ctx context.Context) (model.Statistics, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".package.Statistics")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryStatistics)

	var stats model.Statistics

	if err := r.db.Read.GetContext(ctx, &stats, queryStatistics); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return stats, fmt.Errorf("failed to aggregate packages: %w", err)
	}

	return stats, nil
}

func nextSequence(ctx context.Context, sqltx *sqlx.Tx, sequence string) (int64, error) {
	prepare, err := sqltx.PrepareNamedContext(ctx, queryNextSequence)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement (%s): %w", sequence, err)
	}
	defer prepare.Close()

	var next int64

	if err = prepare.GetContext(ctx, &next, map[string]any{"sequence": sequence}); err != nil {
		return 0, fmt.Errorf("failed to allocate sequence value (%s): %w", sequence, err)
	}

	return next, nil
}
