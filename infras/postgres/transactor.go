package postgres

//go:generate go run go.uber.org/mock/mockgen -source=./transactor.go -destination=./mocks/transactor_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"homestay/infras/otel"
	"homestay/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Transactor runs a unit of work inside a single write transaction.
type Transactor interface {
	WithTx(ctx context.Context, opts *sql.TxOptions, fn func(tx *sqlx.Tx) error) error
}

type transactorImpl struct {
	db   *Connection
	otel otel.Otel
}

func NewTransactor(db *Connection, otel otel.Otel) Transactor {
	return &transactorImpl{
		db:   db,
		otel: otel,
	}
}

// WithTx commits when fn returns nil and rolls back otherwise. The error returned by fn is
// passed through untouched so callers can still inspect it.
func (t *transactorImpl) WithTx(ctx context.Context, opts *sql.TxOptions, fn func(tx *sqlx.Tx) error) (err error) {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".WithTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tx, err := t.db.Write.BeginTxx(ctx, opts)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
