package repository

//go:generate go run go.uber.org/mock/mockgen -source=./booking.go -destination=../mocks/booking_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"
	"time"

	"homestay/infras/otel"
	"homestay/infras/postgres"
	"homestay/internal/domains/booking/model"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/logger"
	gRepo "homestay/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	queryNextSequence = `SELECT nextval(CAST(:sequence AS regclass))`
	queryLockRoom     = `SELECT pg_advisory_xact_lock(hashtext(:room_id))`

	// A line holds its room while the booking is live. Ranges are half-open so a check-out and a
	// check-in on the same day do not collide.
	queryCountOverlapping = `SELECT COUNT(booking_rooms.id)
		FROM booking_rooms
		JOIN bookings ON bookings.id = booking_rooms.booking_id
		WHERE booking_rooms.room_id = :room_id
			AND bookings.status <> ALL(:released)
			AND bookings.check_in_date < :check_out
			AND bookings.check_out_date > :check_in`

	queryStatistics = `SELECT
			COUNT(id) AS total_bookings,
			COUNT(id) FILTER (WHERE status = 'pending') AS pending_bookings,
			COUNT(id) FILTER (WHERE status = 'confirmed') AS confirmed_bookings,
			COUNT(id) FILTER (WHERE status = 'checked_in') AS checked_in_bookings,
			COUNT(id) FILTER (WHERE status = 'checked_out') AS checked_out_bookings,
			COUNT(id) FILTER (WHERE status = 'cancelled') AS cancelled_bookings,
			COUNT(id) FILTER (WHERE status = 'no_show') AS no_show_bookings,
			COALESCE(SUM(total_amount) FILTER (WHERE status <> 'cancelled'), 0) AS total_revenue,
			COALESCE(SUM(paid_amount), 0) AS total_paid,
			COALESCE(SUM(balance_amount) FILTER (WHERE status <> 'cancelled'), 0) AS pending_amount
		FROM bookings %s`
)

type Booking interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	NextSequenceTx(ctx context.Context, sqltx *sqlx.Tx, sequence string) (int64, error)
	LockRoomsTx(ctx context.Context, sqltx *sqlx.Tx, roomIDs []string) error
	CountOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int, error)
	CountOverlappingTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, checkIn, checkOut time.Time) (int, error)
	Statistics(ctx context.Context, homestayID string) (model.Statistics, error)
}

type bookingRepository struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &bookingRepository{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *bookingRepository) NextSequenceTx(ctx context.Context, sqltx *sqlx.Tx, sequence string) (int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.NextSequenceTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryNextSequence)

	prepare, err := sqltx.PrepareNamedContext(ctx, queryNextSequence)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", sequence, err)
	}
	defer prepare.Close()

	var next int64

	err = prepare.GetContext(ctx, &next, map[string]any{"sequence": sequence})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to allocate sequence value (%s): %w", sequence, err)
	}

	return next, nil
}

// LockRoomsTx takes a transaction-scoped advisory lock per room. Ids are locked in sorted order
// so two transactions asking for the same rooms cannot deadlock.
func (r *bookingRepository) LockRoomsTx(ctx context.Context, sqltx *sqlx.Tx, roomIDs []string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.LockRoomsTx")
	defer scope.End()

	sorted := slices.Clone(roomIDs)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryLockRoom)

	for _, roomID := range sorted {
		_, err := sqltx.NamedExecContext(ctx, queryLockRoom, map[string]any{"room_id": roomID})
		if err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return fmt.Errorf("failed to lock room %s: %w", roomID, err)
		}
	}

	return nil
}

func (r *bookingRepository) CountOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountOverlapping")
	defer scope.End()

	return r.countOverlapping(ctx, r.db.Read, roomID, checkIn, checkOut)
}

func (r *bookingRepository) CountOverlappingTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, checkIn, checkOut time.Time) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountOverlappingTx")
	defer scope.End()

	return r.countOverlapping(ctx, sqltx, roomID, checkIn, checkOut)
}

type namedPreparer interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

func (r *bookingRepository) countOverlapping(ctx context.Context, prep namedPreparer, roomID string, checkIn, checkOut time.Time) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.countOverlapping")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryCountOverlapping)

	prepare, err := prep.PrepareNamedContext(ctx, queryCountOverlapping)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	args := map[string]any{
		"room_id":   roomID,
		"released":  pq.Array(model.ReleasedStatuses),
		"check_in":  checkIn,
		"check_out": checkOut,
	}

	var count int

	err = prepare.GetContext(ctx, &count, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}

	return count, nil
}

// Statistics aggregates every booking, or only those of one homestay when homestayID is set.
func (r *bookingRepository) Statistics(ctx context.Context, homestayID string) (model.Statistics, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Statistics")
	defer scope.End()

	filter := gDto.FilterGroup{}
	if homestayID != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldHomestayID,
			Value:    homestayID,
			Operator: gDto.FilterOperatorEq,
		})
	}

	where, args := r.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf(queryStatistics, where)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var stats model.Statistics

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return stats, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &stats, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return stats, fmt.Errorf("failed to aggregate bookings: %w", err)
	}

	return stats, nil
}
