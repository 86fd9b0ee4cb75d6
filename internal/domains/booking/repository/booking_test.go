package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"homestay/infras/otel/mocks"
	"homestay/infras/postgres"
	"homestay/internal/domains/booking/model"
	"homestay/internal/domains/booking/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overlapPredicate = `WHERE booking_rooms.room_id = $1
	AND bookings.status <> ALL($2)
	AND bookings.check_in_date < $3
	AND bookings.check_out_date > $4`

func newBookingRepository(t *testing.T) (repository.Booking, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	conn := sqlx.NewDb(db, "postgres")
	t.Cleanup(func() { _ = conn.Close() })

	return repository.New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), conn, mock
}

func day(value string) time.Time {
	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func TestBooking_CountOverlapping(t *testing.T) {
	// A stay is compared against a booking of 2025-01-10 to 2025-01-15. The new check-out binds to
	// the stored check-in and the new check-in to the stored check-out, both strictly.
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		count    int
	}{
		{name: "arrival on the departure day", checkIn: "2025-01-15", checkOut: "2025-01-18", count: 0},
		{name: "departure on the arrival day", checkIn: "2025-01-07", checkOut: "2025-01-10", count: 0},
		{name: "straddles the departure", checkIn: "2025-01-14", checkOut: "2025-01-16", count: 1},
		{name: "inside the stay", checkIn: "2025-01-11", checkOut: "2025-01-12", count: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, mock := newBookingRepository(t)
			checkIn, checkOut := day(tt.checkIn), day(tt.checkOut)

			mock.ExpectPrepare(regexp.QuoteMeta(overlapPredicate)).
				ExpectQuery().
				WithArgs("room-101", pq.Array(model.ReleasedStatuses), checkOut, checkIn).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			count, err := repo.CountOverlapping(context.Background(), "room-101", checkIn, checkOut)

			require.NoError(t, err)
			assert.Equal(t, tt.count, count)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBooking_CountOverlappingIgnoresReleasedBookings(t *testing.T) {
	assert.ElementsMatch(t, []string{model.StatusCancelled, model.StatusCheckedOut}, model.ReleasedStatuses)

	repo, conn, mock := newBookingRepository(t)

	mock.ExpectBegin()
	mock.ExpectPrepare(regexp.QuoteMeta("bookings.status <> ALL($2)")).
		ExpectQuery().
		WithArgs("room-101", "{\"cancelled\",\"checked_out\"}", day("2025-01-18"), day("2025-01-15")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	tx, err := conn.Beginx()
	require.NoError(t, err)

	count, err := repo.CountOverlappingTx(context.Background(), tx, "room-101", day("2025-01-15"), day("2025-01-18"))

	require.NoError(t, err)
	assert.Zero(t, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBooking_CountOverlappingError(t *testing.T) {
	repo, _, mock := newBookingRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta(overlapPredicate)).
		ExpectQuery().
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CountOverlapping(context.Background(), "room-101", day("2025-01-10"), day("2025-01-15"))

	assert.ErrorContains(t, err, "failed to count overlapping bookings")
}

func TestBooking_LockRoomsTx(t *testing.T) {
	repo, conn, mock := newBookingRepository(t)

	mock.ExpectBegin()

	for _, roomID := range []string{"room-101", "room-102", "room-205"} {
		mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1))")).
			WithArgs(roomID).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	tx, err := conn.Beginx()
	require.NoError(t, err)

	err = repo.LockRoomsTx(context.Background(), tx, []string{"room-205", "room-101", "room-102", "room-101"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
