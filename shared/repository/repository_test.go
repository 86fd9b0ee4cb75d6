package repository

import (
	"context"
	"testing"

	otelMocks "homestay/infras/otel/mocks"
	"homestay/infras/postgres"
	"homestay/shared/dto"
	"homestay/shared/model"

	"github.com/stretchr/testify/assert"
)

type bookedRoom struct {
	ID         string `db:"id"`
	BookingID  string `db:"booking_id"`
	RoomNumber string `db:"room_number" table:"rooms" column:"number"`
	Guests     int    `db:"guests"`
	model.Metadata
}

func (bookedRoom) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = booking_rooms.room_id"
}

func newTestRepository() Repository[bookedRoom] {
	return NewRepository[bookedRoom]("booking_room", "booking_rooms", "id", &postgres.Connection{}, otelMocks.NewOtel())
}

func TestNewRepository(t *testing.T) {
	repo := newTestRepository()

	assert.Equal(t, "JOIN rooms ON rooms.id = booking_rooms.room_id", repo.join)
	assert.Equal(t,
		[]string{"id", "booking_id", "guests", "created_at", "modified_at", "created_by", "modified_by"},
		repo.InsertColumns,
	)
}

func TestRepository_getSelectQuery(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	assert.Equal(t,
		"booking_rooms.id, booking_rooms.booking_id, rooms.number AS room_number, booking_rooms.guests, "+
			"booking_rooms.created_at, booking_rooms.modified_at, booking_rooms.created_by, booking_rooms.modified_by",
		repo.getSelectQuery(ctx),
	)
	assert.Equal(t, "booking_rooms.id, rooms.number AS room_number", repo.getSelectQuery(ctx, "id", "number"))
}

func TestRepository_insertQuery(t *testing.T) {
	repo := newTestRepository()

	assert.Equal(t,
		"INSERT INTO booking_rooms (id, booking_id, guests, created_at, modified_at, created_by, modified_by) "+
			"VALUES (:id, :booking_id, :guests, :created_at, :modified_at, :created_by, :modified_by)",
		repo.insertQuery(),
	)
}

func TestRepository_sortable(t *testing.T) {
	repo := newTestRepository()

	assert.True(t, repo.sortable("created_at"))
	assert.False(t, repo.sortable("number"), "joined columns are not sortable")
	assert.False(t, repo.sortable("id; DROP TABLE bookings"))
}

func TestRepository_BuildWhereClause(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	where, args := repo.BuildWhereClause(ctx, dto.And(
		dto.Filter{Field: "booking_id", Value: "b1", Operator: dto.FilterOperatorEq, Table: "booking_rooms"},
	))

	assert.Equal(t, " WHERE (booking_rooms.booking_id = :booking_id) ", where)
	assert.Equal(t, map[string]any{"booking_id": "b1"}, args)

	where, args = repo.BuildWhereClause(ctx, dto.And())
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestRepository_WritesRequireFilter(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	assert.ErrorIs(t, repo.Delete(ctx, dto.And()), errRequiredFilter)
	assert.ErrorIs(t, repo.Update(ctx, map[string]any{"guests": 2}, dto.And()), errRequiredFilter)

	_, err := repo.Exist(ctx, dto.And())
	assert.ErrorIs(t, err, errRequiredFilter)
}
