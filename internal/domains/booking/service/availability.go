package service

//go:generate go run go.uber.org/mock/mockgen -source=./availability.go -destination=./mocks/availability_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"homestay/infras/otel"
	"homestay/internal/domains/booking/repository"
	roomModel "homestay/internal/domains/room/model"
	roomRepository "homestay/internal/domains/room/repository"
	"homestay/shared"
	"homestay/shared/constant"
	"homestay/shared/failure"

	"github.com/jmoiron/sqlx"
)

// Availability answers whether a room can take a stay. A room is unavailable while it is blocked
// or under maintenance, or while a live booking covers any night of the requested range.
type Availability interface {
	IsAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
	AssertAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) error
	Check(ctx context.Context, sqltx *sqlx.Tx, room roomModel.Room, checkIn, checkOut time.Time) error
}

type availabilityImpl struct {
	repo     repository.Booking
	roomRepo roomRepository.Room
	otel     otel.Otel
}

func NewAvailability(repo repository.Booking, roomRepo roomRepository.Room, otel otel.Otel) Availability {
	return &availabilityImpl{
		repo:     repo,
		roomRepo: roomRepo,
		otel:     otel,
	}
}

// IsAvailable reports unavailability as false. Errors are returned only for an invalid range, an
// unknown room or a failed lookup.
func (a *availabilityImpl) IsAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsAvailable")
	defer scope.End()

	err := a.AssertAvailable(ctx, roomID, checkIn, checkOut)
	if failure.HasReason(err, failure.ReasonRoomBlocked) || failure.HasReason(err, failure.ReasonRoomBooked) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

func (a *availabilityImpl) AssertAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) (err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssertAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validateStay(checkIn, checkOut); err != nil {
		return err
	}

	room, err := a.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	return a.check(room, checkIn, checkOut, func() (int, error) {
		return a.repo.CountOverlapping(ctx, room.ID, checkIn, checkOut) //nolint:wrapcheck
	})
}

// Check runs the same rules against an already resolved room, counting overlaps inside sqltx so
// the result is consistent with the locks the transaction holds.
func (a *availabilityImpl) Check(ctx context.Context, sqltx *sqlx.Tx, room roomModel.Room, checkIn, checkOut time.Time) (err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Check")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validateStay(checkIn, checkOut); err != nil {
		return err
	}

	return a.check(room, checkIn, checkOut, func() (int, error) {
		return a.repo.CountOverlappingTx(ctx, sqltx, room.ID, checkIn, checkOut) //nolint:wrapcheck
	})
}

func (a *availabilityImpl) check(room roomModel.Room, checkIn, checkOut time.Time, countOverlapping func() (int, error)) error {
	if !room.Selectable() {
		return failure.ConflictWithReason(failure.ReasonRoomBlocked, fmt.Sprintf("room %s is %s", room.RoomNumber, room.Status)) // nolint:wrapcheck
	}

	overlapping, err := countOverlapping()
	if err != nil {
		return fmt.Errorf("failed to check room availability: %w", err)
	}

	if overlapping > 0 {
		return failure.ConflictWithReason(failure.ReasonRoomBooked, fmt.Sprintf("room %s is already booked between %s and %s", // nolint:wrapcheck
			room.RoomNumber, checkIn.Format(constant.DateOnlyFormat), checkOut.Format(constant.DateOnlyFormat)))
	}

	return nil
}

func validateStay(checkIn, checkOut time.Time) error {
	if !checkOut.After(checkIn) {
		return failure.BadRequestWithReason(failure.ReasonInvalidDateRange, "check-out date must be after check-in date") // nolint:wrapcheck
	}

	return nil
}
