package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"homestay/internal/domains/booking/model"
	"homestay/internal/domains/booking/model/dto"
	"homestay/shared"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/failure"
	"homestay/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// stamp returns extra header columns for a transition. It may reject the booking it is given.
type stamp func(booking model.Booking, now time.Time) (map[string]any, error)

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.transition(ctx, id, req.Status, func(booking model.Booking, now time.Time) (map[string]any, error) {
		fields := map[string]any{}

		switch req.Status {
		case model.StatusCheckedIn:
			fields[model.FieldActualCheckIn] = now
		case model.StatusCheckedOut:
			fields[model.FieldActualCheckOut] = now
		case model.StatusCancelled:
			fields[model.FieldCancelledAt] = now

			reason := req.CancellationReason
			if reason == constant.Empty {
				reason = req.Reason
			}

			fields[model.FieldCancellationReason] = reason
		}

		if req.Reason != constant.Empty {
			fields[model.FieldNotes] = shared.AppendNote(booking.Notes, now, fmt.Sprintf("Status changed to %s: %s", req.Status, req.Reason))
		}

		return fields, nil
	})
}

func (s *serviceImpl) CheckIn(ctx context.Context, req dto.CheckInRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.transition(ctx, id, model.StatusCheckedIn, func(booking model.Booking, now time.Time) (map[string]any, error) {
		if booking.Status != model.StatusConfirmed {
			return nil, failure.BadRequestWithReason(failure.ReasonInvalidStatusChange, // nolint:wrapcheck
				fmt.Sprintf("only confirmed bookings can be checked in, booking is %s", booking.Status))
		}

		at, err := dto.ActualTime(req.ActualCheckIn, now)
		if err != nil {
			return nil, failure.BadRequest(err) // nolint:wrapcheck
		}

		fields := map[string]any{model.FieldActualCheckIn: at}
		if req.Notes != constant.Empty {
			fields[model.FieldNotes] = shared.AppendNote(booking.Notes, now, "Checked in: "+req.Notes)
		}

		return fields, nil
	})
}

func (s *serviceImpl) CheckOut(ctx context.Context, req dto.CheckOutRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.transition(ctx, id, model.StatusCheckedOut, func(booking model.Booking, now time.Time) (map[string]any, error) {
		if booking.Status != model.StatusCheckedIn {
			return nil, failure.BadRequestWithReason(failure.ReasonInvalidStatusChange, // nolint:wrapcheck
				fmt.Sprintf("only checked in bookings can be checked out, booking is %s", booking.Status))
		}

		at, err := dto.ActualTime(req.ActualCheckOut, now)
		if err != nil {
			return nil, failure.BadRequest(err) // nolint:wrapcheck
		}

		fields := map[string]any{model.FieldActualCheckOut: at}
		if req.Notes != constant.Empty {
			fields[model.FieldNotes] = shared.AppendNote(booking.Notes, now, "Checked out: "+req.Notes)
		}

		return fields, nil
	})
}

// transition moves a booking to status and rewrites the status of every room line to match, in
// the same transaction. The booking row stays locked until both writes are done.
func (s *serviceImpl) transition(ctx context.Context, id, status string, extra stamp) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	err := s.transactor.WithTx(ctx, nil, func(tx *sqlx.Tx) error {
		booking, err := s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return err //nolint:wrapcheck
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		fields, err := extra(booking, now)
		if err != nil {
			return err
		}

		if !model.CanTransition(booking.Status, status) {
			return failure.ConflictWithReason(failure.ReasonInvalidStatusChange, // nolint:wrapcheck
				fmt.Sprintf("cannot change booking status from %s to %s", booking.Status, status))
		}

		audit := map[string]any{
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}

		header := map[string]any{model.FieldStatus: status}
		maps.Copy(header, fields)
		maps.Copy(header, audit)

		if err = s.repo.UpdateTx(ctx, tx, header, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return err //nolint:wrapcheck
		}

		rooms := map[string]any{model.FieldStatus: model.LineStatusFor(status)}
		maps.Copy(rooms, audit)

		return s.roomLineRepo.UpdateTx(ctx, tx, rooms, gDto.FilterGroup{ //nolint:wrapcheck
			Filters: []any{
				gDto.Filter{Field: model.FieldBookingID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.BookingRoomTableName},
			},
		})
	})
	if err != nil {
		var fail *failure.Failure
		if errors.As(err, &fail) {
			return err
		}

		log.Error().Err(err).Str("status", status).Msg("failed to change booking status")

		return fmt.Errorf("failed to change booking status: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}
