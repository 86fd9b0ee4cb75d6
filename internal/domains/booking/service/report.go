package service

import (
	"context"
	"errors"
	"fmt"

	jwtInfra "homestay/infras/jwt"
	"homestay/internal/domains/booking/model"
	"homestay/internal/domains/booking/model/dto"
	"homestay/shared"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/failure"
	"homestay/shared/timezone"

	"github.com/rs/zerolog/log"
)

func (s *serviceImpl) Statistics(ctx context.Context, homestayID string) (res dto.StatisticsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Statistics")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if homestayID != constant.Empty {
		if _, err = s.homestay.Get(ctx, homestayID); err != nil {
			return res, err //nolint:wrapcheck
		}
	}

	stats, err := s.repo.Statistics(ctx, homestayID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking statistics")

		return res, fmt.Errorf("failed to get booking statistics: %w", err)
	}

	res.FromModel(stats)

	return res, nil
}

// TodayCheckIns lists confirmed bookings arriving today.
func (s *serviceImpl) TodayCheckIns(ctx context.Context) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TodayCheckIns")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.arrivingOrLeaving(ctx, model.StatusConfirmed, model.FieldCheckInDate)
}

// TodayCheckOuts lists checked in bookings leaving today.
func (s *serviceImpl) TodayCheckOuts(ctx context.Context) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TodayCheckOuts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.arrivingOrLeaving(ctx, model.StatusCheckedIn, model.FieldCheckOutDate)
}

func (s *serviceImpl) arrivingOrLeaving(ctx context.Context, status, dateField string) ([]dto.BookingResponse, error) {
	filter := gDto.And(
		gDto.Filter{Field: model.FieldStatus, Value: status, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: dateField, Value: timezone.Today(), Operator: gDto.FilterOperatorEq, Table: model.TableName},
	)

	params := gDto.QueryParams{SortBy: model.FieldReference, SortDir: gDto.SortDirAsc}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("status", status).Msg("failed to get today's bookings")

		return nil, fmt.Errorf("failed to get today's bookings: %w", err)
	}

	return toResponses(bookings), nil
}

// Voucher signs a guest voucher for a booking. The token stays valid until a while after
// check-out.
func (s *serviceImpl) Voucher(ctx context.Context, id string) (res dto.VoucherResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Voucher")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.getBooking(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return res, err
	}

	if booking.Status == model.StatusCancelled || booking.Status == model.StatusNoShow {
		return res, failure.BadRequestWithReason(failure.ReasonInvalidStatusChange, // nolint:wrapcheck
			fmt.Sprintf("cannot issue a voucher for a %s booking", booking.Status))
	}

	token, expiresAt, err := s.jwt.SignVoucher(jwtInfra.VoucherClaims{
		BookingID:    booking.ID,
		Reference:    booking.Reference,
		HomestayID:   booking.HomestayID,
		GuestName:    booking.GuestName,
		CheckInDate:  timezone.FormatDate(booking.CheckInDate),
		CheckOutDate: timezone.FormatDate(booking.CheckOutDate),
	}, booking.CheckOutDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to sign voucher")

		return res, fmt.Errorf("failed to sign voucher: %w", err)
	}

	return dto.VoucherResponse{Token: token, ExpiresAt: timezone.Format(expiresAt, constant.DateFormat)}, nil
}

// VerifyVoucher checks a voucher signature and returns the booking it was issued for with its
// current status. Vouchers of bookings cancelled after issue are rejected.
func (s *serviceImpl) VerifyVoucher(ctx context.Context, token string) (res dto.VoucherDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyVoucher")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwt.VerifyVoucher(token)
	if errors.Is(err, jwtInfra.ErrExpiredToken) {
		return res, failure.Unauthorized("voucher has expired") // nolint:wrapcheck
	}

	if err != nil {
		return res, failure.Unauthorized("invalid voucher") // nolint:wrapcheck
	}

	booking, err := s.getBooking(ctx, shared.FilterByID(claims.BookingID, model.FieldID, model.TableName))
	if err != nil {
		return res, err
	}

	if booking.Status == model.StatusCancelled {
		return res, failure.Unauthorized("booking was cancelled") // nolint:wrapcheck
	}

	return dto.VoucherDetailResponse{
		BookingID:    booking.ID,
		Reference:    booking.Reference,
		HomestayID:   booking.HomestayID,
		GuestName:    booking.GuestName,
		CheckInDate:  timezone.FormatDate(booking.CheckInDate),
		CheckOutDate: timezone.FormatDate(booking.CheckOutDate),
		Status:       booking.Status,
	}, nil
}
