package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"strconv"

	"homestay/internal/domains/booking/model"
	"homestay/internal/domains/booking/model/dto"
	"homestay/shared"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/failure"
	gModel "homestay/shared/model"
	"homestay/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// AddPayment records money received for a booking, or returned to the guest for a refund, and
// settles the booking balance in the same transaction. The first positive payment confirms a
// pending booking.
func (s *serviceImpl) AddPayment(ctx context.Context, req dto.CreatePaymentRequest, id string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddPayment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	paidAt, err := dto.ActualTime(req.PaymentDate, now)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	payment := model.Payment{
		ID:            uuid.NewString(),
		BookingID:     id,
		Amount:        req.Amount,
		PaymentType:   valueOr(req.PaymentType, model.PaymentTypePartial),
		PaymentMethod: valueOr(req.PaymentMethod, model.PaymentMethodCash),
		Status:        model.PaymentStatusCompleted,
		TransactionID: req.TransactionID,
		PaymentDate:   paidAt,
		Notes:         req.Notes,
		Metadata:      gModel.NewMetadata(user, now),
	}

	err = s.transactor.WithTx(ctx, nil, func(tx *sqlx.Tx) error {
		booking, err := s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return err //nolint:wrapcheck
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		if booking.Status == model.StatusCancelled {
			return failure.BadRequestWithReason(failure.ReasonInvalidStatusChange, "cannot add a payment to a cancelled booking") // nolint:wrapcheck
		}

		paid := booking.PaidAmount.Add(payment.Signed())
		if paid.IsNegative() {
			return failure.BadRequestFromString(fmt.Sprintf("refund %s exceeds the paid amount %s", // nolint:wrapcheck
				payment.Amount.StringFixed(2), booking.PaidAmount.StringFixed(2)))
		}

		booking.Settle(paid)

		payment.Reference, err = s.nextReference(ctx, tx, model.SequencePaymentReference, s.cfg.Booking.PaymentPrefix, model.DefaultPaymentReference, now)
		if err != nil {
			return err
		}

		if err = s.paymentRepo.InsertTx(ctx, tx, payment); err != nil {
			return err //nolint:wrapcheck
		}

		fields := map[string]any{
			model.FieldPaidAmount:        booking.PaidAmount,
			model.FieldBalanceAmount:     booking.BalanceAmount,
			model.FieldIsPaymentComplete: booking.IsPaymentComplete,
			constant.FieldModifiedAt:     now,
			constant.FieldModifiedBy:     user,
		}

		// Confirmation keeps every line reserved, so only the header changes.
		if booking.Status == model.StatusPending && payment.Signed().IsPositive() {
			fields[model.FieldStatus] = model.StatusConfirmed
		}

		return s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
	})
	if err != nil {
		var fail *failure.Failure
		if errors.As(err, &fail) {
			return res, err
		}

		log.Error().Err(err).Msg("failed to add payment")

		return res, fmt.Errorf("failed to add payment: %w", err)
	}

	s.invalidate(ctx, id)
	res.FromModel(payment)

	return res, nil
}

func (s *serviceImpl) ListPayments(ctx context.Context, req gDto.QueryParams, id string) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListPayments")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.getBooking(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return res, err
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldBookingID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.PaymentTableName},
		},
	}

	total, err := s.paymentRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	payments, err := s.paymentRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.Payments = make([]dto.PaymentResponse, len(payments))
	for i, payment := range payments {
		res.Payments[i].FromModel(payment)
	}

	res.TotalData = total
	res.TotalPage = shared.CalculateTotalPage(total, req.Limit)

	return res, nil
}

// UploadReceipt stores a receipt for a payment and replaces the previous one.
func (s *serviceImpl) UploadReceipt(ctx context.Context, file multipart.File, header *multipart.FileHeader, id, paymentID string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadReceipt")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	payment, err := s.paymentRepo.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: paymentID, Operator: gDto.FilterOperatorEq, Table: model.PaymentTableName},
			gDto.Filter{Field: model.FieldBookingID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.PaymentTableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return res, failure.NotFound("payment not found") // nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName
	fileName := payment.Reference + "-" + strconv.FormatInt(timezone.Now().Unix(), 10) + path.Ext(header.Filename)

	url, err := s.s3.UploadFile(ctx, bucketName, receiptDirectory, file, header, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload receipt to S3")

		return res, fmt.Errorf("failed to upload receipt to S3: %w", err)
	}

	now := timezone.Now()
	fields := map[string]any{
		model.FieldReceiptURL:    url,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	if err = s.paymentRepo.Update(ctx, fields, shared.FilterByID(paymentID, model.FieldID, model.PaymentTableName)); err != nil {
		log.Error().Err(err).Msg("failed to save receipt")
		s.deleteReceipt(ctx, url)

		return res, fmt.Errorf("failed to save receipt: %w", err)
	}

	s.deleteReceipt(ctx, payment.ReceiptURL)

	payment.ReceiptURL = url
	payment.ModifiedAt = now
	payment.ModifiedBy = user
	res.FromModel(payment)

	return res, nil
}

func (s *serviceImpl) deleteReceipt(ctx context.Context, url string) {
	if url == constant.Empty {
		return
	}

	bucketName := s.cfg.External.S3.BucketName

	objectName := s.s3.GetObjectNameFromURL(bucketName, url)
	if objectName == constant.Empty {
		log.Warn().Str("url", url).Msg("failed to extract object name from URL")

		return
	}

	if err := s.s3.DeleteFile(ctx, bucketName, constant.Empty, objectName); err != nil {
		log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete receipt from S3")
	}
}

func valueOr(value, fallback string) string {
	if value == constant.Empty {
		return fallback
	}

	return value
}
