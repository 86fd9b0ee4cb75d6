package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"homestay/infras/otel"
	"homestay/infras/postgres"
	"homestay/internal/domains/homestay/model"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/logger"
	gRepo "homestay/shared/repository"
	"homestay/shared/timezone"
)

const queryRefreshRoomCount = `UPDATE homestays
SET total_rooms = (SELECT COUNT(rooms.id) FROM rooms WHERE rooms.homestay_id = :id), modified_at = :modified_at
WHERE id = :id`

type Homestay interface {
	Insert(ctx context.Context, model model.Homestay) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Homestay, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Homestay, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	RefreshRoomCount(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Homestay]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Homestay {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Homestay](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// RefreshRoomCount recomputes total_rooms from the rooms table.
func (r *repositoryImpl) RefreshRoomCount(ctx context.Context, id string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".homestay.RefreshRoomCount")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRefreshRoomCount)

	_, err := r.db.Write.NamedExecContext(ctx, queryRefreshRoomCount, map[string]any{
		"id":          id,
		"modified_at": timezone.Now(),
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to refresh room count (%s): %w", model.EntityName, err)
	}

	return nil
}
