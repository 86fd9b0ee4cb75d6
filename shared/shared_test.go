package shared_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"homestay/shared"
	cacheMocks "homestay/shared/cache/mocks"
	"homestay/shared/constant"
	"homestay/shared/dto"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "true", input: "true", expected: boolPtr(true)},
		{name: "false", input: "false", expected: boolPtr(false)},
		{name: "numeric true", input: "1", expected: boolPtr(true)},
		{name: "upper case false", input: "FALSE", expected: boolPtr(false)},
		{name: "invalid string returns nil", input: "blocked", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				assert.Nil(t, result)

				return
			}

			if assert.NotNil(t, result) {
				assert.Equal(t, *tt.expected, *result)
			}
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{name: "plain number", input: "4", expected: 4},
		{name: "surrounding spaces", input: " 12 ", expected: 12},
		{name: "negative", input: "-1", expected: -1},
		{name: "empty", input: "", wantErr: true},
		{name: "not a number", input: "two", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := shared.ConvertStringToInt(tt.input)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "negative limit returns 1", total: 100, limit: -5, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
		{name: "limit greater than total", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRoom struct {
		RoomName string `db:"room_name"`
		Capacity *int   `db:"capacity"`
		Status   string `db:"status"`
		Image    string
	}

	capacity := 0

	result := shared.TransformFields(updateRoom{
		RoomName: "Garden View",
		Capacity: &capacity,
		Image:    "ignored",
	}, "front-desk")

	assert.Equal(t, "Garden View", result["room_name"])
	assert.Equal(t, &capacity, result["capacity"])
	assert.NotContains(t, result, "status")
	assert.NotContains(t, result, "Image")
	assert.Equal(t, "front-desk", result[constant.FieldModifiedBy])

	_, ok := result[constant.FieldModifiedAt].(time.Time)
	assert.True(t, ok, "modified_at must be a time.Time")
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("550e8400-e29b-41d4-a716-446655440000", "id", "rooms")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "550e8400-e29b-41d4-a716-446655440000",
				Operator: dto.FilterOperatorEq,
				Table:    "rooms",
			},
		},
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %+v, got %+v", expected, result)
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get", shared.BuildCacheKey("booking:get"))
	assert.Equal(t, "booking:get:abc", shared.BuildCacheKey("booking:get", "abc"))
	assert.Equal(t, "limiter:10.0.0.1:curl", shared.BuildCacheKey("limiter", "10.0.0.1", "curl"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: dto.SortDirDesc}

	statusFilter := func(status string) dto.FilterGroup {
		return dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "status", Value: status, Operator: dto.FilterOperatorEq, Table: "bookings"},
			},
		}
	}

	pending := shared.BuildCacheKeyWithQuery("booking:gets", params, statusFilter("pending"))

	assert.True(t, strings.HasPrefix(pending, "booking:gets:1:10:created_at:DESC:"))
	assert.Equal(t, pending, shared.BuildCacheKeyWithQuery("booking:gets", params, statusFilter("pending")))
	assert.NotEqual(t, pending, shared.BuildCacheKeyWithQuery("booking:gets", params, statusFilter("confirmed")))

	params.Page = 2
	assert.NotEqual(t, pending, shared.BuildCacheKeyWithQuery("booking:gets", params, statusFilter("pending")))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().
		Clear(gomock.Any(), "room:gets*").
		Return(nil)

	mockCache.EXPECT().
		Clear(gomock.Any(), "room:count*").
		Return(errors.New("redis down"))

	shared.InvalidateCaches(context.Background(), mockCache, "room:gets")
	shared.InvalidateCaches(context.Background(), mockCache, "room:count")
}

func boolPtr(b bool) *bool {
	return &b
}

func TestAppendNote(t *testing.T) {
	at := time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC)

	first := shared.AppendNote("", at, "Status changed to lost: went elsewhere")
	assert.Equal(t, "[2025-01-10T09:30:00Z] Status changed to lost: went elsewhere", first)

	second := shared.AppendNote(first, at.Add(time.Hour), "called back")
	assert.Equal(t, first+"\n\n[2025-01-10T10:30:00Z] called back", second)
}
