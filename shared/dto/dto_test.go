package dto_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"homestay/shared/constant"
	"homestay/shared/dto"
	"homestay/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		metadata   model.Metadata
		modifiedAt string
		modifiedBy string
	}{
		{
			name:     "never modified",
			metadata: model.NewMetadata("reception-1", createdAt),
		},
		{
			name: "modified later",
			metadata: model.Metadata{
				CreatedAt:  createdAt,
				CreatedBy:  "reception-1",
				ModifiedAt: createdAt.Add(time.Hour),
				ModifiedBy: "reception-2",
			},
			modifiedAt: createdAt.Add(time.Hour).Format(constant.DateFormat),
			modifiedBy: "reception-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metadata := dto.Metadata{}
			metadata.FromModel(tt.metadata)

			assert.Equal(t, createdAt.Format(constant.DateFormat), metadata.CreatedAt)
			assert.Equal(t, "reception-1", metadata.CreatedBy)
			assert.Equal(t, tt.modifiedAt, metadata.ModifiedAt)
			assert.Equal(t, tt.modifiedBy, metadata.ModifiedBy)
		})
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	defaults := dto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   constant.DefaultValueLimit,
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}

	tests := []struct {
		name           string
		query          url.Values
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    url.Values{"page": {"2"}, "limit": {"20"}, "sort_by": {"check_in_date"}, "sort_dir": {"asc"}},
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "check_in_date", SortDir: dto.SortDirAsc},
		},
		{
			name:           "defaults",
			query:          url.Values{},
			defaultRequest: true,
			expected:       defaults,
		},
		{
			name:     "no defaults",
			query:    url.Values{},
			expected: dto.QueryParams{},
		},
		{
			name:           "invalid values fall back to defaults",
			query:          url.Values{"page": {"-1"}, "limit": {"ten"}, "sort_dir": {"sideways"}},
			defaultRequest: true,
			expected:       defaults,
		},
		{
			name:     "limit is capped",
			query:    url.Values{"limit": {"5000"}},
			expected: dto.QueryParams{Limit: dto.MaxLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/bookings?"+tt.query.Encode(), nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	assert.Equal(t, 0, dto.QueryParams{}.Offset())
	assert.Equal(t, 0, dto.QueryParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, dto.QueryParams{Page: 3, Limit: 10}.Offset())
}

func TestFilter_GetWhereClause(t *testing.T) {
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		filter   dto.Filter
		where    string
		expected map[string]any
	}{
		{
			name:     "equal with table",
			filter:   dto.Filter{Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq, Table: "bookings"},
			where:    "bookings.status = :status",
			expected: map[string]any{"status": "confirmed"},
		},
		{
			name:     "like",
			filter:   dto.Filter{Field: "guest_name", Value: "asha", Operator: dto.FilterOperatorLike},
			where:    "LOWER(guest_name) LIKE LOWER(:guest_name) ",
			expected: map[string]any{"guest_name": "%asha%"},
		},
		{
			name:     "in",
			filter:   dto.Filter{Field: "status", Value: []string{"pending", "confirmed"}, Operator: dto.FilterOperatorIn},
			where:    "status IN (:status_0, :status_1) ",
			expected: map[string]any{"status_0": "pending", "status_1": "confirmed"},
		},
		{
			name:     "range bound with arg name",
			filter:   dto.Filter{ArgName: "check_in_from", Field: "check_in_date", Value: day, Operator: dto.FilterOperatorGreaterEq},
			where:    "check_in_date >= :check_in_from",
			expected: map[string]any{"check_in_from": day},
		},
		{
			name:     "is null",
			filter:   dto.Filter{Field: "receipt_url", Operator: dto.FilterIsNull, Table: "payments"},
			where:    "payments.receipt_url IS NULL",
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.where, where)
			assert.Equal(t, tt.expected, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.And(
		dto.Filter{Field: "homestay_id", Value: "h1", Operator: dto.FilterOperatorEq},
		dto.Or(
			dto.Filter{ArgName: "q_name", Field: "name", Value: "asha", Operator: dto.FilterOperatorLike},
			dto.Filter{ArgName: "q_phone", Field: "phone", Value: "98", Operator: dto.FilterOperatorLike},
		),
	)

	where, args := group.GetWhereClause()

	assert.Equal(t, "(homestay_id = :homestay_id AND (LOWER(name) LIKE LOWER(:q_name)  OR LOWER(phone) LIKE LOWER(:q_phone) ))", where)
	assert.Equal(t, map[string]any{"homestay_id": "h1", "q_name": "%asha%", "q_phone": "%98%"}, args)

	empty := dto.And()
	where, _ = empty.GetWhereClause()
	assert.Empty(t, where)
}
