package dto

import (
	"net/http"
	"strconv"
	"strings"

	"homestay/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"

	MaxLimit = 100
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty,min=1"`
	Limit   int    `json:"limit"    validate:"omitempty,min=1,max=100"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit, sort_by and sort_dir from the query string. Invalid values are
// ignored and limit is capped at MaxLimit. With defaultRequest the list falls back to the first
// page of the newest rows.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page, err := strconv.Atoi(queryParams.Get(constant.RequestParamPage)); err == nil && page > 0 {
		q.Page = page
	}

	if limit, err := strconv.Atoi(queryParams.Get(constant.RequestParamLimit)); err == nil && limit > 0 {
		q.Limit = min(limit, MaxLimit)
	}

	if sortBy := strings.TrimSpace(queryParams.Get(constant.RequestParamSortBy)); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := strings.ToUpper(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	if !defaultRequest {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}

	if q.SortBy == "" {
		q.SortBy = constant.DefaultValueSortBy
	}

	if q.SortDir == "" {
		q.SortDir = constant.DefaultValueSortDir
	}
}

// Offset is the number of rows skipped before the current page.
func (q QueryParams) Offset() int {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}
