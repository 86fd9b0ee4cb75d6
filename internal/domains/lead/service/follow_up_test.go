package service_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"
	"time"

	"homestay/internal/domains/lead/model"
	"homestay/internal/domains/lead/model/dto"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/failure"
	"homestay/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const followUpID = "6c5d4e3f-2a1b-4c0d-9e8f-7a6b5c4d3e2f"

var frontDeskClock = time.Date(2025, 3, 4, 9, 30, 0, 0, time.UTC)

func (f fixture) expectTx() {
	f.transactor.EXPECT().
		WithTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sql.TxOptions, fn func(*sqlx.Tx) error) error {
			return fn(nil)
		})
}

func deskContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "front-desk")
}

func TestLeadService_CreateFollowUp(t *testing.T) {
	restore := timezone.SetClock(func() time.Time { return frontDeskClock })
	defer restore()

	next := "2025-03-06T10:00:00Z"

	tests := []struct {
		name       string
		req        dto.CreateFollowUpRequest
		lead       model.Lead
		wantStatus string
		wantCode   int
	}{
		{
			name:       "interested caller is qualified",
			req:        dto.CreateFollowUpRequest{Type: model.FollowUpCall, Outcome: model.OutcomeInterested, Notes: "wants the garden room", NextFollowUpDate: next},
			lead:       model.Lead{ID: leadID, Status: model.StatusContacted},
			wantStatus: model.StatusQualified,
		},
		{
			name:       "not interested is lost",
			req:        dto.CreateFollowUpRequest{Type: model.FollowUpWhatsApp, Outcome: model.OutcomeNotInterested, Notes: "booked elsewhere"},
			lead:       model.Lead{ID: leadID, Status: model.StatusQualified},
			wantStatus: model.StatusLost,
		},
		{
			name:       "confirmed booking converts",
			req:        dto.CreateFollowUpRequest{Type: model.FollowUpMeeting, Outcome: model.OutcomeBookingConfirmed, Notes: "paid advance"},
			lead:       model.Lead{ID: leadID, Status: model.StatusNegotiation},
			wantStatus: model.StatusConverted,
		},
		{
			name: "no answer leaves status alone",
			req:  dto.CreateFollowUpRequest{Type: model.FollowUpCall, Outcome: model.OutcomeNoAnswer, Notes: "rang twice"},
			lead: model.Lead{ID: leadID, Status: model.StatusContacted},
		},
		{
			name: "converted lead keeps its status",
			req:  dto.CreateFollowUpRequest{Type: model.FollowUpEmail, Outcome: model.OutcomeNotInterested, Notes: "asked about another date"},
			lead: model.Lead{ID: leadID, Status: model.StatusConverted},
		},
		{
			name:     "unknown lead",
			req:      dto.CreateFollowUpRequest{Type: model.FollowUpNote, Notes: "walked in"},
			lead:     model.Lead{},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectTx()

			f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.lead, nil)

			if tt.wantCode == 0 {
				f.followUps.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, followUp model.FollowUp) error {
						assert.Equal(t, leadID, followUp.LeadID)
						assert.WithinDuration(t, frontDeskClock, followUp.FollowUpDate, 0)
						assert.Equal(t, "front-desk", followUp.PerformedBy)

						return nil
					})
				f.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.WithinDuration(t, frontDeskClock, fields[model.FieldLastContact].(time.Time), 0)

						status, changed := fields[model.FieldStatus]
						assert.Equal(t, tt.wantStatus != "", changed)

						if changed {
							assert.Equal(t, tt.wantStatus, status)
						}

						_, converted := fields[model.FieldConvertedAt]
						assert.Equal(t, tt.wantStatus == model.StatusConverted, converted)

						if tt.req.NextFollowUpDate != "" {
							assert.WithinDuration(t, time.Date(2025, 3, 6, 10, 0, 0, 0, time.UTC), fields[model.FieldNextFollowUp].(time.Time), 0)
						}

						return nil
					})
			}

			res, err := f.svc.CreateFollowUp(deskContext(), tt.req, leadID)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.req.Type, res.Type)
			assert.Equal(t, tt.req.Notes, res.Notes)
		})
	}
}

func TestLeadService_CreateFollowUpRejectsBadDate(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateFollowUp(deskContext(), dto.CreateFollowUpRequest{Type: model.FollowUpCall, Notes: "call back", FollowUpDate: "tomorrow"}, leadID)

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestLeadService_CreateFollowUpStoreFailure(t *testing.T) {
	f := newFixture(t)
	f.expectTx()

	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedLead(), nil)
	f.followUps.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	_, err := f.svc.CreateFollowUp(deskContext(), dto.CreateFollowUpRequest{Type: model.FollowUpCall, Notes: "call back"}, leadID)

	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestLeadService_ListFollowUps(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedLead(), nil)
	f.followUps.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.FollowUp, error) {
			assert.Equal(t, model.FieldFollowUpDate, params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.FollowUp{
				{ID: followUpID, LeadID: leadID, Type: model.FollowUpCall, Notes: "second call", FollowUpDate: frontDeskClock},
				{ID: "1d2c3b4a-5e6f-4a7b-8c9d-0e1f2a3b4c5d", LeadID: leadID, Type: model.FollowUpEmail, Notes: "brochure", FollowUpDate: frontDeskClock.Add(-48 * time.Hour)},
			}, nil
		})

	res, err := f.svc.ListFollowUps(context.Background(), leadID)

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, followUpID, res[0].ID)
}

func TestLeadService_GetFollowUp(t *testing.T) {
	f := newFixture(t)

	f.followUps.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.FollowUp{}, nil)

	_, err := f.svc.GetFollowUp(context.Background(), leadID, followUpID)

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestLeadService_Assign(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedLead(), nil)
	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, "sales-2", fields[model.FieldAssignedTo])
			assert.Equal(t, "front-desk", fields[constant.FieldModifiedBy])

			return nil
		})

	err := f.svc.Assign(deskContext(), dto.AssignLeadRequest{AssignedTo: "sales-2"}, leadID)

	assert.NoError(t, err)
}

func TestLeadService_UpcomingFollowUps(t *testing.T) {
	restore := timezone.SetClock(func() time.Time { return frontDeskClock })
	defer restore()

	f := newFixture(t)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Lead, error) {
			_, args := filter.GetWhereClause()

			assert.Equal(t, model.FieldNextFollowUp, params.SortBy)
			assert.Equal(t, gDto.SortDirAsc, params.SortDir)
			assert.Equal(t, model.StatusContacted, args["status_0"])
			assert.Equal(t, model.StatusQualified, args["status_1"])
			assert.WithinDuration(t, frontDeskClock, args["due_from"].(time.Time), 0)
			assert.WithinDuration(t, frontDeskClock.Add(7*24*time.Hour), args["due_until"].(time.Time), 0)

			due := frontDeskClock.Add(26 * time.Hour)

			return []model.Lead{{ID: leadID, Status: model.StatusQualified, NextFollowUpAt: &due}}, nil
		})

	res, err := f.svc.UpcomingFollowUps(context.Background())

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, timezone.Format(frontDeskClock.Add(26*time.Hour), constant.DateFormat), res[0].NextFollowUp)
}

func TestLeadService_OverdueFollowUps(t *testing.T) {
	restore := timezone.SetClock(func() time.Time { return frontDeskClock })
	defer restore()

	f := newFixture(t)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Lead, error) {
			_, args := filter.GetWhereClause()

			assert.WithinDuration(t, frontDeskClock, args["due_until"].(time.Time), 0)
			assert.NotContains(t, args, "due_from")

			return nil, nil
		})

	res, err := f.svc.OverdueFollowUps(context.Background())

	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestLeadService_Statistics(t *testing.T) {
	tests := []struct {
		name       string
		stats      model.Statistics
		wantActive int
		wantRate   string
	}{
		{
			name:       "rate rounds to two places",
			stats:      model.Statistics{Total: 7, New: 2, Qualified: 1, Converted: 3, Lost: 1},
			wantActive: 3,
			wantRate:   "42.86",
		},
		{
			name:     "no leads",
			stats:    model.Statistics{},
			wantRate: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.cache.EXPECT().Get(gomock.Any(), "lead:report:statistics", gomock.Any()).Return(errors.New("cache miss"))
			f.repo.EXPECT().Statistics(gomock.Any()).Return(tt.stats, nil)

			res, err := f.svc.Statistics(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.wantActive, res.Active)
			assert.True(t, decimal.RequireFromString(tt.wantRate).Equal(res.ConversionRate), res.ConversionRate.String())
		})
	}
}

func TestLeadService_CountBySource(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), "lead:report:sources", gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().CountBySource(gomock.Any()).Return([]model.SourceCount{
		{Source: model.SourceWebsite, Count: 12},
		{Source: "walk_in", Count: 3},
	}, nil)

	res, err := f.svc.CountBySource(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []dto.SourceCountResponse{{Source: "website", Count: 12}, {Source: "walk_in", Count: 3}}, res)
}
