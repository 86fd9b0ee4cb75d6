package service_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"homestay/config"
	"homestay/infras/otel/mocks"
	postgresMocks "homestay/infras/postgres/mocks"
	packageMocks "homestay/internal/domains/tourpackage/mocks"
	"homestay/internal/domains/tourpackage/model"
	"homestay/internal/domains/tourpackage/model/dto"
	"homestay/internal/domains/tourpackage/service"
	cacheMocks "homestay/shared/cache/mocks"
	"homestay/shared/constant"
	gDto "homestay/shared/dto"
	"homestay/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	packageID = "0d9c8b7a-6f5e-4d3c-8b2a-1f0e9d8c7b6a"
	pricingID = "5e4d3c2b-1a0f-4e9d-8c7b-6a5f4e3d2c1b"
)

type fixture struct {
	svc         service.Package
	repo        *packageMocks.MockPackage
	itineraries *packageMocks.MockItinerary
	pricing     *packageMocks.MockPricing
	inclusions  *packageMocks.MockInclusion
	transactor  *postgresMocks.MockTransactor
	cache       *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:        packageMocks.NewMockPackage(ctrl),
		itineraries: packageMocks.NewMockItinerary(ctrl),
		pricing:     packageMocks.NewMockPricing(ctrl),
		inclusions:  packageMocks.NewMockInclusion(ctrl),
		transactor:  postgresMocks.NewMockTransactor(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, f.itineraries, f.pricing, f.inclusions, f.transactor, cfg, f.cache, mocks.NewOtel())

	return f
}

func expectTx(transactor *postgresMocks.MockTransactor) {
	transactor.EXPECT().
		WithTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sql.TxOptions, fn func(*sqlx.Tx) error) error {
			return fn(nil)
		})
}

func staffContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "sales-desk")
}

func storedPackage() model.Package {
	return model.Package{
		ID:               packageID,
		Code:             "PKG-DAR-3N4D-001",
		Name:             "Darjeeling Tea Trails",
		Nights:           3,
		Days:             4,
		Destination:      "Darjeeling",
		MinPersons:       2,
		MaxPersons:       8,
		MinPricePerHead:  decimal.RequireFromString("9000"),
		BasePricePerHead: decimal.RequireFromString("12000"),
		Status:           model.StatusActive,
	}
}

func TestPackageService_Create(t *testing.T) {
	base := dto.CreatePackageRequest{
		Name:             "Darjeeling Tea Trails",
		Description:      "Tea estates and the toy train",
		Nights:           3,
		Destination:      "darjeeling",
		MinPricePerHead:  decimal.RequireFromString("9000"),
		BasePricePerHead: decimal.RequireFromString("12000"),
		Itineraries: []dto.CreateItineraryRequest{
			{DayNumber: 1, Title: "Arrival"},
			{DayNumber: 2, Title: "Tiger Hill sunrise"},
		},
		Pricing: []dto.CreatePricingRequest{
			{NumberOfPersons: 2, PricePerHead: decimal.RequireFromString("12000")},
			{NumberOfPersons: 4, PricePerHead: decimal.RequireFromString("10500.50")},
		},
		Inclusions: []dto.CreateInclusionRequest{{Description: "Breakfast and dinner"}},
	}

	t.Run("assigns the sequence code and stores the details", func(t *testing.T) {
		f := newFixture(t)
		expectTx(f.transactor)

		f.repo.EXPECT().NextSequenceTx(gomock.Any(), gomock.Any(), model.SequenceCode).Return(int64(7), nil)
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, pkg model.Package) error {
				assert.Equal(t, "PKG-DAR-3N4D-007", pkg.Code)
				assert.Equal(t, 4, pkg.Days)
				assert.Equal(t, 2, pkg.MinPersons)
				assert.Equal(t, 8, pkg.MaxPersons)
				assert.Equal(t, model.StatusDraft, pkg.Status)
				assert.Equal(t, model.TypePredefined, pkg.Type)

				return nil
			})
		f.itineraries.EXPECT().
			InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, days []model.Itinerary) error {
				require.Len(t, days, 2)
				assert.Equal(t, 2, days[1].DisplayOrder)
				assert.True(t, days[1].HasOvernightStay)

				return nil
			})
		f.pricing.EXPECT().
			InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, tiers []model.Pricing) error {
				require.Len(t, tiers, 2)
				assert.Equal(t, "42002", tiers[1].TotalPrice.String())
				assert.Equal(t, model.RoomStandard, tiers[1].RoomType)
				assert.Equal(t, model.SeasonRegular, tiers[1].SeasonType)
				assert.True(t, tiers[1].IsActive)

				return nil
			})
		f.inclusions.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Create(staffContext(), base)

		require.NoError(t, err)
		assert.Equal(t, "PKG-DAR-3N4D-007", res.Code)
		assert.Len(t, res.Itineraries, 2)
		assert.Len(t, res.Pricing, 2)
		assert.Len(t, res.Inclusions, 1)
		assert.Equal(t, "sales-desk", res.CreatedBy)
	})

	rejects := []struct {
		name       string
		mutate     func(req *dto.CreatePackageRequest)
		wantCode   int
		wantReason string
	}{
		{
			name:       "base price under the minimum",
			mutate:     func(req *dto.CreatePackageRequest) { req.BasePricePerHead = decimal.RequireFromString("8999.99") },
			wantCode:   http.StatusBadRequest,
			wantReason: failure.ReasonPriceBelowMinimum,
		},
		{
			name: "tier under the minimum",
			mutate: func(req *dto.CreatePackageRequest) {
				req.Pricing = []dto.CreatePricingRequest{{NumberOfPersons: 6, PricePerHead: decimal.RequireFromString("8000")}}
			},
			wantCode:   http.StatusBadRequest,
			wantReason: failure.ReasonPriceBelowMinimum,
		},
		{
			name: "repeated tier",
			mutate: func(req *dto.CreatePackageRequest) {
				req.Pricing = append(req.Pricing, dto.CreatePricingRequest{NumberOfPersons: 2, PricePerHead: decimal.RequireFromString("11000")})
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "repeated day",
			mutate: func(req *dto.CreatePackageRequest) {
				req.Itineraries = append(req.Itineraries, dto.CreateItineraryRequest{DayNumber: 2, Title: "Again"})
			},
			wantCode: http.StatusConflict,
		},
		{
			name:     "persons range inverted",
			mutate:   func(req *dto.CreatePackageRequest) { req.MinPersons, req.MaxPersons = 6, 4 },
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range rejects {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			req := base
			req.Pricing = append([]dto.CreatePricingRequest(nil), base.Pricing...)
			req.Itineraries = append([]dto.CreateItineraryRequest(nil), base.Itineraries...)
			tt.mutate(&req)

			_, err := f.svc.Create(staffContext(), req)

			assert.Equal(t, tt.wantCode, failure.GetCode(err))

			if tt.wantReason != "" {
				assert.True(t, failure.HasReason(err, tt.wantReason))
			}
		})
	}

	t.Run("code collision", func(t *testing.T) {
		f := newFixture(t)
		expectTx(f.transactor)

		f.repo.EXPECT().NextSequenceTx(gomock.Any(), gomock.Any(), model.SequenceCode).Return(int64(1), nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})

		_, err := f.svc.Create(staffContext(), dto.CreatePackageRequest{
			Name:        "Gangtok Escape",
			Description: "Monasteries and lakes",
			Nights:      2,
			Destination: "Gangtok",
		})

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestPackageService_Get(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), "package:get:"+packageID, gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedPackage(), nil)
	f.itineraries.EXPECT().
		GetAll(gomock.Any(), gDto.QueryParams{SortBy: model.FieldDayNumber, SortDir: gDto.SortDirAsc}, gomock.Any()).
		Return([]model.Itinerary{{ID: "day-1", DayNumber: 1, Title: "Arrival"}}, nil)
	f.pricing.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Pricing{{ID: pricingID, NumberOfPersons: 2, PricePerHead: decimal.RequireFromString("12000"), TotalPrice: decimal.RequireFromString("24000")}}, nil)
	f.inclusions.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	res, err := f.svc.Get(context.Background(), packageID)

	require.NoError(t, err)
	assert.Equal(t, "PKG-DAR-3N4D-001", res.Code)
	require.Len(t, res.Itineraries, 1)
	assert.Equal(t, "Arrival", res.Itineraries[0].Title)
	require.Len(t, res.Pricing, 1)
	assert.Equal(t, "24000", res.Pricing[0].TotalPrice.String())
	assert.Empty(t, res.Inclusions)
}

func TestPackageService_GetNotFound(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Package{}, nil)

	_, err := f.svc.Get(context.Background(), packageID)

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestPackageService_Update(t *testing.T) {
	price := func(value string) *decimal.Decimal {
		d := decimal.RequireFromString(value)

		return &d
	}

	tests := []struct {
		name     string
		req      dto.UpdatePackageRequest
		wantCode int
	}{
		{
			name: "raises both prices",
			req:  dto.UpdatePackageRequest{MinPricePerHead: price("10000"), BasePricePerHead: price("13000")},
		},
		{
			name:     "minimum raised above the stored base",
			req:      dto.UpdatePackageRequest{MinPricePerHead: price("12500")},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "base dropped below the stored minimum",
			req:      dto.UpdatePackageRequest{BasePricePerHead: price("8500")},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "empty request",
			req:      dto.UpdatePackageRequest{},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if !tt.req.IsEmpty() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedPackage(), nil)
			}

			if tt.wantCode == 0 {
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Contains(t, fields, model.FieldMinPrice)
						assert.Contains(t, fields, model.FieldBasePrice)
						assert.Equal(t, "sales-desk", fields[constant.FieldModifiedBy])

						return nil
					})
			}

			err := f.svc.Update(staffContext(), tt.req, packageID)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestPackageService_AddPricing(t *testing.T) {
	req := dto.CreatePricingRequest{NumberOfPersons: 3, RoomType: model.RoomDeluxe, PricePerHead: decimal.RequireFromString("11333.33")}

	tests := []struct {
		name      string
		req       dto.CreatePricingRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "adds the tier with its total",
			req:  req,
			setupMock: func(f fixture) {
				f.pricing.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.pricing.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tier model.Pricing) error {
						assert.Equal(t, packageID, tier.PackageID)
						assert.Equal(t, "33999.99", tier.TotalPrice.String())

						return nil
					})
			},
		},
		{
			name: "tier already exists",
			req:  req,
			setupMock: func(f fixture) {
				f.pricing.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "tier inserted concurrently",
			req:  req,
			setupMock: func(f fixture) {
				f.pricing.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.pricing.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantCode: http.StatusConflict,
		},
		{
			name:      "price under the minimum",
			req:       dto.CreatePricingRequest{NumberOfPersons: 8, PricePerHead: decimal.RequireFromString("8999")},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedPackage(), nil)
			tt.setupMock(f)

			res, err := f.svc.AddPricing(staffContext(), tt.req, packageID)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.SeasonRegular, res.SeasonType)
		})
	}
}

func TestPackageService_UpdatePricing(t *testing.T) {
	f := newFixture(t)

	persons := 5
	stored := model.Pricing{
		ID:              pricingID,
		PackageID:       packageID,
		NumberOfPersons: 2,
		RoomType:        model.RoomStandard,
		SeasonType:      model.SeasonRegular,
		PricePerHead:    decimal.RequireFromString("12000"),
	}

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedPackage(), nil)
	f.pricing.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
	f.pricing.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
	f.pricing.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, "60000", fields[model.FieldTotalPrice].(decimal.Decimal).String())

			return nil
		})

	err := f.svc.UpdatePricing(staffContext(), dto.UpdatePricingRequest{NumberOfPersons: &persons}, packageID, pricingID)

	require.NoError(t, err)
}

func TestPackageService_ReplacePricing(t *testing.T) {
	t.Run("deletes then inserts in one transaction", func(t *testing.T) {
		f := newFixture(t)
		expectTx(f.transactor)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedPackage(), nil)

		gomock.InOrder(
			f.pricing.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
			f.pricing.EXPECT().
				InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *sqlx.Tx, tiers []model.Pricing) error {
					assert.Len(t, tiers, 2)

					return nil
				}),
		)

		res, err := f.svc.ReplacePricing(staffContext(), dto.BulkPricingRequest{Tiers: []dto.CreatePricingRequest{
			{NumberOfPersons: 2, PricePerHead: decimal.RequireFromString("12000")},
			{NumberOfPersons: 2, SeasonType: model.SeasonPeak, PricePerHead: decimal.RequireFromString("14000")},
		}}, packageID)

		require.NoError(t, err)
		assert.Len(t, res, 2)
	})

	t.Run("insert failure is reported", func(t *testing.T) {
		f := newFixture(t)
		expectTx(f.transactor)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedPackage(), nil)
		f.pricing.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.pricing.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

		_, err := f.svc.ReplacePricing(staffContext(), dto.BulkPricingRequest{Tiers: []dto.CreatePricingRequest{
			{NumberOfPersons: 2, PricePerHead: decimal.RequireFromString("12000")},
		}}, packageID)

		assert.ErrorContains(t, err, "connection reset")
	})
}

func TestPackageService_PricingForPersons(t *testing.T) {
	t.Run("prefers the default tier", func(t *testing.T) {
		f := newFixture(t)

		f.pricing.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Pricing{
			{ID: "cheapest", NumberOfPersons: 4, PricePerHead: decimal.RequireFromString("10000")},
			{ID: "default", NumberOfPersons: 4, PricePerHead: decimal.RequireFromString("11000"), IsDefault: true},
		}, nil)

		res, err := f.svc.PricingForPersons(context.Background(), packageID, 4)

		require.NoError(t, err)
		assert.Equal(t, "default", res.ID)
	})

	t.Run("no tier for the head count", func(t *testing.T) {
		f := newFixture(t)

		f.pricing.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := f.svc.PricingForPersons(context.Background(), packageID, 9)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestPackageService_Popular(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Package, error) {
			assert.Equal(t, model.PopularLimit, params.Limit)
			assert.Equal(t, model.FieldDisplayOrder, params.SortBy)

			return []model.Package{storedPackage()}, nil
		})

	res, err := f.svc.Popular(context.Background())

	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestPackageService_Statistics(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), "package:report:statistics", gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().Statistics(gomock.Any()).Return(model.Statistics{
		TotalPackages:   6,
		ActivePackages:  4,
		DraftPackages:   2,
		TotalCustom:     3,
		QuoteSentCustom: 1,
		ConfirmedCustom: 2,
	}, nil)

	res, err := f.svc.Statistics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, dto.PredefinedStatistics{Total: 6, Active: 4, Draft: 2}, res.Predefined)
	assert.Equal(t, dto.CustomStatistics{Total: 3, QuoteSent: 1, Confirmed: 2}, res.Custom)
}

func TestPackageService_DeleteInclusionNotFound(t *testing.T) {
	f := newFixture(t)

	f.inclusions.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID).Return(model.Inclusion{}, nil)

	err := f.svc.DeleteInclusion(context.Background(), packageID, "missing")

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
