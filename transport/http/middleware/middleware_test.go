package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"homestay/config"
	otelMocks "homestay/infras/otel/mocks"
	cacheMocks "homestay/shared/cache/mocks"
	"homestay/shared/constant"
	"homestay/transport/http/middleware"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func okHandler(t *testing.T) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func newMiddleware(t *testing.T, cfg *config.Config) (middleware.AppMiddleware, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	return middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, mockCache), mockCache
}

func TestAPIKey(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		header     string
		wantStatus int
	}{
		{name: "gate disabled without configured key", configured: "", header: "", wantStatus: http.StatusNoContent},
		{name: "matching key", configured: "front-desk-key", header: "front-desk-key", wantStatus: http.StatusNoContent},
		{name: "missing key", configured: "front-desk-key", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong key", configured: "front-desk-key", header: "guessed", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.APIKey = tt.configured

			mw, _ := newMiddleware(t, cfg)

			req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.header)
			}

			rec := httptest.NewRecorder()
			mw.APIKey(okHandler(t)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestActor(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "header user", header: "  reception-1 ", want: "reception-1"},
		{name: "defaults to system", header: "", want: constant.SystemUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw, _ := newMiddleware(t, &config.Config{})

			var got any

			next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = r.Context().Value(constant.ContextKeyUserID)
			})

			req := httptest.NewRequest(http.MethodPost, "/v1/bookings", nil)
			req.Header.Set(constant.RequestHeaderUserID, tt.header)

			mw.Actor(next).ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}

func rateLimitConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 3
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestRateLimit(t *testing.T) {
	const key = "limiter:203.0.113.9:front-desk"

	tests := []struct {
		name          string
		setup         func(mockCache *cacheMocks.MockRedisCache)
		wantStatus    int
		wantRemaining string
	}{
		{
			name: "first request starts the window",
			setup: func(mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().Increment(gomock.Any(), key, 60).Return(int64(1), nil)
			},
			wantStatus:    http.StatusNoContent,
			wantRemaining: "2",
		},
		{
			name: "last request of the window",
			setup: func(mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().Increment(gomock.Any(), key, 60).Return(int64(3), nil)
			},
			wantStatus:    http.StatusNoContent,
			wantRemaining: "0",
		},
		{
			name: "limit exceeded",
			setup: func(mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().Increment(gomock.Any(), key, 60).Return(int64(4), nil)
			},
			wantStatus:    http.StatusTooManyRequests,
			wantRemaining: "0",
		},
		{
			name: "redis failure lets the request through",
			setup: func(mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().Increment(gomock.Any(), key, 60).Return(int64(0), errors.New("connection refused"))
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw, mockCache := newMiddleware(t, rateLimitConfig())
			tt.setup(mockCache)

			req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
			req.Header.Set(constant.RequestHeaderForwardedFor, "203.0.113.9, 10.0.0.1")
			req.Header.Set(constant.RequestHeaderUserAgent, "front-desk")

			rec := httptest.NewRecorder()
			mw.RateLimit()(okHandler(t)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	mw, _ := newMiddleware(t, &config.Config{})

	rec := httptest.NewRecorder()
	mw.RateLimit()(okHandler(t)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTracing_PropagatesRequestID(t *testing.T) {
	mw, _ := newMiddleware(t, &config.Config{})

	var got any

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Context().Value(constant.ContextKeyRequestID)
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler := chiMiddleware.RequestID(mw.Tracing(next))
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, got)
	assert.Equal(t, got, rec.Header().Get(constant.RequestHeaderRequestID))
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://frontdesk.example"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	mw, _ := newMiddleware(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
	req.Header.Set("Origin", "https://frontdesk.example")

	rec := httptest.NewRecorder()
	mw.CORS()(okHandler(t)).ServeHTTP(rec, req)

	assert.Equal(t, "https://frontdesk.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
