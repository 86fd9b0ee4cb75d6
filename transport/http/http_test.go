package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"homestay/config"
	otelMocks "homestay/infras/otel/mocks"
	"homestay/shared/constant"
	"homestay/transport/http/middleware"
	"homestay/transport/http/router"

	"github.com/stretchr/testify/assert"
)

func newTestServer(apiKey string) *HTTP {
	cfg := &config.Config{}
	cfg.App.APIKey = apiKey

	return New(cfg, router.New(router.DomainHandlers{}), middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, nil))
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		state      ServerState
		wantStatus int
	}{
		{name: "ready", state: ServerStateReady, wantStatus: http.StatusOK},
		{name: "grace period", state: ServerStateInGracePeriod, wantStatus: http.StatusServiceUnavailable},
		{name: "cleanup period", state: ServerStateInCleanupPeriod, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer("")

			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, http.StatusOK, rec.Code)

			server.State = tt.state

			rec = httptest.NewRecorder()
			server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))
		})
	}
}

func TestAPIRoutesRequireKey(t *testing.T) {
	server := newTestServer("front-desk-key")

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bookings/statistics", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	server := newTestServer("")

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/bookings", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
