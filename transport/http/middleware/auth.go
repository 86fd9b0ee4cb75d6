package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"homestay/shared/constant"
	"homestay/shared/failure"
	"homestay/transport/http/response"
)

// APIKey rejects requests whose X-API-Key header does not match the configured key. An empty key
// in the configuration turns the gate off.
func (a *appMiddleware) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := a.config.App.APIKey
		if expected == constant.Empty {
			next.ServeHTTP(w, r)

			return
		}

		ctx, scope := a.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		apiKey := r.Header.Get(constant.RequestHeaderAPIKey)
		if apiKey == constant.Empty {
			err := failure.Unauthorized("missing API key")
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}

		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			err := failure.ForbiddenError
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Actor records who is making the request, taken from X-User-ID. Requests without one are
// attributed to the system user.
func (a *appMiddleware) Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := strings.TrimSpace(r.Header.Get(constant.RequestHeaderUserID))
		if user == constant.Empty {
			user = constant.SystemUser
		}

		ctx := context.WithValue(r.Context(), constant.ContextKeyUserID, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
