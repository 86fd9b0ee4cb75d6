package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"homestay/shared"
	"homestay/shared/constant"
	"homestay/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	headerRetryAfter  = "Retry-After"
)

// RateLimit counts requests per client in a fixed redis window that starts with the client's
// first request. Redis failures let the request through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	limiter := a.config.App.RateLimiter

	return func(next http.Handler) http.Handler {
		if !limiter.Enable {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, a.getClientIP(r), a.getUA(r))

			count, err := a.cache.Increment(r.Context(), cacheKey, limiter.WindowSeconds)
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable, letting request through")
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limiter.MaxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(max(0, int64(limiter.MaxRequests)-count), 10))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limiter.WindowSeconds))

			if count > int64(limiter.MaxRequests) {
				w.Header().Set(headerRetryAfter, strconv.Itoa(limiter.WindowSeconds))
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == constant.Empty {
		ua = "unknown"
	}

	return ua
}

// getClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the socket address.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != constant.Empty {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != constant.Empty {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
