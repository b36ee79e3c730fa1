package middleware

import (
	"net"
	"net/http"
	"strconv"

	"github.com/blaisecz/dailyform-tracker/internal/ratelimit"
	"github.com/blaisecz/dailyform-tracker/pkg/problem"
	"go.uber.org/zap"
)

// RateLimit rejects clients over their window with 429. Limiter failures
// let the request through.
func RateLimit(limiter ratelimit.Limiter, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			result, err := limiter.Allow(r.Context(), clientKey(r))
			if err != nil {
				logger.Warn("rate limiter unavailable", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))

			if !result.Allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(result.ResetAfter.Seconds())))
				problem.TooManyRequests("Too many requests, please try again later").Write(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientKey is the host of RemoteAddr. Forwarding headers only count when
// the router installed RealIP ahead of this middleware.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
