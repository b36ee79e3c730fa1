package middleware

import (
	"net/http"

	"github.com/blaisecz/dailyform-tracker/pkg/problem"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Recovery recovers from panics and returns a 500 error
func Recovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Error("panic recovered",
						zap.Any("panic", rec),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.String("request_id", chimw.GetReqID(r.Context())),
						zap.Stack("stack"),
					)
					problem.InternalError("An unexpected error occurred").Write(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
