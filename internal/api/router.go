package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/dailyform-tracker/docs"
	"github.com/blaisecz/dailyform-tracker/internal/api/handler"
	"github.com/blaisecz/dailyform-tracker/internal/api/middleware"
	"github.com/blaisecz/dailyform-tracker/internal/ratelimit"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

// Options configures the cross-cutting middleware.
type Options struct {
	Logger       *zap.Logger
	AllowOrigins []string
	// Limiter is optional; requests are not throttled when nil
	Limiter ratelimit.Limiter
	// TrustProxyHeaders takes the client IP from X-Forwarded-For / X-Real-IP.
	// Only safe behind a proxy that overwrites them; otherwise clients can
	// pick their own rate-limit key.
	TrustProxyHeaders bool
}

type Router struct {
	formHandler    *handler.FormHandler
	trendHandler   *handler.TrendHandler
	summaryHandler *handler.SummaryHandler
	opts           Options
}

func NewRouter(formHandler *handler.FormHandler, trendHandler *handler.TrendHandler, summaryHandler *handler.SummaryHandler, opts Options) *Router {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Router{
		formHandler:    formHandler,
		trendHandler:   trendHandler,
		summaryHandler: summaryHandler,
		opts:           opts,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	if rt.opts.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.Recovery(rt.opts.Logger))
	r.Use(middleware.Logger(rt.opts.Logger))
	r.Use(middleware.Tracing)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.opts.AllowOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Request-Id", "X-RateLimit-Remaining"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	r.Route("/api/dailyform", func(r chi.Router) {
		if rt.opts.Limiter != nil {
			r.Use(middleware.RateLimit(rt.opts.Limiter, rt.opts.Logger))
		}

		// Morning form
		r.Route("/morning", func(r chi.Router) {
			r.Post("/", rt.formHandler.CreateMorning)
			r.Get("/check", rt.formHandler.CheckMorning)
			r.Get("/last_seven", rt.trendHandler.LastSevenMorning)
		})

		// Evening form
		r.Route("/night", func(r chi.Router) {
			r.Post("/", rt.formHandler.CreateEvening)
			r.Get("/check", rt.formHandler.CheckEvening)
			r.Get("/last_seven", rt.trendHandler.LastSevenEvening)
		})

		// Weekly summaries
		r.Route("/ai", func(r chi.Router) {
			r.Post("/analyze", rt.summaryHandler.Analyze)
			r.Get("/summary/today", rt.summaryHandler.Today)
			r.Get("/summary/history", rt.summaryHandler.History)
			r.Post("/summary/feedback", rt.summaryHandler.Feedback)
		})
	})

	return r
}
