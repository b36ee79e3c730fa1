package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracing starts an OpenTelemetry span for each HTTP request and
// propagates the context to downstream handlers and services.
func Tracing(next http.Handler) http.Handler {
	tracer := otel.Tracer("dailyform-api/http")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			),
		)
		defer span.End()

		inputPayload := map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
		}
		if r.URL.RawQuery != "" {
			inputPayload["query"] = r.URL.RawQuery
		}
		if userID := r.URL.Query().Get("user_id"); userID != "" {
			span.SetAttributes(attribute.String("user.id", userID))
		}
		if inJSON, err := json.Marshal(inputPayload); err == nil {
			span.SetAttributes(attribute.String("langfuse.observation.input", string(inJSON)))
		}

		tw := &traceResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(tw, r.WithContext(ctx))

		// Route pattern is only known once chi has matched the request.
		if rctx := chi.RouteContext(ctx); rctx != nil && rctx.RoutePattern() != "" {
			span.SetName(r.Method + " " + rctx.RoutePattern())
			span.SetAttributes(attribute.String("http.route", rctx.RoutePattern()))
		}
		span.SetAttributes(attribute.Int("http.status_code", tw.statusCode))
		if tw.statusCode >= 500 {
			span.SetStatus(codes.Error, http.StatusText(tw.statusCode))
		}

		outputPayload := map[string]any{
			"status_code": tw.statusCode,
			"duration_ms": time.Since(start).Milliseconds(),
		}
		if outJSON, err := json.Marshal(outputPayload); err == nil {
			span.SetAttributes(attribute.String("langfuse.observation.output", string(outJSON)))
		}
	})
}

type traceResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (tw *traceResponseWriter) WriteHeader(code int) {
	tw.statusCode = code
	tw.ResponseWriter.WriteHeader(code)
}
