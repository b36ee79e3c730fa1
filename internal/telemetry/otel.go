// Package telemetry configures OpenTelemetry tracing. Spans are exported to
// the Langfuse OTLP endpoint when Langfuse is configured.
package telemetry

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/blaisecz/dailyform-tracker/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// ServiceName identifies this service in exported spans.
const ServiceName = "dailyform-api"

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

// Enabled reports whether spans will be exported.
func Enabled(cfg *config.Config) bool {
	return cfg.LangfuseBaseURL != "" && cfg.LangfusePublicKey != "" && cfg.LangfuseSecretKey != ""
}

// InitTracer installs the global tracer provider. Without Langfuse
// credentials the default no-op provider is kept.
func InitTracer(ctx context.Context, cfg *config.Config) (ShutdownFunc, error) {
	if !Enabled(cfg) {
		return func(context.Context) error { return nil }, nil
	}

	auth := base64.StdEncoding.EncodeToString([]byte(cfg.LangfusePublicKey + ":" + cfg.LangfuseSecretKey))
	endpoint := fmt.Sprintf("%s/api/public/otel/v1/traces", strings.TrimSuffix(cfg.LangfuseBaseURL, "/"))

	exporter, err := otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpointURL(endpoint),
		otlptracehttp.WithHeaders(map[string]string{
			"Authorization": "Basic " + auth,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create OTLP exporter: %w", err)
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			attribute.String("service.name", ServiceName),
			attribute.String("deployment.environment", cfg.AppEnv),
			attribute.String("langfuse.environment", cfg.LangfuseEnv),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}
