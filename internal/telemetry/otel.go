package telemetry

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/blaisecz/health-insights/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Exporter describes where spans are sent.
type Exporter struct {
	URL     string
	Headers map[string]string
}

// ResolveExporter picks the trace destination. OTLP_ENDPOINT wins; otherwise
// Langfuse's OTLP endpoint is used when its keys are set. ok is false when
// tracing is not configured.
func ResolveExporter(cfg *config.Config) (exp Exporter, ok bool) {
	if cfg.OTLPEndpoint != "" {
		return Exporter{URL: cfg.OTLPEndpoint}, true
	}
	if cfg.LangfuseBaseURL == "" || cfg.LangfusePublicKey == "" || cfg.LangfuseSecretKey == "" {
		return Exporter{}, false
	}

	// Basic auth header from Langfuse public/secret keys.
	creds := cfg.LangfusePublicKey + ":" + cfg.LangfuseSecretKey
	auth := base64.StdEncoding.EncodeToString([]byte(creds))

	return Exporter{
		URL:     fmt.Sprintf("%s/api/public/otel/v1/traces", cfg.LangfuseBaseURL),
		Headers: map[string]string{"Authorization": "Basic " + auth},
	}, true
}

// InitTracer initializes the global OpenTelemetry tracer provider.
// If no exporter is configured, this function is a no-op.
func InitTracer(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	exp, ok := ResolveExporter(cfg)
	if !ok {
		return func(context.Context) error { return nil }, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpointURL(exp.URL)}
	if len(exp.Headers) > 0 {
		opts = append(opts, otlptracehttp.WithHeaders(exp.Headers))
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			attribute.String("service.name", cfg.OTELServiceName),
			attribute.String("deployment.environment", cfg.LangfuseEnv),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}
