// Package observability installs the process logger, tracer provider and
// propagator in one call.
package observability

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-task-api/internal/observability/logging"
	"github.com/KasumiMercury/primind-task-api/internal/observability/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

type Config struct {
	ServiceInfo   logging.ServiceInfo
	Environment   logging.Environment
	LogLevel      slog.Level
	SamplingRate  float64
	DefaultModule logging.Module
}

type Resources struct {
	Logger  *slog.Logger
	tracing *tracing.Provider
}

func Init(ctx context.Context, cfg Config) (*Resources, error) {
	logger := logging.NewLogger(logging.Config{
		ServiceInfo:   cfg.ServiceInfo,
		Environment:   cfg.Environment,
		Level:         cfg.LogLevel,
		DefaultModule: cfg.DefaultModule,
	})
	slog.SetDefault(logger)

	tp, err := tracing.NewProvider(ctx, tracing.Config{
		ServiceName:    cfg.ServiceInfo.Name,
		ServiceVersion: cfg.ServiceInfo.Version,
		Environment:    string(cfg.Environment),
		SamplingRate:   cfg.SamplingRate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer provider: %w", err)
	}

	otel.SetTracerProvider(tp.TracerProvider())
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &Resources{Logger: logger, tracing: tp}, nil
}

func (r *Resources) Shutdown(ctx context.Context) error {
	if r == nil || r.tracing == nil {
		return nil
	}

	return r.tracing.Shutdown(ctx)
}
