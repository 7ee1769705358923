package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/KasumiMercury/primind-task-api/internal/observability"
	"github.com/KasumiMercury/primind-task-api/internal/observability/logging"
)

func initObservability(ctx context.Context) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "task-api"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	level, err := logging.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	samplingRate := 1.0

	if raw := os.Getenv("OTEL_SAMPLING_RATE"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid OTEL_SAMPLING_RATE: %w", err)
		}

		samplingRate = parsed
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: os.Getenv("REVISION"),
		},
		Environment:   env,
		LogLevel:      level,
		SamplingRate:  samplingRate,
		DefaultModule: logging.Module("app"),
	})
}
