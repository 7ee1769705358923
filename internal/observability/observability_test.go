package observability

import (
	"context"
	"log/slog"
	"testing"

	"github.com/KasumiMercury/primind-task-api/internal/observability/logging"
	"go.opentelemetry.io/otel"
)

func TestInit(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	res, err := Init(context.Background(), Config{
		ServiceInfo:   logging.ServiceInfo{Name: "task-api", Version: "test"},
		Environment:   logging.EnvDev,
		LogLevel:      slog.LevelDebug,
		SamplingRate:  1,
		DefaultModule: logging.Module("app"),
	})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	t.Cleanup(func() {
		if err := res.Shutdown(context.Background()); err != nil {
			t.Errorf("Shutdown() error = %v", err)
		}
	})

	if slog.Default() != res.Logger {
		t.Errorf("default logger was not replaced")
	}

	fields := otel.GetTextMapPropagator().Fields()
	if len(fields) == 0 {
		t.Errorf("no propagator installed")
	}
}

func TestShutdownNil(t *testing.T) {
	var res *Resources
	if err := res.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() on nil resources = %v", err)
	}
}
