package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestNewLoggerEnrichesRecords(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(Config{
		ServiceInfo:   ServiceInfo{Name: "task-api", Version: "1.2.3"},
		Environment:   EnvProd,
		Level:         slog.LevelInfo,
		DefaultModule: Module("app"),
		Writer:        &buf,
	})

	ctx := WithModule(WithRequestID(context.Background(), "req-1"), Module("task"))
	logger.InfoContext(ctx, "hello")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected json output, got %q: %v", buf.String(), err)
	}

	want := map[string]string{
		"service":    "task-api",
		"version":    "1.2.3",
		"env":        "prod",
		"request_id": "req-1",
		"module":     "task",
	}
	for key, value := range want {
		if record[key] != value {
			t.Errorf("%s = %v, want %q", key, record[key], value)
		}
	}
}

func TestNewLoggerKeepsContextAttrsOutsideGroups(t *testing.T) {
	tests := []struct {
		name   string
		logger func(*slog.Logger) *slog.Logger
		nested map[string]any
	}{
		{
			name: "nested groups",
			logger: func(l *slog.Logger) *slog.Logger {
				return l.WithGroup("task").WithGroup("createtask")
			},
			nested: map[string]any{
				"task": map[string]any{"createtask": map[string]any{"task_id": "x"}},
			},
		},
		{
			name: "attrs bound inside a group",
			logger: func(l *slog.Logger) *slog.Logger {
				return l.With(slog.String("component", "api")).WithGroup("task").With(slog.String("handler", "create"))
			},
			nested: map[string]any{
				"component": "api",
				"task":      map[string]any{"handler": "create", "task_id": "x"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			base := NewLogger(Config{
				ServiceInfo: ServiceInfo{Name: "svc"},
				Environment: EnvProd,
				Level:       slog.LevelInfo,
				Writer:      &buf,
			})

			ctx := WithModule(WithRequestID(context.Background(), "req-1"), Module("task"))
			tt.logger(base).InfoContext(ctx, "hello", slog.String("task_id", "x"))

			var record map[string]any
			if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
				t.Fatalf("expected json output, got %q: %v", buf.String(), err)
			}

			if record["request_id"] != "req-1" || record["module"] != "task" {
				t.Errorf("context attrs not at top level: %s", buf.String())
			}

			for key, want := range tt.nested {
				if diff := cmp.Diff(want, record[key]); diff != "" {
					t.Errorf("%s mismatch (-want +got):\n%s", key, diff)
				}
			}
		})
	}
}

func TestNewLoggerDropsEmptyGroups(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(Config{
		ServiceInfo: ServiceInfo{Name: "svc"},
		Environment: EnvProd,
		Level:       slog.LevelInfo,
		Writer:      &buf,
	})

	logger.WithGroup("task").InfoContext(WithRequestID(context.Background(), "req-2"), "no attrs")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode record: %v", err)
	}

	if _, ok := record["task"]; ok {
		t.Errorf("empty group written: %s", buf.String())
	}

	if record["request_id"] != "req-2" {
		t.Errorf("request_id = %v, want req-2", record["request_id"])
	}
}

func TestNewLoggerDefaults(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(Config{
		ServiceInfo:   ServiceInfo{Name: "task-api"},
		Environment:   EnvProd,
		Level:         slog.LevelWarn,
		DefaultModule: Module("app"),
		Writer:        &buf,
	})

	logger.Info("dropped")

	if buf.Len() != 0 {
		t.Fatalf("info record written below warn level: %q", buf.String())
	}

	logger.Warn("kept")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode record: %v", err)
	}

	if record["module"] != "app" {
		t.Errorf("module = %v, want default module", record["module"])
	}

	if _, ok := record["request_id"]; ok {
		t.Errorf("request_id present without one in context")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected slog.Level
		wantErr  bool
	}{
		{"", slog.LevelInfo, false},
		{"DEBUG", slog.LevelDebug, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidLevel) {
				t.Errorf("ParseLevel(%q) error = %v, want %v", tt.in, err, ErrInvalidLevel)
			}

			continue
		}

		if err != nil || got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestValidateAndExtractRequestID(t *testing.T) {
	supplied := "0190c7a4-3b2e-7c1d-9f00-123456789abc"
	if got := ValidateAndExtractRequestID(supplied); got != supplied {
		t.Errorf("valid id replaced: %q", got)
	}

	for _, candidate := range []string{"", "not-a-uuid", "<script>"} {
		got := ValidateAndExtractRequestID(candidate)

		parsed, err := uuid.Parse(got)
		if err != nil {
			t.Fatalf("generated id %q is not a uuid: %v", got, err)
		}

		if parsed.Version() != 7 {
			t.Errorf("generated id version = %d, want 7", parsed.Version())
		}
	}
}
