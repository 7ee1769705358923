package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	persistenceconfig "github.com/KasumiMercury/primind-task-api/internal/config/persistence"
	serverconfig "github.com/KasumiMercury/primind-task-api/internal/config/server"
	"github.com/KasumiMercury/primind-task-api/internal/health"
	taskmodule "github.com/KasumiMercury/primind-task-api/internal/task"
	apptask "github.com/KasumiMercury/primind-task-api/internal/task/app/task"
	domaintask "github.com/KasumiMercury/primind-task-api/internal/task/domain/task"
	"github.com/KasumiMercury/primind-task-api/internal/testutil"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
)

type okDependency struct{}

func (okDependency) Name() string { return "fake" }
func (okDependency) Ping(context.Context) error { return nil }

func testConfig() *serverconfig.Config {
	return &serverconfig.Config{
		Port:               5000,
		CORSAllowedOrigins: []string{"https://app.example.com"},
		ShutdownTimeout:    time.Second,
	}
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	ctrl := gomock.NewController(t)

	h, err := NewHandler(context.Background(), Options{
		Config:       testConfig(),
		Repositories: taskmodule.Repositories{Tasks: apptask.NewMockTaskRepository(ctrl)},
		Dependencies: []health.Dependency{okDependency{}},
		Version:      "test",
	})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	return h
}

func TestNewHandlerRoutes(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name         string
		method       string
		target       string
		expectedCode int
		contains     string
	}{
		{"liveness", http.MethodGet, "/health/live", http.StatusOK, `"ok"`},
		{"readiness", http.MethodGet, "/health/ready", http.StatusOK, `"healthy"`},
		{"openapi document", http.MethodGet, "/api-docs/openapi.json", http.StatusOK, `"http://localhost:5000"`},
		{"swagger ui", http.MethodGet, "/api-docs/", http.StatusOK, "swagger-ui"},
		{"invalid task id never reaches the store", http.MethodGet, "/api/tasks/not-a-valid-id", http.StatusBadRequest, `"params"`},
		{"unknown route", http.MethodGet, "/nope", http.StatusNotFound, "route not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			if rec.Code != tt.expectedCode {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.expectedCode, rec.Body.String())
			}

			if !strings.Contains(rec.Body.String(), tt.contains) {
				t.Errorf("body %q does not contain %q", rec.Body.String(), tt.contains)
			}
		})
	}
}

func TestNewHandlerCORS(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/tasks", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestNewHandlerRequiresConfig(t *testing.T) {
	if _, err := NewHandler(context.Background(), Options{}); !errors.Is(err, ErrConfigRequired) {
		t.Errorf("NewHandler() error = %v, want %v", err, ErrConfigRequired)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}

	srv := New(testConfig(), newTestHandler(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health/live")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	_ = resp.Body.Close()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop")
	}
}

func TestOpenStoreUnsupportedDriver(t *testing.T) {
	_, err := OpenStore(context.Background(), &persistenceconfig.Config{Driver: "sqlite"})
	if !errors.Is(err, ErrUnsupportedDriver) {
		t.Errorf("OpenStore() error = %v, want %v", err, ErrUnsupportedDriver)
	}
}

func TestOpenStoreMongo(t *testing.T) {
	ctx := context.Background()

	uri, terminate := testutil.StartMongoContainer(ctx, t)
	t.Cleanup(terminate)

	store, err := OpenStore(ctx, &persistenceconfig.Config{
		Driver:        persistenceconfig.DriverMongo,
		MongoURI:      uri,
		MongoDatabase: "taskapi_store_test",
	})
	if err != nil {
		t.Fatalf("OpenStore() error = %v", err)
	}

	t.Cleanup(func() {
		if err := store.Close(context.Background()); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})

	if store.Dependency.Name() != "mongo" {
		t.Errorf("dependency = %q, want mongo", store.Dependency.Name())
	}

	if err := store.Dependency.Ping(ctx); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	draft, err := domaintask.CreateTask("Buy milk", nil, nil)
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	created, err := store.Repositories.Tasks.CreateTask(ctx, draft)
	if err != nil {
		t.Fatalf("repository CreateTask() error = %v", err)
	}

	fetched, err := store.Repositories.Tasks.GetTaskByID(ctx, created.ID())
	if err != nil {
		t.Fatalf("GetTaskByID() error = %v", err)
	}

	if fetched.Title() != "Buy milk" || fetched.TaskStatus() != domaintask.StatusPending {
		t.Errorf("fetched = %q %q", fetched.Title(), fetched.TaskStatus())
	}
}

func TestNewHandlerSpanNamesUseRoutePattern(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()

	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tasks/not-a-valid-id", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(ended))
	}

	if got := ended[0].Name(); got != "GET /api/tasks/{id}" {
		t.Errorf("span name = %q, want %q", got, "GET /api/tasks/{id}")
	}
}
