package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KasumiMercury/primind-task-api/internal/observability/logging"
	"github.com/google/uuid"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	previous := slog.Default()
	slog.SetDefault(logging.NewLogger(logging.Config{
		ServiceInfo: logging.ServiceInfo{Name: "test"},
		Environment: logging.EnvProd,
		Level:       slog.LevelDebug,
		Writer:      &buf,
	}))
	t.Cleanup(func() { slog.SetDefault(previous) })

	return &buf
}

func TestRequestLogging(t *testing.T) {
	buf := captureLogs(t)

	var seenID string

	h := RequestLogging(logging.Module("task"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = logging.RequestIDFromContext(r.Context())

		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tasks", nil))

	if _, err := uuid.Parse(seenID); err != nil {
		t.Fatalf("request id %q is not a uuid", seenID)
	}

	if got := rec.Header().Get(RequestIDHeader); got != seenID {
		t.Errorf("response header = %q, want %q", got, seenID)
	}

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode log line %q: %v", buf.String(), err)
	}

	if record["event"] != "http.request.finish" || record["status"] != float64(http.StatusCreated) {
		t.Errorf("log record = %v", record)
	}

	if record["module"] != "task" || record["request_id"] != seenID {
		t.Errorf("log record not enriched: %v", record)
	}
}

func TestRequestLoggingKeepsValidID(t *testing.T) {
	captureLogs(t)

	supplied := uuid.NewString()

	h := RequestLogging("")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, supplied)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != supplied {
		t.Errorf("request id = %q, want %q", got, supplied)
	}
}

func TestPanicRecoveryHTTP(t *testing.T) {
	buf := captureLogs(t)

	h := PanicRecoveryHTTP(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	if !strings.Contains(rec.Body.String(), "internal server error") {
		t.Errorf("body = %q", rec.Body.String())
	}

	if !strings.Contains(buf.String(), "app.panic") {
		t.Errorf("panic not logged: %q", buf.String())
	}
}

func TestPanicRecoveryHTTPAbort(t *testing.T) {
	h := PanicRecoveryHTTP(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if rec := recover(); rec != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler", rec)
		}
	}()

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}
