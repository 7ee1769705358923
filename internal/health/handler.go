package health

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes serves /live and /ready. Mount it under /health.
func (c *Checker) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/live", c.LiveHandler)
	r.Get("/ready", c.ReadyHandler)

	return r
}

// LiveHandler only reports that the process is running.
func (c *Checker) LiveHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		slog.WarnContext(r.Context(), "failed to write health response", slog.String("error", err.Error()))
	}
}

// ReadyHandler reports every dependency and answers 503 when one is down.
func (c *Checker) ReadyHandler(w http.ResponseWriter, r *http.Request) {
	status := c.Check(r.Context())

	w.Header().Set("Content-Type", "application/json")

	if status.Status == StatusHealthy {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	if err := json.NewEncoder(w).Encode(status); err != nil {
		slog.WarnContext(r.Context(), "failed to write health response", slog.String("error", err.Error()))
	}
}
