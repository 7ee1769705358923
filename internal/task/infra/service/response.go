package task

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	apptask "github.com/KasumiMercury/primind-task-api/internal/task/app/task"
	"github.com/KasumiMercury/primind-task-api/internal/task/app/validation"
)

type taskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newTaskResponse(result *apptask.TaskResult) taskResponse {
	return taskResponse{
		ID:          result.TaskID,
		Title:       result.Title,
		Description: result.Description,
		Status:      string(result.TaskStatus),
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}
}

type validationErrorResponse struct {
	Errors validation.Violations `json:"errors"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.WarnContext(r.Context(), "failed to write response", slog.String("error", err.Error()))
	}
}

// writeError is the single place where an error kind becomes a status code.
// failureMessage is sent for anything that is neither a validation error nor
// a missing task, so store details never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, failureMessage string) {
	var verr *validation.ValidationError

	switch {
	case errors.As(err, &verr):
		logger.InfoContext(r.Context(), "request rejected", slog.String("error", err.Error()))
		writeJSON(w, r, http.StatusBadRequest, validationErrorResponse{Errors: verr.Violations})
	case errors.Is(err, apptask.ErrTaskNotFound):
		writeJSON(w, r, http.StatusNotFound, errorResponse{Error: msgTaskNotFound})
	default:
		logger.ErrorContext(r.Context(), failureMessage, slog.String("error", err.Error()))
		writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: failureMessage})
	}
}
