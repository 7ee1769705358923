package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/KasumiMercury/primind-task-api/internal/observability/logging"
	"github.com/KasumiMercury/primind-task-api/internal/observability/middleware"
	apptask "github.com/KasumiMercury/primind-task-api/internal/task/app/task"
	"github.com/KasumiMercury/primind-task-api/internal/task/app/validation"
	domaintask "github.com/KasumiMercury/primind-task-api/internal/task/domain/task"
	tasksvc "github.com/KasumiMercury/primind-task-api/internal/task/infra/service"
)

const moduleName logging.Module = "task"

var (
	ErrTaskRepositoryMissing = errors.New("task repository is not configured")
	ErrSchemaSourceMissing   = errors.New("schema source is not configured")
)

type Repositories struct {
	Tasks domaintask.TaskRepository
}

// NewHTTPHandler wires the task use cases behind the REST routes.
// It returns the mount path, handler, and any initialization error.
func NewHTTPHandler(ctx context.Context, repos Repositories, schemas validation.SchemaSource) (string, http.Handler, error) {
	logger := slog.Default().With(
		slog.String("module", string(moduleName)),
	).WithGroup("task")

	logger.DebugContext(ctx, "initializing task service")

	if repos.Tasks == nil {
		return "", nil, ErrTaskRepositoryMissing
	}

	if schemas == nil {
		return "", nil, ErrSchemaSourceMissing
	}

	decoder, err := validation.NewBodyDecoder(schemas)
	if err != nil {
		logger.ErrorContext(ctx, "failed to build body decoder", slog.String("error", err.Error()))

		return "", nil, fmt.Errorf("failed to build body decoder: %w", err)
	}

	taskService := tasksvc.NewService(
		apptask.NewCreateTaskHandler(repos.Tasks),
		apptask.NewListTasksHandler(repos.Tasks),
		apptask.NewGetTaskHandler(repos.Tasks),
		apptask.NewUpdateTaskHandler(repos.Tasks),
		apptask.NewDeleteTaskHandler(repos.Tasks),
		decoder,
	)

	handler := middleware.RequestLogging(moduleName)(taskService.Routes())

	logger.InfoContext(ctx, "task service handler registered", slog.String("path", tasksvc.BasePath))

	return tasksvc.BasePath, handler, nil
}
