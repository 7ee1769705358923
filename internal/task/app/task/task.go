package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-task-api/internal/task/app/validation"
	domaintask "github.com/KasumiMercury/primind-task-api/internal/task/domain/task"
)

type TaskResult struct {
	TaskID      string
	Title       string
	Description *string
	TaskStatus  domaintask.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func newTaskResult(task *domaintask.Task) *TaskResult {
	return &TaskResult{
		TaskID:      task.ID().String(),
		Title:       task.Title(),
		Description: task.Description(),
		TaskStatus:  task.TaskStatus(),
		CreatedAt:   task.CreatedAt(),
		UpdatedAt:   task.UpdatedAt(),
	}
}

// classifyRepositoryError keeps ErrTaskNotFound as is and folds every other
// repository failure into ErrPersistence.
func classifyRepositoryError(err error) error {
	switch {
	case errors.Is(err, domaintask.ErrTaskNotFound):
		return ErrTaskNotFound
	case errors.Is(err, domaintask.ErrPersistence):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
}

type CreateTaskRequest struct {
	Title       string
	Description *string
	TaskStatus  *domaintask.Status
}

type CreateTaskUseCase interface {
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResult, error)
}

type createTaskHandler struct {
	taskRepo domaintask.TaskRepository
	logger   *slog.Logger
}

func NewCreateTaskHandler(taskRepo domaintask.TaskRepository) CreateTaskUseCase {
	return &createTaskHandler{
		taskRepo: taskRepo,
		logger:   slog.Default().WithGroup("task").WithGroup("createtask"),
	}
}

func (h *createTaskHandler) CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResult, error) {
	if req == nil {
		return nil, ErrCreateTaskRequestRequired
	}

	task, err := domaintask.CreateTask(req.Title, req.Description, req.TaskStatus)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to create task entity", slog.String("error", err.Error()))

		return nil, validation.FromDomainError(err)
	}

	saved, err := h.taskRepo.CreateTask(ctx, task)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to save task", slog.String("error", err.Error()))

		return nil, classifyRepositoryError(err)
	}

	h.logger.InfoContext(ctx, "task created successfully", slog.String("task_id", saved.ID().String()))

	return newTaskResult(saved), nil
}

type ListTasksRequest struct {
	TaskStatus *domaintask.Status
}

type ListTasksResult struct {
	Tasks []*TaskResult
}

type ListTasksUseCase interface {
	ListTasks(ctx context.Context, req *ListTasksRequest) (*ListTasksResult, error)
}

type listTasksHandler struct {
	taskRepo domaintask.TaskRepository
	logger   *slog.Logger
}

func NewListTasksHandler(taskRepo domaintask.TaskRepository) ListTasksUseCase {
	return &listTasksHandler{
		taskRepo: taskRepo,
		logger:   slog.Default().WithGroup("task").WithGroup("listtasks"),
	}
}

func (h *listTasksHandler) ListTasks(ctx context.Context, req *ListTasksRequest) (*ListTasksResult, error) {
	if req == nil {
		return nil, ErrListTasksRequestRequired
	}

	if req.TaskStatus != nil {
		if _, err := domaintask.NewStatus(string(*req.TaskStatus)); err != nil {
			h.logger.WarnContext(ctx, "invalid status filter", slog.String("error", err.Error()))

			return nil, validation.Violations{{
				Field:    validation.FieldStatus,
				Message:  validation.MsgInvalidStatus,
				Location: validation.LocationQuery,
			}}.Err()
		}
	}

	tasks, err := h.taskRepo.ListTasks(ctx, domaintask.NewFilter(req.TaskStatus))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list tasks", slog.String("error", err.Error()))

		return nil, classifyRepositoryError(err)
	}

	results := make([]*TaskResult, 0, len(tasks))
	for _, task := range tasks {
		results = append(results, newTaskResult(task))
	}

	h.logger.DebugContext(ctx, "tasks listed", slog.Int("count", len(results)))

	return &ListTasksResult{Tasks: results}, nil
}

type GetTaskRequest struct {
	TaskID string
}

type GetTaskUseCase interface {
	GetTask(ctx context.Context, req *GetTaskRequest) (*TaskResult, error)
}

type getTaskHandler struct {
	taskRepo domaintask.TaskRepository
	logger   *slog.Logger
}

func NewGetTaskHandler(taskRepo domaintask.TaskRepository) GetTaskUseCase {
	return &getTaskHandler{
		taskRepo: taskRepo,
		logger:   slog.Default().WithGroup("task").WithGroup("gettask"),
	}
}

func (h *getTaskHandler) GetTask(ctx context.Context, req *GetTaskRequest) (*TaskResult, error) {
	if req == nil {
		return nil, ErrGetTaskRequestRequired
	}

	taskID, err := domaintask.NewIDFromString(req.TaskID)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid task ID format", slog.String("error", err.Error()))

		return nil, validation.FromDomainError(err)
	}

	task, err := h.taskRepo.GetTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, domaintask.ErrTaskNotFound) {
			h.logger.InfoContext(ctx, "task not found", slog.String("task_id", req.TaskID))

			return nil, ErrTaskNotFound
		}

		h.logger.ErrorContext(ctx, "failed to get task", slog.String("error", err.Error()))

		return nil, classifyRepositoryError(err)
	}

	return newTaskResult(task), nil
}

type UpdateTaskRequest struct {
	TaskID      string
	Title       *string
	Description *string
	TaskStatus  *domaintask.Status
}

type UpdateTaskUseCase interface {
	UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*TaskResult, error)
}

type updateTaskHandler struct {
	taskRepo domaintask.TaskRepository
	logger   *slog.Logger
}

func NewUpdateTaskHandler(taskRepo domaintask.TaskRepository) UpdateTaskUseCase {
	return &updateTaskHandler{
		taskRepo: taskRepo,
		logger:   slog.Default().WithGroup("task").WithGroup("updatetask"),
	}
}

func (h *updateTaskHandler) UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*TaskResult, error) {
	if req == nil {
		return nil, ErrUpdateTaskRequestRequired
	}

	taskID, err := domaintask.NewIDFromString(req.TaskID)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid task ID format", slog.String("error", err.Error()))

		return nil, validation.FromDomainError(err)
	}

	update, err := domaintask.NewUpdate(req.Title, req.Description, req.TaskStatus)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid task update", slog.String("error", err.Error()))

		return nil, validation.FromDomainError(err)
	}

	task, err := h.taskRepo.UpdateTaskByID(ctx, taskID, update)
	if err != nil {
		if errors.Is(err, domaintask.ErrTaskNotFound) {
			h.logger.InfoContext(ctx, "task not found", slog.String("task_id", req.TaskID))

			return nil, ErrTaskNotFound
		}

		h.logger.ErrorContext(ctx, "failed to update task", slog.String("error", err.Error()))

		return nil, classifyRepositoryError(err)
	}

	h.logger.InfoContext(ctx, "task updated successfully",
		slog.String("task_id", req.TaskID),
		slog.Bool("noop", update.IsEmpty()),
	)

	return newTaskResult(task), nil
}

type DeleteTaskRequest struct {
	TaskID string
}

type DeleteTaskUseCase interface {
	DeleteTask(ctx context.Context, req *DeleteTaskRequest) (*TaskResult, error)
}

type deleteTaskHandler struct {
	taskRepo domaintask.TaskRepository
	logger   *slog.Logger
}

func NewDeleteTaskHandler(taskRepo domaintask.TaskRepository) DeleteTaskUseCase {
	return &deleteTaskHandler{
		taskRepo: taskRepo,
		logger:   slog.Default().WithGroup("task").WithGroup("deletetask"),
	}
}

func (h *deleteTaskHandler) DeleteTask(ctx context.Context, req *DeleteTaskRequest) (*TaskResult, error) {
	if req == nil {
		return nil, ErrDeleteTaskRequestRequired
	}

	taskID, err := domaintask.NewIDFromString(req.TaskID)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid task ID format", slog.String("error", err.Error()))

		return nil, validation.FromDomainError(err)
	}

	deleted, err := h.taskRepo.DeleteTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, domaintask.ErrTaskNotFound) {
			h.logger.InfoContext(ctx, "task not found", slog.String("task_id", req.TaskID))

			return nil, ErrTaskNotFound
		}

		h.logger.ErrorContext(ctx, "failed to delete task", slog.String("error", err.Error()))

		return nil, classifyRepositoryError(err)
	}

	h.logger.InfoContext(ctx, "task deleted successfully", slog.String("task_id", req.TaskID))

	return newTaskResult(deleted), nil
}
