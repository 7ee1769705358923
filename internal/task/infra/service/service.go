package task

import (
	"log/slog"
	"net/http"

	apptask "github.com/KasumiMercury/primind-task-api/internal/task/app/task"
	"github.com/KasumiMercury/primind-task-api/internal/task/app/validation"
	domaintask "github.com/KasumiMercury/primind-task-api/internal/task/domain/task"
)

type Service struct {
	createTask apptask.CreateTaskUseCase
	listTasks  apptask.ListTasksUseCase
	getTask    apptask.GetTaskUseCase
	updateTask apptask.UpdateTaskUseCase
	deleteTask apptask.DeleteTaskUseCase
	decoder    *validation.BodyDecoder
	logger     *slog.Logger
}

func NewService(
	createTaskUseCase apptask.CreateTaskUseCase,
	listTasksUseCase apptask.ListTasksUseCase,
	getTaskUseCase apptask.GetTaskUseCase,
	updateTaskUseCase apptask.UpdateTaskUseCase,
	deleteTaskUseCase apptask.DeleteTaskUseCase,
	decoder *validation.BodyDecoder,
) *Service {
	return &Service{
		createTask: createTaskUseCase,
		listTasks:  listTasksUseCase,
		getTask:    getTaskUseCase,
		updateTask: updateTaskUseCase,
		deleteTask: deleteTaskUseCase,
		decoder:    decoder,
		logger:     slog.Default().WithGroup("task").WithGroup("service"),
	}
}

func (s *Service) CreateTask(w http.ResponseWriter, r *http.Request) {
	in := inputFromContext(r.Context())

	req := &apptask.CreateTaskRequest{
		Description: in.create.Description,
		TaskStatus:  toStatus(in.create.Status),
	}
	if in.create.Title != nil {
		req.Title = *in.create.Title
	}

	result, err := s.createTask.CreateTask(r.Context(), req)
	if err != nil {
		writeError(w, r, s.logger, err, msgCreateTaskError)

		return
	}

	s.logger.InfoContext(r.Context(), "task created", slog.String("task_id", result.TaskID))

	writeJSON(w, r, http.StatusCreated, newTaskResponse(result))
}

func (s *Service) ListTasks(w http.ResponseWriter, r *http.Request) {
	in := inputFromContext(r.Context())

	result, err := s.listTasks.ListTasks(r.Context(), &apptask.ListTasksRequest{TaskStatus: in.taskStatus})
	if err != nil {
		writeError(w, r, s.logger, err, msgListTasksError)

		return
	}

	tasks := make([]taskResponse, 0, len(result.Tasks))
	for _, task := range result.Tasks {
		tasks = append(tasks, newTaskResponse(task))
	}

	writeJSON(w, r, http.StatusOK, tasks)
}

func (s *Service) GetTask(w http.ResponseWriter, r *http.Request) {
	in := inputFromContext(r.Context())

	result, err := s.getTask.GetTask(r.Context(), &apptask.GetTaskRequest{TaskID: in.taskID})
	if err != nil {
		writeError(w, r, s.logger, err, msgGetTaskError)

		return
	}

	writeJSON(w, r, http.StatusOK, newTaskResponse(result))
}

func (s *Service) UpdateTask(w http.ResponseWriter, r *http.Request) {
	in := inputFromContext(r.Context())

	result, err := s.updateTask.UpdateTask(r.Context(), &apptask.UpdateTaskRequest{
		TaskID:      in.taskID,
		Title:       in.update.Title,
		Description: in.update.Description,
		TaskStatus:  toStatus(in.update.Status),
	})
	if err != nil {
		writeError(w, r, s.logger, err, msgUpdateTaskError)

		return
	}

	s.logger.InfoContext(r.Context(), "task updated", slog.String("task_id", result.TaskID))

	writeJSON(w, r, http.StatusOK, newTaskResponse(result))
}

func (s *Service) DeleteTask(w http.ResponseWriter, r *http.Request) {
	in := inputFromContext(r.Context())

	result, err := s.deleteTask.DeleteTask(r.Context(), &apptask.DeleteTaskRequest{TaskID: in.taskID})
	if err != nil {
		writeError(w, r, s.logger, err, msgDeleteTaskError)

		return
	}

	s.logger.InfoContext(r.Context(), "task deleted", slog.String("task_id", result.TaskID))

	writeJSON(w, r, http.StatusOK, messageResponse{Message: msgTaskDeleted})
}

func toStatus(s *string) *domaintask.Status {
	if s == nil {
		return nil
	}

	status := domaintask.Status(*s)

	return &status
}
