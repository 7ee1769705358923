package task

import (
	"errors"

	domaintask "github.com/KasumiMercury/primind-task-api/internal/task/domain/task"
)

var (
	ErrCreateTaskRequestRequired = errors.New("create task request is required")
	ErrListTasksRequestRequired  = errors.New("list tasks request is required")
	ErrGetTaskRequestRequired    = errors.New("get task request is required")
	ErrUpdateTaskRequestRequired = errors.New("update task request is required")
	ErrDeleteTaskRequestRequired = errors.New("delete task request is required")
	ErrTaskNotFound              = domaintask.ErrTaskNotFound
	ErrPersistence               = domaintask.ErrPersistence
)
