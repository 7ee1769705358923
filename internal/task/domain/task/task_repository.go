package task

import "context"

// TaskRepository is the only component that talks to the task store.
// A missing task is reported as ErrTaskNotFound; store failures wrap ErrPersistence.
type TaskRepository interface {
	CreateTask(ctx context.Context, task *Task) (*Task, error)
	ListTasks(ctx context.Context, filter Filter) ([]*Task, error)
	GetTaskByID(ctx context.Context, id ID) (*Task, error)
	UpdateTaskByID(ctx context.Context, id ID, update Update) (*Task, error)
	DeleteTaskByID(ctx context.Context, id ID) (*Task, error)
}
