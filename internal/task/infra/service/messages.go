package task

const (
	msgTaskNotFound     = "task not found"
	msgTaskDeleted      = "task deleted successfully"
	msgMethodNotAllowed = "method not allowed"
	msgCreateTaskError  = "failed to create task"
	msgListTasksError   = "failed to list tasks"
	msgGetTaskError     = "failed to get task"
	msgUpdateTaskError  = "failed to update task"
	msgDeleteTaskError  = "failed to delete task"
)
