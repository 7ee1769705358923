package task

//go:generate mockgen -destination=mock_task_repository.go -package=task github.com/KasumiMercury/primind-task-api/internal/task/domain/task TaskRepository
