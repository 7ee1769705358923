package task

//go:generate mockgen -destination=mock_usecases.go -package=task github.com/KasumiMercury/primind-task-api/internal/task/app/task CreateTaskUseCase,ListTasksUseCase,GetTaskUseCase,UpdateTaskUseCase,DeleteTaskUseCase
