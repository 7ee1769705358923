package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	domaintask "github.com/KasumiMercury/primind-task-api/internal/task/domain/task"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TaskModel struct {
	ID          string    `gorm:"type:char(24);primaryKey"`
	Title       string    `gorm:"type:text;not null"`
	Description *string   `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(50);not null;index:idx_tasks_status"`
	CreatedAt   time.Time `gorm:"type:timestamptz;not null"`
	UpdatedAt   time.Time `gorm:"type:timestamptz;not null"`
}

func (TaskModel) TableName() string {
	return "tasks"
}

type postgresTaskRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewPostgresTaskRepository(db *gorm.DB) domaintask.TaskRepository {
	return &postgresTaskRepository{db: db, now: time.Now}
}

func (r *postgresTaskRepository) CreateTask(ctx context.Context, task *domaintask.Task) (*domaintask.Task, error) {
	if task == nil {
		return nil, ErrTaskRequired
	}

	if task.IsPersisted() {
		return nil, ErrTaskAlreadyPersisted
	}

	now := r.now().UTC().Truncate(time.Millisecond)
	record := TaskModel{
		ID:          domaintask.NewID().String(),
		Title:       task.Title(),
		Description: task.Description(),
		Status:      string(task.TaskStatus()),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("%w: %w", domaintask.ErrPersistence, err)
	}

	return record.toDomain()
}

func (r *postgresTaskRepository) ListTasks(ctx context.Context, filter domaintask.Filter) ([]*domaintask.Task, error) {
	query := r.db.WithContext(ctx).Order("created_at ASC, id ASC")
	if status, ok := filter.TaskStatus(); ok {
		query = query.Where("status = ?", string(status))
	}

	var records []TaskModel
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: %w", domaintask.ErrPersistence, err)
	}

	tasks := make([]*domaintask.Task, 0, len(records))

	for _, record := range records {
		task, err := record.toDomain()
		if err != nil {
			return nil, err
		}

		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (r *postgresTaskRepository) GetTaskByID(ctx context.Context, id domaintask.ID) (*domaintask.Task, error) {
	var record TaskModel
	if err := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domaintask.ErrTaskNotFound
		}

		return nil, fmt.Errorf("%w: %w", domaintask.ErrPersistence, err)
	}

	return record.toDomain()
}

// UpdateTaskByID runs a single UPDATE ... RETURNING so the write and the read
// of the result cannot interleave with another request.
func (r *postgresTaskRepository) UpdateTaskByID(ctx context.Context, id domaintask.ID, update domaintask.Update) (*domaintask.Task, error) {
	if update.IsEmpty() {
		return r.GetTaskByID(ctx, id)
	}

	columns := map[string]any{
		"updated_at": r.now().UTC().Truncate(time.Millisecond),
	}

	if title := update.Title(); title != nil {
		columns["title"] = *title
	}

	if description := update.Description(); description != nil {
		columns["description"] = *description
	}

	if status := update.TaskStatus(); status != nil {
		columns["status"] = string(*status)
	}

	var records []TaskModel

	result := r.db.WithContext(ctx).
		Model(&records).
		Clauses(clause.Returning{}).
		Where("id = ?", id.String()).
		Updates(columns)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %w", domaintask.ErrPersistence, result.Error)
	}

	if result.RowsAffected == 0 || len(records) == 0 {
		return nil, domaintask.ErrTaskNotFound
	}

	return records[0].toDomain()
}

func (r *postgresTaskRepository) DeleteTaskByID(ctx context.Context, id domaintask.ID) (*domaintask.Task, error) {
	var records []TaskModel

	result := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id.String()).
		Delete(&records)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %w", domaintask.ErrPersistence, result.Error)
	}

	if result.RowsAffected == 0 || len(records) == 0 {
		return nil, domaintask.ErrTaskNotFound
	}

	return records[0].toDomain()
}

func (m TaskModel) toDomain() (*domaintask.Task, error) {
	id, err := domaintask.NewIDFromString(m.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", domaintask.ErrPersistence, ErrCorruptedRecord, err)
	}

	status, err := domaintask.NewStatus(m.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", domaintask.ErrPersistence, ErrCorruptedRecord, err)
	}

	task, err := domaintask.NewTask(id, m.Title, m.Description, status, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", domaintask.ErrPersistence, ErrCorruptedRecord, err)
	}

	return task, nil
}
