package task

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ID primitive.ObjectID

func NewID() ID {
	return ID(primitive.NewObjectID())
}

func NewIDFromString(idStr string) (ID, error) {
	oid, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %v", ErrIDInvalidFormat, err)
	}

	return ID(oid), nil
}

// IsValidID reports whether idStr is a 24 character hexadecimal object id.
func IsValidID(idStr string) bool {
	return primitive.IsValidObjectID(idStr)
}

func (id ID) String() string {
	return primitive.ObjectID(id).Hex()
}

func (id ID) IsZero() bool {
	return primitive.ObjectID(id).IsZero()
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Statuses lists every accepted status in display order.
func Statuses() []Status {
	return []Status{StatusPending, StatusCompleted}
}

func NewStatus(s string) (Status, error) {
	switch s {
	case string(StatusPending), string(StatusCompleted):
		return Status(s), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidTaskStatus, s)
	}
}

type Task struct {
	id          ID
	title       string
	description *string
	taskStatus  Status
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTask rebuilds a persisted task. Timestamps are normalized to UTC millisecond
// precision, which is what both backends can round-trip.
func NewTask(
	id ID,
	title string,
	description *string,
	taskStatus Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Task, error) {
	if id.IsZero() {
		return nil, ErrIDRequired
	}

	if title == "" {
		return nil, ErrTitleEmpty
	}

	if _, err := NewStatus(string(taskStatus)); err != nil {
		return nil, err
	}

	return &Task{
		id:          id,
		title:       title,
		description: copyString(description),
		taskStatus:  taskStatus,
		createdAt:   normalizeTime(createdAt),
		updatedAt:   normalizeTime(updatedAt),
	}, nil
}

// CreateTask builds a task that has not been stored yet. The repository assigns
// the id and timestamps when it persists the task. A nil status means pending.
func CreateTask(title string, description *string, taskStatus *Status) (*Task, error) {
	if title == "" {
		return nil, ErrTitleEmpty
	}

	status := StatusPending
	if taskStatus != nil {
		s, err := NewStatus(string(*taskStatus))
		if err != nil {
			return nil, err
		}

		status = s
	}

	return &Task{
		title:       title,
		description: copyString(description),
		taskStatus:  status,
	}, nil
}

func (t *Task) ID() ID {
	return t.id
}

func (t *Task) Title() string {
	return t.title
}

func (t *Task) Description() *string {
	return copyString(t.description)
}

func (t *Task) TaskStatus() Status {
	return t.taskStatus
}

func (t *Task) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Task) UpdatedAt() time.Time {
	return t.updatedAt
}

// IsPersisted reports whether the task has been assigned an id by a repository.
func (t *Task) IsPersisted() bool {
	return !t.id.IsZero()
}

func normalizeTime(v time.Time) time.Time {
	if v.IsZero() {
		return v
	}

	return v.UTC().Truncate(time.Millisecond)
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}

	v := *s

	return &v
}
