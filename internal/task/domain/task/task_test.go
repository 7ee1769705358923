package task

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNewIDFromStringSuccess(t *testing.T) {
	validID := NewID()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "generated id", input: validID.String(), expected: validID.String()},
		{name: "fixed lowercase id", input: "6772da28053629f18309b6e3", expected: "6772da28053629f18309b6e3"},
		{name: "uppercase hex is accepted", input: "6772DA28053629F18309B6E3", expected: "6772da28053629f18309b6e3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewIDFromString(tt.input)
			if err != nil {
				t.Fatalf("NewIDFromString(%q) unexpected error: %v", tt.input, err)
			}

			if id.String() != tt.expected {
				t.Errorf("NewIDFromString(%q) = %q, want %q", tt.input, id.String(), tt.expected)
			}

			if !IsValidID(tt.input) {
				t.Errorf("IsValidID(%q) = false, want true", tt.input)
			}
		})
	}
}

func TestNewIDFromStringErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "not hex", input: "not-a-valid-id"},
		{name: "too short", input: "6772da28053629f18309b6e"},
		{name: "too long", input: "6772da28053629f18309b6e3a"},
		{name: "non hex with correct length", input: strings.Repeat("z", 24)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewIDFromString(tt.input)
			if err == nil {
				t.Fatalf("NewIDFromString(%q) expected error, got ID: %s", tt.input, id.String())
			}

			if !errors.Is(err, ErrIDInvalidFormat) {
				t.Errorf("NewIDFromString(%q) error = %v, want %v", tt.input, err, ErrIDInvalidFormat)
			}

			if IsValidID(tt.input) {
				t.Errorf("IsValidID(%q) = true, want false", tt.input)
			}
		})
	}
}

func TestNewStatus(t *testing.T) {
	t.Parallel()

	for _, s := range Statuses() {
		got, err := NewStatus(string(s))
		if err != nil {
			t.Fatalf("NewStatus(%q) unexpected error: %v", s, err)
		}

		if got != s {
			t.Errorf("NewStatus(%q) = %q", s, got)
		}
	}

	for _, input := range []string{"", "done", "PENDING", "active"} {
		if _, err := NewStatus(input); !errors.Is(err, ErrInvalidTaskStatus) {
			t.Errorf("NewStatus(%q) error = %v, want %v", input, err, ErrInvalidTaskStatus)
		}
	}
}

func TestCreateTask(t *testing.T) {
	desc := "two litres"
	completed := StatusCompleted
	invalid := Status("archived")

	tests := []struct {
		name           string
		title          string
		description    *string
		status         *Status
		expectedStatus Status
		expectedErr    error
	}{
		{name: "status defaults to pending", title: "Buy milk", expectedStatus: StatusPending},
		{name: "explicit status", title: "Buy milk", description: &desc, status: &completed, expectedStatus: StatusCompleted},
		{name: "empty title", title: "", expectedErr: ErrTitleEmpty},
		{name: "invalid status", title: "Buy milk", status: &invalid, expectedErr: ErrInvalidTaskStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := CreateTask(tt.title, tt.description, tt.status)
			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("CreateTask() error = %v, want %v", err, tt.expectedErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("CreateTask() unexpected error: %v", err)
			}

			if task.IsPersisted() {
				t.Errorf("CreateTask() returned a task with an id")
			}

			if task.TaskStatus() != tt.expectedStatus {
				t.Errorf("TaskStatus() = %q, want %q", task.TaskStatus(), tt.expectedStatus)
			}

			if diff := cmp.Diff(tt.description, task.Description()); diff != "" {
				t.Errorf("Description() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewTaskErrors(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name        string
		id          ID
		title       string
		status      Status
		expectedErr error
	}{
		{name: "zero id", id: ID{}, title: "t", status: StatusPending, expectedErr: ErrIDRequired},
		{name: "empty title", id: NewID(), title: "", status: StatusPending, expectedErr: ErrTitleEmpty},
		{name: "unknown status", id: NewID(), title: "t", status: "archived", expectedErr: ErrInvalidTaskStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTask(tt.id, tt.title, nil, tt.status, now, now); !errors.Is(err, tt.expectedErr) {
				t.Fatalf("NewTask() error = %v, want %v", err, tt.expectedErr)
			}
		})
	}
}

func TestNewTaskNormalizesTimestamps(t *testing.T) {
	loc := time.FixedZone("JST", 9*60*60)
	createdAt := time.Date(2024, 1, 1, 19, 0, 0, 123456789, loc)

	task, err := NewTask(NewID(), "t", nil, StatusPending, createdAt, createdAt)
	if err != nil {
		t.Fatalf("NewTask() unexpected error: %v", err)
	}

	want := time.Date(2024, 1, 1, 10, 0, 0, 123000000, time.UTC)
	if !task.CreatedAt().Equal(want) || task.CreatedAt().Location() != time.UTC {
		t.Errorf("CreatedAt() = %v, want %v", task.CreatedAt(), want)
	}
}

func TestUpdateApply(t *testing.T) {
	desc := "original"
	createdAt := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	base, err := NewTask(NewID(), "original title", &desc, StatusPending, createdAt, createdAt)
	if err != nil {
		t.Fatalf("NewTask() unexpected error: %v", err)
	}

	newTitle := "new title"
	completed := StatusCompleted

	update, err := NewUpdate(&newTitle, nil, &completed)
	if err != nil {
		t.Fatalf("NewUpdate() unexpected error: %v", err)
	}

	got := update.Apply(base)

	if got.Title() != newTitle {
		t.Errorf("Title() = %q, want %q", got.Title(), newTitle)
	}

	if got.TaskStatus() != StatusCompleted {
		t.Errorf("TaskStatus() = %q, want %q", got.TaskStatus(), StatusCompleted)
	}

	if got.Description() == nil || *got.Description() != desc {
		t.Errorf("Description() = %v, want %q", got.Description(), desc)
	}

	if got.ID() != base.ID() || !got.CreatedAt().Equal(base.CreatedAt()) {
		t.Errorf("Apply() changed id or createdAt")
	}

	if base.Title() != "original title" {
		t.Errorf("Apply() mutated the original task")
	}
}

func TestNewUpdate(t *testing.T) {
	empty := ""
	invalid := Status("archived")

	if _, err := NewUpdate(&empty, nil, nil); !errors.Is(err, ErrTitleEmpty) {
		t.Errorf("NewUpdate(empty title) error = %v, want %v", err, ErrTitleEmpty)
	}

	if _, err := NewUpdate(nil, nil, &invalid); !errors.Is(err, ErrInvalidTaskStatus) {
		t.Errorf("NewUpdate(invalid status) error = %v, want %v", err, ErrInvalidTaskStatus)
	}

	update, err := NewUpdate(nil, nil, nil)
	if err != nil {
		t.Fatalf("NewUpdate() unexpected error: %v", err)
	}

	if !update.IsEmpty() {
		t.Errorf("IsEmpty() = false, want true")
	}

	update, err = NewUpdate(nil, &empty, nil)
	if err != nil {
		t.Fatalf("NewUpdate(empty description) unexpected error: %v", err)
	}

	if update.IsEmpty() {
		t.Errorf("IsEmpty() = true for a description update")
	}
}

func TestFilterMatches(t *testing.T) {
	now := time.Now()

	pending, _ := NewTask(NewID(), "p", nil, StatusPending, now, now)
	completed, _ := NewTask(NewID(), "c", nil, StatusCompleted, now, now)

	completedStatus := StatusCompleted
	filter := NewFilter(&completedStatus)

	if filter.Matches(pending) {
		t.Errorf("completed filter matched a pending task")
	}

	if !filter.Matches(completed) {
		t.Errorf("completed filter did not match a completed task")
	}

	all := NewFilter(nil)
	if _, ok := all.TaskStatus(); ok {
		t.Errorf("empty filter reported a status")
	}

	if !all.Matches(pending) || !all.Matches(completed) {
		t.Errorf("empty filter must match every task")
	}
}
