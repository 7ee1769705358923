package task

import "errors"

var (
	ErrIDInvalidFormat = errors.New("task ID must be a 24 character hex object id")
	ErrIDRequired      = errors.New("task ID is required")

	ErrTitleEmpty        = errors.New("task title cannot be empty")
	ErrInvalidTaskStatus = errors.New("invalid task status")
	ErrTaskNotFound      = errors.New("task not found")

	// ErrPersistence marks a store failure (unreachable store, rejected write).
	ErrPersistence = errors.New("task persistence failed")
)
