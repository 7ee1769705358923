package repository

import "errors"

var (
	ErrTaskRequired         = errors.New("task is required")
	ErrTaskAlreadyPersisted = errors.New("task already has an id")
	ErrCorruptedRecord      = errors.New("stored task record is invalid")
)
