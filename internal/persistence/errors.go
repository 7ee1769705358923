package persistence

import "errors"

var (
	ErrConfigRequired = errors.New("persistence config is required")
	ErrConnect        = errors.New("failed to connect to store")
	ErrPing           = errors.New("store did not answer ping")
)
