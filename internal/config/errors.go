package config

import "errors"

var (
	ErrPersistenceLoad = errors.New("failed to load persistence config")
	ErrServerLoad      = errors.New("failed to load server config")
)
