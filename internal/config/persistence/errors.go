package persistence

import "errors"

var (
	ErrUnknownDriver      = errors.New("unknown persistence driver")
	ErrMongoURIMissing    = errors.New("mongo uri is required")
	ErrMongoDBMissing     = errors.New("mongo database name is required")
	ErrPostgresDSNMissing = errors.New("postgres dsn is required")
)
