package docs

import "errors"

var (
	ErrInvalidDocument = errors.New("openapi document is invalid")
	ErrSchemaNotFound  = errors.New("openapi schema not found")
)
