package validation

import "errors"

var ErrSchemaCompile = errors.New("failed to compile request schema")
