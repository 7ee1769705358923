package server

import "errors"

var (
	ErrConfigRequired    = errors.New("server config is required")
	ErrUnsupportedDriver = errors.New("unsupported persistence driver")
)
