package server

import "errors"

var (
	ErrInvalidPort            = errors.New("invalid server port")
	ErrInvalidAPIURL          = errors.New("api URL is invalid")
	ErrInvalidShutdownTimeout = errors.New("invalid shutdown timeout")
)
