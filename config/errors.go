package config

import "errors"

var (
	ErrUnknownClass = errors.New("unknown enemy class")
	ErrNoLevel      = errors.New("no level defined")
)
