package config

import "errors"

// Ошибки конфигурации.
var (
	// ErrMissingEndpoint — не задан flow ID / endpoint.
	ErrMissingEndpoint = errors.New("missing flow endpoint")
)
