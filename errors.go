package snapcast

import "errors"

var (
	// ErrConfigValidation is returned when configuration validation fails.
	ErrConfigValidation = errors.New("configuration validation failed")
	// ErrInvalidSessionTimeZone indicates session.time_zone names no known location.
	ErrInvalidSessionTimeZone = errors.New("invalid session time zone")
)
