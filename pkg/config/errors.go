package config

import "errors"

var (
	// ErrParsingConfig is returned when the config file or environment cannot be parsed.
	ErrParsingConfig = errors.New("failed to parse config")

	// ErrInvalidConfig is returned when a loaded config fails validation.
	ErrInvalidConfig = errors.New("invalid config")
)
