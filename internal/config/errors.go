package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates invalid HTTP client settings
	// (for example, empty base URL or non-positive timeout).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidFetchConfigs indicates an unknown resource or a
	// non-positive page or limit.
	ErrInvalidFetchConfigs = errors.New("invalid fetch configuration")
)
