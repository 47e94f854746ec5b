package constants

import "errors"

// Configuration errors.
var (
	ErrNoClientIDConfigured = errors.New("no client ID configured, set client-id in the config or pass --client-id")
	ErrNoTokenConfigured    = errors.New("no access token configured, use 'helix login' to store one")
	ErrUnknownConfigKey     = errors.New("unknown configuration key")
)

// Validation errors.
var (
	ErrInvalidOutputFormat = errors.New("output format must be 'table', 'json' or 'yaml'")
	ErrInvalidFirst        = errors.New("first must be between 0 and 100")
)
