package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retrying is opt-in; the request layer itself never retries.
const (
	// DefaultRetryMax disables transport retries unless configured.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Helix API hosts.
const (
	// DefaultUserAgent identifies this client in requests.
	DefaultUserAgent = "helix-client/1.0"

	// HelixBaseURL is the base URL for Helix API routes.
	HelixBaseURL = "https://api.twitch.tv/helix/"

	// IDBaseURL is the base URL for identity and auth routes.
	IDBaseURL = "https://id.twitch.tv/"
)

// Pagination and display limits.
const (
	// DefaultPageSize is the Helix default number of items per page.
	DefaultPageSize = 20

	// MaxPageSize is the largest page size Helix accepts on most endpoints.
	MaxPageSize = 100
)

// Cache sizes and lifetimes.
const (
	// DefaultCacheSize is the default cache entry limit.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is the default cache time-to-live.
	DefaultCacheTTL = 5 * time.Minute

	// MaxCacheValueSize is the maximum size for cached values (1MB).
	MaxCacheValueSize = 1024 * 1024
)

// Circuit breaker tuning.
const (
	// CircuitBreakerThreshold is the failure threshold for the circuit breaker.
	CircuitBreakerThreshold = 5

	// CircuitBreakerSuccessThreshold is the success threshold for the circuit breaker.
	CircuitBreakerSuccessThreshold = 2

	// CircuitBreakerTimeout is the open-state timeout for the circuit breaker.
	CircuitBreakerTimeout = 30 * time.Second
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// Boolean string constants.
const (
	// BooleanTrue string representation.
	BooleanTrue = "true"

	// BooleanFalse string representation.
	BooleanFalse = "false"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2

	// TitleDisplayLength is the default length for truncating stream titles.
	TitleDisplayLength = 50
)
