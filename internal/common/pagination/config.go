package pagination

import (
	"catalog-api/pkg/config"
)

// Config holds pagination configuration settings.
type Config struct {
	DefaultPageIndex int // Page index used when the query omits it (1)
	DefaultPageSize  int // Page size used when the query omits it (5)
	MaxPageSize      int // Largest accepted page size; 0 leaves pageSize unbounded
}

// DefaultConfig returns the default pagination configuration.
func DefaultConfig() Config {
	return Config{
		DefaultPageIndex: 1,
		DefaultPageSize:  5,
	}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_DEFAULT_PAGE: Default page index
//   - PAGINATION_DEFAULT_SIZE: Default page size
//   - PAGINATION_MAX_SIZE: Optional upper bound on pageSize (0 disables it)
//
// Unset, unparsable or out-of-range values fall back to DefaultConfig().
func LoadFromEnv() Config {
	def := DefaultConfig()
	return Config{
		DefaultPageIndex: positiveOr(config.GetEnvInt("PAGINATION_DEFAULT_PAGE", def.DefaultPageIndex), def.DefaultPageIndex),
		DefaultPageSize:  positiveOr(config.GetEnvInt("PAGINATION_DEFAULT_SIZE", def.DefaultPageSize), def.DefaultPageSize),
		MaxPageSize:      nonNegativeOr(config.GetEnvInt("PAGINATION_MAX_SIZE", def.MaxPageSize), def.MaxPageSize),
	}
}

func positiveOr(v, fallback int) int {
	if v < 1 {
		return fallback
	}
	return v
}

func nonNegativeOr(v, fallback int) int {
	if v < 0 {
		return fallback
	}
	return v
}
