// Package config assembles the process configuration of the catalog API.
package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"catalog-api/internal/cache"
	envconfig "catalog-api/pkg/config"
)

// AppConfig holds the settings read once at startup by cmd/api.
type AppConfig struct {
	// HTTPAddr is the listen address. Default: ":8080"
	HTTPAddr string

	// LogLevel is "debug", "info", "warn" or "error". Default: "info"
	LogLevel string

	// Version is reported by the health endpoints. Default: "dev"
	Version string

	// SeedData inserts the embedded catalog when the products table is empty.
	// Default: true
	SeedData bool

	// ShutdownTimeout bounds graceful shutdown. Default: 10s
	ShutdownTimeout time.Duration

	// RequestTimeout bounds each API request; 0 disables it. Default: 30s
	RequestTimeout time.Duration

	Cache CacheConfig
}

// CacheConfig configures the process-local cache store.
type CacheConfig struct {
	// DefaultExpiration applies to entries set without an absolute expiration.
	// Default: 10m
	DefaultExpiration time.Duration

	// SweepSchedule is a robfig/cron spec for removing expired entries.
	// Default: "@every 1m"
	SweepSchedule string
}

// LoadAppConfig reads AppConfig from the environment and validates it.
func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		HTTPAddr:        envconfig.GetEnvString("HTTP_ADDR", ":8080"),
		LogLevel:        envconfig.GetEnvString("LOG_LEVEL", "info"),
		Version:         envconfig.GetEnvString("VERSION", "dev"),
		SeedData:        envconfig.GetEnvBool("SEED_DATA", true),
		ShutdownTimeout: envconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		RequestTimeout:  envconfig.GetEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		Cache: CacheConfig{
			DefaultExpiration: envconfig.GetEnvDuration("CACHE_DEFAULT_EXPIRATION", cache.DefaultExpiration),
			SweepSchedule:     envconfig.GetEnvString("CACHE_SWEEP_SCHEDULE", cache.DefaultSweepSchedule),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid application configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration correctness.
func (c *AppConfig) Validate() error {
	if c.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR cannot be empty")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", c.LogLevel)
	}

	if err := envconfig.ValidatePositiveDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	if err := envconfig.ValidateNonNegativeDuration(c.RequestTimeout); err != nil {
		return fmt.Errorf("REQUEST_TIMEOUT: %w", err)
	}

	if err := envconfig.ValidatePositiveDuration(c.Cache.DefaultExpiration); err != nil {
		return fmt.Errorf("CACHE_DEFAULT_EXPIRATION: %w", err)
	}

	if _, err := cron.ParseStandard(c.Cache.SweepSchedule); err != nil {
		return fmt.Errorf("CACHE_SWEEP_SCHEDULE: %w", err)
	}

	return nil
}

// StoreConfig converts the cache settings into a cache.Config named name.
func (c CacheConfig) StoreConfig(name string) cache.Config {
	cfg := cache.DefaultConfig()
	cfg.Name = name
	cfg.DefaultExpiration = c.DefaultExpiration
	return cfg
}
