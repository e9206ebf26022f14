// SPDX-License-Identifier: MIT

// Package config loads crntk settings from a YAML file and CRNTK_*
// environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/katalvlaran/crntk/internal/cache"
	"github.com/katalvlaran/crntk/internal/logging"
	"github.com/katalvlaran/crntk/internal/metrics"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config is the root configuration.
type Config struct {
	Log     logging.Config `mapstructure:"log" yaml:"log" json:"log"`
	Output  OutputConfig   `mapstructure:"output" yaml:"output" json:"output"`
	Server  ServerConfig   `mapstructure:"server" yaml:"server" json:"server"`
	Metrics MetricsConfig  `mapstructure:"metrics" yaml:"metrics" json:"metrics"`
	Cache   CacheConfig    `mapstructure:"cache" yaml:"cache" json:"cache"`
}

// OutputConfig controls how command results are rendered.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format"`
	Color  string `mapstructure:"color" yaml:"color" json:"color"`
}

// ServerConfig configures `crntk serve`.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr" yaml:"addr" json:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout"`
	// MaxBodyBytes bounds the size of a submitted network.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes" yaml:"max_body_bytes" json:"max_body_bytes"`
}

// MetricsConfig toggles the Prometheus recorder and /metrics.
type MetricsConfig struct {
	Enabled        bool `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	metrics.Config `mapstructure:",squash" yaml:",inline" json:",inline"`
}

// CacheConfig selects the conservation-law cache.
type CacheConfig struct {
	Backend string        `mapstructure:"backend" yaml:"backend" json:"backend"`
	TTL     time.Duration `mapstructure:"ttl" yaml:"ttl" json:"ttl"`
	// Size bounds the memory backend.
	Size  int          `mapstructure:"size" yaml:"size" json:"size"`
	Redis cache.Config `mapstructure:"redis" yaml:"redis" json:"redis"`
}

// Validate checks that every enumerated setting has a known value.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("config: output.format %q is invalid; expected text|json|yaml", c.Output.Format)
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("config: output.color %q is invalid; expected auto|always|never", c.Output.Color)
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("config: server.addr is required")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("config: server.max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}

	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("config: metrics.namespace is required when metrics are enabled")
	}

	switch c.Cache.Backend {
	case CacheNone, CacheMemory:
	case CacheRedis:
		if c.Cache.Redis.Addr == "" {
			return fmt.Errorf("config: cache.redis.addr is required for the redis backend")
		}
		if c.Cache.Redis.DB < 0 {
			return fmt.Errorf("config: cache.redis.db must be ≥ 0, got %d", c.Cache.Redis.DB)
		}
	default:
		return fmt.Errorf("config: cache.backend %q is invalid; expected none|memory|redis", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("config: cache.ttl must not be negative, got %s", c.Cache.TTL)
	}

	return nil
}
