// SPDX-License-Identifier: MIT

package config

import (
	"time"

	"github.com/katalvlaran/crntk/internal/cache"
)

// Default values.
const (
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "console"
	DefaultServerAddr      = ":8080"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxBodyBytes    = 1 << 20
	DefaultNamespace       = "crntk"
	DefaultCacheSize       = 1024
	DefaultCacheTTL        = 24 * time.Hour
)

// Default returns a fully defaulted Config.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)

	return cfg
}

// ApplyDefaults fills every zero field with its default.
func ApplyDefaults(cfg *Config) {
	setDefault(&cfg.Log.Level, DefaultLogLevel)
	setDefault(&cfg.Log.Format, DefaultLogFormat)
	if len(cfg.Log.OutputPaths) == 0 {
		cfg.Log.OutputPaths = []string{"stderr"}
	}

	setDefault(&cfg.Output.Format, FormatText)
	setDefault(&cfg.Output.Color, ColorAuto)

	setDefault(&cfg.Server.Addr, DefaultServerAddr)
	setDefault(&cfg.Server.ShutdownTimeout, DefaultShutdownTimeout)
	setDefault(&cfg.Server.MaxBodyBytes, DefaultMaxBodyBytes)

	setDefault(&cfg.Metrics.Namespace, DefaultNamespace)

	setDefault(&cfg.Cache.Backend, CacheMemory)
	setDefault(&cfg.Cache.Size, DefaultCacheSize)
	setDefault(&cfg.Cache.TTL, DefaultCacheTTL)
	setDefault(&cfg.Cache.Redis.Prefix, cache.DefaultPrefix)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
