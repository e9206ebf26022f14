// SPDX-License-Identifier: MIT

// Package cache stores conservation-law enumerations in Redis so that
// several crntk processes share them.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/crntk/ddm"
)

// DefaultPrefix is prepended to every key unless WithPrefix says otherwise.
const DefaultPrefix = "crntk:claws:"

// Config describes the Redis connection.
type Config struct {
	Addr     string `mapstructure:"addr" yaml:"addr" json:"addr"`
	Password string `mapstructure:"password" yaml:"password" json:"-"`
	DB       int    `mapstructure:"db" yaml:"db" json:"db"`
	Prefix   string `mapstructure:"prefix" yaml:"prefix" json:"prefix"`
}

// NewClient opens a client for cfg. The connection is lazy; use Ping to
// check it.
func NewClient(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// RedisCache implements analysis.Cache on Redis strings holding JSON.
type RedisCache struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// Option configures a RedisCache.
type Option func(*RedisCache)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(c *RedisCache) { c.prefix = prefix }
}

// WithTTL sets the expiry of stored entries. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(c *RedisCache) { c.ttl = ttl }
}

// New returns a RedisCache on client.
func New(client redis.Cmdable, opts ...Option) *RedisCache {
	c := &RedisCache{client: client, prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *RedisCache) fullKey(key string) string {
	return c.prefix + key
}

// Get implements analysis.Cache. A missing key is a miss, not an error.
func (c *RedisCache) Get(ctx context.Context, key string) (*ddm.Result, bool, error) {
	data, err := c.client.Get(ctx, c.fullKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: get %s: %w", key, err)
	}

	var res ddm.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, false, fmt.Errorf("cache: decode %s: %w", key, err)
	}

	return &res, true, nil
}

// Set implements analysis.Cache.
func (c *RedisCache) Set(ctx context.Context, key string, res *ddm.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, c.fullKey(key), string(data), c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", key, err)
	}

	return nil
}

// Ping checks the connection.
func (c *RedisCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cache: ping: %w", err)
	}

	return nil
}
