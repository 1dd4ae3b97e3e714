// Package redis dials the optional context-cache backend. The gateway runs
// without it; an empty URL simply disables caching.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"spc-gateway/internal/platform/config"
)

// Dial connects to the cache backend and verifies it answers within the
// configured dial timeout. Returns (nil, nil) when no URL is configured so
// main can skip cache wiring entirely.
func Dial(cfg config.Redis) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
