// Package redis implements blockscope storage interfaces on top of Redis.
package redis

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

type client struct {
	conn        *redis.Client
	snapshotTTL time.Duration
}

func (c *client) Close() error {
	return c.conn.Close()
}

type config struct {
	snapshotTTL time.Duration
}

// Option configures the Redis client.
type Option func(*config)

// WithSnapshotTTL sets how long a window snapshot is kept. Zero keeps it
// until it is overwritten.
func WithSnapshotTTL(d time.Duration) Option {
	return func(c *config) {
		c.snapshotTTL = d
	}
}

// NewClient connects to Redis and verifies the connection with a PING.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	cfg := config{
		snapshotTTL: time.Hour,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &client{
		conn:        conn,
		snapshotTTL: cfg.snapshotTTL,
	}, nil
}
