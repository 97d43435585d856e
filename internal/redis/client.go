// Package redis wraps the go-redis client behind an interface the saved
// build store can be tested against
package redis

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/wotr-planner/internal/errors"
)

// Options tunes the connection. Zero values keep the go-redis defaults.
type Options struct {
	DB           int
	Password     string
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxRetries   int
}

// NewClient creates a client for a single Redis instance. Redis connects
// lazily, so an unreachable server surfaces on the first command.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis endpoint is required")
	}
	if opts == nil {
		opts = &Options{}
	}

	return redis.NewClient(&redis.Options{
		Addr:         endpoint,
		DB:           opts.DB,
		Password:     opts.Password,
		PoolSize:     opts.PoolSize,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		MaxRetries:   opts.MaxRetries,
	}), nil
}
