// Package redis wraps the go-redis client so the catalog cache can be
// backed by a single node or a cluster and swapped out in tests.
package redis

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/muutmoku/ao-build-share/internal/errors"
)

// DefaultDialTimeout bounds the initial connection attempt
const DefaultDialTimeout = 5 * time.Second

// Options configures Redis client behavior
type Options struct {
	PoolSize     int
	MinIdleConns int
	MaxRetries   int
	DialTimeout  time.Duration
	UseTLS       bool
}

func (o *Options) dialTimeout() time.Duration {
	if o.DialTimeout <= 0 {
		return DefaultDialTimeout
	}
	return o.DialTimeout
}

func (o *Options) tlsConfig() *tls.Config {
	if !o.UseTLS {
		return nil
	}
	return &tls.Config{
		MinVersion: tls.VersionTLS12,
	}
}

// NewClient creates a Redis client for a single instance
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	return redis.NewClient(&redis.Options{
		Addr:         endpoint,
		PoolSize:     opts.PoolSize,
		MinIdleConns: opts.MinIdleConns,
		MaxRetries:   opts.MaxRetries,
		DialTimeout:  opts.dialTimeout(),
		TLSConfig:    opts.tlsConfig(),
	}), nil
}

// NewClusterClient creates a Redis client for cluster mode
func NewClusterClient(endpoints []string, opts *Options) (Client, error) {
	if len(endpoints) == 0 {
		return nil, errors.InvalidArgument("redis: at least one endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	return redis.NewClusterClient(&redis.ClusterOptions{
		Addrs:        endpoints,
		PoolSize:     opts.PoolSize,
		MinIdleConns: opts.MinIdleConns,
		MaxRetries:   opts.MaxRetries,
		DialTimeout:  opts.dialTimeout(),
		TLSConfig:    opts.tlsConfig(),
	}), nil
}

// Connect creates a client for addrs and checks
// it answers PING. One address yields a single node client.
func Connect(ctx context.Context, addrs []string, opts *Options) (Client, error) {
	var (
		client Client
		err    error
	)
	if len(addrs) == 1 {
		client, err = NewClient(addrs[0], opts)
	} else {
		client, err = NewClusterClient(addrs, opts)
	}
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close() // nolint:errcheck // already failing
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "redis: ping %v", addrs)
	}

	return client, nil
}
