package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	catalogclient "github.com/muutmoku/ao-build-share/internal/clients/catalog"
	"github.com/muutmoku/ao-build-share/internal/config"
	"github.com/muutmoku/ao-build-share/internal/errors"
	catalogorch "github.com/muutmoku/ao-build-share/internal/orchestrators/catalog"
	"github.com/muutmoku/ao-build-share/internal/pkg/clock"
	redisclient "github.com/muutmoku/ao-build-share/internal/redis"
	catalogrepo "github.com/muutmoku/ao-build-share/internal/repositories/catalog"
)

// loadConfig reads --config and applies any flags the user set explicitly
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("catalog-url") {
		cfg.Catalog.BaseURL, _ = flags.GetString("catalog-url") // nolint:errcheck // flag is defined
	}
	if flags.Changed("redis-addr") {
		cfg.Redis.Addr, _ = flags.GetString("redis-addr") // nolint:errcheck // flag is defined
	}
	if flags.Changed("grpc-port") {
		cfg.Server.GRPCPort, _ = flags.GetInt("grpc-port") // nolint:errcheck // flag is defined
	}
	if flags.Changed("http-port") {
		cfg.Server.HTTPPort, _ = flags.GetInt("http-port") // nolint:errcheck // flag is defined
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// catalogFlags registers the flags shared by commands that load the catalog
func catalogFlags(cmd *cobra.Command) {
	cmd.Flags().String("catalog-url", catalogclient.DefaultBaseURL, "base URL of the item snapshot")
	cmd.Flags().String("redis-addr", "", "redis address(es), comma separated; empty keeps the cache in memory")
}

// newCatalogRepository picks the Redis cache when an address is configured.
// The returned close func is never nil.
func newCatalogRepository(ctx context.Context, cfg *config.Config) (catalogrepo.Repository, func(), error) {
	addrs := cfg.Redis.Addrs()
	if len(addrs) == 0 {
		slog.Info("Using in-memory catalog cache")
		return catalogrepo.NewInMemory(clock.New(), cfg.Catalog.CacheTTL), func() {}, nil
	}

	client, err := redisclient.Connect(ctx, addrs, &redisclient.Options{UseTLS: cfg.Redis.UseTLS})
	if err != nil {
		return nil, nil, err
	}

	repo, err := catalogrepo.NewRedis(&catalogrepo.RedisConfig{
		Client: client,
		Clock:  clock.New(),
		TTL:    cfg.Catalog.CacheTTL,
	})
	if err != nil {
		_ = client.Close() // nolint:errcheck // already failing
		return nil, nil, errors.Wrap(err, "failed to create catalog repository")
	}

	slog.Info("Using redis catalog cache", "addrs", addrs)
	return repo, func() {
		if err := client.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}, nil
}

// newCatalogOrchestrator wires the catalog client, cache and loader
func newCatalogOrchestrator(ctx context.Context, cfg *config.Config) (*catalogorch.Orchestrator, func(), error) {
	repo, closeRepo, err := newCatalogRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	client, err := catalogclient.New(&catalogclient.Config{
		BaseURL:     cfg.Catalog.BaseURL,
		HTTPTimeout: cfg.Catalog.HTTPTimeout,
	})
	if err != nil {
		closeRepo()
		return nil, nil, errors.Wrap(err, "failed to create catalog client")
	}

	orchestrator, err := catalogorch.New(&catalogorch.Config{
		Client:     client,
		Repository: repo,
		Clock:      clock.New(),
		CacheTTL:   cfg.Catalog.CacheTTL,
	})
	if err != nil {
		closeRepo()
		return nil, nil, err
	}

	return orchestrator, closeRepo, nil
}
