package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gabapcia/blockscope/internal/config"
	"github.com/gabapcia/blockscope/internal/explorer"
	"github.com/gabapcia/blockscope/internal/handlers/cli"
	"github.com/gabapcia/blockscope/internal/infra/blockchain/canopy"
	"github.com/gabapcia/blockscope/internal/infra/storage/redis"
	"github.com/gabapcia/blockscope/internal/pkg/logger"
	"github.com/gabapcia/blockscope/internal/pkg/resilience/retry"
	"github.com/gabapcia/blockscope/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/blockscope/internal/pkg/transport/http"
	"github.com/gabapcia/blockscope/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/blockscope/internal/search"
	"github.com/gabapcia/blockscope/internal/windowcache"

	"github.com/hashicorp/go-retryablehttp"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.TelemetryEnabled {
		shutdown, initErr := telemetry.Init(ctx, cfg.ServiceName)
		if initErr != nil {
			return fmt.Errorf("init telemetry: %w", initErr)
		}
		defer func() { err = errors.Join(err, shutdown(context.WithoutCancel(ctx))) }()
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	httpClient := transporthttp.NewClient(
		transporthttp.WithTimeout(cfg.Gateway.Timeout),
		transporthttp.WithRetryMax(cfg.Gateway.RetryMax),
		transporthttp.WithRetryWaitMin(cfg.Gateway.RetryWaitMin),
		transporthttp.WithRetryWaitMax(cfg.Gateway.RetryWaitMax),
	)
	dial := dialer(httpClient)

	gw, err := dial(cfg.Networks[cfg.DefaultNetwork])
	if err != nil {
		return err
	}

	cacheOpts := []windowcache.Option{
		windowcache.WithPageSize(cfg.Window.PageSize),
		windowcache.WithMaxPages(cfg.Window.MaxPages),
		windowcache.WithFreshFor(cfg.Window.FreshFor),
		windowcache.WithRefreshEvery(cfg.Window.RefreshEvery),
		windowcache.WithRefreshTimeout(cfg.Window.RefreshTimeout),
		windowcache.WithRetry(retry.New(
			retry.WithAttempts(2),
			retry.WithRetryIf(func(err error) bool {
				return !errors.Is(err, windowcache.ErrEndpointChanged) && !errors.Is(err, context.Canceled)
			}),
			retry.WithOnRetry(func(attempt uint, err error) {
				logger.Warn(ctx, "retrying window refresh", "attempt", attempt, "error", err)
			}),
		)),
	}

	if cfg.Redis.Enabled {
		snapshots, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithSnapshotTTL(cfg.Redis.SnapshotTTL),
		)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer func() { _ = snapshots.Close() }()

		cacheOpts = append(cacheOpts, windowcache.WithSnapshotStorage(snapshots))
	}

	cache, err := windowcache.New(cfg.DefaultNetwork, gw, cacheOpts...)
	if err != nil {
		return fmt.Errorf("create window cache: %w", err)
	}

	resolver := search.New(gw, cache,
		search.WithDebounce(cfg.Search.Debounce),
		search.WithLookupTimeout(cfg.Search.LookupTimeout),
	)

	ex, err := explorer.New(cfg.Networks, cfg.DefaultNetwork, dial, cache, resolver)
	if err != nil {
		return err
	}
	defer ex.Close()

	return cli.Run(ctx, ex)
}

func dialer(httpClient *retryablehttp.Client) explorer.Dialer {
	return func(endpoint string) (explorer.Gateway, error) {
		return canopy.NewClient(jsonrpc.NewClient(httpClient, endpoint)), nil
	}
}
