package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the part of the connection pool the health probes use
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolOptions sizes the connection pool and bounds the startup wait for postgres
type PoolOptions struct {
	ConnString  string
	MaxConns    int
	MaxIdle     time.Duration
	MaxLife     time.Duration
	PingRetries int
	RetryDelay  time.Duration
}

// NewPool opens the pool and pings until postgres answers or the retries run out.
// Balances and round state live only here, so the process refuses to start without it.
func NewPool(ctx context.Context, opts PoolOptions) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(opts.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	maxConns := min(opts.MaxConns, math.MaxInt32)
	if maxConns <= 0 {
		maxConns = DefaultMaxConnections
	}
	cfg.MaxConns = int32(maxConns)
	cfg.MinConns = min(DefaultMinConnections, cfg.MaxConns)
	cfg.MaxConnLifetime = opts.MaxLife
	cfg.MaxConnIdleTime = opts.MaxIdle
	cfg.ConnConfig.RuntimeParams[RuntimeParamAppName] = ApplicationName
	cfg.ConnConfig.RuntimeParams[RuntimeParamTimeZone] = "UTC"

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pingWithRetry(ctx, pool, opts.PingRetries, opts.RetryDelay); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase,
		"max_conns", cfg.MaxConns,
		"min_conns", cfg.MinConns)
	return pool, nil
}

func pingWithRetry(ctx context.Context, pool Pool, retries int, delay time.Duration) error {
	var err error
	for attempt := 0; ; attempt++ {
		if err = pool.Ping(ctx); err == nil {
			return nil
		}
		if attempt >= retries {
			return err
		}
		slog.Default().Warn(LogMsgDatabaseNotReady, "attempt", attempt+1, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}
