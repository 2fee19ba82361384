// Package postgres opens the shared connection pool.
package postgres

import (
	"context"
	"fmt"
	"time"

	"bookshelf/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Open creates a pool and verifies it with a ping.
func Open(ctx context.Context, dsn string, pingTimeout time.Duration) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database (%s): %w", config.RedactDSN(dsn), err)
	}
	return pool, nil
}
