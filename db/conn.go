package db

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool constructs a pgx connection pool using the provided connection string.
func NewPool(ctx context.Context, connString string, connectTimeout time.Duration) (*pgxpool.Pool, error) {
	if connString == "" {
		return nil, fmt.Errorf("db: empty connection string")
	}

	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("db: parse config: %w", err)
	}
	if connectTimeout > 0 {
		cfg.ConnConfig.ConnectTimeout = connectTimeout
	}

	return pgxpool.NewWithConfig(ctx, cfg)
}

// Handle owns the single process-wide pool. The pool is built lazily on first
// Get and reused for the process lifetime; concurrent first calls construct it
// exactly once.
type Handle struct {
	connString     string
	connectTimeout time.Duration

	once sync.Once
	pool *pgxpool.Pool
	err  error
}

// NewHandle prepares a lazy pool handle. No connection is made until Get.
func NewHandle(connString string, connectTimeout time.Duration) *Handle {
	return &Handle{connString: connString, connectTimeout: connectTimeout}
}

// Get returns the shared pool, establishing it on first use.
func (h *Handle) Get(ctx context.Context) (*pgxpool.Pool, error) {
	h.once.Do(func() {
		h.pool, h.err = NewPool(ctx, h.connString, h.connectTimeout)
	})
	if h.err != nil {
		return nil, fmt.Errorf("db: establish pool: %w", h.err)
	}
	return h.pool, nil
}

// Close tears down the pool if it was ever established.
func (h *Handle) Close() {
	if h.pool != nil {
		h.pool.Close()
	}
}
