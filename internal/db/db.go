package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// applicationName tags level storage connections in pg_stat_activity.
const applicationName = "dungeon-levels"

// DB wraps a pgx connection pool for level storage.
type DB struct {
	pool *pgxpool.Pool
}

// New connects to the level database and checks it answers.
func New(ctx context.Context, dsn string) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing level database dsn: %w", err)
	}
	cfg.ConnConfig.RuntimeParams["application_name"] = applicationName

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to level database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging level database: %w", err)
	}
	return &DB{pool: pool}, nil
}

// Close releases every pooled connection.
func (d *DB) Close() {
	d.pool.Close()
}

// Pool exposes the pool for callers that run their own queries, such as tests.
func (d *DB) Pool() *pgxpool.Pool {
	return d.pool
}

// Levels returns a repository over this handle.
func (d *DB) Levels() *LevelRepository {
	return NewLevelRepository(d.pool)
}
