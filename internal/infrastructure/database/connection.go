package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"deeplbot/internal/infrastructure/database/sqlc_generated"
)

// Preference lookups are single-row queries; a small pool is enough.
const (
	maxConns    = 4
	pingTimeout = 5 * time.Second
)

// NewPool creates a pgx connection pool for PostgreSQL and checks it answers.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	cfg.MaxConns = maxConns

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	log.Println("✅ Base de données PostgreSQL connectée.")
	return pool, nil
}

// OpenPreferenceStore connects, applies migrations and returns the repository
// with the pool to close on shutdown.
func OpenPreferenceStore(ctx context.Context, dsn, migrationsPath string) (*PreferenceRepository, *pgxpool.Pool, error) {
	if err := RunMigrations(dsn, migrationsPath); err != nil {
		return nil, nil, err
	}
	pool, err := NewPool(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}
	return NewPreferenceRepository(sqlc_generated.New(pool)), pool, nil
}
