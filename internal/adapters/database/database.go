// Package database provides the relational storage adapter: connection setup
// for SQLite (modernc.org/sqlite) or Postgres (pgx), embedded goose
// migrations, a transaction manager implementing ports.TxManager and a Store
// implementing the store ports.
//
// Stores called with a context returned by TxManager.Begin run their queries
// inside that transaction; otherwise they use the connection pool.
package database

import (
	"context"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jsamuelsen11/action-pipeline/internal/platform/config"
)

// Supported driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// ErrUnsupportedDriver is returned by Open for drivers other than sqlite and pgx.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Open connects to the database described by cfg, applies the pool settings
// and verifies the connection with a ping.
func Open(ctx context.Context, cfg *config.DatabaseConfig) (*sqlx.DB, error) {
	switch cfg.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	db, err := sqlx.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging %s database: %w", cfg.Driver, err)
	}
	return db, nil
}
