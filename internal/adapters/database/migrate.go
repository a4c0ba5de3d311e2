package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate applies pending migrations for db's dialect and returns the number
// applied. It uses a goose Provider rather than goose's package-level state
// so independent databases can be migrated concurrently.
func Migrate(ctx context.Context, db *sqlx.DB, logger *slog.Logger) (int, error) {
	dialect, dir := goose.DialectSQLite3, "migrations/sqlite"
	if db.DriverName() == DriverPostgres {
		dialect, dir = goose.DialectPostgres, "migrations/postgres"
	}

	fsys, err := fs.Sub(migrationsFS, dir)
	if err != nil {
		return 0, fmt.Errorf("loading %s migrations: %w", dialect, err)
	}

	provider, err := goose.NewProvider(dialect, db.DB, fsys)
	if err != nil {
		return 0, fmt.Errorf("creating migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("applying migrations: %w", err)
	}

	if logger != nil {
		for _, r := range results {
			logger.InfoContext(ctx, "applied migration",
				slog.String("source", r.Source.Path),
				slog.Duration("duration", r.Duration),
			)
		}
	}
	return len(results), nil
}
