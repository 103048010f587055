// Package storage opens the database handle behind the layout document
// repository.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"

	"github.com/goliatone/go-storefront/internal/runtimeconfig"
)

// Open creates a bun.DB for the configured driver. Postgres callers are
// expected to have registered their driver; sqlite3 ships with the module.
func Open(cfg runtimeconfig.StorageConfig) (*bun.DB, error) {
	sqlDB, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", cfg.Driver, err)
	}
	return Wrap(sqlDB, cfg.Driver)
}

// Wrap adapts an already-open database handle with the dialect matching the
// driver name.
func Wrap(sqlDB *sql.DB, driver string) (*bun.DB, error) {
	switch driver {
	case "sqlite3":
		return bun.NewDB(sqlDB, sqlitedialect.New()), nil
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New()), nil
	default:
		return nil, fmt.Errorf("storage: unsupported driver %q", driver)
	}
}
