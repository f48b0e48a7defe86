// Package database handles the initialization of the SQLite store and the
// data access used by the ordering engine
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/cardstack/internal/config"
	_ "modernc.org/sqlite"
)

// InitDB opens the configured database file, creating its directory,
// running migrations and seeding the default columns on first run
func InitDB(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := Open(ctx, cfg.Path, cfg.BusyTimeoutMs)
	if err != nil {
		return nil, err
	}

	if err := seedDefaultColumns(ctx, db); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to seed columns: %w", err)
	}

	return db, nil
}

// Open opens a SQLite database at path (":memory:" allowed) and runs migrations.
// Foreign keys, WAL journaling and the busy timeout are set per connection
// through the DSN so they survive pool reconnects.
func Open(ctx context.Context, path string, busyTimeoutMs int) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn(path, busyTimeoutMs))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, fmt.Errorf("database ping failed: %w", classify(err))
	}

	// SQLite benefits from a single writer connection; concurrent callers
	// queue at the pool instead of racing for the write lock
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := runMigrations(ctx, db); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// dsn builds an escaped file: URI for the driver.
// _txlock=immediate takes the write lock at BEGIN so writers in other
// processes wait out busy_timeout instead of failing the lock upgrade.
func dsn(path string, busyTimeoutMs int) string {
	params := url.Values{}
	params.Add("_pragma", "foreign_keys(1)")
	params.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeoutMs))
	params.Add("_txlock", "immediate")
	if path != ":memory:" {
		params.Add("_pragma", "journal_mode(WAL)")
		params.Add("_pragma", "synchronous(NORMAL)")
	}
	u := url.URL{
		Scheme:   "file",
		Path:     path,
		OmitHost: true,
		RawQuery: params.Encode(),
	}
	return u.String()
}
