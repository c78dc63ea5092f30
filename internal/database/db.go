// Package database implements the record access layer over PostgreSQL or SQLite
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib"
	_ "modernc.org/sqlite"
)

// Config selects and tunes the backing database
type Config struct {
	Driver          string        `yaml:"driver"`
	URL             string        `yaml:"url"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	AutoMigrate     bool          `yaml:"auto_migrate"`
}

// DB is a connection pool bound to its SQL dialect
type DB struct {
	*sql.DB
	Dialect Dialect
}

// Wrap binds an already opened pool to a dialect. Used by tests.
func Wrap(db *sql.DB, dialect Dialect) *DB {
	return &DB{DB: db, Dialect: dialect}
}

// Open connects to the configured database, verifies the connection and runs
// migrations when AutoMigrate is set.
func Open(ctx context.Context, cfg Config) (*DB, error) {
	dialect, err := ParseDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}
	if cfg.URL == "" {
		return nil, fmt.Errorf("database url is required for driver %s", dialect)
	}

	if dialect == DialectSQLite {
		if err := ensureDir(cfg.URL); err != nil {
			return nil, err
		}
	}

	sqlDB, err := sql.Open(dialect.DriverName(), cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db := Wrap(sqlDB, dialect)

	if dialect == DialectSQLite {
		if err := db.configureSQLite(ctx); err != nil {
			closeQuietly(sqlDB)
			return nil, err
		}
	} else {
		if cfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		}
		if cfg.ConnMaxLifetime > 0 {
			sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		closeQuietly(sqlDB)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if cfg.AutoMigrate {
		if err := Migrate(ctx, db); err != nil {
			closeQuietly(sqlDB)
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	slog.Debug("database opened", "driver", dialect.String())
	return db, nil
}

func (db *DB) configureSQLite(ctx context.Context) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		// SQLite will retry for this duration on a locked database
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			slog.Error("failed to apply pragma", "pragma", p, "error", err)
			return fmt.Errorf("failed to apply %q: %w", p, err)
		}
	}

	// single writer connection, also keeps :memory: databases alive
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return nil
}

// ensureDir creates the parent directory of a sqlite database file
func ensureDir(url string) error {
	path := strings.TrimPrefix(url, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	return nil
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
