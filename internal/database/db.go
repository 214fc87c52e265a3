// Package database provides database connection management.
package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/at-ishikawa/chemcalc/internal/config"
)

const driverName = "sqlite"

// Open opens the sqlite cache file described by the config, creating parent directories as needed.
func Open(cfg config.CacheConfig) (*sqlx.DB, error) {
	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}

	db, err := sqlx.Open(driverName, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}
	// single writer; rowid order is the write order
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.Ping() > %w", err)
	}
	return db, nil
}
