package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pingponglab/traintracker/internal/config"
)

const DefaultSQLitePath = "data/tracker.db"

func Open(cfg *config.Config) (Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("store: missing config")
	}

	driver := strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	if driver == "" {
		driver = "postgres"
	}

	switch driver {
	case "postgres":
		dsn := strings.TrimSpace(cfg.Database.DSN)
		if dsn == "" {
			return nil, errors.New("store: missing postgres dsn: set database.dsn or " + config.EnvDatabaseURL)
		}
		return NewSQLStore("pgx", dsn, postgresDialect{})
	case "sqlite":
		path := strings.TrimSpace(cfg.Database.DSN)
		if path == "" {
			path = DefaultSQLitePath
		}
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("store: create sqlite dir: %w", err)
			}
		}
		return NewSQLStore("sqlite3", path, sqliteDialect{})
	case "memory":
		return NewSQLStore("sqlite3", ":memory:", sqliteDialect{})
	default:
		return nil, fmt.Errorf("store: unsupported driver %q", driver)
	}
}
