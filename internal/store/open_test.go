package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pingponglab/traintracker/internal/config"
)

func TestOpen_NilConfig(t *testing.T) {
	_, err := Open(nil)
	if err == nil || !strings.Contains(err.Error(), "missing config") {
		t.Fatalf("err: got %v", err)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(&config.Config{Database: config.DatabaseConfig{Driver: "mongodb"}})
	if err == nil || !strings.Contains(err.Error(), "unsupported driver") {
		t.Fatalf("err: got %v", err)
	}
}

func TestOpen_PostgresRequiresDSN(t *testing.T) {
	_, err := Open(&config.Config{Database: config.DatabaseConfig{Driver: "postgres"}})
	if err == nil || !strings.Contains(err.Error(), "missing postgres dsn") {
		t.Fatalf("err: got %v", err)
	}
}

func TestOpen_Memory(t *testing.T) {
	st, err := Open(&config.Config{Database: config.DatabaseConfig{Driver: "memory"}})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestOpen_SQLiteCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tracker.db")
	st, err := Open(&config.Config{Database: config.DatabaseConfig{Driver: "sqlite", DSN: path}})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = st.Close() }()

	if _, err := st.ListTables(context.Background()); err != nil {
		t.Fatalf("ListTables: %v", err)
	}
}
