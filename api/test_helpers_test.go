package api

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pingponglab/traintracker/internal/config"
	"github.com/pingponglab/traintracker/internal/runs"
	"github.com/pingponglab/traintracker/internal/store"
)

// newTestServer builds a server over a file-backed SQLite database seeded by
// the caller. The sqlite3 driver is registered by importing the store
// package.
func newTestServer(t *testing.T, seed func(t *testing.T, db *sql.DB)) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "tracker.db")
	if seed != nil {
		db, err := sql.Open("sqlite3", path)
		if err != nil {
			t.Fatalf("Open seed db: %v", err)
		}
		seed(t, db)
		if err := db.Close(); err != nil {
			t.Fatalf("Close seed db: %v", err)
		}
	}

	cfg := &config.Config{Database: config.DatabaseConfig{Driver: "sqlite", DSN: path}}
	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	return NewServer(cfg, runs.NewService(st))
}

func mustExec(t *testing.T, db *sql.DB, query string, args ...any) {
	t.Helper()
	if _, err := db.Exec(query, args...); err != nil {
		t.Fatalf("Exec %q: %v", query, err)
	}
}

func seedRun(t *testing.T, db *sql.DB, id string) {
	t.Helper()
	mustExec(t, db, `CREATE TABLE run_`+id+`_training_log (steps TEXT, avg_return_last50 TEXT, elapsed_min TEXT)`)
}
