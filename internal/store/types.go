package store

import (
	"context"
	"database/sql"
)

// Catalog exposes table discovery against the active schema. Run tables are
// created by the external training process, so the set of tables is runtime
// state, not a fixed schema.
type Catalog interface {
	// ListTables returns the names of all run-prefixed tables.
	ListTables(ctx context.Context) ([]string, error)
	// TableExists probes the catalog for a single table, without scanning it.
	TableExists(ctx context.Context, name string) (bool, error)
}

// Store defines read access to the run tables. Values come back as stored —
// possibly text — and are coerced to numbers by the caller.
type Store interface {
	Catalog
	TrainingLog(ctx context.Context, table string) ([]LogRow, error)
	BestEpisodes(ctx context.Context, table string) ([]BestRow, error)
	// ConfigValue looks up a single key; an invalid NullString means the key
	// is absent.
	ConfigValue(ctx context.Context, table, key string) (sql.NullString, error)
	Close() error
}

// LogRow is one training-log record in raw storage order.
type LogRow struct {
	Steps     sql.NullString
	AvgReturn sql.NullString
	Elapsed   sql.NullString
}

// BestRow is one best-episode record in raw storage order. The last row is
// the current best: the training process appends a row each time the best
// episode improves.
type BestRow struct {
	Episode sql.NullString
	Steps   sql.NullString
	Reward  sql.NullString
}
