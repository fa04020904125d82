package store

import "fmt"

// dialect abstracts the catalog queries and placeholder syntax that differ
// between backends. Row queries against run tables are plain SQL and need no
// dialect help.
type dialect interface {
	// listTablesQuery selects the names of all tables starting with "run_".
	listTablesQuery() string
	// tableExistsQuery takes the table name as its single argument and
	// returns one boolean row.
	tableExistsQuery() string
	// configValueQuery takes the key as its single argument; ident is the
	// already-quoted table name.
	configValueQuery(ident string) string
}

type postgresDialect struct{}

func (postgresDialect) listTablesQuery() string {
	return `SELECT tablename FROM pg_tables WHERE schemaname = 'public' AND tablename LIKE 'run_%'`
}

func (postgresDialect) tableExistsQuery() string {
	return `SELECT to_regclass($1) IS NOT NULL`
}

func (postgresDialect) configValueQuery(ident string) string {
	return fmt.Sprintf(`SELECT value FROM %s WHERE key = $1 LIMIT 1`, ident)
}

type sqliteDialect struct{}

func (sqliteDialect) listTablesQuery() string {
	return `SELECT name FROM sqlite_master WHERE type = 'table' AND name LIKE 'run_%'`
}

func (sqliteDialect) tableExistsQuery() string {
	return `SELECT COUNT(*) > 0 FROM sqlite_master WHERE type = 'table' AND name = ?`
}

func (sqliteDialect) configValueQuery(ident string) string {
	return fmt.Sprintf(`SELECT value FROM %s WHERE key = ? LIMIT 1`, ident)
}
