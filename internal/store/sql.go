package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// SQLStore implements Store over database/sql for both Postgres and SQLite.
type SQLStore struct {
	db      *sql.DB
	dialect dialect
}

var sqlOpen = sql.Open

// NewSQLStore opens a database and verifies connectivity.
func NewSQLStore(driverName, dsn string, d dialect) (*SQLStore, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, errors.New("store: empty dsn")
	}

	db, err := sqlOpen(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", driverName, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: ping %s: %w", driverName, err)
	}

	return &SQLStore{db: db, dialect: d}, nil
}

func (s *SQLStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLStore) ListTables(ctx context.Context) ([]string, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("store: nil sql store")
	}

	rows, err := s.db.QueryContext(ctx, s.dialect.listTablesQuery())
	if err != nil {
		return nil, fmt.Errorf("store: list tables: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("store: scan table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list tables: %w", err)
	}
	return names, nil
}

func (s *SQLStore) TableExists(ctx context.Context, name string) (bool, error) {
	if s == nil || s.db == nil {
		return false, errors.New("store: nil sql store")
	}
	if !validTableName(name) {
		return false, nil
	}

	var exists bool
	if err := s.db.QueryRowContext(ctx, s.dialect.tableExistsQuery(), name).Scan(&exists); err != nil {
		return false, fmt.Errorf("store: table exists %q: %w", name, err)
	}
	return exists, nil
}

func (s *SQLStore) TrainingLog(ctx context.Context, table string) ([]LogRow, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("store: nil sql store")
	}
	if !validTableName(table) {
		return nil, fmt.Errorf("store: invalid table name %q", table)
	}

	q := fmt.Sprintf(`SELECT steps, avg_return_last50, elapsed_min FROM %s`, quoteIdent(table))
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("store: query training log %q: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	var out []LogRow
	for rows.Next() {
		var r LogRow
		if err := rows.Scan(&r.Steps, &r.AvgReturn, &r.Elapsed); err != nil {
			return nil, fmt.Errorf("store: scan training log %q: %w", table, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: query training log %q: %w", table, err)
	}
	return out, nil
}

func (s *SQLStore) BestEpisodes(ctx context.Context, table string) ([]BestRow, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("store: nil sql store")
	}
	if !validTableName(table) {
		return nil, fmt.Errorf("store: invalid table name %q", table)
	}

	q := fmt.Sprintf(`SELECT episode, steps, reward FROM %s`, quoteIdent(table))
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("store: query best episodes %q: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	var out []BestRow
	for rows.Next() {
		var r BestRow
		if err := rows.Scan(&r.Episode, &r.Steps, &r.Reward); err != nil {
			return nil, fmt.Errorf("store: scan best episodes %q: %w", table, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: query best episodes %q: %w", table, err)
	}
	return out, nil
}

func (s *SQLStore) ConfigValue(ctx context.Context, table, key string) (sql.NullString, error) {
	var v sql.NullString
	if s == nil || s.db == nil {
		return v, errors.New("store: nil sql store")
	}
	if !validTableName(table) {
		return v, fmt.Errorf("store: invalid table name %q", table)
	}

	err := s.db.QueryRowContext(ctx, s.dialect.configValueQuery(quoteIdent(table)), key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return sql.NullString{}, nil
	}
	if err != nil {
		return sql.NullString{}, fmt.Errorf("store: query config %q: %w", table, err)
	}
	return v, nil
}

// Table names are interpolated into SQL (they cannot be bound as
// parameters), so only identifier characters are allowed through.
var tableNameRE = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

func validTableName(name string) bool {
	return tableNameRE.MatchString(name)
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
