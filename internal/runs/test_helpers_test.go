package runs

import (
	"context"
	"database/sql"

	"github.com/pingponglab/traintracker/internal/store"
)

type fakeStore struct {
	ListTablesFunc   func(ctx context.Context) ([]string, error)
	TableExistsFunc  func(ctx context.Context, name string) (bool, error)
	TrainingLogFunc  func(ctx context.Context, table string) ([]store.LogRow, error)
	BestEpisodesFunc func(ctx context.Context, table string) ([]store.BestRow, error)
	ConfigValueFunc  func(ctx context.Context, table, key string) (sql.NullString, error)
	CloseFunc        func() error
}

func (s *fakeStore) ListTables(ctx context.Context) ([]string, error) {
	if s.ListTablesFunc != nil {
		return s.ListTablesFunc(ctx)
	}
	return nil, nil
}

func (s *fakeStore) TableExists(ctx context.Context, name string) (bool, error) {
	if s.TableExistsFunc != nil {
		return s.TableExistsFunc(ctx, name)
	}
	return false, nil
}

func (s *fakeStore) TrainingLog(ctx context.Context, table string) ([]store.LogRow, error) {
	if s.TrainingLogFunc != nil {
		return s.TrainingLogFunc(ctx, table)
	}
	return nil, nil
}

func (s *fakeStore) BestEpisodes(ctx context.Context, table string) ([]store.BestRow, error) {
	if s.BestEpisodesFunc != nil {
		return s.BestEpisodesFunc(ctx, table)
	}
	return nil, nil
}

func (s *fakeStore) ConfigValue(ctx context.Context, table, key string) (sql.NullString, error) {
	if s.ConfigValueFunc != nil {
		return s.ConfigValueFunc(ctx, table, key)
	}
	return sql.NullString{}, nil
}

func (s *fakeStore) Close() error {
	if s.CloseFunc != nil {
		return s.CloseFunc()
	}
	return nil
}

func ns(v string) sql.NullString {
	return sql.NullString{String: v, Valid: true}
}
