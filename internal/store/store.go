package store

import (
	"context"
	"database/sql"

	"go.uber.org/zap"
)

// QueryInterceptor is the subset of *sql.DB used by the repositories.
type QueryInterceptor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// loggingInterceptor traces every statement at debug level.
type loggingInterceptor struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

func newLoggingInterceptor(db *sql.DB) *loggingInterceptor {
	return &loggingInterceptor{db: db, log: zap.S().Named("store")}
}

func (i *loggingInterceptor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	i.log.Debugw("exec", "query", query, "args", args)
	return i.db.ExecContext(ctx, query, args...)
}

func (i *loggingInterceptor) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	i.log.Debugw("query", "query", query, "args", args)
	return i.db.QueryContext(ctx, query, args...)
}

func (i *loggingInterceptor) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	i.log.Debugw("query row", "query", query, "args", args)
	return i.db.QueryRowContext(ctx, query, args...)
}

// Store provides access to all storage repositories.
type Store struct {
	db     *sql.DB
	events *EventStore
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:     db,
		events: NewEventStore(newLoggingInterceptor(db)),
	}
}

func (s *Store) Events() *EventStore {
	return s.events
}

func (s *Store) Close() error {
	return s.db.Close()
}
