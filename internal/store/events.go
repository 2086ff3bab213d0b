package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/kubev2v/threadpool-agent/internal/models"
	srvErrors "github.com/kubev2v/threadpool-agent/pkg/errors"
	"github.com/kubev2v/threadpool-agent/pkg/threadpool"
)

// EventStore persists pool events.
type EventStore struct {
	db QueryInterceptor
}

func NewEventStore(db QueryInterceptor) *EventStore {
	return &EventStore{db: db}
}

// Insert stores one event.
func (s *EventStore) Insert(ctx context.Context, e models.Event) error {
	var workerID any
	if e.WorkerID != nil {
		workerID = *e.WorkerID
	}
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, queryInsertEvent,
		e.PoolID,
		string(e.Type),
		workerID,
		int64(e.JobID),
		e.Duration.Microseconds(),
		e.Load,
		e.Workers,
		string(e.Action),
		e.Error,
		createdAt.UTC(),
	)
	return err
}

// Get returns the event with the given id.
func (s *EventStore) Get(ctx context.Context, id int64) (*models.Event, error) {
	query, args, err := sq.Select(eventColumns...).From("events").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	e, err := scanEvent(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewEventNotFoundError(id)
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *EventStore) List(ctx context.Context, opts ...ListOption) ([]models.Event, error) {
	builder := sq.Select(eventColumns...).From("events")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// Count takes filter options only; limit, offset and sort do not apply.
func (s *EventStore) Count(ctx context.Context, opts ...ListOption) (int, error) {
	builder := sq.Select("COUNT(*)").From("events")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

// DeleteBefore removes events older than t and returns how many were deleted.
func (s *EventStore) DeleteBefore(ctx context.Context, t time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, queryDeleteEventsBefore, t.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (models.Event, error) {
	var (
		e          models.Event
		eventType  string
		workerID   sql.NullInt64
		jobID      int64
		durationUs int64
		action     string
	)
	err := row.Scan(
		&e.ID,
		&e.PoolID,
		&eventType,
		&workerID,
		&jobID,
		&durationUs,
		&e.Load,
		&e.Workers,
		&action,
		&e.Error,
		&e.CreatedAt,
	)
	if err != nil {
		return e, err
	}

	e.Type = threadpool.EventType(eventType)
	e.Action = threadpool.ResizeAction(action)
	e.JobID = uint64(jobID)
	e.Duration = time.Duration(durationUs) * time.Microsecond
	if workerID.Valid {
		id := int(workerID.Int64)
		e.WorkerID = &id
	}
	return e, nil
}

type ListOption func(sq.SelectBuilder) sq.SelectBuilder

func ByTypes(types ...threadpool.EventType) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if len(types) == 0 {
			return b
		}
		values := make([]string, 0, len(types))
		for _, t := range types {
			values = append(values, string(t))
		}
		return b.Where(sq.Eq{"event_type": values})
	}
}

func ByWorker(workerID int) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{"worker_id": workerID})
	}
}

func ByPool(poolID string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if poolID == "" {
			return b
		}
		return b.Where(sq.Eq{"pool_id": poolID})
	}
}

func Since(t time.Time) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.GtOrEq{"created_at": t.UTC()})
	}
}

func WithLimit(limit uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Limit(limit)
	}
}

func WithOffset(offset uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Offset(offset)
	}
}

// WithDefaultSort orders newest first.
func WithDefaultSort() ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.OrderBy("id DESC")
	}
}
