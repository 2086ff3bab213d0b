package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kubev2v/threadpool-agent/internal/models"
	"github.com/kubev2v/threadpool-agent/internal/store"
	"github.com/kubev2v/threadpool-agent/pkg/threadpool"
)

type EventService struct {
	store *store.Store
}

func NewEventService(st *store.Store) *EventService {
	return &EventService{store: st}
}

type EventListParams struct {
	Types    []threadpool.EventType
	WorkerID *int
	Limit    uint64
	Offset   uint64
}

type EventListResult struct {
	Events []models.Event
	Total  int
}

func (s *EventService) List(ctx context.Context, params EventListParams) (*EventListResult, error) {
	filters := s.buildFilterOptions(params)

	opts := append([]store.ListOption{}, filters...)
	opts = append(opts, store.WithDefaultSort())
	if params.Limit > 0 {
		opts = append(opts, store.WithLimit(params.Limit))
	}
	if params.Offset > 0 {
		opts = append(opts, store.WithOffset(params.Offset))
	}

	events, err := s.store.Events().List(ctx, opts...)
	if err != nil {
		return nil, err
	}

	total, err := s.store.Events().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	return &EventListResult{
		Events: events,
		Total:  total,
	}, nil
}

func (s *EventService) Get(ctx context.Context, id int64) (*models.Event, error) {
	return s.store.Events().Get(ctx, id)
}

// Prune deletes events older than maxAge.
func (s *EventService) Prune(ctx context.Context, maxAge time.Duration) (int64, error) {
	deleted, err := s.store.Events().DeleteBefore(ctx, time.Now().Add(-maxAge))
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		zap.S().Named("event_service").Debugw("pruned events", "deleted", deleted, "max_age", maxAge)
	}
	return deleted, nil
}

func (s *EventService) buildFilterOptions(params EventListParams) []store.ListOption {
	var opts []store.ListOption

	if len(params.Types) > 0 {
		opts = append(opts, store.ByTypes(params.Types...))
	}
	if params.WorkerID != nil {
		opts = append(opts, store.ByWorker(*params.WorkerID))
	}

	return opts
}
