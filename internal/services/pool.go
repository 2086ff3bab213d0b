package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kubev2v/threadpool-agent/internal/models"
	srvErrors "github.com/kubev2v/threadpool-agent/pkg/errors"
	"github.com/kubev2v/threadpool-agent/pkg/threadpool"
)

// PoolService exposes the worker pool to the handlers and the CLI.
type PoolService struct {
	pool      *threadpool.Pool
	recorder  *EventRecorder
	autoscale bool
	log       *zap.SugaredLogger

	mu   sync.Mutex
	last *threadpool.ResizeDecision
}

// NewPoolService wraps pool. recorder may be nil.
func NewPoolService(pool *threadpool.Pool, recorder *EventRecorder, autoscale bool) *PoolService {
	return &PoolService{
		pool:      pool,
		recorder:  recorder,
		autoscale: autoscale,
		log:       zap.S().Named("pool_service"),
	}
}

func (s *PoolService) Status() models.PoolStatus {
	status := models.PoolStatus{
		ID:        s.pool.ID(),
		Strategy:  s.pool.Strategy(),
		Stats:     s.pool.Stats(),
		Autoscale: s.autoscale,
	}
	if s.recorder != nil {
		status.DroppedEvents = s.recorder.Dropped()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last != nil {
		d := *s.last
		status.LastDecision = &d
	}
	return status
}

func (s *PoolService) AddWorker() error {
	return s.pool.AddWorker()
}

func (s *PoolService) RemoveWorker() error {
	return s.pool.RemoveWorker()
}

// Resize runs one load check and remembers its outcome.
func (s *PoolService) Resize(ctx context.Context) (threadpool.ResizeDecision, error) {
	decision, err := s.pool.MonitorAndResize(ctx)
	if err != nil {
		return decision, err
	}

	s.mu.Lock()
	s.last = &decision
	s.mu.Unlock()
	return decision, nil
}

// SubmitTask queues a synthetic task that sleeps for its duration. The
// returned future receives exactly one result, also when the task panics.
func (s *PoolService) SubmitTask(task models.Task) (*models.Future[models.TaskResult], error) {
	if task.Duration < 0 {
		return nil, srvErrors.NewInvalidArgumentError("duration", "must not be negative")
	}

	ctx, cancel := context.WithCancel(context.Background())
	results := make(chan models.TaskResult, 1)

	job := func() {
		defer cancel()

		result := models.TaskResult{Name: task.Name}
		defer func() { results <- result }()

		if ctx.Err() != nil {
			result.Canceled = true
			return
		}

		s.log.Infow("task started", "task", task.Name)
		if task.Panic {
			result.Panicked = true
			panic(fmt.Sprintf("task %q asked to fail", task.Name))
		}

		timer := time.NewTimer(time.Duration(task.Duration) * time.Millisecond)
		defer timer.Stop()
		select {
		case <-timer.C:
			s.log.Infow("task completed", "task", task.Name)
		case <-ctx.Done():
			result.Canceled = true
			s.log.Infow("task canceled", "task", task.Name)
		}
	}

	if err := s.pool.SubmitWithPriority(job, task.Priority); err != nil {
		cancel()
		return nil, err
	}
	return models.NewFuture(results, cancel), nil
}

// Shutdown stops the pool and then the recorder so the final events are
// written.
func (s *PoolService) Shutdown() error {
	err := s.pool.Shutdown()
	if s.recorder != nil {
		s.recorder.Stop()
	}
	if errors.Is(err, threadpool.ErrWorkerPanicked) {
		s.log.Errorw("pool stopped with crashed workers", "error", err)
	}
	return err
}
