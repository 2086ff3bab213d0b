package threadpool

import (
	"context"
	"errors"
	"time"
)

var (
	ErrPoolClosed         = errors.New("pool closed")
	ErrLastWorker         = errors.New("cannot remove the last worker")
	ErrMaxWorkers         = errors.New("maximum number of workers reached")
	ErrInvalidWorkerCount = errors.New("number of workers must be at least 1")
	ErrInvalidThresholds  = errors.New("invalid resize thresholds")
	ErrUnknownStrategy    = errors.New("unknown scheduling strategy")
	ErrNilJob             = errors.New("job is nil")
	ErrQueueFull          = errors.New("job queue is full")
	ErrWorkerPanicked     = errors.New("worker panicked outside of job execution")
)

// Job is a unit of work. It is run at most once, by exactly one worker.
type Job func()

// LoadMonitor reports recent CPU utilization as a percentage in [0,100].
type LoadMonitor interface {
	Sample(ctx context.Context) (float64, error)
}

// LoadMonitorFunc adapts a plain function to the LoadMonitor interface.
type LoadMonitorFunc func(ctx context.Context) (float64, error)

func (f LoadMonitorFunc) Sample(ctx context.Context) (float64, error) {
	return f(ctx)
}

type ResizeAction string

const (
	ResizeNone    ResizeAction = "none"
	ResizeAdded   ResizeAction = "added"
	ResizeRemoved ResizeAction = "removed"
)

// ResizeDecision is the outcome of one MonitorAndResize pass.
type ResizeDecision struct {
	Action  ResizeAction
	Load    float64
	Workers int
}

type EventType string

const (
	EventWorkerStarted EventType = "worker_started"
	EventWorkerStopped EventType = "worker_stopped"
	EventJobStarted    EventType = "job_started"
	EventJobCompleted  EventType = "job_completed"
	EventJobPanicked   EventType = "job_panicked"
	EventResized       EventType = "resized"
)

// Event describes something that happened inside the pool. Fields that do not
// apply to a given type are left at their zero value.
type Event struct {
	Type     EventType
	PoolID   string
	WorkerID int
	JobID    uint64
	Duration time.Duration
	Load     float64
	Workers  int
	Action   ResizeAction
	Err      error
	Time     time.Time
}

// EventHandler receives pool events. It is called from worker goroutines and
// must return quickly.
type EventHandler func(Event)

// Stats is a point-in-time view of the pool counters.
type Stats struct {
	Workers   int
	Queued    int
	Submitted uint64
	Completed uint64
	Panicked  uint64
	Closed    bool
}
