package models

import (
	"time"

	"github.com/kubev2v/threadpool-agent/pkg/threadpool"
)

// Event is a pool event as persisted in the history store.
type Event struct {
	ID        int64
	PoolID    string
	Type      threadpool.EventType
	WorkerID  *int
	JobID     uint64
	Duration  time.Duration
	Load      float64
	Workers   int
	Action    threadpool.ResizeAction
	Error     string
	CreatedAt time.Time
}

// NewEventFromPool converts a pool event to its stored form. Worker id is
// only kept for worker and job events.
func NewEventFromPool(ev threadpool.Event) Event {
	e := Event{
		PoolID:    ev.PoolID,
		Type:      ev.Type,
		JobID:     ev.JobID,
		Duration:  ev.Duration,
		Load:      ev.Load,
		Workers:   ev.Workers,
		Action:    ev.Action,
		CreatedAt: ev.Time,
	}
	if ev.Type != threadpool.EventResized {
		id := ev.WorkerID
		e.WorkerID = &id
	}
	if ev.Err != nil {
		e.Error = ev.Err.Error()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	return e
}
