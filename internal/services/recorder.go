package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/kubev2v/threadpool-agent/internal/models"
	"github.com/kubev2v/threadpool-agent/internal/store"
	"github.com/kubev2v/threadpool-agent/pkg/threadpool"
)

const insertTimeout = 5 * time.Second

// EventRecorder persists pool events in the background. Handle is called from
// worker goroutines and never blocks: when the buffer is full the event is
// dropped and counted.
type EventRecorder struct {
	store   *store.Store
	events  chan models.Event
	done    chan struct{}
	dropped atomic.Uint64
	written atomic.Uint64
	log     *zap.SugaredLogger

	mu        sync.RWMutex
	closed    bool
	startOnce sync.Once
	stopOnce  sync.Once
}

func NewEventRecorder(st *store.Store, buffer int) *EventRecorder {
	if buffer < 1 {
		buffer = 1
	}
	return &EventRecorder{
		store:  st,
		events: make(chan models.Event, buffer),
		done:   make(chan struct{}),
		log:    zap.S().Named("event_recorder"),
	}
}

// Handle is a threadpool.EventHandler.
func (r *EventRecorder) Handle(ev threadpool.Event) {
	// job_started doubles the volume and carries nothing job_completed lacks
	if ev.Type == threadpool.EventJobStarted {
		return
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return
	}

	select {
	case r.events <- models.NewEventFromPool(ev):
	default:
		if r.dropped.Add(1)%100 == 1 {
			r.log.Warnw("event buffer full, dropping events", "dropped", r.dropped.Load())
		}
	}
}

// Start launches the writer goroutine.
func (r *EventRecorder) Start() {
	r.startOnce.Do(func() {
		go r.run()
	})
}

func (r *EventRecorder) run() {
	defer close(r.done)
	for e := range r.events {
		ctx, cancel := context.WithTimeout(context.Background(), insertTimeout)
		if err := r.store.Events().Insert(ctx, e); err != nil {
			r.log.Errorw("failed to store event", "type", e.Type, "error", err)
		} else {
			r.written.Add(1)
		}
		cancel()
	}
}

// Stop rejects new events, writes the buffered ones and waits for the writer
// to exit.
func (r *EventRecorder) Stop() {
	r.stopOnce.Do(func() {
		r.mu.Lock()
		r.closed = true
		close(r.events)
		r.mu.Unlock()

		r.Start()
		<-r.done
		r.log.Infow("event recorder stopped", "written", r.written.Load(), "dropped", r.dropped.Load())
	})
}

func (r *EventRecorder) Dropped() uint64 {
	return r.dropped.Load()
}

func (r *EventRecorder) Written() uint64 {
	return r.written.Load()
}
