package threadpool

import (
	"sync"
	"time"
)

type queuedJob struct {
	id       uint64
	priority int
	fn       Job
	queuedAt time.Time
}

// transport moves jobs from submitters to workers. Every pushed job is handed
// to exactly one pop call, or stays queued if no worker is left to take it.
type transport interface {
	push(j queuedJob) error
	// pop blocks until a job is available, the transport is closed and
	// drained, or quit is closed. The bool is false when the caller must exit.
	pop(quit <-chan struct{}) (queuedJob, bool)
	// wake makes blocked pop calls re-check their quit channel.
	wake()
	close()
	len() int
}

// sliceTransport keeps queued jobs in a slice. Without a strategy it is a
// plain FIFO; with one, the strategy inspects the queue and picks the index
// to run. Selection and removal happen under one lock. push never blocks.
type sliceTransport struct {
	mu       sync.Mutex
	cond     *sync.Cond
	items    []queuedJob
	view     []Entry
	strategy Strategy
	limit    int
	closed   bool
}

// newSliceTransport returns an unbounded transport when limit is 0.
func newSliceTransport(s Strategy, limit int) *sliceTransport {
	t := &sliceTransport{strategy: s, limit: limit}
	t.cond = sync.NewCond(&t.mu)
	return t
}

func (t *sliceTransport) push(j queuedJob) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrPoolClosed
	}
	if t.limit > 0 && len(t.items) >= t.limit {
		return ErrQueueFull
	}
	t.items = append(t.items, j)
	t.cond.Signal()
	return nil
}

func (t *sliceTransport) pop(quit <-chan struct{}) (queuedJob, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for {
		select {
		case <-quit:
			return queuedJob{}, false
		default:
		}

		if len(t.items) > 0 {
			return t.take(), true
		}
		if t.closed {
			return queuedJob{}, false
		}
		t.cond.Wait()
	}
}

// take must be called with mu held and a non-empty queue.
func (t *sliceTransport) take() queuedJob {
	if t.strategy == nil {
		j := t.items[0]
		t.items[0] = queuedJob{}
		t.items = t.items[1:]
		return j
	}

	t.view = t.view[:0]
	for _, it := range t.items {
		t.view = append(t.view, Entry{ID: it.id, Priority: it.priority})
	}

	idx, ok := t.strategy.Schedule(t.view)
	if !ok || idx < 0 || idx >= len(t.items) {
		idx = 0
	}

	j := t.items[idx]
	copy(t.items[idx:], t.items[idx+1:])
	t.items[len(t.items)-1] = queuedJob{}
	t.items = t.items[:len(t.items)-1]

	if r, ok := t.strategy.(Remover); ok {
		r.Removed(idx)
	}
	return j
}

func (t *sliceTransport) wake() {
	t.mu.Lock()
	t.cond.Broadcast()
	t.mu.Unlock()
}

func (t *sliceTransport) close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	t.cond.Broadcast()
}

func (t *sliceTransport) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.items)
}
