package threadpool

import (
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"go.uber.org/zap"
)

// worker owns one goroutine that pulls jobs from the shared transport until
// the transport is closed or the worker is told to quit.
type worker struct {
	id    int
	pool  *Pool
	quit  chan struct{}
	done  chan struct{}
	log   *zap.Logger
	fault error

	stopOnce sync.Once
	joinOnce sync.Once
}

func newWorker(id int, p *Pool) *worker {
	return &worker{
		id:   id,
		pool: p,
		quit: make(chan struct{}),
		done: make(chan struct{}),
		log:  p.log.With(zap.Int("worker", id)),
	}
}

func (w *worker) start() {
	go w.run()
}

func (w *worker) run() {
	defer close(w.done)
	defer func() {
		// the job boundary in execute should make this unreachable
		if rec := recover(); rec != nil {
			w.fault = fmt.Errorf("%w: worker %d: %v", ErrWorkerPanicked, w.id, rec)
			w.log.Error("worker crashed", zap.Any("panic", rec), zap.ByteString("stack", debug.Stack()))
		}
	}()

	w.log.Debug("worker started")
	w.pool.emit(Event{Type: EventWorkerStarted, WorkerID: w.id})

	for {
		j, ok := w.pool.transport.pop(w.quit)
		if !ok {
			w.log.Info("worker stopped", zap.String("reason", w.stopReason()))
			w.pool.emit(Event{Type: EventWorkerStopped, WorkerID: w.id})
			return
		}
		w.execute(j)
	}
}

func (w *worker) stopReason() string {
	select {
	case <-w.quit:
		return "stop requested"
	default:
		return "queue closed"
	}
}

// execute runs one job inside a panic boundary so a faulty job never costs
// the pool a worker.
func (w *worker) execute(j queuedJob) {
	start := time.Now()
	log := w.log.With(zap.Uint64("job", j.id))

	log.Debug("job started", zap.Duration("queued_for", start.Sub(j.queuedAt)))
	w.pool.emit(Event{Type: EventJobStarted, WorkerID: w.id, JobID: j.id})

	defer func() {
		elapsed := time.Since(start)
		if rec := recover(); rec != nil {
			err := fmt.Errorf("job %d panicked: %v", j.id, rec)
			w.pool.panicked.Add(1)
			log.Error("job panicked", zap.Any("panic", rec), zap.ByteString("stack", debug.Stack()))
			w.pool.emit(Event{Type: EventJobPanicked, WorkerID: w.id, JobID: j.id, Duration: elapsed, Err: err})
			return
		}
		w.pool.completed.Add(1)
		log.Debug("job completed", zap.Duration("duration", elapsed))
		w.pool.emit(Event{Type: EventJobCompleted, WorkerID: w.id, JobID: j.id, Duration: elapsed})
	}()

	j.fn()
}

func (w *worker) stop() {
	w.stopOnce.Do(func() {
		close(w.quit)
	})
}

// join blocks until the worker goroutine has returned. Only the first call
// waits and reports a crash; later calls return nil.
func (w *worker) join() error {
	var err error
	w.joinOnce.Do(func() {
		<-w.done
		err = w.fault
	})
	return err
}
