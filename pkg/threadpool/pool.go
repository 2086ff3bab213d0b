package threadpool

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Pool runs submitted jobs on a resizable set of workers.
type Pool struct {
	id        string
	kind      StrategyKind
	transport transport
	log       *zap.Logger
	opts      options

	// mu serializes structural changes: add, remove and shutdown.
	mu      sync.Mutex
	workers []*worker
	nextID  int
	size    atomic.Int32
	closed  atomic.Bool

	shutdownOnce sync.Once

	jobSeq    atomic.Uint64
	submitted atomic.Uint64
	completed atomic.Uint64
	panicked  atomic.Uint64
}

// New creates a pool with numWorkers workers using the scheduling strategy
// named by kind. StrategyNone dispatches in plain FIFO order.
func New(numWorkers int, kind StrategyKind, opts ...Option) (*Pool, error) {
	s, err := NewStrategy(kind)
	if err != nil {
		return nil, err
	}
	return newPool(numWorkers, kind, s, opts...)
}

// NewWithStrategy creates a pool that dispatches through s.
func NewWithStrategy(numWorkers int, s Strategy, opts ...Option) (*Pool, error) {
	if s == nil {
		return newPool(numWorkers, StrategyNone, nil, opts...)
	}
	return newPool(numWorkers, StrategyKind(fmt.Sprintf("%T", s)), s, opts...)
}

func newPool(numWorkers int, kind StrategyKind, s Strategy, opts ...Option) (*Pool, error) {
	if numWorkers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkerCount, numWorkers)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateThresholds(o.high, o.low); err != nil {
		return nil, err
	}
	if o.maxWorkers > 0 && o.maxWorkers < numWorkers {
		return nil, fmt.Errorf("%w: max %d is below initial %d", ErrMaxWorkers, o.maxWorkers, numWorkers)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}
	if o.log == nil {
		o.log = zap.L().Named("threadpool")
	}
	if o.queueCapacity < 0 {
		o.queueCapacity = 0
	}

	p := &Pool{
		id:   o.id,
		kind: kind,
		log:  o.log.With(zap.String("pool", o.id)),
		opts: o,
	}

	p.transport = newSliceTransport(s, o.queueCapacity)

	p.mu.Lock()
	for range numWorkers {
		p.spawn()
	}
	p.mu.Unlock()

	p.log.Info("pool started", zap.Int("workers", numWorkers), zap.String("strategy", string(kind)))
	return p, nil
}

func validateThresholds(high, low float64) error {
	if math.IsNaN(high) || math.IsNaN(low) || low < 0 || high > 100 || low >= high {
		return fmt.Errorf("%w: high=%v low=%v", ErrInvalidThresholds, high, low)
	}
	return nil
}

// spawn must be called with mu held.
func (p *Pool) spawn() *worker {
	w := newWorker(p.nextID, p)
	p.nextID++
	p.workers = append(p.workers, w)
	p.size.Store(int32(len(p.workers)))
	w.start()
	return w
}

// Submit queues job for execution by one of the workers.
func (p *Pool) Submit(job Job) error {
	return p.SubmitWithPriority(job, 0)
}

// Execute is an alias of Submit.
func (p *Pool) Execute(job Job) error {
	return p.Submit(job)
}

// SubmitWithPriority queues job with a priority. Only the priority strategy
// looks at it; higher values run first.
func (p *Pool) SubmitWithPriority(job Job, priority int) error {
	if job == nil {
		return ErrNilJob
	}
	if p.closed.Load() {
		return ErrPoolClosed
	}

	j := queuedJob{
		id:       p.jobSeq.Add(1),
		priority: priority,
		fn:       job,
		queuedAt: time.Now(),
	}
	p.submitted.Add(1)
	if err := p.transport.push(j); err != nil {
		p.submitted.Add(^uint64(0))
		return err
	}
	p.log.Debug("job submitted", zap.Uint64("job", j.id), zap.Int("priority", priority))
	return nil
}

// AddWorker starts one more worker on the shared transport.
func (p *Pool) AddWorker() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed.Load() {
		return ErrPoolClosed
	}
	if p.opts.maxWorkers > 0 && len(p.workers) >= p.opts.maxWorkers {
		return ErrMaxWorkers
	}

	w := p.spawn()
	p.log.Info("worker added", zap.Int("worker", w.id), zap.Int("workers", len(p.workers)))
	return nil
}

// RemoveWorker stops the most recently added worker and waits for it to
// exit. A job the worker is running is allowed to finish. The last worker is
// never removed.
//
// Do not call RemoveWorker from inside a job: if the job runs on the worker
// being removed, the call waits for itself and never returns.
func (p *Pool) RemoveWorker() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed.Load() {
		return ErrPoolClosed
	}
	if len(p.workers) <= 1 {
		return ErrLastWorker
	}

	w := p.workers[len(p.workers)-1]
	p.workers = p.workers[:len(p.workers)-1]
	p.size.Store(int32(len(p.workers)))

	w.stop()
	p.transport.wake()
	err := w.join()

	p.log.Info("worker removed", zap.Int("worker", w.id), zap.Int("workers", len(p.workers)))
	return err
}

// MonitorAndResize samples the load monitor once and adds or removes a worker
// when the load crosses the configured thresholds. Sampling problems never
// fail the caller; they result in ResizeNone.
//
// Like RemoveWorker, it must not be called from inside a job.
func (p *Pool) MonitorAndResize(ctx context.Context) (ResizeDecision, error) {
	decision := ResizeDecision{Action: ResizeNone, Workers: p.NumWorkers()}

	if !p.opts.resize || p.opts.monitor == nil {
		return decision, nil
	}
	if p.closed.Load() {
		return decision, ErrPoolClosed
	}

	load, err := p.opts.monitor.Sample(ctx)
	if err != nil {
		p.log.Warn("failed to sample load; skipping resize", zap.Error(err))
		return decision, nil
	}
	if math.IsNaN(load) || load < 0 || load > 100 {
		p.log.Warn("load sample out of range; skipping resize", zap.Float64("load", load))
		return decision, nil
	}
	decision.Load = load

	switch {
	case load > p.opts.high:
		err := p.AddWorker()
		if errors.Is(err, ErrMaxWorkers) {
			p.log.Debug("load is high but pool is at max size", zap.Float64("load", load))
		} else if err != nil {
			return decision, err
		} else {
			decision.Action = ResizeAdded
		}
	case load < p.opts.low:
		err := p.RemoveWorker()
		if errors.Is(err, ErrLastWorker) {
			p.log.Debug("load is low but pool is at min size", zap.Float64("load", load))
		} else if err != nil {
			return decision, err
		} else {
			decision.Action = ResizeRemoved
		}
	}

	decision.Workers = p.NumWorkers()
	p.log.Info("resize check",
		zap.Float64("load", load),
		zap.String("action", string(decision.Action)),
		zap.Int("workers", decision.Workers))
	p.emit(Event{Type: EventResized, Load: load, Workers: decision.Workers, Action: decision.Action})

	return decision, nil
}

// Shutdown stops accepting jobs, lets the workers drain the queue and waits
// for all of them to exit. Only the first call does any work and reports
// crashed workers; later calls return nil.
func (p *Pool) Shutdown() error {
	var errs error
	p.shutdownOnce.Do(func() {
		p.mu.Lock()
		defer p.mu.Unlock()

		p.log.Info("shutting down pool", zap.Int("queued", p.transport.len()))
		p.closed.Store(true)
		p.transport.close()

		for _, w := range p.workers {
			errs = multierr.Append(errs, w.join())
		}
		p.workers = nil
		p.size.Store(0)

		p.log.Info("pool stopped",
			zap.Uint64("submitted", p.submitted.Load()),
			zap.Uint64("completed", p.completed.Load()),
			zap.Uint64("panicked", p.panicked.Load()))
		_ = p.log.Sync()
	})
	return errs
}

func (p *Pool) emit(ev Event) {
	if p.opts.handler == nil {
		return
	}
	ev.PoolID = p.id
	if ev.Time.IsZero() {
		ev.Time = time.Now()
	}

	defer func() {
		if rec := recover(); rec != nil {
			p.log.Error("event handler panicked",
				zap.String("event", string(ev.Type)),
				zap.Any("panic", rec),
				zap.ByteString("stack", debug.Stack()))
		}
	}()
	p.opts.handler(ev)
}

func (p *Pool) ID() string { return p.id }

func (p *Pool) Strategy() StrategyKind { return p.kind }

func (p *Pool) NumWorkers() int {
	return int(p.size.Load())
}

// QueueSize returns the number of jobs waiting for a worker.
func (p *Pool) QueueSize() int {
	return p.transport.len()
}

func (p *Pool) Stats() Stats {
	return Stats{
		Workers:   p.NumWorkers(),
		Queued:    p.QueueSize(),
		Submitted: p.submitted.Load(),
		Completed: p.completed.Load(),
		Panicked:  p.panicked.Load(),
		Closed:    p.closed.Load(),
	}
}
