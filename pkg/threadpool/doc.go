// Package threadpool implements a resizable worker pool for short-lived jobs.
//
// A Pool owns a set of workers that share one transport. Producers hand jobs
// to the pool with Submit; an idle worker takes each job off the transport and
// runs it inside a panic boundary. The pool can grow or shrink one worker at a
// time, either on request or from a CPU load sample.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                              Pool                                   │
//	│                                                                     │
//	│  ┌──────────────┐      ┌──────────────┐      ┌──────────────┐       │
//	│  │   Worker 0   │      │   Worker 1   │      │   Worker N   │       │
//	│  └──────────────┘      └──────────────┘      └──────────────┘       │
//	│         ▲                     ▲                     ▲               │
//	│         └─────────────────────┼─────────────────────┘               │
//	│                               │ pop(quit)                           │
//	│  ┌────────────────────────────┴────────────────────────────┐        │
//	│  │  Transport                                              │        │
//	│  │   slice + cond, unbounded, push never blocks            │        │
//	│  │   - no strategy: index 0, FIFO         (StrategyNone)   │        │
//	│  │   - Strategy picks index (Priority, RoundRobin, custom) │        │
//	│  └─────────────────────────────────────────────────────────┘        │
//	│                               ▲                                     │
//	│                        Submit(job)                                  │
//	└─────────────────────────────────────────────────────────────────────┘
//
// # Worker Lifecycle
//
//	┌───────────┐   pop returns job   ┌───────────┐
//	│   Idle    │ ──────────────────► │ Executing │
//	│ (in pop)  │ ◄────────────────── │           │
//	└─────┬─────┘   job returns or    └───────────┘
//	      │         panics
//	      │ transport closed and drained, or quit closed
//	      ▼
//	┌────────────┐
//	│ Terminated │  joined exactly once
//	└────────────┘
//
// A panic inside a job is recovered, logged with its stack and reported as an
// EventJobPanicked event. The worker goes back to Idle.
//
// # Scheduling Strategies
//
// A Strategy sees a snapshot of the queued jobs as []Entry (id and priority
// only) and returns the index to run next. The transport removes that index
// under its lock, so a job can never be handed out twice.
//
//   - Priority: highest priority first; ties go to the earliest submitted job.
//   - RoundRobin: a cursor over the queue that wraps when the queue shrinks.
//
// # Resizing
//
//	decision, err := pool.MonitorAndResize(ctx)
//
// MonitorAndResize samples the LoadMonitor once. Above the high watermark
// (80 by default) it adds a worker, below the low watermark (30 by default)
// it removes one. The pool never drops below one worker. A failed or
// out-of-range sample results in ResizeNone. The pool does not run a timer of
// its own; callers decide the cadence.
//
// RemoveWorker and Shutdown wait for workers to exit. Calling either of them
// (or MonitorAndResize) from inside a job deadlocks.
//
// Submit never waits for room in the queue. WithQueueCapacity sets an
// optional limit past which Submit returns ErrQueueFull.
//
// Event handlers run on worker goroutines. A panicking handler is recovered
// and logged; the job and the worker are unaffected.
//
// # Usage Example
//
//	pool, err := threadpool.New(4, threadpool.StrategyPriority,
//	    threadpool.WithLogger(logger),
//	    threadpool.WithLoadMonitor(loadmonitor.NewCPUMonitor()),
//	)
//	if err != nil {
//	    return err
//	}
//	defer pool.Shutdown()
//
//	_ = pool.SubmitWithPriority(func() { reindex() }, 10)
//	_ = pool.Submit(func() { cleanup() })
package threadpool
