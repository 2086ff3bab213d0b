// Package services implements the business logic layer for the threadpool agent.
//
// Services sit between the HTTP handlers and the worker pool and event store.
//
// # Service Dependency Graph
//
//	Handlers (HTTP endpoints) / CLI
//	    │
//	    ▼
//	Services Layer
//	    ├── PoolService ─────► threadpool.Pool, EventRecorder
//	    ├── Autoscaler ──────► PoolService (Resizer)
//	    ├── EventRecorder ───► Store
//	    └── EventService ────► Store
//
// # PoolService
//
// PoolService is a thin facade over threadpool.Pool. It adds:
//   - Status(): pool counters plus the last resize decision and the number of
//     events the recorder dropped
//   - SubmitTask(task): queues a synthetic sleeping task and returns a
//     models.Future that receives exactly one TaskResult (completed,
//     canceled or panicked)
//   - Shutdown(): stops the pool first and the recorder second, so the final
//     worker_stopped events reach the store
//
// # Autoscaler
//
// Autoscaler drives periodic resizing. It is deliberately outside the pool:
// the pool only exposes a single MonitorAndResize pass.
//
//	┌────────────┐  every Interval   ┌─────────────┐   sample   ┌─────────────┐
//	│ Autoscaler │──────────────────►│ PoolService │───────────►│ LoadMonitor │
//	└────────────┘  Resize(ctx)      └─────────────┘            └─────────────┘
//	                                        │ load > high: AddWorker
//	                                        │ load < low:  RemoveWorker
//	                                        ▼
//	                                  threadpool.Pool
//
// The loop uses wait.UntilWithContext and stops when its context ends. A
// failing check is logged and the loop continues.
//
// # EventRecorder
//
// EventRecorder is installed as the pool's event handler. Events travel
// through a bounded channel to one writer goroutine:
//
//	worker ──Handle()──► [ buffered chan ] ──► writer ──► EventStore.Insert
//	           │
//	           └── buffer full: drop, count
//
// job_started events are not recorded. Stop() closes the channel, writes
// what is buffered and waits for the writer.
//
// # EventService
//
// EventService provides read access to the event history with filtering and
// pagination, following the store's functional ListOption pattern. Prune
// deletes events older than the configured retention.
//
// Usage:
//
//	recorder := services.NewEventRecorder(st, cfg.Store.EventBuffer)
//	recorder.Start()
//	pool, _ := threadpool.New(4, threadpool.StrategyPriority,
//	    threadpool.WithEventHandler(recorder.Handle))
//	poolSrv := services.NewPoolService(pool, recorder, true)
//	go services.NewAutoscaler(poolSrv, 5*time.Second).Run(ctx)
package services
