// Package store implements the data access layer for the threadpool agent.
//
// This package persists the pool event history in DuckDB. Tables are created
// by local migrations (internal/store/migrations/sql/).
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                         Store (facade)                          │
//	├─────────────────────────────────────────────────────────────────┤
//	│                          EventStore                             │
//	│                              ▼                                  │
//	│                 loggingInterceptor (QueryInterceptor)           │
//	│                              ▼                                  │
//	│                     events, schema_migrations                   │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Tables
//
//	┌────────────────────┬─────────────────────────────────────────────┐
//	│  Table             │  Purpose                                    │
//	├────────────────────┼─────────────────────────────────────────────┤
//	│  events            │  Worker, job and resize events of the pool  │
//	│  schema_migrations │  Migration version tracking                 │
//	└────────────────────┴─────────────────────────────────────────────┘
//
// Schema:
//
//	events (
//	    id BIGINT PRIMARY KEY DEFAULT nextval('events_id_seq'),
//	    pool_id VARCHAR,
//	    event_type VARCHAR,       -- worker_started, job_completed, resized, ...
//	    worker_id INTEGER NULL,   -- NULL for resize events
//	    job_id BIGINT,
//	    duration_us BIGINT,
//	    cpu_load DOUBLE,
//	    workers INTEGER,
//	    action VARCHAR,           -- none, added, removed
//	    error_message VARCHAR,
//	    created_at TIMESTAMP
//	)
//
// # Initialization Flow
//
//	db, err := store.NewDB(store.DBPath(cfg.Store.DataFolder))
//	err = migrations.Run(ctx, db)
//	s := store.NewStore(db)
//
// ":memory:" (or an empty data folder) opens an in-memory database.
//
// # List Options
//
// EventStore.List uses the functional options pattern. Each ListOption is a
// function that modifies the SQL query builder:
//
//	events, err := s.Events().List(ctx,
//	    store.ByTypes(threadpool.EventJobPanicked),
//	    store.ByWorker(3),
//	    store.WithDefaultSort(),
//	    store.WithLimit(50),
//	    store.WithOffset(0),
//	)
//
// Filtering Options:
//
//   - ByTypes(types ...threadpool.EventType): SQL WHERE event_type IN (...)
//   - ByWorker(id int): SQL WHERE worker_id = id
//   - ByPool(id string): SQL WHERE pool_id = id
//   - Since(t time.Time): SQL WHERE created_at >= t
//
// Pagination and sorting: WithLimit, WithOffset, WithDefaultSort (newest
// first). Count accepts the filtering options only.
//
// # Error Handling
//
// Get returns a ResourceNotFoundError from pkg/errors when the id is
// unknown; other database errors are returned unwrapped.
package store
