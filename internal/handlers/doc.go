// Package handlers implements the HTTP API layer for the threadpool agent.
//
// Handlers delegate to the services layer and focus on request validation,
// response formatting and HTTP semantics.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│               v1.ServerInterfaceWrapper (api/v1)                │
//	│  - Query and path parameter binding                             │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - Request validation                                           │
//	│  - Error mapping to HTTP status codes                           │
//	│  - Model-to-API conversion                                      │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Services Layer                             │
//	│  PoolService │ EventService                                     │
//	└─────────────────────────────────────────────────────────────────┘
//
// The Handler implements v1.ServerInterface and is registered with:
//
//	v1.RegisterHandlers(router, handler)
//
// # API Endpoints
//
// Pool Endpoints (pool.go):
//
//	┌────────┬───────────────┬────────────────────────────────────────────┐
//	│ Method │ Endpoint      │ Description                                │
//	├────────┼───────────────┼────────────────────────────────────────────┤
//	│ GET    │ /pool         │ Pool status and counters                   │
//	│ POST   │ /pool/workers │ Add a worker                               │
//	│ DELETE │ /pool/workers │ Remove a worker                            │
//	│ POST   │ /pool/resize  │ Run one load check                         │
//	│ POST   │ /jobs         │ Submit a synthetic job                     │
//	└────────┴───────────────┴────────────────────────────────────────────┘
//
// Event Endpoints (events.go):
//
//	┌────────┬──────────────┬─────────────────────────────────────────────┐
//	│ Method │ Endpoint     │ Description                                 │
//	├────────┼──────────────┼─────────────────────────────────────────────┤
//	│ GET    │ /events      │ List events with filtering/pagination       │
//	│ GET    │ /events/{id} │ Get one event                               │
//	└────────┴──────────────┴─────────────────────────────────────────────┘
//
// # Pool Handler
//
// GET /pool:
//
//	{
//	    "id": "0b6c...",
//	    "strategy": "priority",
//	    "workers": 4,
//	    "queued": 12,
//	    "submitted": 130,
//	    "completed": 117,
//	    "panicked": 1,
//	    "closed": false,
//	    "autoscale": true,
//	    "droppedEvents": 0,
//	    "lastResize": {"action": "added", "load": 86.2, "workers": 4}
//	}
//
// POST and DELETE /pool/workers return the same body after the change.
//
// POST /jobs:
//
//	{ "name": "resize-images", "durationMs": 250, "priority": 5, "panic": false }
//
// Response: 202 Accepted with { "name": "resize-images" }. A generated name
// is used when none is given.
//
// Errors:
//   - 400 Bad Request: malformed body or negative duration
//   - 409 Conflict: removing the last worker, or adding above the maximum
//   - 503 Service Unavailable: the pool is shut down
//
// # Event Handler
//
// GET /events query parameters:
//
//	┌───────────┬──────────┬──────────────────────────────────────────┐
//	│ Parameter │ Type     │ Description                              │
//	├───────────┼──────────┼──────────────────────────────────────────┤
//	│ type      │ []string │ Filter by event type (OR logic)          │
//	│ worker    │ int      │ Filter by worker id                      │
//	│ limit     │ int      │ Page size (default: 50, max: 500)        │
//	│ offset    │ int      │ Events to skip                           │
//	└───────────┴──────────┴──────────────────────────────────────────┘
//
// Example: /events?type=job_panicked&type=resized&limit=20
//
// Events are returned newest first. GET /events/{id} returns 404 for an
// unknown id.
package handlers
