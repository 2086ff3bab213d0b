// Package server provides the HTTP admin server for the threadpool agent.
//
// The server uses the Gin web framework and exposes the pool admin API under
// /api/v1 plus an unauthenticated /health probe.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server                           │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Logger (request/response logging)                      │  │
//	│  │  Recovery (panic recovery with zap logging)             │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│  GET /health                                                  │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Router (/api/v1)                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  JWTAuth (only when Auth.Enabled)                       │  │
//	│  │  Handlers (registered via callback)                     │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Modes
//
// Development Mode (ServerMode = "dev"): Gin runs in debug mode.
//
// Production Mode (ServerMode = "prod"): Gin runs in release mode.
//
// # Server Lifecycle
//
//	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
//	    v1.RegisterHandlers(router, handler)
//	})
//
//	// Blocks until error or Stop; returns nil after a graceful Stop.
//	err = srv.Start(ctx)
//
//	// Waits for in-flight requests.
//	srv.Stop(ctx)
//
// # Middleware
//
// Logger Middleware (middlewares.Logger):
//   - Logs request start at debug level: method, path, query, IP, user-agent
//   - Logs request end: all above + status code, latency
//   - Errors logged separately if present
//
// Recovery Middleware (ginzap.RecoveryWithZap):
//   - Recovers from panics in handlers, logs the stack, returns 500
//
// Auth Middleware (middlewares.JWTAuth):
//   - Requires "Authorization: Bearer <token>" signed with HS256 and
//     Auth.Secret; other algorithms are rejected
//   - Expired or malformed tokens get 401
//   - Verified claims are stored in the gin context under ClaimsKey
package server
