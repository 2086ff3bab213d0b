// Package config defines the configuration structure for the threadpool agent.
//
// Configuration is organized into logical sections (Server, Pool, Autoscale,
// Store, Authentication) and uses code generation via optgen to create
// functional option helpers.
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - HTTP admin server settings
//	├── Pool           - Worker pool shape and scheduling strategy
//	├── Autoscale      - Load driven resizing
//	├── Store          - Event history storage
//	├── Auth           - Authentication settings
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Server Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field            │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ ServerMode       │ "dev"   │ Server mode: "prod" or "dev"           │
//	│ HTTPPort         │ 8000    │ HTTP server listen port                │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Pool Configuration
//
//	┌───────────────┬─────────┬──────────────────────────────────────────────┐
//	│ Field         │ Default │ Description                                  │
//	├───────────────┼─────────┼──────────────────────────────────────────────┤
//	│ NumWorkers    │ 4       │ Initial number of workers (>= 1)             │
//	│ Strategy      │ "none"  │ none | priority | round-robin                │
//	│ MaxWorkers    │ 0       │ Upper bound for resizing, 0 means unbounded  │
//	│ QueueCapacity │ 0       │ Queued job limit, 0 means unbounded          │
//	└───────────────┴─────────┴──────────────────────────────────────────────┘
//
// # Autoscale Configuration
//
//	┌───────────────┬─────────┬────────────────────────────────────────┐
//	│ Field         │ Default │ Description                            │
//	├───────────────┼─────────┼────────────────────────────────────────┤
//	│ Resize        │ true    │ Enable load driven resizing            │
//	│ Interval      │ 5s      │ Time between resize checks             │
//	│ SampleWindow  │ 500ms   │ CPU measurement window                 │
//	│ HighWatermark │ 80      │ Add a worker above this load (%)       │
//	│ LowWatermark  │ 30      │ Remove a worker below this load (%)    │
//	└───────────────┴─────────┴────────────────────────────────────────┘
//
// # Store Configuration
//
//	┌─────────────┬─────────┬──────────────────────────────────────────────┐
//	│ Field       │ Default │ Description                                  │
//	├─────────────┼─────────┼──────────────────────────────────────────────┤
//	│ DataFolder  │ ""      │ Folder of the DuckDB file, empty = in memory │
//	│ EventBuffer │ 256     │ Pending events before new ones are dropped   │
//	│ Retention   │ 24h     │ Age after which events are pruned, 0 = never │
//	└─────────────┴─────────┴──────────────────────────────────────────────┘
//
// # Authentication Configuration
//
//	┌─────────┬─────────┬────────────────────────────────────────┐
//	│ Field   │ Default │ Description                            │
//	├─────────┼─────────┼────────────────────────────────────────┤
//	│ Enabled │ false   │ Require a bearer JWT on the admin API  │
//	│ Secret  │ ""      │ HMAC secret used to verify tokens      │
//	└─────────┴─────────┴────────────────────────────────────────┘
//
// # Code Generation
//
// The package uses optgen to generate functional option helpers:
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Pool Autoscale Store Authentication
//
// # Usage Example
//
//	cfg := config.NewConfigurationWithOptionsAndDefaults(
//	    config.WithPool(*config.NewPoolWithOptionsAndDefaults(
//	        config.WithNumWorkers(8),
//	        config.WithStrategy("priority"),
//	    )),
//	    config.WithLogLevel("debug"),
//	)
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
// # Debug Logging
//
// Fields are tagged with `debugmap:"visible"` so the configuration can be
// logged via DebugMap(). The authentication secret is `debugmap:"hidden"`.
//
//	zap.S().Infow("configuration loaded", "config", cfg.DebugMap())
package config
