package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kubev2v/threadpool-agent/internal/config"
)

const (
	flagConfigFile    = "config"
	flagServerMode    = "server-mode"
	flagHTTPPort      = "http-port"
	flagWorkers       = "workers"
	flagStrategy      = "strategy"
	flagMaxWorkers    = "max-workers"
	flagQueueCapacity = "queue-capacity"
	flagResize        = "resize"
	flagInterval      = "resize-interval"
	flagSampleWindow  = "sample-window"
	flagHigh          = "high-watermark"
	flagLow           = "low-watermark"
	flagDataFolder    = "data-folder"
	flagEventBuffer   = "event-buffer"
	flagRetention     = "event-retention"
	flagAuthEnabled   = "auth-enabled"
	flagAuthSecret    = "auth-secret"
	flagLogFormat     = "log-format"
	flagLogLevel      = "log-level"
)

func registerPoolFlags(fs *pflag.FlagSet) {
	d := config.NewConfigurationWithOptionsAndDefaults()

	fs.String(flagConfigFile, "", "Path to a YAML or JSON configuration file")
	fs.Int(flagWorkers, d.Pool.NumWorkers, "Initial number of workers")
	fs.String(flagStrategy, d.Pool.Strategy, "Scheduling strategy: none, priority or round-robin")
	fs.Int(flagMaxWorkers, d.Pool.MaxWorkers, "Maximum number of workers, 0 for no limit")
	fs.Int(flagQueueCapacity, d.Pool.QueueCapacity, "Maximum number of queued jobs, 0 for no limit")
	fs.Bool(flagResize, d.Autoscale.Resize, "Resize the pool from CPU load")
	fs.Duration(flagInterval, d.Autoscale.Interval, "Time between resize checks")
	fs.Duration(flagSampleWindow, d.Autoscale.SampleWindow, "CPU load measurement window")
	fs.Float64(flagHigh, d.Autoscale.HighWatermark, "Add a worker above this CPU load (%)")
	fs.Float64(flagLow, d.Autoscale.LowWatermark, "Remove a worker below this CPU load (%)")
	fs.String(flagLogFormat, d.LogFormat, "Log format: console or json")
	fs.String(flagLogLevel, d.LogLevel, "Log level: debug, info, warn or error")
}

func registerServerFlags(fs *pflag.FlagSet) {
	d := config.NewConfigurationWithOptionsAndDefaults()

	fs.String(flagServerMode, d.Server.ServerMode, "Server mode: dev or prod")
	fs.Int(flagHTTPPort, d.Server.HTTPPort, "Admin API listen port")
	fs.String(flagDataFolder, d.Store.DataFolder, "Folder of the event database, empty keeps events in memory")
	fs.Int(flagEventBuffer, d.Store.EventBuffer, "Pending events kept before new ones are dropped")
	fs.Duration(flagRetention, d.Store.Retention, "How long events are kept, 0 keeps them forever")
	fs.Bool(flagAuthEnabled, d.Auth.Enabled, "Require a bearer JWT on the admin API")
	fs.String(flagAuthSecret, d.Auth.Secret, "HMAC secret used to verify bearer tokens")
}

// loadConfig reads the configuration from flags and the optional config
// file. Explicit flags (including those set from THREADPOOL_* variables by
// the pre-run hook) win over the file.
func loadConfig(fs *pflag.FlagSet) (*config.Configuration, error) {
	v := viper.New()

	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if path := v.GetString(flagConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %q: %w", path, err)
		}
	}

	cfg := config.NewConfigurationWithOptionsAndDefaults(
		config.WithPool(*config.NewPoolWithOptionsAndDefaults(
			config.WithNumWorkers(v.GetInt(flagWorkers)),
			config.WithStrategy(v.GetString(flagStrategy)),
			config.WithMaxWorkers(v.GetInt(flagMaxWorkers)),
			config.WithQueueCapacity(v.GetInt(flagQueueCapacity)),
		)),
		config.WithAutoscale(*config.NewAutoscaleWithOptionsAndDefaults(
			config.WithResize(v.GetBool(flagResize)),
			config.WithInterval(v.GetDuration(flagInterval)),
			config.WithSampleWindow(v.GetDuration(flagSampleWindow)),
			config.WithHighWatermark(v.GetFloat64(flagHigh)),
			config.WithLowWatermark(v.GetFloat64(flagLow)),
		)),
		config.WithLogFormat(v.GetString(flagLogFormat)),
		config.WithLogLevel(v.GetString(flagLogLevel)),
	)

	if fs.Lookup(flagHTTPPort) != nil {
		cfg.Server = *config.NewServerWithOptionsAndDefaults(
			config.WithServerMode(v.GetString(flagServerMode)),
			config.WithHTTPPort(v.GetInt(flagHTTPPort)),
		)
		cfg.Store = *config.NewStoreWithOptionsAndDefaults(
			config.WithDataFolder(v.GetString(flagDataFolder)),
			config.WithEventBuffer(v.GetInt(flagEventBuffer)),
			config.WithRetention(v.GetDuration(flagRetention)),
		)
		cfg.Auth = *config.NewAuthenticationWithOptionsAndDefaults(
			config.WithEnabled(v.GetBool(flagAuthEnabled)),
			config.WithSecret(v.GetString(flagAuthSecret)),
		)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
