package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kubev2v/threadpool-agent/pkg/threadpool"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Pool Autoscale Store Authentication

type Configuration struct {
	Server    Server         `debugmap:"visible"`
	Pool      Pool           `debugmap:"visible"`
	Autoscale Autoscale      `debugmap:"visible"`
	Store     Store          `debugmap:"visible"`
	Auth      Authentication `debugmap:"visible"`
	LogFormat string         `debugmap:"visible" default:"console"`
	LogLevel  string         `debugmap:"visible" default:"info"`
}

type Server struct {
	ServerMode string `debugmap:"visible" default:"dev"`
	HTTPPort   int    `debugmap:"visible" default:"8000"`
}

type Pool struct {
	NumWorkers    int    `debugmap:"visible" default:"4"`
	Strategy      string `debugmap:"visible" default:"none"`
	MaxWorkers    int    `debugmap:"visible" default:"0"`
	QueueCapacity int    `debugmap:"visible" default:"0"`
}

type Autoscale struct {
	Resize        bool          `debugmap:"visible" default:"true"`
	Interval      time.Duration `debugmap:"visible" default:"5s"`
	SampleWindow  time.Duration `debugmap:"visible" default:"500ms"`
	HighWatermark float64       `debugmap:"visible" default:"80"`
	LowWatermark  float64       `debugmap:"visible" default:"30"`
}

type Store struct {
	// DataFolder holds the event database. Empty keeps events in memory.
	DataFolder  string `debugmap:"visible" default:""`
	EventBuffer int    `debugmap:"visible" default:"256"`
	// Retention is how long events are kept. Zero keeps them forever.
	Retention time.Duration `debugmap:"visible" default:"24h"`
}

type Authentication struct {
	Enabled bool   `debugmap:"visible" default:"false"`
	Secret  string `debugmap:"hidden"`
}

// Validate reports every invalid setting at once.
func (c *Configuration) Validate() error {
	var errs []error

	switch c.Server.ServerMode {
	case "dev", "prod":
	default:
		errs = append(errs, fmt.Errorf("server mode must be dev or prod, got %q", c.Server.ServerMode))
	}
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("http port out of range: %d", c.Server.HTTPPort))
	}

	if c.Pool.NumWorkers < 1 {
		errs = append(errs, fmt.Errorf("number of workers must be at least 1, got %d", c.Pool.NumWorkers))
	}
	if _, err := threadpool.ParseStrategyKind(c.Pool.Strategy); err != nil {
		errs = append(errs, err)
	}
	if c.Pool.QueueCapacity < 0 {
		errs = append(errs, fmt.Errorf("queue capacity must not be negative, got %d", c.Pool.QueueCapacity))
	}
	if c.Pool.MaxWorkers != 0 && c.Pool.MaxWorkers < c.Pool.NumWorkers {
		errs = append(errs, fmt.Errorf("max workers %d is below number of workers %d", c.Pool.MaxWorkers, c.Pool.NumWorkers))
	}

	if c.Autoscale.LowWatermark < 0 || c.Autoscale.HighWatermark > 100 || c.Autoscale.LowWatermark >= c.Autoscale.HighWatermark {
		errs = append(errs, fmt.Errorf("%w: high=%v low=%v", threadpool.ErrInvalidThresholds, c.Autoscale.HighWatermark, c.Autoscale.LowWatermark))
	}
	if c.Autoscale.Resize && c.Autoscale.Interval <= 0 {
		errs = append(errs, errors.New("autoscale interval must be positive"))
	}

	if c.Store.EventBuffer < 1 {
		errs = append(errs, fmt.Errorf("event buffer must be at least 1, got %d", c.Store.EventBuffer))
	}
	if c.Store.Retention < 0 {
		errs = append(errs, errors.New("event retention must not be negative"))
	}

	if c.Auth.Enabled && c.Auth.Secret == "" {
		errs = append(errs, errors.New("authentication is enabled but no secret is set"))
	}

	switch c.LogFormat {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log format must be console or json, got %q", c.LogFormat))
	}

	return errors.Join(errs...)
}
