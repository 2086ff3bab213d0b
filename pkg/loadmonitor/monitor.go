package loadmonitor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/shirou/gopsutil/v3/cpu"
	"go.uber.org/zap"
)

const (
	DefaultInterval = 500 * time.Millisecond
	DefaultRetries  = 3
)

var ErrNoSample = errors.New("cpu sampler returned no values")

// SampleFunc returns one utilization value per entry. It has the shape of
// cpu.PercentWithContext with percpu=false.
type SampleFunc func(ctx context.Context, interval time.Duration, percpu bool) ([]float64, error)

// CPUMonitor reports host-wide CPU utilization measured over a short window.
type CPUMonitor struct {
	interval time.Duration
	retries  uint
	sample   SampleFunc
	log      *zap.SugaredLogger
}

type Option func(*CPUMonitor)

func WithInterval(d time.Duration) Option {
	return func(m *CPUMonitor) { m.interval = d }
}

// WithRetries sets how many times a failed sample is attempted before the
// error is returned. Values below 1 are treated as 1.
func WithRetries(n uint) Option {
	return func(m *CPUMonitor) { m.retries = n }
}

func WithSampleFunc(f SampleFunc) Option {
	return func(m *CPUMonitor) { m.sample = f }
}

func NewCPUMonitor(opts ...Option) *CPUMonitor {
	m := &CPUMonitor{
		interval: DefaultInterval,
		retries:  DefaultRetries,
		sample:   cpu.PercentWithContext,
		log:      zap.S().Named("load_monitor"),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.retries < 1 {
		m.retries = 1
	}
	return m
}

// Sample blocks for the measurement interval and returns the utilization as
// a percentage.
func (m *CPUMonitor) Sample(ctx context.Context) (float64, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 50 * time.Millisecond
	bo.MaxInterval = time.Second

	load, err := backoff.Retry(ctx, func() (float64, error) {
		values, err := m.sample(ctx, m.interval, false)
		if err != nil {
			m.log.Debugw("cpu sample failed", "error", err)
			return 0, err
		}
		if len(values) == 0 {
			return 0, backoff.Permanent(ErrNoSample)
		}
		return values[0], nil
	}, backoff.WithBackOff(bo), backoff.WithMaxTries(m.retries))
	if err != nil {
		return 0, fmt.Errorf("sampling cpu load: %w", err)
	}
	return load, nil
}

func (m *CPUMonitor) String() string {
	return fmt.Sprintf("cpu(interval=%s)", m.interval)
}

// Static always reports the same load. Useful for demos and tests.
type Static float64

func (s Static) Sample(context.Context) (float64, error) {
	return float64(s), nil
}

func (s Static) String() string {
	return fmt.Sprintf("static(%.1f)", float64(s))
}
