package threadpool

import "go.uber.org/zap"

const (
	DefaultHighWatermark = 80.0
	DefaultLowWatermark  = 30.0
)

type options struct {
	id            string
	log           *zap.Logger
	monitor       LoadMonitor
	resize        bool
	high          float64
	low           float64
	maxWorkers    int
	queueCapacity int
	handler       EventHandler
}

func defaultOptions() options {
	return options{
		resize: true,
		high:   DefaultHighWatermark,
		low:    DefaultLowWatermark,
	}
}

type Option func(*options)

// WithID sets the pool identifier stamped on logs and events. A random UUID
// is used otherwise.
func WithID(id string) Option {
	return func(o *options) { o.id = id }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithLoadMonitor sets the sampler consulted by MonitorAndResize.
func WithLoadMonitor(m LoadMonitor) Option {
	return func(o *options) { o.monitor = m }
}

// WithResize enables or disables load driven resizing. A pool with resize
// disabled keeps a fixed size unless AddWorker/RemoveWorker are called.
func WithResize(enabled bool) Option {
	return func(o *options) { o.resize = enabled }
}

// WithThresholds sets the utilization percentages above which a worker is
// added and below which one is removed.
func WithThresholds(high, low float64) Option {
	return func(o *options) {
		o.high = high
		o.low = low
	}
}

// WithMaxWorkers caps the number of workers MonitorAndResize and AddWorker
// may reach. Zero means no cap.
func WithMaxWorkers(n int) Option {
	return func(o *options) { o.maxWorkers = n }
}

// WithQueueCapacity limits the number of queued jobs. Submit returns
// ErrQueueFull instead of waiting once the limit is reached. Zero, the
// default, leaves the queue unbounded.
func WithQueueCapacity(n int) Option {
	return func(o *options) { o.queueCapacity = n }
}

func WithEventHandler(h EventHandler) Option {
	return func(o *options) { o.handler = h }
}
