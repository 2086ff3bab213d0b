// Package loadmonitor provides load samplers for threadpool.Pool.
//
// CPUMonitor measures host CPU utilization with gopsutil over a short
// window. Transient sampling failures are retried with exponential backoff
// before the error is handed to the caller, which treats it as "no resize".
//
//	monitor := loadmonitor.NewCPUMonitor(loadmonitor.WithInterval(time.Second))
//	pool, err := threadpool.New(4, threadpool.StrategyPriority, threadpool.WithLoadMonitor(monitor))
//
// Static reports a fixed value and is used by the demo command and tests.
package loadmonitor
