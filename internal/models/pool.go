package models

import "github.com/kubev2v/threadpool-agent/pkg/threadpool"

type PoolStatus struct {
	ID           string
	Strategy     threadpool.StrategyKind
	Stats        threadpool.Stats
	Autoscale    bool
	LastDecision *threadpool.ResizeDecision
	// DroppedEvents counts events the recorder could not keep up with.
	DroppedEvents uint64
}

// Task is a synthetic unit of work submitted through the admin API or the
// demo command.
type Task struct {
	Name     string
	Duration int64 // milliseconds
	Priority int
	Panic    bool
}

type TaskResult struct {
	Name     string
	Canceled bool
	Panicked bool
}
