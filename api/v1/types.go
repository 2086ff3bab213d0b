package v1

import "time"

type PoolStatusStrategy string

const (
	PoolStatusStrategyNone       PoolStatusStrategy = "none"
	PoolStatusStrategyPriority   PoolStatusStrategy = "priority"
	PoolStatusStrategyRoundRobin PoolStatusStrategy = "round-robin"
)

type ResizeDecisionAction string

const (
	ResizeDecisionActionNone    ResizeDecisionAction = "none"
	ResizeDecisionActionAdded   ResizeDecisionAction = "added"
	ResizeDecisionActionRemoved ResizeDecisionAction = "removed"
)

// PoolStatus defines model for PoolStatus.
type PoolStatus struct {
	Id            string             `json:"id"`
	Strategy      PoolStatusStrategy `json:"strategy"`
	Workers       int                `json:"workers"`
	Queued        int                `json:"queued"`
	Submitted     uint64             `json:"submitted"`
	Completed     uint64             `json:"completed"`
	Panicked      uint64             `json:"panicked"`
	Closed        bool               `json:"closed"`
	Autoscale     bool               `json:"autoscale"`
	DroppedEvents uint64             `json:"droppedEvents"`
	LastResize    *ResizeDecision    `json:"lastResize,omitempty"`
}

// ResizeDecision defines model for ResizeDecision.
type ResizeDecision struct {
	Action  ResizeDecisionAction `json:"action"`
	Load    float64              `json:"load"`
	Workers int                  `json:"workers"`
}

// SubmitJobRequest defines model for SubmitJobRequest.
type SubmitJobRequest struct {
	Name       *string `json:"name,omitempty"`
	DurationMs int64   `json:"durationMs"`
	Priority   *int    `json:"priority,omitempty"`
	Panic      *bool   `json:"panic,omitempty"`
}

// SubmitJobResponse defines model for SubmitJobResponse.
type SubmitJobResponse struct {
	Name string `json:"name"`
}

// Event defines model for Event.
type Event struct {
	Id         int64     `json:"id"`
	PoolId     string    `json:"poolId"`
	Type       string    `json:"type"`
	WorkerId   *int      `json:"workerId,omitempty"`
	JobId      *uint64   `json:"jobId,omitempty"`
	DurationMs *float64  `json:"durationMs,omitempty"`
	Load       *float64  `json:"load,omitempty"`
	Workers    *int      `json:"workers,omitempty"`
	Action     *string   `json:"action,omitempty"`
	Error      *string   `json:"error,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// EventListResponse defines model for EventListResponse.
type EventListResponse struct {
	Events []Event `json:"events"`
	Total  int     `json:"total"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

// Error defines model for Error.
type Error struct {
	Error string `json:"error"`
}

// GetEventsParams defines parameters for GetEvents.
type GetEventsParams struct {
	// Type filters events by type. Multiple values use OR logic.
	Type *[]string `form:"type,omitempty" json:"type,omitempty"`

	// Worker filters events by worker id.
	Worker *int `form:"worker,omitempty" json:"worker,omitempty"`

	Limit  *int `form:"limit,omitempty" json:"limit,omitempty"`
	Offset *int `form:"offset,omitempty" json:"offset,omitempty"`
}
