package v1

import (
	"github.com/kubev2v/threadpool-agent/internal/models"
	"github.com/kubev2v/threadpool-agent/internal/util"
	"github.com/kubev2v/threadpool-agent/pkg/threadpool"
)

func (p *PoolStatus) FromModel(m models.PoolStatus) {
	p.Id = m.ID
	p.Strategy = NewPoolStatusStrategy(m.Strategy)
	p.Workers = m.Stats.Workers
	p.Queued = m.Stats.Queued
	p.Submitted = m.Stats.Submitted
	p.Completed = m.Stats.Completed
	p.Panicked = m.Stats.Panicked
	p.Closed = m.Stats.Closed
	p.Autoscale = m.Autoscale
	p.DroppedEvents = m.DroppedEvents

	if m.LastDecision != nil {
		d := NewResizeDecision(*m.LastDecision)
		p.LastResize = &d
	}
}

func NewPoolStatusStrategy(kind threadpool.StrategyKind) PoolStatusStrategy {
	switch kind {
	case threadpool.StrategyPriority:
		return PoolStatusStrategyPriority
	case threadpool.StrategyRoundRobin:
		return PoolStatusStrategyRoundRobin
	default:
		return PoolStatusStrategyNone
	}
}

func NewResizeDecision(d threadpool.ResizeDecision) ResizeDecision {
	var action ResizeDecisionAction
	switch d.Action {
	case threadpool.ResizeAdded:
		action = ResizeDecisionActionAdded
	case threadpool.ResizeRemoved:
		action = ResizeDecisionActionRemoved
	default:
		action = ResizeDecisionActionNone
	}

	return ResizeDecision{
		Action:  action,
		Load:    util.Round(d.Load),
		Workers: d.Workers,
	}
}

// NewEventFromModel converts a models.Event to an API Event. Fields that do
// not apply to the event type are omitted.
func NewEventFromModel(e models.Event) Event {
	apiEvent := Event{
		Id:        e.ID,
		PoolId:    e.PoolID,
		Type:      string(e.Type),
		WorkerId:  e.WorkerID,
		CreatedAt: e.CreatedAt,
	}

	switch e.Type {
	case threadpool.EventJobCompleted, threadpool.EventJobPanicked:
		apiEvent.JobId = util.Ptr(e.JobID)
		apiEvent.DurationMs = util.Ptr(util.MillisFromMicros(e.Duration.Microseconds()))
	case threadpool.EventResized:
		apiEvent.Load = util.Ptr(util.Round(e.Load))
		apiEvent.Workers = util.Ptr(e.Workers)
		apiEvent.Action = util.Ptr(string(e.Action))
	}

	if e.Error != "" {
		apiEvent.Error = util.Ptr(e.Error)
	}

	return apiEvent
}

// NewTaskFromRequest converts a job submission to a models.Task. name is used
// when the request carries none.
func NewTaskFromRequest(req SubmitJobRequest, name string) models.Task {
	t := models.Task{
		Name:     name,
		Duration: req.DurationMs,
	}
	if req.Name != nil && *req.Name != "" {
		t.Name = *req.Name
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.Panic != nil {
		t.Panic = *req.Panic
	}
	return t
}
