package threadpool

import "fmt"

type StrategyKind string

const (
	StrategyNone       StrategyKind = "none"
	StrategyPriority   StrategyKind = "priority"
	StrategyRoundRobin StrategyKind = "round-robin"
)

func ParseStrategyKind(s string) (StrategyKind, error) {
	switch StrategyKind(s) {
	case StrategyNone, "":
		return StrategyNone, nil
	case StrategyPriority:
		return StrategyPriority, nil
	case StrategyRoundRobin, "roundrobin":
		return StrategyRoundRobin, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Entry describes a queued job to a Strategy. The callable itself is never
// exposed, so a strategy can only choose a job, not copy it.
type Entry struct {
	ID       uint64
	Priority int
}

// Strategy picks the index of the next job to run from a snapshot of the
// queue. It must not keep references to the view.
type Strategy interface {
	Schedule(view []Entry) (int, bool)
}

// Remover is implemented by strategies that need to know which index the
// queue actually removed after a Schedule call.
type Remover interface {
	Removed(index int)
}

// NewStrategy returns the strategy for kind. StrategyNone has no strategy and
// returns nil.
func NewStrategy(kind StrategyKind) (Strategy, error) {
	switch kind {
	case StrategyNone:
		return nil, nil
	case StrategyPriority:
		return &Priority{}, nil
	case StrategyRoundRobin:
		return &RoundRobin{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, kind)
	}
}

// Priority selects the job with the highest priority. Among equal priorities
// the first one in iteration order wins, which is submission order.
type Priority struct{}

func (Priority) Schedule(view []Entry) (int, bool) {
	if len(view) == 0 {
		return 0, false
	}
	best := 0
	for i := 1; i < len(view); i++ {
		if view[i].Priority > view[best].Priority {
			best = i
		}
	}
	return best, true
}

// RoundRobin walks the queue with a cursor.
type RoundRobin struct {
	cursor int
}

func (r *RoundRobin) Schedule(view []Entry) (int, bool) {
	if len(view) == 0 {
		r.cursor = 0
		return 0, false
	}
	// the queue may have changed size since the last call
	if r.cursor >= len(view) {
		r.cursor %= len(view)
	}
	idx := r.cursor
	r.cursor = (r.cursor + 1) % len(view)
	return idx, true
}

// Removed shifts the cursor back when an element before it was taken out of
// the queue, so the cursor keeps pointing at the same job.
func (r *RoundRobin) Removed(index int) {
	if index < r.cursor {
		r.cursor--
	}
}
