package observability

import (
	"context"
	"sync"
	"time"

	"github.com/hardikgohil73253/SEP-D3/pkg/domain"
)

// Snapshot is a point-in-time copy of a Collector's counters.
type Snapshot struct {
	Total          int64            `json:"total"`
	ByOutcome      map[string]int64 `json:"by_outcome"`
	MinDurationMS  float64          `json:"min_duration_ms"`
	MaxDurationMS  float64          `json:"max_duration_ms"`
	MeanDurationMS float64          `json:"mean_duration_ms"`
}

// Collector tallies calculation events delivered through lifecycle hooks.
// Safe for concurrent use.
type Collector struct {
	mu        sync.Mutex
	total     int64
	byOutcome map[domain.Outcome]int64
	min       time.Duration
	max       time.Duration
	sum       time.Duration
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		byOutcome: make(map[domain.Outcome]int64),
	}
}

// Hooks returns lifecycle hooks that feed this collector.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCalculate: func(_ context.Context, ev *domain.CalculationEvent) {
			c.observe(ev)
		},
	}
}

func (c *Collector) observe(ev *domain.CalculationEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.total++
	c.byOutcome[ev.Outcome]++

	if c.total == 1 || ev.Duration < c.min {
		c.min = ev.Duration
	}
	if ev.Duration > c.max {
		c.max = ev.Duration
	}
	c.sum += ev.Duration
}

// Snapshot returns a copy of the counters collected so far.
func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Total:     c.total,
		ByOutcome: make(map[string]int64, len(c.byOutcome)),
	}
	for outcome, n := range c.byOutcome {
		snap.ByOutcome[string(outcome)] = n
	}
	if c.total > 0 {
		snap.MinDurationMS = durationMS(c.min)
		snap.MaxDurationMS = durationMS(c.max)
		snap.MeanDurationMS = durationMS(c.sum) / float64(c.total)
	}
	return snap
}

func durationMS(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
