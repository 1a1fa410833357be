package observability_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hardikgohil73253/SEP-D3/pkg/domain"
	"github.com/hardikgohil73253/SEP-D3/pkg/observability"
)

func TestCollectorTallies(t *testing.T) {
	c := observability.NewCollector()
	hook := c.Hooks().OnCalculate
	ctx := context.Background()

	hook(ctx, &domain.CalculationEvent{Outcome: domain.OutcomeOK, Duration: 10 * time.Millisecond})
	hook(ctx, &domain.CalculationEvent{Outcome: domain.OutcomeOK, Duration: 30 * time.Millisecond})
	hook(ctx, &domain.CalculationEvent{Outcome: domain.OutcomeUndefinedTangent, Duration: 20 * time.Millisecond})

	snap := c.Snapshot()
	assert.Equal(t, int64(3), snap.Total)
	assert.Equal(t, int64(2), snap.ByOutcome["ok"])
	assert.Equal(t, int64(1), snap.ByOutcome["undefined_tangent"])
	assert.InDelta(t, 10, snap.MinDurationMS, 1e-9)
	assert.InDelta(t, 30, snap.MaxDurationMS, 1e-9)
	assert.InDelta(t, 20, snap.MeanDurationMS, 1e-9)
}

func TestCollectorEmptySnapshot(t *testing.T) {
	snap := observability.NewCollector().Snapshot()
	assert.Equal(t, int64(0), snap.Total)
	assert.Empty(t, snap.ByOutcome)
	assert.Zero(t, snap.MeanDurationMS)
}

func TestCollectorConcurrent(t *testing.T) {
	c := observability.NewCollector()
	hook := c.Hooks().OnCalculate
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hook(ctx, &domain.CalculationEvent{Outcome: domain.OutcomeOK, Duration: time.Millisecond})
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(100), c.Snapshot().Total)
}
