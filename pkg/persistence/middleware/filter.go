package middleware

import (
	"context"

	"github.com/hardikgohil73253/SEP-D3/pkg/domain"
	"github.com/hardikgohil73253/SEP-D3/pkg/ports"
)

type outcomeFilter struct {
	next ports.HistoryStore
	keep map[domain.Outcome]bool
}

// NewOutcomeFilter creates a middleware that persists only calculations
// whose outcome is in the given set. Everything else is silently dropped
// before it reaches the underlying store; reads pass through untouched.
func NewOutcomeFilter(outcomes ...domain.Outcome) Middleware {
	keep := make(map[domain.Outcome]bool, len(outcomes))
	for _, o := range outcomes {
		keep[o] = true
	}
	return func(next ports.HistoryStore) ports.HistoryStore {
		return &outcomeFilter{next: next, keep: keep}
	}
}

func (m *outcomeFilter) Record(ctx context.Context, calc domain.Calculation) error {
	if !m.keep[calc.Outcome] {
		return nil
	}
	return m.next.Record(ctx, calc)
}

func (m *outcomeFilter) Recent(ctx context.Context, limit int) ([]domain.Calculation, error) {
	return m.next.Recent(ctx, limit)
}

func (m *outcomeFilter) Clear(ctx context.Context) error {
	return m.next.Clear(ctx)
}
