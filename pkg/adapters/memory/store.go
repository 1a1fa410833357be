// Package memory provides an in-memory ports.HistoryStore.
package memory

import (
	"context"
	"sync"

	"github.com/hardikgohil73253/SEP-D3/pkg/domain"
)

// DefaultLimit is the cap on retained calculations when none is configured.
const DefaultLimit = 100

// Store implements ports.HistoryStore in memory as a bounded tape.
// Safe for concurrent use. Records are held by value, so callers cannot
// mutate stored history through retained references.
type Store struct {
	mu    sync.RWMutex
	recs  []domain.Calculation
	limit int
}

// Option configures a Store.
type Option func(*Store)

// WithLimit caps how many calculations the tape retains. Older records
// fall off the end once the cap is reached.
func WithLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.limit = n
		}
	}
}

// NewStore creates a new in-memory history store.
func NewStore(opts ...Option) *Store {
	s := &Store{limit: DefaultLimit}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record appends one calculation, evicting the oldest past the cap.
func (s *Store) Record(ctx context.Context, calc domain.Calculation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recs = append(s.recs, calc)
	if len(s.recs) > s.limit {
		s.recs = s.recs[len(s.recs)-s.limit:]
	}
	return nil
}

// Recent returns up to limit calculations, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]domain.Calculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.recs) {
		limit = len(s.recs)
	}

	out := make([]domain.Calculation, 0, limit)
	for i := len(s.recs) - 1; i >= len(s.recs)-limit; i-- {
		out = append(out, s.recs[i])
	}
	return out, nil
}

// Clear empties the tape.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs = nil
	return nil
}
