package middleware_test

import (
	"context"

	"github.com/hardikgohil73253/SEP-D3/pkg/domain"
	"github.com/hardikgohil73253/SEP-D3/pkg/ports"
)

// MockStore is a simple slice-based store for testing middleware.
type MockStore struct {
	recs []domain.Calculation
}

func NewMockStore() *MockStore {
	return &MockStore{}
}

func (s *MockStore) Record(ctx context.Context, calc domain.Calculation) error {
	s.recs = append(s.recs, calc)
	return nil
}

func (s *MockStore) Recent(ctx context.Context, limit int) ([]domain.Calculation, error) {
	if limit <= 0 || limit > len(s.recs) {
		limit = len(s.recs)
	}
	out := make([]domain.Calculation, 0, limit)
	for i := len(s.recs) - 1; i >= len(s.recs)-limit; i-- {
		out = append(out, s.recs[i])
	}
	return out, nil
}

func (s *MockStore) Clear(ctx context.Context) error {
	s.recs = nil
	return nil
}

var _ ports.HistoryStore = (*MockStore)(nil)
