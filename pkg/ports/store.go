package ports

import (
	"context"

	"github.com/hardikgohil73253/SEP-D3/pkg/domain"
)

// HistoryStore defines the interface for persisting the calculation
// history tape. The tape is write-only from the engine's point of view:
// recording never influences a calculation's result.
type HistoryStore interface {
	// Record appends one calculation to the tape.
	Record(ctx context.Context, calc domain.Calculation) error

	// Recent returns up to limit calculations, newest first.
	// A limit <= 0 means the adapter's configured cap. An empty tape
	// yields an empty slice, not an error.
	Recent(ctx context.Context, limit int) ([]domain.Calculation, error)

	// Clear empties the tape.
	Clear(ctx context.Context) error
}
