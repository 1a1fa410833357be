package ports

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hardikgohil73253/SEP-D3/pkg/domain"
)

// RunHistoryStoreContract runs a suite of tests to verify that a
// HistoryStore implementation adheres to the defined interface contract.
// The store is cleared before the suite starts.
func RunHistoryStoreContract(t *testing.T, store HistoryStore) {
	ctx := context.Background()
	require.NoError(t, store.Clear(ctx), "Clear on entry should not return error")

	t.Run("Empty tape", func(t *testing.T) {
		recs, err := store.Recent(ctx, 10)
		require.NoError(t, err, "Recent on empty tape should not return error")
		assert.Empty(t, recs)
	})

	t.Run("Record and Recent", func(t *testing.T) {
		first := domain.Calculation{
			Input:   "45",
			Result:  1,
			Outcome: domain.OutcomeOK,
			At:      time.Now(),
		}
		second := domain.Calculation{
			Input:   "90",
			Outcome: domain.OutcomeUndefinedTangent,
			At:      time.Now(),
		}

		require.NoError(t, store.Record(ctx, first))
		require.NoError(t, store.Record(ctx, second))

		recs, err := store.Recent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, recs, 2)

		// Newest first.
		assert.Equal(t, "90", recs[0].Input)
		assert.Equal(t, domain.OutcomeUndefinedTangent, recs[0].Outcome)
		assert.Equal(t, "45", recs[1].Input)
		assert.Equal(t, float64(1), recs[1].Result)
		assert.Equal(t, domain.OutcomeOK, recs[1].Outcome)
		assert.WithinDuration(t, first.At, recs[1].At, time.Second)
	})

	t.Run("Recent respects limit", func(t *testing.T) {
		require.NoError(t, store.Clear(ctx))
		for i := 0; i < 5; i++ {
			calc := domain.Calculation{
				Input:   fmt.Sprintf("%d", i),
				Outcome: domain.OutcomeOK,
				At:      time.Now(),
			}
			require.NoError(t, store.Record(ctx, calc))
		}

		recs, err := store.Recent(ctx, 3)
		require.NoError(t, err)
		require.Len(t, recs, 3)
		assert.Equal(t, "4", recs[0].Input, "most recent record comes first")
	})

	t.Run("Clear", func(t *testing.T) {
		require.NoError(t, store.Record(ctx, domain.Calculation{Input: "0", Outcome: domain.OutcomeOK, At: time.Now()}))
		require.NoError(t, store.Clear(ctx))

		recs, err := store.Recent(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, recs, "Recent after Clear should yield nothing")
	})
}
