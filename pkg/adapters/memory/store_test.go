package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hardikgohil73253/SEP-D3/pkg/adapters/memory"
	"github.com/hardikgohil73253/SEP-D3/pkg/domain"
	"github.com/hardikgohil73253/SEP-D3/pkg/ports"
)

func TestStoreContract(t *testing.T) {
	ports.RunHistoryStoreContract(t, memory.NewStore())
}

func TestStoreEviction(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(memory.WithLimit(3))

	for i := 0; i < 5; i++ {
		calc := domain.Calculation{
			Input:   fmt.Sprintf("%d", i),
			Outcome: domain.OutcomeOK,
			At:      time.Now(),
		}
		require.NoError(t, store.Record(ctx, calc))
	}

	recs, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recs, 3, "tape should hold only the cap")
	assert.Equal(t, "4", recs[0].Input)
	assert.Equal(t, "2", recs[2].Input, "oldest surviving record")
}

func TestStoreConcurrentRecord(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(memory.WithLimit(1000))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			calc := domain.Calculation{
				Input:   fmt.Sprintf("%d", n),
				Outcome: domain.OutcomeOK,
				At:      time.Now(),
			}
			_ = store.Record(ctx, calc)
		}(i)
	}
	wg.Wait()

	recs, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, recs, 50)
}
