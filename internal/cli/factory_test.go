package cli

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hardikgohil73253/SEP-D3/internal/config"
	"github.com/hardikgohil73253/SEP-D3/pkg/domain"
)

func calc(input string, outcome domain.Outcome) domain.Calculation {
	return domain.Calculation{Input: input, Outcome: outcome, At: time.Now()}
}

func TestBuildHistoryStoreDisabled(t *testing.T) {
	store, closer, err := BuildHistoryStore(config.HistoryConfig{})
	require.NoError(t, err)
	assert.Nil(t, store)
	assert.NoError(t, closer())

	store, _, err = BuildHistoryStore(config.HistoryConfig{Backend: "none"})
	require.NoError(t, err)
	assert.Nil(t, store)
}

func TestBuildHistoryStoreMemory(t *testing.T) {
	store, closer, err := BuildHistoryStore(config.HistoryConfig{Backend: "memory", Limit: 5})
	require.NoError(t, err)
	defer closer()

	ctx := context.Background()
	require.NoError(t, store.Record(ctx, calc("45", domain.OutcomeOK)))

	recent, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "45", recent[0].Input)
}

func TestBuildHistoryStoreFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")
	store, closer, err := BuildHistoryStore(config.HistoryConfig{Backend: "file", Path: path})
	require.NoError(t, err)
	defer closer()

	ctx := context.Background()
	require.NoError(t, store.Record(ctx, calc("90", domain.OutcomeUndefinedTangent)))

	recent, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, domain.OutcomeUndefinedTangent, recent[0].Outcome)
}

func TestBuildHistoryStoreUnknownBackend(t *testing.T) {
	_, _, err := BuildHistoryStore(config.HistoryConfig{Backend: "postgres"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")
}

func TestBuildHistoryStoreBadRedisTTL(t *testing.T) {
	_, _, err := BuildHistoryStore(config.HistoryConfig{
		Backend: "redis",
		Redis:   config.RedisConfig{Addr: "localhost:6379", TTL: "soon"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ttl")
}

func TestBuildHistoryStoreRecordFilter(t *testing.T) {
	store, closer, err := BuildHistoryStore(config.HistoryConfig{Backend: "memory", Record: "ok"})
	require.NoError(t, err)
	defer closer()

	ctx := context.Background()
	require.NoError(t, store.Record(ctx, calc("abc", domain.OutcomeInvalidInput)))
	require.NoError(t, store.Record(ctx, calc("45", domain.OutcomeOK)))

	recent, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "45", recent[0].Input)
}

func TestBuildHistoryStoreUnknownRecordMode(t *testing.T) {
	_, _, err := BuildHistoryStore(config.HistoryConfig{Backend: "memory", Record: "failures"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history.record")
}

func TestBuildHistoryStoreEncryption(t *testing.T) {
	key := "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	store, closer, err := BuildHistoryStore(config.HistoryConfig{
		Backend:       "memory",
		EncryptionKey: key,
	})
	require.NoError(t, err)
	defer closer()

	ctx := context.Background()
	require.NoError(t, store.Record(ctx, calc("45", domain.OutcomeOK)))

	recent, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "45", recent[0].Input, "input should decrypt transparently on read")
}

func TestBuildHistoryStoreBadEncryptionKey(t *testing.T) {
	_, _, err := BuildHistoryStore(config.HistoryConfig{Backend: "memory", EncryptionKey: "zz"})
	require.Error(t, err)

	_, _, err = BuildHistoryStore(config.HistoryConfig{Backend: "memory", EncryptionKey: "abcd"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 bytes")
}
