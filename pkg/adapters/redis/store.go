// Package redis provides a ports.HistoryStore backed by a capped Redis list.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/hardikgohil73253/SEP-D3/pkg/domain"
)

// DefaultLimit is the cap on retained calculations when none is configured.
const DefaultLimit = 100

// Store implements ports.HistoryStore using Redis.
// Each calculation is one JSON entry in a list trimmed to the cap.
type Store struct {
	client *backend.Client
	prefix string
	limit  int
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets an expiration on the tape, refreshed on every write.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for the tape.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithLimit caps how many calculations the tape retains.
func WithLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.limit = n
		}
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "tancalc:",
		limit:  DefaultLimit,
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key() string {
	return s.prefix + "history"
}

// Record pushes the calculation onto the head of the tape and trims the
// tail past the cap.
func (s *Store) Record(ctx context.Context, calc domain.Calculation) error {
	data, err := json.Marshal(calc)
	if err != nil {
		return fmt.Errorf("failed to marshal calculation: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.LPush(ctx, s.key(), data)
	pipe.LTrim(ctx, s.key(), 0, int64(s.limit)-1)
	if s.ttl > 0 {
		pipe.Expire(ctx, s.key(), s.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record to redis: %w", err)
	}
	return nil
}

// Recent reads up to limit entries off the head, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]domain.Calculation, error) {
	if limit <= 0 || limit > s.limit {
		limit = s.limit
	}

	vals, err := s.client.LRange(ctx, s.key(), 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read history from redis: %w", err)
	}

	out := make([]domain.Calculation, 0, len(vals))
	for _, v := range vals {
		var calc domain.Calculation
		if err := json.Unmarshal([]byte(v), &calc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal calculation: %w", err)
		}
		out = append(out, calc)
	}
	return out, nil
}

// Clear deletes the tape.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key()).Err(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
