// Package file provides a ports.HistoryStore backed by a JSON Lines file.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hardikgohil73253/SEP-D3/pkg/domain"
)

// DefaultLimit is the cap on retained calculations when none is configured.
const DefaultLimit = 100

// Store implements ports.HistoryStore on the local filesystem.
// The tape is one file with one JSON record per line, oldest first.
// Safe for concurrent use within a single process.
type Store struct {
	mu    sync.Mutex
	path  string
	limit int
}

type Option func(*Store)

// WithLimit caps how many calculations the tape retains.
func WithLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.limit = n
		}
	}
}

// New creates a new Store writing to the given path.
// If path is empty, it defaults to ".tancalc/history.jsonl".
func New(path string, opts ...Option) *Store {
	if path == "" {
		path = filepath.Join(".tancalc", "history.jsonl")
	}
	s := &Store{path: path, limit: DefaultLimit}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record appends the calculation and rewrites the tape atomically,
// trimming the oldest records past the cap.
func (s *Store) Record(ctx context.Context, calc domain.Calculation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.read()
	if err != nil {
		return err
	}

	recs = append(recs, calc)
	if len(recs) > s.limit {
		recs = recs[len(recs)-s.limit:]
	}

	return s.write(recs)
}

// Recent returns up to limit calculations, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]domain.Calculation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.read()
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > len(recs) {
		limit = len(recs)
	}

	out := make([]domain.Calculation, 0, limit)
	for i := len(recs) - 1; i >= len(recs)-limit; i-- {
		out = append(out, recs[i])
	}
	return out, nil
}

// Clear removes the tape file.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear history file: %w", err)
	}
	return nil
}

func (s *Store) read() ([]domain.Calculation, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	var recs []domain.Calculation
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var calc domain.Calculation
		if err := json.Unmarshal([]byte(line), &calc); err != nil {
			return nil, fmt.Errorf("failed to parse history line: %w", err)
		}
		recs = append(recs, calc)
	}
	return recs, nil
}

// write persists the tape atomically: temp file in the same directory,
// fsync, then rename over the destination.
func (s *Store) write(recs []domain.Calculation) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure history directory: %w", err)
	}

	var buf bytes.Buffer
	for _, calc := range recs {
		data, err := json.Marshal(calc)
		if err != nil {
			return fmt.Errorf("failed to marshal calculation: %w", err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}

	tmpFile, err := os.CreateTemp(dir, "tmp-history-*.jsonl")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // Remove if still exists (not renamed)
	}()

	if _, err := tmpFile.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// os.Rename cannot replace an existing file on Windows, so clear
	// the destination first.
	if _, err := os.Stat(s.path); err == nil {
		if err := os.Remove(s.path); err != nil {
			return fmt.Errorf("failed to remove old history file: %w", err)
		}
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
