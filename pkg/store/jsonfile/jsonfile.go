// Package jsonfile implements a Store backed by a single JSON document.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/prasetyo/duitbot/pkg/api"
)

// Store keeps the ledger as a JSON array, rewritten on every append
// (JSON files do not support appending in place).
type Store struct {
	filePath string
	records  []api.Record
	mu       sync.Mutex
	logger   *slog.Logger
}

// Config holds configuration for the JSON store.
type Config struct {
	// FilePath is the path to the JSON ledger file.
	FilePath string
}

// New creates a JSON store, loading any existing ledger from disk.
func New(cfg Config, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		filePath: cfg.FilePath,
		logger:   logger,
	}

	if err := s.loadExisting(); err != nil {
		return nil, fmt.Errorf("loading existing ledger: %w", err)
	}

	logger.Info("json store initialized", "file", cfg.FilePath, "existing_count", len(s.records))
	return s, nil
}

func (s *Store) loadExisting() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if len(data) == 0 {
		return nil
	}

	return json.Unmarshal(data, &s.records)
}

// Append adds one ledger row and rewrites the file.
func (s *Store) Append(_ context.Context, rec api.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, rec)

	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		s.records = s.records[:len(s.records)-1]
		return fmt.Errorf("marshaling ledger: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0o600); err != nil {
		s.records = s.records[:len(s.records)-1]
		return fmt.Errorf("writing ledger file: %w", err)
	}

	return nil
}

// Records returns a copy of every ledger row.
func (s *Store) Records(_ context.Context) ([]api.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]api.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}
