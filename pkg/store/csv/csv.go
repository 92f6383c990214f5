// Package csv implements a Store backed by an append-only CSV file.
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"sync"

	"github.com/prasetyo/duitbot/pkg/api"
)

// Store appends ledger rows to a CSV file and re-reads the whole file on
// every Records call. Amounts come back as strings; the amount parser
// handles that.
type Store struct {
	filePath string
	file     *os.File
	writer   *csv.Writer
	mu       sync.Mutex
	logger   *slog.Logger
}

// Config holds configuration for the CSV store.
type Config struct {
	// FilePath is the path to the CSV ledger file.
	FilePath string
}

// New creates a CSV store, writing the header row when the file is new.
func New(cfg Config, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	file, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening csv file: %w", err)
	}

	s := &Store{
		filePath: cfg.FilePath,
		file:     file,
		writer:   csv.NewWriter(file),
		logger:   logger,
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("stat csv file: %w", err)
	}

	if stat.Size() == 0 {
		if err := s.writeHeader(); err != nil {
			file.Close()
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	logger.Info("csv store initialized", "file", cfg.FilePath)
	return s, nil
}

func (s *Store) writeHeader() error {
	if err := s.writer.Write(api.Header); err != nil {
		return err
	}
	s.writer.Flush()
	return s.writer.Error()
}

// Append writes one ledger row and flushes it to disk.
func (s *Store) Append(_ context.Context, rec api.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := []string{
		rec.Date,
		formatAmount(rec.Amount),
		rec.Description,
		rec.UserID,
		rec.Username,
	}
	if err := s.writer.Write(row); err != nil {
		return fmt.Errorf("writing csv row: %w", err)
	}

	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}

// Records re-reads the entire file, mapping columns by the header row.
func (s *Store) Records(_ context.Context) ([]api.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.Open(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("opening csv file: %w", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[name] = i
	}

	cell := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	records := make([]api.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, api.Record{
			Date:        cell(row, "Date"),
			Amount:      cell(row, "Amount"),
			Description: cell(row, "Description"),
			UserID:      cell(row, "UserID"),
			Username:    cell(row, "Username"),
		})
	}

	return records, nil
}

// Close closes the underlying file.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writer.Flush()
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("closing csv file: %w", err)
	}

	s.logger.Info("csv store closed", "file", s.filePath)
	return nil
}

// formatAmount renders amounts without a forced decimal part, so whole
// Rupiah values survive the string round trip intact.
func formatAmount(v any) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
