// Package sheets implements a Store backed by a Google Sheet.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/prasetyo/duitbot/pkg/api"
)

// Store reads and appends ledger rows in a single sheet. Appends are
// written immediately, not batched: the reply to a message must observe
// the row that message just produced.
type Store struct {
	client      *sheets.Service
	spreadsheet *sheets.Spreadsheet
	sheetName   string
	logger      *slog.Logger
}

// Config holds configuration for the Sheets store.
type Config struct {
	// SpreadsheetTitle is the title for a new spreadsheet (used when
	// SpreadsheetID is empty or stale).
	SpreadsheetTitle string
	// SpreadsheetID is the ID of an existing spreadsheet to use.
	SpreadsheetID string
	// SheetName is the name of the sheet within the spreadsheet.
	SheetName string
}

// New creates a Sheets store, creating the spreadsheet and the header row
// when they do not exist yet.
func New(httpClient *http.Client, cfg Config, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	client, err := sheets.NewService(context.Background(), option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}

	s := &Store{
		client:    client,
		sheetName: cfg.SheetName,
		logger:    logger,
	}

	spreadsheet, err := s.initSpreadsheet(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing spreadsheet: %w", err)
	}
	s.spreadsheet = spreadsheet

	if err := s.ensureHeader(context.Background()); err != nil {
		return nil, fmt.Errorf("ensuring header row: %w", err)
	}

	logger.Info("sheets store initialized",
		"spreadsheet_id", spreadsheet.SpreadsheetId,
		"sheet", cfg.SheetName,
	)

	return s, nil
}

func (s *Store) initSpreadsheet(ctx context.Context, cfg Config) (*sheets.Spreadsheet, error) {
	// Try to get existing spreadsheet
	if cfg.SpreadsheetID != "" {
		spreadsheet, err := s.client.Spreadsheets.Get(cfg.SpreadsheetID).Context(ctx).Do()
		if err == nil {
			s.logger.Info("using existing spreadsheet", "title", spreadsheet.Properties.Title, "id", cfg.SpreadsheetID)
			return spreadsheet, nil
		}
		s.logger.Warn("failed to get spreadsheet, will create new one", "id", cfg.SpreadsheetID, "error", err)
	}

	spreadsheet, err := s.client.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title: cfg.SpreadsheetTitle,
		},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("creating spreadsheet: %w", err)
	}

	s.logger.Info("created new spreadsheet", "title", cfg.SpreadsheetTitle, "id", spreadsheet.SpreadsheetId)
	return spreadsheet, nil
}

// ensureHeader writes the 5-column header row when the sheet is empty.
func (s *Store) ensureHeader(ctx context.Context) error {
	headerRange := fmt.Sprintf("%s!A1:E1", s.sheetName)

	resp, err := s.client.Spreadsheets.Values.Get(s.spreadsheet.SpreadsheetId, headerRange).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("reading header row: %w", err)
	}
	if len(resp.Values) > 0 {
		return nil
	}

	header := make([]any, len(api.Header))
	for i, name := range api.Header {
		header[i] = name
	}

	headerReq := sheets.ValueRange{Values: [][]any{header}}
	_, err = s.client.Spreadsheets.Values.Update(s.spreadsheet.SpreadsheetId, headerRange, &headerReq).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	s.logger.Info("wrote header row to spreadsheet")
	return nil
}

// Append writes one ledger row. Rate-limit responses are retried.
func (s *Store) Append(ctx context.Context, rec api.Record) error {
	writeRange := fmt.Sprintf("%s!A:E", s.sheetName)
	writeReq := sheets.ValueRange{
		Values: [][]any{
			{rec.Date, rec.Amount, rec.Description, rec.UserID, rec.Username},
		},
	}

	err := retry.Do(
		func() error {
			_, err := s.client.Spreadsheets.Values.Append(s.spreadsheet.SpreadsheetId, writeRange, &writeReq).
				ValueInputOption("USER_ENTERED").
				InsertDataOption("INSERT_ROWS").
				Context(ctx).
				Do()
			return err
		},
		retry.RetryIf(func(err error) bool {
			var apiErr *googleapi.Error
			if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
				s.logger.Warn("rate limited, will retry", "error", err)
				return true
			}
			return false
		}),
		retry.Attempts(3),
		retry.Delay(60*time.Second),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return fmt.Errorf("appending row to sheet: %w", err)
	}

	return nil
}

// Records returns every ledger row, mapped by the header row's column
// names so reordered columns in the sheet stay harmless. Amount cells are
// returned as-is; they may be display-formatted strings.
func (s *Store) Records(ctx context.Context) ([]api.Record, error) {
	readRange := fmt.Sprintf("%s!A:E", s.sheetName)

	resp, err := s.client.Spreadsheets.Values.Get(s.spreadsheet.SpreadsheetId, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading sheet values: %w", err)
	}
	if len(resp.Values) < 2 {
		return nil, nil
	}

	index := make(map[string]int, len(resp.Values[0]))
	for i, cell := range resp.Values[0] {
		index[asString(cell)] = i
	}

	cell := func(row []any, name string) any {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return nil
		}
		return row[i]
	}

	records := make([]api.Record, 0, len(resp.Values)-1)
	for _, row := range resp.Values[1:] {
		records = append(records, api.Record{
			Date:        asString(cell(row, "Date")),
			Amount:      cell(row, "Amount"),
			Description: asString(cell(row, "Description")),
			UserID:      asString(cell(row, "UserID")),
			Username:    asString(cell(row, "Username")),
		})
	}

	return records, nil
}

// SpreadsheetID returns the ID of the spreadsheet in use.
func (s *Store) SpreadsheetID() string {
	if s.spreadsheet == nil {
		return ""
	}
	return s.spreadsheet.SpreadsheetId
}

func asString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
