package csv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/prasetyo/duitbot/pkg/api"
)

func TestAppendAndRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")

	store, err := New(Config{FilePath: path}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	recs := []api.Record{
		{Date: "2024-05-10 08:00:00", Amount: 25000.0, Description: "makan", UserID: "12345", Username: "budi"},
		{Date: "2024-05-10 09:00:00", Amount: 10.5, Description: "desc, with comma", UserID: "12345", Username: "budi"},
	}
	for _, rec := range recs {
		if err := store.Append(ctx, rec); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := store.Records(ctx)
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}

	if got[0].Amount != "25000" {
		t.Errorf("amount read back: got %v, want %q", got[0].Amount, "25000")
	}
	if got[0].Date != "2024-05-10 08:00:00" || got[0].Description != "makan" ||
		got[0].UserID != "12345" || got[0].Username != "budi" {
		t.Errorf("unexpected record: %+v", got[0])
	}
	if got[1].Description != "desc, with comma" {
		t.Errorf("description with comma: got %q", got[1].Description)
	}
}

func TestHeaderWrittenOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	ctx := context.Background()

	store, err := New(Config{FilePath: path}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := store.Append(ctx, api.Record{Date: "2024-05-10 08:00:00", Amount: 5000.0, UserID: "1"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopening an existing file must not duplicate the header.
	reopened, err := New(Config{FilePath: path}, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	if err := reopened.Append(ctx, api.Record{Date: "2024-05-10 09:00:00", Amount: 7000.0, UserID: "1"}); err != nil {
		t.Fatalf("Append after reopen: %v", err)
	}

	got, err := reopened.Records(ctx)
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
}

func TestRecordsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")

	store, err := New(Config{FilePath: path}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer store.Close()

	got, err := store.Records(context.Background())
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d records, want 0", len(got))
	}
}
