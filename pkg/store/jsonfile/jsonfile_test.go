package jsonfile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/prasetyo/duitbot/pkg/api"
)

func TestAppendAndRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	ctx := context.Background()

	store, err := New(Config{FilePath: path}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rec := api.Record{Date: "2024-05-10 08:00:00", Amount: 25000.0, Description: "makan", UserID: "12345", Username: "budi"}
	if err := store.Append(ctx, rec); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := store.Records(ctx)
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got[0].Date != rec.Date || got[0].Description != rec.Description {
		t.Errorf("unexpected record: %+v", got[0])
	}
}

func TestReloadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	ctx := context.Background()

	store, err := New(Config{FilePath: path}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := store.Append(ctx, api.Record{Date: "2024-05-10 08:00:00", Amount: 25000.0, UserID: "12345"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	// A second store over the same file sees the persisted rows. JSON
	// numbers come back as float64.
	reopened, err := New(Config{FilePath: path}, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}

	got, err := reopened.Records(ctx)
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got[0].Amount != 25000.0 {
		t.Errorf("amount: got %v (%T), want 25000", got[0].Amount, got[0].Amount)
	}
}
