// Package api defines the core types and interfaces for duitbot.
package api

import "context"

// DateFormat is the timestamp layout used for the Date column.
const DateFormat = "2006-01-02 15:04:05"

// Header is the fixed column layout of the ledger.
var Header = []string{"Date", "Amount", "Description", "UserID", "Username"}

// Record is a single ledger row. Amount is written as a float64 but may
// come back as a display-formatted string (e.g. "Rp25.000") depending on
// how the store renders values on read.
type Record struct {
	Date        string `json:"date"`
	Amount      any    `json:"amount"`
	Description string `json:"description"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
}

// Store is an append-only ledger. Rows are never updated or deleted.
type Store interface {
	// Append writes one record to the ledger.
	Append(ctx context.Context, rec Record) error
	// Records returns every record in the ledger.
	Records(ctx context.Context) ([]Record, error)
}
