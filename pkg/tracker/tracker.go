// Package tracker records transactions and computes per-user daily totals.
package tracker

import (
	"context"
	"log/slog"
	"time"

	"github.com/prasetyo/duitbot/pkg/api"
	"github.com/prasetyo/duitbot/pkg/ledger"
)

// Tracker is the write/aggregate facade over a ledger store.
type Tracker struct {
	store  api.Store
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Tracker backed by store.
func New(store api.Store, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}

	return &Tracker{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Add appends one transaction stamped with the current time. A store
// failure is logged and reported as false so the caller can reply to the
// user gracefully instead of crashing the conversation.
func (t *Tracker) Add(ctx context.Context, amount float64, description, userID, username string) bool {
	rec := api.Record{
		Date:        t.now().Format(api.DateFormat),
		Amount:      amount,
		Description: description,
		UserID:      userID,
		Username:    username,
	}

	if err := t.store.Append(ctx, rec); err != nil {
		t.logger.Error("appending transaction", "error", err, "description", description, "user_id", userID)
		return false
	}

	t.logger.Info("added transaction", "amount", amount, "description", description, "user_id", userID)
	return true
}

// DailyTotal computes today's total for userID. The entire store is
// re-read on every call; a failed read degrades to a total of 0.
func (t *Tracker) DailyTotal(ctx context.Context, userID string) float64 {
	records, err := t.store.Records(ctx)
	if err != nil {
		t.logger.Error("reading records", "error", err)
		return 0
	}

	return ledger.DailyTotal(records, userID, t.now())
}
