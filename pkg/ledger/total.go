package ledger

import (
	"math"
	"strings"
	"time"

	"github.com/prasetyo/duitbot/pkg/api"
)

// DayFormat is the calendar-day portion of a record's Date column.
const DayFormat = "2006-01-02"

// DailyTotal sums the amounts of records dated on now's calendar day whose
// UserID contains userID as a substring. The date comparison is lexical
// against the day portion of the Date column. Amounts go through
// ParseAmount, so rows read back as display-formatted strings still count;
// malformed amounts count as zero. The result is rounded to two decimal
// places.
func DailyTotal(records []api.Record, userID string, now time.Time) float64 {
	day := now.Format(DayFormat)

	var total float64
	for _, rec := range records {
		recDay, _, _ := strings.Cut(rec.Date, " ")
		if recDay != day || !strings.Contains(rec.UserID, userID) {
			continue
		}
		total += ParseAmount(rec.Amount)
	}

	return math.Round(total*100) / 100
}
