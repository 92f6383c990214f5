// Package ledger implements the expense message parser and the daily
// total aggregation over persisted records.
package ledger

import (
	"regexp"
	"strconv"
	"strings"
)

var nonDigits = regexp.MustCompile(`[^\d]`)

// ParseAmount converts a stored amount into a float64. Numeric values pass
// through unchanged. Strings are treated as Indonesian Rupiah formatting:
// the "Rp" prefix is dropped, and every '.' and ',' is a thousands
// separator, never a decimal point ("1.000.000" is one million).
// Unparseable input yields 0; there is no error path.
func ParseAmount(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		cleaned := strings.TrimSpace(strings.ReplaceAll(n, "Rp", ""))
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", "")
		cleaned = nonDigits.ReplaceAllString(cleaned, "")
		if cleaned == "" {
			return 0
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
