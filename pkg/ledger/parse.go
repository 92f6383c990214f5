package ledger

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// FallbackDescription is used when a message carries an amount but no
// remaining text.
const FallbackDescription = "miscellaneous"

// multipliers maps magnitude suffixes to their scale. k/rb are Indonesian
// ribu (thousand), m/jt are juta (million), b is billion.
var multipliers = map[string]float64{
	"k":  1_000,
	"rb": 1_000,
	"m":  1_000_000,
	"jt": 1_000_000,
	"b":  1_000_000_000,
}

// amountPattern matches a number followed by a short magnitude suffix:
// "25k", "2 rb", "1.5jt". The trailing word boundary keeps longer words
// from being clipped into a suffix, so "makan 25000" and "25000 makan"
// fall through to the two-token fallback.
var amountPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([a-z]{1,2})\b`)

var spaces = regexp.MustCompile(`\s+`)

// ParseMessage extracts an amount and a description from a free-text
// expense message such as "makan 25rb" or "2jt sewa". ok is false when no
// numeric token can be found; the caller should treat that as a user
// input error, not a system fault.
func ParseMessage(raw string) (amount float64, description string, ok bool) {
	msg := strings.ToLower(strings.TrimSpace(raw))

	if loc := amountPattern.FindStringSubmatchIndex(msg); loc != nil {
		number := msg[loc[2]:loc[3]]
		suffix := msg[loc[4]:loc[5]]

		amount, err := strconv.ParseFloat(number, 64)
		if err == nil {
			if mult, known := multipliers[suffix]; known {
				amount *= mult
			}

			// Remove the matched number+suffix (first occurrence only)
			// to derive the description.
			description = msg[:loc[0]] + msg[loc[1]:]
			description = strings.TrimSpace(spaces.ReplaceAllString(description, " "))
			if description == "" {
				description = FallbackDescription
			}
			return amount, description, true
		}
	}

	// Fallback: a plain "<number> <description>" pair, in either order.
	parts := strings.SplitN(msg, " ", 2)
	if len(parts) == 2 {
		first, second := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if amount, ok := parseNumber(first); ok {
			return amount, second, true
		}
		if amount, ok := parseNumber(second); ok {
			return amount, first, true
		}
	}

	return 0, "", false
}

// parseNumber parses a bare non-negative finite number.
func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
