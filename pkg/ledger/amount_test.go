package ledger

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{name: "float passthrough", input: 12345.0, want: 12345},
		{name: "int passthrough", input: 12345, want: 12345},
		{name: "int64 passthrough", input: int64(500), want: 500},
		{name: "formatted million", input: "Rp1.000.000", want: 1000000},
		{name: "formatted thousand", input: "Rp25.000", want: 25000},
		{name: "comma separators", input: "1,500", want: 1500},
		{name: "surrounding whitespace", input: "  Rp 5.000  ", want: 5000},
		{name: "plain digits", input: "25000", want: 25000},
		{name: "empty string", input: "", want: 0},
		{name: "no digits", input: "abc", want: 0},
		{name: "nil", input: nil, want: 0},
		{name: "stray characters", input: "Rp25.000,-", want: 25000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseAmount(tc.input); got != tc.want {
				t.Errorf("ParseAmount(%v): got %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseAmountIdempotent(t *testing.T) {
	inputs := []any{"Rp1.000.000", "25000", 12345.0, "", "abc"}

	for _, in := range inputs {
		once := ParseAmount(in)
		twice := ParseAmount(once)
		if once != twice {
			t.Errorf("ParseAmount not idempotent for %v: first %v, second %v", in, once, twice)
		}
	}
}
