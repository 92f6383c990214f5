package ledger

import (
	"fmt"
	"testing"
)

func TestParseMessage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantAmt  float64
		wantDesc string
	}{
		{name: "suffix after description", input: "makan 25rb", wantAmt: 25000, wantDesc: "makan"},
		{name: "suffix before description", input: "2jt sewa", wantAmt: 2000000, wantDesc: "sewa"},
		{name: "decimal with suffix", input: "belanja 1.5jt", wantAmt: 1500000, wantDesc: "belanja"},
		{name: "suffix only", input: "2jt", wantAmt: 2000000, wantDesc: FallbackDescription},
		{name: "suffix separated by space", input: "2 rb sewa", wantAmt: 2000, wantDesc: "sewa"},
		{name: "plain number after description", input: "makan 25000", wantAmt: 25000, wantDesc: "makan"},
		{name: "plain number before description", input: "25000 makan", wantAmt: 25000, wantDesc: "makan"},
		{name: "decimal without suffix", input: "bensin 10.5", wantAmt: 10.5, wantDesc: "bensin"},
		{name: "uppercase input", input: "MAKAN 25RB", wantAmt: 25000, wantDesc: "makan"},
		{name: "unrecognized suffix consumed", input: "10xy makan", wantAmt: 10, wantDesc: "makan"},
		{name: "multi word description", input: "makan siang 25rb", wantAmt: 25000, wantDesc: "makan siang"},
		{name: "surrounding whitespace", input: "  makan 25rb  ", wantAmt: 25000, wantDesc: "makan"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			amount, description, ok := ParseMessage(tc.input)
			if !ok {
				t.Fatalf("ParseMessage(%q): no parse, want %v %q", tc.input, tc.wantAmt, tc.wantDesc)
			}
			if amount != tc.wantAmt {
				t.Errorf("amount: got %v, want %v", amount, tc.wantAmt)
			}
			if description != tc.wantDesc {
				t.Errorf("description: got %q, want %q", description, tc.wantDesc)
			}
		})
	}
}

func TestParseMessageNoParse(t *testing.T) {
	inputs := []string{"hello", "", "   ", "makan enak banget", "minus -5"}

	for _, in := range inputs {
		if amount, description, ok := ParseMessage(in); ok {
			t.Errorf("ParseMessage(%q): got (%v, %q), want no parse", in, amount, description)
		}
	}
}

func TestParseMessageSuffixTable(t *testing.T) {
	suffixes := map[string]float64{
		"k":  1_000,
		"rb": 1_000,
		"m":  1_000_000,
		"jt": 1_000_000,
		"b":  1_000_000_000,
	}

	for suffix, mult := range suffixes {
		t.Run(suffix, func(t *testing.T) {
			input := fmt.Sprintf("10%s test", suffix)
			amount, description, ok := ParseMessage(input)
			if !ok {
				t.Fatalf("ParseMessage(%q): no parse", input)
			}
			if want := 10 * mult; amount != want {
				t.Errorf("amount: got %v, want %v", amount, want)
			}
			if description != "test" {
				t.Errorf("description: got %q, want %q", description, "test")
			}
		})
	}
}

// Bare numbers are parsed regardless of word order.
func TestParseMessageOrderInsensitive(t *testing.T) {
	pairs := []struct {
		amount float64
		desc   string
	}{
		{25000, "makan"},
		{150000, "sewa"},
		{10.5, "bensin"},
	}

	for _, p := range pairs {
		for _, input := range []string{
			fmt.Sprintf("%s %v", p.desc, p.amount),
			fmt.Sprintf("%v %s", p.amount, p.desc),
		} {
			amount, description, ok := ParseMessage(input)
			if !ok {
				t.Errorf("ParseMessage(%q): no parse", input)
				continue
			}
			if amount != p.amount || description != p.desc {
				t.Errorf("ParseMessage(%q): got (%v, %q), want (%v, %q)",
					input, amount, description, p.amount, p.desc)
			}
		}
	}
}
