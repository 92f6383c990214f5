package bot

import (
	"strings"
	"testing"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Rp0"},
		{500, "Rp500"},
		{25000, "Rp25.000"},
		{2000000, "Rp2.000.000"},
		{1500000, "Rp1.500.000"},
		{1000000000, "Rp1.000.000.000"},
	}

	for _, tc := range tests {
		if got := FormatRupiah(tc.amount); got != tc.want {
			t.Errorf("FormatRupiah(%v): got %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestConfirmation(t *testing.T) {
	got := confirmation(25000, "makan", 40000)

	for _, want := range []string{"Rp25.000", "makan", "Rp40.000", "Ditambahkan", "Total hari ini"} {
		if !strings.Contains(got, want) {
			t.Errorf("confirmation missing %q in %q", want, got)
		}
	}
}
