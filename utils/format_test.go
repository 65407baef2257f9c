package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "Rp 0"},
		{"500", "Rp 500"},
		{"1000", "Rp 1.000"},
		{"10000", "Rp 10.000"},
		{"15000", "Rp 15.000"},
		{"1500000", "Rp 1.500.000"},
		{"1234567890", "Rp 1.234.567.890"},
		{"10000.49", "Rp 10.000"},
		{"-10000", "Rp -10.000"},
	}

	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.in)
		if err != nil {
			t.Fatalf("bad fixture %q: %v", tt.in, err)
		}
		if got := FormatRupiah(d); got != tt.want {
			t.Errorf("FormatRupiah(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
