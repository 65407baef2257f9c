package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRupiah renders a price as "Rp 10.000": no decimals, dots as
// thousands separators.
func FormatRupiah(d decimal.Decimal) string {
	s := d.Round(0).String()

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)

	out := strings.Join(groups, ".")
	if negative {
		out = "-" + out
	}
	return "Rp " + out
}
