package utils

import (
	"strconv"
	"strings"
)

// ExtractNumericPrice pulls the leading numeric portion out of a free-form
// price string such as "€120,000" or "€2,500/muaj". Currency symbols, thousands
// separators and "/period" suffixes are stripped; only digits and the first
// decimal point survive. Returns false when no digits are present at all.
// IsRecurringPrice reports whether the price carries a "/period" suffix such
// as "€2,500/muaj". A recurring amount is a different unit than a one-off
// sale figure and is never comparable against a sale-price bound.
func IsRecurringPrice(price string) bool {
	return strings.Contains(price, "/")
}

func ExtractNumericPrice(price string) (float64, bool) {
	var buf []byte
	sawDot := false
	for _, r := range price {
		switch {
		case r >= '0' && r <= '9':
			buf = append(buf, byte(r))
		case r == '.' && !sawDot:
			sawDot = true
			buf = append(buf, '.')
		}
	}
	if len(buf) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(string(buf), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
