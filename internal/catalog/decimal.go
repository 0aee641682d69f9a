package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeDecimal rewrites a locale decimal separator to a period, so
// "1,5" is transmitted as "1.5". The value must parse as a non-negative
// number.
func NormalizeDecimal(s string) (string, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return "", fmt.Errorf("not a decimal quantity: %q", s)
	}
	if v < 0 {
		return "", fmt.Errorf("negative quantity: %q", s)
	}
	return normalized, nil
}

// PlainPrice strips display formatting ("Rp 12.500", "12,500") down to the
// plain digit string the backend expects.
func PlainPrice(s string) (string, error) {
	digits := strings.TrimSpace(s)
	digits = strings.TrimPrefix(digits, "Rp")
	digits = strings.NewReplacer(" ", "", ".", "", ",", "").Replace(digits)
	if digits == "" {
		return "", fmt.Errorf("empty price: %q", s)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("not a price: %q", s)
		}
	}
	return digits, nil
}

// FormatPrice renders a stored price for display with a thousands
// separator: 12500 -> "12.500".
func FormatPrice(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
