package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Korean display formatting for KRW amounts and percentages.

// Number renders an integer with thousands separators: 3300000 -> "3,300,000"
func Number(n int64) string {
	s := strconv.FormatInt(n, 10)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if negative {
		return "-" + b.String()
	}
	return b.String()
}

// Currency renders an amount as Korean won: 3300000 -> "₩3,300,000"
func Currency(n int64) string {
	if n < 0 {
		return "-₩" + Number(-n)
	}
	return "₩" + Number(n)
}

// Percent renders a fraction as a percentage with two decimals:
// 0.045 -> "4.50%"
func Percent(fraction float64) string {
	return fmt.Sprintf("%.2f%%", fraction*100)
}
