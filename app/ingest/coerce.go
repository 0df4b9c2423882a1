package ingest

import (
	"math"
	"strconv"
	"strings"
)

// CoerceInt converts a raw cell into an integer KRW amount. Empty and
// non-numeric input yields def; the result is never NaN or infinite.
// Thousands separators, currency markers and parenthesized negatives are
// tolerated so that formatted spreadsheet cells survive re-parsing.
func CoerceInt(value string, def int64) int64 {
	f, ok := parseNumeric(value)
	if !ok {
		return def
	}
	return int64(f)
}

// CoerceFloat is CoerceInt without the truncation to whole KRW.
func CoerceFloat(value string, def float64) float64 {
	f, ok := parseNumeric(value)
	if !ok {
		return def
	}
	return f
}

func parseNumeric(value string) (float64, bool) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0, false
	}

	// Accounting negatives: (123) -> -123
	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = strings.TrimSuffix(strings.TrimPrefix(cleaned, "("), ")")
		negative = true
	}

	for _, marker := range []string{"₩", "원", "%", ","} {
		cleaned = strings.ReplaceAll(cleaned, marker, "")
	}
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, false
	}
	if negative {
		cleaned = "-" + cleaned
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
