package ingest

import (
	"log"
	"strings"

	"paypulse/adapters/workbook"
)

// Classification is the decision of which canonical schema a sheet's rows
// should be normalized into.
type Classification string

const (
	ClassPayroll Classification = "payroll"
	ClassFee     Classification = "fee"
	ClassUnknown Classification = "unknown"
)

// Classify decides whether a sheet holds payroll rows, fee rows, or neither.
// Two signals are OR-ed per category: a filename keyword match and a column
// header keyword match. Both are always evaluated so the decision is
// loggable even when the first signal alone would settle it. A sheet that
// matches keywords for both categories is classified as payroll.
func Classify(fileName string, table workbook.Table) Classification {
	payrollByName := matchesAny(fileName, payrollFileKeywords)
	feeByName := matchesAny(fileName, feeFileKeywords)
	payrollByHeader := headerMatchesAny(table.Headers, payrollHeaderKeywords)
	feeByHeader := headerMatchesAny(table.Headers, feeHeaderKeywords)

	log.Printf("[Classifier] %s/%s signals: payroll(name=%t header=%t) fee(name=%t header=%t)",
		fileName, table.SheetName, payrollByName, payrollByHeader, feeByName, feeByHeader)

	switch {
	case payrollByName || payrollByHeader:
		return ClassPayroll
	case feeByName || feeByHeader:
		return ClassFee
	default:
		return ClassUnknown
	}
}

func matchesAny(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, keyword := range keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

func headerMatchesAny(headers []string, keywords []string) bool {
	for _, header := range headers {
		if header != "" && matchesAny(header, keywords) {
			return true
		}
	}
	return false
}
