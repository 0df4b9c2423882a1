package ingest

import (
	"testing"

	"paypulse/adapters/workbook"
)

func tableWithHeaders(headers ...string) workbook.Table {
	return workbook.Table{SheetName: "Sheet1", Headers: headers}
}

// TestClassifyByFileName tests filename keyword classification
func TestClassifyByFileName(t *testing.T) {
	tests := []struct {
		fileName string
		expected Classification
	}{
		{"2024_급여대장.xlsx", ClassPayroll},
		{"monthly_payroll.xlsx", ClassPayroll},
		{"외주비_정산.csv", ClassFee},
		{"업체별_수수료.xlsx", ClassFee},
		{"fee_report.xls", ClassFee},
		{"매출현황.xlsx", ClassUnknown},
	}

	for _, test := range tests {
		got := Classify(test.fileName, tableWithHeaders("A", "B"))
		if got != test.expected {
			t.Errorf("Classify(%q) = %s, want %s", test.fileName, got, test.expected)
		}
	}
}

// TestClassifyByHeaders tests that header keywords classify a sheet even
// when the filename says nothing.
func TestClassifyByHeaders(t *testing.T) {
	payroll := tableWithHeaders("이름", "기본급", "부서")
	if got := Classify("data.xlsx", payroll); got != ClassPayroll {
		t.Errorf("payroll headers classified as %s", got)
	}

	fee := tableWithHeaders("업체명", "월금액", "계약기간")
	if got := Classify("data.xlsx", fee); got != ClassFee {
		t.Errorf("fee headers classified as %s", got)
	}

	neither := tableWithHeaders("가나다", "라마바")
	if got := Classify("data.xlsx", neither); got != ClassUnknown {
		t.Errorf("unrelated headers classified as %s", got)
	}
}

// TestClassifyPayrollWinsTies tests the precedence rule when a sheet
// matches keywords for both categories.
func TestClassifyPayrollWinsTies(t *testing.T) {
	// Filename says fee, headers say payroll.
	table := tableWithHeaders("이름", "기본급")
	if got := Classify("외주계약.xlsx", table); got != ClassPayroll {
		t.Errorf("mixed signals classified as %s, want payroll", got)
	}
}

// TestClassifyDeterministic tests that repeated classification of the
// same input always lands on the same class.
func TestClassifyDeterministic(t *testing.T) {
	table := tableWithHeaders("업체명", "기본급")
	first := Classify("report.xlsx", table)
	for i := 0; i < 50; i++ {
		if got := Classify("report.xlsx", table); got != first {
			t.Fatalf("classification flapped from %s to %s on run %d", first, got, i)
		}
	}
}

// TestClassifyCaseInsensitive tests case folding on latin keywords
func TestClassifyCaseInsensitive(t *testing.T) {
	if got := Classify("PAYROLL_2024.XLSX", tableWithHeaders("a")); got != ClassPayroll {
		t.Errorf("uppercase filename classified as %s", got)
	}
}
