package ingest

import (
	"testing"
	"time"

	"paypulse/adapters/workbook"
	"paypulse/domain/labor"
)

var testUploadDate = time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)

// TestNormalizePayrollRow tests synonym resolution and total derivation
// for a fully populated payroll row.
func TestNormalizePayrollRow(t *testing.T) {
	table := workbook.Table{
		SheetName: "7월",
		Headers:   []string{"이름", "부서", "기본급", "수당", "연장근무비", "상여금"},
		Rows: []workbook.Row{{
			"이름":    "김철수",
			"부서":    "개발팀",
			"기본급":   "3,000,000",
			"수당":    "200,000",
			"연장근무비": "150,000",
			"상여금":   "500,000",
		}},
	}

	records := NormalizePayroll(table, "급여대장.xlsx", testUploadDate)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	r := records[0]
	if r.EmployeeName != "김철수" {
		t.Errorf("EmployeeName = %q", r.EmployeeName)
	}
	if r.Department != "개발팀" {
		t.Errorf("Department = %q", r.Department)
	}
	if r.BaseSalary != 3000000 {
		t.Errorf("BaseSalary = %d", r.BaseSalary)
	}
	expectedTotal := int64(3000000 + 200000 + 150000 + 500000)
	if r.TotalPayroll != expectedTotal {
		t.Errorf("TotalPayroll = %d, want %d", r.TotalPayroll, expectedTotal)
	}
	if r.TotalPayroll != r.ComponentSum() {
		t.Errorf("TotalPayroll %d diverges from component sum %d", r.TotalPayroll, r.ComponentSum())
	}
	if r.ID == "" {
		t.Error("expected a generated record ID")
	}
	if r.FileName != "급여대장.xlsx" {
		t.Errorf("FileName = %q", r.FileName)
	}
}

// TestNormalizePayrollDefaults tests placeholder and default values for
// a sparse row, and the month/year fallback to the upload date.
func TestNormalizePayrollDefaults(t *testing.T) {
	table := workbook.Table{
		Headers: []string{"기본급"},
		Rows:    []workbook.Row{{"기본급": "2500000"}},
	}

	r := NormalizePayroll(table, "급여.xlsx", testUploadDate)[0]
	if r.EmployeeName != "직원_1" {
		t.Errorf("EmployeeName = %q, want placeholder 직원_1", r.EmployeeName)
	}
	if r.EmployeeID != "EMP_1" {
		t.Errorf("EmployeeID = %q, want EMP_1", r.EmployeeID)
	}
	if r.Department != "미분류" {
		t.Errorf("Department = %q, want 미분류", r.Department)
	}
	if r.Position != "사원" {
		t.Errorf("Position = %q, want 사원", r.Position)
	}
	if r.EmployeeType != labor.EmployeeRegular {
		t.Errorf("EmployeeType = %s, want regular", r.EmployeeType)
	}
	if r.Month != 7 || r.Year != 2024 {
		t.Errorf("Month/Year = %d/%d, want 7/2024", r.Month, r.Year)
	}
}

// TestNormalizePayrollSynonymOrder tests that the first present synonym
// column wins when several are set.
func TestNormalizePayrollSynonymOrder(t *testing.T) {
	table := workbook.Table{
		Headers: []string{"기본급", "월급여"},
		Rows: []workbook.Row{{
			"기본급": "3000000",
			"월급여": "9999999",
		}},
	}

	r := NormalizePayroll(table, "급여.xlsx", testUploadDate)[0]
	if r.BaseSalary != 3000000 {
		t.Errorf("BaseSalary = %d, want the 기본급 column to win", r.BaseSalary)
	}
}

// TestNormalizeFeeMonthlyOnly tests the derived amounts when only a
// monthly amount is present: total fee becomes twelve months.
func TestNormalizeFeeMonthlyOnly(t *testing.T) {
	table := workbook.Table{
		Headers: []string{"업체명", "월금액", "구분"},
		Rows: []workbook.Row{{
			"업체명": "테크웍스",
			"월금액": "1,500,000",
			"구분":  "개발",
		}},
	}

	r := NormalizeFee(table, "외주비.xlsx", testUploadDate)[0]
	if r.MonthlyFee != 1500000 {
		t.Errorf("MonthlyFee = %d", r.MonthlyFee)
	}
	if r.TotalFee != 18000000 {
		t.Errorf("TotalFee = %d, want 18000000", r.TotalFee)
	}
	if !r.IsDevelopment {
		t.Error("개발 category should flag IsDevelopment")
	}
	if r.IsInfrastructure {
		t.Error("개발 category should not flag IsInfrastructure")
	}
}

// TestNormalizeFeeAnnualFallback tests the monthly fee falling back to
// the annual amount spread over twelve months.
func TestNormalizeFeeAnnualFallback(t *testing.T) {
	table := workbook.Table{
		Headers: []string{"업체명", "년금액"},
		Rows: []workbook.Row{{
			"업체명": "인프라원",
			"년금액": "24,000,000",
		}},
	}

	r := NormalizeFee(table, "외주비.xlsx", testUploadDate)[0]
	if r.MonthlyFee != 2000000 {
		t.Errorf("MonthlyFee = %d, want 2000000", r.MonthlyFee)
	}
	if r.TotalFee != 24000000 {
		t.Errorf("TotalFee = %d, want the annual amount", r.TotalFee)
	}
	if r.ContractAmount != 24000000 {
		t.Errorf("ContractAmount = %d", r.ContractAmount)
	}
}

// TestNormalizeFeeDefaults tests fee placeholders and category default
func TestNormalizeFeeDefaults(t *testing.T) {
	table := workbook.Table{
		Headers: []string{"인원"},
		Rows:    []workbook.Row{{"인원": "3"}},
	}

	r := NormalizeFee(table, "외주비.xlsx", testUploadDate)[0]
	if r.CompanyName != "업체_1" {
		t.Errorf("CompanyName = %q, want placeholder 업체_1", r.CompanyName)
	}
	if r.Category != "기타" {
		t.Errorf("Category = %q, want 기타", r.Category)
	}
	if r.Personnel != 3 {
		t.Errorf("Personnel = %d", r.Personnel)
	}
}

// TestParseContractPeriod tests extraction of ISO dates from loose
// period strings.
func TestParseContractPeriod(t *testing.T) {
	tests := []struct {
		input         string
		expectedStart string
		expectedEnd   string
	}{
		{"2024.1.1 ~ 2024.12.31", "2024-01-01", "2024-12-31"},
		{"2024.01.01~2025.06.30", "2024-01-01", "2025-06-30"},
		{"계약기간: 2023.3.15 ~ 2024.3.14 (연장가능)", "2023-03-15", "2024-03-14"},
		{"상시계약", "", ""},
		{"", "", ""},
	}

	for _, test := range tests {
		start, end := parseContractPeriod(test.input)
		if start != test.expectedStart || end != test.expectedEnd {
			t.Errorf("parseContractPeriod(%q) = (%q, %q), want (%q, %q)",
				test.input, start, end, test.expectedStart, test.expectedEnd)
		}
	}
}

// TestNormalizeEmployeeType tests employment-type keyword mapping
func TestNormalizeEmployeeType(t *testing.T) {
	tests := []struct {
		input    string
		expected labor.EmployeeType
	}{
		{"정규직", labor.EmployeeRegular},
		{"계약직", labor.EmployeeContract},
		{"Contract", labor.EmployeeContract},
		{"시간제", labor.EmployeePartTime},
		{"part-time", labor.EmployeePartTime},
		{"", labor.EmployeeRegular},
		{"알수없음", labor.EmployeeRegular},
	}

	for _, test := range tests {
		if got := normalizeEmployeeType(test.input); got != test.expected {
			t.Errorf("normalizeEmployeeType(%q) = %s, want %s", test.input, got, test.expected)
		}
	}
}

// TestNormalizeBusinessType tests business-type keyword mapping,
// including 개인 taking precedence inside compound categories.
func TestNormalizeBusinessType(t *testing.T) {
	tests := []struct {
		input    string
		expected labor.BusinessType
	}{
		{"개인사업자", labor.BusinessIndividual},
		{"개인도급", labor.BusinessIndividual},
		{"도급", labor.BusinessContractor},
		{"대행", labor.BusinessAgency},
		{"agency", labor.BusinessAgency},
		{"기타", labor.BusinessIndividual},
	}

	for _, test := range tests {
		if got := normalizeBusinessType(test.input); got != test.expected {
			t.Errorf("normalizeBusinessType(%q) = %s, want %s", test.input, got, test.expected)
		}
	}
}
