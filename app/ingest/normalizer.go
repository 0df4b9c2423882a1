package ingest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"paypulse/adapters/workbook"
	"paypulse/domain/labor"
)

// contractPeriodPattern matches "YYYY.M.D ~ YYYY.M.D" contract periods
var contractPeriodPattern = regexp.MustCompile(
	`(\d{4})\.(\d{1,2})\.(\d{1,2})\s*~\s*(\d{4})\.(\d{1,2})\.(\d{1,2})`)

// resolveColumn returns the first present, non-empty value among the
// synonym columns, or "" when none is set.
func resolveColumn(row workbook.Row, columns []string) string {
	for _, column := range columns {
		if value := strings.TrimSpace(row[column]); value != "" {
			return value
		}
	}
	return ""
}

// NormalizePayroll maps a classified payroll table into canonical records.
// Each field is resolved through its synonym column list; numeric fields
// coerce to zero on bad input; the payroll total is always re-derived from
// the six cost components. Rows that fail validity checks (placeholder
// name, zero base salary) survive normalization and are dropped by the
// validator, keeping the two stages independently testable.
func NormalizePayroll(table workbook.Table, fileName string, uploadDate time.Time) []labor.PayrollRecord {
	records := make([]labor.PayrollRecord, 0, len(table.Rows))
	for i, row := range table.Rows {
		baseSalary := CoerceInt(resolveColumn(row, payrollBaseSalaryColumns), 0)
		allowances := CoerceInt(resolveColumn(row, payrollAllowanceColumns), 0)
		overtimePay := CoerceInt(resolveColumn(row, payrollOvertimeColumns), 0)
		annualLeavePay := CoerceInt(resolveColumn(row, payrollAnnualLeaveColumns), 0)
		insurancePremiums := CoerceInt(resolveColumn(row, payrollInsuranceColumns), 0)
		bonuses := CoerceInt(resolveColumn(row, payrollBonusColumns), 0)

		record := labor.PayrollRecord{
			ID:                uuid.NewString(),
			EmployeeID:        fallback(resolveColumn(row, payrollEmployeeIDColumns), fmt.Sprintf("EMP_%d", i+1)),
			EmployeeName:      fallback(resolveColumn(row, payrollEmployeeNameColumns), fmt.Sprintf("직원_%d", i+1)),
			Department:        fallback(resolveColumn(row, payrollDepartmentColumns), "미분류"),
			Position:          fallback(resolveColumn(row, payrollPositionColumns), "사원"),
			EmployeeType:      normalizeEmployeeType(resolveColumn(row, payrollTypeColumns)),
			BaseSalary:        baseSalary,
			Allowances:        allowances,
			OvertimePay:       overtimePay,
			AnnualLeavePay:    annualLeavePay,
			InsurancePremiums: insurancePremiums,
			Bonuses:           bonuses,
			Month:             int(CoerceInt(resolveColumn(row, payrollMonthColumns), int64(uploadDate.Month()))),
			Year:              int(CoerceInt(resolveColumn(row, payrollYearColumns), int64(uploadDate.Year()))),
			UploadDate:        uploadDate,
			FileName:          fileName,
		}
		record.TotalPayroll = record.ComponentSum()
		records = append(records, record)
	}
	return records
}

// NormalizeFee maps a classified fee table into canonical records.
// Derived amounts follow the contract: the monthly fee falls back to the
// annual amount spread over twelve months, and the total fee is the annual
// amount when present, else twelve monthly fees.
func NormalizeFee(table workbook.Table, fileName string, uploadDate time.Time) []labor.FeeRecord {
	records := make([]labor.FeeRecord, 0, len(table.Rows))
	for i, row := range table.Rows {
		personnel := CoerceInt(resolveColumn(row, feePersonnelColumns), 0)
		monthlyAmount := CoerceInt(resolveColumn(row, feeMonthlyAmountColumns), 0)
		annualAmount := CoerceInt(resolveColumn(row, feeAnnualAmountColumns), 0)

		monthlyFee := monthlyAmount
		if monthlyFee <= 0 {
			monthlyFee = annualAmount / 12
		}
		totalFee := annualAmount
		if totalFee <= 0 {
			totalFee = monthlyFee * 12
		}

		category := fallback(resolveColumn(row, feeCategoryColumns), "기타")
		contractPeriod := resolveColumn(row, feeContractPeriodColumns)
		startDate, endDate := parseContractPeriod(contractPeriod)

		records = append(records, labor.FeeRecord{
			ID:                 uuid.NewString(),
			CompanyName:        fallback(resolveColumn(row, feeCompanyNameColumns), fmt.Sprintf("업체_%d", i+1)),
			BusinessType:       normalizeBusinessType(category),
			ServiceDescription: resolveColumn(row, feeServiceColumns),
			ContractAmount:     annualAmount,
			FeeRate:            0,
			MonthlyFee:         monthlyFee,
			ContractPeriod:     contractPeriod,
			StartDate:          startDate,
			EndDate:            endDate,
			TotalFee:           totalFee,
			Month:              int(CoerceInt(resolveColumn(row, feeMonthColumns), int64(uploadDate.Month()))),
			Year:               int(CoerceInt(resolveColumn(row, feeYearColumns), int64(uploadDate.Year()))),
			UploadDate:         uploadDate,
			FileName:           fileName,
			Personnel:          personnel,
			Category:           category,
			ContractEntity:     resolveColumn(row, feeContractEntityColumns),
			Remarks:            resolveColumn(row, feeRemarksColumns),
			IsDevelopment:      containsFold(category, "개발") || containsFold(category, "development"),
			IsInfrastructure:   containsFold(category, "인프라") || containsFold(category, "infrastructure"),
		})
	}
	return records
}

// parseContractPeriod extracts ISO start/end dates from a loose
// "YYYY.M.D ~ YYYY.M.D" period string. Non-matching input leaves both
// dates empty without failing the record.
func parseContractPeriod(period string) (string, string) {
	m := contractPeriodPattern.FindStringSubmatch(period)
	if m == nil {
		return "", ""
	}
	start := fmt.Sprintf("%s-%02d-%02d", m[1], mustAtoi(m[2]), mustAtoi(m[3]))
	end := fmt.Sprintf("%s-%02d-%02d", m[4], mustAtoi(m[5]), mustAtoi(m[6]))
	return start, end
}

// mustAtoi parses digit-only submatches from contractPeriodPattern
func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func normalizeEmployeeType(raw string) labor.EmployeeType {
	switch {
	case containsFold(raw, "계약") || containsFold(raw, "contract"):
		return labor.EmployeeContract
	case containsFold(raw, "시간") || containsFold(raw, "part"):
		return labor.EmployeePartTime
	default:
		return labor.EmployeeRegular
	}
}

func normalizeBusinessType(raw string) labor.BusinessType {
	switch {
	case containsFold(raw, "개인") || containsFold(raw, "individual"):
		return labor.BusinessIndividual
	case containsFold(raw, "도급") || containsFold(raw, "contractor"):
		return labor.BusinessContractor
	case containsFold(raw, "대행") || containsFold(raw, "agency"):
		return labor.BusinessAgency
	default:
		return labor.BusinessIndividual
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
