package ingest

import (
	"log"
	"strings"

	"paypulse/domain/labor"
)

// Minimum-viability checks. Invalid records are dropped before storage;
// no partial record is ever persisted. Drops are counted for the batch
// summary rather than surfaced individually.

// ValidPayroll reports whether a payroll record clears the bar: a real
// (non-placeholder) employee name and a positive base salary.
func ValidPayroll(r labor.PayrollRecord) bool {
	name := strings.TrimSpace(r.EmployeeName)
	if name == "" || strings.Contains(name, "직원_") {
		return false
	}
	return r.BaseSalary > 0
}

// ValidFee reports whether a fee record clears the bar: a real company
// name and at least one strictly positive amount among personnel,
// monthly fee, and total fee.
func ValidFee(r labor.FeeRecord) bool {
	name := strings.TrimSpace(r.CompanyName)
	if name == "" || strings.Contains(name, "업체_") {
		return false
	}
	return r.Personnel > 0 || r.MonthlyFee > 0 || r.TotalFee > 0
}

// FilterPayroll drops invalid payroll records and returns the survivors
// with the dropped count.
func FilterPayroll(records []labor.PayrollRecord) ([]labor.PayrollRecord, int) {
	valid := make([]labor.PayrollRecord, 0, len(records))
	for _, r := range records {
		if ValidPayroll(r) {
			valid = append(valid, r)
		} else {
			log.Printf("[Validator] dropping payroll row from %s (name=%q baseSalary=%d)",
				r.FileName, r.EmployeeName, r.BaseSalary)
		}
	}
	return valid, len(records) - len(valid)
}

// FilterFee drops invalid fee records and returns the survivors with the
// dropped count.
func FilterFee(records []labor.FeeRecord) ([]labor.FeeRecord, int) {
	valid := make([]labor.FeeRecord, 0, len(records))
	for _, r := range records {
		if ValidFee(r) {
			valid = append(valid, r)
		} else {
			log.Printf("[Validator] dropping fee row from %s (company=%q)",
				r.FileName, r.CompanyName)
		}
	}
	return valid, len(records) - len(valid)
}
