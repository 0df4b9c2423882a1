package analytics

import (
	"strings"

	"paypulse/domain/labor"
)

// SalaryFilter is a conjunctive set of field predicates. A nil/empty
// field imposes no constraint. Salary bounds are inclusive and evaluated
// against the record's principal total (TotalPayroll for payroll records,
// TotalFee for fee records).
type SalaryFilter struct {
	EmployeeName string `json:"employee_name,omitempty"`
	Department   string `json:"department,omitempty"`
	Position     string `json:"position,omitempty"`
	MinSalary    *int64 `json:"min_salary,omitempty"`
	MaxSalary    *int64 `json:"max_salary,omitempty"`
}

// IsZero reports whether the filter constrains nothing
func (f SalaryFilter) IsZero() bool {
	return f.EmployeeName == "" && f.Department == "" && f.Position == "" &&
		f.MinSalary == nil && f.MaxSalary == nil
}

// ApplyFilters rebuilds a filtered view of the dataset. The view is
// recomputed in full on every call; datasets stay small enough that an
// incremental index would buy nothing.
//
// Fee records are matched by their closest analogues: the name predicate
// runs against the company name and the department predicate against the
// fee category. A position constraint has no fee-side analogue and
// excludes fee records entirely.
func ApplyFilters(dataset labor.Dataset, filter SalaryFilter) labor.Dataset {
	if filter.IsZero() {
		return dataset
	}

	filtered := labor.EmptyDataset()
	for _, r := range dataset.PayrollData {
		if matchesPayroll(r, filter) {
			filtered.PayrollData = append(filtered.PayrollData, r)
		}
	}
	for _, r := range dataset.FeeData {
		if matchesFee(r, filter) {
			filtered.FeeData = append(filtered.FeeData, r)
		}
	}
	return filtered
}

func matchesPayroll(r labor.PayrollRecord, f SalaryFilter) bool {
	if f.EmployeeName != "" &&
		!strings.Contains(strings.ToLower(r.EmployeeName), strings.ToLower(f.EmployeeName)) {
		return false
	}
	if f.Department != "" && r.Department != f.Department {
		return false
	}
	if f.Position != "" && r.Position != f.Position {
		return false
	}
	return withinBounds(r.TotalPayroll, f.MinSalary, f.MaxSalary)
}

func matchesFee(r labor.FeeRecord, f SalaryFilter) bool {
	if f.Position != "" {
		return false
	}
	if f.EmployeeName != "" &&
		!strings.Contains(strings.ToLower(r.CompanyName), strings.ToLower(f.EmployeeName)) {
		return false
	}
	if f.Department != "" && r.Category != f.Department {
		return false
	}
	return withinBounds(r.TotalFee, f.MinSalary, f.MaxSalary)
}

func withinBounds(value int64, min, max *int64) bool {
	if min != nil && value < *min {
		return false
	}
	if max != nil && value > *max {
		return false
	}
	return true
}
