package analytics

import (
	"testing"

	"paypulse/domain/labor"
)

func sampleDataset() labor.Dataset {
	return labor.Dataset{
		PayrollData: []labor.PayrollRecord{
			{EmployeeName: "김철수", Department: "개발팀", Position: "과장",
				EmployeeType: labor.EmployeeRegular, TotalPayroll: 4000000},
			{EmployeeName: "이영희", Department: "개발팀", Position: "대리",
				EmployeeType: labor.EmployeeRegular, TotalPayroll: 3000000},
			{EmployeeName: "박민수", Department: "마케팅", Position: "사원",
				EmployeeType: labor.EmployeeContract, TotalPayroll: 2000000},
		},
		FeeData: []labor.FeeRecord{
			{CompanyName: "테크웍스", Category: "개발", TotalFee: 6000000, IsDevelopment: true},
			{CompanyName: "클라우드원", Category: "인프라", TotalFee: 4000000, IsInfrastructure: true},
		},
	}
}

// TestComputeTotals tests the headline totals and shares
func TestComputeTotals(t *testing.T) {
	agg := Compute(sampleDataset())

	if agg.TotalPayrollCost != 9000000 {
		t.Errorf("TotalPayrollCost = %d", agg.TotalPayrollCost)
	}
	if agg.TotalFeeCost != 10000000 {
		t.Errorf("TotalFeeCost = %d", agg.TotalFeeCost)
	}
	if agg.TotalLaborCost != 19000000 {
		t.Errorf("TotalLaborCost = %d", agg.TotalLaborCost)
	}
	if agg.TotalEmployees != 3 || agg.TotalCompanies != 2 {
		t.Errorf("counts = %d employees, %d companies", agg.TotalEmployees, agg.TotalCompanies)
	}
	if agg.AverageSalary != 3000000 {
		t.Errorf("AverageSalary = %d", agg.AverageSalary)
	}
	if agg.PayrollShare != 47.4 {
		t.Errorf("PayrollShare = %.1f, want 47.4", agg.PayrollShare)
	}
	if agg.FeeShare != 52.6 {
		t.Errorf("FeeShare = %.1f, want 52.6", agg.FeeShare)
	}
	if agg.DevelopmentFeeCost != 6000000 || agg.InfrastructureFeeCost != 4000000 {
		t.Errorf("fee splits = %d dev, %d infra", agg.DevelopmentFeeCost, agg.InfrastructureFeeCost)
	}
}

// TestComputeBreakdowns tests group membership, totals and ordering
func TestComputeBreakdowns(t *testing.T) {
	agg := Compute(sampleDataset())

	if len(agg.DepartmentBreakdown) != 2 {
		t.Fatalf("department groups = %d", len(agg.DepartmentBreakdown))
	}
	dev := agg.DepartmentBreakdown[0]
	if dev.Name != "개발팀" || dev.Count != 2 || dev.TotalCost != 7000000 {
		t.Errorf("top department = %+v", dev)
	}
	if dev.AverageCost != 3500000 {
		t.Errorf("개발팀 AverageCost = %d", dev.AverageCost)
	}
	if agg.DepartmentBreakdown[1].Name != "마케팅" {
		t.Errorf("groups not sorted by total cost: %+v", agg.DepartmentBreakdown)
	}

	if len(agg.EmploymentTypeBreakdown) != 2 {
		t.Errorf("employment type groups = %d", len(agg.EmploymentTypeBreakdown))
	}
	if len(agg.CategoryBreakdown) != 2 {
		t.Errorf("category groups = %d", len(agg.CategoryBreakdown))
	}
}

// TestComputeEmptyDataset tests the all-zero result with no records:
// no NaN, no panic, empty breakdowns.
func TestComputeEmptyDataset(t *testing.T) {
	agg := Compute(labor.EmptyDataset())

	if agg.TotalLaborCost != 0 || agg.AverageSalary != 0 {
		t.Errorf("empty dataset totals = %d / %d", agg.TotalLaborCost, agg.AverageSalary)
	}
	if agg.PayrollShare != 0 || agg.FeeShare != 0 {
		t.Errorf("empty dataset shares = %.1f / %.1f", agg.PayrollShare, agg.FeeShare)
	}
	if len(agg.DepartmentBreakdown) != 0 {
		t.Errorf("empty dataset has %d department groups", len(agg.DepartmentBreakdown))
	}
	if agg.SalaryDistribution != (DistributionStats{}) {
		t.Errorf("empty dataset distribution = %+v", agg.SalaryDistribution)
	}
}

// TestComputeDistribution tests the shape statistics over salaries
func TestComputeDistribution(t *testing.T) {
	agg := Compute(sampleDataset())
	d := agg.SalaryDistribution

	if d.Median != 3000000 {
		t.Errorf("Median = %.0f", d.Median)
	}
	if d.P25 <= 0 || d.P75 <= d.P25 {
		t.Errorf("quartiles out of order: p25=%.0f p75=%.0f", d.P25, d.P75)
	}
	if d.StdDev <= 0 {
		t.Errorf("StdDev = %.0f", d.StdDev)
	}
}

// TestPercent tests the zero-guarded rounded percentage helper
func TestPercent(t *testing.T) {
	tests := []struct {
		part     int64
		whole    int64
		expected float64
	}{
		{1, 3, 33.3},
		{2, 3, 66.7},
		{1, 1, 100},
		{0, 5, 0},
		{5, 0, 0},
	}

	for _, test := range tests {
		if got := Percent(test.part, test.whole); got != test.expected {
			t.Errorf("Percent(%d, %d) = %.1f, want %.1f", test.part, test.whole, got, test.expected)
		}
	}
}
