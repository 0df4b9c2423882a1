package analytics

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"paypulse/domain/labor"
)

// GroupBreakdown is a grouping of totals by one categorical field value.
// Groups only exist for values that matched at least one record, so the
// average never divides by zero.
type GroupBreakdown struct {
	Name        string `json:"name"`
	Count       int    `json:"count"`
	TotalCost   int64  `json:"total_cost"`
	AverageCost int64  `json:"average_cost"`
}

// DistributionStats describes the shape of the payroll totals
type DistributionStats struct {
	Median   float64 `json:"median"`
	P25      float64 `json:"p25"`
	P75      float64 `json:"p75"`
	StdDev   float64 `json:"std_dev"`
	Skewness float64 `json:"skewness"`
}

// Aggregates is everything the dashboards derive from a dataset.
// Currency values are integer KRW; percentage shares are rounded to one
// decimal for display and never stored back into records.
type Aggregates struct {
	TotalPayrollCost int64 `json:"total_payroll_cost"`
	TotalFeeCost     int64 `json:"total_fee_cost"`
	TotalLaborCost   int64 `json:"total_labor_cost"`

	TotalEmployees int   `json:"total_employees"`
	TotalCompanies int   `json:"total_companies"`
	AverageSalary  int64 `json:"average_salary"`

	PayrollShare float64 `json:"payroll_share"`
	FeeShare     float64 `json:"fee_share"`

	DepartmentBreakdown     []GroupBreakdown `json:"department_breakdown"`
	PositionBreakdown       []GroupBreakdown `json:"position_breakdown"`
	EmploymentTypeBreakdown []GroupBreakdown `json:"employment_type_breakdown"`
	CategoryBreakdown       []GroupBreakdown `json:"category_breakdown"`

	DevelopmentFeeCost    int64 `json:"development_fee_cost"`
	InfrastructureFeeCost int64 `json:"infrastructure_fee_cost"`

	SalaryDistribution DistributionStats `json:"salary_distribution"`
}

// Compute derives all aggregates from a dataset (or filtered subset).
// An empty dataset yields all-zero totals and empty breakdowns, never an
// error or a NaN.
func Compute(dataset labor.Dataset) Aggregates {
	agg := Aggregates{
		TotalEmployees: len(dataset.PayrollData),
		TotalCompanies: len(dataset.FeeData),
	}

	departments := newGrouper()
	positions := newGrouper()
	employmentTypes := newGrouper()
	salaries := make([]float64, 0, len(dataset.PayrollData))

	for _, r := range dataset.PayrollData {
		agg.TotalPayrollCost += r.TotalPayroll
		departments.add(r.Department, r.TotalPayroll)
		positions.add(r.Position, r.TotalPayroll)
		employmentTypes.add(string(r.EmployeeType), r.TotalPayroll)
		salaries = append(salaries, float64(r.TotalPayroll))
	}

	categories := newGrouper()
	for _, r := range dataset.FeeData {
		agg.TotalFeeCost += r.TotalFee
		categories.add(r.Category, r.TotalFee)
		if r.IsDevelopment {
			agg.DevelopmentFeeCost += r.TotalFee
		}
		if r.IsInfrastructure {
			agg.InfrastructureFeeCost += r.TotalFee
		}
	}

	agg.TotalLaborCost = agg.TotalPayrollCost + agg.TotalFeeCost
	if agg.TotalEmployees > 0 {
		agg.AverageSalary = agg.TotalPayrollCost / int64(agg.TotalEmployees)
	}
	agg.PayrollShare = Percent(agg.TotalPayrollCost, agg.TotalLaborCost)
	agg.FeeShare = Percent(agg.TotalFeeCost, agg.TotalLaborCost)

	agg.DepartmentBreakdown = departments.sorted()
	agg.PositionBreakdown = positions.sorted()
	agg.EmploymentTypeBreakdown = employmentTypes.sorted()
	agg.CategoryBreakdown = categories.sorted()
	agg.SalaryDistribution = distribution(salaries)

	return agg
}

// Percent computes part/whole as a percentage rounded to one decimal,
// returning 0 when the whole is zero.
func Percent(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*1000) / 10
}

func distribution(values []float64) DistributionStats {
	if len(values) == 0 {
		return DistributionStats{}
	}

	median, _ := stats.Median(values)
	p25, _ := stats.Percentile(values, 25)
	p75, _ := stats.Percentile(values, 75)
	stdDev, _ := stats.StandardDeviation(values)

	skewness := stat.Skew(values, nil)
	if math.IsNaN(skewness) {
		skewness = 0
	}

	return DistributionStats{
		Median:   median,
		P25:      p25,
		P75:      p75,
		StdDev:   stdDev,
		Skewness: skewness,
	}
}

// grouper builds breakdowns incrementally from matched rows only
type grouper struct {
	groups map[string]*GroupBreakdown
}

func newGrouper() *grouper {
	return &grouper{groups: make(map[string]*GroupBreakdown)}
}

func (g *grouper) add(name string, cost int64) {
	group, ok := g.groups[name]
	if !ok {
		group = &GroupBreakdown{Name: name}
		g.groups[name] = group
	}
	group.Count++
	group.TotalCost += cost
}

// sorted returns the groups ordered by total cost descending (name
// ascending on ties) with averages filled in.
func (g *grouper) sorted() []GroupBreakdown {
	result := make([]GroupBreakdown, 0, len(g.groups))
	for _, group := range g.groups {
		group.AverageCost = group.TotalCost / int64(group.Count)
		result = append(result, *group)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalCost != result[j].TotalCost {
			return result[i].TotalCost > result[j].TotalCost
		}
		return result[i].Name < result[j].Name
	})
	return result
}
