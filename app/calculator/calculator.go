package calculator

import "math"

// InsuranceRates holds the four mandatory insurance rates as fractions
// of base salary (employee share).
type InsuranceRates struct {
	NationalPension    float64 `json:"national_pension"`
	HealthInsurance    float64 `json:"health_insurance"`
	EmploymentInsurance float64 `json:"employment_insurance"`
	IndustrialAccident float64 `json:"industrial_accident"`
}

// DefaultRates returns the 2024 statutory rates
func DefaultRates() InsuranceRates {
	return InsuranceRates{
		NationalPension:     0.045,
		HealthInsurance:     0.0354,
		EmploymentInsurance: 0.009,
		IndustrialAccident:  0.007,
	}
}

// InsuranceBreakdown is the per-insurance premium split for one salary.
// Amounts are integer KRW, floored per premium.
type InsuranceBreakdown struct {
	NationalPension     int64 `json:"national_pension"`
	HealthInsurance     int64 `json:"health_insurance"`
	EmploymentInsurance int64 `json:"employment_insurance"`
	IndustrialAccident  int64 `json:"industrial_accident"`
	Total               int64 `json:"total"`
}

// Insurance computes the four premiums for a monthly base salary
func Insurance(baseSalary int64, rates InsuranceRates) InsuranceBreakdown {
	floor := func(rate float64) int64 {
		return int64(math.Floor(float64(baseSalary) * rate))
	}
	breakdown := InsuranceBreakdown{
		NationalPension:     floor(rates.NationalPension),
		HealthInsurance:     floor(rates.HealthInsurance),
		EmploymentInsurance: floor(rates.EmploymentInsurance),
		IndustrialAccident:  floor(rates.IndustrialAccident),
	}
	breakdown.Total = breakdown.NationalPension + breakdown.HealthInsurance +
		breakdown.EmploymentInsurance + breakdown.IndustrialAccident
	return breakdown
}

// OvertimePay computes statutory overtime pay at 1.5x the hourly wage
func OvertimePay(hourlyWage int64, overtimeHours float64) int64 {
	return int64(math.Floor(float64(hourlyWage) * overtimeHours * 1.5))
}

// AnnualLeavePay computes unused annual-leave compensation
func AnnualLeavePay(dailyWage int64, leaveDays float64) int64 {
	return int64(math.Floor(float64(dailyWage) * leaveDays))
}

// ROI computes the human-capital return on investment as a fraction:
// (revenue - totalCost) / totalCost, guarded to 0 when cost is zero.
func ROI(revenue, totalCost int64) float64 {
	if totalCost == 0 {
		return 0
	}
	return float64(revenue-totalCost) / float64(totalCost)
}
