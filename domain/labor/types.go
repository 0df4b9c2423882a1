package labor

import "time"

// EmployeeType classifies how an employee is engaged
type EmployeeType string

const (
	EmployeeRegular  EmployeeType = "regular"
	EmployeeContract EmployeeType = "contract"
	EmployeePartTime EmployeeType = "part-time"
)

// BusinessType classifies an external company on a fee contract
type BusinessType string

const (
	BusinessIndividual BusinessType = "individual"
	BusinessContractor BusinessType = "contractor"
	BusinessAgency     BusinessType = "agency"
)

// FileType is the category an uploaded file was ingested as
type FileType string

const (
	FileTypePayroll FileType = "payroll"
	FileTypeFee     FileType = "fee"
)

// PayrollRecord is one employee's per-period compensation breakdown.
// All currency amounts are integer KRW.
type PayrollRecord struct {
	ID                string       `json:"id"`
	EmployeeID        string       `json:"employee_id"`
	EmployeeName      string       `json:"employee_name"`
	Department        string       `json:"department"`
	Position          string       `json:"position"`
	EmployeeType      EmployeeType `json:"employee_type"`
	BaseSalary        int64        `json:"base_salary"`
	Allowances        int64        `json:"allowances"`
	OvertimePay       int64        `json:"overtime_pay"`
	AnnualLeavePay    int64        `json:"annual_leave_pay"`
	InsurancePremiums int64        `json:"insurance_premiums"`
	Bonuses           int64        `json:"bonuses"`
	TotalPayroll      int64        `json:"total_payroll"`
	Month             int          `json:"month"`
	Year              int          `json:"year"`
	UploadDate        time.Time    `json:"upload_date"`
	FileName          string       `json:"file_name"`
}

// ComponentSum re-derives the payroll total from its six cost components.
// TotalPayroll must always equal this sum; it is computed, never supplied.
func (r PayrollRecord) ComponentSum() int64 {
	return r.BaseSalary + r.Allowances + r.OvertimePay + r.AnnualLeavePay + r.InsurancePremiums + r.Bonuses
}

// FeeRecord is one external company's contracted cost breakdown.
type FeeRecord struct {
	ID                 string       `json:"id"`
	CompanyName        string       `json:"company_name"`
	BusinessType       BusinessType `json:"business_type"`
	ServiceDescription string       `json:"service_description"`
	ContractAmount     int64        `json:"contract_amount"`
	FeeRate            float64      `json:"fee_rate"`
	MonthlyFee         int64        `json:"monthly_fee"`
	ContractPeriod     string       `json:"contract_period"`
	StartDate          string       `json:"start_date"`
	EndDate            string       `json:"end_date"`
	TotalFee           int64        `json:"total_fee"`
	Month              int          `json:"month"`
	Year               int          `json:"year"`
	UploadDate         time.Time    `json:"upload_date"`
	FileName           string       `json:"file_name"`

	Personnel        int64  `json:"personnel,omitempty"`
	Category         string `json:"category,omitempty"`
	ContractEntity   string `json:"contract_entity,omitempty"`
	Remarks          string `json:"remarks,omitempty"`
	IsDevelopment    bool   `json:"is_development,omitempty"`
	IsInfrastructure bool   `json:"is_infrastructure,omitempty"`
}

// UploadHistoryEntry records one processed file so its whole contribution
// can be removed from the dataset later.
type UploadHistoryEntry struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	FileType    FileType  `json:"file_type"`
	UploadDate  time.Time `json:"upload_date"`
	RecordCount int       `json:"record_count"`
}
