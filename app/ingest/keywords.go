package ingest

// Keyword sets and synonym tables for heuristic sheet classification and
// header normalization. Adding a synonym is a data change here, never a
// code change in the resolver.

// Filename keywords. Matched case-insensitively as substrings of the
// uploaded file's name.
var (
	payrollFileKeywords = []string{
		"급여", "급여대장", "직원", "인사", "payroll", "salary", "월급", "월급여",
	}
	feeFileKeywords = []string{
		"수수료", "도급", "대행", "개인사업자", "계약", "fee", "contract",
		"외주", "업체", "협력사",
	}
)

// Header keywords. Matched case-insensitively as substrings of any column
// header in a sheet.
var (
	payrollHeaderKeywords = []string{
		"이름", "성명", "직원명", "기본급", "월급여", "급여", "부서",
		"사번", "직원번호", "직급", "수당", "연장근무", "4대보험",
	}
	feeHeaderKeywords = []string{
		"업체명", "회사명", "수수료율", "월비용", "계약금액", "금액",
		"서비스내용", "계약기간", "도급", "대행",
		"인원", "월금액", "년금액", "구분", "업무", "계약주체", "비고",
		"외주", "인력비용",
	}
)

// Payroll field synonyms, tried in order; the first present, non-empty
// column wins.
var (
	payrollEmployeeIDColumns   = []string{"사번", "직원번호", "번호", "ID"}
	payrollEmployeeNameColumns = []string{"이름", "성명", "직원명", "직원이름"}
	payrollDepartmentColumns   = []string{"부서", "소속", "팀", "본부", "사업부"}
	payrollPositionColumns     = []string{"직급", "직책", "직위", "직무"}
	payrollTypeColumns         = []string{"고용형태", "구분", "상태", "고용구분"}
	payrollBaseSalaryColumns   = []string{"기본급", "월급여", "급여", "본봉", "기본급여"}
	payrollAllowanceColumns    = []string{"수당", "제수당", "수당류", "기타수당", "추가수당"}
	payrollOvertimeColumns     = []string{"연장근무비", "초과근무수당", "야근수당", "연장수당", "초과수당"}
	payrollAnnualLeaveColumns  = []string{"연차수당", "연차", "연차급여", "휴가수당"}
	payrollInsuranceColumns    = []string{"4대보험", "보험료", "공제액", "공제", "보험공제"}
	payrollBonusColumns        = []string{"상여금", "보너스", "성과금", "성과상여", "인센티브"}
	payrollMonthColumns        = []string{"월", "급여월"}
	payrollYearColumns         = []string{"년도", "년", "급여년도"}
)

// Fee field synonyms.
var (
	feeCompanyNameColumns    = []string{"업체명", "회사명", "이름", "업체", "업체이름", "계약업체"}
	feePersonnelColumns      = []string{"인원", "명", "인력", "직원수"}
	feeMonthlyAmountColumns  = []string{"월금액", "월비용", "월수수료", "월지급액"}
	feeAnnualAmountColumns   = []string{"년금액", "년비용", "년수수료", "년지급액"}
	feeCategoryColumns       = []string{"구분", "카테고리", "분류"}
	feeServiceColumns        = []string{"업무", "서비스내용", "업무내용", "설명", "내용"}
	feeContractPeriodColumns = []string{"계약기간", "기간", "계약"}
	feeContractEntityColumns = []string{"계약주체", "계약업체", "계약기관", "발주처"}
	feeRemarksColumns        = []string{"비고", "특이사항", "메모"}
	feeMonthColumns          = []string{"월", "계약월"}
	feeYearColumns           = []string{"년도", "년", "계약년도"}
)
