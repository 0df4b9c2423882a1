package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"

	"paypulse/app/analytics"
	"paypulse/app/calculator"
	"paypulse/domain/labor"
	"paypulse/internal/format"
)

// DataSource provides the dataset the assistant answers about
type DataSource interface {
	Dataset(ctx context.Context) (labor.Dataset, error)
}

// Answer is one assistant reply: Korean markdown, its HTML rendering for
// the UI, and optional follow-up suggestions.
type Answer struct {
	Text        string   `json:"text"`
	HTML        string   `json:"html"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Assistant is a deterministic keyword router: an ordered list of
// (keyword set, handler) rules evaluated top-down over the lowercased
// message. There is no language model and no randomness; identical
// questions over an identical dataset always produce identical answers.
type Assistant struct {
	source DataSource
	rules  []rule
}

type rule struct {
	keywords []string
	respond  func(agg analytics.Aggregates, hasData bool) (string, []string)
}

// NewAssistant creates the rule-based assistant over a data source
func NewAssistant(source DataSource) *Assistant {
	a := &Assistant{source: source}
	a.rules = []rule{
		{keywords: []string{"현황", "상황"}, respond: respondOverview},
		{keywords: []string{"4대보험", "보험"}, respond: respondInsurance},
		{keywords: []string{"절약", "줄이", "감소"}, respond: respondSavings},
		{keywords: []string{"부서", "팀"}, respond: respondDepartments},
		{keywords: []string{"roi", "투자수익"}, respond: respondROI},
		{keywords: []string{"안녕", "hi", "hello"}, respond: respondGreeting},
	}
	return a
}

// Answer routes a message through the rules and renders the reply
func (a *Assistant) Answer(ctx context.Context, message string) (Answer, error) {
	dataset, err := a.source.Dataset(ctx)
	if err != nil {
		return Answer{}, err
	}
	agg := analytics.Compute(dataset)
	hasData := !dataset.IsEmpty()

	lower := strings.ToLower(message)
	text, suggestions := respondFallback(agg, hasData)
	for _, r := range a.rules {
		if matchesAny(lower, r.keywords) {
			text, suggestions = r.respond(agg, hasData)
			break
		}
	}

	return Answer{
		Text:        text,
		HTML:        string(markdown.ToHTML([]byte(text), nil, nil)),
		Suggestions: suggestions,
	}, nil
}

func matchesAny(message string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	return false
}

func respondOverview(agg analytics.Aggregates, hasData bool) (string, []string) {
	if !hasData {
		return "데이터를 먼저 업로드해주시면 정확한 분석을 도와드릴 수 있어요! 📁", nil
	}
	var b strings.Builder
	b.WriteString("우리 회사 인건비 현황을 분석해드릴게요! 📊\n\n")
	fmt.Fprintf(&b, "💰 **총 인건비**: %s원\n", format.Number(agg.TotalLaborCost))
	fmt.Fprintf(&b, "👥 **총 인원**: %d명\n", agg.TotalEmployees)
	fmt.Fprintf(&b, "📈 **인당 평균급여**: %s원\n\n", format.Number(agg.AverageSalary))
	fmt.Fprintf(&b, "직원 급여가 전체의 %.1f%%를 차지하고 있어요.", agg.PayrollShare)
	return b.String(), []string{
		"부서별 비용 분석해줘",
		"인건비 절약 방법 알려줘",
		"HC ROI 계산해줘",
	}
}

func respondInsurance(agg analytics.Aggregates, _ bool) (string, []string) {
	rates := calculator.DefaultRates()
	example := calculator.Insurance(3000000, rates)
	var b strings.Builder
	b.WriteString("4대보험 계산이 필요하시군요! 💪\n\n")
	b.WriteString("**2024년 4대보험료율**:\n")
	fmt.Fprintf(&b, "- 국민연금: %.1f%%\n", rates.NationalPension*100)
	fmt.Fprintf(&b, "- 건강보험: %.2f%%\n", rates.HealthInsurance*100)
	fmt.Fprintf(&b, "- 고용보험: %.1f%%\n", rates.EmploymentInsurance*100)
	fmt.Fprintf(&b, "- 산재보험: %.1f%%\n\n", rates.IndustrialAccident*100)
	fmt.Fprintf(&b, "월급 300만원 기준으로 개인 부담액은 약 **%s원**이에요.", format.Number(example.Total))
	return b.String(), nil
}

func respondSavings(_ analytics.Aggregates, _ bool) (string, []string) {
	text := "인건비 절약 꿀팁을 알려드릴게요! 💡\n\n" +
		"**1. 효율적인 인력 배치** 🎯\n" +
		"- 업무량에 따른 적정 인력 운영\n" +
		"- 파트타임/계약직 활용으로 유연성 확보\n\n" +
		"**2. 스마트한 수당 관리** ⏰\n" +
		"- 연장근무 대신 효율성 향상 프로그램\n" +
		"- 재택근무로 부대비용 절감\n\n" +
		"**3. 4대보험 최적화** 🛡️\n" +
		"- 기본급 vs 복리후생 비율 조정\n" +
		"- 비과세 항목 활용"
	return text, []string{
		"4대보험 최적화 방법",
		"부서 효율성 분석",
		"수당 관리 꿀팁",
	}
}

func respondDepartments(agg analytics.Aggregates, hasData bool) (string, []string) {
	if !hasData || len(agg.DepartmentBreakdown) == 0 {
		return "부서별 분석을 위해서는 먼저 직원 데이터를 업로드해주세요! 📊", nil
	}
	var b strings.Builder
	b.WriteString("부서별 인건비 분석 결과입니다! 📈\n\n")
	for _, dept := range agg.DepartmentBreakdown {
		fmt.Fprintf(&b, "**%s**: %d명, 총 %s원\n", dept.Name, dept.Count, format.Number(dept.TotalCost))
		fmt.Fprintf(&b, "  → 평균: %s원/명\n\n", format.Number(dept.AverageCost))
	}
	b.WriteString("💡 **인사이트**: 부서별 편차를 줄이면 더 효율적인 운영이 가능해요!")
	return b.String(), nil
}

func respondROI(agg analytics.Aggregates, _ bool) (string, []string) {
	var b strings.Builder
	b.WriteString("HC ROI (인적자원 투자수익률) 분석이군요! 📊\n\n")
	b.WriteString("**ROI 계산 공식**:\n(매출 - 인건비) ÷ 인건비 × 100\n\n")
	if agg.TotalLaborCost > 0 {
		fmt.Fprintf(&b, "현재 총 인건비는 %s원입니다. 매출액을 알려주시면 ROI를 계산해드릴게요.", format.Number(agg.TotalLaborCost))
	} else {
		b.WriteString("현재 데이터로 정확한 ROI를 계산해드릴까요? 먼저 데이터를 업로드해주세요.")
	}
	return b.String(), nil
}

func respondGreeting(_ analytics.Aggregates, _ bool) (string, []string) {
	text := "안녕하세요! 반가워요! 😊\n\n" +
		"저는 PayPulse의 어시스턴트예요. 인건비 관련 어떤 것이든 편하게 물어보세요:\n" +
		"- 데이터 분석 및 인사이트\n" +
		"- 4대보험 및 각종 수당 계산\n" +
		"- 인건비 절약 방법"
	return text, []string{
		"우리 회사 인건비 현황이 어때?",
		"4대보험료 계산해줘",
		"부서별 비용 분석해줘",
	}
}

func respondFallback(_ analytics.Aggregates, _ bool) (string, []string) {
	text := "흥미로운 질문이네요! 🤔\n\n" +
		"좀 더 구체적으로 말씀해주시면 더 정확한 답변을 드릴 수 있을 것 같아요.\n\n" +
		"예를 들어:\n" +
		"- \"4대보험료 계산해줘\"\n" +
		"- \"우리 회사 인건비 분석해줘\"\n" +
		"- \"부서별 비용 분석해줘\""
	return text, nil
}
