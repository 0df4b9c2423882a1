package report

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"paypulse/app/analytics"
	apperrors "paypulse/internal/errors"
	"paypulse/internal/format"
)

// Generator writes labor-cost summary reports as PDF files.
// Labels stay ASCII because the built-in PDF fonts carry no Hangul
// glyphs; amounts keep their KRW formatting.
type Generator struct {
	outputDir string
}

func NewGenerator(outputDir string) *Generator {
	return &Generator{outputDir: outputDir}
}

// Summary renders the aggregate snapshot into a one-page PDF and
// returns the path of the written file.
func (g *Generator) Summary(agg analytics.Aggregates, generatedAt time.Time) (string, error) {
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", apperrors.Wrap(err, "failed to create report directory")
	}
	filePath := filepath.Join(g.outputDir,
		fmt.Sprintf("labor-cost-%s.pdf", generatedAt.Format("20060102-150405")))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Labor Cost Summary")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", generatedAt.Format("2006-01-02 15:04")))
	pdf.Ln(10)

	pdf.Cell(0, 8, fmt.Sprintf("Total labor cost: %s KRW", format.Number(agg.TotalLaborCost)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Payroll: %s KRW (%.1f%%)", format.Number(agg.TotalPayrollCost), agg.PayrollShare))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Outsourcing fees: %s KRW (%.1f%%)", format.Number(agg.TotalFeeCost), agg.FeeShare))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Employees: %d, Companies: %d", agg.TotalEmployees, agg.TotalCompanies))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Average salary: %s KRW", format.Number(agg.AverageSalary)))
	pdf.Ln(10)

	if len(agg.DepartmentBreakdown) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "By Department")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 11)
		for _, dept := range agg.DepartmentBreakdown {
			pdf.Cell(0, 7, fmt.Sprintf("%d staff, total %s KRW, avg %s KRW",
				dept.Count, format.Number(dept.TotalCost), format.Number(dept.AverageCost)))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	if len(agg.CategoryBreakdown) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Fee Categories")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 11)
		for _, cat := range agg.CategoryBreakdown {
			pdf.Cell(0, 7, fmt.Sprintf("%d contracts, total %s KRW",
				cat.Count, format.Number(cat.TotalCost)))
			pdf.Ln(6)
		}
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", apperrors.Wrap(err, "failed to write report PDF")
	}
	log.Printf("[Report] Wrote summary report to %s", filePath)
	return filePath, nil
}
