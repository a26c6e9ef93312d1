package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/rpgo/wealth-planner/internal/domain"
)

// pdfSymbol replaces the rupee sign, which the core PDF fonts cannot encode.
const pdfSymbol = "Rs. "

const (
	pdfMarginLeft   = 15.0
	pdfMarginTop    = 15.0
	pdfMarginRight  = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = 210.0 - pdfMarginLeft - pdfMarginRight
)

// PDFFormatter renders an A4 report of the phase summary, insights and timeline.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

// pdfText converts report text to the core font encoding.
func pdfText(s string) string {
	return strings.ReplaceAll(s, DefaultCurrencySymbol, pdfSymbol)
}

func (p PDFFormatter) Format(plan *domain.PlanResult) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, pdfMarginBottom)
	pdf.SetTitle("Wealth Phase Plan", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(36, 131, 123)
	pdf.CellFormat(pdfContentWidth, 12, "Wealth Phase Plan", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(pdfContentWidth, 6, fmt.Sprintf("Generated %s  |  Age %d  |  Expense %s a year",
		plan.GeneratedAt.Format("2006-01-02"), plan.Settings.Age,
		FormatCurrencyWith(pdfSymbol, plan.Settings.AnnualExpense)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	rows := SummarizePhases(plan)
	p.sectionHeader(pdf, "Phases")
	headers := []string{"Phase", "Ages", "Years", "Target", "Final wealth", "Invested", "Return"}
	widths := []float64{38, 18, 14, 30, 30, 30, 20}
	p.tableHeader(pdf, headers, widths)
	pdf.SetFont("Arial", "", 8)
	for i, r := range rows {
		p.tableRow(pdf, widths, "LRRRRRR", i, []string{
			r.Title,
			fmt.Sprintf("%d-%d", r.StartAge, r.EndAge),
			intToString(r.Years),
			FormatCurrencyWith(pdfSymbol, r.TargetAmount),
			FormatCurrencyWith(pdfSymbol, r.FinalWealth),
			FormatCurrencyWith(pdfSymbol, r.TotalContributed),
			FormatPercentage(r.ReturnPercent),
		})
	}
	pdf.Ln(3)
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(50, 50, 50)
	pdf.MultiCell(pdfContentWidth, 5, fmt.Sprintf("Final phase begins at age %d; target reached at age %d. Combined net worth: %s.",
		plan.AbundantPhaseAge, plan.TargetAge, FormatCurrencyWith(pdfSymbol, plan.Timeline.CombinedNetWorth())), "", "L", false)
	pdf.Ln(3)

	if len(plan.Insights) > 0 {
		p.sectionHeader(pdf, "Insights")
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(50, 50, 50)
		for _, line := range plan.Insights {
			pdf.MultiCell(pdfContentWidth, 5, "- "+pdfText(line), "", "L", false)
		}
		pdf.Ln(3)
	}

	if len(plan.Timeline.Points) > 0 {
		if pdf.GetY() > 200 {
			pdf.AddPage()
		}
		p.sectionHeader(pdf, "Year by year")
		headers = []string{"Year", "Age", "Phase", "Wealth", "Invested"}
		widths = []float64{18, 18, 48, 48, 48}
		p.tableHeader(pdf, headers, widths)
		pdf.SetFont("Arial", "", 8)
		for i, pt := range plan.Timeline.Points {
			if pdf.GetY() > 265 {
				pdf.AddPage()
				p.tableHeader(pdf, headers, widths)
				pdf.SetFont("Arial", "", 8)
			}
			p.tableRow(pdf, widths, "RRLRR", i, []string{
				intToString(pt.YearIndex),
				intToString(TimelineAge(plan, pt)),
				pt.Phase.Title(),
				FormatCurrencyWith(pdfSymbol, pt.Wealth),
				FormatCurrencyWith(pdfSymbol, pt.TotalContributed),
			})
		}
	}

	pdf.Ln(4)
	p.sectionHeader(pdf, "Assumptions")
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(90, 90, 90)
	for _, a := range GenerateAssumptions(&plan.Settings) {
		pdf.MultiCell(pdfContentWidth, 4.5, "- "+pdfText(a), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p PDFFormatter) sectionHeader(pdf *fpdf.Fpdf, title string) {
	pdf.SetFillColor(36, 131, 123)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(pdfContentWidth, 7, title, "", 1, "L", true, 0, "")
	pdf.Ln(1)
}

func (p PDFFormatter) tableHeader(pdf *fpdf.Fpdf, headers []string, widths []float64) {
	pdf.SetFillColor(242, 240, 229)
	pdf.SetTextColor(28, 27, 26)
	pdf.SetFont("Arial", "B", 8)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 6, h, "B", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

// tableRow draws one zebra-striped row; aligns holds one L/C/R letter per cell.
func (p PDFFormatter) tableRow(pdf *fpdf.Fpdf, widths []float64, aligns string, index int, cells []string) {
	if index%2 == 0 {
		pdf.SetFillColor(252, 252, 252)
	} else {
		pdf.SetFillColor(255, 255, 255)
	}
	pdf.SetTextColor(50, 50, 50)
	for i, c := range cells {
		pdf.CellFormat(widths[i], 5, c, "", 0, aligns[i:i+1], true, 0, "")
	}
	pdf.Ln(-1)
}
