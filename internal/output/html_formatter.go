package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report with an inline SVG wealth chart.
type HTMLFormatter struct {
	Symbol string
}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":    FormatCurrencyWith,
	"compact": FormatCompact,
	"pct":     FormatPercentage,
	"status":  SavingsStatus,
	"band":    bandLabel,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

const (
	chartWidth  = 720
	chartHeight = 240
)

func (h HTMLFormatter) Format(plan *domain.PlanResult) ([]byte, error) {
	symbol := h.Symbol
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}

	data := struct {
		*domain.PlanResult
		Symbol      string
		Rows        []PhaseRow
		Assumptions []string
		ChartWidth  int
		ChartHeight int
		WealthLine  string
		InvestLine  string
		GeneratedAt string
	}{
		PlanResult:  plan,
		Symbol:      symbol,
		Rows:        SummarizePhases(plan),
		Assumptions: GenerateAssumptions(&plan.Settings),
		ChartWidth:  chartWidth,
		ChartHeight: chartHeight,
		GeneratedAt: plan.GeneratedAt.Format("2006-01-02 15:04 MST"),
	}
	data.WealthLine, data.InvestLine = chartLines(plan.Timeline)

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// chartLines scales the timeline into SVG polyline point lists for wealth and
// cumulative contributions.
func chartLines(t domain.CombinedTimeline) (string, string) {
	if len(t.Points) == 0 {
		return "", ""
	}
	top := t.CombinedNetWorth()
	for _, p := range t.Points {
		if p.Wealth.GreaterThan(top) {
			top = p.Wealth
		}
	}
	if !top.IsPositive() {
		return "", ""
	}

	n := len(t.Points)
	var wealth, invest strings.Builder
	for i, p := range t.Points {
		x := chartWidth * (i + 1) / n
		fmt.Fprintf(&wealth, "%d,%s ", x, chartY(p.Wealth, top))
		fmt.Fprintf(&invest, "%d,%s ", x, chartY(p.TotalContributed, top))
	}
	return strings.TrimSpace(wealth.String()), strings.TrimSpace(invest.String())
}

func chartY(v, top decimal.Decimal) string {
	h := decimal.NewFromInt(chartHeight)
	return h.Sub(v.Div(top).Mul(h)).Round(1).String()
}
