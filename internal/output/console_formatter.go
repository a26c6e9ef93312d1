package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/wealth-planner/internal/domain"
)

// ConsoleFormatter renders a per-phase summary table followed by insights.
type ConsoleFormatter struct {
	Symbol string
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(plan *domain.PlanResult) ([]byte, error) {
	symbol := c.Symbol
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	var buf bytes.Buffer

	fmt.Fprintln(&buf, RenderTitle("WEALTH PHASE PLAN"))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "  Age %d  |  Salary %s  |  Expense %s a year\n",
		plan.Settings.Age,
		FormatCurrencyWith(symbol, plan.Settings.AnnualSalary),
		FormatCurrencyWith(symbol, plan.Settings.AnnualExpense))
	fmt.Fprintln(&buf)

	rows := SummarizePhases(plan)
	table := Table{
		Title:   "Phases",
		Headers: []string{"Phase", "Ages", "Years", "Start", "Target", "Final", "Invested", "Return"},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			r.Title,
			fmt.Sprintf("%d-%d", r.StartAge, r.EndAge),
			intToString(r.Years),
			FormatCurrencyWith(symbol, r.StartingWealth),
			FormatCurrencyWith(symbol, r.TargetAmount),
			FormatCurrencyWith(symbol, r.FinalWealth),
			FormatCurrencyWith(symbol, r.TotalContributed),
			FormatPercentage(r.ReturnPercent),
		})
	}
	buf.WriteString(RenderTable(table))
	fmt.Fprintln(&buf)

	var savings Table
	savings.Title = "Savings rate"
	savings.Headers = []string{"Phase", "Rate", "Recommended", "Status"}
	for _, r := range rows {
		if r.Feedback == nil {
			continue
		}
		status := SavingsStatus(r.Feedback)
		if r.Feedback.WithinBand {
			status = goodStyle.Render(status)
		} else {
			status = warnStyle.Render(status)
		}
		savings.Rows = append(savings.Rows, []string{
			r.Title,
			FormatPercentage(r.Feedback.Rate),
			bandLabel(r.Feedback.Band),
			status,
		})
	}
	if len(savings.Rows) > 0 {
		buf.WriteString(RenderTable(savings))
		fmt.Fprintln(&buf)
	}

	fmt.Fprintf(&buf, "  Final phase begins at age %d; target reached at age %d.\n", plan.AbundantPhaseAge, plan.TargetAge)
	fmt.Fprintf(&buf, "  Combined net worth after %d years: %s\n",
		plan.Timeline.Years(), FormatCurrencyWith(symbol, plan.Timeline.CombinedNetWorth()))

	if len(plan.Insights) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "  "+headerStyle.Render("Insights"))
		for _, line := range plan.Insights {
			fmt.Fprintf(&buf, "  - %s\n", line)
		}
	}
	return buf.Bytes(), nil
}

func bandLabel(b domain.SavingsBand) string {
	if b.IsFixed() {
		return FormatPercentage(b.Min)
	}
	return FormatPercentage(b.Min) + " - " + FormatPercentage(b.Max)
}
