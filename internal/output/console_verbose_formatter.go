package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/wealth-planner/internal/domain"
)

// ConsoleVerboseFormatter renders the summary plus every year of the combined timeline.
type ConsoleVerboseFormatter struct {
	Symbol string
}

func (c ConsoleVerboseFormatter) Name() string { return "console-verbose" }

func (c ConsoleVerboseFormatter) Format(plan *domain.PlanResult) ([]byte, error) {
	summary, err := ConsoleFormatter{Symbol: c.Symbol}.Format(plan)
	if err != nil {
		return nil, err
	}
	symbol := c.Symbol
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}

	var buf bytes.Buffer
	buf.Write(summary)
	fmt.Fprintln(&buf)

	timeline := Table{
		Title:   "Year by year",
		Headers: []string{"Year", "Age", "Phase", "Phase year", "Wealth", "Invested", "Growth"},
	}
	var prev domain.PhaseName
	for _, p := range plan.Timeline.Points {
		if prev != "" && p.Phase != prev {
			timeline.Rows = append(timeline.Rows, []string{"---"})
		}
		prev = p.Phase
		timeline.Rows = append(timeline.Rows, []string{
			intToString(p.YearIndex),
			intToString(TimelineAge(plan, p)),
			p.Phase.Title(),
			intToString(p.PhaseYear),
			FormatCurrencyWith(symbol, p.Wealth),
			FormatCurrencyWith(symbol, p.TotalContributed),
			FormatCompact(p.Wealth.Sub(p.TotalContributed)),
		})
	}
	buf.WriteString(RenderTable(timeline))

	for _, r := range plan.Results() {
		if r.InflationDrag == nil {
			continue
		}
		fmt.Fprintf(&buf, "  %s without inflation: %s (drag %s)\n", r.Phase.Title(),
			FormatCurrencyWith(symbol, *r.FinalWealthWithoutInflation), FormatCurrencyWith(symbol, *r.InflationDrag))
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "  "+headerStyle.Render("Assumptions"))
	for _, a := range GenerateAssumptions(&plan.Settings) {
		fmt.Fprintf(&buf, "  - %s\n", a)
	}
	return buf.Bytes(), nil
}
