package output

import (
	"fmt"

	"github.com/rpgo/wealth-planner/internal/domain"
)

// DefaultAssumptions lists the modeling assumptions every plan shares.
var DefaultAssumptions = []string{
	"Returns compound monthly at the annual rate divided by 12",
	"Contributions are invested at the start of each month",
	"Wealth is checked against the target once per year",
	"Each phase starts with the previous phase's final wealth",
}

// GenerateAssumptions creates the assumptions list from the plan's settings.
func GenerateAssumptions(settings *domain.Settings) []string {
	out := append([]string(nil), DefaultAssumptions...)
	out = append(out, fmt.Sprintf("Annual expense basis: %s", FormatCurrency(settings.AnnualExpense)))
	if settings.InflationEnabled {
		out = append(out, fmt.Sprintf("Inflation: %s%% a year, applied to targets and contributions", settings.AnnualInflationPercent))
	} else {
		out = append(out, "Inflation: not applied")
	}
	for _, name := range settings.OrderedPhases() {
		ps := settings.Phases[name]
		out = append(out, fmt.Sprintf("%s: %s%% return, target %sx expense",
			name.Title(), ps.AnnualReturnRatePercent, ps.TargetMultiple))
	}
	return out
}
