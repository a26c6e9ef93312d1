package calculation

import (
	"fmt"

	"github.com/rpgo/wealth-planner/internal/domain"
	money "github.com/rpgo/wealth-planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Insights produces the explanatory lines shown next to a plan: progress per phase,
// inflation drag, investment growth and savings-rate feedback.
func Insights(plan *domain.PlanResult) []string {
	if plan == nil || len(plan.Phases) == 0 {
		return nil
	}

	goal := plan.Phases[len(plan.Phases)-1].Result.FinalTargetAmount
	age := plan.Settings.Age
	var lines []string

	for _, pr := range plan.Phases {
		r := pr.Result
		title := r.Phase.Title()
		age += r.YearsToTarget

		if r.Reached() {
			lines = append(lines, fmt.Sprintf("%s: your starting wealth of %s already meets the %s target.",
				title, fmtMoney(r.FinalWealth), fmtMoney(r.FinalTargetAmount)))
			continue
		}

		progress := fmt.Sprintf("%s: complete in %d years", title, r.YearsToTarget)
		if r.RemainingMonths > 0 {
			progress += fmt.Sprintf(" (target crossed about %d months before year end)", r.RemainingMonths)
		}
		progress += fmt.Sprintf(". By age %d you will have %s", age, fmtMoney(r.FinalWealth))
		if goal.IsPositive() {
			share := r.FinalWealth.Div(goal).Mul(decimalHundred).Round(1)
			progress += fmt.Sprintf(" (%s%% of the final goal of %s)", share.StringFixed(1), fmtMoney(goal))
		}
		lines = append(lines, progress+".")

		if r.InflationDrag != nil {
			lines = append(lines, fmt.Sprintf("%s: with %s%% inflation, keeping pace adds %s over an unadjusted plan.",
				title, r.Params.AnnualInflationPercent, fmtMoney(*r.InflationDrag)))
		}

		lines = append(lines, fmt.Sprintf("%s: potential capital gains of %s (%s%%) on %s invested.",
			title, fmtMoney(r.TotalReturn()), r.PercentageReturn().StringFixed(2), fmtMoney(r.TotalContributed)))

		if pr.Feedback != nil {
			lines = append(lines, savingsLine(title, r.Params.MonthlyContribution, pr.Feedback))
		}
	}
	return lines
}

func savingsLine(title string, contribution decimal.Decimal, fb *domain.SavingsFeedback) string {
	base := fmt.Sprintf("%s: your monthly investment of %s is a %s%% savings rate",
		title, fmtMoney(contribution), fb.Rate.StringFixed(2))
	band := bandText(fb.Band)
	switch fb.Position {
	case domain.BandBelow:
		return fmt.Sprintf("%s, %s%% lower than the recommended %s.", base, fb.Shortfall.StringFixed(2), band)
	case domain.BandAbove:
		return fmt.Sprintf("%s, above the recommended %s.", base, band)
	default:
		return fmt.Sprintf("%s, within the recommended %s.", base, band)
	}
}

func bandText(b domain.SavingsBand) string {
	if b.IsFixed() {
		return b.Min.String() + "%"
	}
	return fmt.Sprintf("%s-%s%% range", b.Min, b.Max)
}

func fmtMoney(d decimal.Decimal) string {
	return money.NewMoneyFromDecimal(d).Format()
}
