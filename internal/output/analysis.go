package output

import (
	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// PhaseRow is the flattened per-phase view shared by the tabular formatters.
type PhaseRow struct {
	Phase            domain.PhaseName
	Title            string
	StartAge         int
	EndAge           int
	Years            int
	StartingWealth   decimal.Decimal
	FinalWealth      decimal.Decimal
	TargetAmount     decimal.Decimal
	TotalContributed decimal.Decimal
	TotalReturn      decimal.Decimal
	ReturnPercent    decimal.Decimal
	InflationDrag    *decimal.Decimal
	Feedback         *domain.SavingsFeedback
}

// SummarizePhases flattens a plan into one row per phase with running ages.
func SummarizePhases(plan *domain.PlanResult) []PhaseRow {
	if plan == nil {
		return nil
	}
	age := plan.Settings.Age
	rows := make([]PhaseRow, 0, len(plan.Phases))
	for _, pr := range plan.Phases {
		r := pr.Result
		rows = append(rows, PhaseRow{
			Phase:            r.Phase,
			Title:            r.Phase.Title(),
			StartAge:         age,
			EndAge:           age + r.YearsToTarget,
			Years:            r.YearsToTarget,
			StartingWealth:   r.Params.StartingWealth,
			FinalWealth:      r.FinalWealth,
			TargetAmount:     r.FinalTargetAmount,
			TotalContributed: r.TotalContributed,
			TotalReturn:      r.TotalReturn(),
			ReturnPercent:    r.PercentageReturn(),
			InflationDrag:    r.InflationDrag,
			Feedback:         pr.Feedback,
		})
		age += r.YearsToTarget
	}
	return rows
}

// TimelineAge is the age at the end of a combined timeline year.
func TimelineAge(plan *domain.PlanResult, p domain.CombinedPoint) int {
	return plan.Settings.Age + p.YearIndex
}

// SavingsStatus renders feedback as a short label, empty without feedback.
func SavingsStatus(fb *domain.SavingsFeedback) string {
	if fb == nil {
		return ""
	}
	switch fb.Position {
	case domain.BandBelow:
		return "below by " + FormatPercentage(fb.Shortfall)
	case domain.BandAbove:
		return "above band"
	default:
		return "within band"
	}
}
