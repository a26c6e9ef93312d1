package domain

import (
	"github.com/shopspring/decimal"
)

// PhaseName identifies a life-stage segment of the wealth plan.
type PhaseName string

const (
	PhaseAccumulation PhaseName = "accumulation"
	PhaseGrowth       PhaseName = "growth"
	PhaseAbundant     PhaseName = "abundant"
)

// PhaseOrder is the declaration order phases are chained in.
var PhaseOrder = []PhaseName{PhaseAccumulation, PhaseGrowth, PhaseAbundant}

// Title returns the display name of the phase.
func (p PhaseName) Title() string {
	switch p {
	case PhaseAccumulation:
		return "Accumulation Phase"
	case PhaseGrowth:
		return "Growth Phase"
	case PhaseAbundant:
		return "Abundant Phase"
	default:
		return string(p)
	}
}

// PhaseParameters are the inputs to one phase's projection. Rates are percentages (12 = 12%).
type PhaseParameters struct {
	Expense                 decimal.Decimal `yaml:"expense" json:"expense"`
	MonthlyContribution     decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualReturnRatePercent decimal.Decimal `yaml:"annual_return_rate_percent" json:"annual_return_rate_percent"`
	TargetMultiple          decimal.Decimal `yaml:"target_multiple" json:"target_multiple"`
	StartingWealth          decimal.Decimal `yaml:"starting_wealth" json:"starting_wealth"`
	AnnualInflationPercent  decimal.Decimal `yaml:"annual_inflation_percent" json:"annual_inflation_percent"`
}

// TargetAmount is the wealth target before any inflation adjustment.
func (p PhaseParameters) TargetAmount() decimal.Decimal {
	return p.Expense.Mul(p.TargetMultiple)
}

// InflationAdjusted reports whether the target and contribution grow each year.
func (p PhaseParameters) InflationAdjusted() bool {
	return p.AnnualInflationPercent.IsPositive()
}

// YearPoint is one row of a phase trajectory, recorded at the end of the year.
type YearPoint struct {
	YearIndex        int             `json:"year_index"`
	Wealth           decimal.Decimal `json:"wealth"`
	TotalContributed decimal.Decimal `json:"total_contributed"`
	// Only set when inflation adjustment is active; same monthly rate, unadjusted contribution.
	WealthWithoutInflation *decimal.Decimal `json:"wealth_without_inflation,omitempty"`
}

// PhaseResult is the projection of a single phase.
type PhaseResult struct {
	Phase             PhaseName       `json:"phase"`
	Params            PhaseParameters `json:"params"`
	YearsToTarget     int             `json:"years_to_target"`
	Trajectory        []YearPoint     `json:"trajectory"`
	FinalWealth       decimal.Decimal `json:"final_wealth"`
	TotalContributed  decimal.Decimal `json:"total_contributed"`
	FinalTargetAmount decimal.Decimal `json:"final_target_amount"`
	// Display-only estimate of how far into the final year the target was crossed.
	RemainingMonths int `json:"remaining_months"`

	FinalWealthWithoutInflation *decimal.Decimal `json:"final_wealth_without_inflation,omitempty"`
	InflationDrag               *decimal.Decimal `json:"inflation_drag,omitempty"`
}

// TotalReturn is growth earned on top of contributions (including carried-in wealth).
func (r *PhaseResult) TotalReturn() decimal.Decimal {
	return r.FinalWealth.Sub(r.TotalContributed)
}

// PercentageReturn is TotalReturn as a 2-decimal percentage of TotalContributed.
func (r *PhaseResult) PercentageReturn() decimal.Decimal {
	if r.TotalContributed.IsZero() {
		return decimal.Zero
	}
	return r.TotalReturn().Div(r.TotalContributed).Mul(decimal.NewFromInt(100)).Round(2)
}

// Reached reports whether the phase needed no simulated years at all.
func (r *PhaseResult) Reached() bool {
	return r.YearsToTarget == 0
}

// CombinedPoint is a YearPoint re-indexed onto the continuous multi-phase timeline.
type CombinedPoint struct {
	YearIndex        int             `json:"year_index"`
	Phase            PhaseName       `json:"phase"`
	PhaseYear        int             `json:"phase_year"`
	Wealth           decimal.Decimal `json:"wealth"`
	TotalContributed decimal.Decimal `json:"total_contributed"`
}

// CombinedTimeline concatenates phase trajectories with a gap-free 1-based year index.
type CombinedTimeline struct {
	Points []CombinedPoint `json:"points"`
}

// Years is the total number of simulated years across all phases.
func (c CombinedTimeline) Years() int {
	return len(c.Points)
}

// CombinedNetWorth is the wealth at the end of the timeline, zero when empty.
func (c CombinedTimeline) CombinedNetWorth() decimal.Decimal {
	if len(c.Points) == 0 {
		return decimal.Zero
	}
	return c.Points[len(c.Points)-1].Wealth
}

// SavingsBand is a recommended savings-rate range in percent. A zero Max is open-ended.
type SavingsBand struct {
	Min decimal.Decimal `yaml:"min" json:"min"`
	Max decimal.Decimal `yaml:"max,omitempty" json:"max,omitempty"`
}

// IsFixed reports whether the band is a single recommended floor.
func (b SavingsBand) IsFixed() bool {
	return b.Max.IsZero() || b.Max.Equal(b.Min)
}

// BandPosition places a savings rate relative to its band.
type BandPosition string

const (
	BandBelow  BandPosition = "below"
	BandWithin BandPosition = "within"
	BandAbove  BandPosition = "above"
)

// SavingsFeedback classifies a monthly contribution against a phase's recommended band.
type SavingsFeedback struct {
	Rate       decimal.Decimal `json:"rate"`
	WithinBand bool            `json:"within_band"`
	Position   BandPosition    `json:"position"`
	Shortfall  decimal.Decimal `json:"shortfall"`
	Band       SavingsBand     `json:"band"`
}
