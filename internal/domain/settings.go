package domain

import (
	"github.com/shopspring/decimal"
)

// Settings is the persisted user input the planner reads its parameters from.
type Settings struct {
	Age                    int             `yaml:"age" json:"age"`
	AnnualSalary           decimal.Decimal `yaml:"annual_salary" json:"annual_salary"`
	AnnualExpense          decimal.Decimal `yaml:"annual_expense" json:"annual_expense"`
	AnnualInflationPercent decimal.Decimal `yaml:"annual_inflation_percent" json:"annual_inflation_percent"`
	InflationEnabled       bool            `yaml:"inflation_enabled" json:"inflation_enabled"`
	StartingWealth         decimal.Decimal `yaml:"starting_wealth,omitempty" json:"starting_wealth,omitempty"`

	Phases map[PhaseName]PhaseSettings `yaml:"phases" json:"phases"`
}

// PhaseSettings holds the per-phase knobs. They are independent per phase, never inherited.
type PhaseSettings struct {
	MonthlyContribution     decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualReturnRatePercent decimal.Decimal `yaml:"annual_return_rate_percent" json:"annual_return_rate_percent"`
	TargetMultiple          decimal.Decimal `yaml:"target_multiple" json:"target_multiple"`
	SavingsBand             *SavingsBand    `yaml:"savings_band,omitempty" json:"savings_band,omitempty"`
}

// EffectiveInflationPercent is the inflation fed to the engine; zero when the toggle is off.
func (s *Settings) EffectiveInflationPercent() decimal.Decimal {
	if !s.InflationEnabled {
		return decimal.Zero
	}
	return s.AnnualInflationPercent
}

// OrderedPhases returns the configured phases in PhaseOrder, skipping absent ones.
func (s *Settings) OrderedPhases() []PhaseName {
	var names []PhaseName
	for _, name := range PhaseOrder {
		if _, ok := s.Phases[name]; ok {
			names = append(names, name)
		}
	}
	return names
}
