package calculation

import (
	"fmt"

	"github.com/rpgo/wealth-planner/internal/domain"
	money "github.com/rpgo/wealth-planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

// MaxSimulationYears bounds a single phase projection. A target not reached by then is
// reported as ErrNonConvergent.
const MaxSimulationYears = 1000

const (
	monthsPerYear = 12
	// Running balances keep sub-unit precision; only recorded values are whole units.
	internalScale int32 = 12
)

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalTwelve  = decimal.NewFromInt(monthsPerYear)
	decimalHundred = decimal.NewFromInt(100)
)

// ValidateParameters checks the input constraints of a single phase projection.
func ValidateParameters(p domain.PhaseParameters) error {
	switch {
	case !p.Expense.IsPositive():
		return fmt.Errorf("%w: expense must be positive, got %s", ErrInvalidParameters, p.Expense)
	case !p.TargetMultiple.IsPositive():
		return fmt.Errorf("%w: target multiple must be positive, got %s", ErrInvalidParameters, p.TargetMultiple)
	case p.MonthlyContribution.IsNegative():
		return fmt.Errorf("%w: monthly contribution cannot be negative, got %s", ErrInvalidParameters, p.MonthlyContribution)
	case p.StartingWealth.IsNegative():
		return fmt.Errorf("%w: starting wealth cannot be negative, got %s", ErrInvalidParameters, p.StartingWealth)
	case p.AnnualInflationPercent.IsNegative():
		return fmt.Errorf("%w: inflation cannot be negative, got %s%%", ErrInvalidParameters, p.AnnualInflationPercent)
	}
	return nil
}

// Project simulates month-by-month compounding until the phase target is reached and
// returns the year-by-year trajectory. It is a pure function of params.
func Project(params domain.PhaseParameters) (*domain.PhaseResult, error) {
	sim, err := simulate(params, true)
	if err != nil {
		return nil, err
	}

	result := &domain.PhaseResult{
		Params:            params,
		YearsToTarget:     sim.years,
		Trajectory:        sim.points,
		FinalWealth:       sim.finalWealth(),
		TotalContributed:  sim.totalContributed(),
		FinalTargetAmount: roundWhole(sim.target),
		RemainingMonths:   sim.remainingMonths(),
	}
	if result.Trajectory == nil {
		result.Trajectory = []domain.YearPoint{}
	}
	if sim.inflation {
		shadow := sim.finalShadow()
		drag := result.FinalWealth.Sub(shadow)
		result.FinalWealthWithoutInflation = &shadow
		result.InflationDrag = &drag
	}
	return result, nil
}

// ProjectToTotalOnly runs the same simulation as Project without recording a trajectory
// and returns only the rounded final wealth.
func ProjectToTotalOnly(params domain.PhaseParameters) (decimal.Decimal, error) {
	sim, err := simulate(params, false)
	if err != nil {
		return decimal.Zero, err
	}
	return sim.finalWealth(), nil
}

// simulation is the running state of one phase projection.
type simulation struct {
	wealth      decimal.Decimal
	contributed decimal.Decimal
	target      decimal.Decimal
	years       int
	points      []domain.YearPoint

	inflation bool
	shadow    decimal.Decimal
}

// finalWealth is the last recorded wealth, or the untouched starting wealth when no
// year was simulated.
func (s *simulation) finalWealth() decimal.Decimal {
	if s.years == 0 {
		return s.wealth
	}
	return roundWhole(s.wealth)
}

func (s *simulation) totalContributed() decimal.Decimal {
	if s.years == 0 {
		return s.contributed
	}
	return roundWhole(s.contributed)
}

func (s *simulation) finalShadow() decimal.Decimal {
	if s.years == 0 {
		return s.shadow
	}
	return roundWhole(s.shadow)
}

// remainingMonths estimates how far into the final year the target was crossed.
// Display only; never fed back into the simulation.
func (s *simulation) remainingMonths() int {
	if s.years == 0 || !s.wealth.IsPositive() {
		return 0
	}
	perMonth := s.wealth.Div(decimalTwelve)
	return int(s.wealth.Sub(s.target).Div(perMonth).Round(0).IntPart())
}

func simulate(params domain.PhaseParameters, record bool) (*simulation, error) {
	if err := ValidateParameters(params); err != nil {
		return nil, err
	}

	monthlyRate := params.AnnualReturnRatePercent.Div(decimalTwelve).Div(decimalHundred)
	growth := decimalOne.Add(monthlyRate)
	inflationFactor := decimalOne.Add(params.AnnualInflationPercent.Div(decimalHundred))

	s := &simulation{
		wealth:      params.StartingWealth,
		contributed: params.StartingWealth,
		target:      params.TargetAmount(),
		inflation:   params.InflationAdjusted(),
		shadow:      params.StartingWealth,
	}
	contribution := params.MonthlyContribution

	if s.wealth.LessThan(s.target) && contribution.IsZero() && !params.AnnualReturnRatePercent.IsPositive() {
		return nil, fmt.Errorf("%w: no contribution and a %s%% return never grow %s to %s",
			ErrNonConvergent, params.AnnualReturnRatePercent, s.wealth, s.target)
	}
	if s.wealth.LessThan(s.target) && !growth.IsPositive() {
		return nil, fmt.Errorf("%w: a %s%% return wipes out wealth every month and never reaches %s",
			ErrNonConvergent, params.AnnualReturnRatePercent, roundWhole(s.target))
	}

	for s.wealth.LessThan(s.target) {
		if s.years >= MaxSimulationYears {
			return nil, fmt.Errorf("%w: target %s not reached within %d years (wealth %s)",
				ErrNonConvergent, roundWhole(s.target), MaxSimulationYears, roundWhole(s.wealth))
		}

		for month := 0; month < monthsPerYear; month++ {
			s.wealth = s.wealth.Add(contribution).Mul(growth).Round(internalScale)
			s.contributed = s.contributed.Add(contribution)
			if s.inflation {
				s.shadow = s.shadow.Add(params.MonthlyContribution).Mul(growth).Round(internalScale)
			}
		}
		s.years++

		if record {
			point := domain.YearPoint{
				YearIndex:        s.years,
				Wealth:           roundWhole(s.wealth),
				TotalContributed: roundWhole(s.contributed),
			}
			if s.inflation {
				shadow := roundWhole(s.shadow)
				point.WealthWithoutInflation = &shadow
			}
			s.points = append(s.points, point)
		}

		if s.inflation {
			s.target = s.target.Mul(inflationFactor).Round(internalScale)
			contribution = contribution.Mul(inflationFactor).Round(internalScale)
		}
	}

	return s, nil
}

func roundWhole(d decimal.Decimal) decimal.Decimal {
	return money.NewMoneyFromDecimal(d).Whole().Decimal
}
