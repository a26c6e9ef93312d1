package calculation

import (
	"fmt"

	"github.com/rpgo/wealth-planner/internal/domain"
	money "github.com/rpgo/wealth-planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

// DefaultSavingsBands are the recommended savings rates per phase. The abundant phase has none.
var DefaultSavingsBands = map[domain.PhaseName]domain.SavingsBand{
	domain.PhaseAccumulation: {Min: decimal.NewFromInt(50), Max: decimal.NewFromInt(75)},
	domain.PhaseGrowth:       {Min: decimal.NewFromInt(20)},
}

// SavingsRateFeedback computes contribution/salary as a 2-decimal percentage and places it
// against band. Any rate at or above band.Min counts as within the band; Position still
// reports rates above a bounded band's Max.
func SavingsRateFeedback(monthlySalary, monthlyContribution decimal.Decimal, band domain.SavingsBand) (domain.SavingsFeedback, error) {
	if monthlySalary.IsNegative() {
		return domain.SavingsFeedback{}, fmt.Errorf("%w: salary cannot be negative, got %s", ErrInvalidParameters, monthlySalary)
	}
	if monthlyContribution.IsNegative() {
		return domain.SavingsFeedback{}, fmt.Errorf("%w: contribution cannot be negative, got %s", ErrInvalidParameters, monthlyContribution)
	}
	if monthlySalary.IsZero() {
		return domain.SavingsFeedback{}, fmt.Errorf("%w: savings rate needs a non-zero salary", ErrDivisionByZero)
	}

	rate := money.NewMoneyFromDecimal(monthlyContribution).
		PercentOf(money.NewMoneyFromDecimal(monthlySalary)).
		Round(2)

	fb := domain.SavingsFeedback{
		Rate:       rate,
		WithinBand: rate.GreaterThanOrEqual(band.Min),
		Position:   domain.BandWithin,
		Shortfall:  decimal.Zero,
		Band:       band,
	}
	switch {
	case !fb.WithinBand:
		fb.Position = domain.BandBelow
		fb.Shortfall = band.Min.Sub(rate).Round(2)
	case band.Max.IsPositive() && rate.GreaterThan(band.Max):
		fb.Position = domain.BandAbove
	}
	return fb, nil
}
