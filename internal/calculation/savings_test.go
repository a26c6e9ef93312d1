package calculation

import (
	"errors"
	"testing"

	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavingsRateFeedback(t *testing.T) {
	acc := DefaultSavingsBands[domain.PhaseAccumulation]
	growth := DefaultSavingsBands[domain.PhaseGrowth]

	tests := []struct {
		name         string
		salary       decimal.Decimal
		contribution decimal.Decimal
		band         domain.SavingsBand
		rate         string
		within       bool
		position     domain.BandPosition
		shortfall    string
	}{
		{"accumulation below", d(100000), d(30000), acc, "30.00", false, domain.BandBelow, "20.00"},
		{"accumulation at min", d(100000), d(50000), acc, "50.00", true, domain.BandWithin, "0.00"},
		{"accumulation inside", d(100000), d(60000), acc, "60.00", true, domain.BandWithin, "0.00"},
		{"accumulation at max", d(100000), d(75000), acc, "75.00", true, domain.BandWithin, "0.00"},
		{"accumulation above max still within", d(100000), d(90000), acc, "90.00", true, domain.BandAbove, "0.00"},
		{"growth below", d(100000), d(10000), growth, "10.00", false, domain.BandBelow, "10.00"},
		{"growth exactly fixed", d(100000), d(20000), growth, "20.00", true, domain.BandWithin, "0.00"},
		{"growth well above fixed", d(100000), d(80000), growth, "80.00", true, domain.BandWithin, "0.00"},
		{"zero contribution", d(100000), decimal.Zero, growth, "0.00", false, domain.BandBelow, "20.00"},
		{"repeating fraction", decimal.RequireFromString("208333.33"), d(30000), acc, "14.40", false, domain.BandBelow, "35.60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb, err := SavingsRateFeedback(tt.salary, tt.contribution, tt.band)
			require.NoError(t, err)
			assert.Equal(t, tt.rate, fb.Rate.StringFixed(2))
			assert.Equal(t, tt.within, fb.WithinBand)
			assert.Equal(t, tt.position, fb.Position)
			assert.Equal(t, tt.shortfall, fb.Shortfall.StringFixed(2))
			assert.True(t, fb.Band.Min.Equal(tt.band.Min))
		})
	}
}

func TestSavingsRateFeedback_DefaultSalary(t *testing.T) {
	monthly := d(2500000).Div(d(12))
	fb, err := SavingsRateFeedback(monthly, d(30000), DefaultSavingsBands[domain.PhaseAccumulation])
	require.NoError(t, err)
	assert.Equal(t, "14.40", fb.Rate.StringFixed(2))
	assert.Equal(t, "35.60", fb.Shortfall.StringFixed(2))

	fb, err = SavingsRateFeedback(monthly, d(30000), DefaultSavingsBands[domain.PhaseGrowth])
	require.NoError(t, err)
	assert.Equal(t, "5.60", fb.Shortfall.StringFixed(2))
}

func TestSavingsRateFeedback_Errors(t *testing.T) {
	band := DefaultSavingsBands[domain.PhaseGrowth]

	_, err := SavingsRateFeedback(decimal.Zero, d(30000), band)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDivisionByZero))
	assert.Equal(t, KindDivisionByZero, ErrorKind(err))

	_, err = SavingsRateFeedback(d(-1), d(30000), band)
	assert.True(t, errors.Is(err, ErrInvalidParameters))

	_, err = SavingsRateFeedback(d(100000), d(-1), band)
	assert.True(t, errors.Is(err, ErrInvalidParameters))
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, KindInvalidParameters, ErrorKind(ErrInvalidParameters))
	assert.Equal(t, KindNonConvergent, ErrorKind(errors.Join(errors.New("ctx"), ErrNonConvergent)))
	assert.Equal(t, KindInternal, ErrorKind(errors.New("boom")))
}
