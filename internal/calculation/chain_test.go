package calculation

import (
	"errors"
	"testing"

	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultChainInputs() []PhaseInput {
	expense := d(600000)
	return []PhaseInput{
		{Phase: domain.PhaseAccumulation, Params: domain.PhaseParameters{
			Expense: expense, MonthlyContribution: d(30000), AnnualReturnRatePercent: d(12), TargetMultiple: d(5),
		}},
		{Phase: domain.PhaseGrowth, Params: domain.PhaseParameters{
			Expense: expense, MonthlyContribution: d(30000), AnnualReturnRatePercent: d(12), TargetMultiple: d(25),
		}},
		{Phase: domain.PhaseAbundant, Params: domain.PhaseParameters{
			Expense: expense, AnnualReturnRatePercent: d(12), TargetMultiple: d(50),
		}},
	}
}

func TestChain_DefaultThreePhases(t *testing.T) {
	results, err := Chain(defaultChainInputs(), decimal.Zero)
	require.NoError(t, err)
	require.Len(t, results, 3)

	acc, growth, abundant := results[0], results[1], results[2]
	assert.Equal(t, domain.PhaseAccumulation, acc.Phase)
	assert.Equal(t, domain.PhaseGrowth, growth.Phase)
	assert.Equal(t, domain.PhaseAbundant, abundant.Phase)

	assert.Equal(t, 6, acc.YearsToTarget)
	assert.Equal(t, 9, growth.YearsToTarget)
	assert.Equal(t, 6, abundant.YearsToTarget)

	assert.True(t, growth.Params.StartingWealth.Equal(d(3172711)))
	assert.True(t, growth.Trajectory[0].Wealth.Equal(d(3959370)))
	assert.True(t, growth.Trajectory[0].TotalContributed.Equal(d(3532711)))
	assert.True(t, growth.FinalWealth.Equal(d(15137280)))
	assert.True(t, growth.TotalContributed.Equal(d(6412711)))

	assert.True(t, abundant.Params.StartingWealth.Equal(d(15137280)))
	assert.True(t, abundant.FinalWealth.Equal(d(30987515)))
	for _, p := range abundant.Trajectory {
		assert.True(t, p.TotalContributed.Equal(d(15137280)), "abundant phase adds no contributions")
	}
}

func TestChain_SeamsCarryFinalWealthExactly(t *testing.T) {
	results, err := Chain(defaultChainInputs(), d(125000))
	require.NoError(t, err)
	assert.True(t, results[0].Params.StartingWealth.Equal(d(125000)))
	for i := 1; i < len(results); i++ {
		assert.True(t, results[i].Params.StartingWealth.Equal(results[i-1].FinalWealth),
			"phase %s must start at %s", results[i].Phase, results[i-1].FinalWealth)
	}
}

func TestChain_IgnoresCallerStartingWealthForLaterPhases(t *testing.T) {
	inputs := defaultChainInputs()
	inputs[1].Params.StartingWealth = d(99999999)
	results, err := Chain(inputs, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, results[1].Params.StartingWealth.Equal(d(3172711)))
}

func TestChain_LaterPhaseAlreadySatisfied(t *testing.T) {
	inputs := defaultChainInputs()
	// Growth target of 4x expense is below the accumulation exit wealth.
	inputs[1].Params.TargetMultiple = d(4)
	results, err := Chain(inputs, decimal.Zero)
	require.NoError(t, err)

	assert.Equal(t, 0, results[1].YearsToTarget)
	assert.Empty(t, results[1].Trajectory)
	assert.True(t, results[1].FinalWealth.Equal(results[0].FinalWealth))
	assert.True(t, results[2].Params.StartingWealth.Equal(results[0].FinalWealth))

	timeline := CombineTimelines(results)
	assert.Equal(t, results[0].YearsToTarget+results[2].YearsToTarget, timeline.Years())
}

func TestChain_ErrorsNameThePhase(t *testing.T) {
	inputs := defaultChainInputs()
	inputs[2].Params.TargetMultiple = decimal.Zero

	results, err := Chain(inputs, decimal.Zero)
	assert.Nil(t, results)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParameters))
	assert.Contains(t, err.Error(), "phase abundant")
}

func TestChain_NonConvergentPhase(t *testing.T) {
	inputs := defaultChainInputs()
	inputs[2].Params.AnnualReturnRatePercent = decimal.Zero

	_, err := Chain(inputs, decimal.Zero)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonConvergent))
	assert.Contains(t, err.Error(), "phase abundant")
}

func TestChain_Empty(t *testing.T) {
	results, err := Chain(nil, decimal.Zero)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, CombineTimelines(results).Points)
}

func TestCombineTimelines_ContinuousIndices(t *testing.T) {
	results, err := Chain(defaultChainInputs(), decimal.Zero)
	require.NoError(t, err)

	timeline := CombineTimelines(results)
	require.Equal(t, 21, timeline.Years())

	for i, p := range timeline.Points {
		assert.Equal(t, i+1, p.YearIndex, "combined index must be gap-free")
	}

	// Phase-local year is preserved.
	assert.Equal(t, domain.PhaseAccumulation, timeline.Points[5].Phase)
	assert.Equal(t, 6, timeline.Points[5].PhaseYear)
	assert.Equal(t, domain.PhaseGrowth, timeline.Points[6].Phase)
	assert.Equal(t, 1, timeline.Points[6].PhaseYear)
	assert.Equal(t, 7, timeline.Points[6].YearIndex)
	assert.Equal(t, domain.PhaseAbundant, timeline.Points[15].Phase)
	assert.Equal(t, 16, timeline.Points[15].YearIndex)

	assert.True(t, timeline.CombinedNetWorth().Equal(d(30987515)))
}

func TestCombineTimelines_ConcatenationPreservesValues(t *testing.T) {
	results, err := Chain(defaultChainInputs(), decimal.Zero)
	require.NoError(t, err)
	timeline := CombineTimelines(results)

	n := 0
	for _, r := range results {
		for _, p := range r.Trajectory {
			cp := timeline.Points[n]
			assert.True(t, cp.Wealth.Equal(p.Wealth))
			assert.True(t, cp.TotalContributed.Equal(p.TotalContributed))
			assert.Equal(t, r.Phase, cp.Phase)
			n++
		}
	}
	assert.Equal(t, n, len(timeline.Points))
}

func TestCombineTimelines_Idempotent(t *testing.T) {
	results, err := Chain(defaultChainInputs(), decimal.Zero)
	require.NoError(t, err)
	before, err := Chain(defaultChainInputs(), decimal.Zero)
	require.NoError(t, err)

	first := CombineTimelines(results)
	second := CombineTimelines(results)
	assert.Equal(t, first, second)
	assert.Equal(t, before, results, "combining must not modify its input")
}

func TestCombineTimelines_NonDecreasingAcrossSeams(t *testing.T) {
	for _, inflation := range []decimal.Decimal{decimal.Zero, d(6)} {
		t.Run("inflation "+inflation.String(), func(t *testing.T) {
			inputs := defaultChainInputs()
			for i := range inputs {
				inputs[i].Params.AnnualInflationPercent = inflation
			}
			results, err := Chain(inputs, decimal.Zero)
			require.NoError(t, err)

			timeline := CombineTimelines(results)
			require.NotEmpty(t, timeline.Points)
			for i := 1; i < len(timeline.Points); i++ {
				prev, cur := timeline.Points[i-1], timeline.Points[i]
				assert.True(t, cur.Wealth.GreaterThanOrEqual(prev.Wealth),
					"year %d (%s) wealth %s fell below %s", cur.YearIndex, cur.Phase, cur.Wealth, prev.Wealth)
			}
		})
	}
}
