package calculation

import (
	"fmt"

	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// PhaseInput is one link of the phase chain. Params.StartingWealth is ignored; Chain
// seeds it from the previous phase.
type PhaseInput struct {
	Phase  domain.PhaseName
	Params domain.PhaseParameters
}

// Chain projects phases strictly in order. The first phase starts from startingWealth;
// every later phase starts from the previous phase's FinalWealth exactly.
func Chain(phases []PhaseInput, startingWealth decimal.Decimal) ([]domain.PhaseResult, error) {
	// Reject bad input in any phase before simulating the first one.
	for i, in := range phases {
		params := in.Params
		params.StartingWealth = decimal.Zero
		if i == 0 {
			params.StartingWealth = startingWealth
		}
		if err := ValidateParameters(params); err != nil {
			return nil, fmt.Errorf("phase %s: %w", in.Phase, err)
		}
	}

	results := make([]domain.PhaseResult, 0, len(phases))
	carry := startingWealth

	for _, in := range phases {
		params := in.Params
		params.StartingWealth = carry

		result, err := Project(params)
		if err != nil {
			return nil, fmt.Errorf("phase %s: %w", in.Phase, err)
		}
		result.Phase = in.Phase
		results = append(results, *result)
		carry = result.FinalWealth
	}

	return results, nil
}

// CombineTimelines concatenates trajectories in phase order, offsetting each phase's year
// index by the years of all earlier phases.
func CombineTimelines(results []domain.PhaseResult) domain.CombinedTimeline {
	total := 0
	for _, r := range results {
		total += len(r.Trajectory)
	}

	points := make([]domain.CombinedPoint, 0, total)
	offset := 0
	for _, r := range results {
		for _, p := range r.Trajectory {
			points = append(points, domain.CombinedPoint{
				YearIndex:        p.YearIndex + offset,
				Phase:            r.Phase,
				PhaseYear:        p.YearIndex,
				Wealth:           p.Wealth,
				TotalContributed: p.TotalContributed,
			})
		}
		offset += len(r.Trajectory)
	}

	return domain.CombinedTimeline{Points: points}
}
