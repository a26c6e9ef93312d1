package main

import (
	"fmt"
	"os"

	calc "github.com/rpgo/wealth-planner/internal/calculation"
	"github.com/rpgo/wealth-planner/internal/config"
)

// Prints the chained phase trajectories of a settings file as CSV, then checks seams and
// the totals-only projection against each phase's final wealth.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_phases <settings-file>")
		return
	}
	p := config.NewInputParser()
	settings, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	results, err := calc.Chain(calc.PhaseInputs(settings), settings.StartingWealth)
	if err != nil {
		panic(err)
	}

	fmt.Println("Year,Phase,PhaseYear,Wealth,TotalContributed,WealthWithoutInflation")
	offset := 0
	for _, r := range results {
		for _, pt := range r.Trajectory {
			shadow := ""
			if pt.WealthWithoutInflation != nil {
				shadow = pt.WealthWithoutInflation.StringFixed(0)
			}
			fmt.Printf("%d,%s,%d,%s,%s,%s\n", offset+pt.YearIndex, r.Phase, pt.YearIndex,
				pt.Wealth.StringFixed(0), pt.TotalContributed.StringFixed(0), shadow)
		}
		offset += len(r.Trajectory)
	}

	seed := settings.StartingWealth
	for _, r := range results {
		total, err := calc.ProjectToTotalOnly(r.Params)
		fmt.Printf("\n%s: start=%s years=%d final=%s target=%s totalOnly=%s match=%v err=%v\n",
			r.Phase, r.Params.StartingWealth.StringFixed(0), r.YearsToTarget, r.FinalWealth.StringFixed(0),
			r.FinalTargetAmount.StringFixed(0), total.StringFixed(0), total.Equal(r.FinalWealth), err)
		if !r.Params.StartingWealth.Equal(seed) {
			fmt.Printf("  seam mismatch: expected start %s\n", seed.StringFixed(0))
		}
		seed = r.FinalWealth
	}

	timeline := calc.CombineTimelines(results)
	fmt.Printf("\nYears: %d  Combined net worth: %s\n", timeline.Years(), timeline.CombinedNetWorth().StringFixed(0))
}
