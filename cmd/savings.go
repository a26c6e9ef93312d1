package cmd

import (
	"fmt"

	"github.com/rpgo/wealth-planner/internal/calculation"
	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/rpgo/wealth-planner/internal/output"

	"github.com/spf13/cobra"
)

var (
	flagSalary       string
	flagSavedMonthly string
	flagPhase        string
)

var savingsCmd = &cobra.Command{
	Use:   "savings",
	Short: "Check a monthly contribution against the phase savings band",
	RunE:  runSavings,
}

func init() {
	savingsCmd.Flags().StringVar(&flagSalary, "salary", "", "Monthly salary (required)")
	savingsCmd.Flags().StringVar(&flagSavedMonthly, "contribution", "", "Monthly contribution (required)")
	savingsCmd.Flags().StringVar(&flagPhase, "phase", string(domain.PhaseAccumulation), "Phase whose band applies: accumulation or growth")
	_ = savingsCmd.MarkFlagRequired("salary")
	_ = savingsCmd.MarkFlagRequired("contribution")
	rootCmd.AddCommand(savingsCmd)
}

func runSavings(cmd *cobra.Command, _ []string) error {
	band, ok := calculation.DefaultSavingsBands[domain.PhaseName(flagPhase)]
	if !ok {
		return fmt.Errorf("phase %q has no savings band", flagPhase)
	}
	salary, err := parseDecimalFlag("salary", flagSalary)
	if err != nil {
		return err
	}
	contribution, err := parseDecimalFlag("contribution", flagSavedMonthly)
	if err != nil {
		return err
	}

	fb, err := calculation.SavingsRateFeedback(salary, contribution, band)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "  %s savings rate: %s\n", domain.PhaseName(flagPhase).Title(), output.FormatPercentage(fb.Rate))
	fmt.Fprintf(w, "  Recommended: %s\n", output.FormatPercentage(band.Min)+bandUpper(band))
	fmt.Fprintf(w, "  Status: %s\n", output.SavingsStatus(&fb))
	return nil
}

func bandUpper(b domain.SavingsBand) string {
	if b.IsFixed() {
		return " or more"
	}
	return " - " + output.FormatPercentage(b.Max)
}
