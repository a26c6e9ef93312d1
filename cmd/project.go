package cmd

import (
	"fmt"

	"github.com/rpgo/wealth-planner/internal/calculation"
	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/rpgo/wealth-planner/internal/output"
	"github.com/shopspring/decimal"

	"github.com/spf13/cobra"
)

var (
	flagExpense      string
	flagContribution string
	flagRate         string
	flagMultiple     string
	flagStart        string
	flagInflation    string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project a single phase to its target",
	RunE:  runProject,
}

func init() {
	projectCmd.Flags().StringVar(&flagExpense, "expense", "600000", "Annual expense")
	projectCmd.Flags().StringVar(&flagContribution, "contribution", "30000", "Monthly contribution")
	projectCmd.Flags().StringVar(&flagRate, "rate", "12", "Annual return rate in percent")
	projectCmd.Flags().StringVar(&flagMultiple, "multiple", "5", "Target as a multiple of annual expense")
	projectCmd.Flags().StringVar(&flagStart, "start", "0", "Starting wealth")
	projectCmd.Flags().StringVar(&flagInflation, "inflation", "0", "Annual inflation in percent (0 disables adjustment)")
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	params, err := projectParams()
	if err != nil {
		return err
	}
	result, err := calculation.Project(params)
	if err != nil {
		return err
	}

	symbol := cfg.Output.CurrencySymbol
	money := func(d decimal.Decimal) string { return output.FormatCurrencyWith(symbol, d) }
	w := cmd.OutOrStdout()

	fmt.Fprintln(w)
	fmt.Fprintln(w, output.RenderTitle("PHASE PROJECTION"))
	fmt.Fprintln(w)
	if result.Reached() {
		fmt.Fprintf(w, "  Starting wealth %s already meets the %s target.\n\n",
			money(params.StartingWealth), money(result.FinalTargetAmount))
		return nil
	}

	fmt.Fprintf(w, "  Target %s reached in %d years (target crossed about %d months before year end).\n",
		money(result.FinalTargetAmount), result.YearsToTarget, result.RemainingMonths)
	fmt.Fprintf(w, "  Final wealth %s, invested %s, return %s (%s)\n",
		money(result.FinalWealth), money(result.TotalContributed),
		money(result.TotalReturn()), output.FormatPercentage(result.PercentageReturn()))
	if result.InflationDrag != nil {
		fmt.Fprintf(w, "  Without inflation %s (drag %s)\n",
			money(*result.FinalWealthWithoutInflation), money(*result.InflationDrag))
	}
	fmt.Fprintln(w)

	headers := []string{"Year", "Wealth", "Invested"}
	if params.InflationAdjusted() {
		headers = append(headers, "No inflation")
	}
	rows := make([][]string, 0, len(result.Trajectory))
	for _, p := range result.Trajectory {
		row := []string{fmt.Sprintf("%d", p.YearIndex), money(p.Wealth), money(p.TotalContributed)}
		if p.WealthWithoutInflation != nil {
			row = append(row, money(*p.WealthWithoutInflation))
		}
		rows = append(rows, row)
	}
	fmt.Fprint(w, output.RenderTable(output.Table{Title: "Trajectory", Headers: headers, Rows: rows}))
	return nil
}

func projectParams() (domain.PhaseParameters, error) {
	var p domain.PhaseParameters
	fields := []struct {
		flag  string
		value string
		dst   *decimal.Decimal
	}{
		{"expense", flagExpense, &p.Expense},
		{"contribution", flagContribution, &p.MonthlyContribution},
		{"rate", flagRate, &p.AnnualReturnRatePercent},
		{"multiple", flagMultiple, &p.TargetMultiple},
		{"start", flagStart, &p.StartingWealth},
		{"inflation", flagInflation, &p.AnnualInflationPercent},
	}
	for _, f := range fields {
		d, err := parseDecimalFlag(f.flag, f.value)
		if err != nil {
			return p, err
		}
		*f.dst = d
	}
	return p, nil
}

func parseDecimalFlag(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", name, value, err)
	}
	return d, nil
}
