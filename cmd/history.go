package cmd

import (
	"errors"
	"fmt"

	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/rpgo/wealth-planner/internal/output"
	"github.com/rpgo/wealth-planner/internal/store"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "List saved plans, or render one (latest when id is \"latest\")",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Report format for a rendered plan")
	historyCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Directory for report files")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if len(args) == 0 {
		ids, err := st.PlanIDs()
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "  No saved plans.")
			return nil
		}
		rows := make([][]string, 0, len(ids))
		for _, id := range ids {
			p, err := st.Plan(id)
			if err != nil {
				return err
			}
			rows = append(rows, []string{
				id,
				p.GeneratedAt.Format("2006-01-02 15:04"),
				fmt.Sprintf("%d", p.TargetAge),
				output.FormatCurrencyWith(cfg.Output.CurrencySymbol, p.Timeline.CombinedNetWorth()),
			})
		}
		fmt.Fprint(cmd.OutOrStdout(), output.RenderTable(output.Table{
			Title:   "Saved Plans",
			Headers: []string{"ID", "Generated", "Target age", "Net worth"},
			Rows:    rows,
		}))
		return nil
	}

	var plan *domain.PlanResult
	if args[0] == "latest" {
		plan, err = st.LatestPlan()
	} else {
		plan, err = st.Plan(args[0])
	}
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("no saved plan %q", args[0])
	}
	if err != nil {
		return err
	}
	return writePlan(cmd, cfg, plan)
}
