package cmd

import (
	"errors"
	"fmt"

	"github.com/rpgo/wealth-planner/internal/config"
	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/rpgo/wealth-planner/internal/output"
	"github.com/rpgo/wealth-planner/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagSettings  string
	flagFromStore bool
	flagFormat    string
	flagOut       string
	flagSave      bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build the three-phase wealth plan",
	Long: "Build the wealth plan from a settings file, the store, or the defaults.\n" +
		"Console formats print to stdout unless --out is given; other formats write files.",
	RunE: runPlan,
}

func init() {
	addPlanFlags(planCmd)
	rootCmd.AddCommand(planCmd)
}

func addPlanFlags(c *cobra.Command) {
	c.Flags().StringVarP(&flagSettings, "settings", "s", "", "Settings file (YAML or JSON)")
	c.Flags().BoolVar(&flagFromStore, "from-store", false, "Read settings from the store")
	c.Flags().StringVarP(&flagFormat, "format", "f", "", "Report format: "+output.SupportedFormatsHelp())
	c.Flags().StringVarP(&flagOut, "out", "o", "", "Directory for report files")
	c.Flags().BoolVar(&flagSave, "save", false, "Save the plan and its settings to the store")
}

func runPlan(cmd *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	settings, source, err := resolveSettings(cfg)
	if err != nil {
		return err
	}

	plan, err := newEngine(cmd).BuildPlan(cmd.Context(), settings)
	if err != nil {
		return fmt.Errorf("building plan from %s: %w", source, err)
	}

	if flagSave {
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.SaveSettings(settings); err != nil {
			return err
		}
		id, err := st.SavePlan(plan)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "  Saved plan %s\n", id)
	}

	return writePlan(cmd, cfg, plan)
}

// resolveSettings picks settings from --settings, then --from-store, then the defaults.
func resolveSettings(cfg config.AppConfig) (*domain.Settings, string, error) {
	parser := config.NewInputParser()
	switch {
	case flagSettings != "":
		s, err := parser.LoadFromFile(flagSettings)
		if err != nil {
			return nil, "", err
		}
		return s, flagSettings, nil
	case flagFromStore:
		st, err := openStore(cfg)
		if err != nil {
			return nil, "", err
		}
		defer st.Close()
		s, err := st.LoadSettings()
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", fmt.Errorf("no settings in store %s; run `wealthplan settings init` first", cfg.StorePath())
		}
		if err != nil {
			return nil, "", err
		}
		if err := parser.ValidateSettings(s); err != nil {
			return nil, "", fmt.Errorf("stored settings: %w", err)
		}
		return s, "store", nil
	default:
		return config.DefaultSettings(), "defaults", nil
	}
}

// writePlan renders plan in the chosen format to stdout or report files.
func writePlan(cmd *cobra.Command, cfg config.AppConfig, plan *domain.PlanResult) error {
	format := flagFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	opts := output.Options{CurrencySymbol: cfg.Output.CurrencySymbol}
	name := output.NormalizeFormatName(format)

	if flagOut == "" && (name == "console" || name == "console-verbose") {
		f, err := output.NewFormatter(name, opts)
		if err != nil {
			return err
		}
		data, err := f.Format(plan)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	dir := flagOut
	if dir == "" {
		dir = cfg.Output.Directory
	}
	paths, err := output.GenerateReport(plan, format, dir, opts)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "  Wrote %s\n", p)
	}
	return nil
}
