package cmd

import (
	"fmt"
	"os"

	"github.com/rpgo/wealth-planner/internal/calculation"
	"github.com/rpgo/wealth-planner/internal/config"
	"github.com/rpgo/wealth-planner/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagVerbose bool
	flagStore   string
)

var rootCmd = &cobra.Command{
	Use:           "wealthplan",
	Short:         "Wealth phase planner",
	Long:          "Project how long each wealth phase takes to reach its target and chain the phases into one plan.",
	RunE:          runPlan,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "App config file (default "+config.ConfigPath()+")")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log engine progress to stderr")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "Settings/result store path (overrides config)")

	addPlanFlags(rootCmd)
}

// loadAppConfig resolves the app config, applying the --store override.
func loadAppConfig() (config.AppConfig, error) {
	cfg, err := config.LoadAppConfig(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagStore != "" {
		cfg.Store.Path = flagStore
	}
	return cfg, nil
}

// openStore opens the store named by the resolved app config.
func openStore(cfg config.AppConfig) (*store.Store, error) {
	st, err := store.Open(cfg.StorePath())
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", cfg.StorePath(), err)
	}
	return st, nil
}

func newEngine(cmd *cobra.Command) *calculation.PlanEngine {
	pe := calculation.NewPlanEngine()
	pe.SetLogger(newLogger(cmd.ErrOrStderr(), flagVerbose))
	return pe
}
