// Package cmd implements the wealthplan CLI commands.
package cmd

import (
	"fmt"

	"github.com/rpgo/wealth-planner/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	path := flagConfig
	if path == "" {
		path = config.ConfigPath()
	}
	fmt.Fprintf(w, "  Config file: %s\n", path)
	if config.AppConfigExists(flagConfig) {
		fmt.Fprintln(w, "  Status: loaded")
	} else {
		fmt.Fprintln(w, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Output]")
	fmt.Fprintf(w, "    Default format:  %s\n", cfg.Output.DefaultFormat)
	fmt.Fprintf(w, "    Directory:       %s\n", cfg.Output.Directory)
	fmt.Fprintf(w, "    Currency symbol: %s\n", cfg.Output.CurrencySymbol)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Store]")
	fmt.Fprintf(w, "    Path: %s\n", cfg.StorePath())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Server]")
	fmt.Fprintf(w, "    Address: %s\n", cfg.Server.Addr)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  Run `wealthplan config init` to write a config file.")
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if config.AppConfigExists(flagConfig) {
		return fmt.Errorf("config file already exists; edit it directly")
	}
	if err := config.SaveAppConfig(flagConfig, config.DefaultAppConfig()); err != nil {
		return err
	}
	path := flagConfig
	if path == "" {
		path = config.ConfigPath()
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Wrote %s\n", path)
	return nil
}
