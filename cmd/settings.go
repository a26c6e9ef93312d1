package cmd

import (
	"errors"
	"fmt"

	"github.com/rpgo/wealth-planner/internal/config"
	"github.com/rpgo/wealth-planner/internal/store"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage plan settings in the store",
}

var settingsInitCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write default settings to the store, or to a YAML file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSettingsInit,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored settings as YAML",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Validate a settings file and save it to the store",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsImport,
}

var settingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all settings and saved plans from the store",
	Args:  cobra.NoArgs,
	RunE:  runSettingsClear,
}

func init() {
	settingsCmd.AddCommand(settingsInitCmd, settingsShowCmd, settingsImportCmd, settingsClearCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsInit(cmd *cobra.Command, args []string) error {
	defaults := config.DefaultSettings()
	if len(args) == 1 {
		if err := config.NewInputParser().SaveSettings(args[0], defaults); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Wrote default settings to %s\n", args[0])
		return nil
	}

	return withStore(func(st *store.Store, path string) error {
		if err := st.SaveSettings(defaults); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Stored default settings in %s\n", path)
		return nil
	})
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	return withStore(func(st *store.Store, path string) error {
		s, err := st.LoadSettings()
		if errors.Is(err, store.ErrNotFound) {
			fmt.Fprintf(cmd.OutOrStdout(), "  No settings stored in %s\n", path)
			return nil
		}
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("encoding settings: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	})
}

func runSettingsImport(cmd *cobra.Command, args []string) error {
	s, err := config.NewInputParser().LoadFromFile(args[0])
	if err != nil {
		return err
	}
	return withStore(func(st *store.Store, path string) error {
		if err := st.SaveSettings(s); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Imported %s into %s\n", args[0], path)
		return nil
	})
}

func runSettingsClear(cmd *cobra.Command, _ []string) error {
	return withStore(func(st *store.Store, path string) error {
		if err := st.Clear(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Cleared %s\n", path)
		return nil
	})
}

// withStore opens the configured store for the duration of fn.
func withStore(fn func(st *store.Store, path string) error) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st, cfg.StorePath())
}
