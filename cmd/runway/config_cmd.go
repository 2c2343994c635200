package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rpgo/runway-simulator/internal/config"

	"github.com/spf13/cobra"
)

var flagForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage scenario files and settings",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write an example scenario file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := "runway.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !flagForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	parser := config.NewInputParser()
	if err := parser.SaveToFile(parser.CreateExampleConfiguration(), path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Wrote example scenario to %s\n", path)

	if !config.Exists() {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		defaults := settings
		defaults.General.ScenarioFile = abs
		if err := config.Save(defaults); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Wrote settings to %s\n", config.SettingsPath())
	}
	fmt.Fprintln(cmd.OutOrStdout(), "  Try: runway compare")
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  Settings file: %s\n", config.SettingsPath())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no settings file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [General]")
	fmt.Fprintf(out, "    Horizon:       %d months\n", settings.General.Horizon)
	if settings.General.ScenarioFile != "" {
		fmt.Fprintf(out, "    Scenario file: %s\n", settings.General.ScenarioFile)
	} else {
		fmt.Fprintln(out, "    Scenario file: not set")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Output]")
	fmt.Fprintf(out, "    Format: %s\n", settings.Output.Format)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Snapshots]")
	fmt.Fprintf(out, "    Database: %s\n", settings.SnapshotDBPath())
	return nil
}
