package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/rpgo/runway-simulator/internal/calculation"
	"github.com/rpgo/runway-simulator/internal/config"
	"github.com/rpgo/runway-simulator/internal/domain"
	"github.com/rpgo/runway-simulator/internal/output"

	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagHorizon int
	flagFormat  string
	flagDBPath  string
	flagSaveDir string
	flagVerbose bool
)

// settings and engine are set up once per invocation by setup.
var (
	settings config.Settings
	engine   *calculation.ProjectionEngine
)

var rootCmd = &cobra.Command{
	Use:               "runway",
	Short:             "Cash runway simulator",
	Long:              "Project how long cash lasts under compounding growth and compare a proposed strategy, with scheduled hires, against the current path.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Scenario file (YAML)")
	rootCmd.PersistentFlags().IntVar(&flagHorizon, "horizon", 0, "Projection horizon in months (default from scenario or settings)")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "", "Output format: "+fmt.Sprint(output.AvailableFormatterNames()))
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Snapshot database path")
	rootCmd.PersistentFlags().StringVar(&flagSaveDir, "save-dir", "", "Also write the report to a timestamped file in this directory")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging on stderr")
}

func setup(cmd *cobra.Command, _ []string) error {
	var err error
	settings, err = config.Load()
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	engine = calculation.NewProjectionEngine()
	engine.SetLogger(calculation.NewSlogLogger(logger))
	return nil
}

// loadScenario reads the scenario file from --config or the settings default
// and applies the --horizon override.
func loadScenario() (*domain.Configuration, error) {
	path := flagConfig
	if path == "" {
		path = settings.General.ScenarioFile
	}
	if path == "" {
		return nil, errors.New("no scenario file: pass --config or run `runway config init`")
	}

	cfg, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Horizon = horizonFor(cfg.Horizon)
	return cfg, nil
}

// horizonFor resolves the horizon: flag, then scenario file, then settings.
func horizonFor(fromFile int) int {
	switch {
	case flagHorizon > 0:
		return flagHorizon
	case fromFile > 0:
		return fromFile
	case settings.General.Horizon > 0:
		return settings.General.Horizon
	default:
		return domain.DefaultHorizon
	}
}

func formatName() string {
	if flagFormat != "" {
		return flagFormat
	}
	if settings.Output.Format != "" {
		return settings.Output.Format
	}
	return "console"
}

func dbPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return settings.SnapshotDBPath()
}

// writeReport renders report to the command output and, with --save-dir, to a file as well.
func writeReport(cmd *cobra.Command, report *domain.Report) error {
	f, err := output.FormatterFor(formatName())
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("rendering %s report: %w", f.Name(), err)
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return err
	}

	if flagSaveDir != "" {
		name, err := output.WriteFormatted(f, report, flagSaveDir, output.FileExtension(f))
		if err != nil {
			return fmt.Errorf("saving report: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "  Report saved to %s\n", name)
	}
	return nil
}
