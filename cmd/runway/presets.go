package main

import (
	"fmt"

	"github.com/rpgo/runway-simulator/internal/calculation"
	"github.com/rpgo/runway-simulator/internal/domain"
	"github.com/rpgo/runway-simulator/internal/output"
	"github.com/shopspring/decimal"

	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List strategy presets and their modifiers",
	Long:  "List the built-in strategy presets plus any custom presets from the scenario file. With a scenario, each preset's runway is shown too.",
	RunE:  runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, _ []string) error {
	var cfg *domain.Configuration
	if flagConfig != "" || settings.General.ScenarioFile != "" {
		loaded, err := loadScenario()
		if err != nil {
			return err
		}
		cfg = loaded
	}

	var custom []domain.Preset
	if cfg != nil {
		custom = cfg.Presets
	}
	lib := calculation.NewPresetLibrary(custom...)

	t := output.Table{
		Title:   "Strategy Presets",
		Headers: []string{"Preset", "Burn", "Expense growth", "Revenue growth", "Cash"},
	}
	if cfg != nil {
		t.Headers = append(t.Headers, "Runway")
	}
	for _, p := range lib.Presets() {
		row := []string{
			p.Name,
			signedPct(p.BurnModifierPct),
			signedPct(p.ExpenseModifierPct),
			signedPct(p.RevenueModifierPct),
			output.FormatCompactCurrency(p.CashModifierAbs),
		}
		if cfg != nil {
			res := engine.Run(calculation.ApplyPreset(cfg.Current, p), nil, cfg.EffectiveHorizon())
			row = append(row, res.RunwayLabel())
		}
		t.Rows = append(t.Rows, row)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprint(out, output.RenderTable(t))
	fmt.Fprintln(out)
	for _, p := range lib.Presets() {
		if p.Description != "" {
			fmt.Fprintf(out, "  %-20s %s\n", p.Name, p.Description)
		}
	}
	return nil
}

func signedPct(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + d.String() + "%"
	}
	return d.String() + "%"
}
