package main

import (
	"errors"
	"fmt"

	"github.com/rpgo/runway-simulator/internal/calculation"
	"github.com/rpgo/runway-simulator/internal/output"

	"github.com/spf13/cobra"
)

var (
	flagTarget        int
	flagSolveProposed bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find the revenue growth needed to reach a target runway",
	Long:  "Search for the smallest annual revenue growth that keeps cash positive for --target months, holding every other parameter fixed.",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().IntVarP(&flagTarget, "target", "t", 18, "Target runway in months")
	solveCmd.Flags().BoolVar(&flagSolveProposed, "proposed", false, "Solve for the proposed strategy with its hires instead of the current path")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, _ []string) error {
	cfg, err := loadScenario()
	if err != nil {
		return err
	}

	params := cfg.Current
	label := "current path"
	var injector calculation.CostInjector
	if flagSolveProposed {
		proposed, ok, err := calculation.ResolveProposed(cfg)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("scenario file has no proposed strategy or hires")
		}
		params = proposed.Parameters
		if len(proposed.Hires) > 0 {
			injector = proposed.Hires
		}
		label = "proposed strategy"
	}

	out := cmd.OutOrStdout()
	sol, err := engine.SolveRevenueGrowthForRunway(params, injector, flagTarget, cfg.EffectiveHorizon())
	if errors.Is(err, calculation.ErrTargetUnreachable) {
		fmt.Fprintf(out, "\n  %s\n", err)
		fmt.Fprintln(out, "  Revenue growth alone cannot carry the plan; cut burn or raise cash.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, output.RenderTable(output.Table{
		Title:   fmt.Sprintf("Revenue growth for %d months of runway (%s)", flagTarget, label),
		Headers: []string{"", "Value"},
		Rows: [][]string{
			{"Current revenue growth", output.FormatPercentage(params.AnnualRevenueGrowthPct)},
			{"Required revenue growth", output.FormatPercentage(sol.AnnualRevenueGrowthPct)},
			{"Resulting runway", sol.Result.RunwayLabel()},
			{"Final cash", output.FormatCurrency(sol.Result.Series.FinalCash())},
			{"Iterations", fmt.Sprint(sol.Iterations)},
		},
	}))
	return nil
}
