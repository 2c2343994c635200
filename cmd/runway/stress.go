package main

import (
	"errors"
	"fmt"

	"github.com/rpgo/runway-simulator/internal/calculation"
	"github.com/rpgo/runway-simulator/internal/output"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagRuns           int
	flagSeed           int64
	flagWorkers        int
	flagStressTarget   int
	flagExpenseVol     float64
	flagRevenueVol     float64
	flagStressProposed bool
)

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Monte Carlo stress test of the growth assumptions",
	Long:  "Rerun the projection many times with annual growth rates drawn from normal distributions around the scenario's rates, and report how often the plan survives.",
	RunE:  runStress,
}

func init() {
	stressCmd.Flags().IntVarP(&flagRuns, "runs", "n", 1000, "Number of simulations")
	stressCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Random seed (0 picks one from the clock)")
	stressCmd.Flags().IntVar(&flagWorkers, "workers", 10, "Concurrent simulations")
	stressCmd.Flags().IntVarP(&flagStressTarget, "target", "t", 0, "Runway in months that counts as surviving (default horizon)")
	stressCmd.Flags().Float64Var(&flagExpenseVol, "expense-vol", 5, "Std dev of annual expense growth, percentage points")
	stressCmd.Flags().Float64Var(&flagRevenueVol, "revenue-vol", 15, "Std dev of annual revenue growth, percentage points")
	stressCmd.Flags().BoolVar(&flagStressProposed, "proposed", false, "Stress the proposed strategy with its hires instead of the current path")
	rootCmd.AddCommand(stressCmd)
}

func runStress(cmd *cobra.Command, _ []string) error {
	if flagExpenseVol < 0 || flagRevenueVol < 0 {
		return errors.New("volatility must not be negative")
	}
	cfg, err := loadScenario()
	if err != nil {
		return err
	}

	params := cfg.Current
	var injector calculation.CostInjector
	if flagStressProposed {
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
	}

	mcs := calculation.NewMonteCarloSimulator(engine, calculation.MonteCarloConfig{
		NumSimulations:         flagRuns,
		Horizon:                cfg.EffectiveHorizon(),
		Seed:                   flagSeed,
		TargetMonths:           flagStressTarget,
		ExpenseGrowthStdDevPct: decimal.NewFromFloat(flagExpenseVol),
		RevenueGrowthStdDevPct: decimal.NewFromFloat(flagRevenueVol),
		Workers:                flagWorkers,
	})
	res, err := mcs.RunSimulation(cmd.Context(), params, injector)
	if err != nil {
		return err
	}

	data, err := output.FormatStressTest(res, formatName())
	if err != nil {
		return fmt.Errorf("rendering stress test: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
