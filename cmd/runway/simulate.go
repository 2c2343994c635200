package main

import (
	"fmt"

	"github.com/rpgo/runway-simulator/internal/domain"
	"github.com/shopspring/decimal"

	"github.com/spf13/cobra"
)

var (
	flagCash          string
	flagExpenses      string
	flagRevenue       string
	flagExpenseGrowth string
	flagRevenueGrowth string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Project the current path only",
	Long:  "Project the current path from the scenario file. Parameter flags override the file; with no file they define the scenario on their own.",
	RunE:  runSimulate,
}

func init() {
	addParamFlags(simulateCmd)
	rootCmd.AddCommand(simulateCmd)
}

// addParamFlags registers the current-path override flags on cmd.
func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagCash, "cash", "", "Cash on hand")
	cmd.Flags().StringVar(&flagExpenses, "expenses", "", "Monthly expenses")
	cmd.Flags().StringVar(&flagRevenue, "revenue", "", "Monthly revenue")
	cmd.Flags().StringVar(&flagExpenseGrowth, "expense-growth", "", "Annual expense growth, percent")
	cmd.Flags().StringVar(&flagRevenueGrowth, "revenue-growth", "", "Annual revenue growth, percent")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := scenarioWithOverrides(cmd)
	if err != nil {
		return err
	}
	cfg.Proposed = nil
	cfg.Hiring = domain.HiringConfig{}

	report, err := engine.BuildReport(cfg)
	if err != nil {
		return err
	}
	return writeReport(cmd, report)
}

// scenarioWithOverrides loads the scenario file when one is configured and
// applies any parameter flags on top of its current path.
func scenarioWithOverrides(cmd *cobra.Command) (*domain.Configuration, error) {
	cfg := &domain.Configuration{Name: "Ad hoc scenario"}
	if flagConfig != "" || settings.General.ScenarioFile != "" {
		loaded, err := loadScenario()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else if !anyParamFlag(cmd) {
		return nil, fmt.Errorf("no scenario: pass --config or parameter flags such as --cash and --expenses")
	}
	cfg.Horizon = horizonFor(cfg.Horizon)

	overrides := []struct {
		flag  string
		value string
		dst   *decimal.Decimal
	}{
		{"cash", flagCash, &cfg.Current.CashOnHand},
		{"expenses", flagExpenses, &cfg.Current.MonthlyExpenses},
		{"revenue", flagRevenue, &cfg.Current.MonthlyRevenue},
		{"expense-growth", flagExpenseGrowth, &cfg.Current.AnnualExpenseGrowthPct},
		{"revenue-growth", flagRevenueGrowth, &cfg.Current.AnnualRevenueGrowthPct},
	}
	for _, o := range overrides {
		if !cmd.Flags().Changed(o.flag) {
			continue
		}
		d, err := decimal.NewFromString(o.value)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s %q: %w", o.flag, o.value, err)
		}
		*o.dst = d
	}
	if cfg.Current.HasNegativeMoney() {
		return nil, fmt.Errorf("cash, expenses and revenue cannot be negative")
	}
	return cfg, nil
}

func anyParamFlag(cmd *cobra.Command) bool {
	for _, name := range []string{"cash", "expenses", "revenue", "expense-growth", "revenue-growth"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}
