package main

import (
	"github.com/rpgo/runway-simulator/internal/domain"

	"github.com/spf13/cobra"
)

var (
	flagComparePreset string
	flagNoHires       bool
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the proposed strategy against the current path",
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&flagComparePreset, "preset", "p", "", "Derive the proposed strategy from this preset instead of the scenario file")
	compareCmd.Flags().BoolVar(&flagNoHires, "no-hires", false, "Leave the hiring plan out of the proposed strategy")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	cfg, err := loadScenario()
	if err != nil {
		return err
	}
	if flagComparePreset != "" {
		cfg.Proposed = &domain.ProposedStrategy{Preset: flagComparePreset}
	}
	if flagNoHires {
		cfg.Hiring = domain.HiringConfig{}
	}
	if cfg.Proposed == nil && len(cfg.Hiring.Roles) == 0 {
		cfg.Proposed = &domain.ProposedStrategy{}
	}

	report, err := engine.BuildReport(cfg)
	if err != nil {
		return err
	}
	return writeReport(cmd, report)
}
