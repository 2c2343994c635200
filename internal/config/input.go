package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/runway-simulator/internal/calculation"
	"github.com/rpgo/runway-simulator/internal/domain"
	"github.com/rpgo/runway-simulator/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// MaxHorizon caps the projection length a scenario file may request
const MaxHorizon = 120

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML scenario document
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// SaveToFile writes a configuration as YAML
func (ip *InputParser) SaveToFile(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Horizon < 0 || config.Horizon > MaxHorizon {
		return fmt.Errorf("horizon must be between 1 and %d months", MaxHorizon)
	}
	if config.StartMonth != "" {
		if _, err := dateutil.DateForMonth(config.StartMonth); err != nil {
			return fmt.Errorf("start_month must be formatted YYYY-MM, got %q", config.StartMonth)
		}
	}

	if err := ip.validateParameters(&config.Current); err != nil {
		return fmt.Errorf("current scenario validation failed: %w", err)
	}

	for i := range config.Presets {
		if err := ip.validatePreset(&config.Presets[i]); err != nil {
			return fmt.Errorf("preset %d validation failed: %w", i, err)
		}
	}

	if config.Proposed != nil {
		if err := ip.validateProposed(config.Proposed, config.Presets); err != nil {
			return fmt.Errorf("proposed scenario validation failed: %w", err)
		}
	}

	seen := make(map[string]struct{}, len(config.Hiring.Roles))
	for i := range config.Hiring.Roles {
		role := &config.Hiring.Roles[i]
		if err := ip.validateRole(role); err != nil {
			return fmt.Errorf("role %d validation failed: %w", i, err)
		}
		if _, dup := seen[role.ID]; dup {
			return fmt.Errorf("duplicate role id %q", role.ID)
		}
		seen[role.ID] = struct{}{}
	}

	return nil
}

// validateParameters rejects negative money. Growth rates are free-form.
func (ip *InputParser) validateParameters(p *domain.SimulationParameters) error {
	if p.CashOnHand.IsNegative() {
		return fmt.Errorf("cash on hand cannot be negative")
	}
	if p.MonthlyExpenses.IsNegative() {
		return fmt.Errorf("monthly expenses cannot be negative")
	}
	if p.MonthlyRevenue.IsNegative() {
		return fmt.Errorf("monthly revenue cannot be negative")
	}
	if p.AnnualExpenseGrowthPct.LessThanOrEqual(decimal.NewFromInt(-100)) {
		return fmt.Errorf("annual expense growth must be greater than -100%%")
	}
	if p.AnnualRevenueGrowthPct.LessThanOrEqual(decimal.NewFromInt(-100)) {
		return fmt.Errorf("annual revenue growth must be greater than -100%%")
	}
	return nil
}

func (ip *InputParser) validatePreset(p *domain.Preset) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("preset name is required")
	}
	if p.BurnModifierPct.LessThanOrEqual(decimal.NewFromInt(-100)) {
		return fmt.Errorf("burn modifier must be greater than -100%%")
	}
	return nil
}

func (ip *InputParser) validateProposed(p *domain.ProposedStrategy, custom []domain.Preset) error {
	if p.Parameters != nil {
		if err := ip.validateParameters(p.Parameters); err != nil {
			return err
		}
	}
	if p.Preset != "" {
		if _, err := calculation.NewPresetLibrary(custom...).Lookup(p.Preset); err != nil {
			return err
		}
	}
	return nil
}

func (ip *InputParser) validateRole(r *domain.HireRole) error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("role id is required")
	}
	if r.Count < 0 {
		return fmt.Errorf("role %s: count cannot be negative", r.ID)
	}
	if r.StartMonth < 1 {
		return fmt.Errorf("role %s: start month must be at least 1", r.ID)
	}
	if r.MonthlySalary.IsNegative() {
		return fmt.Errorf("role %s: monthly salary cannot be negative", r.ID)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Name:       "Seed runway plan",
		StartMonth: "2027-01",
		Horizon:    domain.DefaultHorizon,
		Current: domain.SimulationParameters{
			CashOnHand:             decimal.NewFromInt(500000),
			MonthlyExpenses:        decimal.NewFromInt(45000),
			MonthlyRevenue:         decimal.NewFromInt(15000),
			AnnualExpenseGrowthPct: decimal.NewFromInt(5),
			AnnualRevenueGrowthPct: decimal.NewFromInt(10),
		},
		Proposed: &domain.ProposedStrategy{Preset: "lean-operations"},
		Hiring: domain.HiringConfig{
			Roles: []domain.HireRole{
				{ID: "engineer", Title: "Software Engineer", MonthlySalary: decimal.NewFromInt(12000), Count: 1, StartMonth: 1},
				{ID: "sales", Title: "Account Executive", MonthlySalary: decimal.NewFromInt(9000), Count: 1, StartMonth: 6},
			},
		},
		Presets: []domain.Preset{
			{
				Name:            "bridge-round",
				Description:     "Insider bridge, no operating changes",
				CashModifierAbs: decimal.NewFromInt(250000),
			},
		},
	}
}
