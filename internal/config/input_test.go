package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/runway-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validScenario = "name: \"Seed plan\"\n" +
	"start_month: \"2027-01\"\n" +
	"horizon: 24\n" +
	"current:\n" +
	"  cash_on_hand: 500000\n" +
	"  monthly_expenses: 45000\n" +
	"  monthly_revenue: 15000\n" +
	"  annual_expense_growth_pct: 5\n" +
	"  annual_revenue_growth_pct: 10\n" +
	"proposed:\n" +
	"  preset: \"Lean Operations\"\n" +
	"hiring:\n" +
	"  roles:\n" +
	"    - id: engineer\n" +
	"      title: \"Software Engineer\"\n" +
	"      monthly_salary: 12000\n" +
	"      count: 1\n" +
	"      start_month: 1\n"

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTemp(t, validScenario))

	require.NoError(t, err)
	assert.Equal(t, "Seed plan", config.Name)
	assert.Equal(t, 24, config.EffectiveHorizon())
	assert.True(t, config.Current.CashOnHand.Equal(decimal.NewFromInt(500000)))
	assert.True(t, config.Current.AnnualRevenueGrowthPct.Equal(decimal.NewFromInt(10)))
	require.NotNil(t, config.Proposed)
	assert.Equal(t, "Lean Operations", config.Proposed.Preset)
	require.Len(t, config.Hiring.Roles, 1)
	assert.Equal(t, "engineer", config.Hiring.Roles[0].ID)
	assert.True(t, config.Hiring.Roles[0].MonthlySalary.Equal(decimal.NewFromInt(12000)))
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTemp(t, "current: [unclosed\n"))

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_ValidationFailure(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTemp(t, "current:\n  cash_on_hand: -5\n"))

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.Contains(t, err.Error(), "cash on hand cannot be negative")
}

func TestValidateConfiguration(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		mutate  func(c *domain.Configuration)
		wantErr string
	}{
		{
			name:   "example is valid",
			mutate: func(c *domain.Configuration) {},
		},
		{
			name:    "negative expenses",
			mutate:  func(c *domain.Configuration) { c.Current.MonthlyExpenses = decimal.NewFromInt(-1) },
			wantErr: "monthly expenses cannot be negative",
		},
		{
			name:    "negative revenue",
			mutate:  func(c *domain.Configuration) { c.Current.MonthlyRevenue = decimal.NewFromInt(-1) },
			wantErr: "monthly revenue cannot be negative",
		},
		{
			name:    "growth at minus one hundred",
			mutate:  func(c *domain.Configuration) { c.Current.AnnualExpenseGrowthPct = decimal.NewFromInt(-100) },
			wantErr: "annual expense growth",
		},
		{
			name:    "horizon too long",
			mutate:  func(c *domain.Configuration) { c.Horizon = MaxHorizon + 1 },
			wantErr: "horizon must be between",
		},
		{
			name:    "bad start month",
			mutate:  func(c *domain.Configuration) { c.StartMonth = "January" },
			wantErr: "start_month must be formatted YYYY-MM",
		},
		{
			name:    "unknown preset",
			mutate:  func(c *domain.Configuration) { c.Proposed.Preset = "moonshot" },
			wantErr: "unknown preset",
		},
		{
			name:   "custom preset is resolvable",
			mutate: func(c *domain.Configuration) { c.Proposed.Preset = "Bridge Round" },
		},
		{
			name: "negative proposed cash",
			mutate: func(c *domain.Configuration) {
				p := c.Current
				p.CashOnHand = decimal.NewFromInt(-10)
				c.Proposed.Parameters = &p
			},
			wantErr: "proposed scenario validation failed",
		},
		{
			name: "duplicate role",
			mutate: func(c *domain.Configuration) {
				c.Hiring.Roles = append(c.Hiring.Roles, c.Hiring.Roles[0])
			},
			wantErr: "duplicate role id",
		},
		{
			name:    "negative count",
			mutate:  func(c *domain.Configuration) { c.Hiring.Roles[0].Count = -1 },
			wantErr: "count cannot be negative",
		},
		{
			name:    "start month zero",
			mutate:  func(c *domain.Configuration) { c.Hiring.Roles[0].StartMonth = 0 },
			wantErr: "start month must be at least 1",
		},
		{
			name:    "negative salary",
			mutate:  func(c *domain.Configuration) { c.Hiring.Roles[0].MonthlySalary = decimal.NewFromInt(-1) },
			wantErr: "monthly salary cannot be negative",
		},
		{
			name:    "unnamed preset",
			mutate:  func(c *domain.Configuration) { c.Presets[0].Name = " " },
			wantErr: "preset name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := parser.CreateExampleConfiguration()
			tt.mutate(config)
			err := parser.ValidateConfiguration(config)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSaveToFile_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleConfiguration()
	path := filepath.Join(t.TempDir(), "example.yaml")

	require.NoError(t, parser.SaveToFile(example, path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, example.Name, loaded.Name)
	assert.Equal(t, example.StartMonth, loaded.StartMonth)
	assert.True(t, example.Current.Equal(loaded.Current))
	require.Len(t, loaded.Hiring.Roles, len(example.Hiring.Roles))
	assert.Equal(t, example.Hiring.Roles[1].StartMonth, loaded.Hiring.Roles[1].StartMonth)
	require.Len(t, loaded.Presets, 1)
	assert.True(t, loaded.Presets[0].CashModifierAbs.Equal(decimal.NewFromInt(250000)))
}
