package calculation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rpgo/runway-simulator/internal/domain"
	money "github.com/rpgo/runway-simulator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Growth-rate bounds enforced when a preset is applied.
var (
	MinExpenseGrowthPct = decimal.NewFromInt(-10)
	MaxExpenseGrowthPct = decimal.NewFromInt(50)
	MinRevenueGrowthPct = decimal.Zero
	MaxRevenueGrowthPct = decimal.NewFromInt(100)
)

// ErrUnknownPreset is returned when a preset name is not in the library
var ErrUnknownPreset = errors.New("unknown preset")

// ApplyPreset derives a proposed-strategy parameter set from base.
//
// The result is always computed from the base passed in. Applying a preset to
// its own output compounds the modifiers; callers derive scenario B from the
// untouched scenario A every time. Expenses are rounded to whole units only
// when the burn modifier is non-zero, so an all-zero preset returns a copy
// equal to base.
func ApplyPreset(base domain.SimulationParameters, preset domain.Preset) domain.SimulationParameters {
	expenses := base.MonthlyExpenses
	if !preset.BurnModifierPct.IsZero() {
		burnFactor := decimal.NewFromInt(1).Add(preset.BurnModifierPct.Div(hundred))
		expenses = expenses.Mul(burnFactor).Round(0)
	}
	return domain.SimulationParameters{
		CashOnHand:      base.CashOnHand.Add(preset.CashModifierAbs),
		MonthlyExpenses: expenses,
		MonthlyRevenue:  base.MonthlyRevenue,
		AnnualExpenseGrowthPct: money.Clamp(base.AnnualExpenseGrowthPct.Add(preset.ExpenseModifierPct),
			MinExpenseGrowthPct, MaxExpenseGrowthPct),
		AnnualRevenueGrowthPct: money.Clamp(base.AnnualRevenueGrowthPct.Add(preset.RevenueModifierPct),
			MinRevenueGrowthPct, MaxRevenueGrowthPct),
	}
}

// BuiltInPresets returns the standard strategy presets
func BuiltInPresets() []domain.Preset {
	return []domain.Preset{
		{
			Name:               "aggressive-growth",
			Description:        "Spend more to grow revenue faster",
			BurnModifierPct:    decimal.NewFromInt(25),
			ExpenseModifierPct: decimal.NewFromInt(10),
			RevenueModifierPct: decimal.NewFromInt(30),
		},
		{
			Name:               "lean-operations",
			Description:        "Cut burn and slow expense growth",
			BurnModifierPct:    decimal.NewFromInt(-20),
			ExpenseModifierPct: decimal.NewFromInt(-5),
		},
		{
			Name:               "fundraise",
			Description:        "Close a round without changing operations",
			BurnModifierPct:    decimal.NewFromInt(10),
			ExpenseModifierPct: decimal.NewFromInt(5),
			RevenueModifierPct: decimal.NewFromInt(5),
			CashModifierAbs:    decimal.NewFromInt(1_000_000),
		},
		{
			Name:               "conservative",
			Description:        "Trim spending, assume slower sales",
			BurnModifierPct:    decimal.NewFromInt(-10),
			ExpenseModifierPct: decimal.NewFromInt(-3),
			RevenueModifierPct: decimal.NewFromInt(-5),
		},
	}
}

// PresetLibrary resolves presets by name. Custom presets shadow built-ins of the same name.
type PresetLibrary struct {
	presets map[string]domain.Preset
}

// NewPresetLibrary creates a library of the built-in presets plus custom ones
func NewPresetLibrary(custom ...domain.Preset) *PresetLibrary {
	lib := &PresetLibrary{presets: make(map[string]domain.Preset)}
	for _, p := range BuiltInPresets() {
		lib.presets[NormalizePresetName(p.Name)] = p
	}
	for _, p := range custom {
		lib.presets[NormalizePresetName(p.Name)] = p
	}
	return lib
}

// NormalizePresetName lowers, trims and hyphenates a preset name
func NormalizePresetName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	return strings.Join(strings.FieldsFunc(n, func(r rune) bool { return r == ' ' || r == '_' }), "-")
}

// Lookup returns the preset registered under name
func (pl *PresetLibrary) Lookup(name string) (domain.Preset, error) {
	p, ok := pl.presets[NormalizePresetName(name)]
	if !ok {
		return domain.Preset{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownPreset, name, strings.Join(pl.Names(), ", "))
	}
	return p, nil
}

// Names returns the canonical preset names, sorted
func (pl *PresetLibrary) Names() []string {
	names := make([]string, 0, len(pl.presets))
	for n := range pl.presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Presets returns every preset sorted by name
func (pl *PresetLibrary) Presets() []domain.Preset {
	names := pl.Names()
	out := make([]domain.Preset, 0, len(names))
	for _, n := range names {
		out = append(out, pl.presets[n])
	}
	return out
}
