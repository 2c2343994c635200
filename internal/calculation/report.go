package calculation

import (
	"fmt"

	"github.com/rpgo/runway-simulator/internal/domain"
)

// ProposedScenario is scenario B resolved from a configuration
type ProposedScenario struct {
	Parameters domain.SimulationParameters
	PresetName string
	Hires      HireSchedule
}

// ResolveProposed derives scenario B from cfg. Explicit parameters win over a
// preset; the preset is always applied to the untouched current parameters.
// ok is false when cfg describes neither a strategy nor any hires.
func ResolveProposed(cfg *domain.Configuration) (scenario ProposedScenario, ok bool, err error) {
	hires := BuildEvents(cfg.Hiring.Roles)
	if cfg.Proposed == nil && len(hires) == 0 {
		return ProposedScenario{}, false, nil
	}

	scenario = ProposedScenario{Parameters: cfg.Current, Hires: hires}
	if cfg.Proposed == nil {
		return scenario, true, nil
	}

	switch {
	case cfg.Proposed.Parameters != nil:
		scenario.Parameters = *cfg.Proposed.Parameters
	case cfg.Proposed.Preset != "":
		preset, err := NewPresetLibrary(cfg.Presets...).Lookup(cfg.Proposed.Preset)
		if err != nil {
			return ProposedScenario{}, false, err
		}
		scenario.Parameters = ApplyPreset(cfg.Current, preset)
		scenario.PresetName = preset.Name
	}
	return scenario, true, nil
}

// BuildReport runs the current path and, when configured, the proposed
// strategy with its hires, and assembles everything a formatter renders.
func (pe *ProjectionEngine) BuildReport(cfg *domain.Configuration) (*domain.Report, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	horizon := cfg.EffectiveHorizon()
	log := orNop(pe.Logger)

	current := pe.Run(cfg.Current, nil, horizon)
	report := &domain.Report{
		Title:      cfg.Name,
		StartMonth: cfg.StartMonth,
		Current:    scenarioReport("Current", cfg.Current, current),
	}
	log.Infof("current path: runway %s", current.RunwayLabel())

	proposed, ok, err := ResolveProposed(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve proposed strategy: %w", err)
	}
	if !ok {
		return report, nil
	}

	comparator := NewScenarioComparator(pe)
	comparator.Horizon = horizon
	cmp := comparator.Compare(cfg.Current, proposed.Parameters, proposed.Hires)

	name := "Proposed"
	if proposed.PresetName != "" {
		name = "Proposed (" + proposed.PresetName + ")"
	}
	b := scenarioReport(name, proposed.Parameters, cmp.ScenarioB)
	report.Proposed = &b
	report.PresetName = proposed.PresetName
	report.Hires = proposed.Hires
	report.Comparison = &cmp
	log.Infof("proposed strategy: runway %s, delta %s months", cmp.ScenarioB.RunwayLabel(), cmp.RunwayDeltaMonths.String())

	return report, nil
}

func scenarioReport(name string, params domain.SimulationParameters, result domain.RunwayResult) domain.ScenarioReport {
	score := RunwayScore(result)
	return domain.ScenarioReport{
		Name:       name,
		Parameters: params,
		Result:     result,
		Score:      score,
		Grade:      GradeOf(score),
	}
}
