package domain

// Configuration is the scenario file: the current path, an optional proposed
// strategy, the hiring plan and any custom presets.
type Configuration struct {
	Name       string               `yaml:"name" json:"name"`
	StartMonth string               `yaml:"start_month,omitempty" json:"start_month,omitempty"` // YYYY-MM
	Horizon    int                  `yaml:"horizon,omitempty" json:"horizon,omitempty"`
	Current    SimulationParameters `yaml:"current" json:"current"`
	Proposed   *ProposedStrategy    `yaml:"proposed,omitempty" json:"proposed,omitempty"`
	Hiring     HiringConfig         `yaml:"hiring,omitempty" json:"hiring,omitempty"`
	Presets    []Preset             `yaml:"presets,omitempty" json:"presets,omitempty"`
}

// ProposedStrategy derives scenario B. Explicit Parameters win over Preset.
type ProposedStrategy struct {
	Preset     string                `yaml:"preset,omitempty" json:"preset,omitempty"`
	Parameters *SimulationParameters `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// HiringConfig lists the roles scheduled for the proposed strategy
type HiringConfig struct {
	Roles []HireRole `yaml:"roles,omitempty" json:"roles,omitempty"`
}

// EffectiveHorizon returns the configured horizon or DefaultHorizon when unset
func (c *Configuration) EffectiveHorizon() int {
	if c.Horizon <= 0 {
		return DefaultHorizon
	}
	return c.Horizon
}
