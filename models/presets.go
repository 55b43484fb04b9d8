package models

// Preset is a named, predefined combination of CBI weights and
// integration impacts. Presets live entirely on the client: applying
// one is an ordinary configuration update carrying the preset's values.
type Preset struct {
	// Name is the stable identifier used on the wire (activePreset)
	// and on the command line.
	Name string

	// Description is a one-line summary shown when listing presets.
	Description string

	// Weights is the CBI dimension weighting the preset applies.
	Weights CBIWeights

	// Impacts is the per-metric source tuning the preset applies.
	Impacts IntegrationImpacts
}

// Update returns the configuration update payload that applies the
// preset.
func (p Preset) Update() ConfigurationUpdate {
	return ConfigurationUpdate{
		CBIWeights:         p.Weights,
		IntegrationImpacts: p.Impacts,
		ActivePreset:       p.Name,
	}
}

// PresetBalanced weighs both CBI dimensions and all data sources
// evenly. It mirrors the server's factory defaults.
const PresetBalanced = "balanced"

// PresetIncidentHeavy emphasizes on-call and incident signals from
// Rootly for teams whose main burnout driver is incident response.
const PresetIncidentHeavy = "incident-heavy"

// PresetCollaborationHeavy emphasizes communication and development
// activity from Slack and GitHub for teams with little on-call load.
const PresetCollaborationHeavy = "collaboration-heavy"

var presets = []Preset{
	{
		Name:        PresetBalanced,
		Description: "Even weighting across dimensions and data sources",
		Weights:     CBIWeights{Personal: 0.5, Work: 0.5},
		Impacts: IntegrationImpacts{
			TeamHealth:   IntegrationImpact{Rootly: 1.0, GitHub: 1.0, Slack: 1.0},
			AtRisk:       IntegrationImpact{Rootly: 1.0, GitHub: 1.0, Slack: 1.0},
			Workload:     IntegrationImpact{Rootly: 1.0, GitHub: 1.0, Slack: 1.0},
			AfterHours:   IntegrationImpact{Rootly: 1.0, GitHub: 1.0, Slack: 1.0},
			WeekendWork:  IntegrationImpact{Rootly: 1.0, GitHub: 1.0, Slack: 1.0},
			ResponseTime: IntegrationImpact{Rootly: 1.0, GitHub: 1.0, Slack: 1.0},
			IncidentLoad: IntegrationImpact{Rootly: 1.0, GitHub: 1.0, Slack: 1.0},
		},
	},
	{
		Name:        PresetIncidentHeavy,
		Description: "Emphasizes incident and on-call signals from Rootly",
		Weights:     CBIWeights{Personal: 0.4, Work: 0.6},
		Impacts: IntegrationImpacts{
			TeamHealth:   IntegrationImpact{Rootly: 1.2, GitHub: 0.9, Slack: 0.9},
			AtRisk:       IntegrationImpact{Rootly: 1.5, GitHub: 1.0, Slack: 0.8},
			Workload:     IntegrationImpact{Rootly: 1.3, GitHub: 1.1, Slack: 0.8},
			AfterHours:   IntegrationImpact{Rootly: 1.4, GitHub: 1.0, Slack: 0.9},
			WeekendWork:  IntegrationImpact{Rootly: 1.5, GitHub: 1.0, Slack: 0.8},
			ResponseTime: IntegrationImpact{Rootly: 1.6, GitHub: 0.7, Slack: 1.1},
			IncidentLoad: IntegrationImpact{Rootly: 1.8, GitHub: 0.8, Slack: 0.7},
		},
	},
	{
		Name:        PresetCollaborationHeavy,
		Description: "Emphasizes communication and development activity from Slack and GitHub",
		Weights:     CBIWeights{Personal: 0.55, Work: 0.45},
		Impacts: IntegrationImpacts{
			TeamHealth:   IntegrationImpact{Rootly: 0.8, GitHub: 1.2, Slack: 1.4},
			AtRisk:       IntegrationImpact{Rootly: 0.9, GitHub: 1.1, Slack: 1.2},
			Workload:     IntegrationImpact{Rootly: 0.8, GitHub: 1.3, Slack: 1.1},
			AfterHours:   IntegrationImpact{Rootly: 0.9, GitHub: 1.2, Slack: 1.3},
			WeekendWork:  IntegrationImpact{Rootly: 0.9, GitHub: 1.3, Slack: 1.2},
			ResponseTime: IntegrationImpact{Rootly: 0.7, GitHub: 1.0, Slack: 1.5},
			IncidentLoad: IntegrationImpact{Rootly: 1.0, GitHub: 0.9, Slack: 0.9},
		},
	},
}

// PresetByName looks up a built-in preset. The second return value
// reports whether the name is known.
func PresetByName(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Presets returns the built-in preset catalog in listing order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PresetNames returns the names of all built-in presets in listing
// order.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}
