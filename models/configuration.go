// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OnCallSight Authors

package models

// CBIWeights holds the relative weights of the two Copenhagen Burnout
// Inventory dimensions used when combining survey scores into a single
// burnout index.
type CBIWeights struct {
	// Personal is the weight of the personal burnout dimension.
	Personal float64 `json:"personal"`

	// Work is the weight of the work-related burnout dimension.
	Work float64 `json:"work"`
}

// IntegrationImpact defines how strongly each connected data source
// contributes to a single analysis metric.
type IntegrationImpact struct {
	// Rootly is the contribution of incident data from Rootly.
	Rootly float64 `json:"rootly"`

	// GitHub is the contribution of development activity from GitHub.
	GitHub float64 `json:"github"`

	// Slack is the contribution of communication patterns from Slack.
	Slack float64 `json:"slack"`
}

// IntegrationImpacts groups the per-source impact tuning for every
// analysis metric. The metric set is fixed; each metric carries its own
// per-integration contribution values.
type IntegrationImpacts struct {
	// TeamHealth tunes the overall team health metric.
	TeamHealth IntegrationImpact `json:"teamHealth"`

	// AtRisk tunes detection of members at elevated burnout risk.
	AtRisk IntegrationImpact `json:"atRisk"`

	// Workload tunes the workload pressure metric.
	Workload IntegrationImpact `json:"workload"`

	// AfterHours tunes the after-hours activity metric.
	AfterHours IntegrationImpact `json:"afterHours"`

	// WeekendWork tunes the weekend activity metric.
	WeekendWork IntegrationImpact `json:"weekendWork"`

	// ResponseTime tunes the response latency metric.
	ResponseTime IntegrationImpact `json:"responseTime"`

	// IncidentLoad tunes the on-call incident load metric.
	IncidentLoad IntegrationImpact `json:"incidentLoad"`
}

// ConfigurationUpdate is the client-writable portion of the analysis
// configuration. It is the exact payload of update and import requests:
// server-assigned metadata (update timestamp, organization binding) is
// deliberately absent from this type, so a write can never transmit it.
type ConfigurationUpdate struct {
	// CBIWeights holds the burnout dimension weighting.
	CBIWeights CBIWeights `json:"cbiWeights"`

	// IntegrationImpacts holds the per-metric source tuning.
	IntegrationImpacts IntegrationImpacts `json:"integrationImpacts"`

	// ActivePreset names the preset the current values were derived
	// from. Purely informational; the server does not resolve it.
	ActivePreset string `json:"activePreset"`
}

// Configuration is the analysis configuration as the server returns it:
// the client-writable settings plus server-assigned metadata.
type Configuration struct {
	ConfigurationUpdate

	// UpdatedAt is the server-side timestamp of the last modification.
	// Empty when the server has not reported one.
	UpdatedAt string `json:"updated_at,omitempty"`

	// OrganizationID binds the configuration to an organization.
	// Zero when the server has not reported one.
	OrganizationID int64 `json:"organization_id,omitempty"`
}
