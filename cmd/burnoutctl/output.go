package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/oncallsight/burnoutctl/models"
)

func printConfiguration(configuration models.Configuration) {
	if jsonOutput {
		printConfigurationJSON(configuration)
		return
	}
	printConfigurationTable(configuration)
}

func printConfigurationJSON(configuration models.Configuration) {
	data, err := json.MarshalIndent(configuration, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func printConfigurationTable(configuration models.Configuration) {
	fmt.Printf("Active Preset:   %s\n", configuration.ActivePreset)
	fmt.Printf("Personal Weight: %.2f\n", configuration.CBIWeights.Personal)
	fmt.Printf("Work Weight:     %.2f\n", configuration.CBIWeights.Work)
	if configuration.UpdatedAt != "" {
		fmt.Printf("Updated At:      %s\n", configuration.UpdatedAt)
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tROOTLY\tGITHUB\tSLACK")
	for _, row := range impactRows(configuration.IntegrationImpacts) {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\n",
			row.metric,
			row.impact.Rootly,
			row.impact.GitHub,
			row.impact.Slack,
		)
	}
	w.Flush()
}

type impactRow struct {
	metric string
	impact models.IntegrationImpact
}

func impactRows(impacts models.IntegrationImpacts) []impactRow {
	return []impactRow{
		{"team-health", impacts.TeamHealth},
		{"at-risk", impacts.AtRisk},
		{"workload", impacts.Workload},
		{"after-hours", impacts.AfterHours},
		{"weekend-work", impacts.WeekendWork},
		{"response-time", impacts.ResponseTime},
		{"incident-load", impacts.IncidentLoad},
	}
}
