package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/oncallsight/burnoutctl/models"
	"github.com/spf13/cobra"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Inspect and apply configuration presets",
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		presets := models.Presets()

		if jsonOutput {
			out := make([]map[string]any, 0, len(presets))
			for _, p := range presets {
				out = append(out, map[string]any{
					"name":        p.Name,
					"description": p.Description,
					"weights":     p.Weights,
					"impacts":     p.Impacts,
				})
			}
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tPERSONAL\tWORK\tDESCRIPTION")
		for _, p := range presets {
			fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%s\n",
				p.Name,
				p.Weights.Personal,
				p.Weights.Work,
				p.Description,
			)
		}
		return w.Flush()
	},
}

var presetApplyCmd = &cobra.Command{
	Use:   "apply <name>",
	Short: "Apply a preset to the server configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		updated, err := configService.ApplyPreset(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printConfiguration(updated)
		return nil
	},
}

func init() {
	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetApplyCmd)
}
