package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Update individual configuration fields",
	Long: `Fetches the current configuration, applies the given field changes
and writes the result back. Fields not named on the command line keep
their current server-side values.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("personal") &&
			!cmd.Flags().Changed("work") &&
			!cmd.Flags().Changed("preset") {
			return fmt.Errorf("nothing to set: pass --personal, --work or --preset")
		}

		ctx := cmd.Context()
		current, err := configService.Fetch(ctx)
		if err != nil {
			return err
		}

		update := current.ConfigurationUpdate
		if cmd.Flags().Changed("personal") {
			v, _ := cmd.Flags().GetFloat64("personal")
			update.CBIWeights.Personal = v
		}
		if cmd.Flags().Changed("work") {
			v, _ := cmd.Flags().GetFloat64("work")
			update.CBIWeights.Work = v
		}
		if cmd.Flags().Changed("preset") {
			v, _ := cmd.Flags().GetString("preset")
			update.ActivePreset = v
		}

		updated, err := configService.Apply(ctx, update)
		if err != nil {
			return err
		}
		printConfiguration(updated)
		return nil
	},
}

func init() {
	setCmd.Flags().Float64("personal", 0, "personal burnout dimension weight")
	setCmd.Flags().Float64("work", 0, "work burnout dimension weight")
	setCmd.Flags().String("preset", "", "active preset label")
}
