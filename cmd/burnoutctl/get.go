package main

import (
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Fetch the current burnout analysis configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configuration, err := configService.Fetch(cmd.Context())
		if err != nil {
			return err
		}
		printConfiguration(configuration)
		return nil
	},
}
