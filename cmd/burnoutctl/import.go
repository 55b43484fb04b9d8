package main

import (
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Upload a configuration JSON file",
	Long: `Reads the given file, validates that it is well-formed JSON and
uploads it as the new configuration. Files that do not parse are
rejected locally without contacting the server.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		updated, err := configService.ImportFromFile(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printConfiguration(updated)
		return nil
	},
}
