package main

import (
	"fmt"

	"github.com/oncallsight/burnoutctl/internal/service"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download the configuration as a JSON file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		written, err := configService.ExportToFile(cmd.Context(), exportOutput)
		if err != nil {
			return err
		}
		fmt.Printf("Exported configuration to %s\n", written)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "",
		"output file path (default "+service.DefaultExportFileName+")")
}
