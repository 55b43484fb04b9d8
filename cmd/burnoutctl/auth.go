package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/oncallsight/burnoutctl/internal/utils"
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage stored API credentials",
}

var authSetTokenCmd = &cobra.Command{
	Use:   "set-token <token>",
	Short: "Store a bearer token for future requests",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token := utils.NormalizeBearerToken(args[0])
		if token == "" {
			return fmt.Errorf("token must not be empty")
		}
		if err := credStore.Save(token); err != nil {
			return err
		}
		fmt.Printf("Token saved to %s\n", credStore.Path())
		return nil
	},
}

var authClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored bearer token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := credStore.Clear(); err != nil {
			return err
		}
		fmt.Println("Stored credentials removed.")
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the credentials store and the stored token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "store:\t%s\n", credStore.Path())
		if token := credStore.Token(); token != "" {
			masked := token
			if len(masked) > 8 {
				masked = masked[:8] + strings.Repeat("*", len(masked)-8)
			}
			fmt.Fprintf(w, "token:\t%s\n", masked)
		} else {
			fmt.Fprintf(w, "token:\t(none)\n")
		}
		return w.Flush()
	},
}

func init() {
	authCmd.AddCommand(authSetTokenCmd)
	authCmd.AddCommand(authClearCmd)
	authCmd.AddCommand(authStatusCmd)
}
