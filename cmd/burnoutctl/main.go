// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OnCallSight Authors

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/oncallsight/burnoutctl/internal/adapter"
	"github.com/oncallsight/burnoutctl/internal/config"
	"github.com/oncallsight/burnoutctl/internal/credentials"
	"github.com/oncallsight/burnoutctl/internal/logger"
	"github.com/oncallsight/burnoutctl/internal/service"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var (
	apiURL         string
	authToken      string
	requestTimeout time.Duration
	configPath     string
	jsonOutput     bool

	log           *logger.Logger
	credStore     *credentials.FileStore
	configService service.ConfigurationService
)

var rootCmd = &cobra.Command{
	Use:          "burnoutctl <command>",
	Short:        "CLI client for the burnout analysis configuration service",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.GetClientConfig(configPath)
		if err != nil {
			return fmt.Errorf("error getting configs: %w", err)
		}
		if cmd.Flags().Changed("api-url") {
			cfg.API.URL = apiURL
		}
		if cmd.Flags().Changed("timeout") {
			cfg.API.RequestTimeout = requestTimeout
		}
		if cmd.Flags().Changed("token") {
			cfg.Credentials.Token = authToken
		}

		log = logger.NewLogger("burnoutctl", cfg.Log.Level)

		credStore, err = credentials.NewFileStore(cfg.Credentials.File)
		if err != nil {
			return fmt.Errorf("open credentials store: %w", err)
		}

		// An explicitly supplied token (flag, env or config file) wins
		// over whatever the credentials store holds.
		var source credentials.Source = credStore
		if cfg.Credentials.Token != "" {
			source = credentials.Static(cfg.Credentials.Token)
		}

		serverAdapter, err := adapter.NewHTTPConfigurationAdapter(cfg.API, source, log)
		if err != nil {
			return fmt.Errorf("create server adapter: %w", err)
		}

		configService = service.NewConfigurationService(serverAdapter, log)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "configuration API base URL")
	rootCmd.PersistentFlags().StringVar(&authToken, "token", "", "bearer token (overrides stored credentials)")
	rootCmd.PersistentFlags().DurationVar(&requestTimeout, "timeout", 0, "request timeout (e.g. 10s)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "JSON config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(presetCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
