// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OnCallSight Authors

package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Built-in defaults applied when neither the environment nor a JSON file
// provides a value.
const (
	// DefaultAPIURL targets an analysis backend running on the local
	// machine.
	DefaultAPIURL = "http://localhost:8000"

	// DefaultRequestTimeout bounds every outbound API request.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultLogLevel filters diagnostic output written to stderr.
	DefaultLogLevel = "info"
)

// ClientConfig is the top-level configuration container for burnoutctl.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type ClientConfig struct {
	// API holds the endpoint and timeout settings for the configuration
	// API.
	API API `envPrefix:"BURNOUT_API_"`

	// Credentials holds authentication settings: a token override and
	// the path of the local credentials file.
	Credentials Credentials `envPrefix:"BURNOUT_"`

	// Log holds diagnostic output settings.
	Log Log `envPrefix:"BURNOUT_LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from the environment.
	// Populated via the BURNOUT_CONFIG environment variable or the
	// --config flag.
	JSONFilePath string `env:"BURNOUT_CONFIG"`
}

// API holds network settings for the outbound configuration API client.
type API struct {
	// URL is the base URL of the analysis backend
	// (e.g. "https://api.example.com" or "localhost:8000").
	// A missing scheme defaults to http; a loopback default applies
	// when the value is empty everywhere.
	// Env: BURNOUT_API_URL
	URL string `env:"URL"`

	// RequestTimeout is the maximum duration allowed for a single
	// outbound request before the client cancels it (e.g. "30s", "1m").
	// Env: BURNOUT_API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Credentials holds authentication-related settings.
type Credentials struct {
	// File is the path of the local credentials file. Empty means the
	// platform default under the user configuration directory.
	// Env: BURNOUT_CREDENTIALS_FILE
	File string `env:"CREDENTIALS_FILE"`

	// Token is a bearer token override. When set, it takes precedence
	// over any token stored in the credentials file. Empty means
	// unauthenticated unless the file provides a token.
	// Env: BURNOUT_AUTH_TOKEN
	Token string `env:"AUTH_TOKEN"`
}

// Log holds diagnostic output settings.
type Log struct {
	// Level is the minimum level emitted ("debug", "info", "warn", ...).
	// Env: BURNOUT_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// defaultConfig returns the built-in fallback values. It is always merged
// last, so it only fills fields no other source provided.
func defaultConfig() *ClientConfig {
	return &ClientConfig{
		API: API{
			URL:            DefaultAPIURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// GetClientConfig loads, merges, and validates the client configuration
// from all available sources in the following priority order (earlier
// sources win):
//  1. jsonFilePath argument (typically the --config flag)
//  2. Environment variables (a .env file in the working directory is
//     merged into the process environment first; real variables win)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *ClientConfig or an error if any source fails
// to load or the final config fails validation.
func GetClientConfig(jsonFilePath string) (*ClientConfig, error) {
	_ = godotenv.Load()

	return newConfigBuilder().
		withPath(jsonFilePath).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
