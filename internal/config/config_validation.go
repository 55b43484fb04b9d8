// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OnCallSight Authors

package config

// validate checks that the final merged [ClientConfig] satisfies all
// invariants the client relies on at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *ClientConfig) validate() error {
	if cfg.API.URL == "" || cfg.API.RequestTimeout <= 0 {
		return ErrInvalidAPIConfigs
	}

	return nil
}
