// Package config provides configuration loading, merging, and validation
// facilities for burnoutctl.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources override later ones):
//  1. Explicit JSON file path (--config flag)
//  2. Environment variables (BURNOUT_*, with .env file support)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config
