// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults used when no source sets a value.
const (
	DefaultBaseURL  = "https://dragonball-api.com/api"
	DefaultTimeout  = 30 * time.Second
	DefaultLogLevel = "info"
	DefaultResource = ResourceCharacters
	DefaultPage     = 1
	DefaultLimit    = 10
)

// Resources the client knows how to list.
const (
	ResourceCharacters = "characters"
	ResourcePlanets    = "planets"
)

// StructuredConfig is the top-level configuration container for the
// client. It is populated by merging defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the HTTP client settings. Immutable once a client is built
	// from it.
	API API `envPrefix:"API_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// Fetch selects what the command-line client lists.
	Fetch Fetch `envPrefix:"FETCH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API holds the settings of the outbound HTTP client.
type API struct {
	// BaseURL is prepended to every relative request path.
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Timeout bounds a single request, including reading the response
	// (e.g. "30s"). Exceeding it is reported as a no-response failure.
	// Env: API_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// DefaultHeaders are sent with every request.
	// Env: API_DEFAULT_HEADERS in the form "Key:Value,Key:Value"
	DefaultHeaders map[string]string `env:"DEFAULT_HEADERS"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (e.g. "debug", "info").
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the path logs are appended to. Empty means stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Fetch selects the page of a resource the command-line client prints.
type Fetch struct {
	// Resource is either "characters" or "planets".
	// Env: FETCH_RESOURCE
	Resource string `env:"RESOURCE"`

	// Page is the 1-based page number.
	// Env: FETCH_PAGE
	Page int `env:"PAGE"`

	// Limit is the page size.
	// Env: FETCH_LIMIT
	Limit int `env:"LIMIT"`

	// ID selects a single resource instead of a page. Zero lists.
	// Env: FETCH_ID
	ID int `env:"ID"`
}

// Defaults returns a config holding the built-in default values. Every call
// returns fresh maps.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		API: API{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
			DefaultHeaders: map[string]string{
				"Content-Type": "application/json",
			},
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
		Fetch: Fetch{
			Resource: DefaultResource,
			Page:     DefaultPage,
			Limit:    DefaultLimit,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags parsed from args (without the program name)
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
