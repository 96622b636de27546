// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before a client is built from it.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		return fmt.Errorf("%w: base url is empty", ErrInvalidAPIConfigs)
	}
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidAPIConfigs)
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	switch cfg.Fetch.Resource {
	case ResourceCharacters, ResourcePlanets:
	default:
		return fmt.Errorf("%w: unknown resource %q", ErrInvalidFetchConfigs, cfg.Fetch.Resource)
	}
	if cfg.Fetch.Page < 1 || cfg.Fetch.Limit < 1 {
		return fmt.Errorf("%w: page and limit must be positive", ErrInvalidFetchConfigs)
	}
	if cfg.Fetch.ID < 0 {
		return fmt.Errorf("%w: id must not be negative", ErrInvalidFetchConfigs)
	}

	return nil
}
