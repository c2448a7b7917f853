// Copyright 2024 - 2026, the Weft contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/language"
)

// validation errors.
var (
	errInvalidLogLevel  = errors.New("invalid Log.Level value")
	errInvalidLogFormat = errors.New("invalid Log.Format value")
	errInvalidLocale    = errors.New("invalid Basic.Locale value")
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"console", "json"}
)

// validate checks the configuration for values that would misconfigure the
// runtime in ways only noticed later.
func (cfg *WeftConfig) validate() error {
	if !slices.Contains(validLogLevels, cfg.Log.Level) {
		return fmt.Errorf("%w: %q (want one of %v)", errInvalidLogLevel, cfg.Log.Level, validLogLevels)
	}

	if !slices.Contains(validLogFormats, cfg.Log.Format) {
		return fmt.Errorf("%w: %q (want one of %v)", errInvalidLogFormat, cfg.Log.Format, validLogFormats)
	}

	if cfg.Basic.Locale != "" {
		if _, err := language.Parse(cfg.Basic.Locale); err != nil {
			return fmt.Errorf("%w: %q: %w", errInvalidLocale, cfg.Basic.Locale, err)
		}
	}

	return nil
}
