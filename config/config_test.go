// Copyright 2024 - 2026, the Weft contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"testing"
)

/*
TestLoadConfig focuses on verifying main functionality (e.g. fallback when invalid input),
and *shouldn't* need exhaustive scenarios
*/

// TestLoadConfig is a test function that verifies the behavior of the LoadConfig function.
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string            // Description of the test case
		env     map[string]string // Name of the environment variable and its value
		wantErr bool              // Whether an error is expected
	}{
		{
			name: "Valid configuration",
			env: map[string]string{
				"WEFT_LOCALE":  "pt-BR",
				"WEFT_CATALOG": "catalog.json",
			},
			wantErr: false,
		},
		{
			name:    "Defaults only",
			env:     map[string]string{},
			wantErr: false,
		},
		{
			name: "Invalid WEFT_LOCALE",
			env: map[string]string{
				"WEFT_LOCALE": "not a locale!",
			},
			wantErr: true,
		},
		{
			name: "Invalid WEFT_LOG_LEVEL",
			env: map[string]string{
				"WEFT_LOG_LEVEL": "loud",
			},
			wantErr: true,
		},
		{
			name: "Invalid WEFT_LOG_FORMAT",
			env: map[string]string{
				"WEFT_LOG_FORMAT": "xml",
			},
			wantErr: true,
		},
		{
			name: "Strict missing keys",
			env: map[string]string{
				"WEFT_STRICT_MISSING_KEYS": "true",
			},
			wantErr: false,
		},
		{
			name: "Multiple log outputs",
			env: map[string]string{
				"WEFT_LOG_OUTPUTS": "/dev/stderr, /dev/stdout",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Set up environment
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			// Create a new WeftConfig instance
			config := &WeftConfig{}

			// Call LoadConfig
			err := config.LoadConfig()

			// Check for errors
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadConfig() error = %v, wantErr %v", err, tt.wantErr)

				return
			}

			if !tt.wantErr {
				if locale, set := tt.env["WEFT_LOCALE"]; set && config.Basic.Locale != locale {
					t.Errorf("LoadConfig() Locale = %v, want %v", config.Basic.Locale, locale)
				}

				if catalog, set := tt.env["WEFT_CATALOG"]; set && config.Basic.Catalog != catalog {
					t.Errorf("LoadConfig() Catalog = %v, want %v", config.Basic.Catalog, catalog)
				}

				if config.Log.Level == "" {
					t.Error("LoadConfig() Log.Level is empty")
				}

				if _, set := tt.env["WEFT_STRICT_MISSING_KEYS"]; set && !config.Internationalization.StrictMissingKeys {
					t.Error("LoadConfig() StrictMissingKeys = false, want true")
				}

				if _, set := tt.env["WEFT_LOG_OUTPUTS"]; set && len(config.Log.Outputs) != 2 {
					t.Errorf("LoadConfig() Log.Outputs count = %v, want 2", len(config.Log.Outputs))
				}
			}
		})
	}
}
