// Copyright 2024 - 2026, the Weft contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"flag"
	"fmt"
	"os"
)

// Global exposes the runtime configuration.
var Global WeftConfig

// WeftConfig holds the tool configuration.
type WeftConfig struct {
	Basic struct {
		// Catalog is the path of the translation catalog artifact to load
		// (.json, .yaml, .yml, optionally .zst compressed).
		Catalog string `env:"WEFT_CATALOG,overwrite" yaml:"catalog"`

		// Locale is the BCP 47 tag whose plural ruleset the runtime uses.
		Locale string `env:"WEFT_LOCALE,overwrite" yaml:"locale"`

		// RulesetDir is the directory of plural ruleset files. When empty,
		// the rulesets embedded in the binary are used.
		RulesetDir string `env:"WEFT_RULESET_DIR,overwrite" yaml:"rulesetDir"`
	} `yaml:"basic"`

	Internationalization struct {
		// Strict mode for missing keys.
		//
		// When enabled, missing keys are logged (deduplicated per key) and
		// visibly wrapped using markers.
		StrictMissingKeys bool `env:"WEFT_STRICT_MISSING_KEYS" yaml:"strictMissingKeys"`
	} `yaml:"internationalization"`

	Log struct {
		Level   string   `env:"WEFT_LOG_LEVEL,overwrite" yaml:"logLevel"`
		Outputs []string `env:"WEFT_LOG_OUTPUTS,overwrite" yaml:"logOutputs"`
		Format  string   `env:"WEFT_LOG_FORMAT,overwrite" yaml:"logFormat"`
	} `yaml:"log"`
}

// parseCommandLineArgs defines and parses flags, returning the value of the "config" flag.
func parseCommandLineArgs() string {
	var configFilePath string

	if flag.Lookup("config") == nil {
		flag.StringVar(&configFilePath, "config", "./config.yaml", "Path to a Weft configuration file in YAML format.")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	return configFilePath
}

// LoadConfig loads the configuration from various sources.
func (cfg *WeftConfig) LoadConfig() error {
	parsedConfigFlagValue := parseCommandLineArgs()

	// Check if the -config flag was explicitly set by the user.
	configFlagUserSet := false

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configFlagUserSet = true
		}
	})

	var configFilePath string

	// Determine the config file path with the correct precedence:
	// 1. Command-line flag (-config)
	// 2. Environment variable (WEFT_CONFIGFILE)
	// 3. Default path with fallback check
	if configFlagUserSet {
		configFilePath = parsedConfigFlagValue
	} else if envVar := os.Getenv("WEFT_CONFIGFILE"); envVar != "" {
		configFilePath = envVar
	} else {
		configFilePath = parsedConfigFlagValue
		// Then, perform a fallback check for "./config.yml".
		if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
			ymlPath := "./config.yml"
			if _, statErr := os.Stat(ymlPath); statErr == nil {
				configFilePath = ymlPath
			}
		}
	}

	cfg.SetDefaults()

	if err := cfg.readYAML(configFilePath); err != nil {
		return fmt.Errorf("error loading YAML config: %w", err)
	}

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupAudit()

	return nil
}
