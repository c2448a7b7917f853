// Copyright 2024 - 2026, the Weft contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
catalogcheck validates translation catalog artifacts before they are bundled.

For every artifact named on the command line it decodes the catalog, resolves
the locale's plural ruleset, and cross-checks each plural entry's variant
count against the ruleset's arity. The locale is inferred from the file name
(catalog.<tag>.json) and falls back to the -locale flag. Defects are logged
and the process exits non-zero if any were found.

Usage:

	go run ./cmd/catalogcheck [-rules DIR] [-locale TAG] ARTIFACT...
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"codeberg.org/weft/weft/core/audit"
	"codeberg.org/weft/weft/i18n/catalog"
	"codeberg.org/weft/weft/i18n/locales"
)

func main() {
	audit.SetDefaultLogger()

	rulesDir := flag.String("rules", "locales", "Directory of plural ruleset files.")
	fallbackLocale := flag.String("locale", locales.BaseLocale, "Locale tag for artifacts whose name does not carry one.")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: catalogcheck [-rules DIR] [-locale TAG] ARTIFACT...")
		os.Exit(2)
	}

	registry, err := locales.Load(os.DirFS(*rulesDir), ".")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load plural rulesets")
	}

	var defects atomic.Int64

	var group errgroup.Group

	for _, path := range flag.Args() {
		group.Go(func() error {
			defects.Add(checkArtifact(registry, path, *fallbackLocale))

			return nil
		})
	}

	_ = group.Wait()

	if n := defects.Load(); n > 0 {
		log.Error().Int64("defects", n).Msg("Catalog validation failed")
		os.Exit(1)
	}

	log.Info().Int("artifacts", flag.NArg()).Msg("All catalogs valid")
}

// checkArtifact validates one artifact and returns its defect count.
func checkArtifact(registry *locales.Registry, path, fallbackLocale string) int64 {
	logger := log.With().Str("artifact", path).Logger()

	cat, err := catalog.DecodeFile(path)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to decode catalog")

		return 1
	}

	tag := localeFromName(path)
	if tag == "" {
		tag = fallbackLocale
	}

	table, matched := registry.Resolve(tag)
	arity := table.Arity()

	var defects int64

	cat.Range(func(key string, value catalog.Value) bool {
		if !value.IsPlural() {
			return true
		}

		if len(value.Variants) != arity {
			logger.Warn().
				Str("key", key).
				Str("locale", matched.String()).
				Int("variants", len(value.Variants)).
				Int("want", arity).
				Msg("Plural entry does not match ruleset arity")

			defects++
		}

		return true
	})

	if defects == 0 {
		logger.Info().
			Str("locale", matched.String()).
			Int("entries", cat.Len()).
			Msg("Catalog valid")
	}

	return defects
}

// localeFromName extracts the locale tag from an artifact name like
// "catalog.pt-BR.json" or "catalog.ru.yaml.zst". It returns "" when the name
// carries no parseable tag.
func localeFromName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, ".zst")
	name = strings.TrimSuffix(name, filepath.Ext(name))

	tag := strings.TrimPrefix(filepath.Ext(name), ".")
	if tag == "" {
		return ""
	}

	// Accept both underscore and hyphen; Resolve wants BCP 47 hyphens.
	tag = strings.ReplaceAll(tag, "_", "-")

	if _, err := language.Parse(tag); err != nil {
		return ""
	}

	return tag
}
