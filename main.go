// Copyright 2024 - 2026, the Weft contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Weft is the i18n runtime a web bundler splices into produced bundles. This
command exercises the runtime outside a bundle: it loads a catalog artifact
and a locale ruleset the way injected code would, then answers a single
translation query from the command line.

Usage:

	weft [-config FILE] tr MESSAGE [ARGS...]
	weft [-config FILE] trc HINT MESSAGE [ARGS...]
	weft [-config FILE] trn SINGULAR PLURAL N [ARGS...]
	weft [-config FILE] plural N
*/
package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	"codeberg.org/weft/weft/assets"
	"codeberg.org/weft/weft/config"
	"codeberg.org/weft/weft/core/audit"
	"codeberg.org/weft/weft/i18n"
	"codeberg.org/weft/weft/i18n/catalog"
	"codeberg.org/weft/weft/i18n/locales"
)

var errUsage = errors.New("usage: weft tr|trc|trn|plural ...")

// embeddedContent holds the built-in rulesets and example catalogs.
//
//go:embed all:locales all:examples
var embeddedContent embed.FS

// init assigns the embedded filesystem to the exported assets.FS variable.
//
//nolint:gochecknoinits // this is a good use of init()
func init() {
	assets.FS = embeddedContent
}

func main() {
	if err := run(); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}

		log.Fatal().Err(err).Msg("weft failed")
	}
}

// run loads configuration and data, builds the runtime, and answers one query.
func run() error {
	audit.SetDefaultLogger()

	if err := config.Global.LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	registry, err := loadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load plural rulesets: %w", err)
	}

	table, matched := registry.Resolve(config.Global.Basic.Locale)
	log.Debug().Str("locale", matched.String()).Msg("Resolved locale")

	var cat *catalog.Catalog

	if path := config.Global.Basic.Catalog; path != "" {
		cat, err = catalog.DecodeFile(path)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}

		log.Debug().Str("path", path).Int("entries", cat.Len()).Msg("Loaded catalog")
	}

	runtime, err := i18n.New(cat, table,
		i18n.WithStrictMissing(config.Global.Internationalization.StrictMissingKeys))
	if err != nil {
		return fmt.Errorf("failed to initialize i18n runtime: %w", err)
	}

	result, err := answer(runtime, flag.Args())
	if err != nil {
		return err
	}

	fmt.Println(result)

	return nil
}

// loadRegistry loads rulesets from the configured directory, falling back to
// the embedded built-ins.
func loadRegistry() (*locales.Registry, error) {
	if dir := config.Global.Basic.RulesetDir; dir != "" {
		return locales.Load(os.DirFS(dir), ".")
	}

	return locales.Load(assets.FS, "locales")
}

// answer dispatches one query against the runtime.
func answer(runtime *i18n.Runtime, args []string) (string, error) {
	if len(args) == 0 {
		return "", errUsage
	}

	switch op := args[0]; op {
	case "tr", "translate":
		if len(args) < 2 {
			return "", fmt.Errorf("%w: tr MESSAGE [ARGS...]", errUsage)
		}

		return runtime.Tr(args[1], vector(args[2:])...), nil
	case "trc", "translateWithContext":
		if len(args) < 3 {
			return "", fmt.Errorf("%w: trc HINT MESSAGE [ARGS...]", errUsage)
		}

		return runtime.TrC(args[1], args[2], vector(args[3:])...), nil
	case "trn", "translatePlural":
		if len(args) < 4 {
			return "", fmt.Errorf("%w: trn SINGULAR PLURAL N [ARGS...]", errUsage)
		}

		n, err := strconv.Atoi(args[3])
		if err != nil {
			return "", fmt.Errorf("%w: N must be an integer, got %q", errUsage, args[3])
		}

		return runtime.TrN(args[1], args[2], n, vector(args[4:])...), nil
	case "plural":
		if len(args) != 2 {
			return "", fmt.Errorf("%w: plural N", errUsage)
		}

		n, err := strconv.Atoi(args[1])
		if err != nil {
			return "", fmt.Errorf("%w: N must be an integer, got %q", errUsage, args[1])
		}

		return strconv.Itoa(runtime.Plural(n)), nil
	default:
		return "", fmt.Errorf("%w: unknown operation %q", errUsage, op)
	}
}

// vector widens string arguments for the placeholder patcher.
func vector(args []string) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a
	}

	return out
}
