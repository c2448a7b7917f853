// Copyright 2024 - 2026, the Weft contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"codeberg.org/weft/weft/i18n/catalog"
	"codeberg.org/weft/weft/i18n/pluralrule"
)

// Runtime answers translation queries against a catalog and a compiled plural
// selector. It is immutable after New and safe for concurrent use.
//
// A Runtime is pinned to the locale data it was built with. Switching locales
// means building a new Runtime from fresh data, not mutating an existing one.
type Runtime struct {
	cat    *catalog.Catalog
	sel    pluralrule.Selector
	logger zerolog.Logger
	strict bool

	// missingKeyOnce deduplicates WARN logs for missing keys in strict mode.
	missingKeyOnce sync.Map
}

// Option configures a Runtime during construction.
type Option func(*Runtime)

// WithLogger sets the logger used for missing-translation warnings.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Runtime) { r.logger = logger }
}

// WithStrictMissing toggles strict mode. When enabled, missing translations
// are logged once per key and the returned text is visibly wrapped as "⟦…⟧".
func WithStrictMissing(strict bool) Option {
	return func(r *Runtime) { r.strict = strict }
}

// New builds a Runtime over cat using the plural ruleset in rules.
//
// The ruleset is compiled here, once; a malformed predicate is a fatal
// initialization error, never a per-call one. A nil catalog is treated as
// empty, so every lookup falls back to its source text.
func New(cat *catalog.Catalog, rules pluralrule.Table, opts ...Option) (*Runtime, error) {
	sel, err := pluralrule.Compile(rules)
	if err != nil {
		return nil, fmt.Errorf("failed to compile plural ruleset: %w", err)
	}

	r := &Runtime{
		cat:    cat,
		sel:    sel,
		logger: log.With().Str("sys", "i18n").Logger(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Plural returns the plural-variant index the runtime's ruleset selects for n.
// It is the raw category selection underlying [Runtime.TrN].
func (r *Runtime) Plural(n int) int {
	return r.sel(n)
}
