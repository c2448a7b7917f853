// Copyright 2024 - 2026, the Weft contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package i18n is the translation runtime Weft splices into produced bundles.
It resolves translated strings, selects plural forms per locale, and
substitutes positional placeholders at read time.

# Quick start

Use the original source-language UI text as the message key; do not invent
keys. The build pipeline supplies the catalog and the locale's plural
ruleset; the runtime is built once from both:

	cat, err := catalog.DecodeFile("bundle/i18n.fr.json")
	...
	rules, _ := registry.Resolve("fr")
	rt, err := i18n.New(cat, rules)
	...
	rt.Tr("Hello %1", user.Name)
	rt.TrC("menu", "Open")
	rt.TrN("%1 file", "%1 files", n, n)
	rt.Plural(n)

# Missing translations

A missing translation is not an error: the source text itself becomes the
template. With WithStrictMissing enabled, misses are additionally logged once
per key and the returned text is visibly wrapped as "⟦…⟧".

# Formatting

Templates use positional tokens %1 through %9. Each operation reserves its
leading fixed parameters, so %1 always addresses the first extra argument of
the call. A token with no corresponding argument stays in the output
literally.

# Locales

A Runtime is pinned to one locale's data for its lifetime. To change locale,
build a new Runtime from that locale's catalog and ruleset; there is no
partial update. Built-in plural rulesets live in the repository's locales
directory and are resolved through package i18n/locales.
*/
package i18n
