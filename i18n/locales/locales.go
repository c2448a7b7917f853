// Copyright 2024 - 2026, the Weft contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package locales loads per-locale plural ruleset files and resolves a named
locale to its plural category table.

Ruleset files are YAML documents named <locale>.yaml, where <locale> is a
BCP 47 tag using hyphens or underscores, for example "pt-BR.yaml" or
"pt_BR.yaml". Each document carries the optional zero/one/two/few/many
predicates of a [pluralrule.Table]. The base locale, "en", is always part of
the registry and is the fallback for tags with no ruleset of their own.

This is resolution of an explicitly named tag, not locale negotiation: the
runtime is pinned to one locale for its lifetime, and callers name that
locale once at initialization.
*/
package locales

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"codeberg.org/weft/weft/i18n/pluralrule"
)

// BaseLocale is the locale every registry contains and falls back to.
const BaseLocale = "en"

// baseTag is the canonical tag for BaseLocale.
var baseTag = language.Make(BaseLocale)

// Registry maps canonical BCP 47 tags to plural rulesets.
// It is immutable after Load and safe for concurrent use.
type Registry struct {
	byTag   map[string]pluralrule.Table
	tags    []language.Tag
	matcher language.Matcher
}

// Load reads every .yaml ruleset under dir in fsys and builds a Registry.
//
// Files whose name does not parse as a language tag are skipped with a
// warning; a ruleset that fails to decode or compile is an error, since a
// registry with a malformed predicate must never reach the runtime.
func Load(fsys fs.FS, dir string) (*Registry, error) {
	logger := log.With().Str("sys", "i18n").Logger()

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read ruleset directory: %w", err)
	}

	reg := &Registry{byTag: make(map[string]pluralrule.Table)}

	var tagsList []language.Tag

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		fileName := entry.Name()
		localeName := strings.TrimSuffix(fileName, ".yaml")

		// Accept both underscore and hyphen.
		// Convert to a canonical BCP 47 string for matching and display.
		t, err := language.Parse(strings.ReplaceAll(localeName, "_", "-"))
		if err != nil {
			logger.Warn().Err(err).Str("file", fileName).Msg("Skipping invalid locale file")

			continue
		}

		data, err := fs.ReadFile(fsys, path.Join(dir, fileName))
		if err != nil {
			return nil, fmt.Errorf("failed to read ruleset %s: %w", fileName, err)
		}

		var table pluralrule.Table
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("failed to decode ruleset %s: %w", fileName, err)
		}

		// Compile up front so malformed predicates fail here, not at first use.
		if _, err := pluralrule.Compile(table); err != nil {
			return nil, fmt.Errorf("ruleset %s: %w", fileName, err)
		}

		canonical := t.String()
		reg.byTag[canonical] = table
		tagsList = append(tagsList, t)
	}

	// Build a matcher from the loaded tags.
	// baseTag is first to make it the default fallback for matching.
	all := make([]language.Tag, 0, len(tagsList)+1)
	all = append(all, baseTag)

	sort.Slice(tagsList, func(i, j int) bool { return tagsList[i].String() < tagsList[j].String() })

	for _, t := range tagsList {
		if t == baseTag {
			continue
		}

		all = append(all, t)
	}

	reg.matcher = language.NewMatcher(all)
	reg.tags = all

	logger.Info().Int("count", len(reg.byTag)).Msg("Loaded plural rulesets")

	return reg, nil
}

// Resolve returns the ruleset for tag along with the canonical supported tag
// it matched. Unknown or unparseable tags resolve to the base locale's
// ruleset.
func (r *Registry) Resolve(tag string) (pluralrule.Table, language.Tag) {
	if r == nil || r.matcher == nil {
		return pluralrule.Table{}, baseTag
	}

	// The matched tag can carry the request's region ("ru-RU" for a "ru"
	// ruleset); index the supported list instead of the matched string.
	_, index := language.MatchStrings(r.matcher, tag)
	supported := r.tags[index]

	return r.byTag[supported.String()], supported
}

// Languages returns the registry's tags, base locale first, the rest sorted
// by canonical string. The returned slice is a copy and safe to retain.
func (r *Registry) Languages() []language.Tag {
	out := make([]language.Tag, len(r.tags))
	copy(out, r.tags)

	return out
}

