// Copyright 2024 - 2026, the Weft contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package catalog holds the translation store injected into bundles by the build
pipeline: an immutable mapping from message key to either a single replacement
string or an ordered list of plural variants.

The pipeline emits catalogs as JSON artifacts (optionally zstd-compressed);
a YAML form exists for hand authoring and fixtures. A value's shape decides
which lookup path applies at translation time, so decoders preserve the
scalar/list distinction instead of flattening it.
*/
package catalog

// Value is one translation store entry: either a scalar template or an
// ordered plural-variant list, never both.
type Value struct {
	Single   string
	Variants []string
}

// IsPlural reports whether the value carries plural variants.
func (v Value) IsPlural() bool {
	return v.Variants != nil
}

// Scalar returns a scalar Value.
func Scalar(text string) Value {
	return Value{Single: text}
}

// Plural returns a plural-variant Value. The variant order must follow the
// locale table's category order, with the "other" bucket last.
func Plural(variants ...string) Value {
	if variants == nil {
		variants = []string{}
	}

	return Value{Variants: variants}
}

// Catalog is an immutable message-key store. The zero value is an empty,
// usable catalog.
type Catalog struct {
	entries map[string]Value
}

// New builds a Catalog from entries. The map is copied; later mutation of the
// argument does not affect the catalog.
func New(entries map[string]Value) *Catalog {
	copied := make(map[string]Value, len(entries))
	for key, value := range entries {
		copied[key] = value
	}

	return &Catalog{entries: copied}
}

// Lookup returns the value for key and whether it exists.
func (c *Catalog) Lookup(key string) (Value, bool) {
	if c == nil {
		return Value{}, false
	}

	value, ok := c.entries[key]

	return value, ok
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}

	return len(c.entries)
}

// Range calls fn for every entry until fn returns false.
// Iteration order is unspecified.
func (c *Catalog) Range(fn func(key string, value Value) bool) {
	if c == nil {
		return
	}

	for key, value := range c.entries {
		if !fn(key, value) {
			return
		}
	}
}
