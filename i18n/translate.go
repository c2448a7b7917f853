// Copyright 2024 - 2026, the Weft contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

// HintSeparator joins a disambiguation hint and a message into one lookup
// key, using the EOT control byte gettext uses for msgctxt.
const HintSeparator = "\x04"

// Tr returns the translation for message, which should be the original
// source-language UI text. Supplied args replace %1..%9 placeholder tokens.
//
// If no scalar translation exists, Tr returns message itself as the template;
// a missing translation is not an error. The template is patched only when
// extra arguments are supplied.
func (r *Runtime) Tr(message string, args ...any) string {
	template, found := r.lookupScalar(message)
	if !found {
		template = r.missing(message, message)
	}

	if len(args) == 0 {
		return template
	}

	// The argument vector mirrors the call: slot 0 is the message, so %1
	// addresses the first extra argument.
	vector := make([]any, 0, len(args)+1)
	vector = append(vector, message)
	vector = append(vector, args...)

	return patch(template, vector, 1)
}

// TrC is Tr with a disambiguation hint, for messages whose text collides but
// whose meaning differs ("Open" the verb vs. "Open" the state).
//
// The hint participates in lookup: the key "hint\x04message" is tried first,
// then the bare message, so catalogs that pre-bake hints and those that do
// not both resolve. Placeholder numbering is unchanged: %1 is still the first
// argument after the message.
func (r *Runtime) TrC(hint, message string, args ...any) string {
	template, found := r.lookupScalar(hint + HintSeparator + message)
	if !found {
		template, found = r.lookupScalar(message)
	}

	if !found {
		template = r.missing(logKey(hint, message), message)
	}

	if len(args) == 0 {
		return template
	}

	vector := make([]any, 0, len(args)+2)
	vector = append(vector, hint, message)
	vector = append(vector, args...)

	return patch(template, vector, 2)
}

// TrN returns the translation for a counted message, selecting the plural
// variant the runtime's ruleset picks for n.
//
// The catalog is consulted under the singular text. When it holds a variant
// list, the selected variant is the template. On any miss (absent key, scalar
// shape, selected index out of range, empty variant) TrN falls back to
// singular when n == 1 and plural otherwise.
//
// The template is always patched: %1 addresses the first argument after n,
// so a count to display must be passed again as an argument:
//
//	rt.TrN("%1 file", "%1 files", n, n)
func (r *Runtime) TrN(singular, plural string, n int, args ...any) string {
	template, found := r.lookupVariant(singular, n)
	if !found {
		fallback := plural
		if n == 1 {
			fallback = singular
		}

		template = r.missing(singular, fallback)
	}

	vector := make([]any, 0, len(args)+3)
	vector = append(vector, singular, plural, n)
	vector = append(vector, args...)

	return patch(template, vector, 3)
}

// Translate is the long-form alias of [Runtime.Tr].
func (r *Runtime) Translate(message string, args ...any) string {
	return r.Tr(message, args...)
}

// TranslateWithContext is the long-form alias of [Runtime.TrC].
func (r *Runtime) TranslateWithContext(hint, message string, args ...any) string {
	return r.TrC(hint, message, args...)
}

// TranslatePlural is the long-form alias of [Runtime.TrN].
func (r *Runtime) TranslatePlural(singular, plural string, n int, args ...any) string {
	return r.TrN(singular, plural, n, args...)
}

// lookupScalar finds a scalar translation for key. A plural-shaped value is a
// miss: the caller asked for a plain message.
func (r *Runtime) lookupScalar(key string) (string, bool) {
	value, ok := r.cat.Lookup(key)
	if !ok || value.IsPlural() {
		return "", false
	}

	return value.Single, true
}

// lookupVariant finds the plural variant for key selected by n. A scalar
// value, an out-of-range index, and an empty variant are all misses.
func (r *Runtime) lookupVariant(key string, n int) (string, bool) {
	value, ok := r.cat.Lookup(key)
	if !ok || !value.IsPlural() {
		return "", false
	}

	index := r.sel(n)
	if index >= len(value.Variants) || value.Variants[index] == "" {
		return "", false
	}

	return value.Variants[index], true
}
