// Copyright 2024 - 2026, the Weft contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

// missing produces the fallback text for a key with no usable translation.
// In strict mode the miss is logged once per key and the fallback is visibly
// wrapped; otherwise the fallback passes through untouched.
func (r *Runtime) missing(key, fallback string) string {
	if !r.strict {
		return fallback
	}

	if _, loaded := r.missingKeyOnce.LoadOrStore(key, struct{}{}); !loaded {
		r.logger.Warn().
			Str("key", key).
			Msg("Missing translation")
	}

	return "⟦" + fallback + "⟧"
}

// logKey composes the logging key like gettext "ctx<sep>msgid" when a hint is
// present.
func logKey(hint, message string) string {
	if hint != "" {
		return hint + HintSeparator + message
	}

	return message
}
