// Copyright 2024 - 2026, the Weft contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"fmt"
	"strings"
)

// patch replaces every %<digit> token (digit 1-9) in template with the
// display form of args[offset+digit-1].
//
// offset reserves the leading positional arguments (message, hint, count)
// that are not substitution values; callers pass their full argument vector.
// A token whose computed index falls outside args is left literally in the
// output, so missing data stays visible instead of silently vanishing.
// "%0", "%%", "%x" and a trailing "%" are not tokens and pass through.
func patch(template string, args []any, offset int) string {
	percent := strings.IndexByte(template, '%')
	if percent < 0 {
		return template
	}

	var b strings.Builder

	b.Grow(len(template))

	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' || i+1 >= len(template) {
			b.WriteByte(c)

			continue
		}

		digit := template[i+1]
		if digit < '1' || digit > '9' {
			b.WriteByte(c)

			continue
		}

		index := offset + int(digit-'0') - 1
		if index < 0 || index >= len(args) {
			// Out of range: keep the literal token.
			b.WriteByte(c)

			continue
		}

		b.WriteString(display(args[index]))
		i++
	}

	return b.String()
}

// display converts an argument to its substitution form.
func display(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}
