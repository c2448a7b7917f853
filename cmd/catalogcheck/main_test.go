// Copyright 2024 - 2026, the Weft contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"testing"
)

func TestLocaleFromName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"catalog.ru.json", "ru"},
		{"bundle/i18n/catalog.pt-BR.yaml", "pt-BR"},
		{"catalog.pt_BR.json", "pt-BR"},
		{"catalog.ru.json.zst", "ru"},
		{"catalog.json", ""},
		{"ru.json", ""},
		{"catalog.notatag!.json", ""},
	}

	for _, tt := range tests {
		if got := localeFromName(tt.path); got != tt.want {
			t.Errorf("localeFromName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
