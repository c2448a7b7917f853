// Copyright 2024 - 2026, the Weft contributors
// SPDX-License-Identifier: AGPL-3.0-only

package locales

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/weft/weft/i18n/pluralrule"
)

func rulesetFS() fstest.MapFS {
	return fstest.MapFS{
		"locales/en.yaml": &fstest.MapFile{Data: []byte("one: n==1\n")},
		"locales/ru.yaml": &fstest.MapFile{
			Data: []byte(`one: n%10==1 && n%100!=11
few: n%10>=2 && n%10<=4 && (n%100<12 || n%100>14)
many: n%10==0 || (n%10>=5 && n%10<=9) || (n%100>=11 && n%100<=14)
`),
		},
		"locales/pt_BR.yaml": &fstest.MapFile{Data: []byte("one: n<=1\n")},
		"locales/ja.yaml":    &fstest.MapFile{Data: []byte("{}\n")},
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	reg, err := Load(rulesetFS(), "locales")
	require.NoError(t, err)

	langs := reg.Languages()
	require.Len(t, langs, 4)
	assert.Equal(t, "en", langs[0].String(), "base locale sorts first")

	got := make([]string, 0, len(langs))
	for _, tag := range langs {
		got = append(got, tag.String())
	}

	assert.Equal(t, []string{"en", "ja", "pt-BR", "ru"}, got)
}

func TestLoadSkipsInvalidLocaleNames(t *testing.T) {
	t.Parallel()

	fsys := rulesetFS()
	fsys["locales/not a tag!.yaml"] = &fstest.MapFile{Data: []byte("one: n==1\n")}

	reg, err := Load(fsys, "locales")
	require.NoError(t, err)
	assert.Len(t, reg.Languages(), 4)
}

func TestLoadRejectsMalformedRuleset(t *testing.T) {
	t.Parallel()

	fsys := rulesetFS()
	fsys["locales/xx.yaml"] = &fstest.MapFile{Data: []byte("one: bogus==1\n")}

	_, err := Load(fsys, "locales")
	require.Error(t, err)
	assert.ErrorIs(t, err, pluralrule.ErrMalformedPredicate)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	reg, err := Load(rulesetFS(), "locales")
	require.NoError(t, err)

	tests := []struct {
		tag         string
		wantMatched string
		wantArity   int
	}{
		{"ru", "ru", 4},
		{"ru-RU", "ru", 4},
		{"pt_BR", "en", 2}, // underscores are for file names; Resolve takes BCP 47
		{"pt-BR", "pt-BR", 2},
		{"ja", "ja", 1},
		{"en", "en", 2},
		{"tlh", "en", 2}, // unknown tag falls back to the base locale
	}

	for _, tt := range tests {
		table, matched := reg.Resolve(tt.tag)
		assert.Equal(t, tt.wantMatched, matched.String(), "tag %q", tt.tag)
		assert.Equal(t, tt.wantArity, table.Arity(), "tag %q", tt.tag)
	}
}

func TestResolveNilRegistry(t *testing.T) {
	t.Parallel()

	var reg *Registry

	table, matched := reg.Resolve("ru")
	assert.True(t, table.IsZero())
	assert.Equal(t, BaseLocale, matched.String())
}
