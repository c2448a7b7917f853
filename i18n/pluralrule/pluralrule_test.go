// Copyright 2024 - 2026, the Weft contributors
// SPDX-License-Identifier: AGPL-3.0-only

package pluralrule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileSlavicTable(t *testing.T) {
	t.Parallel()

	table := Table{
		One:  "n%10==1 && n%100!=11",
		Few:  "n%10>=2 && n%10<=4 && (n%100<12 || n%100>14)",
		Many: "n%10==0 || (n%10>=5 && n%10<=9) || (n%100>=11 && n%100<=14)",
	}

	sel, err := Compile(table)
	require.NoError(t, err)

	tests := []struct {
		n    int
		want int
	}{
		{1, 0},
		{21, 0},
		{101, 0},
		{2, 1},
		{3, 1},
		{4, 1},
		{22, 1},
		{5, 2},
		{11, 2},
		{12, 2},
		{14, 2},
		{20, 2},
		{100, 2},
		// Negative counts select like their absolute value.
		{-3, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sel(tt.n), "n=%d", tt.n)
	}
}

func TestCompileHonorsTableOrder(t *testing.T) {
	t.Parallel()

	// A deliberately unnatural table: ONE is declared before ZERO in the fixed
	// field order, so ONE must take index 0 even though ZERO "comes first"
	// semantically.
	table := Table{
		One:  "n==1",
		Zero: "", // absent
		Few:  "n==0",
	}

	sel, err := Compile(table)
	require.NoError(t, err)

	assert.Equal(t, 0, sel(1), "first declared predicate takes index 0")
	assert.Equal(t, 1, sel(0), "second declared predicate takes index 1")
	assert.Equal(t, 2, sel(7), "unmatched counts fall into the trailing bucket")
}

func TestCompileFirstMatchWins(t *testing.T) {
	t.Parallel()

	// Overlapping predicates: both hold for n=1, the earlier category wins.
	table := Table{
		One: "n>=1",
		Few: "n==1",
	}

	sel, err := Compile(table)
	require.NoError(t, err)

	assert.Equal(t, 0, sel(1))
	assert.Equal(t, 0, sel(5))
	assert.Equal(t, 2, sel(0))
}

func TestCompileEmptyTable(t *testing.T) {
	t.Parallel()

	sel, err := Compile(Table{})
	require.NoError(t, err)

	// No predicates: every count lands in the single "other" bucket.
	for _, n := range []int{0, 1, 2, 100} {
		assert.Equal(t, 0, sel(n))
	}
}

func TestCompileMemoizesPerTable(t *testing.T) {
	t.Parallel()

	table := Table{One: "n==1", Two: "n==2"}

	first, err := Compile(table)
	require.NoError(t, err)

	second, err := Compile(table)
	require.NoError(t, err)

	// Functionally equivalent and deterministic across compiles and calls.
	for n := range 50 {
		assert.Equal(t, first(n), second(n), "n=%d", n)
		assert.Equal(t, first(n), first(n), "n=%d", n)
	}
}

func TestCompileArity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Table{}.Arity())
	assert.Equal(t, 2, Table{One: "n==1"}.Arity())
	assert.Equal(t, 3, Table{One: "n==1", Many: "n>5"}.Arity())
	assert.Equal(t, 6, Table{
		Zero: "n==0", One: "n==1", Two: "n==2", Few: "n==3", Many: "n==4",
	}.Arity())
}

func TestCompileMalformedPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pred string
	}{
		{"undefined variable", "m == 1"},
		{"numeric result", "n % 10"},
		{"single equals", "n = 1"},
		{"single ampersand", "n==1 & n==2"},
		{"single pipe", "n==1 | n==2"},
		{"unbalanced paren", "(n==1"},
		{"trailing garbage", "n==1)"},
		{"boolean modulo", "(n==1) % 2"},
		{"boolean comparison", "(n==1) == (n==2)"},
		{"not on number", "!n == 1"},
		{"modulo by zero", "n % 0 == 1"},
		{"stray character", "n == $1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Compile(Table{One: tt.pred})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedPredicate)
		})
	}
}

func TestCompileErrorNamesCategory(t *testing.T) {
	t.Parallel()

	_, err := Compile(Table{Few: "bogus == 1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category few")
}

func TestSelectorModuloByVariableZero(t *testing.T) {
	t.Parallel()

	// "n % n" is degenerate but must not fault when n is 0.
	sel, err := Compile(Table{One: "n % n == 0"})
	require.NoError(t, err)

	assert.NotPanics(t, func() { sel(0) })
}

func TestCompileWhitespaceInsensitive(t *testing.T) {
	t.Parallel()

	loose, err := Compile(Table{One: "  n % 10 == 1\t&& n % 100 != 11 "})
	require.NoError(t, err)

	tight, err := Compile(Table{One: "n%10==1&&n%100!=11"})
	require.NoError(t, err)

	for _, n := range []int{0, 1, 11, 21, 111} {
		assert.Equal(t, tight(n), loose(n), "n=%d", n)
	}
}
