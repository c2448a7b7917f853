// Copyright 2024 - 2026, the Weft contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package pluralrule compiles locale plural category tables into selector
functions.

A Table carries up to five ordered categories (zero, one, two, few, many),
each with an optional boolean predicate over an integer count n, written in a
small C-like expression language:

	n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20)

Compile turns a table into a pure Selector following GNU gettext plural
semantics: predicate-bearing categories receive sequential variant indices in
table order, the first predicate that holds wins, and counts matching no
predicate fall into an implicit trailing "other" bucket.
*/
package pluralrule

import (
	"fmt"
	"strings"
	"sync"
)

// Selector maps a count to a plural-variant index.
//
// Selectors are pure: the same count always yields the same index. Negative
// counts select like their absolute value.
type Selector func(n int) int

// Table is an ordered plural category table. Each field holds the predicate
// source for its category, or the empty string when the locale does not use
// that category. Field order, not input order, fixes the variant index each
// category receives.
type Table struct {
	Zero string `json:"zero,omitempty" yaml:"zero,omitempty"`
	One  string `json:"one,omitempty"  yaml:"one,omitempty"`
	Two  string `json:"two,omitempty"  yaml:"two,omitempty"`
	Few  string `json:"few,omitempty"  yaml:"few,omitempty"`
	Many string `json:"many,omitempty" yaml:"many,omitempty"`
}

// categoryNames is the fixed evaluation order.
var categoryNames = [...]string{"zero", "one", "two", "few", "many"}

// predicates returns the raw predicate sources in fixed category order.
func (t Table) predicates() [5]string {
	return [5]string{t.Zero, t.One, t.Two, t.Few, t.Many}
}

// Arity returns the number of plural variants the table selects between,
// including the implicit "other" bucket.
func (t Table) Arity() int {
	count := 1

	for _, src := range t.predicates() {
		if src != "" {
			count++
		}
	}

	return count
}

// IsZero reports whether no category carries a predicate.
func (t Table) IsZero() bool {
	return t == Table{}
}

// canonical returns a stable cache key for the table.
func (t Table) canonical() string {
	p := t.predicates()

	return strings.Join(p[:], "\x00")
}

// selectorCache caches compiled selectors per distinct table for the process
// lifetime. Entries are never evicted; the set of tables is fixed at
// initialization by the build pipeline.
var selectorCache sync.Map // key: canonical table text, value: Selector

// Compile derives a Selector from t, memoized per distinct table.
//
// A malformed predicate makes the whole compilation fail; callers must treat
// that as a fatal initialization error rather than retrying per call.
func Compile(t Table) (Selector, error) {
	key := t.canonical()
	if sel, ok := selectorCache.Load(key); ok {
		return sel.(Selector), nil
	}

	type branch struct {
		pred  expr
		index int
	}

	var branches []branch

	for i, src := range t.predicates() {
		if src == "" {
			continue
		}

		pred, err := parsePredicate(src)
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", categoryNames[i], err)
		}

		branches = append(branches, branch{pred: pred, index: len(branches)})
	}

	other := len(branches)

	sel := Selector(func(n int) int {
		if n < 0 {
			n = -n
		}

		for _, b := range branches {
			if b.pred.eval(n) != 0 {
				return b.index
			}
		}

		return other
	})

	// Concurrent first compiles converge on whichever selector was stored
	// first; all of them are functionally equivalent.
	if cached, loaded := selectorCache.LoadOrStore(key, sel); loaded {
		return cached.(Selector), nil
	}

	return sel, nil
}

// MustCompile is Compile for tables known to be well formed. It panics on
// compile errors and is intended for static tables in tests and tools.
func MustCompile(t Table) Selector {
	sel, err := Compile(t)
	if err != nil {
		panic(fmt.Sprintf("pluralrule: %v", err))
	}

	return sel
}
