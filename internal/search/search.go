// Package search implements the case-insensitive substring filter used by every
// list view.
package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fields extracts the searchable text of a record.
type Fields[T any] func(T) []string

// Fold returns the case-folded form of s. A Caser keeps state, so each call
// builds its own.
func Fold(s string) string { return cases.Fold().String(s) }

// Matches reports whether any of fields contains query after case folding.
// An empty query matches everything.
func Matches(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := Fold(query)
	for _, f := range fields {
		if strings.Contains(Fold(f), q) {
			return true
		}
	}
	return false
}

// Filter returns the records of items for which at least one field contains
// query. Order is preserved; an empty query returns the whole list.
func Filter[T any](items []T, query string, fields Fields[T]) []T {
	out := make([]T, 0, len(items))
	if query == "" {
		return append(out, items...)
	}
	q := Fold(query)
	for _, it := range items {
		for _, f := range fields(it) {
			if strings.Contains(Fold(f), q) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}
