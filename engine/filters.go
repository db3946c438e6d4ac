package engine

import (
	"strings"
)

// ============================================================================
// FILTERS — Predicate selection and partitioning
// ============================================================================
// Output slices preserve the relative order of the input.
// ============================================================================

// Filter returns the items matching pred.
func Filter[T any](items []T, pred func(T) bool) []T {
	var matched []T
	for _, item := range items {
		if pred(item) {
			matched = append(matched, item)
		}
	}
	return matched
}

// First returns the first item matching pred.
func First[T any](items []T, pred func(T) bool) (T, bool) {
	for _, item := range items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Partition splits items into those matching pred and the rest. Every item
// lands in exactly one of the two slices.
func Partition[T any](items []T, pred func(T) bool) (matched, rest []T) {
	for _, item := range items {
		if pred(item) {
			matched = append(matched, item)
		} else {
			rest = append(rest, item)
		}
	}
	return matched, rest
}

// FoldMatch builds a predicate that is true when field equals any of
// allowed, ignoring case. Empty allowed matches nothing.
func FoldMatch[T any](field func(T) string, allowed ...string) func(T) bool {
	set := toLowerSet(allowed)
	return func(item T) bool {
		return set[strings.ToLower(field(item))]
	}
}

// Not negates a predicate.
func Not[T any](pred func(T) bool) func(T) bool {
	return func(item T) bool { return !pred(item) }
}

// toLowerSet converts a string slice to a lowercase lookup set.
func toLowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}
