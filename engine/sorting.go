package engine

import (
	"cmp"
	"slices"
)

// ============================================================================
// SORTING — Stable multi-key ordering and rank selection
// ============================================================================
// Sorting always happens on a copy. Equal elements keep their input order,
// which is what makes "Nth highest" well defined under ties.
// ============================================================================

// Comparator orders two items, returning <0, 0 or >0.
type Comparator[T any] func(a, b T) int

// Ascending orders by field, smallest first.
func Ascending[T any, V cmp.Ordered](field func(T) V) Comparator[T] {
	return func(a, b T) int { return cmp.Compare(field(a), field(b)) }
}

// Descending orders by field, largest first.
func Descending[T any, V cmp.Ordered](field func(T) V) Comparator[T] {
	return func(a, b T) int { return cmp.Compare(field(b), field(a)) }
}

// SortStable returns a sorted copy of items. Later comparators break ties
// left by earlier ones.
func SortStable[T any](items []T, by ...Comparator[T]) []T {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		for _, c := range by {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	})
	return sorted
}

// MaxBy returns the item with the largest measure. The first such item
// wins a tie.
func MaxBy[T any](items []T, measure func(T) float64) (T, bool) {
	return extremeBy(items, measure, 1)
}

// MinBy returns the item with the smallest measure. The first such item
// wins a tie.
func MinBy[T any](items []T, measure func(T) float64) (T, bool) {
	return extremeBy(items, measure, -1)
}

func extremeBy[T any](items []T, measure func(T) float64, sign int) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	best, bestVal := items[0], measure(items[0])
	for _, item := range items[1:] {
		v := measure(item)
		if cmp.Compare(v, bestVal)*sign > 0 {
			best, bestVal = item, v
		}
	}
	return best, true
}

// NthHighest sorts items by measure, largest first, skips n-1 of them and
// returns the next. n is 1-based; n=1 is the maximum.
func NthHighest[T any](items []T, measure func(T) float64, n int) (T, bool) {
	var zero T
	if n < 1 || n > len(items) {
		return zero, false
	}
	sorted := SortStable(items, Descending(measure))
	return sorted[n-1], true
}
