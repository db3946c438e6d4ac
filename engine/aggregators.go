package engine

// ============================================================================
// AGGREGATORS — Grouping, Counting and Per-Group Aggregation
// ============================================================================
// Groups come out in first-occurrence order of their key so that every
// result is deterministic without sorting.
// ============================================================================

// GroupBy partitions items by key.
func GroupBy[T any, K comparable](items []T, key func(T) K) []Group[K, T] {
	if len(items) == 0 {
		return nil
	}

	index := make(map[K]int)
	var groups []Group[K, T]
	for _, item := range items {
		k := key(item)
		i, exists := index[k]
		if !exists {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// CountBy is group-and-count.
func CountBy[T any, K comparable](items []T, key func(T) K) []Entry[K, int] {
	groups := GroupBy(items, key)
	if len(groups) == 0 {
		return nil
	}

	entries := make([]Entry[K, int], len(groups))
	for i, g := range groups {
		entries[i] = Entry[K, int]{Key: g.Key, Value: len(g.Items)}
	}
	return entries
}

// AggregateBy is group-and-aggregate: each group's measure values are
// collapsed with agg. Groups are never empty, so avg/min/max are defined.
func AggregateBy[T any, K comparable](items []T, key func(T) K, measure func(T) float64, agg Aggregation) []Entry[K, float64] {
	groups := GroupBy(items, key)
	if len(groups) == 0 {
		return nil
	}

	entries := make([]Entry[K, float64], len(groups))
	for i, g := range groups {
		entries[i] = Entry[K, float64]{Key: g.Key, Value: aggregate(g.Items, measure, agg)}
	}
	return entries
}

func aggregate[T any](items []T, measure func(T) float64, agg Aggregation) float64 {
	switch agg {
	case AggCount:
		return float64(len(items))
	case AggAvg:
		v, _ := Average(items, measure)
		return v
	case AggMax:
		v, _ := Max(items, measure)
		return v
	case AggMin:
		v, _ := Min(items, measure)
		return v
	default:
		return Sum(items, measure)
	}
}

// MapGroups applies fn to the items of every group, keeping group order.
// It is the "collecting and then" step of per-group queries.
func MapGroups[K comparable, T any, V any](groups []Group[K, T], fn func([]T) V) []Entry[K, V] {
	if len(groups) == 0 {
		return nil
	}

	entries := make([]Entry[K, V], len(groups))
	for i, g := range groups {
		entries[i] = Entry[K, V]{Key: g.Key, Value: fn(g.Items)}
	}
	return entries
}

// HavingCount keeps the entries whose count is strictly greater than
// threshold.
func HavingCount[K comparable](entries []Entry[K, int], threshold int) []Entry[K, int] {
	var kept []Entry[K, int]
	for _, e := range entries {
		if e.Value > threshold {
			kept = append(kept, e)
		}
	}
	return kept
}

// MaxEntry returns the entry with the greatest value. The first such entry
// wins a tie.
func MaxEntry[K comparable, V int | float64](entries []Entry[K, V]) (Entry[K, V], bool) {
	if len(entries) == 0 {
		return Entry[K, V]{}, false
	}
	best := entries[0]
	for _, e := range entries[1:] {
		if e.Value > best.Value {
			best = e
		}
	}
	return best, true
}

// Distinct projects items onto key and drops repeats, keeping the first
// occurrence of each value.
func Distinct[T any, K comparable](items []T, key func(T) K) []K {
	seen := make(map[K]bool)
	var result []K
	for _, item := range items {
		k := key(item)
		if !seen[k] {
			seen[k] = true
			result = append(result, k)
		}
	}
	return result
}

// Project maps every item through fn, keeping input order and repeats.
func Project[T any, V any](items []T, fn func(T) V) []V {
	if len(items) == 0 {
		return nil
	}
	out := make([]V, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}
