package engine

// ============================================================================
// MEASURES — Whole-sequence numeric reductions
// ============================================================================
// Reductions that have no value on an empty input (average, max, min)
// report ok=false instead of inventing a zero.
// ============================================================================

// Sum adds up measure across items. An empty input sums to 0.
func Sum[T any](items []T, measure func(T) float64) float64 {
	var total float64
	for _, item := range items {
		total += measure(item)
	}
	return total
}

// Average is the arithmetic mean of measure.
func Average[T any](items []T, measure func(T) float64) (float64, bool) {
	if len(items) == 0 {
		return 0, false
	}
	return Sum(items, measure) / float64(len(items)), true
}

// Max returns the largest value of measure.
func Max[T any](items []T, measure func(T) float64) (float64, bool) {
	item, ok := MaxBy(items, measure)
	if !ok {
		return 0, false
	}
	return measure(item), true
}

// Min returns the smallest value of measure.
func Min[T any](items []T, measure func(T) float64) (float64, bool) {
	item, ok := MinBy(items, measure)
	if !ok {
		return 0, false
	}
	return measure(item), true
}

// Values projects items onto measure in input order.
func Values[T any](items []T, measure func(T) float64) []float64 {
	if len(items) == 0 {
		return nil
	}
	values := make([]float64, len(items))
	for i, item := range items {
		values[i] = measure(item)
	}
	return values
}
