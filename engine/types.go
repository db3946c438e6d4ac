package engine

// ============================================================================
// ENGINE TYPES — Domain-Agnostic Query Primitives
// ============================================================================
// Every function in this package reads a []T through accessor functions
// (key: func(T) K, measure: func(T) float64, predicate: func(T) bool) and
// never writes to it. Functions that reorder return a fresh slice.
//
// Dependency: engine has ZERO external dependencies.
// ============================================================================

// Aggregation names how a group's measure values collapse to one number.
type Aggregation string

const (
	AggCount Aggregation = "count"
	AggSum   Aggregation = "sum"
	AggAvg   Aggregation = "avg"
	AggMax   Aggregation = "max"
	AggMin   Aggregation = "min"
)

// Group is one partition produced by GroupBy.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// Entry is one key/value pair of an ordered mapping.
// Mappings keep the first-occurrence order of keys in the input.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}
