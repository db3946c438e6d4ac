package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// ENGINE TESTS
// ============================================================================

type person struct {
	id     int
	name   string
	dept   string
	age    int
	salary float64
}

func dept(p person) string        { return p.dept }
func name(p person) string        { return p.name }
func age(p person) int            { return p.age }
func salary(p person) float64     { return p.salary }
func ageMeasure(p person) float64 { return float64(p.age) }

// The three-record example used throughout the design notes.
var trio = []person{
	{id: 1, dept: "HR", age: 25, salary: 50000},
	{id: 2, dept: "HR", age: 30, salary: 70000},
	{id: 3, dept: "IT", age: 28, salary: 60000},
}

var staff = []person{
	{id: 1, name: "Priya", dept: "HR", age: 32, salary: 41000},
	{id: 2, name: "Arjun", dept: "Sales", age: 25, salary: 38000},
	{id: 3, name: "Kiran", dept: "IT", age: 28, salary: 72000.75},
	{id: 4, name: "Divya", dept: "IT", age: 25, salary: 72000.25},
	{id: 5, name: "Aman", dept: "Sales", age: 41, salary: 55000},
	{id: 6, name: "Neha", dept: "Admin", age: 28, salary: 30000},
	{id: 7, name: "Farhan", dept: "IT", age: 36, salary: 91000},
	{id: 8, name: "Bhavna", dept: "HR", age: 25, salary: 41000},
}

func ids(ps []person) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.id
	}
	return out
}

// ============================================================================
// WORKED EXAMPLE
// ============================================================================

func TestWorkedExample(t *testing.T) {
	assert.Equal(t, []Entry[string, int]{{Key: "HR", Value: 2}, {Key: "IT", Value: 1}}, CountBy(trio, dept))

	maxAge, ok := Max(trio, ageMeasure)
	require.True(t, ok)
	assert.Equal(t, 30.0, maxAge)

	second, ok := NthHighest(trio, salary, 2)
	require.True(t, ok)
	assert.Equal(t, 60000.0, second.salary)
	assert.Equal(t, "IT", second.dept)
}

// ============================================================================
// GROUPING
// ============================================================================

func TestGroupByFirstOccurrenceOrder(t *testing.T) {
	groups := GroupBy(staff, dept)
	require.Len(t, groups, 4)

	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	assert.Equal(t, []string{"HR", "Sales", "IT", "Admin"}, keys)
	assert.Equal(t, []int{3, 4, 7}, ids(groups[2].Items))
}

func TestCountByIsCompleteDisjointCover(t *testing.T) {
	for _, key := range []func(person) string{dept, name} {
		entries := CountBy(staff, key)

		total := 0
		seen := map[string]bool{}
		for _, e := range entries {
			assert.False(t, seen[e.Key], "key %q appears twice", e.Key)
			seen[e.Key] = true
			total += e.Value
		}
		assert.Equal(t, len(staff), total)
	}

	byAge := CountBy(staff, age)
	assert.Equal(t, []Entry[int, int]{{32, 1}, {25, 3}, {28, 2}, {41, 1}, {36, 1}}, byAge)
}

func TestAverageByDepartmentReconstructsTotals(t *testing.T) {
	avgs := AggregateBy(staff, dept, salary, AggAvg)
	counts := CountBy(staff, dept)
	sums := AggregateBy(staff, dept, salary, AggSum)
	require.Len(t, avgs, len(counts))

	for i := range avgs {
		require.Equal(t, avgs[i].Key, counts[i].Key)
		assert.InDelta(t, sums[i].Value, avgs[i].Value*float64(counts[i].Value), 1e-6)
	}
}

func TestAggregateBy(t *testing.T) {
	tests := []struct {
		agg  Aggregation
		want []Entry[string, float64]
	}{
		{AggCount, []Entry[string, float64]{{"HR", 2}, {"IT", 1}}},
		{AggSum, []Entry[string, float64]{{"HR", 120000}, {"IT", 60000}}},
		{AggAvg, []Entry[string, float64]{{"HR", 60000}, {"IT", 60000}}},
		{AggMax, []Entry[string, float64]{{"HR", 70000}, {"IT", 60000}}},
		{AggMin, []Entry[string, float64]{{"HR", 50000}, {"IT", 60000}}},
	}
	for _, tt := range tests {
		t.Run(string(tt.agg), func(t *testing.T) {
			assert.Equal(t, tt.want, AggregateBy(trio, dept, salary, tt.agg))
		})
	}
}

func TestHavingCount(t *testing.T) {
	kept := HavingCount(CountBy(staff, dept), 1)
	assert.Equal(t, []Entry[string, int]{{"HR", 2}, {"Sales", 2}, {"IT", 3}}, kept)

	assert.Empty(t, HavingCount(CountBy(staff, dept), 3))
}

func TestMaxEntryFirstWinsTie(t *testing.T) {
	e, ok := MaxEntry([]Entry[string, int]{{"a", 2}, {"b", 3}, {"c", 3}})
	require.True(t, ok)
	assert.Equal(t, "b", e.Key)

	_, ok = MaxEntry[string, int](nil)
	assert.False(t, ok)
}

func TestMapGroups(t *testing.T) {
	top := MapGroups(GroupBy(staff, dept), func(ps []person) int {
		p, _ := MaxBy(ps, salary)
		return p.id
	})
	assert.Equal(t, []Entry[string, int]{{"HR", 1}, {"Sales", 5}, {"IT", 7}, {"Admin", 6}}, top)
}

func TestDistinct(t *testing.T) {
	depts := Distinct(staff, dept)
	assert.Equal(t, []string{"HR", "Sales", "IT", "Admin"}, depts)

	unique := map[string]bool{}
	for _, p := range staff {
		unique[p.dept] = true
	}
	assert.Len(t, depts, len(unique))
}

// ============================================================================
// FILTERS
// ============================================================================

func TestFilterAndFirst(t *testing.T) {
	older := Filter(staff, func(p person) bool { return p.age > 28 })
	assert.Equal(t, []int{1, 5, 7}, ids(older))

	p, ok := First(staff, FoldMatch(dept, "it"))
	require.True(t, ok)
	assert.Equal(t, 3, p.id)

	_, ok = First(staff, FoldMatch(dept, "finance"))
	assert.False(t, ok)
}

func TestFoldMatch(t *testing.T) {
	match := FoldMatch(dept, "hr", "ADMIN")
	assert.True(t, match(person{dept: "HR"}))
	assert.True(t, match(person{dept: "Admin"}))
	assert.False(t, match(person{dept: "IT"}))

	assert.False(t, FoldMatch[person](dept)(person{dept: ""}))
}

func TestPartitionCoversInput(t *testing.T) {
	older := func(p person) bool { return p.age > 28 }
	matched, rest := Partition(staff, older)

	assert.Equal(t, []int{1, 5, 7}, ids(matched))
	assert.Equal(t, []int{2, 3, 4, 6, 8}, ids(rest))

	all := append(ids(matched), ids(rest)...)
	assert.ElementsMatch(t, ids(staff), all)

	for _, p := range matched {
		assert.True(t, older(p))
	}
	for _, p := range rest {
		assert.True(t, Not(older)(p))
	}
}

// ============================================================================
// SORTING AND SELECTION
// ============================================================================

func TestSortStableMultiKey(t *testing.T) {
	sorted := SortStable(staff, Ascending(age), Ascending(name))
	assert.Equal(t, []int{2, 8, 4, 3, 6, 1, 7, 5}, ids(sorted))

	// input untouched
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, ids(staff))
}

func TestSortStableKeepsInputOrderOnTies(t *testing.T) {
	sorted := SortStable(staff, Descending(salary))
	// 1 and 8 both earn 41000; 1 comes first in the input
	assert.Equal(t, []int{7, 3, 4, 5, 1, 8, 2, 6}, ids(sorted))

	names := make([]string, len(sorted))
	for i, p := range sorted {
		names[i] = p.name
	}
	assert.True(t, strings.HasPrefix(strings.Join(names, ","), "Farhan,Kiran,Divya"))
}

func TestMaxByMinBy(t *testing.T) {
	oldest, ok := MaxBy(staff, ageMeasure)
	require.True(t, ok)
	assert.Equal(t, 5, oldest.id)

	youngest, ok := MinBy(staff, ageMeasure)
	require.True(t, ok)
	assert.Equal(t, 2, youngest.id, "first of the 25-year-olds")

	// close floats are ordered by value, not by truncated difference
	top, ok := MaxBy([]person{{id: 1, salary: 72000.25}, {id: 2, salary: 72000.75}}, salary)
	require.True(t, ok)
	assert.Equal(t, 2, top.id)
}

func TestNthHighest(t *testing.T) {
	first, ok := NthHighest(staff, salary, 1)
	require.True(t, ok)
	maxSalary, _ := Max(staff, salary)
	assert.Equal(t, maxSalary, first.salary)

	second, ok := NthHighest(staff, salary, 2)
	require.True(t, ok)

	var withoutTop []person
	for _, p := range staff {
		if p.id != first.id {
			withoutTop = append(withoutTop, p)
		}
	}
	again, ok := NthHighest(withoutTop, salary, 1)
	require.True(t, ok)
	assert.Equal(t, second, again)

	third, ok := NthHighest(staff, salary, 3)
	require.True(t, ok)
	assert.Equal(t, 4, third.id)

	_, ok = NthHighest(staff, salary, 0)
	assert.False(t, ok)
	_, ok = NthHighest(staff, salary, len(staff)+1)
	assert.False(t, ok)
}

// ============================================================================
// MEASURES
// ============================================================================

func TestMeasures(t *testing.T) {
	assert.Equal(t, 180000.0, Sum(trio, salary))

	avg, ok := Average(trio, salary)
	require.True(t, ok)
	assert.Equal(t, 60000.0, avg)

	lo, ok := Min(trio, salary)
	require.True(t, ok)
	assert.Equal(t, 50000.0, lo)

	assert.Equal(t, []float64{50000, 70000, 60000}, Values(trio, salary))
}

// ============================================================================
// EMPTY INPUT
// ============================================================================

func TestEmptyInput(t *testing.T) {
	var none []person

	assert.Empty(t, GroupBy(none, dept))
	assert.Empty(t, CountBy(none, dept))
	assert.Empty(t, AggregateBy(none, dept, salary, AggAvg))
	assert.Empty(t, Distinct(none, dept))
	assert.Empty(t, Filter(none, FoldMatch(dept, "HR")))
	assert.Empty(t, SortStable(none, Ascending(age)))
	assert.Empty(t, Values(none, salary))

	matched, rest := Partition(none, FoldMatch(dept, "HR"))
	assert.Empty(t, matched)
	assert.Empty(t, rest)

	assert.Equal(t, 0.0, Sum(none, salary))

	_, ok := Average(none, salary)
	assert.False(t, ok)
	_, ok = Max(none, salary)
	assert.False(t, ok)
	_, ok = Min(none, salary)
	assert.False(t, ok)
	_, ok = MaxBy(none, salary)
	assert.False(t, ok)
	_, ok = MinBy(none, salary)
	assert.False(t, ok)
	_, ok = NthHighest(none, salary, 1)
	assert.False(t, ok)
	_, ok = First(none, FoldMatch(dept, "HR"))
	assert.False(t, ok)
}
