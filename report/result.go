package report

import (
	"fmt"
	"strconv"

	"github.com/spektr-org/workforce/engine"
	"github.com/spektr-org/workforce/roster"
)

// ============================================================================
// RESULT — Render-ready output of one query
// ============================================================================
// Exactly one payload is populated, selected by Type. Values are already
// formatted so every renderer prints the same text.
// ============================================================================

// ResultType discriminates the payload of a Result.
type ResultType string

const (
	TypeScalar  ResultType = "scalar"
	TypeEntries ResultType = "entries"
	TypeValues  ResultType = "values"
	TypeRecords ResultType = "records"
	TypeGroups  ResultType = "groups"
	TypeAbsent  ResultType = "absent"
)

// Result is the output of a query.
type Result struct {
	Type    ResultType        `json:"type"`
	Scalar  string            `json:"scalar,omitempty"`
	Entries []Line            `json:"entries,omitempty"`
	Values  []string          `json:"values,omitempty"`
	Records []roster.Employee `json:"records,omitempty"`
	Groups  []RecordGroup     `json:"groups,omitempty"`
}

// Line is one key/value line of an entries result. Absent marks a key
// whose value does not exist, such as the runner-up of a one-person group.
type Line struct {
	Key    string `json:"key"`
	Value  string `json:"value,omitempty"`
	Absent bool   `json:"absent,omitempty"`
}

// RecordGroup is one keyed list of employees.
type RecordGroup struct {
	Key     string            `json:"key"`
	Records []roster.Employee `json:"records"`
}

// ============================================================================
// CONSTRUCTORS
// ============================================================================

func scalar(v string) Result { return Result{Type: TypeScalar, Scalar: v} }

func absent() Result { return Result{Type: TypeAbsent} }

func entries(lines []Line) Result { return Result{Type: TypeEntries, Entries: lines} }

func values(vs []string) Result { return Result{Type: TypeValues, Values: vs} }

func records(es []roster.Employee) Result { return Result{Type: TypeRecords, Records: es} }

func groups(gs []RecordGroup) Result { return Result{Type: TypeGroups, Groups: gs} }

// record wraps an optional employee.
func record(e roster.Employee, ok bool) Result {
	if !ok {
		return absent()
	}
	return records([]roster.Employee{e})
}

// amount wraps an optional number.
func amount(v float64, ok bool) Result {
	if !ok {
		return absent()
	}
	return scalar(formatAmount(v))
}

// ============================================================================
// ENTRY CONVERSION
// ============================================================================

func countLines[K comparable](es []engine.Entry[K, int]) []Line {
	lines := make([]Line, 0, len(es))
	for _, e := range es {
		lines = append(lines, Line{Key: formatKey(e.Key), Value: strconv.Itoa(e.Value)})
	}
	return lines
}

func amountLines[K comparable](es []engine.Entry[K, float64]) []Line {
	lines := make([]Line, 0, len(es))
	for _, e := range es {
		lines = append(lines, Line{Key: formatKey(e.Key), Value: formatAmount(e.Value)})
	}
	return lines
}

func recordGroups[K comparable](es []engine.Entry[K, []roster.Employee]) []RecordGroup {
	gs := make([]RecordGroup, 0, len(es))
	for _, e := range es {
		gs = append(gs, RecordGroup{Key: formatKey(e.Key), Records: e.Value})
	}
	return gs
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// formatAmount renders salaries and averages with two decimals.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatKey[K comparable](k K) string {
	switch v := any(k).(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
