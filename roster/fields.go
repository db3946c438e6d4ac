package roster

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ============================================================================
// FIELD CONTRACT — External names and kinds of every Employee field
// ============================================================================
// Shared by the JSON validator and the CSV header mapper so both formats
// enforce the same shape.
// ============================================================================

// Kind is the value kind of a field in the source data.
type Kind int

const (
	KindText Kind = iota
	KindInteger
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	default:
		return "text"
	}
}

// Field describes one Employee attribute as it appears in the source.
type Field struct {
	Key  string
	Kind Kind
	set  func(e *Employee, v value)
}

// value carries a parsed cell or JSON value of any kind.
type value struct {
	text    string
	integer int
	number  float64
}

// Fields lists the contract in declaration order.
var Fields = []Field{
	{Key: "employeeId", Kind: KindInteger, set: func(e *Employee, v value) { e.EmployeeID = v.integer }},
	{Key: "name", Kind: KindText, set: func(e *Employee, v value) { e.Name = v.text }},
	{Key: "salary", Kind: KindNumber, set: func(e *Employee, v value) { e.Salary = v.number }},
	{Key: "department", Kind: KindText, set: func(e *Employee, v value) { e.Department = v.text }},
	{Key: "age", Kind: KindInteger, set: func(e *Employee, v value) { e.Age = v.integer }},
	{Key: "gender", Kind: KindText, set: func(e *Employee, v value) { e.Gender = v.text }},
	{Key: "city", Kind: KindText, set: func(e *Employee, v value) { e.City = v.text }},
	{Key: "yearOfJoining", Kind: KindInteger, set: func(e *Employee, v value) { e.YearOfJoining = v.integer }},
}

// FieldKeys returns the external names of all fields.
func FieldKeys() []string {
	keys := make([]string, len(Fields))
	for i, f := range Fields {
		keys[i] = f.Key
	}
	return keys
}

// lookupField matches an external name case-insensitively.
func lookupField(key string) (Field, bool) {
	key = strings.TrimSpace(key)
	for _, f := range Fields {
		if strings.EqualFold(f.Key, key) {
			return f, true
		}
	}
	return Field{}, false
}

// parseCell converts raw text into a value of the field's kind.
func (f Field) parseCell(raw string) (value, error) {
	raw = strings.TrimSpace(raw)
	switch f.Kind {
	case KindInteger:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return value{}, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidValue, f.Key, raw)
		}
		return value{integer: n}, nil
	case KindNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return value{}, fmt.Errorf("%w: %s must be a number, got %q", ErrInvalidValue, f.Key, raw)
		}
		return value{number: n}, nil
	default:
		return value{text: raw}, nil
	}
}

// validate checks constraints that hold regardless of source format.
func validate(e Employee) error {
	if e.Salary < 0 {
		return fmt.Errorf("%w: salary must be non-negative, got %v", ErrInvalidValue, e.Salary)
	}
	return nil
}
