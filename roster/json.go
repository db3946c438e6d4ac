package roster

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
)

// ============================================================================
// JSON DECODER — Top-level array of Employee objects
// ============================================================================
// Strict: every contract field must be present and non-null, unknown keys
// are rejected and values must match the field kind.
// ============================================================================

// DecodeJSON parses a JSON array of employee objects in source order.
// The returned error carries the 1-based record position via *LoadError.
func DecodeJSON(data []byte) ([]Employee, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var raw []json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, &LoadError{Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	if raw == nil {
		return nil, &LoadError{Err: fmt.Errorf("%w: top level must be an array of employees", ErrMalformed)}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &LoadError{Err: fmt.Errorf("%w: trailing data after employee array", ErrMalformed)}
	}

	employees := make([]Employee, 0, len(raw))
	for i, msg := range raw {
		emp, err := decodeObject(msg)
		if err != nil {
			return nil, &LoadError{Record: i + 1, Err: fmt.Errorf("%w: %w", ErrMalformed, err)}
		}
		employees = append(employees, emp)
	}
	return employees, nil
}

func decodeObject(msg json.RawMessage) (Employee, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(msg, &obj); err != nil {
		return Employee{}, err
	}
	if obj == nil {
		return Employee{}, fmt.Errorf("record is null")
	}

	for _, key := range sortedKeys(obj) {
		if _, ok := lookupExact(key); !ok {
			return Employee{}, fmt.Errorf("%w: %q", ErrUnknownField, key)
		}
	}

	var emp Employee
	for _, f := range Fields {
		rawVal, ok := obj[f.Key]
		if !ok || string(bytes.TrimSpace(rawVal)) == "null" {
			return Employee{}, fmt.Errorf("%w: %s", ErrMissingField, f.Key)
		}
		v, err := f.parseJSON(rawVal)
		if err != nil {
			return Employee{}, err
		}
		f.set(&emp, v)
	}

	if err := validate(emp); err != nil {
		return Employee{}, err
	}
	return emp, nil
}

func (f Field) parseJSON(raw json.RawMessage) (value, error) {
	if f.Kind == KindText {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return value{}, fmt.Errorf("%w: %s must be a string", ErrInvalidValue, f.Key)
		}
		return value{text: s}, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil || !isJSONNumber(raw) {
		return value{}, fmt.Errorf("%w: %s must be a %s", ErrInvalidValue, f.Key, f.Kind)
	}
	return f.parseCell(n.String())
}

// isJSONNumber rejects quoted numbers, which json.Number would accept.
func isJSONNumber(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] != '"'
}

// lookupExact matches JSON keys case-sensitively.
func lookupExact(key string) (Field, bool) {
	for _, f := range Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
