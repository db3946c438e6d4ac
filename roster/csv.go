package roster

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ============================================================================
// CSV DECODER — Header row of field names, one employee per row
// ============================================================================
// Columns may come in any order. Header names match the field contract
// case-insensitively. Unlike JSON, every cell arrives as text and is parsed
// per the field kind.
// ============================================================================

// DecodeCSV parses CSV bytes into employees in row order.
func DecodeCSV(data []byte) ([]Employee, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &LoadError{Err: fmt.Errorf("%w: empty CSV, header row required", ErrMalformed)}
	}
	if err != nil {
		return nil, &LoadError{Err: fmt.Errorf("%w: failed to read CSV headers: %v", ErrMalformed, err)}
	}

	mapping, err := mapHeaders(headers)
	if err != nil {
		return nil, &LoadError{Err: fmt.Errorf("%w: %w", ErrMalformed, err)}
	}

	var employees []Employee
	for line := 1; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{Record: line, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
		}

		var emp Employee
		for i, f := range mapping {
			v, err := f.parseCell(row[i])
			if err != nil {
				return nil, &LoadError{Record: line, Err: fmt.Errorf("%w: %w", ErrMalformed, err)}
			}
			f.set(&emp, v)
		}
		if err := validate(emp); err != nil {
			return nil, &LoadError{Record: line, Err: fmt.Errorf("%w: %w", ErrMalformed, err)}
		}
		employees = append(employees, emp)
	}

	return employees, nil
}

// mapHeaders builds the column index → field mapping and checks that the
// header covers the whole contract exactly once.
func mapHeaders(headers []string) ([]Field, error) {
	mapping := make([]Field, len(headers))
	seen := make(map[string]bool, len(Fields))

	for i, h := range headers {
		f, ok := lookupField(h)
		if !ok {
			return nil, fmt.Errorf("%w: column %q", ErrUnknownField, h)
		}
		if seen[f.Key] {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrInvalidValue, h)
		}
		seen[f.Key] = true
		mapping[i] = f
	}

	for _, f := range Fields {
		if !seen[f.Key] {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, f.Key)
		}
	}
	return mapping, nil
}
