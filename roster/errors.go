package roster

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the data source does not exist.
	ErrNotFound = errors.New("data source not found")
	// ErrMalformed is returned when the source cannot be decoded.
	ErrMalformed = errors.New("malformed data source")
	// ErrMissingField is returned when a record lacks a required field.
	ErrMissingField = errors.New("missing required field")
	// ErrUnknownField is returned for a field outside the Employee contract.
	ErrUnknownField = errors.New("unknown field")
	// ErrInvalidValue is returned when a field holds a value of the wrong kind
	// or violates a constraint.
	ErrInvalidValue = errors.New("invalid field value")
)

// LoadError describes a failed load of a data source.
type LoadError struct {
	Path string
	// Record is the 1-based position of the offending record, 0 when the
	// failure is not tied to one record.
	Record int
	Err    error
}

func (e *LoadError) Error() string {
	if e.Record > 0 {
		return fmt.Sprintf("load %s: record %d: %v", e.Path, e.Record, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
