// Package roster loads the employee dataset the query catalog runs over.
//
// The dataset is read once, in source order, from a JSON array or a CSV
// file whose header names the Employee fields. Any failure to locate,
// read or decode the source is reported as a *LoadError.
package roster

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Format identifies the encoding of a data source.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// FormatFor picks the decoder by file extension. Anything that is not
// ".csv" is treated as JSON.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatJSON
}

// Load reads the data source at path from fsys and returns its employees
// in source order.
func Load(fsys afero.Fs, path string) ([]Employee, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Path: path, Err: ErrNotFound}
		}
		return nil, &LoadError{Path: path, Err: fmt.Errorf("read failed: %w", err)}
	}

	employees, err := Decode(data, FormatFor(path))
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	return employees, nil
}

// Decode parses raw bytes in the given format.
func Decode(data []byte, format Format) ([]Employee, error) {
	switch format {
	case FormatCSV:
		return DecodeCSV(data)
	case FormatJSON:
		return DecodeJSON(data)
	default:
		return nil, &LoadError{Err: fmt.Errorf("%w: unsupported format %q", ErrMalformed, format)}
	}
}
