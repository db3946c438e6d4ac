// Package workforce answers a fixed catalog of questions about an employee
// roster.
//
// Usage:
//
//	import (
//	    "github.com/spektr-org/workforce/report"
//	    "github.com/spektr-org/workforce/roster"
//	)
//
//	employees, err := roster.Load(afero.NewOsFs(), "data/employee-data.json")
//	if err != nil {
//	    return err
//	}
//	err = report.Run(os.Stdout, employees, report.Catalog(),
//	    report.WithFormat(report.FormatTable),
//	)
//
// The roster package loads and validates the dataset, the engine package
// holds the generic grouping, sorting and selection primitives, and the
// report package defines the queries and renders their results.
// The cmd/workforce binary wires them to flags, environment and config files.
package workforce
