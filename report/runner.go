package report

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spektr-org/workforce/roster"
)

// ============================================================================
// RUNNER — Main entry point for executing the catalog
// ============================================================================
// Flow: for each query → compute Result → render → next
// A failing query is logged and reported in the returned error; the rest
// still run.
// ============================================================================

// Run executes queries in order against employees and renders each to w.
//
// Usage:
//
//	err := report.Run(os.Stdout, employees, report.Catalog(),
//	    report.WithFormat(report.FormatTable),
//	    report.WithColor(false),
//	)
func Run(w io.Writer, employees []roster.Employee, queries []Query, opts ...Option) error {
	cfg := applyOptions(opts)
	log := cfg.Logger

	r, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	var errs []error
	for _, q := range queries {
		log.Debug("running query", "query", q.ID, "title", q.Title)
		if err := runOne(w, r, q, employees); err != nil {
			log.Warn("query failed", "query", q.ID, "error", err)
			errs = append(errs, err)
		}
	}

	log.Info("catalog finished",
		"queries", len(queries),
		"failed", len(errs),
		"records", len(employees),
		"elapsed", time.Since(start),
	)
	return errors.Join(errs...)
}

// Evaluate computes a single query without rendering it.
func Evaluate(q Query, employees []roster.Employee) (res Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("query %d: panic: %v", q.ID, p)
		}
	}()
	return q.Run(employees), nil
}

func runOne(w io.Writer, r renderer, q Query, employees []roster.Employee) error {
	res, err := Evaluate(q, employees)
	if err != nil {
		return err
	}
	if err := safeRender(w, r, q, res); err != nil {
		return fmt.Errorf("query %d: render: %w", q.ID, err)
	}
	return nil
}

func safeRender(w io.Writer, r renderer, q Query, res Result) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return r.render(w, q, res)
}
