package report

import (
	"fmt"
	"log/slog"
	"strings"
)

// ============================================================================
// REPORT OPTIONS — Functional options for Run()
// ============================================================================

// Format selects how results are rendered.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatTable, FormatJSON}

// ParseFormat validates a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(string(f), strings.TrimSpace(s)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want one of %v)", s, Formats)
}

// Option configures Run via functional options pattern.
type Option func(*config)

type config struct {
	Format Format
	Color  bool
	Logger *slog.Logger
}

// WithFormat selects the renderer.
func WithFormat(f Format) Option {
	return func(c *config) {
		c.Format = f
	}
}

// WithColor toggles colored headers in the text and table formats. Color
// is still suppressed when the output is not a terminal.
func WithColor(enabled bool) Option {
	return func(c *config) {
		c.Color = enabled
	}
}

// WithLogger sets the logger for per-query diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.Logger = l
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{
		Format: FormatText,
		Color:  true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}
