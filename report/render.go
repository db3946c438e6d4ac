package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/spektr-org/workforce/roster"
)

// ============================================================================
// RENDERERS — Write one query's Result to the output
// ============================================================================

// noneMarker stands in for a value that does not exist.
const noneMarker = "(none)"

type renderer interface {
	render(w io.Writer, q Query, r Result) error
}

func newRenderer(cfg *config) (renderer, error) {
	header := color.New(color.FgCyan, color.Bold)
	if !cfg.Color {
		header.DisableColor()
	}

	switch cfg.Format {
	case FormatText:
		return textRenderer{header: header}, nil
	case FormatTable:
		return tableRenderer{header: header}, nil
	case FormatJSON:
		return jsonRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", cfg.Format)
	}
}

func writeHeader(w io.Writer, header *color.Color, q Query) error {
	_, err := header.Fprintf(w, "%d. %s\n", q.ID, q.Title)
	return err
}

// ============================================================================
// TEXT
// ============================================================================

type textRenderer struct {
	header *color.Color
}

func (t textRenderer) render(w io.Writer, q Query, r Result) error {
	if err := writeHeader(w, t.header, q); err != nil {
		return err
	}

	var lines []string
	switch r.Type {
	case TypeScalar:
		lines = append(lines, r.Scalar)
	case TypeAbsent:
		lines = append(lines, noneMarker)
	case TypeEntries:
		for _, l := range r.Entries {
			lines = append(lines, l.Key+": "+lineValue(l))
		}
	case TypeValues:
		lines = append(lines, r.Values...)
	case TypeRecords:
		for _, e := range r.Records {
			lines = append(lines, e.String())
		}
	case TypeGroups:
		for _, g := range r.Groups {
			lines = append(lines, g.Key+":")
			for _, e := range g.Records {
				lines = append(lines, "  "+e.String())
			}
		}
	default:
		return fmt.Errorf("unknown result type %q", r.Type)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func lineValue(l Line) string {
	if l.Absent {
		return noneMarker
	}
	return l.Value
}

// ============================================================================
// TABLE
// ============================================================================

type tableRenderer struct {
	header *color.Color
}

func (t tableRenderer) render(w io.Writer, q Query, r Result) error {
	var (
		cols []string
		rows [][]string
	)

	switch r.Type {
	case TypeScalar:
		cols = []string{"value"}
		rows = [][]string{{r.Scalar}}
	case TypeAbsent:
		cols = []string{"value"}
		rows = [][]string{{noneMarker}}
	case TypeEntries:
		cols = []string{"key", "value"}
		for _, l := range r.Entries {
			rows = append(rows, []string{l.Key, lineValue(l)})
		}
	case TypeValues:
		cols = []string{"value"}
		for _, v := range r.Values {
			rows = append(rows, []string{v})
		}
	case TypeRecords:
		cols = roster.FieldKeys()
		for _, e := range r.Records {
			rows = append(rows, employeeRow(e))
		}
	case TypeGroups:
		cols = append([]string{"group"}, roster.FieldKeys()...)
		for _, g := range r.Groups {
			for _, e := range g.Records {
				rows = append(rows, append([]string{g.Key}, employeeRow(e)...))
			}
		}
	default:
		return fmt.Errorf("unknown result type %q", r.Type)
	}

	if err := writeHeader(w, t.header, q); err != nil {
		return err
	}

	consoleTable := tablewriter.NewWriter(w)
	consoleTable.SetHeader(cols)
	consoleTable.SetAutoFormatHeaders(false)
	consoleTable.AppendBulk(rows)
	consoleTable.Render()

	_, err := fmt.Fprintln(w)
	return err
}

// employeeRow lays out an employee in roster.FieldKeys order.
func employeeRow(e roster.Employee) []string {
	return []string{
		strconv.Itoa(e.EmployeeID),
		e.Name,
		formatAmount(e.Salary),
		e.Department,
		strconv.Itoa(e.Age),
		e.Gender,
		e.City,
		strconv.Itoa(e.YearOfJoining),
	}
}

// ============================================================================
// JSON
// ============================================================================

type jsonRenderer struct{}

type jsonResult struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Result
}

// render writes one JSON document per line.
func (jsonRenderer) render(w io.Writer, q Query, r Result) error {
	return json.NewEncoder(w).Encode(jsonResult{ID: q.ID, Title: q.Title, Result: r})
}
