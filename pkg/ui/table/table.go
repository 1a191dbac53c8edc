// Package table renders rows as a terminal table backed by lipgloss, or
// as a Markdown table when the output is not a terminal. Consumers supply
// data via the TableData interface.
package table

import (
	"fmt"
	"os"
	"strings"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// TableData is the interface that data sources implement to be rendered
// as a table.
type TableData interface {
	// Header returns the column header labels.
	Header() []string

	// Len returns the number of rows.
	Len() int

	// Row returns the cell values for row i. Return nil to skip a row.
	// Wrap a value in Bold{} to emphasise it.
	Row(i int) []any
}

// Bold wraps a cell value so that it is emphasised.
type Bold struct{ Value any }

///////////////////////////////////////////////////////////////////////////////
// STYLES

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	boldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cellStyle   = lipgloss.NewStyle()
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Render renders the table data as a string suitable for terminal output.
// The table is narrowed to the terminal width when it would not fit.
func Render(data TableData) string {
	t := lgtable.New().
		Headers(data.Header()...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, row := range rows(data, func(v any) string {
		if b, ok := v.(Bold); ok {
			return boldStyle.Render(FormatCell(b.Value))
		}
		return FormatCell(v)
	}) {
		t.Row(row...)
	}

	// Only constrain to terminal width if the natural render exceeds it
	result := t.Render()
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && widest(result) > w {
		t.Width(w)
		result = t.Render()
	}
	return result
}

// RenderMarkdown renders the table data as a Markdown table string,
// for piped output and the web surface.
func RenderMarkdown(data TableData) string {
	header := data.Header()
	if len(header) == 0 {
		return ""
	}
	var buf strings.Builder
	buf.WriteString("| " + strings.Join(header, " | ") + " |\n|")
	buf.WriteString(strings.Repeat("---|", len(header)))
	for _, row := range rows(data, func(v any) string {
		if b, ok := v.(Bold); ok {
			if inner := FormatCell(b.Value); inner != "-" {
				return "**" + inner + "**"
			}
			return "-"
		}
		return strings.ReplaceAll(FormatCell(v), "|", `\|`)
	}) {
		// Pad short rows to the header width
		for len(row) < len(header) {
			row = append(row, "-")
		}
		buf.WriteString("\n| " + strings.Join(row[:len(header)], " | ") + " |")
	}
	return buf.String()
}

// FormatCell converts a value to a display string for a table cell.
// Empty and zero values are shown as "-".
func FormatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case Bold:
		return FormatCell(val.Value)
	case bool:
		if val {
			return "yes"
		}
		return "-"
	case int:
		if val == 0 {
			return "-"
		}
		return fmt.Sprint(val)
	case uint:
		if val == 0 {
			return "-"
		}
		return fmt.Sprint(val)
	default:
		if s := fmt.Sprint(val); s != "" {
			return s
		}
		return "-"
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func rows(data TableData, format func(any) string) [][]string {
	result := make([][]string, 0, data.Len())
	for i := range data.Len() {
		row := data.Row(i)
		if row == nil {
			continue
		}
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = format(v)
		}
		result = append(result, cells)
	}
	return result
}

func widest(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		n = max(n, lipgloss.Width(line))
	}
	return n
}
