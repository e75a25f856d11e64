// Package render turns header-plus-data tables into printable output.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Format identifies an output format for row data.
type Format string

const (
	// FormatTable renders an aligned plain-text table.
	FormatTable Format = "table"
	// FormatMarkdown renders a markdown table.
	FormatMarkdown Format = "markdown"
	// FormatCSV renders RFC 4180 comma-separated values.
	FormatCSV Format = "csv"
	// FormatJSON renders an array of objects keyed by column name.
	FormatJSON Format = "json"
	// FormatYAML renders a sequence of mappings keyed by column name.
	FormatYAML Format = "yaml"
)

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("214"))

// ParseFormat validates a format name from a flag or config value.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatTable, FormatMarkdown, FormatCSV, FormatJSON, FormatYAML:
		return Format(strings.ToLower(name)), nil
	default:
		return "", fmt.Errorf("unknown output format: %s", name)
	}
}

// Rows renders a header-plus-data table in the given format. The first
// row of the input is treated as the column-name header. An empty input
// renders as an empty document.
func Rows(table [][]string, format Format) (string, error) {
	switch format {
	case FormatTable:
		return renderText(table, true), nil
	case FormatMarkdown:
		return renderMarkdown(table), nil
	case FormatCSV:
		return renderCSV(table)
	case FormatJSON:
		return renderJSON(table)
	case FormatYAML:
		return renderYAML(table)
	default:
		return "", fmt.Errorf("unknown output format: %s", format)
	}
}

// PlainRows renders an aligned text table without terminal styling,
// for output that goes to a file rather than the screen.
func PlainRows(table [][]string) string {
	return renderText(table, false)
}

func renderText(table [][]string, styled bool) string {
	if len(table) == 0 {
		return ""
	}

	widths := columnWidths(table)

	var b strings.Builder
	for i, row := range table {
		line := formatAligned(row, widths)
		if i == 0 && styled {
			line = headerStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func renderMarkdown(table [][]string) string {
	if len(table) == 0 {
		return ""
	}

	widths := columnWidths(table)

	var b strings.Builder
	for i, row := range table {
		b.WriteString("|")
		for col, value := range row {
			b.WriteString(" ")
			b.WriteString(pad(escapePipes(value), widths[col]))
			b.WriteString(" |")
		}
		b.WriteString("\n")

		// Separator goes right after the header row
		if i == 0 {
			b.WriteString("|")
			for _, w := range widths {
				b.WriteString(" ")
				b.WriteString(strings.Repeat("-", w))
				b.WriteString(" |")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderCSV(table [][]string) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	for _, row := range table {
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return b.String(), nil
}

func renderJSON(table [][]string) (string, error) {
	data, err := json.MarshalIndent(toRecords(table), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data) + "\n", nil
}

func renderYAML(table [][]string) (string, error) {
	data, err := yaml.Marshal(toRecords(table))
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return string(data), nil
}

// toRecords pairs each data row with the header, producing one map per
// row for the structured formats.
func toRecords(table [][]string) []map[string]string {
	records := []map[string]string{}
	if len(table) < 2 {
		return records
	}

	header := table[0]
	for _, row := range table[1:] {
		record := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				record[col] = row[i]
			}
		}
		records = append(records, record)
	}
	return records
}

func columnWidths(table [][]string) []int {
	widths := make([]int, len(table[0]))
	for _, row := range table {
		for i, value := range row {
			if i < len(widths) && len(value) > widths[i] {
				widths[i] = len(value)
			}
		}
	}
	return widths
}

func formatAligned(row []string, widths []int) string {
	parts := make([]string, len(row))
	for i, value := range row {
		w := 0
		if i < len(widths) {
			w = widths[i]
		}
		parts[i] = pad(value, w)
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

func pad(value string, width int) string {
	if len(value) >= width {
		return value
	}
	return value + strings.Repeat(" ", width-len(value))
}

func escapePipes(value string) string {
	return strings.ReplaceAll(value, "|", "\\|")
}
