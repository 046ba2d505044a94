package workflow

import (
	"fmt"
	"strings"
)

const previewRows = 5

// formatResults renders a text preview of at most the first previewRows
// rows. It never mutates RawResults.
func formatResults(s *State) {
	if len(s.RawResults) == 0 {
		s.FormattedResults = "No results found."
		return
	}

	total := len(s.RawResults)
	shown := total
	if shown > previewRows {
		shown = previewRows
	}
	preview := renderTable(s.Columns, s.RawResults[:shown])

	if total > previewRows {
		preview += fmt.Sprintf("\n\n(Showing first %d of %d rows)", previewRows, total)
	} else {
		preview += fmt.Sprintf("\n\n(%d rows returned)", total)
	}
	s.FormattedResults = preview
}

func renderTable(columns []string, rows []map[string]any) string {
	widths := make([]int, len(columns))
	for i, column := range columns {
		widths[i] = len(column)
	}

	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, len(columns))
		for i, column := range columns {
			text := formatValue(row[column])
			cells[r][i] = text
			if len(text) > widths[i] {
				widths[i] = len(text)
			}
		}
	}

	var b strings.Builder
	for i, column := range columns {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(pad(column, widths[i]))
	}
	for _, row := range cells {
		b.WriteString("\n")
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(pad(cell, widths[i]))
		}
	}

	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

func formatValue(value any) string {
	if value == nil {
		return "NULL"
	}
	return fmt.Sprint(value)
}

func pad(text string, width int) string {
	if len(text) >= width {
		return text
	}
	return text + strings.Repeat(" ", width-len(text))
}
