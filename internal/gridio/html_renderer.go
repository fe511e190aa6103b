package gridio

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/grid"
	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/search/engine"
)

const summaryTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Sudoku Search Summary</title>
<style>
body { font-family: sans-serif; }
table.grid { border-collapse: collapse; }
table.grid td { border: 1px solid #999; width: 2em; height: 2em; text-align: center; }
table.grid td.predefinedCell { background-color: #ddd; font-weight: bold; }
table.grid td:nth-child(3n) { border-right: 3px solid #333; }
table.grid td:first-child { border-left: 3px solid #333; }
table.grid tr:nth-child(3n) td { border-bottom: 3px solid #333; }
table.grid tr:first-child td { border-top: 3px solid #333; }
table.summary td { padding: 0.2em 1em 0.2em 0; }
</style>
</head>
<body>
<h1>Search Summary</h1>
<table class="summary">
<tr><td>Search algorithm</td><td>{{ .Algorithm }}</td></tr>
<tr><td>Search outcome</td><td>{{ .Outcome }}</td></tr>
<tr><td>Undefined cells in the puzzle</td><td>{{ .UndefinedCellCount }}</td></tr>
<tr><td>Search duration</td><td>{{ .DurationMillis }} ms</td></tr>
<tr><td>Tried cell values</td><td>{{ .CellValuesTried }}</td></tr>
</table>
<h1>Final Grid</h1>
<table class="grid">
{{ range .Rows }}<tr>
{{ range . }}<td id="{{ .ID }}" class="{{ .Style }}">{{ .Value }}</td>
{{ end }}</tr>
{{ end }}</table>
</body>
</html>
`

type htmlCell struct {
	ID    string
	Style string
	Value string
}

type htmlSummary struct {
	Algorithm          string
	Outcome            string
	UndefinedCellCount int
	DurationMillis     int64
	CellValuesTried    int
	Rows               [9][9]htmlCell
}

// RenderHTML generates a standalone HTML report of the given search summary,
// including a table presenting the final grid with the predefined cells
// highlighted.
func RenderHTML(summary *engine.Summary) (string, error) {
	data := htmlSummary{
		Algorithm:          summary.Algorithm,
		Outcome:            summary.Outcome.String(),
		UndefinedCellCount: summary.OriginalUndefinedCellCount,
		DurationMillis:     summary.DurationMillis,
		CellValuesTried:    summary.CellValuesTried,
	}
	for row := 0; row < 9; row++ {
		for column := 0; column < 9; column++ {
			addr := grid.At(row, column)
			cell := htmlCell{
				ID:    fmt.Sprintf("cell-%d-%d", row, column),
				Style: "cell",
			}
			if value, ok := summary.FinalGrid.CellValue(addr); ok {
				cell.Value = fmt.Sprintf("%d", value)
				if summary.FinalGrid.CellStatus(addr) == grid.StatusPredefined {
					cell.Style = "cell predefinedCell"
				}
			}
			data.Rows[row][column] = cell
		}
	}

	tmpl, err := template.New("summary").Parse(summaryTemplate)
	if err != nil {
		return "", fmt.Errorf("error parsing summary template: %w", err)
	}
	var builder strings.Builder
	if err := tmpl.Execute(&builder, data); err != nil {
		return "", fmt.Errorf("error rendering summary: %w", err)
	}
	return builder.String(), nil
}
