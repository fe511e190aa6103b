package gridio

import (
	"strings"

	"github.com/fatih/color"

	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/grid"
)

var predefinedCellColor = color.New(color.FgCyan, color.Bold)

// RenderText generates the framed textual representation of the given grid,
// the same format Parse reads. When useColor is true, predefined cells are
// highlighted with ANSI escape sequences so they can be distinguished from
// completed cells.
func RenderText(g *grid.Grid, useColor bool) string {
	var builder strings.Builder
	for row := 0; row < 9; row++ {
		if row%3 == 0 {
			builder.WriteString(borderLineTemplate)
			builder.WriteByte('\n')
		}
		renderCellLine(&builder, g, row, useColor)
	}
	builder.WriteString(borderLineTemplate)
	return builder.String()
}

func renderCellLine(builder *strings.Builder, g *grid.Grid, row int, useColor bool) {
	for column := 0; column < 9; column++ {
		if column%3 == 0 {
			builder.WriteString("| ")
		}
		addr := grid.At(row, column)
		value, defined := g.CellValue(addr)
		switch {
		case !defined:
			builder.WriteByte(' ')
		case useColor && g.CellStatus(addr) == grid.StatusPredefined:
			builder.WriteString(predefinedCellColor.Sprintf("%d", value))
		default:
			builder.WriteByte(byte('0' + value))
		}
		builder.WriteByte(' ')
	}
	builder.WriteString("|\n")
}
