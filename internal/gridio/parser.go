// Package gridio reads and writes the textual representations of Sudoku
// grids: the framed puzzle file format, the terminal rendering of a grid,
// and the HTML report of a search summary.
package gridio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	borderLineTemplate = "+-------+-------+-------+"
	cellLineTemplate   = "| ? ? ? | ? ? ? | ? ? ? |"
)

// InvalidInputError is returned when a puzzle file does not conform to the
// expected textual format.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}

// Parse reads the textual representation of a puzzle from the given reader.
// The expected format is the framed grid written by RenderText:
//
//	+-------+-------+-------+
//	| 6     |     4 |   8 5 |
//	...
//
// The returned array holds 0 for undefined cells and 1-9 for given cells.
// An *InvalidInputError is returned for malformed input.
func Parse(r io.Reader) ([9][9]int, error) {
	var cellValues [9][9]int

	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return cellValues, fmt.Errorf("error reading puzzle: %w", err)
	}
	// tolerate leading blank lines, e.g. in indented test fixtures
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}

	row := 0
	for index := 0; index < 13; index++ {
		if index >= len(lines) {
			return cellValues, &InvalidInputError{Reason: fmt.Sprintf("row %d is missing", index+1)}
		}
		if index%4 == 0 {
			if lines[index] != borderLineTemplate {
				return cellValues, &InvalidInputError{Reason: fmt.Sprintf("row %d is not a valid border line", index+1)}
			}
			continue
		}
		rowValues, err := parseCellLine(lines[index], index)
		if err != nil {
			return cellValues, err
		}
		cellValues[row] = rowValues
		row++
	}
	return cellValues, nil
}

func parseCellLine(line string, index int) ([9]int, error) {
	var values [9]int
	if len(line) != len(cellLineTemplate) {
		return values, &InvalidInputError{Reason: fmt.Sprintf("row %d is not a valid cell line", index+1)}
	}
	column := 0
	for i := 0; i < len(cellLineTemplate); i++ {
		if cellLineTemplate[i] != '?' {
			if line[i] != cellLineTemplate[i] {
				return values, &InvalidInputError{Reason: fmt.Sprintf("row %d is not a valid cell line", index+1)}
			}
			continue
		}
		switch c := line[i]; {
		case c == ' ':
			values[column] = 0
		case c >= '1' && c <= '9':
			values[column] = int(c - '0')
		default:
			return values, &InvalidInputError{Reason: fmt.Sprintf("invalid cell value %q found in row %d", c, index+1)}
		}
		column++
	}
	return values, nil
}

// ParseString parses the given textual representation of a puzzle.
func ParseString(s string) ([9][9]int, error) {
	return Parse(strings.NewReader(strings.TrimSpace(s)))
}

// ParseFile reads and parses the puzzle file with the given name.
func ParseFile(filename string) ([9][9]int, error) {
	file, err := os.Open(filename)
	if err != nil {
		return [9][9]int{}, fmt.Errorf("error opening puzzle file (%s): %w", filename, err)
	}
	defer file.Close()
	return Parse(file)
}
