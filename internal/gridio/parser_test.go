package gridio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPuzzle = `+-------+-------+-------+
| 6     |     4 |   8 5 |
| 9 7   |   6 5 |       |
|   4 8 | 7 3   |       |
+-------+-------+-------+
|   8   | 2 4 7 |       |
|     6 |   8   | 5     |
|       | 1 5 6 |   4   |
+-------+-------+-------+
|       |   1 3 | 2 6   |
|       | 6 9   |   3 4 |
| 2 6   | 4     |     9 |
+-------+-------+-------+`

func TestParseValidPuzzle(t *testing.T) {
	cellValues, err := ParseString(validPuzzle)
	require.NoError(t, err)

	assert.Equal(t, [9]int{6, 0, 0, 0, 0, 4, 0, 8, 5}, cellValues[0])
	assert.Equal(t, [9]int{0, 0, 0, 1, 5, 6, 0, 4, 0}, cellValues[5])
	assert.Equal(t, [9]int{2, 6, 0, 4, 0, 0, 0, 0, 9}, cellValues[8])

	given := 0
	for _, row := range cellValues {
		for _, value := range row {
			if value != 0 {
				given++
			}
		}
	}
	assert.Equal(t, 35, given)
}

func TestParseToleratesSurroundingWhitespace(t *testing.T) {
	indented := "\n\n" + strings.ReplaceAll(validPuzzle, "\n", "  \n") + "\n"
	cellValues, err := ParseString(indented)
	require.NoError(t, err)
	assert.Equal(t, [9]int{6, 0, 0, 0, 0, 4, 0, 8, 5}, cellValues[0])
}

func TestParseRejectsTruncatedInput(t *testing.T) {
	lines := strings.Split(validPuzzle, "\n")
	truncated := strings.Join(lines[:8], "\n")

	_, err := ParseString(truncated)
	var invalidInput *InvalidInputError
	require.ErrorAs(t, err, &invalidInput)
	assert.Contains(t, invalidInput.Reason, "row 9 is missing")
}

func TestParseRejectsCorruptedBorderLine(t *testing.T) {
	corrupted := strings.Replace(validPuzzle, "+-------+-------+-------+", "+---+---+---+", 1)

	_, err := ParseString(corrupted)
	var invalidInput *InvalidInputError
	require.ErrorAs(t, err, &invalidInput)
	assert.Contains(t, invalidInput.Reason, "not a valid border line")
}

func TestParseRejectsMalformedCellLine(t *testing.T) {
	malformed := strings.Replace(validPuzzle, "| 6     |     4 |   8 5 |", "| 6 | 4 | 8 5 |", 1)

	_, err := ParseString(malformed)
	var invalidInput *InvalidInputError
	require.ErrorAs(t, err, &invalidInput)
	assert.Contains(t, invalidInput.Reason, "not a valid cell line")
}

func TestParseRejectsInvalidCellValue(t *testing.T) {
	tainted := strings.Replace(validPuzzle, "| 6     |", "| 0     |", 1)

	_, err := ParseString(tainted)
	var invalidInput *InvalidInputError
	require.ErrorAs(t, err, &invalidInput)
	assert.Contains(t, invalidInput.Reason, `invalid cell value '0'`)
}

func TestParseRejectsEmptyInput(t *testing.T) {
	_, err := ParseString("")
	var invalidInput *InvalidInputError
	require.ErrorAs(t, err, &invalidInput)
}

func TestParseFileReportsMissingFile(t *testing.T) {
	_, err := ParseFile("no-such-puzzle.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-puzzle.txt")
}
