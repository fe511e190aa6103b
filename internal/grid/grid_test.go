package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyCellValues() [9][9]int {
	return [9][9]int{}
}

func TestNewGridCountsUndefinedCells(t *testing.T) {
	cellValues := emptyCellValues()
	assert.Equal(t, 81, New(cellValues).UndefinedCellCount())

	cellValues[0][0] = 6
	cellValues[4][8] = 1
	cellValues[8][3] = 9
	g := New(cellValues)
	assert.Equal(t, 78, g.UndefinedCellCount())
	assert.False(t, g.IsComplete())
}

func TestNewGridPanicsOnIllegalCellValue(t *testing.T) {
	cellValues := emptyCellValues()
	cellValues[3][5] = 10
	assert.Panics(t, func() {
		New(cellValues)
	})
}

func TestCellValueAndStatus(t *testing.T) {
	cellValues := emptyCellValues()
	cellValues[2][7] = 4
	g := New(cellValues)

	value, defined := g.CellValue(At(2, 7))
	assert.True(t, defined)
	assert.Equal(t, 4, value)
	assert.Equal(t, StatusPredefined, g.CellStatus(At(2, 7)))

	_, defined = g.CellValue(At(0, 0))
	assert.False(t, defined)
	assert.Equal(t, StatusUndefined, g.CellStatus(At(0, 0)))
}

func TestSetCellValue(t *testing.T) {
	g := New(emptyCellValues())
	require.NoError(t, g.SetCellValue(At(4, 4), 7))

	value, defined := g.CellValue(At(4, 4))
	assert.True(t, defined)
	assert.Equal(t, 7, value)
	assert.Equal(t, StatusCompleted, g.CellStatus(At(4, 4)))
	assert.Equal(t, 80, g.UndefinedCellCount())
}

func TestSetCellValueRejectsPredefinedCell(t *testing.T) {
	cellValues := emptyCellValues()
	cellValues[1][2] = 5
	g := New(cellValues)

	err := g.SetCellValue(At(1, 2), 3)
	var mutationErr *IllegalMutationError
	require.ErrorAs(t, err, &mutationErr)
	assert.Same(t, At(1, 2), mutationErr.Address)
	assert.Equal(t, StatusPredefined, mutationErr.Status)
	assert.Equal(t, 5, mutationErr.CurrentValue)
	assert.Equal(t, 3, mutationErr.AttemptedValue)
	assert.Equal(t, 80, g.UndefinedCellCount())
}

func TestSetCellValueRejectsCompletedCell(t *testing.T) {
	g := New(emptyCellValues())
	require.NoError(t, g.SetCellValue(At(6, 6), 2))

	err := g.SetCellValue(At(6, 6), 8)
	var mutationErr *IllegalMutationError
	require.ErrorAs(t, err, &mutationErr)
	assert.Equal(t, StatusCompleted, mutationErr.Status)
	assert.Equal(t, 2, mutationErr.CurrentValue)
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		cells [][3]int // row, column, value
		valid bool
	}{
		{
			name:  "empty grid",
			valid: true,
		},
		{
			name:  "no duplicates",
			cells: [][3]int{{0, 0, 1}, {0, 1, 2}, {1, 0, 3}, {4, 4, 1}, {8, 8, 1}},
			valid: true,
		},
		{
			name:  "duplicate in row",
			cells: [][3]int{{4, 1, 7}, {4, 8, 7}},
			valid: false,
		},
		{
			name:  "duplicate in column",
			cells: [][3]int{{0, 3, 9}, {7, 3, 9}},
			valid: false,
		},
		{
			name:  "duplicate in region",
			cells: [][3]int{{0, 0, 5}, {2, 2, 5}},
			valid: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cellValues := emptyCellValues()
			for _, cell := range tt.cells {
				cellValues[cell[0]][cell[1]] = cell[2]
			}
			assert.Equal(t, tt.valid, New(cellValues).IsValid())
		})
	}
}

func TestValidityConsidersCompletedCells(t *testing.T) {
	cellValues := emptyCellValues()
	cellValues[0][0] = 6
	g := New(cellValues)
	require.True(t, g.IsValid())

	// a non-duplicating completed value keeps the grid valid
	require.NoError(t, g.SetCellValue(At(0, 1), 3))
	assert.True(t, g.IsValid())

	// a duplicating completed value makes it invalid
	require.NoError(t, g.SetCellValue(At(0, 8), 6))
	assert.False(t, g.IsValid())
}

func TestIsCompleteTracksUndefinedCellCount(t *testing.T) {
	cellValues := [9][9]int{}
	solution := [9][9]int{
		{6, 3, 1, 9, 2, 4, 7, 8, 5},
		{9, 7, 2, 8, 6, 5, 4, 1, 3},
		{5, 4, 8, 7, 3, 1, 9, 2, 6},
		{3, 8, 5, 2, 4, 7, 6, 9, 1},
		{4, 1, 6, 3, 8, 9, 5, 7, 2},
		{7, 2, 9, 1, 5, 6, 3, 4, 8},
		{8, 9, 4, 5, 1, 3, 2, 6, 7},
		{1, 5, 7, 6, 9, 2, 8, 3, 4},
		{2, 6, 3, 4, 7, 8, 1, 5, 9},
	}
	g := New(cellValues)
	for row := 0; row < 9; row++ {
		for column := 0; column < 9; column++ {
			assert.False(t, g.IsComplete())
			expected := g.UndefinedCellCount() - 1
			require.NoError(t, g.SetCellValue(At(row, column), solution[row][column]))
			assert.Equal(t, expected, g.UndefinedCellCount())
		}
	}
	assert.True(t, g.IsComplete())
	assert.True(t, g.IsValid())
	assert.Equal(t, 0, g.UndefinedCellCount())
}

func TestCopyIsIndependent(t *testing.T) {
	cellValues := emptyCellValues()
	cellValues[0][0] = 6
	original := New(cellValues)
	clone := original.Copy()

	require.NoError(t, clone.SetCellValue(At(5, 5), 4))
	assert.Equal(t, StatusUndefined, original.CellStatus(At(5, 5)))
	assert.Equal(t, 80, original.UndefinedCellCount())
	assert.Equal(t, 79, clone.UndefinedCellCount())

	require.NoError(t, original.SetCellValue(At(7, 7), 9))
	assert.Equal(t, StatusUndefined, clone.CellStatus(At(7, 7)))
}
