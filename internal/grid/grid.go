package grid

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// cell is an immutable pairing of a status and a value. As cells never
// change, a single instance can be shared by any number of grids; copying a
// grid therefore copies 81 pointers rather than 81 structs.
type cell struct {
	value  int
	status CellStatus
}

var undefinedCell = &cell{status: StatusUndefined}

func makeCells(status CellStatus) [10]*cell {
	// index 0 is unused so that cells can be looked up by value directly
	var cells [10]*cell
	for value := 1; value <= 9; value++ {
		cells[value] = &cell{value: value, status: status}
	}
	return cells
}

var (
	predefinedCells = makeCells(StatusPredefined)
	completedCells  = makeCells(StatusCompleted)
)

// validationBlocks enumerates the 27 groups (9 rows, 9 columns, 9 regions,
// in that order) within which no value may occur twice.
var validationBlocks = func() [27][9]*CellAddress {
	var blocks [27][9]*CellAddress
	for row := 0; row < 9; row++ {
		for column := 0; column < 9; column++ {
			blocks[row][column] = At(row, column)
		}
	}
	for column := 0; column < 9; column++ {
		for row := 0; row < 9; row++ {
			blocks[9+column][row] = At(row, column)
		}
	}
	i := 18
	for topmostRow := 0; topmostRow < 9; topmostRow += 3 {
		for leftmostColumn := 0; leftmostColumn < 9; leftmostColumn += 3 {
			j := 0
			for r := topmostRow; r < topmostRow+3; r++ {
				for c := leftmostColumn; c < leftmostColumn+3; c++ {
					blocks[i][j] = At(r, c)
					j++
				}
			}
			i++
		}
	}
	return blocks
}()

// IllegalMutationError is returned by Grid.SetCellValue when the targeted
// cell already has a value, regardless of whether the value was predefined
// by the original puzzle or completed during the search.
type IllegalMutationError struct {
	Address        *CellAddress
	Status         CellStatus
	CurrentValue   int
	AttemptedValue int
}

func (e *IllegalMutationError) Error() string {
	return fmt.Sprintf("cannot modify the cell %s as its status is %s (current value = %d, value to be set = %d)",
		e.Address, e.Status, e.CurrentValue, e.AttemptedValue)
}

// Grid represents a Sudoku grid. Besides the cell values, it keeps track of
// the status of each cell, so it can distinguish whether a cell is still
// empty, whether its value was predefined by the original puzzle, or whether
// the value has been completed during the search. Cells are represented by
// shared immutable singletons, which makes Copy cheap enough for search
// algorithms that keep many grids alive simultaneously.
type Grid struct {
	cells              [9][9]*cell
	undefinedCellCount int
}

// New creates a grid from the given initial cell values. The value 0
// represents an empty cell; the values 1-9 become predefined cells. New does
// not validate the Sudoku rules - a grid constructed from contradictory
// givens is constructible but reports IsValid() == false.
func New(cellValues [9][9]int) *Grid {
	g := &Grid{}
	for row := 0; row < 9; row++ {
		for column := 0; column < 9; column++ {
			value := cellValues[row][column]
			switch {
			case value == 0:
				g.cells[row][column] = undefinedCell
				g.undefinedCellCount++
			case value >= 1 && value <= 9:
				g.cells[row][column] = predefinedCells[value]
			default:
				panic(fmt.Sprintf("illegal cell value %d at [%d, %d]", value, row, column))
			}
		}
	}
	return g
}

// Copy creates a copy of this grid which behaves as if it was a deep copy.
// Any later modification of the copy will not change this grid and vice
// versa.
func (g *Grid) Copy() *Grid {
	clone := *g
	return &clone
}

// UndefinedCellCount returns the number of cells that still have no value.
func (g *Grid) UndefinedCellCount() int {
	return g.undefinedCellCount
}

// CellValue returns the value of the cell with the given address. The second
// return value is false if the cell is undefined.
func (g *Grid) CellValue(addr *CellAddress) (int, bool) {
	c := g.cells[addr.row][addr.column]
	if c.status == StatusUndefined {
		return 0, false
	}
	return c.value, true
}

// CellStatus returns the status of the cell with the given address.
func (g *Grid) CellStatus(addr *CellAddress) CellStatus {
	return g.cells[addr.row][addr.column].status
}

// SetCellValue sets the cell with the given address to the given value,
// assuming the cell is currently undefined. An *IllegalMutationError is
// returned if the cell already has a value.
func (g *Grid) SetCellValue(addr *CellAddress, value int) error {
	c := g.cells[addr.row][addr.column]
	if c.status != StatusUndefined {
		logrus.WithFields(logrus.Fields{
			"cell":   addr,
			"status": c.status,
		}).Error("attempt to modify a cell that already has a value")
		return &IllegalMutationError{
			Address:        addr,
			Status:         c.status,
			CurrentValue:   c.value,
			AttemptedValue: value,
		}
	}
	if value < 1 || value > 9 {
		panic(fmt.Sprintf("illegal cell value %d for %s", value, addr))
	}
	g.cells[addr.row][addr.column] = completedCells[value]
	g.undefinedCellCount--
	return nil
}

// IsValid reports whether this grid complies with the Sudoku rules, i.e.
// whether none of the 9 rows, 9 columns, and 9 regions contains a duplicate
// value. An incomplete grid is valid as long as its non-empty cells do not
// violate the rules.
func (g *Grid) IsValid() bool {
	for i := range validationBlocks {
		if !g.isBlockValid(&validationBlocks[i]) {
			return false
		}
	}
	return true
}

func (g *Grid) isBlockValid(block *[9]*CellAddress) bool {
	var seen uint16
	for _, addr := range block {
		c := g.cells[addr.row][addr.column]
		if c.status == StatusUndefined {
			continue
		}
		mask := uint16(1) << (c.value - 1)
		if seen&mask != 0 {
			logrus.WithFields(logrus.Fields{
				"value": c.value,
				"cell":  addr,
			}).Debug("duplicate value in validation block")
			return false
		}
		seen |= mask
	}
	return true
}

// IsComplete reports whether every cell of this grid has a value. It does not
// care about validity - a grid without empty cells is complete even if it
// violates the Sudoku rules.
func (g *Grid) IsComplete() bool {
	return g.undefinedCellCount == 0
}
