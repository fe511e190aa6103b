package grid

import "fmt"

// CellAddress represents the coordinates of a single cell in a Sudoku grid.
// The coordinates are zero-based - zero corresponds to the first row or
// column, eight corresponds to the last row or column. The 81 instances are
// interned: At always returns the same pointer for the same coordinates, so
// addresses can be compared by identity and shared by any number of grids.
type CellAddress struct {
	row    int
	column int
}

// Row returns the zero-based row coordinate.
func (a *CellAddress) Row() int {
	return a.row
}

// Column returns the zero-based column coordinate.
func (a *CellAddress) Column() int {
	return a.column
}

func (a *CellAddress) String() string {
	return fmt.Sprintf("[%d, %d]", a.row, a.column)
}

var allCellAddresses = func() [81]*CellAddress {
	var result [81]*CellAddress
	for row := 0; row < 9; row++ {
		for column := 0; column < 9; column++ {
			result[9*row+column] = &CellAddress{row: row, column: column}
		}
	}
	return result
}()

// At returns the interned cell address for the given coordinates. It panics
// if either coordinate is outside the range 0-8; passing an out-of-range
// coordinate is a programming error, not a recoverable condition.
func At(row, column int) *CellAddress {
	if row < 0 || row > 8 || column < 0 || column > 8 {
		panic(fmt.Sprintf("cell coordinates [%d, %d] out of range", row, column))
	}
	return allCellAddresses[9*row+column]
}

// AllCellAddresses returns the addresses of all 81 cells of a Sudoku grid in
// row-major order. The returned slice must not be modified.
func AllCellAddresses() []*CellAddress {
	return allCellAddresses[:]
}

// Cells residing in the same row, column, or region as a cell are its peers;
// every cell has exactly 20 of them (8 row-mates, 8 column-mates, and 4
// region-mates sharing neither the row nor the column).
var peerAddresses = func() [81][]*CellAddress {
	var result [81][]*CellAddress
	for _, addr := range allCellAddresses {
		peers := make([]*CellAddress, 0, 20)
		for i := 0; i < 9; i++ {
			if i != addr.column {
				peers = append(peers, At(addr.row, i))
			}
		}
		for i := 0; i < 9; i++ {
			if i != addr.row {
				peers = append(peers, At(i, addr.column))
			}
		}
		topmostRow := 3 * (addr.row / 3)
		leftmostColumn := 3 * (addr.column / 3)
		for r := topmostRow; r < topmostRow+3; r++ {
			for c := leftmostColumn; c < leftmostColumn+3; c++ {
				if r != addr.row && c != addr.column {
					peers = append(peers, At(r, c))
				}
			}
		}
		result[9*addr.row+addr.column] = peers
	}
	return result
}()

// PeerAddresses returns the addresses of all 20 peers of the cell with the
// given address. The returned slice must not be modified. The order is fixed,
// so iteration over the peers is deterministic.
func PeerAddresses(addr *CellAddress) []*CellAddress {
	return peerAddresses[9*addr.row+addr.column]
}
