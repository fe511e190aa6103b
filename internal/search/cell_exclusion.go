package search

import (
	"fmt"
	"math/bits"

	"github.com/sirupsen/logrus"

	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/grid"
)

// CellExclusionLogic is the contract for trackers of candidate cells, i.e.
// of the cells within a region where a particular value is still applicable.
type CellExclusionLogic interface {
	// ApplyAndExclude applies the given value to the cell with the given
	// address and excludes cells that are no longer eligible for a value as
	// a consequence. It returns one UnambiguousCandidate for every
	// region/value pair left with a single eligible cell by this exclusion
	// (hidden singles); the result is nil if there is no such pair.
	ApplyAndExclude(addr *grid.CellAddress, value int) []UnambiguousCandidate

	// Copy creates a copy of this instance which behaves as if it was a
	// deep copy.
	Copy() CellExclusionLogic
}

// Masks of the cells surviving when a value is placed in a row or column
// that crosses a region without the placement being inside the region. The
// key is the row (or column) index within the region.
var (
	rowPeerMasks    = [3]uint16{0b111111000, 0b111000111, 0b000111111}
	columnPeerMasks = [3]uint16{0b110110110, 0b101101101, 0b011011011}
)

// regionCandidateCells keeps track of the cells within a single region where
// a particular value is still applicable. Bit 3*r+c of the mask corresponds
// to the cell at the region-relative coordinates (r, c).
type regionCandidateCells struct {
	topmostRow     int
	leftmostColumn int
	value          int
	bitmask        uint16
	count          int
}

// applyAndExclude updates the mask for a placement of value at addr. It
// reports whether the update has just reduced the tracker to exactly one
// eligible cell.
func (r *regionCandidateCells) applyAndExclude(addr *grid.CellAddress, value int) bool {
	rowWithinRegion, columnWithinRegion := r.relativeCoordinates(addr)
	rowMatches := rowWithinRegion >= 0
	columnMatches := columnWithinRegion >= 0

	switch {
	case !rowMatches && !columnMatches:
		// neither the row nor the column containing the cell crosses this
		// region, nothing to exclude
		return false
	case rowMatches && !columnMatches:
		if value != r.value {
			return false
		}
		return r.applyMask(rowPeerMasks[rowWithinRegion])
	case columnMatches && !rowMatches:
		if value != r.value {
			return false
		}
		return r.applyMask(columnPeerMasks[columnWithinRegion])
	}

	// the cell is inside this region
	if value == r.value {
		// the value is placed, the whole region is satisfied
		r.bitmask = 0
		r.count = 0
		return false
	}
	cellMask := uint16(1) << (3*rowWithinRegion + columnWithinRegion)
	return r.applyMask(fullMask ^ cellMask)
}

// relativeCoordinates translates the given address to coordinates within
// this region. A coordinate is -1 if the corresponding row/column does not
// cross this region.
func (r *regionCandidateCells) relativeCoordinates(addr *grid.CellAddress) (int, int) {
	rowWithinRegion, columnWithinRegion := -1, -1
	if 3*(addr.Row()/3) == r.topmostRow {
		rowWithinRegion = addr.Row() - r.topmostRow
	}
	if 3*(addr.Column()/3) == r.leftmostColumn {
		columnWithinRegion = addr.Column() - r.leftmostColumn
	}
	return rowWithinRegion, columnWithinRegion
}

func (r *regionCandidateCells) applyMask(mask uint16) bool {
	r.bitmask &= mask
	newCount := bits.OnesCount16(r.bitmask)
	found := newCount == 1 && r.count > 1
	r.count = newCount
	return found
}

// singleRemainingCell resolves the sole surviving bit to an unambiguous
// candidate. Calling it while the count is not exactly 1 is a programming
// error.
func (r *regionCandidateCells) singleRemainingCell() UnambiguousCandidate {
	if r.count != 1 {
		panic(fmt.Sprintf("cannot provide single remaining applicable cell (%d candidates remaining)", r.count))
	}
	i := bits.TrailingZeros16(r.bitmask)
	addr := grid.At(r.topmostRow+i/3, r.leftmostColumn+i%3)
	return UnambiguousCandidate{CellAddress: addr, Value: r.value}
}

// regionGrid aggregates the nine region trackers for a single value.
type regionGrid struct {
	regions [9]regionCandidateCells
}

func newRegionGrid(value int) regionGrid {
	var g regionGrid
	i := 0
	for _, topmostRow := range []int{0, 3, 6} {
		for _, leftmostColumn := range []int{0, 3, 6} {
			g.regions[i] = regionCandidateCells{
				topmostRow:     topmostRow,
				leftmostColumn: leftmostColumn,
				value:          value,
				bitmask:        fullMask,
				count:          9,
			}
			i++
		}
	}
	return g
}

func (g *regionGrid) applyAndExclude(addr *grid.CellAddress, value int) []UnambiguousCandidate {
	var result []UnambiguousCandidate
	for i := range g.regions {
		if g.regions[i].applyAndExclude(addr, value) {
			result = append(result, g.regions[i].singleRemainingCell())
		}
	}
	return result
}

// candidateCellExclusionLogic tracks, for every region/value pair, the cells
// of that region where the value is still applicable. Whenever a cell value
// is applied, all affected trackers are updated; trackers left with a single
// eligible cell identify that cell as an unambiguous candidate for their
// value (a hidden single).
type candidateCellExclusionLogic struct {
	grids [9]regionGrid
}

// NewCellExclusionLogic creates an instance with all nine cells of every
// region applicable for every value.
func NewCellExclusionLogic() CellExclusionLogic {
	logic := &candidateCellExclusionLogic{}
	for value := 1; value <= 9; value++ {
		logic.grids[value-1] = newRegionGrid(value)
	}
	return logic
}

func (l *candidateCellExclusionLogic) ApplyAndExclude(addr *grid.CellAddress, value int) []UnambiguousCandidate {
	logrus.WithFields(logrus.Fields{
		"cell":  addr,
		"value": value,
	}).Debug("applying value to cell exclusion trackers")
	var result []UnambiguousCandidate
	for i := range l.grids {
		result = append(result, l.grids[i].applyAndExclude(addr, value)...)
	}
	return result
}

func (l *candidateCellExclusionLogic) Copy() CellExclusionLogic {
	clone := *l
	return &clone
}

// nullCellExclusionLogic never excludes anything. It backs the search
// support variant that detects naked singles only.
type nullCellExclusionLogic struct{}

// NewNullCellExclusionLogic returns the no-op cell exclusion stand-in.
func NewNullCellExclusionLogic() CellExclusionLogic {
	return nullCellExclusionLogic{}
}

func (nullCellExclusionLogic) ApplyAndExclude(*grid.CellAddress, int) []UnambiguousCandidate {
	return nil
}

func (n nullCellExclusionLogic) Copy() CellExclusionLogic {
	// stateless, no reason to create a new instance
	return n
}
