package search

import (
	"fmt"

	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/grid"
)

// CandidateQueryMode determines which undefined cell the value exclusion
// logic picks when asked for candidates.
type CandidateQueryMode int

const (
	// FirstUndefinedCell selects the first undefined cell in row-major
	// order, regardless of how many candidate values it has.
	FirstUndefinedCell CandidateQueryMode = iota

	// UndefinedCellWithLeastCandidates selects the undefined cell with the
	// fewest applicable candidate values. Ties are broken in favor of the
	// cell encountered first in row-major order.
	UndefinedCellWithLeastCandidates
)

func (m CandidateQueryMode) String() string {
	switch m {
	case FirstUndefinedCell:
		return "FIRST_UNDEFINED_CELL"
	case UndefinedCellWithLeastCandidates:
		return "UNDEFINED_CELL_WITH_LEAST_CANDIDATES"
	}
	return "UNKNOWN"
}

// CandidateList carries all candidate values applicable to a single
// undefined cell, together with the address of that cell. The value order is
// ascending and the list is never empty.
type CandidateList struct {
	CellAddress *grid.CellAddress
	Values      []int
}

func (l *CandidateList) Len() int {
	return len(l.Values)
}

func (l *CandidateList) String() string {
	return fmt.Sprintf("CandidateList(cell=%s, values=%v)", l.CellAddress, l.Values)
}

// UnambiguousCandidate carries the single candidate value deduced as forced
// for an undefined cell. Candidates are queued when discovered and must be
// revalidated before consumption, since placements made in the meantime may
// have invalidated them.
type UnambiguousCandidate struct {
	CellAddress *grid.CellAddress
	Value       int
}

func (c UnambiguousCandidate) String() string {
	return fmt.Sprintf("UnambiguousCandidate(cell=%s, value=%d)", c.CellAddress, c.Value)
}
