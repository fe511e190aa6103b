package search

import (
	"github.com/sirupsen/logrus"

	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/grid"
)

// Support aggregates a grid with the value exclusion logic, a cell exclusion
// logic, and a FIFO queue of unambiguous candidates discovered by the
// exclusions. It offers the single safe mutation (SetCellValue) and the
// structural copy used by every search algorithm.
type Support struct {
	grid               *grid.Grid
	valueExclusion     *ValueExclusionLogic
	cellExclusion      CellExclusionLogic
	candidateQueue     []UnambiguousCandidate
	candidateQueueHead int
}

// NewSupport creates a search support for the given grid, detecting naked
// singles only. The grid is taken over by the support; callers that need to
// retain the original should pass a copy.
func NewSupport(g *grid.Grid) *Support {
	return newSupport(g, NewNullCellExclusionLogic())
}

// NewAdvancedSupport creates a search support for the given grid that
// detects hidden singles in addition to naked singles.
func NewAdvancedSupport(g *grid.Grid) *Support {
	return newSupport(g, NewCellExclusionLogic())
}

func newSupport(g *grid.Grid, cellExclusion CellExclusionLogic) *Support {
	s := &Support{
		grid:           g,
		valueExclusion: NewValueExclusionLogic(),
		cellExclusion:  cellExclusion,
	}
	for _, addr := range grid.AllCellAddresses() {
		if g.CellStatus(addr) != grid.StatusPredefined {
			continue
		}
		value, _ := g.CellValue(addr)
		s.enqueue(s.valueExclusion.ApplyAndExclude(addr, value))
		s.enqueue(s.cellExclusion.ApplyAndExclude(addr, value))
	}
	return s
}

// Copy creates a copy of this support which behaves as if it was a deep
// copy. Any later mutation of the copy will not change this support and vice
// versa.
func (s *Support) Copy() *Support {
	queue := make([]UnambiguousCandidate, len(s.candidateQueue)-s.candidateQueueHead)
	copy(queue, s.candidateQueue[s.candidateQueueHead:])
	return &Support{
		grid:           s.grid.Copy(),
		valueExclusion: s.valueExclusion.Copy(),
		cellExclusion:  s.cellExclusion.Copy(),
		candidateQueue: queue,
	}
}

func (s *Support) enqueue(candidates []UnambiguousCandidate) {
	s.candidateQueue = append(s.candidateQueue, candidates...)
}

// GridSnapshot creates and returns a copy of the underlying grid.
// Modification of the snapshot will not impact this support.
func (s *Support) GridSnapshot() *grid.Grid {
	return s.grid.Copy()
}

// SetCellValue sets the cell with the given address to the given value and
// runs both exclusion engines. Unambiguous candidates identified by the
// exclusions are queued for UnambiguousCandidate.
func (s *Support) SetCellValue(addr *grid.CellAddress, value int) error {
	if err := s.grid.SetCellValue(addr, value); err != nil {
		return err
	}
	discoveries := s.valueExclusion.ApplyAndExclude(addr, value)
	logrus.WithFields(logrus.Fields{
		"cell":        addr,
		"value":       value,
		"discoveries": len(discoveries),
	}).Debug("value exclusion completed")
	s.enqueue(discoveries)
	discoveries = s.cellExclusion.ApplyAndExclude(addr, value)
	logrus.WithFields(logrus.Fields{
		"cell":        addr,
		"value":       value,
		"discoveries": len(discoveries),
	}).Debug("cell exclusion completed")
	s.enqueue(discoveries)
	return nil
}

// HasCompletedGrid reports whether the underlying grid has no undefined
// cells left.
func (s *Support) HasCompletedGrid() bool {
	return s.grid.IsComplete()
}

// HasEmptyCellsWithoutCandidates reports whether the underlying grid
// contains at least one undefined cell for which all nine values have
// already been excluded. Such a cell means the puzzle cannot be solved from
// the current state by any strategy.
func (s *Support) HasEmptyCellsWithoutCandidates() bool {
	for _, addr := range grid.AllCellAddresses() {
		if s.grid.CellStatus(addr) != grid.StatusUndefined {
			continue
		}
		if s.valueExclusion.ApplicableValueCount(addr) == 0 {
			logrus.WithField("cell", addr).Debug("undefined cell without applicable candidates")
			return true
		}
	}
	return false
}

// UnambiguousCandidate pops the next queued candidate that is still
// applicable, discarding any that later placements have invalidated. The
// second return value is false if the queue is drained without finding an
// applicable candidate.
func (s *Support) UnambiguousCandidate() (UnambiguousCandidate, bool) {
	for s.candidateQueueHead < len(s.candidateQueue) {
		candidate := s.candidateQueue[s.candidateQueueHead]
		s.candidateQueueHead++
		if s.valueExclusion.IsApplicable(candidate) {
			return candidate, true
		}
		logrus.WithField("candidate", candidate).Debug("queued candidate no longer applicable, discarding")
	}
	return UnambiguousCandidate{}, false
}

// UndefinedCellCandidates returns the candidate values applicable to one of
// the undefined cells of the underlying grid, selected according to the
// given query mode. It returns nil if no undefined cell has applicable
// candidates.
func (s *Support) UndefinedCellCandidates(mode CandidateQueryMode) *CandidateList {
	return s.valueExclusion.UndefinedCellCandidates(mode)
}
