// Package algorithms provides the concrete search strategies and the
// registry they are published through.
package algorithms

import (
	"github.com/sirupsen/logrus"

	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/grid"
	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/search"
	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/search/engine"
)

// unambiguousCandidateSearch implements pure constraint propagation: every
// step consumes one unambiguous candidate and applies it. There is no
// branching and no backtracking - the grid evolves deterministically, and
// the search aborts as soon as no forced move is available.
type unambiguousCandidateSearch struct {
	newSupport func(*grid.Grid) *search.Support
	support    *search.Support
}

// NewBasicUCS creates the propagation-only strategy that detects naked
// singles only.
func NewBasicUCS() engine.Algorithm {
	return &unambiguousCandidateSearch{newSupport: search.NewSupport}
}

// NewAdvancedUCS creates the propagation-only strategy that detects hidden
// singles in addition to naked singles.
func NewAdvancedUCS() engine.Algorithm {
	return &unambiguousCandidateSearch{newSupport: search.NewAdvancedSupport}
}

func (s *unambiguousCandidateSearch) Initialize(puzzle *grid.Grid) {
	s.support = s.newSupport(puzzle.Copy())
}

func (s *unambiguousCandidateSearch) ApplyCellValue() engine.StepOutcome {
	candidate, ok := s.support.UnambiguousCandidate()
	if !ok {
		logrus.Debug("no applicable candidate found in queue, going to abort the search")
		if s.support.HasEmptyCellsWithoutCandidates() {
			return engine.PuzzleDeadEnd
		}
		return engine.AlgorithmDeadEnd
	}
	if err := s.support.SetCellValue(candidate.CellAddress, candidate.Value); err != nil {
		// queued candidates are revalidated before consumption, so the
		// targeted cell is guaranteed to be empty
		panic(err)
	}
	if s.support.HasCompletedGrid() {
		return engine.SolutionFound
	}
	return engine.Continue
}

func (s *unambiguousCandidateSearch) GridSnapshot() *grid.Grid {
	return s.support.GridSnapshot()
}
