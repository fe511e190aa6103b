package algorithms

import (
	"github.com/sirupsen/logrus"

	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/grid"
	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/search"
	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/search/engine"
)

// stepInput is a single entry in the BFS frontier queue: a search support
// snapshot plus one (cell, value) assignment to apply to it.
type stepInput struct {
	support     *search.Support
	cellAddress *grid.CellAddress
	value       int
}

// breadthFirstSearch explores the search space level by level. Every step
// pops the oldest frontier entry, branches a copy of its state, applies the
// assignment, and enqueues one new entry per remaining candidate of the next
// selected cell. The frontier grows with the breadth of the search space, so
// this strategy is intended for small or nearly-complete puzzles.
type breadthFirstSearch struct {
	queryMode    search.CandidateQueryMode
	queue        []stepInput
	gridSnapshot *grid.Grid
}

// NewNaiveBFS creates the breadth-first strategy that always branches on the
// first undefined cell.
func NewNaiveBFS() engine.Algorithm {
	return &breadthFirstSearch{queryMode: search.FirstUndefinedCell}
}

// NewSmartBFS creates the breadth-first strategy that branches on the
// undefined cell with the fewest candidates (minimum remaining values).
func NewSmartBFS() engine.Algorithm {
	return &breadthFirstSearch{queryMode: search.UndefinedCellWithLeastCandidates}
}

func (s *breadthFirstSearch) Initialize(puzzle *grid.Grid) {
	s.gridSnapshot = puzzle.Copy()
	s.enqueueSteps(search.NewSupport(puzzle.Copy()))
}

func (s *breadthFirstSearch) ApplyCellValue() engine.StepOutcome {
	if len(s.queue) == 0 {
		logrus.Debug("empty queue, going to abort the search")
		return engine.PuzzleDeadEnd
	}
	step := s.queue[0]
	s.queue[0] = stepInput{}
	s.queue = s.queue[1:]

	support := step.support
	if err := support.SetCellValue(step.cellAddress, step.value); err != nil {
		panic(err)
	}
	s.gridSnapshot = support.GridSnapshot()

	if support.HasCompletedGrid() {
		logrus.Debug("search completed, solution found")
		return engine.SolutionFound
	}
	s.enqueueSteps(support)
	return engine.Continue
}

func (s *breadthFirstSearch) enqueueSteps(support *search.Support) {
	if support.HasEmptyCellsWithoutCandidates() {
		logrus.Debug("empty cells without applicable candidates found, nothing will be added to queue")
		return
	}
	candidates := support.UndefinedCellCandidates(s.queryMode)
	for _, value := range candidates.Values {
		s.queue = append(s.queue, stepInput{
			support:     support.Copy(),
			cellAddress: candidates.CellAddress,
			value:       value,
		})
	}
}

func (s *breadthFirstSearch) GridSnapshot() *grid.Grid {
	return s.gridSnapshot.Copy()
}
