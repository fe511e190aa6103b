package algorithms

import (
	"github.com/sirupsen/logrus"

	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/grid"
	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/search"
	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/search/engine"
)

// searchGraphNode is a single choice-point on the DFS stack: a search
// support snapshot plus an ordered list of values still to be tried for one
// cell.
type searchGraphNode struct {
	support      *search.Support
	candidates   *search.CandidateList
	currentIndex int
}

// newSearchGraphNode creates a choice-point for the given state. Creating a
// node without any candidate value is a programming error: dead states are
// never pushed to the stack.
func newSearchGraphNode(support *search.Support, candidates *search.CandidateList) *searchGraphNode {
	if candidates == nil || candidates.Len() == 0 {
		panic("cannot create search graph node without applicable candidate values")
	}
	return &searchGraphNode{support: support, candidates: candidates}
}

func (n *searchGraphNode) exhausted() bool {
	return n.currentIndex >= n.candidates.Len()
}

func (n *searchGraphNode) nextValue() int {
	value := n.candidates.Values[n.currentIndex]
	n.currentIndex++
	return value
}

// searchGraphNodeStack is the explicit backtracking stack used by the DFS
// strategy.
type searchGraphNodeStack struct {
	entries []*searchGraphNode
}

func (s *searchGraphNodeStack) push(node *searchGraphNode) {
	s.entries = append(s.entries, node)
}

// backtrackToFirstUnexhaustedNode pops exhausted nodes off the top of the
// stack and returns the topmost node that still has an untried value, or nil
// if the whole stack is exhausted.
func (s *searchGraphNodeStack) backtrackToFirstUnexhaustedNode() *searchGraphNode {
	for len(s.entries) > 0 {
		node := s.entries[len(s.entries)-1]
		if !node.exhausted() {
			return node
		}
		s.entries[len(s.entries)-1] = nil
		s.entries = s.entries[:len(s.entries)-1]
	}
	return nil
}

// depthFirstSearch is the backtracking brute-force strategy. Every step
// branches a copy of the topmost unexhausted choice-point, applies its next
// untried value, and pushes a new choice-point for the resulting state
// unless that state is already dead.
type depthFirstSearch struct {
	queryMode    search.CandidateQueryMode
	stack        searchGraphNodeStack
	gridSnapshot *grid.Grid
}

// NewNaiveDFS creates the depth-first strategy that always branches on the
// first undefined cell.
func NewNaiveDFS() engine.Algorithm {
	return &depthFirstSearch{queryMode: search.FirstUndefinedCell}
}

// NewSmartDFS creates the depth-first strategy that branches on the
// undefined cell with the fewest candidates (minimum remaining values).
func NewSmartDFS() engine.Algorithm {
	return &depthFirstSearch{queryMode: search.UndefinedCellWithLeastCandidates}
}

func (s *depthFirstSearch) Initialize(puzzle *grid.Grid) {
	s.gridSnapshot = puzzle.Copy()
	support := search.NewSupport(puzzle.Copy())
	if support.HasEmptyCellsWithoutCandidates() {
		logrus.Debug("empty cells without applicable candidates found, nothing will be pushed to stack")
		return
	}
	candidates := support.UndefinedCellCandidates(s.queryMode)
	s.stack.push(newSearchGraphNode(support, candidates))
}

func (s *depthFirstSearch) ApplyCellValue() engine.StepOutcome {
	node := s.stack.backtrackToFirstUnexhaustedNode()
	if node == nil {
		logrus.Debug("unexhausted node not found in the stack, going to abort the search")
		return engine.PuzzleDeadEnd
	}

	value := node.nextValue()
	support := node.support.Copy()
	if err := support.SetCellValue(node.candidates.CellAddress, value); err != nil {
		panic(err)
	}
	s.gridSnapshot = support.GridSnapshot()

	if support.HasCompletedGrid() {
		logrus.Debug("search completed, solution found")
		return engine.SolutionFound
	}
	if !support.HasEmptyCellsWithoutCandidates() {
		candidates := support.UndefinedCellCandidates(s.queryMode)
		s.stack.push(newSearchGraphNode(support, candidates))
	}
	return engine.Continue
}

func (s *depthFirstSearch) GridSnapshot() *grid.Grid {
	return s.gridSnapshot.Copy()
}
