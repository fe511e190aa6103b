package algorithms

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/sirupsen/logrus"

	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/grid"
	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/search/engine"
)

// satSearch encodes the puzzle as a boolean satisfiability problem over one
// literal per (row, column, value) triple and hands it to the gini solver.
// The whole search is a single step: either a model is found and the grid is
// completed from it, or the formula is unsatisfiable and the puzzle has no
// solution at all (reported as a puzzle dead end).
type satSearch struct {
	puzzle       *grid.Grid
	gridSnapshot *grid.Grid
}

// NewSAT creates the SAT-backed strategy.
func NewSAT() engine.Algorithm {
	return &satSearch{}
}

// lit maps the statement "the cell at (row, column) holds value" to a
// positive literal. Values are 1-9 here, unlike the 0-8 encoding gini's own
// Sudoku example uses.
func lit(row, column, value int) z.Lit {
	return z.Var(81*row + 9*column + value).Pos()
}

func (s *satSearch) Initialize(puzzle *grid.Grid) {
	s.puzzle = puzzle.Copy()
	s.gridSnapshot = puzzle.Copy()
}

func (s *satSearch) ApplyCellValue() engine.StepOutcome {
	g := gini.New()
	s.addClauses(g)

	if g.Solve() != 1 {
		logrus.Debug("formula unsatisfiable, the puzzle has no solution")
		return engine.PuzzleDeadEnd
	}

	solution := s.puzzle.Copy()
	for _, addr := range grid.AllCellAddresses() {
		if solution.CellStatus(addr) != grid.StatusUndefined {
			continue
		}
		for value := 1; value <= 9; value++ {
			if g.Value(lit(addr.Row(), addr.Column(), value)) {
				if err := solution.SetCellValue(addr, value); err != nil {
					panic(err)
				}
				break
			}
		}
	}
	s.gridSnapshot = solution
	logrus.Debug("search completed, solution found")
	return engine.SolutionFound
}

func (s *satSearch) addClauses(g *gini.Gini) {
	// every cell holds at least one value; together with the uniqueness
	// clauses below this forces exactly one value per cell
	for row := 0; row < 9; row++ {
		for column := 0; column < 9; column++ {
			for value := 1; value <= 9; value++ {
				g.Add(lit(row, column, value))
			}
			g.Add(0)
		}
	}

	// no value occurs twice in a row
	for value := 1; value <= 9; value++ {
		for row := 0; row < 9; row++ {
			for columnA := 0; columnA < 9; columnA++ {
				for columnB := columnA + 1; columnB < 9; columnB++ {
					g.Add(lit(row, columnA, value).Not())
					g.Add(lit(row, columnB, value).Not())
					g.Add(0)
				}
			}
		}
	}

	// no value occurs twice in a column
	for value := 1; value <= 9; value++ {
		for column := 0; column < 9; column++ {
			for rowA := 0; rowA < 9; rowA++ {
				for rowB := rowA + 1; rowB < 9; rowB++ {
					g.Add(lit(rowA, column, value).Not())
					g.Add(lit(rowB, column, value).Not())
					g.Add(0)
				}
			}
		}
	}

	// no value occurs twice in a region
	for topmostRow := 0; topmostRow < 9; topmostRow += 3 {
		for leftmostColumn := 0; leftmostColumn < 9; leftmostColumn += 3 {
			s.addRegionClauses(g, topmostRow, leftmostColumn)
		}
	}

	// unit clauses binding the predefined cells
	for _, addr := range grid.AllCellAddresses() {
		if value, ok := s.puzzle.CellValue(addr); ok {
			g.Add(lit(addr.Row(), addr.Column(), value))
			g.Add(0)
		}
	}
}

func (s *satSearch) addRegionClauses(g *gini.Gini, topmostRow, leftmostColumn int) {
	type offset struct{ row, column int }
	var cells []offset
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			cells = append(cells, offset{topmostRow + r, leftmostColumn + c})
		}
	}
	for value := 1; value <= 9; value++ {
		for i, cellA := range cells {
			for _, cellB := range cells[i+1:] {
				g.Add(lit(cellA.row, cellA.column, value).Not())
				g.Add(lit(cellB.row, cellB.column, value).Not())
				g.Add(0)
			}
		}
	}
}

func (s *satSearch) GridSnapshot() *grid.Grid {
	return s.gridSnapshot.Copy()
}
