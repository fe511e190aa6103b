// Package engine drives a search algorithm against a puzzle, enforces the
// search timeout, and classifies the terminal state of the search.
package engine

import (
	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/grid"
)

// Algorithm is the contract every search algorithm implements. The engine
// invokes Initialize once, then ApplyCellValue repeatedly until the returned
// step outcome indicates that the search is over.
type Algorithm interface {
	// Initialize prepares the algorithm for a search of the given puzzle.
	Initialize(puzzle *grid.Grid)

	// ApplyCellValue performs a single search step, typically the
	// application of a single cell value.
	ApplyCellValue() StepOutcome

	// GridSnapshot creates a copy of the grid reflecting the state of the
	// search after the last step. Modifying the snapshot does not impact
	// the search.
	GridSnapshot() *grid.Grid
}

// StepOutcome is the outcome of a single search step.
type StepOutcome int

const (
	// Continue indicates that the search is not over yet and the engine is
	// to invoke the next step.
	Continue StepOutcome = iota

	// SolutionFound indicates that the last step has completed the grid.
	SolutionFound

	// PuzzleDeadEnd indicates that the puzzle cannot be solved from the
	// current state: an undefined cell has no applicable candidates left,
	// so no strategy could proceed.
	PuzzleDeadEnd

	// AlgorithmDeadEnd indicates that the algorithm cannot proceed although
	// every undefined cell still has applicable candidates. Another
	// strategy might be able to solve the puzzle.
	AlgorithmDeadEnd
)

func (o StepOutcome) String() string {
	switch o {
	case Continue:
		return "CONTINUE"
	case SolutionFound:
		return "SOLUTION_FOUND"
	case PuzzleDeadEnd:
		return "PUZZLE_DEAD_END"
	case AlgorithmDeadEnd:
		return "ALGORITHM_DEAD_END"
	}
	return "UNKNOWN"
}

// Outcome is the overall outcome of a search.
type Outcome int

const (
	// OutcomeSolutionFound indicates that a complete and valid grid derived
	// from the original puzzle has been found.
	OutcomeSolutionFound Outcome = iota

	// OutcomePuzzleDeadEnd indicates that the search failed and the failure
	// is caused by the puzzle itself: at least one undefined cell has all
	// nine values excluded, so no other strategy is likely to succeed
	// either.
	OutcomePuzzleDeadEnd

	// OutcomeAlgorithmDeadEnd indicates that the search failed but every
	// undefined cell still has two or more applicable candidates. Chances
	// are the puzzle has a solution and the used strategy is simply unable
	// to cope with the ambiguity.
	OutcomeAlgorithmDeadEnd

	// OutcomeTimeout indicates that the search did not finish before the
	// configured timeout expired.
	OutcomeTimeout
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSolutionFound:
		return "SOLUTION_FOUND"
	case OutcomePuzzleDeadEnd:
		return "PUZZLE_DEAD_END"
	case OutcomeAlgorithmDeadEnd:
		return "ALGORITHM_DEAD_END"
	case OutcomeTimeout:
		return "TIMEOUT"
	}
	return "UNKNOWN"
}

// Summary carries detailed information about the outcome of a search,
// including the solution (or the final grid in case the search has led to a
// dead end).
type Summary struct {
	Algorithm                  string
	Outcome                    Outcome
	FinalGrid                  *grid.Grid
	OriginalUndefinedCellCount int
	DurationMillis             int64
	CellValuesTried            int
}
