package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/grid"
)

// DefaultTimeout is the search timeout applied when no WithTimeout option is
// given.
const DefaultTimeout = 60 * time.Second

// InvalidPuzzleError is returned when a puzzle is rejected before any search
// work begins, either because its givens violate the Sudoku rules or because
// it has no empty cells.
type InvalidPuzzleError struct {
	Reason string
}

func (e *InvalidPuzzleError) Error() string {
	return e.Reason
}

// Engine drives search algorithms against puzzles. A single engine can run
// any number of searches; every search gets a fresh algorithm instance from
// the registry.
type Engine struct {
	registry *Registry
	timeout  time.Duration
}

// Option configures an Engine.
type Option func(e *Engine)

// WithTimeout sets the wall-clock budget of a search. The timeout is checked
// between steps only; a search is never interrupted in the middle of a step.
func WithTimeout(timeout time.Duration) Option {
	return func(e *Engine) {
		e.timeout = timeout
	}
}

// New creates an engine that instantiates algorithms from the given
// registry.
func New(registry *Registry, options ...Option) *Engine {
	e := &Engine{
		registry: registry,
		timeout:  DefaultTimeout,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// FindSolution attempts to solve the given puzzle with the named search
// algorithm. The puzzle is rejected with an *InvalidPuzzleError before any
// search starts if its givens violate the Sudoku rules or if it has no
// empty cells; an unknown algorithm name yields an *UnknownAlgorithmError.
// Search-time failures (dead ends, timeout) are not errors - they are
// reported through the summary outcome together with partial statistics.
func (e *Engine) FindSolution(ctx context.Context, cellValues [9][9]int, algorithmName string) (*Summary, error) {
	logrus.WithFields(logrus.Fields{
		"algorithm": algorithmName,
		"timeout":   e.timeout,
	}).Info("going to start the search")

	puzzle := grid.New(cellValues)
	if !puzzle.IsValid() {
		return nil, &InvalidPuzzleError{
			Reason: "the given puzzle violates the game rules: at least one value is present two or more times in a single row, single column, or single region",
		}
	}
	if puzzle.IsComplete() {
		return nil, &InvalidPuzzleError{
			Reason: "the given puzzle does not contain empty cells, there is nothing to be solved",
		}
	}

	algorithm, err := e.registry.New(algorithmName)
	if err != nil {
		return nil, err
	}

	job := &searchJob{
		puzzle:    puzzle.Copy(),
		algorithm: algorithm,
		timeout:   e.timeout,
	}
	outcome := job.execute(ctx)

	finalGrid := algorithm.GridSnapshot()
	if outcome == OutcomeSolutionFound && !finalGrid.IsValid() {
		// a solution that fails re-validation indicates a bug in the
		// exclusion logic, not a puzzle property
		panic(fmt.Sprintf("final grid reported as solution by %s is not valid", algorithmName))
	}

	return &Summary{
		Algorithm:                  algorithmName,
		Outcome:                    outcome,
		FinalGrid:                  finalGrid,
		OriginalUndefinedCellCount: puzzle.UndefinedCellCount(),
		DurationMillis:             job.duration.Milliseconds(),
		CellValuesTried:            job.cellValuesTried,
	}, nil
}

// searchJob drives a single search by invoking the algorithm step by step
// and evaluating each step outcome.
type searchJob struct {
	puzzle          *grid.Grid
	algorithm       Algorithm
	timeout         time.Duration
	cellValuesTried int
	duration        time.Duration
}

func (j *searchJob) execute(ctx context.Context) Outcome {
	start := time.Now()
	defer func() {
		j.duration = time.Since(start)
	}()

	j.algorithm.Initialize(j.puzzle)
	stepOutcome := j.applyStep()
	logrus.WithField("outcome", stepOutcome).Debug("very first search step completed")
	for stepOutcome == Continue {
		if time.Since(start) > j.timeout || ctx.Err() != nil {
			logrus.WithFields(logrus.Fields{
				"timeout":         j.timeout,
				"cellValuesTried": j.cellValuesTried,
			}).Error("search not completed yet, timeout already reached")
			return OutcomeTimeout
		}
		stepOutcome = j.applyStep()
		logrus.WithField("outcome", stepOutcome).Debug("another search step completed")
	}

	switch stepOutcome {
	case SolutionFound:
		return OutcomeSolutionFound
	case PuzzleDeadEnd:
		return OutcomePuzzleDeadEnd
	case AlgorithmDeadEnd:
		return OutcomeAlgorithmDeadEnd
	}
	panic(fmt.Sprintf("unexpected terminal step outcome %s", stepOutcome))
}

func (j *searchJob) applyStep() StepOutcome {
	outcome := j.algorithm.ApplyCellValue()
	if outcome == Continue || outcome == SolutionFound {
		j.cellValuesTried++
	}
	return outcome
}
