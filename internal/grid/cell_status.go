package grid

// CellStatus describes the state of a single cell within a Sudoku grid.
type CellStatus int

const (
	// StatusUndefined indicates that a cell has no value, i.e. it was empty
	// in the original puzzle and has not been completed yet.
	StatusUndefined CellStatus = iota

	// StatusPredefined indicates that a cell had a value in the original
	// puzzle. Predefined cells never change.
	StatusPredefined

	// StatusCompleted indicates that a cell was empty in the original puzzle
	// but its value has been derived during the search.
	StatusCompleted
)

func (s CellStatus) String() string {
	switch s {
	case StatusUndefined:
		return "UNDEFINED"
	case StatusPredefined:
		return "PREDEFINED"
	case StatusCompleted:
		return "COMPLETED"
	}
	return "UNKNOWN"
}
