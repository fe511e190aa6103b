package root

import (
	"github.com/spf13/cobra"

	"github.com/sudoku-sandbox/go-sudoku-sandbox/cmd/algorithms"
	"github.com/sudoku-sandbox/go-sudoku-sandbox/cmd/solve"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sudoku-sandbox",
		Short: "Sudoku Sandbox is a playground for Sudoku search algorithms",
		Long: `A playground for Sudoku search algorithms written in Go. It solves 9x9
puzzles by combining constraint propagation with pluggable brute-force
search strategies.`,
	}

	// add sub-commands
	rootCmd.AddCommand(solve.NewSolveCommand())
	rootCmd.AddCommand(algorithms.NewAlgorithmsCommand())

	return rootCmd
}
