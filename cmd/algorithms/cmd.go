package algorithms

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/search/algorithms"
)

func NewAlgorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "Lists the available search algorithms",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range algorithms.DefaultRegistry().Names() {
				fmt.Println(name)
			}
		},
	}
}
