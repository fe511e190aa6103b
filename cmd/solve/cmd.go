package solve

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/gridio"
	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/search/algorithms"
	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/search/engine"
)

type options struct {
	timeoutSec     int
	outputHTMLFile string
	noColor        bool
	verbose        bool
}

func NewSolveCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "solve <puzzle-file> <algorithm>",
		Short: "Solves the puzzle from the given file with the given search algorithm",
		Long: `Solves the puzzle from the given file with the given search algorithm.
The following snippet illustrates the expected format of the input file:

+-------+-------+-------+
| 6     |     4 |   8 5 |
| 9 7   |   6 5 |       |
|   4 8 | 7 3   |       |
+-------+-------+-------+
|   8   | 2 4 7 |       |
|     6 |   8   | 5     |
|       | 1 5 6 |   4   |
+-------+-------+-------+
|       |   1 3 | 2 6   |
|       | 6 9   |   3 4 |
| 2 6   | 4     |     9 |
+-------+-------+-------+
`,
		Args: cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("puzzle file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogging(opts.verbose)
			return run(args[0], args[1], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.timeoutSec, "timeout-sec", "t", 60, "the search timeout in seconds")
	cmd.Flags().StringVarP(&opts.outputHTMLFile, "output-html", "o", "", "the optional name of an HTML output file the summary is to be written to")
	cmd.Flags().BoolVarP(&opts.noColor, "no-color", "c", false, "if specified, the output will not use any colors")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enables debug logging")
	return cmd
}

func configureLogging(verbose bool) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.DateTime,
	})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
}

func run(puzzleFile, algorithmName string, opts *options) error {
	cellValues, err := gridio.ParseFile(puzzleFile)
	if err != nil {
		return err
	}

	e := engine.New(algorithms.DefaultRegistry(), engine.WithTimeout(time.Duration(opts.timeoutSec)*time.Second))
	summary, err := e.FindSolution(context.Background(), cellValues, algorithmName)
	if err != nil {
		return err
	}

	printSummary(summary, !opts.noColor)

	if opts.outputHTMLFile != "" {
		html, err := gridio.RenderHTML(summary)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.outputHTMLFile, []byte(html), 0644); err != nil {
			return fmt.Errorf("error writing HTML output file (%s): %w", opts.outputHTMLFile, err)
		}
	}
	return nil
}

func printSummary(summary *engine.Summary, useColor bool) {
	fmt.Println()
	fmt.Printf("Number of undefined cells in the puzzle: %d\n", summary.OriginalUndefinedCellCount)
	fmt.Printf("Search algorithm:                        %s\n", summary.Algorithm)
	fmt.Printf("Search outcome:                          %s\n", summary.Outcome)
	fmt.Printf("Search duration:                         %d ms\n", summary.DurationMillis)
	fmt.Printf("Number of tried cell values:             %d\n", summary.CellValuesTried)
	fmt.Println()
	fmt.Println(gridio.RenderText(summary.FinalGrid, useColor))
	fmt.Println()
}
