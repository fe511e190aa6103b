package main

import (
	"fmt"
	"os"

	"github.com/sudoku-sandbox/go-sudoku-sandbox/cmd/root"
)

func main() {
	rootCmd := root.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
