package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the root command and returns the process exit code.
// Failed checks are already explained by the report; any other error
// (unknown flag, stray argument) is printed to stderr.
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, ErrCheckFailed) {
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
			_, _ = fmt.Fprintln(stderr, "Run 'authcheck --help' for usage.")
		}
		return 1
	}
	return 0
}
