package main

import (
	"errors"
	"os"

	"github.com/npillmayer/topdown/ll"
	"github.com/npillmayer/topdown/ll/predictive"
)

func main() {
	os.Exit(exitCode(Execute()))
}

// exitCode maps errors to the exit codes documented for the command.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ll.ErrNotLL1):
		return 2
	case errors.Is(err, predictive.ErrSyntax):
		return 3
	}
	return 1
}
