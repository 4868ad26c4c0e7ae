// Package main implements the unitcalc command, a front end to the
// dimension and unit algebra: rendering ids, rebasing, simplifying,
// converting quantities and choosing a representative quantity.
package main

import (
	"os"
)

// main is the entry point for the unitcalc CLI.
func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
