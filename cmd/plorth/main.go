// Command plorth is the command-line driver for the Plorth language core:
// it runs a program file or inline source, optionally pre-importing
// modules, and reports uncaught errors in the core's own format.
package main

import (
	"os"

	"github.com/plorth-go/plorth/cmd/plorth/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitUsage)
	}
}
