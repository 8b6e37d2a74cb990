package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ExitUsage is the process exit code for a CLI usage error (unknown
// flag, missing argument), matching the POSIX EX_USAGE convention the
// core spec calls for.
const ExitUsage = 64

var (
	evalPrograms []string
	importPaths  []string
	parseOnly    bool
	fork         bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "plorth [flags] [programfile] [args...]",
	Short: "Plorth: a stack-based, prototype-oriented programming language",
	Long: `plorth runs Plorth programs: a small, dynamically-typed, concatenative
language with prototype-based object inheritance.

Examples:
  plorth script.plorth arg1 arg2
  plorth -v -e '1 2 +'
  plorth -c script.plorth
  plorth -r lib.plorth script.plorth`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: false,
	Args:          cobra.ArbitraryArgs,
	RunE:          run,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("plorth version {{.Version}}\n"))

	rootCmd.Flags().StringArrayVarP(&evalPrograms, "eval", "e", nil, "evaluate inline program (repeatable, joined with newlines)")
	rootCmd.Flags().StringArrayVarP(&importPaths, "require", "r", nil, "import a module before running the program (repeatable)")
	rootCmd.Flags().BoolVarP(&parseOnly, "compile", "c", false, "parse only; print \"Syntax OK.\" and exit")
	rootCmd.Flags().BoolVarP(&fork, "fork", "f", false, "fork to background before executing")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostics on stderr")
}

// Execute runs the root command, returning a non-nil error only for
// usage mistakes (cobra's own flag/argument validation); runtime
// failures exit the process directly from run() with the core's own
// exit code.
func Execute() error {
	return rootCmd.Execute()
}
