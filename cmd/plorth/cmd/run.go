package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plorth-go/plorth/errors"
	"github.com/plorth-go/plorth/internal/parser"
	"github.com/plorth-go/plorth/internal/value"
	"github.com/plorth-go/plorth/pkg/plorth"
)

func run(_ *cobra.Command, args []string) error {
	if fork {
		if err := detachToBackground(); err != nil {
			return err
		}
	}

	var filename, source string
	var programArgs []string

	if len(evalPrograms) > 0 {
		filename = "<eval>"
		source = strings.Join(evalPrograms, "\n")
		programArgs = args
	} else if len(args) > 0 {
		filename = args[0]
		data, err := os.ReadFile(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot read %s: %v\n", filename, err)
			os.Exit(1)
		}
		source = string(data)
		programArgs = args[1:]
	} else {
		return fmt.Errorf("either provide a program file or use -e for inline code")
	}

	engine := plorth.New(
		plorth.WithArgs(programArgs),
		plorth.WithModulePaths(modulePaths()),
	)

	for _, path := range importPaths {
		if err := engine.Import(path); err != nil {
			reportError(err, "")
			os.Exit(1)
		}
	}

	if parseOnly {
		if _, err := parser.Compile(filename, source); err != nil {
			reportError(err, source)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "Syntax OK.")
		return nil
	}

	result := engine.Eval(filename, source)
	if result.Err != nil {
		reportError(result.Err, source)
		os.Exit(1)
	}

	if verbose {
		for _, v := range result.Stack {
			fmt.Fprintln(os.Stderr, v.String())
		}
	}
	return nil
}

func reportError(err *value.Error, source string) {
	if source != "" {
		fmt.Fprintln(os.Stderr, errors.Format(err, source))
		return
	}
	fmt.Fprintln(os.Stderr, errors.Flat(err))
}

// modulePaths reads PLORTHPATH, a platform-separator list of
// directories consulted in order for relative imports.
func modulePaths() []string {
	raw := os.Getenv("PLORTHPATH")
	if raw == "" {
		return nil
	}
	return filepath.SplitList(raw)
}
