package cmd

import "github.com/plorth-go/plorth/internal/builtins"

// Version is reported by --version and mirrors the runtime's `version`
// reflection word.
var Version = builtins.Version
