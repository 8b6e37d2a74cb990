// Package plorth is the embedding API: construct an Engine, run source
// text or files against it, and import modules ahead of time, without
// pulling in any of the core's internal packages directly.
package plorth

import (
	"io"
	"os"

	"github.com/plorth-go/plorth/internal/builtins"
	"github.com/plorth-go/plorth/internal/context"
	"github.com/plorth-go/plorth/internal/eval"
	"github.com/plorth-go/plorth/internal/module"
	"github.com/plorth-go/plorth/internal/parser"
	"github.com/plorth-go/plorth/internal/runtime"
	"github.com/plorth-go/plorth/internal/value"
)

// Option configures an Engine at construction time. It is an alias of
// the underlying runtime option type so callers never import
// internal/runtime directly.
type Option = runtime.Option

// WithArgs sets the command-line arguments exposed to the `args` word.
func WithArgs(args []string) Option { return runtime.WithArgs(args) }

// WithModulePaths sets the directories consulted for relative imports.
func WithModulePaths(paths []string) Option { return runtime.WithModulePaths(paths) }

// WithModuleExtension overrides the default ".plorth" module file extension.
func WithModuleExtension(ext string) Option { return runtime.WithModuleExtension(ext) }

// WithModulesDisabled turns every import attempt into an `import` error.
func WithModulesDisabled() Option { return runtime.WithModulesDisabled() }

// WithStdout overrides the engine's standard output collaborator.
func WithStdout(w io.Writer) Option { return runtime.WithStdout(w) }

// WithStderr overrides the engine's standard error collaborator.
func WithStderr(w io.Writer) Option { return runtime.WithStderr(w) }

// WithStdin overrides the engine's standard input collaborator.
func WithStdin(r io.Reader) Option { return runtime.WithStdin(r) }

// Engine is a ready-to-use Plorth runtime with the built-in word
// catalogue installed.
type Engine struct {
	rt *runtime.Runtime
}

// New constructs an Engine: a fresh runtime wired to the parser and
// populated with the built-in word catalogue.
func New(opts ...Option) *Engine {
	rt := runtime.New(parser.Compile, opts...)
	builtins.Install(rt)
	return &Engine{rt: rt}
}

// Result is the outcome of running a program: the final data stack,
// bottom to top, or the uncaught error that stopped execution.
type Result struct {
	Stack []value.Value
	Err   *value.Error
}

// Eval compiles and runs source as a standalone program in a fresh
// context, returning the resulting stack or the error that stopped it.
func (e *Engine) Eval(filename, source string) Result {
	ctx := context.New(e.rt, filename)
	quote, ok := ctx.Compile(source)
	if !ok {
		return Result{Err: ctx.Error()}
	}
	if !eval.Call(ctx, quote) {
		return Result{Err: ctx.Error()}
	}
	return Result{Stack: stackSlice(ctx)}
}

// RunFile reads filename and evaluates its contents as a program.
func (e *Engine) RunFile(filename string) Result {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Result{Err: value.NewError(value.ErrIO, "Cannot read file: "+filename)}
	}
	return e.Eval(filename, string(data))
}

// Import resolves and runs path as a module ahead of time (e.g. for the
// CLI driver's -r flag), installing its exported quotes into a
// throwaway context and discarding them -- only the runtime-level
// module cache persists, so later user-level imports of the same path
// are cheap.
func (e *Engine) Import(path string) *value.Error {
	ctx := context.New(e.rt, "")
	if !module.Import(ctx, path) {
		return ctx.Error()
	}
	return nil
}

// Runtime exposes the underlying runtime for advanced callers.
func (e *Engine) Runtime() *runtime.Runtime { return e.rt }

func stackSlice(ctx *context.Context) []value.Value {
	n := ctx.Size()
	out := make([]value.Value, n)
	for i := n - 1; i >= 0; i-- {
		v, _ := ctx.Pop()
		out[i] = v
	}
	return out
}
