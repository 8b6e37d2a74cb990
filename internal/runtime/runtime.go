// Package runtime implements the process-wide Plorth environment: the
// global dictionary, the shared true/false instances, the per-type
// prototype objects, CLI arguments, module search configuration, the
// module cache, and small-integer/symbol caches for fast-path allocation.
package runtime

import (
	"io"
	"os"

	"github.com/plorth-go/plorth/internal/dictionary"
	"github.com/plorth-go/plorth/internal/position"
	"github.com/plorth-go/plorth/internal/value"
)

// Dict is the concrete dictionary type used for both the global dictionary
// and (via internal/context) each context's local dictionary.
type Dict = dictionary.Dictionary[*value.Word]

// NewDict constructs an empty Dict, used by internal/context to build each
// execution's local dictionary.
func NewDict() *Dict { return dictionary.New[*value.Word]() }

// CompilerFunc parses source text into a compiled quote value. It is
// injected at construction time rather than imported directly, so runtime
// never depends on the parser package (parser already depends on the
// evaluator's quote type, and runtime must stay below both in the import
// graph).
type CompilerFunc func(filename, source string) (value.Quote, *value.Error)

const (
	smallIntMin = -128
	smallIntMax = 256
)

// Runtime holds every process-wide, mutable piece of Plorth state.
type Runtime struct {
	global     *Dict
	prototypes map[value.Kind]*value.Object

	args           []string
	modulePaths    []string
	moduleExt      string
	modulesEnabled bool
	moduleCache    map[string]*value.Object

	smallInts   [smallIntMax - smallIntMin + 1]*value.Number
	symbolCache map[string]*value.Symbol

	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader

	Compiler CompilerFunc
}

// Option configures a Runtime at construction time.
type Option func(*Runtime)

// WithArgs sets the command-line arguments exposed to the `args` word.
func WithArgs(args []string) Option {
	return func(rt *Runtime) { rt.args = append([]string(nil), args...) }
}

// WithModulePaths sets the directories consulted for relative imports.
func WithModulePaths(paths []string) Option {
	return func(rt *Runtime) { rt.modulePaths = append([]string(nil), paths...) }
}

// WithModuleExtension overrides the default ".plorth" module file
// extension.
func WithModuleExtension(ext string) Option {
	return func(rt *Runtime) { rt.moduleExt = ext }
}

// WithModulesDisabled turns every import attempt into an `import` error.
func WithModulesDisabled() Option {
	return func(rt *Runtime) { rt.modulesEnabled = false }
}

// WithStdout overrides the runtime's standard output collaborator.
func WithStdout(w io.Writer) Option { return func(rt *Runtime) { rt.Stdout = w } }

// WithStderr overrides the runtime's standard error collaborator.
func WithStderr(w io.Writer) Option { return func(rt *Runtime) { rt.Stderr = w } }

// WithStdin overrides the runtime's standard input collaborator.
func WithStdin(r io.Reader) Option { return func(rt *Runtime) { rt.Stdin = r } }

// New constructs a Runtime with an empty global dictionary (callers
// install built-in words separately, see internal/builtins.Install) and
// one empty prototype object per value type. The NAME { prototype: ... }
// global words that expose them are installed by internal/builtins, not
// here.
func New(compiler CompilerFunc, opts ...Option) *Runtime {
	rt := &Runtime{
		global:         dictionary.New[*value.Word](),
		prototypes:     make(map[value.Kind]*value.Object),
		moduleExt:      ".plorth",
		modulesEnabled: true,
		moduleCache:    make(map[string]*value.Object),
		symbolCache:    make(map[string]*value.Symbol),
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
		Stdin:          os.Stdin,
		Compiler:       compiler,
	}
	for _, kind := range []value.Kind{
		value.KindArray, value.KindBoolean, value.KindError, value.KindNumber,
		value.KindObject, value.KindQuote, value.KindString, value.KindSymbol,
		value.KindWord,
	} {
		rt.prototypes[kind] = value.EmptyObject()
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Global returns the process-wide dictionary of built-in and user-defined
// top-level words.
func (rt *Runtime) Global() *Dict { return rt.global }

// PrototypeFor returns the shared prototype object for value kind k,
// implementing value.Prototypes.
func (rt *Runtime) PrototypeFor(k value.Kind) *value.Object {
	return rt.prototypes[k]
}

// Args returns the command-line arguments exposed to the `args` word.
func (rt *Runtime) Args() []string { return rt.args }

// ModulePaths returns the configured module search directories.
func (rt *Runtime) ModulePaths() []string { return rt.modulePaths }

// ModuleExtension returns the configured module file extension (default
// ".plorth").
func (rt *Runtime) ModuleExtension() string { return rt.moduleExt }

// ModulesEnabled reports whether module imports are permitted.
func (rt *Runtime) ModulesEnabled() bool { return rt.modulesEnabled }

// CacheGet returns the cached exported object for a resolved, canonical
// module path.
func (rt *Runtime) CacheGet(path string) (*value.Object, bool) {
	obj, ok := rt.moduleCache[path]
	return obj, ok
}

// CachePut stores the exported object for a resolved, canonical module
// path (used both for the final export object and for the empty
// placeholder inserted before the module body runs, to break cycles).
func (rt *Runtime) CachePut(path string, obj *value.Object) {
	rt.moduleCache[path] = obj
}

// CacheDelete removes a module path from the cache (used to roll back the
// placeholder on import failure).
func (rt *Runtime) CacheDelete(path string) {
	delete(rt.moduleCache, path)
}

// Number returns an integer Number value, reusing a shared instance for
// small integers in [-128, 256] the same way Python interns small ints.
func (rt *Runtime) Number(i int64) *value.Number {
	if i >= smallIntMin && i <= smallIntMax {
		idx := i - smallIntMin
		if rt.smallInts[idx] == nil {
			rt.smallInts[idx] = value.NewInt(i)
		}
		return rt.smallInts[idx]
	}
	return value.NewInt(i)
}

// RealNumber returns a real Number value.
func (rt *Runtime) RealNumber(r float64) *value.Number {
	return value.NewReal(r)
}

// NumberFromText parses text into a Number, matching spec.md's
// "number(text) (parses)" factory operation.
func (rt *Runtime) NumberFromText(text string) (*value.Number, bool) {
	return value.ParseNumber(text)
}

// String constructs a String value.
func (rt *Runtime) String(s string) *value.String { return value.NewString(s) }

// Array constructs an Array value.
func (rt *Runtime) Array(elems []value.Value) *value.Array { return value.NewArray(elems) }

// Object constructs an Object value with the given insertion order.
func (rt *Runtime) Object(order []string, props map[string]value.Value) *value.Object {
	return value.NewObject(order, props)
}

// Symbol interns a position-less symbol, sharing instances across calls
// with the same identifier (symbols produced by the parser always carry a
// position and are not interned, since their identity is tied to a source
// location).
func (rt *Runtime) Symbol(id string) *value.Symbol {
	if s, ok := rt.symbolCache[id]; ok {
		return s
	}
	s := value.NewSymbol(id)
	rt.symbolCache[id] = s
	return s
}

// SymbolAt constructs a symbol carrying a source position.
func (rt *Runtime) SymbolAt(id string, pos position.Position) *value.Symbol {
	return value.NewSymbolAt(id, pos)
}

// Word pairs a symbol and quote into a Word value.
func (rt *Runtime) Word(sym *value.Symbol, quote value.Quote) *value.Word {
	return value.NewWord(sym, quote)
}

// Error constructs an Error value with no position.
func (rt *Runtime) Error(code value.ErrorCode, message string) *value.Error {
	return value.NewError(code, message)
}

// ErrorAt constructs an Error value carrying a source position.
func (rt *Runtime) ErrorAt(code value.ErrorCode, message string, pos position.Position) *value.Error {
	return value.NewErrorAt(code, message, pos)
}

// Boolean returns the canonical True or False instance.
func (rt *Runtime) Boolean(b bool) *value.Boolean { return value.Bool(b) }
