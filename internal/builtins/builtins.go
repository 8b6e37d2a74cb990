// Package builtins installs Plorth's native word catalogue into a
// runtime's global dictionary and per-kind prototype objects. It is a
// representative sample of the full reference library, not an
// exhaustive port: one or two words per area of internal/eval and
// internal/value is enough to exercise every dispatch path the core
// provides (global words, prototype words, quote calls, errors).
package builtins

import (
	"github.com/plorth-go/plorth/internal/context"
	"github.com/plorth-go/plorth/internal/eval"
	"github.com/plorth-go/plorth/internal/runtime"
	"github.com/plorth-go/plorth/internal/value"
)

// nativeFunc is the signature every built-in word body is written
// against.
type nativeFunc func(ctx *context.Context)

// global registers name as a native quote in rt's global dictionary.
func global(rt *runtime.Runtime, name string, fn nativeFunc) {
	word := value.NewWord(value.NewSymbol(name), eval.NewNativeQuote(name, fn))
	rt.Global().Insert(word)
}

// proto registers name as a native quote on the prototype object for
// kind, reachable by prototype dispatch whenever a value of that kind
// sits on top of the stack.
func proto(rt *runtime.Runtime, kind value.Kind, name string, fn nativeFunc) {
	rt.PrototypeFor(kind).Set(name, eval.NewNativeQuote(name, fn))
}

// Install populates rt's global dictionary and prototype objects with
// the built-in word catalogue.
func Install(rt *runtime.Runtime) {
	installStack(rt)
	installTypeTest(rt)
	installControl(rt)
	installErrors(rt)
	installReflect(rt)
	installNumber(rt)
	installString(rt)
	installArray(rt)
	installObject(rt)
	installIndex(rt)
	installQuote(rt)
	installSymbolWord(rt)
	installNewWord(rt)
}
