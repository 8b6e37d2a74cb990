// Package eval implements Plorth's evaluator: Eval (value -> value) and
// Exec (value -> stack effect), dispatching on value variant with an
// explicit type switch rather than virtual dispatch, plus the quote engine
// (compiled and native quotes) that drives calls.
package eval

import (
	"strings"

	"github.com/plorth-go/plorth/internal/context"
	"github.com/plorth-go/plorth/internal/value"
)

// CompiledQuote holds an ordered sequence of token values produced by the
// parser. Calling it executes each value via Exec in order, stopping at
// the first failure.
type CompiledQuote struct {
	Elements []value.Value
	Filename string
}

// NewCompiledQuote wraps elems (and the filename they were parsed from,
// for diagnostics) into a callable compiled quote.
func NewCompiledQuote(elems []value.Value, filename string) *CompiledQuote {
	return &CompiledQuote{Elements: elems, Filename: filename}
}

func (*CompiledQuote) IsQuote() {}

func (q *CompiledQuote) Kind() value.Kind { return value.KindQuote }

func (q *CompiledQuote) Equals(other value.Value) bool {
	o, ok := other.(*CompiledQuote)
	if !ok || len(o.Elements) != len(q.Elements) {
		return false
	}
	for i, e := range q.Elements {
		if !e.Equals(o.Elements[i]) {
			return false
		}
	}
	return true
}

// String joins the elements' to_source forms with spaces, per the core
// spec's quote engine section.
func (q *CompiledQuote) String() string {
	parts := make([]string, len(q.Elements))
	for i, e := range q.Elements {
		parts[i] = e.Source()
	}
	return strings.Join(parts, " ")
}

// Source wraps the to_string form in parens.
func (q *CompiledQuote) Source() string {
	return "(" + q.String() + ")"
}

// Call executes every element via Exec in order, stopping (and returning
// false) at the first one that fails.
func (q *CompiledQuote) Call(ctx *context.Context) bool {
	for _, elem := range q.Elements {
		if !Exec(ctx, elem) {
			return false
		}
	}
	return true
}

// NativeQuote wraps a host callback. Calling it invokes the callback and
// succeeds iff no error is left set on the context afterward.
type NativeQuote struct {
	Name string
	Fn   func(ctx *context.Context)
}

// NewNativeQuote wraps fn as a callable native quote, named for debugging
// and for to_source's opaque placeholder.
func NewNativeQuote(name string, fn func(ctx *context.Context)) *NativeQuote {
	return &NativeQuote{Name: name, Fn: fn}
}

func (*NativeQuote) IsQuote() {}

func (q *NativeQuote) Kind() value.Kind { return value.KindQuote }

// Equals compares native quotes by identity, per the core spec.
func (q *NativeQuote) Equals(other value.Value) bool {
	o, ok := other.(*NativeQuote)
	return ok && o == q
}

func (q *NativeQuote) String() string {
	return "<native quote: " + q.Name + ">"
}

// Source renders an opaque placeholder; a native quote cannot be
// reconstructed from source text.
func (q *NativeQuote) Source() string {
	return "<native quote: " + q.Name + ">"
}

// Call invokes the wrapped callback and reports success iff it left no
// error set on ctx.
func (q *NativeQuote) Call(ctx *context.Context) bool {
	q.Fn(ctx)
	return !ctx.HasError()
}

// Call dispatches a generic value.Quote to its concrete Call
// implementation. This is the one place that needs to know both concrete
// quote types; code elsewhere (builtins, the module loader, `try`/`if`)
// only ever sees the value.Quote interface.
func Call(ctx *context.Context, q value.Quote) bool {
	switch quote := q.(type) {
	case *CompiledQuote:
		return quote.Call(ctx)
	case *NativeQuote:
		return quote.Call(ctx)
	default:
		ctx.SetError(value.ErrType, "unrecognized quote implementation")
		return false
	}
}
