// Package context implements the per-execution state a running Plorth
// program operates on: the data stack, the local dictionary, the current
// uncaught error and the current source position.
package context

import (
	"github.com/plorth-go/plorth/internal/position"
	"github.com/plorth-go/plorth/internal/runtime"
	"github.com/plorth-go/plorth/internal/value"
)

// Context owns one execution's mutable state. The core assumes a single
// owner per Context at a time; there are no locks.
type Context struct {
	rt       *runtime.Runtime
	stack    []value.Value
	local    *runtime.Dict
	err      *value.Error
	pos      position.Position
	filename string
}

// New constructs a fresh Context for filename (empty for REPL/eval input),
// sharing rt's global dictionary and caches.
func New(rt *runtime.Runtime, filename string) *Context {
	return &Context{
		rt:       rt,
		local:    runtime.NewDict(),
		filename: filename,
	}
}

// Runtime returns the owning Runtime.
func (c *Context) Runtime() *runtime.Runtime { return c.rt }

// Filename returns this context's source filename, used for module
// diagnostics and as the sub-context filename a module body executes
// under.
func (c *Context) Filename() string { return c.filename }

// Local returns the context's local dictionary.
func (c *Context) Local() *runtime.Dict { return c.local }

// Position returns the context's current source position.
func (c *Context) Position() position.Position { return c.pos }

// SetPosition updates the context's current source position; exec copies
// a symbol's position here before resolving it, so that an error raised
// during resolution points at the symbol that triggered it.
func (c *Context) SetPosition(pos position.Position) { c.pos = pos }

// ---- stack operations ----

// Push pushes v onto the top of the data stack.
func (c *Context) Push(v value.Value) { c.stack = append(c.stack, v) }

// Pop removes and returns the top of the stack. On an empty stack it sets
// a range/"Stack underflow" error and returns (nil, false).
func (c *Context) Pop() (value.Value, bool) {
	if len(c.stack) == 0 {
		c.SetError(value.ErrRange, "Stack underflow")
		return nil, false
	}
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return top, true
}

// PopExpecting pops the top of the stack and checks its kind. An empty
// stack sets a range error; a kind mismatch sets a type error.
func (c *Context) PopExpecting(kind value.Kind) (value.Value, bool) {
	v, ok := c.Pop()
	if !ok {
		return nil, false
	}
	if v.Kind() != kind {
		c.SetError(value.ErrType, "Expected "+kind.String()+", got "+v.Kind().String()+" instead")
		return nil, false
	}
	return v, true
}

// Peek returns the top of the stack without removing it.
func (c *Context) Peek() (value.Value, bool) {
	if len(c.stack) == 0 {
		return nil, false
	}
	return c.stack[len(c.stack)-1], true
}

// Clear empties the data stack.
func (c *Context) Clear() { c.stack = c.stack[:0] }

// Size returns the current stack depth.
func (c *Context) Size() int { return len(c.stack) }

// ---- typed pops ----

// PopBoolean pops and type-checks a Boolean.
func (c *Context) PopBoolean() (*value.Boolean, bool) {
	v, ok := c.PopExpecting(value.KindBoolean)
	if !ok {
		return nil, false
	}
	return v.(*value.Boolean), true
}

// PopNumber pops and type-checks a Number.
func (c *Context) PopNumber() (*value.Number, bool) {
	v, ok := c.PopExpecting(value.KindNumber)
	if !ok {
		return nil, false
	}
	return v.(*value.Number), true
}

// PopString pops and type-checks a String.
func (c *Context) PopString() (*value.String, bool) {
	v, ok := c.PopExpecting(value.KindString)
	if !ok {
		return nil, false
	}
	return v.(*value.String), true
}

// PopArray pops and type-checks an Array.
func (c *Context) PopArray() (*value.Array, bool) {
	v, ok := c.PopExpecting(value.KindArray)
	if !ok {
		return nil, false
	}
	return v.(*value.Array), true
}

// PopObject pops and type-checks an Object.
func (c *Context) PopObject() (*value.Object, bool) {
	v, ok := c.PopExpecting(value.KindObject)
	if !ok {
		return nil, false
	}
	return v.(*value.Object), true
}

// PopSymbol pops and type-checks a Symbol.
func (c *Context) PopSymbol() (*value.Symbol, bool) {
	v, ok := c.PopExpecting(value.KindSymbol)
	if !ok {
		return nil, false
	}
	return v.(*value.Symbol), true
}

// PopQuote pops and type-checks a Quote.
func (c *Context) PopQuote() (value.Quote, bool) {
	v, ok := c.Pop()
	if !ok {
		return nil, false
	}
	q, ok := v.(value.Quote)
	if !ok {
		c.SetError(value.ErrType, "Expected quote, got "+v.Kind().String()+" instead")
		return nil, false
	}
	return q, true
}

// PopWord pops and type-checks a Word.
func (c *Context) PopWord() (*value.Word, bool) {
	v, ok := c.PopExpecting(value.KindWord)
	if !ok {
		return nil, false
	}
	return v.(*value.Word), true
}

// ---- error management ----

// SetError installs an error using the context's current position.
func (c *Context) SetError(code value.ErrorCode, message string) {
	c.err = value.NewErrorAt(code, message, c.pos)
}

// SetErrorAt installs an error at an explicit position.
func (c *Context) SetErrorAt(code value.ErrorCode, message string, pos position.Position) {
	c.err = value.NewErrorAt(code, message, pos)
}

// SetErrorValue installs an already-constructed error value directly
// (used by the `throw` word and by module import propagation).
func (c *Context) SetErrorValue(err *value.Error) { c.err = err }

// ClearError removes the current error, if any.
func (c *Context) ClearError() { c.err = nil }

// HasError reports whether an error is currently set.
func (c *Context) HasError() bool { return c.err != nil }

// Error returns the current error, or nil.
func (c *Context) Error() *value.Error { return c.err }

// ---- compile ----

// Compile runs the runtime's configured parser over source and returns a
// compiled quote carrying this context's filename for diagnostics, or sets
// a syntax error and returns ok=false.
func (c *Context) Compile(source string) (value.Quote, bool) {
	if c.rt.Compiler == nil {
		c.SetError(value.ErrSyntax, "no compiler configured")
		return nil, false
	}
	quote, err := c.rt.Compiler(c.filename, source)
	if err != nil {
		c.err = err
		return nil, false
	}
	return quote, true
}
