package builtins

import (
	"github.com/plorth-go/plorth/internal/context"
	"github.com/plorth-go/plorth/internal/runtime"
	"github.com/plorth-go/plorth/internal/value"
)

// installIndex registers the shared `@` word: array/string indexing and
// object property lookup all write it the same way (`receiver key-or-
// index @`), which puts the key or index, not the receiver, on top of
// the stack. Prototype dispatch only ever looks at the literal top, so
// unlike the true unary accessors (reverse, length, keys, ...) this can't
// be three separate per-kind prototype entries; it is one global word
// that switches on the receiver's kind once popped.
func installIndex(rt *runtime.Runtime) {
	global(rt, "@", func(ctx *context.Context) {
		key, ok := ctx.Pop()
		if !ok {
			return
		}
		receiver, ok := ctx.Pop()
		if !ok {
			return
		}
		switch r := receiver.(type) {
		case *value.Array:
			idx, isNum := key.(*value.Number)
			if !isNum {
				ctx.SetError(value.ErrType, "Expected number, got "+key.Kind().String()+" instead")
				return
			}
			elem, found := r.At(int(idx.Int64()))
			if !found {
				ctx.SetError(value.ErrRange, "Array index out of range")
				return
			}
			ctx.Push(elem)
		case *value.String:
			idx, isNum := key.(*value.Number)
			if !isNum {
				ctx.SetError(value.ErrType, "Expected number, got "+key.Kind().String()+" instead")
				return
			}
			rn, found := r.RuneAt(int(idx.Int64()))
			if !found {
				ctx.SetError(value.ErrRange, "String index out of range")
				return
			}
			ctx.Push(value.NewString(string(rn)))
		case *value.Object:
			name, isStr := key.(*value.String)
			if !isStr {
				ctx.SetError(value.ErrType, "Expected string, got "+key.Kind().String()+" instead")
				return
			}
			v, found := r.Get(name.String())
			if !found {
				ctx.SetError(value.ErrRange, "No such property: "+name.String())
				return
			}
			ctx.Push(v)
		default:
			ctx.SetError(value.ErrType, "Expected array, string or object, got "+receiver.Kind().String()+" instead")
		}
	})
}
