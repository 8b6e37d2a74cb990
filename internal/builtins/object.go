package builtins

import (
	"github.com/plorth-go/plorth/internal/context"
	"github.com/plorth-go/plorth/internal/runtime"
	"github.com/plorth-go/plorth/internal/value"
)

// installObject registers object operations whose extra argument (key or
// value) is pushed after the receiver, so the object is never on top of
// the stack when the word runs; prototype dispatch can't reach them and
// they are global words instead. @ is shared with array/string and lives
// in index.go; keys is the one true unary accessor here and stays
// prototype-dispatched.
func installObject(rt *runtime.Runtime) {
	global(rt, "!", func(ctx *context.Context) {
		v, ok := ctx.Pop()
		if !ok {
			return
		}
		key, ok := ctx.PopString()
		if !ok {
			return
		}
		o, ok := ctx.PopObject()
		if !ok {
			return
		}
		clone := o.Clone()
		clone.Set(key.String(), v)
		ctx.Push(clone)
	})

	global(rt, "delete", func(ctx *context.Context) {
		key, ok := ctx.PopString()
		if !ok {
			return
		}
		o, ok := ctx.PopObject()
		if !ok {
			return
		}
		clone := o.Clone()
		clone.Delete(key.String())
		ctx.Push(clone)
	})

	proto(rt, value.KindObject, "keys", func(ctx *context.Context) {
		o, ok := ctx.PopObject()
		if !ok {
			return
		}
		keys := o.Keys()
		elems := make([]value.Value, len(keys))
		for i, k := range keys {
			elems[i] = ctx.Runtime().String(k)
		}
		ctx.Push(ctx.Runtime().Array(elems))
	})

	global(rt, "has?", func(ctx *context.Context) {
		key, ok := ctx.PopString()
		if !ok {
			return
		}
		o, ok := ctx.PopObject()
		if !ok {
			return
		}
		_, has := o.Get(key.String())
		ctx.Push(ctx.Runtime().Boolean(has))
	})
}
