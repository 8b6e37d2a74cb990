package builtins

import (
	"github.com/plorth-go/plorth/internal/context"
	"github.com/plorth-go/plorth/internal/eval"
	"github.com/plorth-go/plorth/internal/runtime"
	"github.com/plorth-go/plorth/internal/value"
)

func installArray(rt *runtime.Runtime) {
	proto(rt, value.KindArray, "+", func(ctx *context.Context) {
		b, ok := ctx.PopArray()
		if !ok {
			return
		}
		a, ok := ctx.PopArray()
		if !ok {
			return
		}
		ctx.Push(value.ArrayConcat(a, b))
	})

	// push and for-each take an argument pushed after the array, so the
	// array is never on top of the stack when the word runs and
	// prototype dispatch (which only inspects the literal top) can't
	// find them; they are global words instead. @ is shared across
	// array/string/object and lives in index.go.
	global(rt, "push", func(ctx *context.Context) {
		elem, ok := ctx.Pop()
		if !ok {
			return
		}
		a, ok := ctx.PopArray()
		if !ok {
			return
		}
		ctx.Push(value.ArrayPush(a, elem))
	})

	proto(rt, value.KindArray, "reverse", func(ctx *context.Context) {
		a, ok := ctx.PopArray()
		if !ok {
			return
		}
		ctx.Push(value.ArrayReverse(a))
	})

	proto(rt, value.KindArray, "empty?", func(ctx *context.Context) {
		a, ok := ctx.PopArray()
		if !ok {
			return
		}
		ctx.Push(ctx.Runtime().Boolean(a.Len() == 0))
	})

	global(rt, "for-each", func(ctx *context.Context) {
		q, ok := ctx.PopQuote()
		if !ok {
			return
		}
		a, ok := ctx.PopArray()
		if !ok {
			return
		}
		for _, elem := range a.Values() {
			ctx.Push(elem)
			if !eval.Call(ctx, q) {
				return
			}
		}
	})
}
