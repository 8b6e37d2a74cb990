package builtins

import (
	"github.com/plorth-go/plorth/internal/context"
	"github.com/plorth-go/plorth/internal/eval"
	"github.com/plorth-go/plorth/internal/module"
	"github.com/plorth-go/plorth/internal/runtime"
	"github.com/plorth-go/plorth/internal/value"
)

// constQuote wraps v as a native quote that simply pushes it, the body
// installed by the `const` reflection word.
func constQuote(v value.Value) value.Quote {
	return eval.NewNativeQuote("const", func(ctx *context.Context) {
		ctx.Push(v)
	})
}

func importWord(ctx *context.Context, path string) {
	module.Import(ctx, path)
}

func installQuote(rt *runtime.Runtime) {
	global(rt, "call", func(ctx *context.Context) {
		q, ok := ctx.PopQuote()
		if !ok {
			return
		}
		eval.Call(ctx, q)
	})

	global(rt, "compose", func(ctx *context.Context) {
		right, ok := ctx.PopQuote()
		if !ok {
			return
		}
		left, ok := ctx.PopQuote()
		if !ok {
			return
		}
		ctx.Push(eval.NewNativeQuote("compose", func(ctx *context.Context) {
			if !eval.Call(ctx, left) {
				return
			}
			eval.Call(ctx, right)
		}))
	})

	global(rt, "curry", func(ctx *context.Context) {
		q, ok := ctx.PopQuote()
		if !ok {
			return
		}
		captured, ok := ctx.Pop()
		if !ok {
			return
		}
		ctx.Push(eval.NewNativeQuote("curry", func(ctx *context.Context) {
			ctx.Push(captured)
			eval.Call(ctx, q)
		}))
	})

	global(rt, "negate", func(ctx *context.Context) {
		q, ok := ctx.PopQuote()
		if !ok {
			return
		}
		if !eval.Call(ctx, q) {
			return
		}
		b, ok := ctx.PopBoolean()
		if !ok {
			return
		}
		ctx.Push(ctx.Runtime().Boolean(!b.Value()))
	})

	global(rt, "dip", func(ctx *context.Context) {
		q, ok := ctx.PopQuote()
		if !ok {
			return
		}
		hidden, ok := ctx.Pop()
		if !ok {
			return
		}
		if !eval.Call(ctx, q) {
			return
		}
		ctx.Push(hidden)
	})

	global(rt, "2dip", func(ctx *context.Context) {
		q, ok := ctx.PopQuote()
		if !ok {
			return
		}
		b, ok := ctx.Pop()
		if !ok {
			return
		}
		a, ok := ctx.Pop()
		if !ok {
			ctx.Push(b)
			return
		}
		if !eval.Call(ctx, q) {
			return
		}
		ctx.Push(a)
		ctx.Push(b)
	})
}
