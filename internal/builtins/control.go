package builtins

import (
	"github.com/plorth-go/plorth/internal/context"
	"github.com/plorth-go/plorth/internal/eval"
	"github.com/plorth-go/plorth/internal/runtime"
)

func installControl(rt *runtime.Runtime) {
	global(rt, "if", func(ctx *context.Context) {
		then, ok := ctx.PopQuote()
		if !ok {
			return
		}
		cond, ok := ctx.PopBoolean()
		if !ok {
			return
		}
		if cond.Value() {
			eval.Call(ctx, then)
		}
	})

	global(rt, "if-else", func(ctx *context.Context) {
		elseQ, ok := ctx.PopQuote()
		if !ok {
			return
		}
		thenQ, ok := ctx.PopQuote()
		if !ok {
			return
		}
		cond, ok := ctx.PopBoolean()
		if !ok {
			return
		}
		if cond.Value() {
			eval.Call(ctx, thenQ)
		} else {
			eval.Call(ctx, elseQ)
		}
	})

	global(rt, "while", func(ctx *context.Context) {
		body, ok := ctx.PopQuote()
		if !ok {
			return
		}
		cond, ok := ctx.PopQuote()
		if !ok {
			return
		}
		for {
			if !eval.Call(ctx, cond) {
				return
			}
			test, ok := ctx.PopBoolean()
			if !ok {
				return
			}
			if !test.Value() {
				return
			}
			if !eval.Call(ctx, body) {
				return
			}
		}
	})

	global(rt, "try", func(ctx *context.Context) {
		handler, ok := ctx.PopQuote()
		if !ok {
			return
		}
		body, ok := ctx.PopQuote()
		if !ok {
			return
		}
		if eval.Call(ctx, body) {
			return
		}
		err := ctx.Error()
		ctx.ClearError()
		ctx.Push(err)
		eval.Call(ctx, handler)
	})

	global(rt, "try-else", func(ctx *context.Context) {
		elseQ, ok := ctx.PopQuote()
		if !ok {
			return
		}
		handler, ok := ctx.PopQuote()
		if !ok {
			return
		}
		body, ok := ctx.PopQuote()
		if !ok {
			return
		}
		if eval.Call(ctx, body) {
			eval.Call(ctx, elseQ)
			return
		}
		err := ctx.Error()
		ctx.ClearError()
		ctx.Push(err)
		eval.Call(ctx, handler)
	})
}
