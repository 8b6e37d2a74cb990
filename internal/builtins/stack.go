package builtins

import (
	"github.com/plorth-go/plorth/internal/context"
	"github.com/plorth-go/plorth/internal/runtime"
	"github.com/plorth-go/plorth/internal/value"
)

func installStack(rt *runtime.Runtime) {
	global(rt, "nop", func(ctx *context.Context) {})

	global(rt, "clear", func(ctx *context.Context) { ctx.Clear() })

	global(rt, "depth", func(ctx *context.Context) {
		ctx.Push(ctx.Runtime().Number(int64(ctx.Size())))
	})

	global(rt, "drop", func(ctx *context.Context) {
		ctx.Pop()
	})

	global(rt, "2drop", func(ctx *context.Context) {
		if _, ok := ctx.Pop(); !ok {
			return
		}
		ctx.Pop()
	})

	global(rt, "dup", func(ctx *context.Context) {
		v, ok := ctx.Peek()
		if !ok {
			ctx.SetError(value.ErrRange, "Stack underflow")
			return
		}
		ctx.Push(v)
	})

	global(rt, "2dup", func(ctx *context.Context) {
		b, ok := ctx.Pop()
		if !ok {
			return
		}
		a, ok := ctx.Pop()
		if !ok {
			ctx.Push(b)
			return
		}
		ctx.Push(a)
		ctx.Push(b)
		ctx.Push(a)
		ctx.Push(b)
	})

	global(rt, "nip", func(ctx *context.Context) {
		b, ok := ctx.Pop()
		if !ok {
			return
		}
		if _, ok := ctx.Pop(); !ok {
			return
		}
		ctx.Push(b)
	})

	global(rt, "over", func(ctx *context.Context) {
		b, ok := ctx.Pop()
		if !ok {
			return
		}
		a, ok := ctx.Pop()
		if !ok {
			ctx.Push(b)
			return
		}
		ctx.Push(a)
		ctx.Push(b)
		ctx.Push(a)
	})

	global(rt, "rot", func(ctx *context.Context) {
		c, ok := ctx.Pop()
		if !ok {
			return
		}
		b, ok := ctx.Pop()
		if !ok {
			ctx.Push(c)
			return
		}
		a, ok := ctx.Pop()
		if !ok {
			ctx.Push(b)
			ctx.Push(c)
			return
		}
		ctx.Push(b)
		ctx.Push(c)
		ctx.Push(a)
	})

	global(rt, "swap", func(ctx *context.Context) {
		b, ok := ctx.Pop()
		if !ok {
			return
		}
		a, ok := ctx.Pop()
		if !ok {
			ctx.Push(b)
			return
		}
		ctx.Push(b)
		ctx.Push(a)
	})

	global(rt, "tuck", func(ctx *context.Context) {
		b, ok := ctx.Pop()
		if !ok {
			return
		}
		a, ok := ctx.Pop()
		if !ok {
			ctx.Push(b)
			return
		}
		ctx.Push(b)
		ctx.Push(a)
		ctx.Push(b)
	})
}
