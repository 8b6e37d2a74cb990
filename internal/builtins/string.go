package builtins

import (
	"github.com/plorth-go/plorth/internal/context"
	"github.com/plorth-go/plorth/internal/runtime"
	"github.com/plorth-go/plorth/internal/value"
)

func installString(rt *runtime.Runtime) {
	global(rt, "length", func(ctx *context.Context) {
		v, ok := ctx.Peek()
		if !ok {
			ctx.SetError(value.ErrRange, "Stack underflow")
			return
		}
		switch val := v.(type) {
		case *value.String:
			ctx.Push(ctx.Runtime().Number(int64(val.Len())))
		case *value.Array:
			ctx.Push(ctx.Runtime().Number(int64(val.Len())))
		default:
			ctx.SetError(value.ErrType, "Expected string or array, got "+val.Kind().String()+" instead")
		}
	})

	proto(rt, value.KindString, "+", func(ctx *context.Context) {
		b, ok := ctx.PopString()
		if !ok {
			return
		}
		a, ok := ctx.PopString()
		if !ok {
			return
		}
		ctx.Push(value.StringConcat(a, b))
	})

	proto(rt, value.KindString, "reverse", func(ctx *context.Context) {
		s, ok := ctx.PopString()
		if !ok {
			return
		}
		ctx.Push(value.StringReverse(s))
	})

	proto(rt, value.KindString, "empty?", func(ctx *context.Context) {
		s, ok := ctx.PopString()
		if !ok {
			return
		}
		ctx.Push(ctx.Runtime().Boolean(s.Len() == 0))
	})
}
