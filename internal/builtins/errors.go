package builtins

import (
	"github.com/plorth-go/plorth/internal/context"
	"github.com/plorth-go/plorth/internal/runtime"
	"github.com/plorth-go/plorth/internal/value"
)

func installErrors(rt *runtime.Runtime) {
	raise := func(code value.ErrorCode) nativeFunc {
		return func(ctx *context.Context) {
			msg, ok := ctx.PopString()
			if !ok {
				return
			}
			ctx.SetErrorAt(code, msg.String(), ctx.Position())
		}
	}
	global(rt, "type-error", raise(value.ErrType))
	global(rt, "value-error", raise(value.ErrValue))
	global(rt, "range-error", raise(value.ErrRange))
	global(rt, "unknown-error", raise(value.ErrUnknown))

	global(rt, "throw", func(ctx *context.Context) {
		errVal, ok := ctx.PopExpecting(value.KindError)
		if !ok {
			return
		}
		ctx.SetErrorValue(errVal.(*value.Error))
	})

	proto(rt, value.KindError, "code", func(ctx *context.Context) {
		e, ok := ctx.Pop()
		if !ok {
			return
		}
		errVal := e.(*value.Error)
		ctx.Push(errVal)
		ctx.Push(ctx.Runtime().String(string(errVal.Code)))
	})

	proto(rt, value.KindError, "message", func(ctx *context.Context) {
		e, ok := ctx.Pop()
		if !ok {
			return
		}
		errVal := e.(*value.Error)
		ctx.Push(errVal)
		ctx.Push(ctx.Runtime().String(errVal.Message))
	})
}
