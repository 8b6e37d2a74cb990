package builtins

import (
	"github.com/plorth-go/plorth/internal/context"
	"github.com/plorth-go/plorth/internal/runtime"
	"github.com/plorth-go/plorth/internal/value"
)

func installTypeTest(rt *runtime.Runtime) {
	global(rt, "null", func(ctx *context.Context) { ctx.Push(value.TheNull) })
	global(rt, "true", func(ctx *context.Context) { ctx.Push(value.True) })
	global(rt, "false", func(ctx *context.Context) { ctx.Push(value.False) })

	kindPredicate := func(kind value.Kind) nativeFunc {
		return func(ctx *context.Context) {
			v, ok := ctx.Pop()
			if !ok {
				return
			}
			ctx.Push(ctx.Runtime().Boolean(v.Kind() == kind))
		}
	}
	global(rt, "null?", kindPredicate(value.KindNull))
	global(rt, "boolean?", kindPredicate(value.KindBoolean))
	global(rt, "number?", kindPredicate(value.KindNumber))
	global(rt, "string?", kindPredicate(value.KindString))
	global(rt, "array?", kindPredicate(value.KindArray))
	global(rt, "object?", kindPredicate(value.KindObject))
	global(rt, "quote?", kindPredicate(value.KindQuote))
	global(rt, "symbol?", kindPredicate(value.KindSymbol))
	global(rt, "word?", kindPredicate(value.KindWord))
	global(rt, "error?", kindPredicate(value.KindError))

	global(rt, "typeof", func(ctx *context.Context) {
		v, ok := ctx.Pop()
		if !ok {
			return
		}
		ctx.Push(ctx.Runtime().String(v.Kind().String()))
	})

	global(rt, "instance-of?", func(ctx *context.Context) {
		proto, ok := ctx.PopObject()
		if !ok {
			return
		}
		v, ok := ctx.Pop()
		if !ok {
			return
		}
		actual := value.PrototypeOf(v, ctx.Runtime())
		found := false
		if actual == proto {
			found = true
		} else if actual != nil {
			actual.WalkPrototypeChain(func(ancestor *value.Object) bool {
				if ancestor == proto {
					found = true
					return false
				}
				return true
			})
		}
		ctx.Push(ctx.Runtime().Boolean(found))
	})

	global(rt, "proto", func(ctx *context.Context) {
		v, ok := ctx.Pop()
		if !ok {
			return
		}
		ctx.Push(value.PrototypeOf(v, ctx.Runtime()))
	})

	global(rt, ">boolean", func(ctx *context.Context) {
		v, ok := ctx.Pop()
		if !ok {
			return
		}
		truthy := true
		switch val := v.(type) {
		case *value.Null:
			truthy = false
		case *value.Boolean:
			truthy = val.Value()
		}
		ctx.Push(ctx.Runtime().Boolean(truthy))
	})

	global(rt, ">string", func(ctx *context.Context) {
		v, ok := ctx.Pop()
		if !ok {
			return
		}
		ctx.Push(ctx.Runtime().String(v.String()))
	})

	global(rt, ">source", func(ctx *context.Context) {
		v, ok := ctx.Pop()
		if !ok {
			return
		}
		ctx.Push(ctx.Runtime().String(v.Source()))
	})
}
