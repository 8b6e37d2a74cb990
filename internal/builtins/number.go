package builtins

import (
	"math"

	"github.com/plorth-go/plorth/internal/context"
	"github.com/plorth-go/plorth/internal/runtime"
	"github.com/plorth-go/plorth/internal/value"
)

func installNumber(rt *runtime.Runtime) {
	global(rt, "+", func(ctx *context.Context) {
		b, ok := ctx.PopNumber()
		if !ok {
			return
		}
		a, ok := ctx.PopNumber()
		if !ok {
			return
		}
		ctx.Push(value.Add(a, b))
	})

	global(rt, "-", func(ctx *context.Context) {
		b, ok := ctx.PopNumber()
		if !ok {
			return
		}
		a, ok := ctx.PopNumber()
		if !ok {
			return
		}
		ctx.Push(value.Sub(a, b))
	})

	global(rt, "*", func(ctx *context.Context) {
		b, ok := ctx.PopNumber()
		if !ok {
			return
		}
		a, ok := ctx.PopNumber()
		if !ok {
			return
		}
		ctx.Push(value.Mul(a, b))
	})

	global(rt, "/", func(ctx *context.Context) {
		b, ok := ctx.PopNumber()
		if !ok {
			return
		}
		a, ok := ctx.PopNumber()
		if !ok {
			return
		}
		if b.Float64() == 0 {
			ctx.SetError(value.ErrValue, "Division by zero")
			return
		}
		ctx.Push(value.Div(a, b))
	})

	compare := func(test func(int) bool) nativeFunc {
		return func(ctx *context.Context) {
			b, ok := ctx.PopNumber()
			if !ok {
				return
			}
			a, ok := ctx.PopNumber()
			if !ok {
				return
			}
			ctx.Push(ctx.Runtime().Boolean(test(value.Compare(a, b))))
		}
	}
	global(rt, "<", compare(func(c int) bool { return c < 0 }))
	global(rt, ">", compare(func(c int) bool { return c > 0 }))
	global(rt, "<=", compare(func(c int) bool { return c <= 0 }))
	global(rt, ">=", compare(func(c int) bool { return c >= 0 }))

	global(rt, "abs", func(ctx *context.Context) {
		n, ok := ctx.PopNumber()
		if !ok {
			return
		}
		if n.IsReal() {
			ctx.Push(value.NewReal(math.Abs(n.Float64())))
			return
		}
		i := n.Int64()
		if i < 0 {
			i = -i
		}
		ctx.Push(ctx.Runtime().Number(i))
	})

	global(rt, ">number", func(ctx *context.Context) {
		s, ok := ctx.PopString()
		if !ok {
			return
		}
		n, ok := value.ParseNumber(s.String())
		if !ok {
			ctx.SetError(value.ErrValue, "Cannot convert '"+s.String()+"' into a number")
			return
		}
		ctx.Push(n)
	})

	proto(rt, value.KindNumber, "nan?", func(ctx *context.Context) {
		n, ok := ctx.Pop()
		if !ok {
			return
		}
		num := n.(*value.Number)
		ctx.Push(ctx.Runtime().Boolean(num.IsReal() && math.IsNaN(num.Float64())))
	})
}
