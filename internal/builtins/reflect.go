package builtins

import (
	"github.com/plorth-go/plorth/internal/context"
	"github.com/plorth-go/plorth/internal/runtime"
	"github.com/plorth-go/plorth/internal/value"
)

// Version is the catalogue's reported runtime version, surfaced by the
// `version` word.
const Version = "0.1.0"

func installReflect(rt *runtime.Runtime) {
	global(rt, "compile", func(ctx *context.Context) {
		src, ok := ctx.PopString()
		if !ok {
			return
		}
		quote, ok := ctx.Compile(src.String())
		if !ok {
			return
		}
		ctx.Push(quote)
	})

	global(rt, "globals", func(ctx *context.Context) {
		words := ctx.Runtime().Global().Words()
		elems := make([]value.Value, len(words))
		for i, w := range words {
			elems[i] = w
		}
		ctx.Push(ctx.Runtime().Array(elems))
	})

	global(rt, "locals", func(ctx *context.Context) {
		words := ctx.Local().Words()
		elems := make([]value.Value, len(words))
		for i, w := range words {
			elems[i] = w
		}
		ctx.Push(ctx.Runtime().Array(elems))
	})

	global(rt, "const", func(ctx *context.Context) {
		sym, ok := ctx.PopSymbol()
		if !ok {
			return
		}
		v, ok := ctx.Pop()
		if !ok {
			return
		}
		ctx.Local().Insert(value.NewWord(sym, constQuote(v)))
	})

	global(rt, "import", func(ctx *context.Context) {
		path, ok := ctx.PopString()
		if !ok {
			return
		}
		importWord(ctx, path.String())
	})

	global(rt, "args", func(ctx *context.Context) {
		args := ctx.Runtime().Args()
		elems := make([]value.Value, len(args))
		for i, a := range args {
			elems[i] = ctx.Runtime().String(a)
		}
		ctx.Push(ctx.Runtime().Array(elems))
	})

	global(rt, "version", func(ctx *context.Context) {
		ctx.Push(ctx.Runtime().String(Version))
	})
}
