package builtins

import (
	"github.com/plorth-go/plorth/internal/context"
	"github.com/plorth-go/plorth/internal/runtime"
	"github.com/plorth-go/plorth/internal/value"
)

func installSymbolWord(rt *runtime.Runtime) {
	proto(rt, value.KindSymbol, ">string", func(ctx *context.Context) {
		sym, ok := ctx.PopSymbol()
		if !ok {
			return
		}
		ctx.Push(ctx.Runtime().String(sym.Identifier))
	})

	proto(rt, value.KindWord, "symbol", func(ctx *context.Context) {
		w, ok := ctx.PopWord()
		if !ok {
			return
		}
		ctx.Push(w.Sym)
	})

	proto(rt, value.KindWord, "quote", func(ctx *context.Context) {
		w, ok := ctx.PopWord()
		if !ok {
			return
		}
		ctx.Push(w.Quote)
	})
}
