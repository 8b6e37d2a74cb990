package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plorth-go/plorth/internal/context"
	"github.com/plorth-go/plorth/internal/eval"
	"github.com/plorth-go/plorth/internal/runtime"
	"github.com/plorth-go/plorth/internal/value"
)

func TestExecSymbolResolutionOrder(t *testing.T) {
	rt := runtime.New(nil)
	ctx := context.New(rt, "")

	globalQuote := eval.NewNativeQuote("global-greet", func(ctx *context.Context) {
		ctx.Push(ctx.Runtime().String("global"))
	})
	rt.Global().Insert(value.NewWord(value.NewSymbol("greet"), globalQuote))

	ok := eval.Exec(ctx, value.NewSymbol("greet"))
	require.True(t, ok)
	top, _ := ctx.Pop()
	assert.Equal(t, "global", top.String())

	localQuote := eval.NewNativeQuote("local-greet", func(ctx *context.Context) {
		ctx.Push(ctx.Runtime().String("local"))
	})
	ctx.Local().Insert(value.NewWord(value.NewSymbol("greet"), localQuote))

	ok = eval.Exec(ctx, value.NewSymbol("greet"))
	require.True(t, ok)
	top, _ = ctx.Pop()
	assert.Equal(t, "local", top.String())
}

func TestExecSymbolPrototypeDispatchWinsOverDictionaries(t *testing.T) {
	rt := runtime.New(nil)
	ctx := context.New(rt, "")

	rt.PrototypeFor(value.KindString).Set("shout", eval.NewNativeQuote("shout", func(ctx *context.Context) {
		s, _ := ctx.PopString()
		ctx.Push(ctx.Runtime().String(s.String() + "!"))
	}))
	rt.Global().Insert(value.NewWord(value.NewSymbol("shout"), eval.NewNativeQuote("global-shout", func(ctx *context.Context) {
		ctx.Push(ctx.Runtime().String("wrong"))
	})))

	ctx.Push(ctx.Runtime().String("hi"))
	ok := eval.Exec(ctx, value.NewSymbol("shout"))
	require.True(t, ok)
	top, _ := ctx.Pop()
	assert.Equal(t, "hi!", top.String())
}

func TestExecSymbolUnknownWordIsReferenceError(t *testing.T) {
	rt := runtime.New(nil)
	ctx := context.New(rt, "")

	ok := eval.Exec(ctx, value.NewSymbol("nope"))
	require.False(t, ok)
	require.True(t, ctx.HasError())
	assert.Equal(t, value.ErrReference, ctx.Error().Code)
}

func TestExecWordInstallsIntoLocalDictionary(t *testing.T) {
	rt := runtime.New(nil)
	ctx := context.New(rt, "")

	quote := eval.NewCompiledQuote(nil, "")
	word := value.NewWord(value.NewSymbol("noop"), quote)
	ok := eval.Exec(ctx, word)
	require.True(t, ok)

	found, ok := ctx.Local().Find("noop")
	require.True(t, ok)
	assert.Same(t, quote, found.Quote)
}

func TestEvalWordLiteralIsSyntaxError(t *testing.T) {
	rt := runtime.New(nil)
	ctx := context.New(rt, "")

	word := value.NewWord(value.NewSymbol("noop"), eval.NewCompiledQuote(nil, ""))
	_, ok := eval.Eval(ctx, word)
	require.False(t, ok)
	assert.Equal(t, value.ErrSyntax, ctx.Error().Code)
}

func TestCompiledQuoteStopsOnFirstFailure(t *testing.T) {
	rt := runtime.New(nil)
	ctx := context.New(rt, "")

	quote := eval.NewCompiledQuote([]value.Value{
		value.NewSymbol("unrecognized-word"),
		value.NewInt(1),
	}, "")

	ok := eval.Call(ctx, quote)
	require.False(t, ok)
	assert.Equal(t, value.ErrReference, ctx.Error().Code)
	assert.Equal(t, 0, ctx.Size())
}
