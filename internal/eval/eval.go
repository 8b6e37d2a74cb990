package eval

import (
	"github.com/plorth-go/plorth/internal/context"
	"github.com/plorth-go/plorth/internal/value"
)

// Eval produces the value that v denotes when used as a literal. It is
// total over every value variant.
func Eval(ctx *context.Context, v value.Value) (value.Value, bool) {
	switch val := v.(type) {
	case *value.Null, *value.Boolean, *value.Number, *value.String, *value.Error:
		return v, true
	case value.Quote:
		return v, true
	case *value.Array:
		elems := val.Values()
		out := make([]value.Value, len(elems))
		for i, e := range elems {
			ev, ok := Eval(ctx, e)
			if !ok {
				return nil, false
			}
			out[i] = ev
		}
		return value.NewArray(out), true
	case *value.Object:
		order := val.Keys()
		props := make(map[string]value.Value, len(order))
		for _, k := range order {
			ev, ok := Eval(ctx, mustGet(val, k))
			if !ok {
				return nil, false
			}
			props[k] = ev
		}
		return value.NewObject(order, props), true
	case *value.Symbol:
		return evalSymbol(ctx, val)
	case *value.Word:
		ctx.SetError(value.ErrSyntax, "Unexpected word declaration; Missing value")
		return nil, false
	default:
		ctx.SetError(value.ErrSyntax, "Unexpected value; Missing value")
		return nil, false
	}
}

func mustGet(o *value.Object, key string) value.Value {
	v, _ := o.Get(key)
	return v
}

func evalSymbol(ctx *context.Context, sym *value.Symbol) (value.Value, bool) {
	switch sym.Identifier {
	case "null":
		return value.TheNull, true
	case "true":
		return value.True, true
	case "false":
		return value.False, true
	case "drop":
		return ctx.Pop()
	}
	if n, ok := value.ParseNumber(sym.Identifier); ok {
		return n, true
	}
	ctx.SetError(value.ErrSyntax, "Unexpected '"+sym.Identifier+"'; Missing value")
	return nil, false
}

// Exec drives the interpreter by the effect of v: pushing literals,
// resolving and calling/pushing symbols, and installing word
// declarations. It is total over every value variant.
func Exec(ctx *context.Context, v value.Value) bool {
	switch val := v.(type) {
	case *value.Null:
		ctx.Push(value.TheNull)
		return true
	case *value.Symbol:
		return execSymbol(ctx, val)
	case *value.Word:
		ctx.Local().Insert(val)
		return true
	default:
		ev, ok := Eval(ctx, v)
		if !ok {
			return false
		}
		ctx.Push(ev)
		return true
	}
}

// execSymbol implements the five-step resolution order from the core
// spec: prototype dispatch on the top-of-stack value, then the local
// dictionary, then the global dictionary, then a numeric-literal fallback,
// and finally a reference error.
func execSymbol(ctx *context.Context, sym *value.Symbol) bool {
	if sym.HasPos {
		ctx.SetPosition(sym.Pos)
	}

	if top, ok := ctx.Peek(); ok {
		proto := value.PrototypeOf(top, ctx.Runtime())
		if proto != nil {
			if found, ok := value.LookupInChain(proto, sym.Identifier); ok {
				if q, isQuote := found.(value.Quote); isQuote {
					return Call(ctx, q)
				}
				ctx.Push(found)
				return true
			}
		}
	}

	if word, ok := ctx.Local().Find(sym.Identifier); ok {
		return Call(ctx, word.Quote)
	}

	if word, ok := ctx.Runtime().Global().Find(sym.Identifier); ok {
		return Call(ctx, word.Quote)
	}

	if n, ok := value.ParseNumber(sym.Identifier); ok {
		ctx.Push(n)
		return true
	}

	ctx.SetError(value.ErrReference, "Unrecognized word: '"+sym.Identifier+"'")
	return false
}
