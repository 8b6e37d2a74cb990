package builtins

import (
	"github.com/plorth-go/plorth/internal/context"
	"github.com/plorth-go/plorth/internal/runtime"
	"github.com/plorth-go/plorth/internal/value"
)

// typeDescriptor builds the { __proto__: object-prototype, prototype:
// <kind-prototype> } shape that the named-type identifiers (array,
// object, number, ...) push, so that `new` has something to read a
// prototype off of. Grounded on the reference implementation's
// w_new/runtime type registration (original_source/libplorth/src/globals.cpp,
// original_source/libplorth/src/runtime.cpp).
func typeDescriptor(rt *runtime.Runtime, kind value.Kind) *value.Object {
	d := value.EmptyObject()
	d.Set("__proto__", rt.PrototypeFor(value.KindObject))
	d.Set("prototype", rt.PrototypeFor(kind))
	return d
}

func installNewWord(rt *runtime.Runtime) {
	namedTypes := []struct {
		name string
		kind value.Kind
	}{
		{"array", value.KindArray},
		{"boolean", value.KindBoolean},
		{"error", value.KindError},
		{"number", value.KindNumber},
		{"object", value.KindObject},
		{"quote", value.KindQuote},
		{"string", value.KindString},
		{"symbol", value.KindSymbol},
		{"word", value.KindWord},
	}
	for _, t := range namedTypes {
		desc := typeDescriptor(rt, t.kind)
		global(rt, t.name, func(ctx *context.Context) {
			ctx.Push(desc)
		})
	}

	global(rt, "new", func(ctx *context.Context) {
		desc, ok := ctx.PopObject()
		if !ok {
			return
		}
		protoVal, has := desc.Get("prototype")
		if !has {
			ctx.SetError(value.ErrType, "Expected a type descriptor with a 'prototype' property")
			return
		}
		proto, ok := protoVal.(*value.Object)
		if !ok {
			ctx.SetError(value.ErrType, "Expected 'prototype' to be an object")
			return
		}
		instance := value.EmptyObject()
		instance.Set("__proto__", proto)
		ctx.Push(instance)
	})
}
