package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plorth-go/plorth/internal/value"
)

func TestNumberPromotion(t *testing.T) {
	sum := value.Add(value.NewInt(1), value.NewInt(2))
	require.False(t, sum.IsReal())
	assert.Equal(t, int64(3), sum.Int64())

	mixed := value.Add(value.NewInt(1), value.NewReal(0.5))
	assert.True(t, mixed.IsReal())
	assert.Equal(t, 1.5, mixed.Float64())
}

func TestNumberOverflowPromotesToReal(t *testing.T) {
	max := value.NewInt(9223372036854775807)
	sum := value.Add(max, value.NewInt(1))
	assert.True(t, sum.IsReal())
}

func TestParseNumber(t *testing.T) {
	cases := map[string]bool{
		"42":     true,
		"-3":     true,
		"3.14":   true,
		"nan":    true,
		"inf":    true,
		"-inf":   true,
		"hello":  false,
		"":       false,
		"1e10":   true,
	}
	for text, ok := range cases {
		_, got := value.ParseNumber(text)
		assert.Equal(t, ok, got, "ParseNumber(%q)", text)
	}
}

func TestStringRopeOperations(t *testing.T) {
	a := value.NewString("foo")
	b := value.NewString("bar")
	concat := value.StringConcat(a, b)
	assert.Equal(t, "foobar", concat.String())

	sub, ok := value.StringSlice(concat, 1, 4)
	require.True(t, ok)
	assert.Equal(t, "ooba", sub.String())

	rev := value.StringReverse(concat)
	assert.Equal(t, "raboof", rev.String())

	rep := value.StringRepeat(value.NewString("ab"), 3)
	assert.Equal(t, "ababab", rep.String())

	_, ok = value.StringSlice(concat, 4, 10)
	assert.False(t, ok)
}

func TestStringSource(t *testing.T) {
	s := value.NewString("a\nb\"c")
	assert.Equal(t, `"a\nb\"c"`, s.Source())
}

func TestArrayRopeOperations(t *testing.T) {
	a := value.NewArray([]value.Value{value.NewInt(1), value.NewInt(2)})
	b := value.NewArray([]value.Value{value.NewInt(3)})
	concat := value.ArrayConcat(a, b)
	assert.Equal(t, 3, concat.Len())

	pushed := value.ArrayPush(concat, value.NewInt(4))
	assert.Equal(t, 4, pushed.Len())
	last, ok := pushed.At(3)
	require.True(t, ok)
	assert.True(t, last.Equals(value.NewInt(4)))

	rev := value.ArrayReverse(pushed)
	first, ok := rev.At(0)
	require.True(t, ok)
	assert.True(t, first.Equals(value.NewInt(4)))
}

func TestObjectInsertionOrderAndPrototype(t *testing.T) {
	base := value.EmptyObject()
	base.Set("greeting", value.NewString("hi"))

	child := value.EmptyObject()
	child.Set("__proto__", base)
	child.Set("name", value.NewString("plorth"))

	assert.Equal(t, []string{"__proto__", "name"}, child.Keys())

	v, ok := value.LookupInChain(child, "greeting")
	require.True(t, ok)
	assert.Equal(t, "hi", v.String())

	_, ok = value.LookupInChain(child, "missing")
	assert.False(t, ok)
}

func TestObjectNonObjectProtoTerminatesWalk(t *testing.T) {
	o := value.EmptyObject()
	o.Set("__proto__", value.NewString("not an object"))

	proto, ok := o.OwnProto()
	assert.False(t, ok)
	assert.Nil(t, proto)

	visited := 0
	complete := o.WalkPrototypeChain(func(*value.Object) bool {
		visited++
		return true
	})
	assert.True(t, complete)
	assert.Equal(t, 0, visited)
}

func TestEqualityIsReflexiveAcrossVariants(t *testing.T) {
	values := []value.Value{
		value.TheNull,
		value.True,
		value.NewInt(5),
		value.NewString("x"),
		value.NewArray([]value.Value{value.NewInt(1)}),
		value.EmptyObject(),
		value.NewSymbol("foo"),
		value.NewError(value.ErrType, "bad"),
	}
	for _, v := range values {
		assert.True(t, v.Equals(v), "%v should equal itself", v)
	}
}
