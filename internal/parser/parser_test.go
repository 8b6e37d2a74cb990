package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plorth-go/plorth/internal/eval"
	"github.com/plorth-go/plorth/internal/parser"
	"github.com/plorth-go/plorth/internal/value"
)

func parseOne(t *testing.T, source string) value.Value {
	t.Helper()
	p := parser.New("<test>", source)
	values, err := p.ParseProgram()
	require.Nil(t, err, "unexpected parse error: %v", err)
	require.Len(t, values, 1)
	return values[0]
}

func TestParseSymbolAndNumber(t *testing.T) {
	v := parseOne(t, "42")
	sym, ok := v.(*value.Symbol)
	require.True(t, ok)
	assert.Equal(t, "42", sym.Identifier)
}

func TestParseString(t *testing.T) {
	v := parseOne(t, `"hello\nworld"`)
	s, ok := v.(*value.String)
	require.True(t, ok)
	assert.Equal(t, "hello\nworld", s.String())
}

func TestParseUnterminatedString(t *testing.T) {
	p := parser.New("<test>", `"unterminated`)
	_, err := p.ParseProgram()
	require.NotNil(t, err)
	assert.Equal(t, value.ErrSyntax, err.Code)
}

func TestParseIllegalEscape(t *testing.T) {
	p := parser.New("<test>", `"bad \q escape"`)
	_, err := p.ParseProgram()
	require.NotNil(t, err)
	assert.Equal(t, value.ErrSyntax, err.Code)
}

func TestParseQuote(t *testing.T) {
	v := parseOne(t, "( dup * )")
	q, ok := v.(*eval.CompiledQuote)
	require.True(t, ok)
	assert.Len(t, q.Elements, 2)
}

func TestParseArray(t *testing.T) {
	v := parseOne(t, "[1, 2, 3]")
	arr, ok := v.(*value.Array)
	require.True(t, ok)
	assert.Equal(t, 3, arr.Len())
}

func TestParseEmptyArray(t *testing.T) {
	v := parseOne(t, "[]")
	arr, ok := v.(*value.Array)
	require.True(t, ok)
	assert.Equal(t, 0, arr.Len())
}

func TestParseObject(t *testing.T) {
	v := parseOne(t, `{"a": 1, "b": [true, null]}`)
	obj, ok := v.(*value.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, obj.Keys())
}

func TestParseObjectMissingColon(t *testing.T) {
	p := parser.New("<test>", `{"a" 1}`)
	_, err := p.ParseProgram()
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "':'")
}

func TestParseWordDef(t *testing.T) {
	v := parseOne(t, ": sq ( dup * ) ;")
	w, ok := v.(*value.Word)
	require.True(t, ok)
	assert.Equal(t, "sq", w.Sym.Identifier)
}

func TestParseProgramMultipleValues(t *testing.T) {
	p := parser.New("<test>", "1 2 +")
	values, err := p.ParseProgram()
	require.Nil(t, err)
	assert.Len(t, values, 3)
}

func TestParseUnexpectedClosingPunctuation(t *testing.T) {
	p := parser.New("<test>", ")")
	_, err := p.ParseProgram()
	require.NotNil(t, err)
	assert.Equal(t, value.ErrSyntax, err.Code)
}

func TestCompileWiresCompilerFunc(t *testing.T) {
	quote, err := parser.Compile("file.plorth", "1 2 +")
	require.Nil(t, err)
	cq, ok := quote.(*eval.CompiledQuote)
	require.True(t, ok)
	assert.Len(t, cq.Elements, 3)
	assert.Equal(t, "file.plorth", cq.Filename)
}

func TestParserErrorLocality(t *testing.T) {
	p := parser.New("<test>", "1 2\n  )")
	_, err := p.ParseProgram()
	require.NotNil(t, err)
	assert.Equal(t, 2, err.Pos.Line)
	assert.Equal(t, 3, err.Pos.Column)
}
