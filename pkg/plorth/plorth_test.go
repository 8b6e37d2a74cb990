package plorth_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plorth-go/plorth/internal/value"
	"github.com/plorth-go/plorth/pkg/plorth"
)

func evalOK(t *testing.T, engine *plorth.Engine, source string) []value.Value {
	t.Helper()
	res := engine.Eval("<test>", source)
	require.Nil(t, res.Err, "unexpected error: %v", res.Err)
	return res.Stack
}

func TestArithmeticAddition(t *testing.T) {
	engine := plorth.New()
	stack := evalOK(t, engine, "1 2 +")
	require.Len(t, stack, 1)
	n, ok := stack[0].(*value.Number)
	require.True(t, ok)
	assert.Equal(t, int64(3), n.Int64())
}

func TestStringConcatenation(t *testing.T) {
	engine := plorth.New()
	stack := evalOK(t, engine, `"foo" "bar" +`)
	require.Len(t, stack, 1)
	assert.Equal(t, "foobar", stack[0].String())
}

func TestArrayLengthIsNonDestructive(t *testing.T) {
	engine := plorth.New()
	stack := evalOK(t, engine, "[1, 2, 3] length")
	require.Len(t, stack, 2)

	arr, ok := stack[0].(*value.Array)
	require.True(t, ok)
	assert.Equal(t, 3, arr.Len())

	n, ok := stack[1].(*value.Number)
	require.True(t, ok)
	assert.Equal(t, int64(3), n.Int64())
}

func TestWordDefinitionAndCall(t *testing.T) {
	engine := plorth.New()
	stack := evalOK(t, engine, ": sq ( dup * ) ; 5 sq")
	require.Len(t, stack, 1)
	n, ok := stack[0].(*value.Number)
	require.True(t, ok)
	assert.Equal(t, int64(25), n.Int64())
}

func TestTryRecoversFromError(t *testing.T) {
	engine := plorth.New()
	stack := evalOK(t, engine, `( drop ) ( "caught" swap drop ) try`)
	require.Len(t, stack, 1)
	assert.Equal(t, "caught", stack[0].String())
}

func TestIfElseBranchesOnCondition(t *testing.T) {
	engine := plorth.New()

	stack := evalOK(t, engine, `true ( "yes" ) ( "no" ) if-else`)
	require.Len(t, stack, 1)
	assert.Equal(t, "yes", stack[0].String())

	engine = plorth.New()
	stack = evalOK(t, engine, `false ( "yes" ) ( "no" ) if-else`)
	require.Len(t, stack, 1)
	assert.Equal(t, "no", stack[0].String())
}

func TestObjectLiteralEqualityAgainstConstructedEquivalent(t *testing.T) {
	engine := plorth.New()
	stack := evalOK(t, engine, `{"a": 1, "b": [true, null]}`)
	require.Len(t, stack, 1)

	lit, ok := stack[0].(*value.Object)
	require.True(t, ok)

	built := value.NewObject([]string{"a", "b"}, map[string]value.Value{
		"a": value.NewInt(1),
		"b": value.NewArray([]value.Value{value.True, value.TheNull}),
	})

	assert.True(t, lit.Equals(built))
}

func TestIndexedAccessAcrossReceiverKinds(t *testing.T) {
	engine := plorth.New()

	stack := evalOK(t, engine, `[10, 20, 30] 1 @`)
	require.Len(t, stack, 1)
	n, ok := stack[0].(*value.Number)
	require.True(t, ok)
	assert.Equal(t, int64(20), n.Int64())

	engine = plorth.New()
	stack = evalOK(t, engine, `"hello" 1 @`)
	require.Len(t, stack, 1)
	assert.Equal(t, "e", stack[0].String())

	engine = plorth.New()
	stack = evalOK(t, engine, `{"a": 1} "a" @`)
	require.Len(t, stack, 1)
	n, ok = stack[0].(*value.Number)
	require.True(t, ok)
	assert.Equal(t, int64(1), n.Int64())
}

func TestObjectSetDeleteHasArePushedArgumentWords(t *testing.T) {
	engine := plorth.New()
	stack := evalOK(t, engine, `{} "a" 1 ! "a" has?`)
	require.Len(t, stack, 1)
	b, ok := stack[0].(*value.Boolean)
	require.True(t, ok)
	assert.True(t, b.Value())

	engine = plorth.New()
	stack = evalOK(t, engine, `{"a": 1} "a" delete "a" has?`)
	require.Len(t, stack, 1)
	b, ok = stack[0].(*value.Boolean)
	require.True(t, ok)
	assert.False(t, b.Value())
}

func TestArrayPushAndForEach(t *testing.T) {
	engine := plorth.New()
	stack := evalOK(t, engine, `[1, 2] 3 push`)
	require.Len(t, stack, 1)
	arr, ok := stack[0].(*value.Array)
	require.True(t, ok)
	assert.Equal(t, 3, arr.Len())

	engine = plorth.New()
	stack = evalOK(t, engine, `0 [1, 2, 3] ( + ) for-each`)
	require.Len(t, stack, 1)
	n, ok := stack[0].(*value.Number)
	require.True(t, ok)
	assert.Equal(t, int64(6), n.Int64())
}

func TestModuleImportAndCall(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "greet.plorth"), []byte(`: greet "hi" ;`), 0o644))

	engine := plorth.New(plorth.WithModulePaths([]string{dir}))
	stack := evalOK(t, engine, `"greet" import greet`)
	require.Len(t, stack, 1)
	assert.Equal(t, "hi", stack[0].String())
}

func TestNotANumberConversionIsValueError(t *testing.T) {
	engine := plorth.New()
	res := engine.Eval("<test>", `"not-a-number" >number`)
	require.NotNil(t, res.Err)
	assert.Equal(t, value.ErrValue, res.Err.Code)
}

func TestArrayOutOfRangeIndexIsRangeError(t *testing.T) {
	engine := plorth.New()
	res := engine.Eval("<test>", `[] 0 @`)
	require.NotNil(t, res.Err)
	assert.Equal(t, value.ErrRange, res.Err.Code)
}

func TestObjectMissingPropertyIsRangeErrorMentioningKey(t *testing.T) {
	engine := plorth.New()
	res := engine.Eval("<test>", `{} "k" @`)
	require.NotNil(t, res.Err)
	assert.Equal(t, value.ErrRange, res.Err.Code)
	assert.Contains(t, res.Err.Message, "k")
}

func TestRunFileEvaluatesProgramFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.plorth")
	require.NoError(t, os.WriteFile(path, []byte("2 3 *"), 0o644))

	engine := plorth.New()
	res := engine.RunFile(path)
	require.Nil(t, res.Err)
	require.Len(t, res.Stack, 1)
	n, ok := res.Stack[0].(*value.Number)
	require.True(t, ok)
	assert.Equal(t, int64(6), n.Int64())
}

func TestEngineImportAheadOfTime(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "util.plorth"), []byte(`: twice ( dup + ) ;`), 0o644))

	engine := plorth.New(plorth.WithModulePaths([]string{dir}))
	require.Nil(t, engine.Import("util"))

	res := engine.Eval("<test>", `"util" import 21 twice`)
	require.Nil(t, res.Err)
	require.Len(t, res.Stack, 1)
	n, ok := res.Stack[0].(*value.Number)
	require.True(t, ok)
	assert.Equal(t, int64(42), n.Int64())
}
