package module_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plorth-go/plorth/internal/builtins"
	"github.com/plorth-go/plorth/internal/context"
	"github.com/plorth-go/plorth/internal/module"
	"github.com/plorth-go/plorth/internal/parser"
	"github.com/plorth-go/plorth/internal/runtime"
)

func newTestRuntime(t *testing.T, dir string) *runtime.Runtime {
	t.Helper()
	rt := runtime.New(parser.Compile, runtime.WithModulePaths([]string{dir}))
	builtins.Install(rt)
	return rt
}

func writeModule(t *testing.T, dir, name, source string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(source), 0o644))
}

func TestResolveFindsExactAndExtensionedCandidates(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "greet.plorth", `: greet "hi" ;`)

	rt := newTestRuntime(t, dir)
	ctx := context.New(rt, "")

	resolved, err := module.Resolve(ctx, "greet")
	require.Nil(t, err)
	assert.Equal(t, filepath.Join(dir, "greet.plorth"), resolved)
}

func TestResolveIndexCandidate(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "pkg")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeModule(t, sub, "index.plorth", `: greet "hi" ;`)

	rt := newTestRuntime(t, dir)
	ctx := context.New(rt, "")

	resolved, err := module.Resolve(ctx, "pkg")
	require.Nil(t, err)
	assert.Equal(t, filepath.Join(sub, "index.plorth"), resolved)
}

func TestResolveUnknownModuleIsImportError(t *testing.T) {
	dir := t.TempDir()
	rt := newTestRuntime(t, dir)
	ctx := context.New(rt, "")

	_, err := module.Resolve(ctx, "missing")
	require.NotNil(t, err)
	assert.Equal(t, "import", string(err.Code))
}

func TestImportInstallsWordsIntoLocalDictionary(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "greet.plorth", `: greet "hi" ;`)

	rt := newTestRuntime(t, dir)
	ctx := context.New(rt, "")

	ok := module.Import(ctx, "greet")
	require.True(t, ok, "import failed: %v", ctx.Error())

	found, has := ctx.Local().Find("greet")
	require.True(t, has)
	require.NotNil(t, found.Quote)
}

func TestImportCachesModuleBodyExecutionOnce(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "once.plorth", `: bump "called" ;`)

	rt := newTestRuntime(t, dir)
	ctx1 := context.New(rt, "")
	require.True(t, module.Import(ctx1, "once"))

	ctx2 := context.New(rt, "")
	require.True(t, module.Import(ctx2, "once"))

	_, has := ctx2.Local().Find("bump")
	assert.True(t, has)
}

func TestImportSelfCycleDoesNotRecurseForever(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "cycle.plorth", `"cycle" import`)

	rt := newTestRuntime(t, dir)
	ctx := context.New(rt, "")

	ok := module.Import(ctx, "cycle")
	require.True(t, ok, "import failed: %v", ctx.Error())
}

func TestImportDisabledModulesErrors(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "greet.plorth", `: greet "hi" ;`)

	rt := runtime.New(parser.Compile, runtime.WithModulePaths([]string{dir}), runtime.WithModulesDisabled())
	ctx := context.New(rt, "")

	ok := module.Import(ctx, "greet")
	require.False(t, ok)
	assert.Equal(t, "import", string(ctx.Error().Code))
}
