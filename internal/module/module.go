// Package module implements Plorth's import system: resolving an import
// path against the runtime's configured module search directories, and
// running each module's body at most once through a placeholder-before-
// execute cache so that a module re-imported during its own
// initialization gets the (still empty) placeholder object instead of
// recursing forever.
package module

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/plorth-go/plorth/internal/context"
	"github.com/plorth-go/plorth/internal/eval"
	"github.com/plorth-go/plorth/internal/value"
)

// Resolve locates the source file backing path, trying (in order) the
// literal path, path+extension, and path/index+extension, against every
// configured module directory for a relative path, or directly for an
// absolute one.
func Resolve(ctx *context.Context, path string) (string, *value.Error) {
	ext := ctx.Runtime().ModuleExtension()
	candidates := candidateNames(path, ext)

	if filepath.IsAbs(path) {
		for _, c := range candidates {
			if fileExists(c) {
				return c, nil
			}
		}
		return "", value.NewError(value.ErrImport, "Cannot resolve module: "+path)
	}

	for _, dir := range ctx.Runtime().ModulePaths() {
		for _, c := range candidates {
			full := filepath.Join(dir, c)
			if fileExists(full) {
				return full, nil
			}
		}
	}
	return "", value.NewError(value.ErrImport, "Cannot resolve module: "+path)
}

func candidateNames(path, ext string) []string {
	out := []string{path}
	if !strings.HasSuffix(path, ext) {
		out = append(out, path+ext)
	}
	out = append(out, filepath.Join(path, "index"+ext))
	return out
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Import resolves, loads (from cache if available) and then copies every
// quote-valued property of the resulting module object into ctx's local
// dictionary, per the core spec's import semantics.
func Import(ctx *context.Context, path string) bool {
	rt := ctx.Runtime()
	if !rt.ModulesEnabled() {
		ctx.SetError(value.ErrImport, "Modules are disabled")
		return false
	}

	resolved, err := Resolve(ctx, path)
	if err != nil {
		ctx.SetErrorValue(err)
		return false
	}

	obj, ok := load(ctx, resolved)
	if !ok {
		return false
	}

	for _, key := range obj.Keys() {
		v, _ := obj.Get(key)
		q, isQuote := v.(value.Quote)
		if !isQuote {
			continue
		}
		ctx.Local().Insert(value.NewWord(value.NewSymbol(key), q))
	}
	return true
}

// load returns the cached export object for resolved if present,
// otherwise reads, compiles and runs the module body exactly once,
// inserting an empty placeholder into the cache first so that a module
// that (directly or transitively) imports itself observes the
// placeholder rather than recursing.
func load(ctx *context.Context, resolved string) (*value.Object, bool) {
	rt := ctx.Runtime()
	if cached, ok := rt.CacheGet(resolved); ok {
		return cached, true
	}

	placeholder := value.EmptyObject()
	rt.CachePut(resolved, placeholder)

	data, readErr := os.ReadFile(resolved)
	if readErr != nil {
		rt.CacheDelete(resolved)
		ctx.SetError(value.ErrImport, "Cannot read module: "+resolved)
		return nil, false
	}

	quote, compileErr := rt.Compiler(resolved, string(data))
	if compileErr != nil {
		rt.CacheDelete(resolved)
		ctx.SetErrorValue(compileErr)
		return nil, false
	}

	moduleCtx := context.New(rt, resolved)
	if !eval.Call(moduleCtx, quote) {
		rt.CacheDelete(resolved)
		ctx.SetErrorValue(moduleCtx.Error())
		return nil, false
	}

	export := value.EmptyObject()
	for _, w := range moduleCtx.Local().Words() {
		export.Set(w.Identifier(), w.Quote)
	}
	rt.CachePut(resolved, export)
	return export, true
}
