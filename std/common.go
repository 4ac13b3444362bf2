/*
File    : bhasha/std/common.go
*/

// Package std implements the required standard-library modules (§4.9):
// math, map, array, string, os. Each module is a plain *scope.Environment
// populated with NativeFunction bindings; the interpreter's module registry
// (§4.8) calls Load with a name resolved from an `import` statement's path
// string and receives a fresh Environment to register under the import's
// local name.
package std

import (
	"github.com/ishanroy/bhasha/function"
	"github.com/ishanroy/bhasha/gc"
	"github.com/ishanroy/bhasha/lexer"
	"github.com/ishanroy/bhasha/objects"
	"github.com/ishanroy/bhasha/scope"
)

// loader builds one module's root Environment from scratch, routing every
// NativeFunction it defines through the owning GC. Modules are stateless
// and side-effect-free to build, so a fresh Environment is constructed on
// every Load call rather than shared across imports.
type loader func(g *gc.GC) *scope.Environment

var registry = map[string]loader{}

// register associates every alias in names (§6.4's English/Bengali
// spellings) with the same module loader.
func register(names []string, load loader) {
	for _, n := range names {
		registry[n] = load
	}
}

// Load resolves name — any of a module's §6.4 aliases — to a freshly built
// module Environment, whose NativeFunctions (and anything they later
// allocate) are tracked by g. ok is false for an unrecognized name (§4.8:
// "Unknown names are a runtime error", left for the caller to report).
func Load(g *gc.GC, name string) (env *scope.Environment, ok bool) {
	build, found := registry[name]
	if !found {
		return nil, false
	}
	return build(g), true
}

// define binds a NativeFunction into env under every alias in names, so a
// stdlib entry's English/Bengali/phonetic spellings all resolve to the same
// implementation (§4.9). The NativeFunction itself is tracked by g like any
// other heap Object (§4.6).
func define(g *gc.GC, env *scope.Environment, names []string, arity int, impl func(g *gc.GC, args []objects.Value) objects.Value) {
	for _, n := range names {
		fn := function.NewNativeFunction(n, arity, impl)
		g.Alloc(fn)
		env.Put(n, lexer.Hash(n), objects.FromObject(fn))
	}
}

// argError builds the in-band Error value a native returns on an arity or
// type mismatch (§4.4: "Natives may return a distinguished Error object"),
// tracking it through g like every other heap allocation (§4.6).
func argError(g *gc.GC, format string, args ...interface{}) objects.Value {
	e := objects.NewError(format, args...)
	g.Alloc(e)
	return objects.FromObject(e)
}

// allocString wraps a Go string as a tracked String Value — the idiom every
// native uses instead of bare objects.FromObject(objects.NewString(...))
// (§4.6).
func allocString(g *gc.GC, s string) objects.Value {
	return objects.FromObject(g.Alloc(objects.NewString(s)).(*objects.String))
}

// allocArray wraps a slice of Values as a tracked Array Value.
func allocArray(g *gc.GC, items []objects.Value) objects.Value {
	return objects.FromObject(g.Alloc(objects.NewArray(items)).(*objects.Array))
}
