/*
File    : bhasha/std/map.go
*/
package std

import (
	"github.com/ishanroy/bhasha/gc"
	"github.com/ishanroy/bhasha/objects"
	"github.com/ishanroy/bhasha/scope"
)

func init() {
	register([]string{"map", "ম্যাপ"}, loadMap)
}

func loadMap(g *gc.GC) *scope.Environment {
	env := scope.New(nil)
	define(g, env, []string{"exists"}, 2, nativeMapExists)
	define(g, env, []string{"keys"}, 1, nativeMapKeys)
	define(g, env, []string{"values"}, 1, nativeMapValues)
	return env
}

func asMap(v objects.Value) (*objects.Map, bool) {
	if v.Kind != objects.ObjKind {
		return nil, false
	}
	m, ok := v.Obj.(*objects.Map)
	return m, ok
}

func nativeMapExists(g *gc.GC, args []objects.Value) objects.Value {
	if len(args) != 2 {
		return argError(g, "exists expects 2 arguments, got %d", len(args))
	}
	m, ok := asMap(args[0])
	if !ok {
		return argError(g, "exists expects a Map, got %s", objects.TypeName(args[0]))
	}
	key, err := objects.HashKey(args[1])
	if err != nil {
		return argError(g, "%v", err)
	}
	_, found := m.Pairs[key]
	return objects.Bool(found)
}

func nativeMapKeys(g *gc.GC, args []objects.Value) objects.Value {
	if len(args) != 1 {
		return argError(g, "keys expects 1 argument, got %d", len(args))
	}
	m, ok := asMap(args[0])
	if !ok {
		return argError(g, "keys expects a Map, got %s", objects.TypeName(args[0]))
	}
	items := make([]objects.Value, len(m.KeyValues))
	copy(items, m.KeyValues)
	return allocArray(g, items)
}

func nativeMapValues(g *gc.GC, args []objects.Value) objects.Value {
	if len(args) != 1 {
		return argError(g, "values expects 1 argument, got %d", len(args))
	}
	m, ok := asMap(args[0])
	if !ok {
		return argError(g, "values expects a Map, got %s", objects.TypeName(args[0]))
	}
	items := make([]objects.Value, len(m.Keys))
	for i, k := range m.Keys {
		items[i] = m.Pairs[k]
	}
	return allocArray(g, items)
}
