/*
File    : bhasha/std/array.go
*/
package std

import (
	"github.com/ishanroy/bhasha/gc"
	"github.com/ishanroy/bhasha/objects"
	"github.com/ishanroy/bhasha/scope"
)

func init() {
	register([]string{"array", "তালিকা"}, loadArray)
}

func loadArray(g *gc.GC) *scope.Environment {
	env := scope.New(nil)
	define(g, env, []string{"exists"}, 2, nativeArrayExists)
	define(g, env, []string{"index"}, 2, nativeArrayIndex)
	define(g, env, []string{"delete"}, -1, nativeArrayDelete)
	return env
}

func asArray(v objects.Value) (*objects.Array, bool) {
	if v.Kind != objects.ObjKind {
		return nil, false
	}
	a, ok := v.Obj.(*objects.Array)
	return a, ok
}

func nativeArrayExists(g *gc.GC, args []objects.Value) objects.Value {
	if len(args) != 2 {
		return argError(g, "exists expects 2 arguments, got %d", len(args))
	}
	a, ok := asArray(args[0])
	if !ok {
		return argError(g, "exists expects an Array, got %s", objects.TypeName(args[0]))
	}
	for _, e := range a.Elements {
		if objects.Equal(e, args[1]) {
			return objects.Bool(true)
		}
	}
	return objects.Bool(false)
}

func nativeArrayIndex(g *gc.GC, args []objects.Value) objects.Value {
	if len(args) != 2 {
		return argError(g, "index expects 2 arguments, got %d", len(args))
	}
	a, ok := asArray(args[0])
	if !ok {
		return argError(g, "index expects an Array, got %s", objects.TypeName(args[0]))
	}
	for i, e := range a.Elements {
		if objects.Equal(e, args[1]) {
			return objects.Number(float64(i))
		}
	}
	return objects.Number(-1)
}

func nativeArrayDelete(g *gc.GC, args []objects.Value) objects.Value {
	if len(args) != 1 && len(args) != 2 {
		return argError(g, "delete expects 1 or 2 arguments, got %d", len(args))
	}
	a, ok := asArray(args[0])
	if !ok {
		return argError(g, "delete expects an Array, got %s", objects.TypeName(args[0]))
	}
	if len(a.Elements) == 0 {
		return argError(g, "delete on an empty array")
	}
	idx := len(a.Elements) - 1
	if len(args) == 2 {
		if !args[1].IsNumber() {
			return argError(g, "delete expects a Number index, got %s", objects.TypeName(args[1]))
		}
		idx = int(args[1].Num)
	}
	if idx < 0 || idx >= len(a.Elements) {
		return argError(g, "array index %d out of range [0, %d)", idx, len(a.Elements))
	}
	removed := a.Elements[idx]
	a.Elements = append(a.Elements[:idx], a.Elements[idx+1:]...)
	return removed
}
