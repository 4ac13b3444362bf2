/*
File    : bhasha/std/string.go
*/
package std

import (
	"strings"

	"github.com/ishanroy/bhasha/gc"
	"github.com/ishanroy/bhasha/objects"
	"github.com/ishanroy/bhasha/scope"
)

func init() {
	register([]string{"string"}, loadString)
}

func loadString(g *gc.GC) *scope.Environment {
	env := scope.New(nil)
	define(g, env, []string{"index"}, 2, nativeStringIndex)
	define(g, env, []string{"split"}, 2, nativeStringSplit)
	define(g, env, []string{"string"}, 1, nativeStringString)
	return env
}

func asString(v objects.Value) (*objects.String, bool) {
	if v.Kind != objects.ObjKind {
		return nil, false
	}
	s, ok := v.Obj.(*objects.String)
	return s, ok
}

func nativeStringIndex(g *gc.GC, args []objects.Value) objects.Value {
	if len(args) != 2 {
		return argError(g, "index expects 2 arguments, got %d", len(args))
	}
	s, ok := asString(args[0])
	if !ok {
		return argError(g, "index expects a String, got %s", objects.TypeName(args[0]))
	}
	if !args[1].IsNumber() {
		return argError(g, "index expects a Number, got %s", objects.TypeName(args[1]))
	}
	clusters := objects.GraphemeClusters(s.Value)
	i := int(args[1].Num)
	if i < 0 || i >= len(clusters) {
		return argError(g, "string index %d out of range [0, %d)", i, len(clusters))
	}
	return allocString(g, clusters[i])
}

func nativeStringSplit(g *gc.GC, args []objects.Value) objects.Value {
	if len(args) != 2 {
		return argError(g, "split expects 2 arguments, got %d", len(args))
	}
	s, ok := asString(args[0])
	if !ok {
		return argError(g, "split expects a String, got %s", objects.TypeName(args[0]))
	}
	sep, ok := asString(args[1])
	if !ok {
		return argError(g, "split expects a String separator, got %s", objects.TypeName(args[1]))
	}
	parts := strings.Split(s.Value, sep.Value)
	items := make([]objects.Value, len(parts))
	for i, p := range parts {
		items[i] = allocString(g, p)
	}
	return allocArray(g, items)
}

func nativeStringString(g *gc.GC, args []objects.Value) objects.Value {
	if len(args) != 1 {
		return argError(g, "string expects 1 argument, got %d", len(args))
	}
	return allocString(g, objects.Render(args[0]))
}
