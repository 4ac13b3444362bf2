/*
File    : bhasha/std/builtins.go
*/
package std

import (
	"fmt"
	"time"

	"github.com/ishanroy/bhasha/gc"
	"github.com/ishanroy/bhasha/objects"
	"github.com/ishanroy/bhasha/scope"
)

// processStart anchors clock() (§4.9: "seconds since process start").
var processStart = time.Now()

// DefineGlobals binds the four root-environment globals — show, len,
// append, clock — that sit outside any module (§4.9).
func DefineGlobals(g *gc.GC, env *scope.Environment) {
	define(g, env, []string{"show"}, -1, nativeShow)
	define(g, env, []string{"len"}, 1, nativeLen)
	define(g, env, []string{"append"}, -1, nativeAppend)
	define(g, env, []string{"clock"}, 0, nativeClock)
}

func nativeShow(g *gc.GC, args []objects.Value) objects.Value {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = objects.Render(a)
	}
	for i, p := range parts {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(p)
	}
	return objects.Nil()
}

func nativeLen(g *gc.GC, args []objects.Value) objects.Value {
	if len(args) != 1 {
		return argError(g, "len expects 1 argument, got %d", len(args))
	}
	v := args[0]
	if v.Kind != objects.ObjKind {
		return argError(g, "len has no meaning for %s", objects.TypeName(v))
	}
	switch o := v.Obj.(type) {
	case *objects.String:
		return objects.Number(float64(objects.GraphemeCount(o.Value)))
	case *objects.Array:
		return objects.Number(float64(len(o.Elements)))
	case *objects.Map:
		return objects.Number(float64(len(o.Keys)))
	}
	return argError(g, "len has no meaning for %s", objects.TypeName(v))
}

func nativeAppend(g *gc.GC, args []objects.Value) objects.Value {
	if len(args) == 0 {
		return argError(g, "append expects at least 1 argument, got 0")
	}
	if arr, ok := asArray(args[0]); ok {
		if len(args) < 2 {
			return argError(g, "append to an array expects at least 1 item")
		}
		arr.Elements = append(arr.Elements, args[1:]...)
		return objects.Number(float64(len(arr.Elements)))
	}
	if m, ok := asMap(args[0]); ok {
		if len(args) != 3 {
			return argError(g, "append to a map expects exactly (map, key, value), got %d arguments", len(args))
		}
		if err := m.Set(args[1], args[2]); err != nil {
			return argError(g, "%v", err)
		}
		return objects.Number(float64(len(m.Keys)))
	}
	return argError(g, "append has no meaning for %s", objects.TypeName(args[0]))
}

func nativeClock(g *gc.GC, args []objects.Value) objects.Value {
	return objects.Number(time.Since(processStart).Seconds())
}
