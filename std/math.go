/*
File    : bhasha/std/math.go
*/
package std

import (
	"math"

	"github.com/ishanroy/bhasha/gc"
	"github.com/ishanroy/bhasha/objects"
	"github.com/ishanroy/bhasha/scope"
)

func init() {
	register([]string{"math", "গণিত"}, loadMath)
}

func loadMath(g *gc.GC) *scope.Environment {
	env := scope.New(nil)
	define(g, env, []string{"pow"}, 2, nativePow)
	return env
}

func nativePow(g *gc.GC, args []objects.Value) objects.Value {
	if len(args) != 2 {
		return argError(g, "pow expects 2 arguments, got %d", len(args))
	}
	x, y := args[0], args[1]
	if !x.IsNumber() || !y.IsNumber() {
		return argError(g, "pow expects two Numbers, got %s and %s", objects.TypeName(x), objects.TypeName(y))
	}
	return objects.Number(math.Pow(x.Num, y.Num))
}
