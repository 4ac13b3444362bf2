/*
File    : bhasha/std/os.go
*/
package std

import (
	"os"
	"os/user"
	"runtime"

	"github.com/ishanroy/bhasha/gc"
	"github.com/ishanroy/bhasha/objects"
	"github.com/ishanroy/bhasha/scope"
)

func init() {
	register([]string{"os", "ওএস"}, loadOS)
}

func loadOS(g *gc.GC) *scope.Environment {
	env := scope.New(nil)
	define(g, env, []string{"name"}, 0, nativeOSName)
	define(g, env, []string{"arch"}, 0, nativeOSArch)
	define(g, env, []string{"username"}, 0, nativeOSUsername)
	define(g, env, []string{"home"}, 0, nativeOSHome)
	define(g, env, []string{"cwd"}, 0, nativeOSCwd)
	return env
}

func nativeOSName(g *gc.GC, args []objects.Value) objects.Value {
	return allocString(g, runtime.GOOS)
}

func nativeOSArch(g *gc.GC, args []objects.Value) objects.Value {
	return allocString(g, runtime.GOARCH)
}

func nativeOSUsername(g *gc.GC, args []objects.Value) objects.Value {
	u, err := user.Current()
	if err != nil || u.Username == "" {
		return objects.Nil()
	}
	return allocString(g, u.Username)
}

func nativeOSHome(g *gc.GC, args []objects.Value) objects.Value {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return objects.Nil()
	}
	return allocString(g, home)
}

func nativeOSCwd(g *gc.GC, args []objects.Value) objects.Value {
	cwd, err := os.Getwd()
	if err != nil || cwd == "" {
		return objects.Nil()
	}
	return allocString(g, cwd)
}
