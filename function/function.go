/*
File    : bhasha/function/function.go
*/

// Package function holds the two callable Object kinds, Function and
// NativeFunction. They live outside the objects package because a Function
// captures a *scope.Environment for closures, and scope already imports
// objects — objects importing scope back would cycle (§4.5, §9).
package function

import (
	"fmt"
	"strings"

	"github.com/ishanroy/bhasha/gc"
	"github.com/ishanroy/bhasha/lexer"
	"github.com/ishanroy/bhasha/objects"
	"github.com/ishanroy/bhasha/parser"
	"github.com/ishanroy/bhasha/scope"
)

// Function is a user-defined, closure-capturing callable (§4.3, §4.5). Env
// is the Environment active when the `func` statement ran; every call
// creates a fresh child of Env, so writes to variables promoted to
// upvalues in Env are visible to every closure sharing it.
type Function struct {
	objects.Header
	Name   string
	Params []lexer.Token
	Body   *parser.BlockStmt
	Env    *scope.Environment
}

func NewFunction(name string, params []lexer.Token, body *parser.BlockStmt, env *scope.Environment) *Function {
	return &Function{Name: name, Params: params, Body: body, Env: env}
}

func (f *Function) Kind() objects.ObjectKind { return objects.KFunction }

func (f *Function) Render() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Lexeme
	}
	return fmt.Sprintf("<func %s(%s)>", f.Name, strings.Join(names, ", "))
}

// Walk delegates to the captured Environment so the GC marks every value
// reachable through the closure, not just Function's own fields (§4.6).
func (f *Function) Walk(visit func(objects.Value)) {
	if f.Env != nil {
		f.Env.Walk(visit)
	}
}

func (f *Function) Arity() int { return len(f.Params) }

// NativeFunction wraps a Go implementation of a stdlib entry (§4.8, §4.9).
// Arity of -1 means variadic; the Impl is responsible for validating
// argument count and types and returning an *objects.Error value on
// mismatch rather than panicking (§7). Impl receives the owning GC so any
// heap Object it allocates (a String, an Array, an Error, ...) is tracked
// the same way the interpreter's own expression evaluation tracks one.
type NativeFunction struct {
	objects.Header
	Name  string
	Arity int
	Impl  func(g *gc.GC, args []objects.Value) objects.Value
}

func NewNativeFunction(name string, arity int, impl func(g *gc.GC, args []objects.Value) objects.Value) *NativeFunction {
	return &NativeFunction{Name: name, Arity: arity, Impl: impl}
}

func (n *NativeFunction) Kind() objects.ObjectKind { return objects.KNativeFunction }
func (n *NativeFunction) Render() string           { return fmt.Sprintf("<native %s>", n.Name) }
func (n *NativeFunction) Walk(func(objects.Value)) {}

// CheckArity reports whether argc matches the declared arity, always true
// for a variadic (-1) native.
func (n *NativeFunction) CheckArity(argc int) bool {
	return n.Arity < 0 || n.Arity == argc
}
