/*
File    : bhasha/eval/interpreter.go
*/

// Package eval implements the tree-walking interpreter (§4.3, §4.4): it
// walks the parser's AST directly against a chain of scope.Environments,
// allocating heap Objects through a gc.GC and resolving `import` through
// the std package's module loaders.
package eval

import (
	"fmt"

	"github.com/ishanroy/bhasha/gc"
	"github.com/ishanroy/bhasha/lexer"
	"github.com/ishanroy/bhasha/objects"
	"github.com/ishanroy/bhasha/parser"
	"github.com/ishanroy/bhasha/scope"
	"github.com/ishanroy/bhasha/std"
)

// defaultMaxCallDepth is the call-depth ceiling before "call depth
// exceeded" is reported as a runtime error (§4.3).
const defaultMaxCallDepth = 200

// RuntimeError is a single runtime-phase diagnostic in the §6.6 format.
type RuntimeError struct {
	Line    int
	Column  int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[Line %d] [Col %d] runtime: %s", e.Line, e.Column, e.Message)
}

func runtimeErrorAt(tok lexer.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Line: tok.Line, Column: tok.Column, Message: fmt.Sprintf(format, args...)}
}

// Module is one loaded standard-library or script module: a pathname, its
// populated root Environment, and a kind tag (§4.8).
type Module struct {
	Name string
	Env  *scope.Environment
	Kind string
}

const (
	ModuleKindStdlib = "stdlib"
	ModuleKindScript = "script"
)

// Interpreter owns the single root environment, the GC, the module
// registry, and the call-depth counter for one program run (§4.3–§4.8).
type Interpreter struct {
	Global *scope.Environment
	GC     *gc.GC

	modules []*Module
	proxy   map[uint64]*Module

	current      *scope.Environment // innermost active frame, for GC rooting
	callDepth    int
	maxCallDepth int
}

// New builds an Interpreter with its root environment pre-populated with
// the global natives (§4.9) and registers itself as the GC's sole root
// source.
func New() *Interpreter {
	return newWith(gc.New(), defaultMaxCallDepth)
}

// NewWithLimits builds an Interpreter whose GC threshold/growth and
// call-depth ceiling come from a loaded `internal/config.Config`
// (SPEC_FULL §A.1) instead of the built-in defaults.
func NewWithLimits(maxCallDepth, gcThreshold int, gcGrowth float64) *Interpreter {
	return newWith(gc.NewWithLimits(gcThreshold, gcGrowth), maxCallDepth)
}

func newWith(collector *gc.GC, maxCallDepth int) *Interpreter {
	i := &Interpreter{
		Global:       scope.New(nil),
		GC:           collector,
		proxy:        make(map[uint64]*Module),
		maxCallDepth: maxCallDepth,
	}
	i.current = i.Global
	i.GC.Roots = []gc.RootSource{i}
	std.DefineGlobals(i.GC, i.Global)
	return i
}

// SetMaxCallDepth overrides the call-depth ceiling (§4.3) on an existing
// Interpreter, chiefly for tests; a config override goes through
// NewWithLimits instead.
func (i *Interpreter) SetMaxCallDepth(n int) { i.maxCallDepth = n }

// SetStress forwards to the GC's stress mode (§4.6).
func (i *Interpreter) SetStress(on bool) { i.GC.SetStress(on) }

// Walk satisfies gc.RootSource: the currently active frame (whose Walk
// already recurses the whole parent chain) plus every loaded module's root
// environment (§4.6 — "every module's root environment").
func (i *Interpreter) Walk(visit func(objects.Value)) {
	if i.current != nil {
		i.current.Walk(visit)
	}
	for _, m := range i.modules {
		m.Env.Walk(visit)
	}
}

// Run executes prog's statements in the root environment and returns the
// value of the last top-level statement (for REPL echo, SPEC_FULL §C), or
// the first runtime error encountered.
func (i *Interpreter) Run(prog *parser.Program) (objects.Value, error) {
	var last objects.Value
	for _, stmt := range prog.Statements {
		res, err := i.evalStmt(stmt, i.Global)
		if err != nil {
			return objects.Nil(), err
		}
		// A bare top-level `return`/`break` has no enclosing function or
		// loop to unwind to; per §4.3 it is silently absorbed rather than
		// propagated further.
		last = res.value
	}
	return last, nil
}

// alloc routes every heap allocation through the GC (§4.6).
func (i *Interpreter) alloc(o objects.Object) objects.Object {
	return i.GC.Alloc(o)
}
