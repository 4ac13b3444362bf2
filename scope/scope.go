/*
File    : bhasha/scope/scope.go
*/

// Package scope implements the Environment: a parent-linked chain of frames
// that resolves identifiers by a 64-bit hash of their lexeme rather than by
// the string itself (§4.5).
package scope

import (
	"github.com/ishanroy/bhasha/gc"
	"github.com/ishanroy/bhasha/objects"
)

type binding struct {
	name  string
	value objects.Value
}

// Environment is one frame in the lexical scope chain.
type Environment struct {
	frame  map[uint64]*binding
	Parent *Environment
}

// New creates an Environment whose parent is parent (nil for a root
// environment — either the interpreter's or a module's, §4.8).
func New(parent *Environment) *Environment {
	return &Environment{frame: make(map[uint64]*binding), Parent: parent}
}

// Put inserts or updates an entry in the current frame only. If the
// existing entry already holds an Upvalue, the write goes through the
// upvalue's slot instead of replacing the frame entry, so every closure
// sharing that upvalue observes the update.
func (e *Environment) Put(name string, hash uint64, value objects.Value) {
	if existing, ok := e.frame[hash]; ok {
		if up, isUp := existing.value.Obj.(*objects.Upvalue); isUp && existing.value.Kind == objects.ObjKind {
			up.Slot = value
			return
		}
	}
	e.frame[hash] = &binding{name: name, value: value}
}

// Set walks the chain looking for an existing binding and updates it in
// place (through its upvalue slot if promoted). Returns false if no frame
// in the chain holds the name — there is no shadowing-on-assignment.
func (e *Environment) Set(name string, hash uint64, value objects.Value) bool {
	for env := e; env != nil; env = env.Parent {
		existing, ok := env.frame[hash]
		if !ok {
			continue
		}
		if up, isUp := existing.value.Obj.(*objects.Upvalue); isUp && existing.value.Kind == objects.ObjKind {
			up.Slot = value
		} else {
			existing.value = value
		}
		return true
	}
	return false
}

// Get walks the chain and returns the stored value, dereferencing an
// Upvalue indirection transparently, plus whether the name was found.
func (e *Environment) Get(hash uint64) (objects.Value, bool) {
	for env := e; env != nil; env = env.Parent {
		if b, ok := env.frame[hash]; ok {
			return objects.Deref(b.value), true
		}
	}
	return objects.Value{}, false
}

// PromoteFrameToUpvalues converts every binding currently in this frame
// (not its ancestors) into an Upvalue indirection, if it is not one
// already. Called when a function literal is declared so the declaring
// frame and the closure that captures it converge on shared slots: reads
// and writes from either side observe each other (§4.5, §9). Each Upvalue
// is routed through g so the collector tracks it like any other heap
// Object (§4.6).
func (e *Environment) PromoteFrameToUpvalues(g *gc.GC) {
	for _, b := range e.frame {
		if b.value.Kind == objects.ObjKind {
			if _, isUp := b.value.Obj.(*objects.Upvalue); isUp {
				continue
			}
		}
		up := objects.NewUpvalue(b.value)
		g.Track(up)
		b.value = objects.FromObject(up)
	}
}

// Walk invokes visit for every Value bound anywhere in this frame's chain,
// including every ancestor — so registering the innermost live Environment
// as a GC root reaches the whole chain in one call (§4.6).
func (e *Environment) Walk(visit func(objects.Value)) {
	for env := e; env != nil; env = env.Parent {
		for _, b := range env.frame {
			visit(b.value)
		}
	}
}

// Names returns the identifiers bound directly in this frame, for
// diagnostics and testing.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.frame))
	for _, b := range e.frame {
		names = append(names, b.name)
	}
	return names
}
