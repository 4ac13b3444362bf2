package gc_test

import (
	"testing"

	"github.com/ishanroy/bhasha/gc"
	"github.com/ishanroy/bhasha/objects"
	"github.com/ishanroy/bhasha/scope"
	"github.com/stretchr/testify/assert"
)

func TestCollectFreesUnreachableObjects(t *testing.T) {
	g := gc.New()
	root := scope.New(nil)
	g.Roots = []gc.RootSource{root}

	kept := g.Alloc(objects.NewString("kept")).(*objects.String)
	root.Put("x", 1, objects.FromObject(kept))

	g.Alloc(objects.NewString("garbage"))

	assert.Equal(t, 2, g.HeapObjects())
	g.Collect()
	assert.Equal(t, 1, g.HeapObjects())

	v, ok := root.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "kept", v.Obj.(*objects.String).Value)
}

func TestCollectTraversesArrayElements(t *testing.T) {
	g := gc.New()
	root := scope.New(nil)
	g.Roots = []gc.RootSource{root}

	inner := g.Alloc(objects.NewString("inner")).(*objects.String)
	arr := g.Alloc(objects.NewArray([]objects.Value{objects.FromObject(inner)}))
	root.Put("a", 1, objects.FromObject(arr))

	g.Collect()
	assert.Equal(t, 2, g.HeapObjects())
}

func TestStressModeCollectsOnEveryAlloc(t *testing.T) {
	g := gc.New()
	g.SetStress(true)
	root := scope.New(nil)
	g.Roots = []gc.RootSource{root}

	g.Alloc(objects.NewString("a"))
	g.Alloc(objects.NewString("b"))

	// The collection forced by the second Alloc frees the unreachable "a";
	// "b" is tracked after that collection, so it is the one live object.
	assert.Equal(t, 1, g.HeapObjects())
}
