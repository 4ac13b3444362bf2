package std

import (
	"testing"

	"github.com/ishanroy/bhasha/gc"
	"github.com/ishanroy/bhasha/lexer"
	"github.com/ishanroy/bhasha/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUnknownModuleFails(t *testing.T) {
	_, ok := Load(gc.New(), "does-not-exist")
	assert.False(t, ok)
}

func TestLoadMathPow(t *testing.T) {
	env, ok := Load(gc.New(), "math")
	require.True(t, ok)
	v, ok := env.Get(lexer.Hash("pow"))
	require.True(t, ok)
	assert.Equal(t, objects.KNativeFunction, v.Obj.Kind())
}

func TestLoadModuleAliases(t *testing.T) {
	for _, name := range []string{"math", "গণিত"} {
		_, ok := Load(gc.New(), name)
		assert.True(t, ok, "expected alias %q to resolve", name)
	}
}

func TestMapExistsKeys(t *testing.T) {
	g := gc.New()
	m := objects.NewMap()
	require.NoError(t, m.Set(objects.FromObject(objects.NewString("a")), objects.Number(1)))
	require.NoError(t, m.Set(objects.FromObject(objects.NewString("b")), objects.Number(2)))

	assert.Equal(t, objects.Bool(true), nativeMapExists(g, []objects.Value{objects.FromObject(m), objects.FromObject(objects.NewString("a"))}))
	assert.Equal(t, objects.Bool(false), nativeMapExists(g, []objects.Value{objects.FromObject(m), objects.FromObject(objects.NewString("z"))}))

	keys := nativeMapKeys(g, []objects.Value{objects.FromObject(m)})
	arr := keys.Obj.(*objects.Array)
	assert.Len(t, arr.Elements, 2)
}

func TestArrayExistsIndexDelete(t *testing.T) {
	g := gc.New()
	arr := objects.NewArray([]objects.Value{objects.Number(10), objects.Number(20), objects.Number(30)})
	v := objects.FromObject(arr)

	assert.Equal(t, objects.Bool(true), nativeArrayExists(g, []objects.Value{v, objects.Number(20)}))
	assert.Equal(t, objects.Number(1), nativeArrayIndex(g, []objects.Value{v, objects.Number(20)}))
	assert.Equal(t, objects.Number(-1), nativeArrayIndex(g, []objects.Value{v, objects.Number(99)}))

	popped := nativeArrayDelete(g, []objects.Value{v})
	assert.Equal(t, objects.Number(30), popped)
	assert.Len(t, arr.Elements, 2)

	removed := nativeArrayDelete(g, []objects.Value{v, objects.Number(0)})
	assert.Equal(t, objects.Number(10), removed)
	assert.Len(t, arr.Elements, 1)
}

func TestStringIndexSplitString(t *testing.T) {
	g := gc.New()
	s := objects.FromObject(objects.NewString("abc"))
	assert.Equal(t, "b", nativeStringIndex(g, []objects.Value{s, objects.Number(1)}).Obj.(*objects.String).Value)

	parts := nativeStringSplit(g, []objects.Value{
		objects.FromObject(objects.NewString("a,b,c")),
		objects.FromObject(objects.NewString(",")),
	})
	assert.Len(t, parts.Obj.(*objects.Array).Elements, 3)

	rendered := nativeStringString(g, []objects.Value{objects.Number(42)})
	assert.Equal(t, "42", rendered.Obj.(*objects.String).Value)
}

func TestGlobalLenAppendClock(t *testing.T) {
	g := gc.New()
	arr := objects.FromObject(objects.NewArray([]objects.Value{objects.Number(1), objects.Number(2)}))
	assert.Equal(t, objects.Number(2), nativeLen(g, []objects.Value{arr}))

	newLen := nativeAppend(g, []objects.Value{arr, objects.Number(3)})
	assert.Equal(t, objects.Number(3), newLen)

	m := objects.FromObject(objects.NewMap())
	count := nativeAppend(g, []objects.Value{m, objects.FromObject(objects.NewString("k")), objects.Number(1)})
	assert.Equal(t, objects.Number(1), count)

	clock := nativeClock(g, nil)
	assert.True(t, clock.Num >= 0)
}
