package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTruthyOnlyBoolTrue(t *testing.T) {
	cases := []struct {
		Name     string
		Value    Value
		Expected bool
	}{
		{"true", Bool(true), true},
		{"false", Bool(false), false},
		{"nil", Nil(), false},
		{"zero", Number(0), false},
		{"nonzero", Number(1), false},
		{"empty string", FromObject(NewString("")), false},
		{"nonempty string", FromObject(NewString("x")), false},
		{"array", FromObject(NewArray(nil)), false},
	}
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, c.Expected, IsTruthy(c.Value))
		})
	}
}

func TestEqualAcrossKinds(t *testing.T) {
	assert.True(t, Equal(Number(1), Number(1)))
	assert.False(t, Equal(Number(1), Number(2)))
	assert.True(t, Equal(Bool(true), Bool(true)))
	assert.True(t, Equal(Nil(), Nil()))
	assert.True(t, Equal(FromObject(NewString("a")), FromObject(NewString("a"))))
	assert.False(t, Equal(Number(1), Bool(true)))
	assert.False(t, Equal(Nil(), Bool(false)))

	a1 := NewArray(nil)
	a2 := NewArray(nil)
	assert.False(t, Equal(FromObject(a1), FromObject(a2)), "arrays compare by identity")
	assert.True(t, Equal(FromObject(a1), FromObject(a1)))
}

func TestMapSetPreservesInsertionOrder(t *testing.T) {
	m := NewMap()
	require := func(err error) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require(m.Set(FromObject(NewString("b")), Number(2)))
	require(m.Set(FromObject(NewString("a")), Number(1)))
	require(m.Set(FromObject(NewString("b")), Number(99)))

	bKey, _ := HashKey(FromObject(NewString("b")))
	aKey, _ := HashKey(FromObject(NewString("a")))
	assert.Equal(t, []string{bKey, aKey}, m.Keys)
	assert.Equal(t, Number(99), m.Pairs[bKey])
}

func TestHashKeyRejectsUnhashable(t *testing.T) {
	_, err := HashKey(FromObject(NewArray(nil)))
	assert.Error(t, err)

	key, err := HashKey(Number(3))
	assert.NoError(t, err)
	assert.NotEmpty(t, key)
}

func TestDerefUnwrapsUpvalue(t *testing.T) {
	up := NewUpvalue(Number(5))
	wrapped := FromObject(up)
	assert.Equal(t, Number(5), Deref(wrapped))

	up.Slot = Number(6)
	assert.Equal(t, Number(6), Deref(wrapped))
}

func TestRenderContainers(t *testing.T) {
	arr := NewArray([]Value{Number(1), FromObject(NewString("x"))})
	assert.Equal(t, `[1, x]`, Render(FromObject(arr)))

	m := NewMap()
	m.Set(FromObject(NewString("k")), Number(1))
	assert.Equal(t, `{k: 1}`, Render(FromObject(m)))
}
