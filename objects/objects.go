/*
File    : bhasha/objects/objects.go
*/

// Package objects defines the Value/Object data model: the four-case Value
// tagged union (Number, Bool, Nil, Object) and the heap-allocated Object
// kinds referenced by an Object variant. Object deliberately exposes only a
// generic Walk traversal so the garbage collector package never needs to
// import a concrete object kind (in particular Function, which lives in a
// separate package to avoid an objects/scope/function import cycle).
package objects

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ishanroy/bhasha/lexer"
	"github.com/rivo/uniseg"
)

// ValueKind tags the four cases a Value may hold.
type ValueKind int

const (
	NumberKind ValueKind = iota
	BoolKind
	NilKind
	ObjKind
)

// Value is the tagged union every expression evaluates to. Number, Bool and
// Nil are carried inline (never boxed on the heap); only ObjKind indirects
// through the GC-managed Object interface.
type Value struct {
	Kind ValueKind
	Num  float64
	Bool bool
	Obj  Object
}

func Number(f float64) Value { return Value{Kind: NumberKind, Num: f} }
func Bool(b bool) Value      { return Value{Kind: BoolKind, Bool: b} }
func Nil() Value             { return Value{Kind: NilKind} }
func FromObject(o Object) Value {
	return Value{Kind: ObjKind, Obj: o}
}

func (v Value) IsNumber() bool { return v.Kind == NumberKind }
func (v Value) IsBool() bool   { return v.Kind == BoolKind }
func (v Value) IsNil() bool    { return v.Kind == NilKind }
func (v Value) IsObject() bool { return v.Kind == ObjKind }

// IsTruthy implements the non-standard truthiness rule (§4.3): only the
// Bool value true is truthy. Everything else — 0, "", nil, false, every
// object — is false.
func IsTruthy(v Value) bool {
	return v.Kind == BoolKind && v.Bool
}

// TypeName names a Value's dynamic type for diagnostics.
func TypeName(v Value) string {
	switch v.Kind {
	case NumberKind:
		return "number"
	case BoolKind:
		return "bool"
	case NilKind:
		return "nil"
	case ObjKind:
		return v.Obj.Kind().String()
	}
	return "unknown"
}

// Equal implements §4.4's cross-kind equality rule: Numbers compare by
// bitwise float equality, Bools by value, Nil only equals Nil, Strings by
// content, every other Object kind by identity. Mixed kinds are never
// equal.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case NumberKind:
		return a.Num == b.Num
	case BoolKind:
		return a.Bool == b.Bool
	case NilKind:
		return true
	case ObjKind:
		if a.Obj.Kind() != b.Obj.Kind() {
			return false
		}
		if as, ok := a.Obj.(*String); ok {
			bs := b.Obj.(*String)
			return as.Value == bs.Value
		}
		return a.Obj == b.Obj
	}
	return false
}

// Render produces the textual rendering used by show/print and string.string
// (§4.9, §C). Arrays and maps render bracketed/braced in insertion order,
// recursively.
func Render(v Value) string {
	switch v.Kind {
	case NumberKind:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case BoolKind:
		if v.Bool {
			return "true"
		}
		return "false"
	case NilKind:
		return "nil"
	case ObjKind:
		return v.Obj.Render()
	}
	return ""
}

// ObjectKind tags the heap-allocated Object variants.
type ObjectKind int

const (
	KString ObjectKind = iota
	KArray
	KMap
	KFunction
	KNativeFunction
	KUpvalue
	KError
)

func (k ObjectKind) String() string {
	switch k {
	case KString:
		return "string"
	case KArray:
		return "array"
	case KMap:
		return "map"
	case KFunction:
		return "function"
	case KNativeFunction:
		return "native function"
	case KUpvalue:
		return "upvalue"
	case KError:
		return "error"
	}
	return "object"
}

// Header carries the bookkeeping every heap Object needs for mark-and-sweep
// collection: a mark bit and the intrusive next-pointer chaining every
// allocation into the GC's single object list (§4.6).
type Header struct {
	Marked bool
	Next   Object
}

func (h *Header) GCHeader() *Header { return h }

// Object is a heap-allocated record owned by the garbage collector. Walk
// invokes visit once per Value the object directly references, letting the
// collector mark an object's structural children without importing the
// concrete kind.
type Object interface {
	Kind() ObjectKind
	Render() string
	Walk(visit func(Value))
	GCHeader() *Header
}

// String is a UTF-8 string object. Hash caches a 64-bit digest (seeded by a
// per-process timestamp via the environment's hashing scheme, §4.5). Map
// does not use this digest: it keys entries by HashKey's string encoding.
type String struct {
	Header
	Value string
	hash  uint64
	hashd bool
}

func NewString(s string) *String { return &String{Value: s} }

func (s *String) Kind() ObjectKind    { return KString }
func (s *String) Render() string      { return s.Value }
func (s *String) Walk(func(Value))    {}
func (s *String) Hash() uint64 {
	if !s.hashd {
		s.hash = lexer.Hash(s.Value)
		s.hashd = true
	}
	return s.hash
}

// Array is a mutable, ordered, heterogeneous collection.
type Array struct {
	Header
	Elements []Value
}

func NewArray(elems []Value) *Array { return &Array{Elements: elems} }

func (a *Array) Kind() ObjectKind { return KArray }
func (a *Array) Render() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = Render(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (a *Array) Walk(visit func(Value)) {
	for _, e := range a.Elements {
		visit(e)
	}
}

// Map is an insertion-ordered dictionary keyed by any hashable Value.
// Pairs is indexed by the canonical string encoding HashKey computes;
// KeyValues retains the original key Value (in the same order as Keys) so
// operations like map.keys can reconstruct the original typed key instead
// of just its encoding.
type Map struct {
	Header
	Keys      []string
	KeyValues []Value
	Pairs     map[string]Value
}

func NewMap() *Map {
	return &Map{Pairs: make(map[string]Value)}
}

func (m *Map) Kind() ObjectKind { return KMap }
func (m *Map) Render() string {
	parts := make([]string, len(m.Keys))
	for i, k := range m.Keys {
		parts[i] = Render(m.KeyValues[i]) + ": " + Render(m.Pairs[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (m *Map) Walk(visit func(Value)) {
	for i, k := range m.Keys {
		visit(m.KeyValues[i])
		visit(m.Pairs[k])
	}
}

// Set inserts or updates keyValue with value, tracking insertion order for
// new keys (duplicate keys in a map literal retain the last binding, §4.4).
// Mirrors the Environment's Put semantics for map literals/append.
func (m *Map) Set(keyValue Value, value Value) error {
	key, err := HashKey(keyValue)
	if err != nil {
		return err
	}
	if _, exists := m.Pairs[key]; !exists {
		m.Keys = append(m.Keys, key)
		m.KeyValues = append(m.KeyValues, keyValue)
	}
	m.Pairs[key] = value
	return nil
}

// HashKey returns the canonical string key for a hashable Value (Number,
// Bool, Nil, String) or an error naming it unhashable (§7).
func HashKey(v Value) (string, error) {
	switch v.Kind {
	case NumberKind:
		return "n:" + strconv.FormatFloat(v.Num, 'g', -1, 64), nil
	case BoolKind:
		return "b:" + strconv.FormatBool(v.Bool), nil
	case NilKind:
		return "nil", nil
	case ObjKind:
		if s, ok := v.Obj.(*String); ok {
			return "s:" + s.Value, nil
		}
	}
	return "", fmt.Errorf("unhashable map key of type %s", TypeName(v))
}

// Upvalue is the indirection cell a closure captures: reading or writing a
// promoted binding always goes through Slot, so the enclosing scope and
// every closure sharing the upvalue observe the same value (§4.5, §9).
type Upvalue struct {
	Header
	Slot Value
}

func NewUpvalue(initial Value) *Upvalue { return &Upvalue{Slot: initial} }

func (u *Upvalue) Kind() ObjectKind { return KUpvalue }
func (u *Upvalue) Render() string   { return Render(u.Slot) }
func (u *Upvalue) Walk(visit func(Value)) {
	visit(u.Slot)
}

// Error is the in-band value a native function returns to signal failure;
// the call site converts it into a runtime error (§4.4, §7).
type Error struct {
	Header
	Message string
}

func NewError(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Kind() ObjectKind { return KError }
func (e *Error) Render() string   { return e.Message }
func (e *Error) Walk(func(Value)) {}

// GraphemeClusters splits s into its extended grapheme clusters, so a
// multi-codepoint glyph counts and indexes as one character (§4.9: `len`,
// `string.index`).
func GraphemeClusters(s string) []string {
	var clusters []string
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}

// GraphemeCount reports s's grapheme-cluster length.
func GraphemeCount(s string) int {
	count := 0
	state := -1
	for len(s) > 0 {
		_, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		count++
	}
	return count
}

// Deref transparently unwraps an Upvalue indirection, as required of every
// Environment read (§4.5).
func Deref(v Value) Value {
	if v.Kind == ObjKind {
		if up, ok := v.Obj.(*Upvalue); ok {
			return up.Slot
		}
	}
	return v
}
