/*
File    : bhasha/eval/result.go
*/
package eval

import "github.com/ishanroy/bhasha/objects"

// resultKind tags how a statement finished: normally, via `break`, or via
// `return` (§4.3). Block and loop bodies inspect this to decide whether to
// keep going or unwind.
type resultKind int

const (
	resSimple resultKind = iota
	resBreak
	resReturn
)

type result struct {
	kind  resultKind
	value objects.Value
}

func simple(v objects.Value) result { return result{kind: resSimple, value: v} }

var breakResult = result{kind: resBreak}

func returnResult(v objects.Value) result { return result{kind: resReturn, value: v} }
