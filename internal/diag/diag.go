/*
File    : bhasha/internal/diag/diag.go
*/

// Package diag renders the §6.6 diagnostic format
// (`[Line <n>] [Col <c>] <phase>: <message>`), coloring the whole line by
// severity when stdout/stderr is a terminal. Modeled on the teacher's
// redColor/yellowColor/cyanColor convention in main/main.go: one
// package-level *color.Color per severity, used directly rather than
// wrapped in extra abstraction.
package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	errorColor  = color.New(color.FgRed)
	resultColor = color.New(color.FgYellow)
	infoColor   = color.New(color.FgCyan)
)

// Diagnostic is one error in the §6.6 shape. Callers build it from the
// position and message fields of an error such as the lexer's LexError;
// already-formatted strings go through PrintErrorString instead.
type Diagnostic struct {
	Line    int
	Column  int
	Phase   string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[Line %d] [Col %d] %s: %s", d.Line, d.Column, d.Phase, d.Message)
}

// PrintError writes one diagnostic line to w in red.
func PrintError(w io.Writer, d Diagnostic) {
	errorColor.Fprintln(w, d.String())
}

// PrintErrorString writes a pre-formatted diagnostic (already in §6.6
// shape, e.g. from a RuntimeError's Error()) to w in red.
func PrintErrorString(w io.Writer, msg string) {
	errorColor.Fprintln(w, msg)
}

// PrintResult writes a successful result value to w in yellow.
func PrintResult(w io.Writer, value string) {
	resultColor.Fprintln(w, value)
}

// PrintInfo writes an informational line (banners, help text) to w in cyan.
func PrintInfo(w io.Writer, msg string) {
	infoColor.Fprintln(w, msg)
}
