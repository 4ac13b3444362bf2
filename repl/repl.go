/*
File    : bhasha/repl/repl.go
*/

// Package repl implements the Read-Eval-Print Loop for the interpreter. The
// REPL provides an interactive environment where users can:
// - Enter source line by line
// - See immediate results of their code execution
// - Navigate command history using arrow keys
// - Receive colored feedback for different types of output
//
// The REPL uses the readline library for enhanced line editing capabilities
// and is a thin wrapper around the same Lexer -> Parser -> Interpreter
// pipeline the file driver uses; it adds no language semantics of its own
// beyond echoing a bare top-level expression's value (SPEC_FULL §A.3, §C).
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/ishanroy/bhasha/eval"
	"github.com/ishanroy/bhasha/lexer"
	"github.com/ishanroy/bhasha/objects"
	"github.com/ishanroy/bhasha/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the banner/version information shown at session start.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main REPL loop, sharing one Interpreter (and therefore one
// global environment) across every line so `let`/`func` bindings persist
// between inputs.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	interp := eval.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, interp)
	}
}

// executeWithRecovery parses and evaluates one line, recovering from any
// panic so a single bad input never kills the session. Unlike file
// execution, a bare top-level expression statement echoes its value
// (SPEC_FULL §A.3/§C).
func (r *Repl) executeWithRecovery(writer io.Writer, line string, interp *eval.Interpreter) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	lexed := lexer.Tokenize([]byte(line))
	for _, e := range lexed.Errors {
		redColor.Fprintf(writer, "[Line %d] [Col %d] lex: %s\n", e.Line, e.Column, e.Message)
	}

	p := parser.New(lexed.Tokens)
	prog := p.Parse()
	if p.HasErrors() {
		for _, d := range p.Diagnostics() {
			redColor.Fprintf(writer, "%s\n", d)
		}
		return
	}

	echo := len(prog.Statements) > 0
	if echo {
		_, echo = prog.Statements[len(prog.Statements)-1].(*parser.ExprStmt)
	}

	v, err := interp.Run(prog)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
		return
	}
	if echo {
		yellowColor.Fprintf(writer, "%s\n", objects.Render(v))
	}
}
