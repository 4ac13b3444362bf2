/*
File    : bhasha/cmd/bhasha/main.go
*/

// Package main is the entry point for the bhasha interpreter.
// It provides two modes of operation:
// 1. REPL Mode (default): Interactive Read-Eval-Print Loop for live coding
// 2. File Mode: Execute bhasha source files from the command line
//
// The interpreter uses a lexer-parser-evaluator pipeline to process bhasha
// code (§2, §6.5).
package main

import (
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/ishanroy/bhasha/eval"
	"github.com/ishanroy/bhasha/internal/config"
	"github.com/ishanroy/bhasha/internal/diag"
	"github.com/ishanroy/bhasha/lexer"
	"github.com/ishanroy/bhasha/parser"
	"github.com/ishanroy/bhasha/repl"
)

var VERSION = "v0.1.0"
var AUTHOR = "ishanroy"
var LICENCE = "MIT"
var PROMPT = "bhasha >>> "

var BANNER = `
  _     _                 _
 | |__ | |__   __ _ ___ | |__   __ _
 | '_ \| '_ \ / _' / __|| '_ \ / _' |
 | |_) | | | | (_| \__ \| | | | (_| |
 |_.__/|_| |_|\__,_|___/|_| |_|\__,_|
`

var LINE = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// bomBytes is the UTF-8 byte-order mark stripped from a loaded script
// (§2, §6.5).
var bomBytes = []byte{0xEF, 0xBB, 0xBF}

func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		switch arg {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		case "server":
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for server mode. Usage: bhasha server <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		}

		os.Exit(runFile(arg))
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("bhasha - a Unicode-first scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	cyanColor.Println("  bhasha                    Start interactive REPL mode")
	cyanColor.Println("  bhasha <path-to-file>     Execute a bhasha script")
	cyanColor.Println("  bhasha server <port>      Start REPL server on specified port")
	cyanColor.Println("  bhasha --help             Display this help message")
	cyanColor.Println("  bhasha --version          Display version information")
}

func showVersion() {
	cyanColor.Printf("bhasha %s (%s)\n", VERSION, LICENCE)
}

// runFile loads the config (if any), runs the named script end-to-end
// through Lexer -> Parser -> Interpreter, prints every diagnostic
// encountered, and returns the process exit code (§6.5): 0 on success,
// non-zero on any lexer/parser/runtime error.
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file '%s': %v\n", path, err)
		return 1
	}
	source = stripBOM(source)

	cfg, err := config.Load("bhasha.yaml")
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
		return 1
	}

	lexed := lexer.Tokenize(source)
	ok := true
	for _, e := range lexed.Errors {
		diag.PrintErrorString(os.Stderr, diag.Diagnostic{Line: e.Line, Column: e.Column, Phase: "lex", Message: e.Message}.String())
		ok = false
	}

	p := parser.New(lexed.Tokens)
	prog := p.Parse()
	if p.HasErrors() {
		for _, d := range p.Diagnostics() {
			diag.PrintErrorString(os.Stderr, d)
		}
		ok = false
	}
	if !ok {
		return 1
	}

	interp := eval.NewWithLimits(cfg.MaxCallDepth, cfg.GCThreshold, cfg.GCGrowth)
	interp.SetStress(cfg.GCStress)

	if _, err := interp.Run(prog); err != nil {
		diag.PrintErrorString(os.Stderr, err.Error())
		return 1
	}
	return 0
}

func stripBOM(src []byte) []byte {
	if len(src) >= 3 && src[0] == bomBytes[0] && src[1] == bomBytes[1] && src[2] == bomBytes[2] {
		return src[3:]
	}
	return src
}

func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("bhasha REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("new client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
