/*
File    : bhasha/parser/node.go
*/

// Package parser recursive-descent parses a token stream into the AST
// defined in this file, per the grammar and literal/escape semantics of
// §4.2. Expr and Stmt are tagged-variant interfaces; each concrete node
// corresponds to one row of §3's Expression/Statement tables.
package parser

import "github.com/ishanroy/bhasha/lexer"

// Node is the common interface every AST node satisfies, carrying the
// token diagnostics are anchored to.
type Node interface {
	Tok() lexer.Token
}

// Expr is any expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any statement node.
type Stmt interface {
	Node
	stmtNode()
}

type base struct {
	Token lexer.Token
}

func (b base) Tok() lexer.Token { return b.Token }

// --- Expressions (§3 Expression node table) ---

// LiteralKind distinguishes the four literal payload kinds.
type LiteralKind int

const (
	LitNumber LiteralKind = iota
	LitBool
	LitString
	LitNil
)

type LiteralExpr struct {
	base
	Kind   LiteralKind
	Number float64
	Bool   bool
	Str    string
}

func (*LiteralExpr) exprNode() {}

type BinaryExpr struct {
	base
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (*BinaryExpr) exprNode() {}

type UnaryExpr struct {
	base
	Operator lexer.Token
	Right    Expr
}

func (*UnaryExpr) exprNode() {}

type GroupingExpr struct {
	base
	Inner Expr
}

func (*GroupingExpr) exprNode() {}

type VariableExpr struct {
	base
	Name string
}

func (*VariableExpr) exprNode() {}

type AssignExpr struct {
	base
	Target Expr
	Value  Expr
}

func (*AssignExpr) exprNode() {}

type LogicalExpr struct {
	base
	Left     Expr
	Operator lexer.Token // AND or OR
	Right    Expr
}

func (*LogicalExpr) exprNode() {}

type CallExpr struct {
	base
	Callee Expr
	Args   []Expr
	Paren  lexer.Token
}

func (*CallExpr) exprNode() {}

type ArrayExpr struct {
	base
	Items []Expr
}

func (*ArrayExpr) exprNode() {}

type MapExpr struct {
	base
	Keys   []Expr
	Values []Expr
}

func (*MapExpr) exprNode() {}

type SubscriptExpr struct {
	base
	Collection Expr
	Index      Expr
}

func (*SubscriptExpr) exprNode() {}

// ModGetExpr is module field access `m.name`; Module must be a
// *VariableExpr (validated in the parser, §4.2).
type ModGetExpr struct {
	base
	Module Expr
	Child  lexer.Token
}

func (*ModGetExpr) exprNode() {}

// --- Statements (§3 Statement node table) ---

type ExprStmt struct {
	base
	Expression Expr
}

func (*ExprStmt) stmtNode() {}

type PrintStmt struct {
	base
	Expression Expr
}

func (*PrintStmt) stmtNode() {}

type LetStmt struct {
	base
	Name        lexer.Token
	Initializer Expr // may be nil, meaning Nil
}

func (*LetStmt) stmtNode() {}

type BlockStmt struct {
	base
	Statements []Stmt
}

func (*BlockStmt) stmtNode() {}

type IfStmt struct {
	base
	Condition Expr
	Then      Stmt
	Else      Stmt // nil if absent
}

func (*IfStmt) stmtNode() {}

type WhileStmt struct {
	base
	Condition Expr
	Body      Stmt
}

func (*WhileStmt) stmtNode() {}

type ReturnStmt struct {
	base
	Value Expr // nil if bare `return`
}

func (*ReturnStmt) stmtNode() {}

type BreakStmt struct {
	base
}

func (*BreakStmt) stmtNode() {}

type FuncStmt struct {
	base
	Name   lexer.Token
	Params []lexer.Token
	Body   *BlockStmt
}

func (*FuncStmt) stmtNode() {}

type ImportStmt struct {
	base
	LocalName lexer.Token
	Path      Expr
}

func (*ImportStmt) stmtNode() {}

// Program is the parser's top-level result: an ordered statement list.
// Parse errors are collected on the Parser (Errors, Diagnostics), not here.
type Program struct {
	Statements []Stmt
}
