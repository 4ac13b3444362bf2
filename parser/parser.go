/*
File    : bhasha/parser/parser.go
*/
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ishanroy/bhasha/lexer"
)

// ParseError is one parser-phase diagnostic (§6.6, §7).
type ParseError struct {
	Line    int
	Column  int
	Message string
}

// Parser recursive-descent parses the precedence cascade of §4.2 with a
// two-token lookahead, collecting errors instead of panicking so a single
// parse can report more than one mistake.
type Parser struct {
	tokens []lexer.Token
	pos    int

	Errors []ParseError
}

// New creates a Parser over an already-lexed, EOF-terminated token stream
// and positions it at the first token. Nothing is parsed until Parse is
// called; lexical errors stay with the lexer's Result.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) cur() lexer.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(n int) lexer.Token {
	idx := p.pos + n
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) advance() lexer.Token {
	tok := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) check(t lexer.TokenType) bool {
	return p.cur().Type == t
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) expect(t lexer.TokenType, context string) (lexer.Token, bool) {
	if p.check(t) {
		return p.advance(), true
	}
	p.errorf(p.cur(), "expected %s %s, got %s", t, context, p.cur().Type)
	return p.cur(), false
}

func (p *Parser) errorf(at lexer.Token, format string, args ...interface{}) {
	p.Errors = append(p.Errors, ParseError{Line: at.Line, Column: at.Column, Message: fmt.Sprintf(format, args...)})
}

func (p *Parser) HasErrors() bool { return len(p.Errors) > 0 }

func (p *Parser) Diagnostics() []string {
	out := make([]string, len(p.Errors))
	for i, e := range p.Errors {
		out[i] = fmt.Sprintf("[Line %d] [Col %d] parse: %s", e.Line, e.Column, e.Message)
	}
	return out
}

// statementStart names the tokens the error-recovery synchronizer stops
// at (§4.2 "Error recovery").
var statementStart = map[lexer.TokenType]bool{
	lexer.FUNC: true, lexer.LET: true, lexer.WHILE: true, lexer.IF: true,
	lexer.RETURN: true, lexer.IMPORT: true, lexer.PRINTKEY: true,
}

// synchronize discards tokens until a ';' is consumed or a statement-start
// keyword is the current token, so one parse error doesn't cascade.
func (p *Parser) synchronize() {
	for !p.check(lexer.EOF) {
		if p.cur().Type == lexer.SEMI {
			p.advance()
			return
		}
		if statementStart[p.cur().Type] {
			return
		}
		p.advance()
	}
}

// Parse consumes the whole token stream and returns the statement list
// (§4.2's `program := statement*`).
func (p *Parser) Parse() *Program {
	prog := &Program{}
	for {
		p.skipSemicolons()
		if p.check(lexer.EOF) {
			break
		}
		before := p.pos
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		if p.pos == before {
			// Safety net: parseStatement must always consume something on
			// a well-formed or recovered path; if it didn't, force progress.
			p.advance()
		}
	}
	return prog
}

// skipSemicolons consumes any number of optional ';' statement separators.
// §4.2's grammar never requires one — it only appears as a synchronization
// point during error recovery — so a ';' between statements is a no-op.
func (p *Parser) skipSemicolons() {
	for p.check(lexer.SEMI) {
		p.advance()
	}
}

func (p *Parser) parseStatement() Stmt {
	p.skipSemicolons()
	switch p.cur().Type {
	case lexer.LET:
		return p.parseLetStatement()
	case lexer.FUNC:
		return p.parseFuncStatement()
	case lexer.IF:
		return p.parseIfStatement()
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.BREAK:
		tok := p.advance()
		return &BreakStmt{base: base{tok}}
	case lexer.IMPORT:
		return p.parseImportStatement()
	case lexer.PRINTKEY:
		return p.parsePrintStatement()
	default:
		return p.parseExprStatement()
	}
}

func (p *Parser) parseLetStatement() Stmt {
	tok := p.advance() // 'let'
	name, ok := p.expect(lexer.IDENT, "after 'let'")
	if !ok {
		p.synchronize()
		return nil
	}
	var init Expr
	if p.match(lexer.ASSIGN) {
		init = p.parseExpression()
	}
	return &LetStmt{base: base{tok}, Name: name, Initializer: init}
}

func (p *Parser) parseFuncStatement() Stmt {
	tok := p.advance() // 'func'
	name, ok := p.expect(lexer.IDENT, "as function name")
	if !ok {
		p.synchronize()
		return nil
	}
	if _, ok := p.expect(lexer.LPAREN, "after function name"); !ok {
		p.synchronize()
		return nil
	}
	var params []lexer.Token
	if !p.check(lexer.RPAREN) {
		for {
			param, ok := p.expect(lexer.IDENT, "as parameter name")
			if !ok {
				break
			}
			params = append(params, param)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.expect(lexer.RPAREN, "to close parameter list")
	body := p.parseBlockUntil(lexer.END)
	p.expect(lexer.END, "to close function body")
	return &FuncStmt{base: base{tok}, Name: name, Params: params, Body: body}
}

func (p *Parser) parseIfStatement() Stmt {
	tok := p.advance() // 'if'
	cond := p.parseExpression()
	p.expect(lexer.THEN, "after if condition")
	thenBody := p.parseBlockUntil(lexer.ELSE, lexer.END)
	var elseStmt Stmt
	if p.match(lexer.ELSE) {
		elseBody := p.parseBlockUntil(lexer.END)
		elseStmt = elseBody
	}
	p.expect(lexer.END, "to close if statement")
	return &IfStmt{base: base{tok}, Condition: cond, Then: thenBody, Else: elseStmt}
}

func (p *Parser) parseWhileStatement() Stmt {
	tok := p.advance() // 'while'
	cond := p.parseExpression()
	p.expect(lexer.DO, "after while condition")
	body := p.parseBlockUntil(lexer.END)
	p.expect(lexer.END, "to close while statement")
	return &WhileStmt{base: base{tok}, Condition: cond, Body: body}
}

func (p *Parser) parseReturnStatement() Stmt {
	tok := p.advance() // 'return'
	var value Expr
	if !p.atStatementBoundary() {
		value = p.parseExpression()
	}
	return &ReturnStmt{base: base{tok}, Value: value}
}

func (p *Parser) parseImportStatement() Stmt {
	tok := p.advance() // 'import'
	local, ok := p.expect(lexer.IDENT, "as import local name")
	if !ok {
		p.synchronize()
		return nil
	}
	p.expect(lexer.ASSIGN, "after import name")
	path := p.parseExpression()
	return &ImportStmt{base: base{tok}, LocalName: local, Path: path}
}

func (p *Parser) parsePrintStatement() Stmt {
	tok := p.advance() // 'print'
	expr := p.parseExpression()
	return &PrintStmt{base: base{tok}, Expression: expr}
}

func (p *Parser) parseExprStatement() Stmt {
	tok := p.cur()
	expr := p.parseExpression()
	return &ExprStmt{base: base{tok}, Expression: expr}
}

// atStatementBoundary reports whether the current token could not possibly
// start an expression — used to detect a bare `return` with no value.
func (p *Parser) atStatementBoundary() bool {
	switch p.cur().Type {
	case lexer.END, lexer.ELSE, lexer.EOF, lexer.SEMI:
		return true
	}
	return statementStart[p.cur().Type]
}

// parseBlockUntil parses statements until the current token is one of
// terminators (not consumed), building a BlockStmt.
func (p *Parser) parseBlockUntil(terminators ...lexer.TokenType) *BlockStmt {
	tok := p.cur()
	block := &BlockStmt{base: base{tok}}
	for {
		p.skipSemicolons()
		if p.atEOF() || p.isOneOf(terminators...) {
			break
		}
		before := p.pos
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		if p.pos == before {
			p.advance()
		}
	}
	return block
}

func (p *Parser) atEOF() bool { return p.check(lexer.EOF) }

func (p *Parser) isOneOf(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			return true
		}
	}
	return false
}

// --- Expression parsing: assignment -> logic_or -> logic_and -> equality
// -> comparison -> term -> factor -> unary -> power -> primary (§4.2) ---

func (p *Parser) parseExpression() Expr {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() Expr {
	expr := p.parseLogicOr()
	if p.check(lexer.ASSIGN) {
		eq := p.advance()
		value := p.parseAssignment() // right-associative
		switch expr.(type) {
		case *VariableExpr, *SubscriptExpr:
			return &AssignExpr{base: base{eq}, Target: expr, Value: value}
		default:
			p.errorf(eq, "invalid assignment target")
			return expr
		}
	}
	return expr
}

func (p *Parser) parseLogicOr() Expr {
	expr := p.parseLogicAnd()
	for p.check(lexer.OR) {
		op := p.advance()
		right := p.parseLogicAnd()
		expr = &LogicalExpr{base: base{op}, Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) parseLogicAnd() Expr {
	expr := p.parseEquality()
	for p.check(lexer.AND) {
		op := p.advance()
		right := p.parseEquality()
		expr = &LogicalExpr{base: base{op}, Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) parseEquality() Expr {
	expr := p.parseComparison()
	for p.isOneOf(lexer.EQ, lexer.NEQ) {
		op := p.advance()
		right := p.parseComparison()
		expr = &BinaryExpr{base: base{op}, Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) parseComparison() Expr {
	expr := p.parseTerm()
	for p.isOneOf(lexer.LT, lexer.LTE, lexer.GT, lexer.GTE) {
		op := p.advance()
		right := p.parseTerm()
		expr = &BinaryExpr{base: base{op}, Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) parseTerm() Expr {
	expr := p.parseFactor()
	for p.isOneOf(lexer.PLUS, lexer.MINUS) {
		op := p.advance()
		right := p.parseFactor()
		expr = &BinaryExpr{base: base{op}, Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) parseFactor() Expr {
	expr := p.parseUnary()
	for p.isOneOf(lexer.STAR, lexer.SLASH, lexer.PERCENT) {
		op := p.advance()
		right := p.parseUnary()
		expr = &BinaryExpr{base: base{op}, Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) parseUnary() Expr {
	if p.isOneOf(lexer.BANG, lexer.MINUS) {
		op := p.advance()
		right := p.parseUnary()
		return &UnaryExpr{base: base{op}, Operator: op, Right: right}
	}
	return p.parsePower()
}

func (p *Parser) parsePower() Expr {
	expr := p.parsePostfix(p.parsePrimary())
	if p.check(lexer.POWER) {
		op := p.advance()
		right := p.parseUnary() // right-associative, binds tighter than nothing below it
		return &BinaryExpr{base: base{op}, Left: expr, Operator: op, Right: right}
	}
	return expr
}

// parsePostfix folds Call/Subscript/ModGet left-to-right over a primary
// expression (§4.2: "Call/Subscript/ModGet are parsed as a left-folded
// postfix loop over primary").
func (p *Parser) parsePostfix(expr Expr) Expr {
	for {
		switch {
		case p.check(lexer.LPAREN):
			paren := p.advance()
			var args []Expr
			if !p.check(lexer.RPAREN) {
				for {
					args = append(args, p.parseExpression())
					if !p.match(lexer.COMMA) {
						break
					}
				}
			}
			p.expect(lexer.RPAREN, "to close call arguments")
			expr = &CallExpr{base: base{paren}, Callee: expr, Args: args, Paren: paren}
		case p.check(lexer.LBRACKET):
			open := p.advance()
			idx := p.parseExpression()
			p.expect(lexer.RBRACKET, "to close subscript")
			expr = &SubscriptExpr{base: base{open}, Collection: expr, Index: idx}
		case p.check(lexer.DOT):
			dot := p.advance()
			child, ok := p.expect(lexer.IDENT, "after '.'")
			if !ok {
				return expr
			}
			if _, isVar := expr.(*VariableExpr); !isVar {
				p.errorf(dot, "module field access requires a variable on the left of '.'")
			}
			expr = &ModGetExpr{base: base{dot}, Module: expr, Child: child}
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() Expr {
	tok := p.cur()
	switch tok.Type {
	case lexer.NUMBER:
		p.advance()
		return &LiteralExpr{base: base{tok}, Kind: LitNumber, Number: parseNumberLexeme(tok.Lexeme)}
	case lexer.STRING:
		p.advance()
		value, escErr := ProcessStringEscape(tok.Lexeme)
		if escErr != nil {
			p.errorf(tok, "%s", escErr.Error())
		}
		return &LiteralExpr{base: base{tok}, Kind: LitString, Str: value}
	case lexer.TRUE:
		p.advance()
		return &LiteralExpr{base: base{tok}, Kind: LitBool, Bool: true}
	case lexer.FALSE:
		p.advance()
		return &LiteralExpr{base: base{tok}, Kind: LitBool, Bool: false}
	case lexer.NIL:
		p.advance()
		return &LiteralExpr{base: base{tok}, Kind: LitNil}
	case lexer.IDENT:
		p.advance()
		return &VariableExpr{base: base{tok}, Name: tok.Lexeme}
	case lexer.LPAREN:
		p.advance()
		inner := p.parseExpression()
		p.expect(lexer.RPAREN, "to close grouping")
		return &GroupingExpr{base: base{tok}, Inner: inner}
	case lexer.LBRACKET:
		p.advance()
		var items []Expr
		if !p.check(lexer.RBRACKET) {
			for {
				items = append(items, p.parseExpression())
				if !p.match(lexer.COMMA) {
					break
				}
			}
		}
		p.expect(lexer.RBRACKET, "to close array literal")
		return &ArrayExpr{base: base{tok}, Items: items}
	case lexer.LBRACE:
		p.advance()
		var keys, values []Expr
		if !p.check(lexer.RBRACE) {
			for {
				k := p.parseExpression()
				p.expect(lexer.COLON, "after map key")
				v := p.parseExpression()
				keys = append(keys, k)
				values = append(values, v)
				if !p.match(lexer.COMMA) {
					break
				}
			}
		}
		p.expect(lexer.RBRACE, "to close map literal")
		return &MapExpr{base: base{tok}, Keys: keys, Values: values}
	default:
		p.errorf(tok, "unexpected token %s", tok.Type)
		p.advance()
		return &LiteralExpr{base: base{tok}, Kind: LitNil}
	}
}

// parseNumberLexeme translates Bengali digits to ASCII digit-by-digit and
// parses the result as a float64 (§4.1, §4.2).
func parseNumberLexeme(lexeme string) float64 {
	var b strings.Builder
	for _, r := range lexeme {
		if r >= 0x09E6 && r <= 0x09EF {
			b.WriteByte(byte('0' + (r - 0x09E6)))
		} else {
			b.WriteRune(r)
		}
	}
	f, _ := strconv.ParseFloat(b.String(), 64)
	return f
}
