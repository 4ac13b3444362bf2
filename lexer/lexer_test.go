package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokenTypes(res Result) []TokenType {
	types := make([]TokenType, len(res.Tokens))
	for i, tok := range res.Tokens {
		types[i] = tok.Type
	}
	return types
}

func TestTokenizeOperators(t *testing.T) {
	cases := []struct {
		Input    string
		Expected []TokenType
	}{
		{"==", []TokenType{EQ, EOF}},
		{"!=", []TokenType{NEQ, EOF}},
		{"<=", []TokenType{LTE, EOF}},
		{">=", []TokenType{GTE, EOF}},
		{"**", []TokenType{POWER, EOF}},
		{"= < > ! + - * / % ; : ( ) { } [ ] , .", []TokenType{
			ASSIGN, LT, GT, BANG, PLUS, MINUS, STAR, SLASH, PERCENT, SEMI, COLON,
			LPAREN, RPAREN, LBRACE, RBRACE, LBRACKET, RBRACKET, COMMA, DOT, EOF,
		}},
	}
	for _, c := range cases {
		t.Run(c.Input, func(t *testing.T) {
			res := Tokenize([]byte(c.Input))
			assert.Empty(t, res.Errors)
			assert.Equal(t, c.Expected, tokenTypes(res))
		})
	}
}

func TestTokenizeKeywordAliases(t *testing.T) {
	cases := []struct {
		Input    string
		Expected TokenType
	}{
		{"let", LET}, {"dhori", LET}, {"ধরি", LET},
		{"and", AND}, {"ebong", AND}, {"এবং", AND},
		{"or", OR}, {"ba", OR}, {"বা", OR},
		{"if", IF}, {"jodi", IF}, {"যদি", IF},
		{"while", WHILE}, {"jotokhon", WHILE}, {"যতক্ষণ", WHILE},
		{"func", FUNC}, {"kaj", FUNC}, {"কাজ", FUNC},
		{"true", TRUE}, {"sotti", TRUE}, {"সত্যি", TRUE},
	}
	for _, c := range cases {
		t.Run(c.Input, func(t *testing.T) {
			res := Tokenize([]byte(c.Input))
			assert.Equal(t, []TokenType{c.Expected, EOF}, tokenTypes(res))
		})
	}
}

func TestTokenizeIdentifierIsNotKeywordPrefix(t *testing.T) {
	res := Tokenize([]byte("letter"))
	assert.Equal(t, []TokenType{IDENT, EOF}, tokenTypes(res))
	assert.Equal(t, "letter", res.Tokens[0].Lexeme)
}

func TestTokenizeBengaliIdentifier(t *testing.T) {
	res := Tokenize([]byte("নাম"))
	assert.Empty(t, res.Errors)
	assert.Equal(t, []TokenType{IDENT, EOF}, tokenTypes(res))
	assert.Equal(t, "নাম", res.Tokens[0].Lexeme)
}

func TestTokenizeNumberDigitsInterchangeable(t *testing.T) {
	cases := []struct {
		Input    string
		Expected string
	}{
		{"123", "123"},
		{"১২৩", "১২৩"},
		{"3.14", "3.14"},
	}
	for _, c := range cases {
		t.Run(c.Input, func(t *testing.T) {
			res := Tokenize([]byte(c.Input))
			assert.Empty(t, res.Errors)
			assert.Equal(t, NUMBER, res.Tokens[0].Type)
			assert.Equal(t, c.Expected, res.Tokens[0].Lexeme)
		})
	}
}

func TestTokenizeStringLiteralPreservesEscapesVerbatim(t *testing.T) {
	res := Tokenize([]byte(`"a\nb"`))
	assert.Empty(t, res.Errors)
	assert.Equal(t, STRING, res.Tokens[0].Type)
	assert.Equal(t, `a\nb`, res.Tokens[0].Lexeme)
}

func TestTokenizeUnterminatedStringIsLexError(t *testing.T) {
	res := Tokenize([]byte(`"unterminated`))
	assert.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0].Message, "unterminated string")
}

func TestTokenizeUnknownCharacterRecovers(t *testing.T) {
	res := Tokenize([]byte("1 @ 2"))
	assert.Len(t, res.Errors, 1)
	assert.Equal(t, []TokenType{NUMBER, NUMBER, EOF}, tokenTypes(res))
}

func TestTokenizeAlwaysTerminatesWithSingleEOF(t *testing.T) {
	res := Tokenize([]byte("let x = 1 + 2"))
	assert.Equal(t, EOF, res.Tokens[len(res.Tokens)-1].Type)
	eofCount := 0
	for _, tok := range res.Tokens {
		if tok.Type == EOF {
			eofCount++
		}
	}
	assert.Equal(t, 1, eofCount)
}

func TestTokenizeLineAndColumnTracking(t *testing.T) {
	res := Tokenize([]byte("let x\nlet y"))
	assert.Equal(t, 1, res.Tokens[0].Line)
	// second "let" is on line 2
	var secondLet Token
	count := 0
	for _, tok := range res.Tokens {
		if tok.Type == LET {
			count++
			if count == 2 {
				secondLet = tok
			}
		}
	}
	assert.Equal(t, 2, secondLet.Line)
}
