package lexer

import (
	"testing"

	"github.com/golox/golox/internal/token"
	"github.com/stretchr/testify/assert"
)

func typesOf(tokens []token.Token) []token.Type {
	types := make([]token.Type, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestScanTokensOperatorsAndPunctuation(t *testing.T) {
	l := New(`( ) { } , . - + ; % / * ** ! != = == < <= > >=`)
	got := typesOf(l.ScanTokens())
	want := []token.Type{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON,
		token.PERCENT, token.SLASH, token.STAR, token.STAR_STAR,
		token.BANG, token.BANG_EQUAL, token.EQUAL, token.EQUAL_EQUAL,
		token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL,
		token.EOF,
	}
	assert.Equal(t, want, got)
	assert.Empty(t, l.Errors())
}

func TestScanTokensKeywordsAndIdentifiers(t *testing.T) {
	l := New(`and class else false for fun if nil or print return super this true var while continue break delete static myVar`)
	got := typesOf(l.ScanTokens())
	want := []token.Type{
		token.AND, token.CLASS, token.ELSE, token.FALSE, token.FOR, token.FUN,
		token.IF, token.NIL, token.OR, token.PRINT, token.RETURN, token.SUPER,
		token.THIS, token.TRUE, token.VAR, token.WHILE, token.CONTINUE,
		token.BREAK, token.DELETE, token.STATIC, token.IDENTIFIER, token.EOF,
	}
	assert.Equal(t, want, got)
}

func TestScanNumberLiteral(t *testing.T) {
	l := New(`3.14`)
	tokens := l.ScanTokens()
	assert.Equal(t, token.NUMBER, tokens[0].Type)
	assert.Equal(t, 3.14, tokens[0].Literal)
	assert.Equal(t, "3.14", tokens[0].Lexeme)
}

func TestScanIntegerWithoutFractionalPart(t *testing.T) {
	l := New(`42`)
	tokens := l.ScanTokens()
	assert.Equal(t, 42.0, tokens[0].Literal)
}

func TestScanStringLiteral(t *testing.T) {
	l := New(`"hello world"`)
	tokens := l.ScanTokens()
	assert.Equal(t, token.STRING, tokens[0].Type)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestScanUnterminatedStringIsRecordedAsError(t *testing.T) {
	l := New(`"unterminated`)
	l.ScanTokens()
	assert.Len(t, l.Errors(), 1)
	assert.Contains(t, l.Errors()[0].Message, "Unterminated string")
}

func TestScanContinuesAfterIllegalCharacter(t *testing.T) {
	l := New("1 @ 2")
	tokens := l.ScanTokens()
	assert.Len(t, l.Errors(), 1)
	// Scanning continues past the illegal character: both numbers appear.
	types := typesOf(tokens)
	assert.Equal(t, []token.Type{token.NUMBER, token.ILLEGAL, token.NUMBER, token.EOF}, types)
	assert.Equal(t, token.EOF, types[len(types)-1])
}

func TestScanLineComment(t *testing.T) {
	l := New("1 // a comment\n2")
	tokens := l.ScanTokens()
	assert.Equal(t, 2, len(tokens)-1) // two numbers plus EOF
	assert.Equal(t, 1.0, tokens[0].Literal)
	assert.Equal(t, 2.0, tokens[1].Literal)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanTracksLineNumberAcrossNewlines(t *testing.T) {
	l := New("1\n2\n3")
	tokens := l.ScanTokens()
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 3, tokens[2].Line)
}
