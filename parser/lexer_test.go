package parser

import (
	"errors"
	"strings"
	"testing"
)

func TestLexer(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"", []TokenKind{TokenEOF}},
		{"begin", []TokenKind{TokenBegin, TokenEOF}},
		{"begin function end", []TokenKind{TokenBegin, TokenFunction, TokenEnd, TokenEOF}},
		{"123", []TokenKind{TokenIntLiteral, TokenEOF}},
		{"3.14", []TokenKind{TokenFloatLiteral, TokenEOF}},
		{"\"hello\"", []TokenKind{TokenStringLiteral, TokenEOF}},
		{"true false", []TokenKind{TokenTrue, TokenFalse, TokenEOF}},
		{"+ - * / %", []TokenKind{TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenPercent, TokenEOF}},
		{"= != < <= > >=", []TokenKind{TokenEQ, TokenNE, TokenLT, TokenLE, TokenGT, TokenGE, TokenEOF}},
		{"and or not", []TokenKind{TokenAnd, TokenOr, TokenNot, TokenEOF}},
		{"->", []TokenKind{TokenArrow, TokenEOF}},
		{"- >", []TokenKind{TokenMinus, TokenGT, TokenEOF}},
		{"( ) { } [ ] ; , :", []TokenKind{TokenLParen, TokenRParen, TokenLBrace, TokenRBrace, TokenLBracket, TokenRBracket, TokenSemicolon, TokenComma, TokenColon, TokenEOF}},
		{"int float bool string", []TokenKind{TokenInt, TokenFloat, TokenBool, TokenString, TokenEOF}},
		{"for (i goes from 1 to 10)", []TokenKind{TokenFor, TokenLParen, TokenIdent, TokenGoes, TokenFrom, TokenIntLiteral, TokenTo, TokenIntLiteral, TokenRParen, TokenEOF}},
		{"x -> y;", []TokenKind{TokenIdent, TokenArrow, TokenIdent, TokenSemicolon, TokenEOF}},
		{"// comment\nprint", []TokenKind{TokenPrint, TokenEOF}},
		{"forx", []TokenKind{TokenIdent, TokenEOF}},
		{"_tmp1", []TokenKind{TokenIdent, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Scan([]byte(tt.input))
			if err != nil {
				t.Fatalf("Scan: %v", err)
			}
			if len(tokens) != len(tt.expected) {
				t.Fatalf("got %d tokens, want %d", len(tokens), len(tt.expected))
			}
			for i := range tokens {
				if tokens[i].Kind != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, tokens[i].Kind, tt.expected[i])
				}
			}
		})
	}
}

func TestLexerPositions(t *testing.T) {
	tokens, err := Scan([]byte("int x;\nx -> y;"))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	want := []struct {
		lexeme string
		line   int
		col    int
	}{
		{"int", 1, 1},
		{"x", 1, 5},
		{";", 1, 6},
		{"x", 2, 1},
		{"->", 2, 3},
		{"y", 2, 6},
		{";", 2, 7},
	}

	for i, w := range want {
		tok := tokens[i]
		if tok.Lexeme != w.lexeme || tok.Pos.Line != w.line || tok.Pos.Column != w.col {
			t.Errorf("token %d: got %q at %d:%d, want %q at %d:%d",
				i, tok.Lexeme, tok.Pos.Line, tok.Pos.Column, w.lexeme, w.line, w.col)
		}
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1.", "malformed numeric literal"},
		{"1.2.3", "malformed numeric literal"},
		{"@", "unrecognized character"},
		{"!", "unrecognized character"},
		{"\"oops", "unterminated string literal"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Scan([]byte(tt.input))
			if err == nil {
				t.Fatalf("Scan(%q): expected error", tt.input)
			}
			var lexErr *LexError
			if !errors.As(err, &lexErr) {
				t.Fatalf("expected *LexError, got %T", err)
			}
			if got := lexErr.Error(); !strings.Contains(got, tt.want) {
				t.Errorf("error %q does not mention %q", got, tt.want)
			}
		})
	}
}
