package parser

import "fmt"

// Lexer is a single-pass scanner over the raw source bytes. It never
// backtracks; every decision is made with at most two characters of
// lookahead.
type Lexer struct {
	input  []byte
	pos    int
	line   int
	column int
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{
		input:  input,
		pos:    0,
		line:   1,
		column: 1,
	}
}

func (l *Lexer) Position() Position {
	return Position{Line: l.line, Column: l.column}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			l.advance()
			continue
		}
		if ch == '/' && l.peekN(1) == '/' {
			for l.peek() != '\n' && l.pos < len(l.input) {
				l.advance()
			}
			continue
		}
		break
	}
}

func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	startPos := l.Position()

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Pos: startPos}
	}

	ch := l.peek()

	if isLetter(ch) {
		return l.scanIdentOrKeyword(startPos)
	}

	if isDigit(ch) {
		return l.scanNumber(startPos)
	}

	if ch == '"' {
		return l.scanString(startPos)
	}

	return l.scanOperator(startPos)
}

func (l *Lexer) scanIdentOrKeyword(startPos Position) Token {
	start := l.pos
	for isLetter(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}
	lexeme := string(l.input[start:l.pos])
	return Token{Kind: LookupKeyword(lexeme), Lexeme: lexeme, Pos: startPos}
}

func (l *Lexer) scanNumber(startPos Position) Token {
	start := l.pos
	for isDigit(l.peek()) {
		l.advance()
	}

	kind := TokenIntLiteral
	if l.peek() == '.' {
		l.advance()
		if !isDigit(l.peek()) {
			// "1." with nothing after the dot
			return Token{Kind: TokenError, Lexeme: string(l.input[start:l.pos]), Pos: startPos}
		}
		for isDigit(l.peek()) {
			l.advance()
		}
		kind = TokenFloatLiteral
		if l.peek() == '.' {
			l.advance()
			return Token{Kind: TokenError, Lexeme: string(l.input[start:l.pos]), Pos: startPos}
		}
	}

	return Token{Kind: kind, Lexeme: string(l.input[start:l.pos]), Pos: startPos}
}

func (l *Lexer) scanString(startPos Position) Token {
	start := l.pos
	l.advance() // opening quote
	for {
		ch := l.peek()
		if ch == 0 || ch == '\n' {
			return Token{Kind: TokenError, Lexeme: string(l.input[start:l.pos]), Pos: startPos}
		}
		if ch == '\\' {
			l.advance()
			l.advance()
			continue
		}
		if ch == '"' {
			l.advance()
			break
		}
		l.advance()
	}
	return Token{Kind: TokenStringLiteral, Lexeme: string(l.input[start:l.pos]), Pos: startPos}
}

func (l *Lexer) scanOperator(startPos Position) Token {
	ch := l.advance()

	two := func(kind TokenKind, lexeme string) Token {
		l.advance()
		return Token{Kind: kind, Lexeme: lexeme, Pos: startPos}
	}
	one := func(kind TokenKind) Token {
		return Token{Kind: kind, Lexeme: string(ch), Pos: startPos}
	}

	switch ch {
	case '(':
		return one(TokenLParen)
	case ')':
		return one(TokenRParen)
	case '{':
		return one(TokenLBrace)
	case '}':
		return one(TokenRBrace)
	case '[':
		return one(TokenLBracket)
	case ']':
		return one(TokenRBracket)
	case ';':
		return one(TokenSemicolon)
	case ',':
		return one(TokenComma)
	case ':':
		return one(TokenColon)
	case '+':
		return one(TokenPlus)
	case '*':
		return one(TokenStar)
	case '/':
		return one(TokenSlash)
	case '%':
		return one(TokenPercent)
	case '=':
		return one(TokenEQ)
	case '-':
		if l.peek() == '>' {
			return two(TokenArrow, "->")
		}
		return one(TokenMinus)
	case '<':
		if l.peek() == '=' {
			return two(TokenLE, "<=")
		}
		return one(TokenLT)
	case '>':
		if l.peek() == '=' {
			return two(TokenGE, ">=")
		}
		return one(TokenGT)
	case '!':
		if l.peek() == '=' {
			return two(TokenNE, "!=")
		}
		return Token{Kind: TokenError, Lexeme: string(ch), Pos: startPos}
	}

	return Token{Kind: TokenError, Lexeme: string(ch), Pos: startPos}
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Scan tokenizes the whole input. The returned sequence always ends with
// an EOF token. The first lexical error aborts the scan for this input
// unit; no tokens are returned alongside an error.
func Scan(input []byte) ([]Token, error) {
	lexer := NewLexer(input)
	var tokens []Token
	for {
		tok := lexer.NextToken()
		if tok.Kind == TokenError {
			return nil, &LexError{Tok: tok}
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			break
		}
	}
	return tokens, nil
}

// LexError is a lexical error: an unrecognized character, a malformed
// numeric literal, or an unterminated string literal.
type LexError struct {
	Tok Token
}

func (e *LexError) Error() string {
	what := "unrecognized character"
	if len(e.Tok.Lexeme) > 0 {
		switch {
		case isDigit(e.Tok.Lexeme[0]):
			what = "malformed numeric literal"
		case e.Tok.Lexeme[0] == '"':
			what = "unterminated string literal"
		}
	}
	return fmt.Sprintf("%s %q at %d:%d", what, e.Tok.Lexeme, e.Tok.Pos.Line, e.Tok.Pos.Column)
}
