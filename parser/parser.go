package parser

import "fmt"

// ParseError is the parser's single error kind: an expectation about the
// next token was not met. It carries the last token that was successfully
// consumed and the token at the failure site, so callers can render a
// precise diagnostic without re-scanning the input.
type ParseError struct {
	Msg  string
	Last Token
	Got  Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s, got %q at %d:%d (last consumed %q at %d:%d)",
		e.Msg,
		e.Got.Lexeme, e.Got.Pos.Line, e.Got.Pos.Column,
		e.Last.Lexeme, e.Last.Pos.Line, e.Last.Pos.Column)
}

// Parse lexes and parses one input unit. It returns either a complete
// Program node or a single error; no partial tree is ever returned.
func Parse(input []byte) (*Node, error) {
	tokens, err := Scan(input)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// ParseTokens parses an already-lexed token sequence. The sequence is
// expected to end with an EOF token; a missing one is treated as if it
// were present at the position past the last token.
func ParseTokens(tokens []Token) (*Node, error) {
	p := &parser{tokens: tokens}
	return p.parseProgram()
}

// ParseExpression parses a single expression from the input. Used by
// tests and debugging tools; the grammar is the expression sub-grammar
// of Parse.
func ParseExpression(input []byte) (*Node, error) {
	tokens, err := Scan(input)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.check(TokenEOF) {
		return nil, p.failf("expected end of input")
	}
	return node, nil
}

// parser is an explicit cursor over the token sequence. It never consumes
// input destructively and never re-lexes; all lookahead is an index
// offset. nextID is the node identifier counter for this parse run, so
// independent runs produce identical numbering.
type parser struct {
	tokens []Token
	pos    int
	nextID int
}

func (p *parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return p.eofToken()
	}
	return p.tokens[p.pos]
}

func (p *parser) peekN(n int) Token {
	if p.pos+n >= len(p.tokens) {
		return p.eofToken()
	}
	return p.tokens[p.pos+n]
}

// eofToken synthesizes the EOF marker for a token sequence that lacks
// one, positioned just past the last real token so errors at end of
// input still point somewhere.
func (p *parser) eofToken() Token {
	tok := Token{Kind: TokenEOF, Pos: Position{Line: 1, Column: 1}}
	if n := len(p.tokens); n > 0 {
		last := p.tokens[n-1]
		tok.Pos = Position{Line: last.Pos.Line, Column: last.Pos.Column + len(last.Lexeme)}
	}
	return tok
}

func (p *parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return Token{}, p.failf("expected %q", kind.String())
}

func (p *parser) failf(format string, args ...any) *ParseError {
	err := &ParseError{
		Msg: fmt.Sprintf(format, args...),
		Got: p.peek(),
	}
	if p.pos > 0 && p.pos-1 < len(p.tokens) {
		err.Last = p.tokens[p.pos-1]
	}
	return err
}

// Node constructors. Identifiers are assigned here, once per node, and
// are strictly increasing in construction order.

func (p *parser) node(kind NodeKind) *Node {
	p.nextID++
	return &Node{ID: p.nextID, Kind: kind}
}

func (p *parser) leaf(kind NodeKind, tok Token) *Node {
	n := p.node(kind)
	n.Token = &tok
	return n
}

func (p *parser) terminal(label string, tok Token) *Node {
	n := p.node(KindTerminal)
	n.Label = label
	n.Token = &tok
	return n
}

func (p *parser) list(label string) *Node {
	n := p.node(KindList)
	n.Label = label
	return n
}

// Grammar rules.

func (p *parser) parseProgram() (*Node, error) {
	program := p.node(KindProgram)
	functions := p.list("Functions")
	enums := p.list("Enums")
	statements := p.list("Statements")

	for !p.check(TokenEOF) {
		switch {
		case p.check(TokenBegin) && p.peekN(1).Kind == TokenFunction:
			fn, err := p.parseFunction()
			if err != nil {
				return nil, err
			}
			functions.AddChild(fn)
		case p.check(TokenFunction):
			fn, err := p.parseFunction()
			if err != nil {
				return nil, err
			}
			functions.AddChild(fn)
		case p.check(TokenEnum):
			enum, err := p.parseEnum()
			if err != nil {
				return nil, err
			}
			enums.AddChild(enum)
		default:
			stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			statements.AddChild(stmt)
		}
	}

	program.AddChild(functions)
	program.AddChild(enums)
	program.AddChild(statements)
	return program, nil
}

// parseFunction parses ["begin"] "function" IDENT "(" params ")" ":" type stmt.
//
// Closing rule: a begin-function must close with "end function", except
// that a block body has already consumed its own "end", in which case
// only the trailing "function" keyword remains. Without "begin" the
// closing sequence is optional; the function may terminate implicitly at
// the next top-level construct or end of input.
func (p *parser) parseFunction() (*Node, error) {
	fn := p.node(KindFunction)

	withBegin := false
	if p.check(TokenBegin) {
		p.advance()
		withBegin = true
	}
	if _, err := p.expect(TokenFunction); err != nil {
		return nil, err
	}

	name, err := p.expect(TokenIdent)
	if err != nil {
		return nil, p.failf("expected function name")
	}
	fn.AddChild(p.terminal("FunctionName", name))

	if _, err := p.expect(TokenLParen); err != nil {
		return nil, err
	}
	params := p.list("Params")
	if !p.check(TokenRParen) {
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		params.AddChild(param)
		for p.check(TokenComma) {
			p.advance()
			param, err := p.parseParam()
			if err != nil {
				return nil, err
			}
			params.AddChild(param)
		}
	}
	fn.AddChild(params)
	if _, err := p.expect(TokenRParen); err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenColon); err != nil {
		return nil, err
	}
	retType, err := p.expectType()
	if err != nil {
		return nil, err
	}
	fn.AddChild(p.terminal("ReturnType", retType))

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	fn.AddChild(body)

	if withBegin {
		if body.Kind != KindBlock {
			if _, err := p.expect(TokenEnd); err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(TokenFunction); err != nil {
			return nil, err
		}
		return fn, nil
	}

	switch {
	case body.Kind != KindBlock && p.check(TokenEnd) && p.peekN(1).Kind == TokenFunction:
		p.advance()
		p.advance()
	case body.Kind == KindBlock && p.check(TokenFunction) && p.peekN(1).Kind != TokenIdent:
		// the "end" of "end function" was consumed by the block body;
		// a "function" starting a new declaration is left alone
		p.advance()
	}
	return fn, nil
}

func (p *parser) parseParam() (*Node, error) {
	param := p.node(KindParam)
	name, err := p.expect(TokenIdent)
	if err != nil {
		return nil, p.failf("expected parameter name")
	}
	param.AddChild(p.terminal("ParamName", name))
	if _, err := p.expect(TokenColon); err != nil {
		return nil, err
	}
	typ, err := p.expectType()
	if err != nil {
		return nil, err
	}
	param.AddChild(p.terminal("ParamType", typ))
	return param, nil
}

func (p *parser) expectType() (Token, error) {
	if p.peek().Kind.IsTypeKeyword() {
		return p.advance(), nil
	}
	return Token{}, p.failf("expected type")
}

// parseEnum parses "enum" IDENT "{" [IDENT ("," IDENT)*] "}" [";"].
//
// The trailing semicolon is required unless the next token is end of
// input or starts another top-level construct (function, enum, or a type
// keyword opening a declaration).
func (p *parser) parseEnum() (*Node, error) {
	enum := p.node(KindEnum)
	p.advance() // enum

	name, err := p.expect(TokenIdent)
	if err != nil {
		return nil, p.failf("expected enum name")
	}
	enum.AddChild(p.terminal("EnumName", name))

	if _, err := p.expect(TokenLBrace); err != nil {
		return nil, err
	}
	values := p.list("Values")
	if !p.check(TokenRBrace) {
		value, err := p.expect(TokenIdent)
		if err != nil {
			return nil, p.failf("expected enum value")
		}
		values.AddChild(p.leaf(KindEnumValue, value))
		for p.check(TokenComma) {
			p.advance()
			value, err := p.expect(TokenIdent)
			if err != nil {
				return nil, p.failf("expected enum value")
			}
			values.AddChild(p.leaf(KindEnumValue, value))
		}
	}
	enum.AddChild(values)
	if _, err := p.expect(TokenRBrace); err != nil {
		return nil, err
	}

	switch {
	case p.check(TokenSemicolon):
		p.advance()
	case p.check(TokenEOF), p.check(TokenFunction), p.check(TokenEnum):
	case p.peek().Kind.IsTypeKeyword():
	default:
		return nil, p.failf("expected %q after enum declaration", ";")
	}
	return enum, nil
}

// parseStatement dispatches on the current token, and on the next one
// when the current is "begin": "begin if" and "begin for" belong to the
// if/for parsers, not to a generic block.
func (p *parser) parseStatement() (*Node, error) {
	switch {
	case p.peek().Kind.IsTypeKeyword():
		return p.parseVarDecl()
	case p.check(TokenPrint):
		return p.parsePrint()
	case p.check(TokenRead):
		return p.parseRead()
	case p.check(TokenReturn):
		return p.parseReturn()
	case p.check(TokenIf):
		return p.parseIf()
	case p.check(TokenFor):
		return p.parseFor()
	case p.check(TokenBegin):
		switch p.peekN(1).Kind {
		case TokenIf:
			p.advance()
			return p.parseIf()
		case TokenFor:
			p.advance()
			return p.parseFor()
		}
		return p.parseBlock()
	}
	return p.parseExprStatement()
}

// parseVarDecl parses type ("[" INT "]")* IDENT ("," IDENT)* ";".
// Array dimensions must be integer literals, not general expressions.
func (p *parser) parseVarDecl() (*Node, error) {
	decl := p.node(KindVarDecl)
	decl.AddChild(p.terminal("Type", p.advance()))

	if p.check(TokenLBracket) {
		dims := p.list("Dimensions")
		for p.check(TokenLBracket) {
			p.advance()
			size, err := p.expect(TokenIntLiteral)
			if err != nil {
				return nil, p.failf("expected integer array dimension")
			}
			dims.AddChild(p.leaf(KindLiteral, size))
			if _, err := p.expect(TokenRBracket); err != nil {
				return nil, err
			}
		}
		decl.AddChild(dims)
	}

	names := p.list("Names")
	for {
		name, err := p.expect(TokenIdent)
		if err != nil {
			return nil, p.failf("expected variable name")
		}
		names.AddChild(p.leaf(KindVarDeclItem, name))
		if !p.check(TokenComma) {
			break
		}
		p.advance()
	}
	decl.AddChild(names)

	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	return decl, nil
}

func (p *parser) parsePrint() (*Node, error) {
	stmt := p.node(KindPrint)
	p.advance() // print
	expr, err := p.parseParenExpr()
	if err != nil {
		return nil, err
	}
	stmt.AddChild(expr)
	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *parser) parseRead() (*Node, error) {
	stmt := p.node(KindRead)
	p.advance() // read
	target, err := p.parseParenExpr()
	if err != nil {
		return nil, err
	}
	stmt.AddChild(target)
	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *parser) parseParenExpr() (*Node, error) {
	if _, err := p.expect(TokenLParen); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRParen); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseReturn parses "return" [expr] [";"]. The expression is omitted
// whenever the next token is one that can legally follow a statement in
// every context return may appear (";", "end", EOF, "else", "or"); the
// semicolon may be elided before the same followers.
func (p *parser) parseReturn() (*Node, error) {
	stmt := p.node(KindReturn)
	p.advance() // return

	if !p.returnTerminates() {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt.AddChild(expr)
	}

	if p.check(TokenSemicolon) {
		p.advance()
	} else if !p.returnTerminates() {
		return nil, p.failf("expected %q after return", ";")
	}
	return stmt, nil
}

func (p *parser) returnTerminates() bool {
	switch p.peek().Kind {
	case TokenSemicolon, TokenEnd, TokenEOF, TokenElse, TokenOr:
		return true
	}
	return false
}

// parseIf parses "if" "(" cond ")" stmt ("or" "if" "(" cond ")" stmt)*
// ["else" stmt] ["end"]. The closing "end" is bare and optional; it is
// consumed greedily unless it is followed by "for" or "function", which
// belong to an enclosing construct.
func (p *parser) parseIf() (*Node, error) {
	stmt := p.node(KindIf)
	p.advance() // if

	cond, err := p.parseParenExpr()
	if err != nil {
		return nil, err
	}
	stmt.AddChild(cond)

	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt.AddChild(then)

	for p.check(TokenOr) && p.peekN(1).Kind == TokenIf {
		branch := p.node(KindOrIfBranch)
		p.advance() // or
		p.advance() // if
		branchCond, err := p.parseParenExpr()
		if err != nil {
			return nil, err
		}
		branch.AddChild(branchCond)
		body, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		branch.AddChild(body)
		stmt.AddChild(branch)
	}

	if p.check(TokenElse) {
		p.advance()
		elseBody, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmt.AddChild(elseBody)
	}

	if p.check(TokenEnd) && p.peekN(1).Kind != TokenFor && p.peekN(1).Kind != TokenFunction {
		p.advance()
	}
	return stmt, nil
}

// parseFor parses "for" "(" IDENT "goes" "from" expr "to" expr ")" stmt
// ["end" "for"]. Only the exact "end for" pair closes the loop; a bare
// "end" after the body is left for the enclosing construct.
func (p *parser) parseFor() (*Node, error) {
	stmt := p.node(KindFor)
	p.advance() // for

	if _, err := p.expect(TokenLParen); err != nil {
		return nil, err
	}
	name, err := p.expect(TokenIdent)
	if err != nil {
		return nil, p.failf("expected loop variable name")
	}
	stmt.AddChild(p.terminal("LoopVariable", name))
	if _, err := p.expect(TokenGoes); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenFrom); err != nil {
		return nil, err
	}
	from, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	stmt.AddChild(from)
	if _, err := p.expect(TokenTo); err != nil {
		return nil, err
	}
	to, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	stmt.AddChild(to)
	if _, err := p.expect(TokenRParen); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt.AddChild(body)

	if p.check(TokenEnd) && p.peekN(1).Kind == TokenFor {
		p.advance()
		p.advance()
	}
	return stmt, nil
}

func (p *parser) parseBlock() (*Node, error) {
	block := p.node(KindBlock)
	p.advance() // begin

	for !p.check(TokenEnd) {
		if p.check(TokenEOF) {
			return nil, p.failf("expected %q", "end")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.AddChild(stmt)
	}
	p.advance() // end
	return block, nil
}

// parseExprStatement parses either "expr -> target ;" (an assignment:
// the left operand is the value, the right the destination) or a bare
// "expr ;" expression statement.
func (p *parser) parseExprStatement() (*Node, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	var stmt *Node
	if p.check(TokenArrow) {
		p.advance()
		target, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt = p.node(KindAssignment)
		stmt.AddChild(expr)
		stmt.AddChild(target)
	} else {
		stmt = p.node(KindExpressionStatement)
		stmt.AddChild(expr)
	}

	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	return stmt, nil
}

// Expression grammar: a precedence-climbing cascade, loosest binding
// first. All binary operators are left-associative.

func (p *parser) parseExpr() (*Node, error) {
	return p.parseOrExpr()
}

func (p *parser) binary(left *Node, op Token, right *Node) *Node {
	node := p.node(KindBinaryExpr)
	opNode := p.terminal("Operator", op)
	node.AddChild(left)
	node.AddChild(opNode)
	node.AddChild(right)
	return node
}

func (p *parser) parseOrExpr() (*Node, error) {
	left, err := p.parseAndExpr()
	if err != nil {
		return nil, err
	}
	for p.check(TokenOr) {
		// "or if" introduces an or-if branch of an enclosing if
		if p.peekN(1).Kind == TokenIf {
			break
		}
		op := p.advance()
		right, err := p.parseAndExpr()
		if err != nil {
			return nil, err
		}
		left = p.binary(left, op, right)
	}
	return left, nil
}

func (p *parser) parseAndExpr() (*Node, error) {
	left, err := p.parseEqualityExpr()
	if err != nil {
		return nil, err
	}
	for p.check(TokenAnd) {
		op := p.advance()
		right, err := p.parseEqualityExpr()
		if err != nil {
			return nil, err
		}
		left = p.binary(left, op, right)
	}
	return left, nil
}

func (p *parser) parseEqualityExpr() (*Node, error) {
	left, err := p.parseRelationalExpr()
	if err != nil {
		return nil, err
	}
	for p.check(TokenEQ) || p.check(TokenNE) {
		op := p.advance()
		right, err := p.parseRelationalExpr()
		if err != nil {
			return nil, err
		}
		left = p.binary(left, op, right)
	}
	return left, nil
}

func (p *parser) parseRelationalExpr() (*Node, error) {
	left, err := p.parseAdditiveExpr()
	if err != nil {
		return nil, err
	}
	for p.check(TokenLT) || p.check(TokenLE) || p.check(TokenGT) || p.check(TokenGE) {
		op := p.advance()
		right, err := p.parseAdditiveExpr()
		if err != nil {
			return nil, err
		}
		left = p.binary(left, op, right)
	}
	return left, nil
}

func (p *parser) parseAdditiveExpr() (*Node, error) {
	left, err := p.parseMultiplicativeExpr()
	if err != nil {
		return nil, err
	}
	for p.check(TokenPlus) || p.check(TokenMinus) {
		op := p.advance()
		right, err := p.parseMultiplicativeExpr()
		if err != nil {
			return nil, err
		}
		left = p.binary(left, op, right)
	}
	return left, nil
}

func (p *parser) parseMultiplicativeExpr() (*Node, error) {
	left, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}
	for p.check(TokenStar) || p.check(TokenSlash) || p.check(TokenPercent) {
		op := p.advance()
		right, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		left = p.binary(left, op, right)
	}
	return left, nil
}

func (p *parser) parseUnaryExpr() (*Node, error) {
	if p.check(TokenMinus) || p.check(TokenNot) {
		op := p.advance()
		operand, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		node := p.node(KindUnaryExpr)
		opNode := p.terminal("Operator", op)
		node.AddChild(opNode)
		node.AddChild(operand)
		return node, nil
	}
	return p.parsePrimary()
}

// parsePrimary parses a literal, a parenthesized expression, or an
// identifier. An identifier followed by "(" is a call; followed by one
// or more "["expr"]" it is an array reference; otherwise it is a scalar
// variable reference.
func (p *parser) parsePrimary() (*Node, error) {
	switch p.peek().Kind {
	case TokenIntLiteral, TokenFloatLiteral, TokenStringLiteral, TokenTrue, TokenFalse:
		return p.leaf(KindLiteral, p.advance()), nil

	case TokenLParen:
		return p.parseParenExpr()

	case TokenIdent:
		name := p.advance()

		if p.check(TokenLParen) {
			call := p.node(KindCall)
			call.AddChild(p.terminal("FunctionName", name))
			p.advance() // (
			args := p.list("Arguments")
			if !p.check(TokenRParen) {
				arg, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				args.AddChild(arg)
				for p.check(TokenComma) {
					p.advance()
					arg, err := p.parseExpr()
					if err != nil {
						return nil, err
					}
					args.AddChild(arg)
				}
			}
			call.AddChild(args)
			if _, err := p.expect(TokenRParen); err != nil {
				return nil, err
			}
			return call, nil
		}

		variable := p.node(KindVariable)
		variable.AddChild(p.terminal("VariableName", name))
		for p.check(TokenLBracket) {
			p.advance()
			index, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			variable.AddChild(index)
			if _, err := p.expect(TokenRBracket); err != nil {
				return nil, err
			}
		}
		return variable, nil
	}

	return nil, p.failf("expected expression")
}
