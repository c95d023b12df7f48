package parser

type Position struct {
	Line   int
	Column int
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError

	// Literals
	TokenIdent
	TokenIntLiteral
	TokenFloatLiteral
	TokenStringLiteral
	TokenTrue
	TokenFalse

	// Keywords
	TokenBegin
	TokenEnd
	TokenFunction
	TokenEnum
	TokenIf
	TokenElse
	TokenOr
	TokenAnd
	TokenNot
	TokenFor
	TokenGoes
	TokenFrom
	TokenTo
	TokenPrint
	TokenRead
	TokenReturn

	// Type keywords
	TokenInt
	TokenFloat
	TokenBool
	TokenString

	// Operators and punctuation
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenSemicolon
	TokenComma
	TokenColon

	TokenArrow
	TokenEQ
	TokenNE
	TokenLT
	TokenLE
	TokenGT
	TokenGE
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:           "EOF",
	TokenError:         "Error",
	TokenIdent:         "Identifier",
	TokenIntLiteral:    "IntLiteral",
	TokenFloatLiteral:  "FloatLiteral",
	TokenStringLiteral: "StringLiteral",
	TokenTrue:          "true",
	TokenFalse:         "false",
	TokenBegin:         "begin",
	TokenEnd:           "end",
	TokenFunction:      "function",
	TokenEnum:          "enum",
	TokenIf:            "if",
	TokenElse:          "else",
	TokenOr:            "or",
	TokenAnd:           "and",
	TokenNot:           "not",
	TokenFor:           "for",
	TokenGoes:          "goes",
	TokenFrom:          "from",
	TokenTo:            "to",
	TokenPrint:         "print",
	TokenRead:          "read",
	TokenReturn:        "return",
	TokenInt:           "int",
	TokenFloat:         "float",
	TokenBool:          "bool",
	TokenString:        "string",
	TokenLParen:        "(",
	TokenRParen:        ")",
	TokenLBrace:        "{",
	TokenRBrace:        "}",
	TokenLBracket:      "[",
	TokenRBracket:      "]",
	TokenSemicolon:     ";",
	TokenComma:         ",",
	TokenColon:         ":",
	TokenArrow:         "->",
	TokenEQ:            "=",
	TokenNE:            "!=",
	TokenLT:            "<",
	TokenLE:            "<=",
	TokenGT:            ">",
	TokenGE:            ">=",
	TokenPlus:          "+",
	TokenMinus:         "-",
	TokenStar:          "*",
	TokenSlash:         "/",
	TokenPercent:       "%",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Token struct {
	Kind   TokenKind
	Lexeme string
	Pos    Position
}

var keywords = map[string]TokenKind{
	"begin":    TokenBegin,
	"end":      TokenEnd,
	"function": TokenFunction,
	"enum":     TokenEnum,
	"if":       TokenIf,
	"else":     TokenElse,
	"or":       TokenOr,
	"and":      TokenAnd,
	"not":      TokenNot,
	"for":      TokenFor,
	"goes":     TokenGoes,
	"from":     TokenFrom,
	"to":       TokenTo,
	"print":    TokenPrint,
	"read":     TokenRead,
	"return":   TokenReturn,
	"int":      TokenInt,
	"float":    TokenFloat,
	"bool":     TokenBool,
	"string":   TokenString,
	"true":     TokenTrue,
	"false":    TokenFalse,
}

func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdent
}

// IsTypeKeyword reports whether k marks the element type of a declaration.
func (k TokenKind) IsTypeKeyword() bool {
	switch k {
	case TokenInt, TokenFloat, TokenBool, TokenString:
		return true
	}
	return false
}
