package lexer

import "fmt"

// TokenType identifies the lexical category of a Token.
type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF

	IDENT
	INT
	FLOAT
	STRING

	// Keywords
	WAKE
	SLEEP
	HUNT
	BOX
	PAWS
	PURR
	HISS
	CHASE
	BRING
	MEOW

	keywordEnd

	// Single-character operators and delimiters
	PLUS
	MINUS
	ASTERISK
	SLASH
	PERCENT
	LESS
	GREATER
	EXCLAMATION
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	COMMA
	SEMICOLON

	// Multi-character operators
	EQ_EQ
	NOT_EQ
	LESS_EQ
	GREATER_EQ
	AND_AND
	OR_OR
)

var tokenNames = map[TokenType]string{
	ILLEGAL:     "ILLEGAL",
	EOF:         "EOF",
	IDENT:       "IDENT",
	INT:         "INT",
	FLOAT:       "FLOAT",
	STRING:      "STRING",
	WAKE:        "Wake",
	SLEEP:       "Sleep",
	HUNT:        "Hunt",
	BOX:         "Box",
	PAWS:        "paws",
	PURR:        "Purr",
	HISS:        "Hiss",
	CHASE:       "Chase",
	BRING:       "Bring",
	MEOW:        "Meow",
	PLUS:        "+",
	MINUS:       "-",
	ASTERISK:    "*",
	SLASH:       "/",
	PERCENT:     "%",
	LESS:        "<",
	GREATER:     ">",
	EXCLAMATION: "!",
	LPAREN:      "(",
	RPAREN:      ")",
	LBRACE:      "{",
	RBRACE:      "}",
	COMMA:       ",",
	SEMICOLON:   ";",
	EQ_EQ:       "==",
	NOT_EQ:      "!=",
	LESS_EQ:     "<=",
	GREATER_EQ:  ">=",
	AND_AND:     "&&",
	OR_OR:       "||",
}

// String renders the token type name used in diagnostics, e.g. "expected Sleep".
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// keywords maps the case-sensitive keyword spelling to its token type.
// Keyword matching is case-sensitive: "Wake" is a keyword, "wake" is an identifier.
var keywords = map[string]TokenType{
	"Wake":  WAKE,
	"Sleep": SLEEP,
	"Hunt":  HUNT,
	"Box":   BOX,
	"paws":  PAWS,
	"Purr":  PURR,
	"Hiss":  HISS,
	"Chase": CHASE,
	"Bring": BRING,
	"Meow":  MEOW,
}

// LookupIdent classifies a raw identifier lexeme as a keyword or IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Position is a 1-based source coordinate.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical unit. Literal holds the source spelling for
// identifiers, numbers, keywords and operators, and the escape-decoded
// contents for STRING; it is empty for EOF.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// NewToken constructs a Token at the given position.
func NewToken(t TokenType, literal string, pos Position) Token {
	return Token{Type: t, Literal: literal, Pos: pos}
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q, %s)", t.Type, t.Literal, t.Pos)
}
