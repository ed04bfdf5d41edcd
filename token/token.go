package token

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Type is the type of a token. For symbolic and keyword tokens the value is
// the token's canonical source spelling.
type Type string

const (
	// Special tokens
	EOF Type = "EOF" // End of input, or nothing at the cursor matched

	// Literals
	IDENT  Type = "IDENT"  // Name, items
	NUMBER Type = "NUMBER" // 123, 3.14, 6.02e23
	STRING Type = "STRING" // "hello world"
	BOOL   Type = "BOOL"   // true, false

	// Operators and delimiters
	DOLLAR     Type = "$"
	COLON      Type = ":"
	DOT        Type = "."
	COMMA      Type = ","
	EQ         Type = "=="
	GT         Type = ">"
	LT         Type = "<"
	AND        Type = "&&"
	OR         Type = "||"
	LBRACE     Type = "{"
	RBRACE     Type = "}"
	LDELIM     Type = "{{"
	RDELIM     Type = "}}"
	LBRACK     Type = "["
	RBRACK     Type = "]"
	LPAREN     Type = "("
	RPAREN     Type = ")"
	UNDERSCORE Type = "_"
	ASSIGN     Type = ":="
)

// SourceName is the fixed logical source name used in position reporting.
const SourceName = "template"

// Position is the location of a token's first character. Line is 1-based;
// Column counts characters consumed on the current line, starting at 0.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", SourceName, p.Line, p.Column)
}

// Advance returns the position after consuming ch: a newline starts the next
// line at column 0, a carriage return does not move the cursor, and any other
// character advances the column by one.
func (p Position) Advance(ch rune) Position {
	switch ch {
	case '\n':
		p.Line++
		p.Column = 0
	case '\r':
	default:
		p.Column++
	}
	return p
}

// Token represents a lexical token. Literal holds the processed payload: the
// unescaped content for STRING, the source text for IDENT and NUMBER,
// "true" or "false" for BOOL, and the canonical spelling for symbols. Lexeme
// holds the exact source substring consumed, quotes and escapes included.
// Tokens are plain comparable values.
type Token struct {
	Type    Type
	Literal string
	Lexeme  string
	Pos     Position
}

// Bool returns the value of a BOOL token.
func (t Token) Bool() bool {
	return t.Literal == "true"
}

// Decimal returns the value of a NUMBER token as an arbitrary-precision
// decimal, preserving the literal's exact decimal value rather than rounding
// through a binary float. The lexer only emits NUMBER for literals that
// satisfy the numeric grammar, so the conversion cannot fail; for any other
// token type Decimal returns nil.
func (t Token) Decimal() *apd.Decimal {
	if t.Type != NUMBER {
		return nil
	}
	d, _, err := apd.NewFromString(t.Literal)
	if err != nil {
		return nil
	}
	return d
}

// String returns the canonical source spelling of the token. A STRING token
// is re-wrapped in double quotes without re-escaping its content, so the
// result is meant for diagnostics and is not guaranteed to re-lex when the
// content contains quote or backslash characters.
func (t Token) String() string {
	switch t.Type {
	case STRING:
		return `"` + t.Literal + `"`
	case IDENT, NUMBER, BOOL:
		return t.Literal
	case EOF:
		return ""
	default:
		return string(t.Type)
	}
}

// Symbol pairs a keyword or symbol spelling with its token type.
type Symbol struct {
	Literal string
	Type    Type
}

// Symbols is the keyword and symbol table in matching priority order. Longer
// sequences come before their prefixes (":=" before ":", "{{" before "{"),
// and the boolean keywords come first so they win over the identifier rule.
var Symbols = []Symbol{
	{"true", BOOL},
	{"false", BOOL},
	{"_", UNDERSCORE},
	{".", DOT},
	{",", COMMA},
	{"$", DOLLAR},
	{":=", ASSIGN},
	{":", COLON},
	{"==", EQ},
	{">", GT},
	{"<", LT},
	{"&&", AND},
	{"||", OR},
	{"{{", LDELIM},
	{"{", LBRACE},
	{"}}", RDELIM},
	{"}", RBRACE},
	{"[", LBRACK},
	{"]", RBRACK},
	{")", RPAREN},
	{"(", LPAREN},
}
