package lexer

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/KimNorgaard/go-tmplex/token"
)

// Lexer transforms template expression source into a stream of tokens.
type Lexer struct {
	input []byte
	pos   int            // byte offset of the first unconsumed character
	cur   token.Position // position of input[pos]
}

// New creates and returns a new Lexer.
func New(input []byte) *Lexer {
	return &Lexer{input: input, cur: token.Position{Line: 1, Column: 0}}
}

// NextToken scans the input and returns the next token. Once the input is
// exhausted, or the remaining input matches no rule, every call returns an
// EOF token at the current position. In the no-match case Consumed reports
// fewer bytes than the input holds; that is the only failure signal.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return token.Token{Type: token.EOF, Pos: l.cur}
	}

	// Fixed symbol and keyword rules, in priority order.
	for _, sym := range token.Symbols {
		if bytes.HasPrefix(l.input[l.pos:], []byte(sym.Literal)) {
			tok := token.Token{Type: sym.Type, Literal: sym.Literal, Lexeme: sym.Literal, Pos: l.cur}
			l.advance(len(sym.Literal))
			return tok
		}
	}

	if tok, ok := l.lexLiteral(); ok {
		return tok
	}

	return token.Token{Type: token.EOF, Pos: l.cur}
}

// Consumed reports how many input bytes have been tokenized or skipped as
// whitespace. After NextToken returns EOF, a value smaller than the input
// length means lexing stopped at unrecognized input.
func (l *Lexer) Consumed() int {
	return l.pos
}

// Pos returns the current cursor position.
func (l *Lexer) Pos() token.Position {
	return l.cur
}

// advance consumes n bytes of input, updating the position once per rune.
func (l *Lexer) advance(n int) {
	end := l.pos + n
	for l.pos < end {
		r, size := utf8.DecodeRune(l.input[l.pos:end])
		l.cur = l.cur.Advance(r)
		l.pos += size
	}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.cur = l.cur.Advance(rune(l.input[l.pos]))
			l.pos++
		default:
			return
		}
	}
}

// subLexer recognizes one literal grammar at the start of src, returning the
// token type, the processed literal text, and the number of bytes matched.
type subLexer func(src []byte) (typ token.Type, literal string, n int, ok bool)

// subLexers in tie-break order: on equal consumption the earlier rule wins.
var subLexers = []subLexer{lexString, lexIdentifier, lexNumber}

// lexLiteral runs every sub-lexer against the remaining input and keeps the
// candidate that consumed the most bytes.
func (l *Lexer) lexLiteral() (token.Token, bool) {
	src := l.input[l.pos:]
	var best token.Token
	bestN := 0
	for _, sub := range subLexers {
		typ, lit, n, ok := sub(src)
		if ok && n > bestN {
			best = token.Token{Type: typ, Literal: lit, Lexeme: string(src[:n]), Pos: l.cur}
			bestN = n
		}
	}
	if bestN == 0 {
		return token.Token{}, false
	}
	l.advance(bestN)
	return best, true
}

// lexString recognizes a double-quoted string literal and returns its
// unescaped content. Unterminated strings, invalid escapes and unescaped
// control characters are non-matches, never partial tokens.
func lexString(src []byte) (token.Type, string, int, bool) {
	if len(src) == 0 || src[0] != '"' {
		return "", "", 0, false
	}
	var sb strings.Builder
	i := 1
	for i < len(src) {
		if src[i] == '"' {
			return token.STRING, sb.String(), i + 1, true
		}
		if src[i] == '\\' {
			r, n, ok := lexEscape(src[i:])
			if !ok {
				return "", "", 0, false
			}
			sb.WriteRune(r)
			i += n
			continue
		}
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size == 1 {
			return "", "", 0, false
		}
		if isForbiddenControlChar(r) {
			return "", "", 0, false
		}
		sb.WriteRune(r)
		i += size
	}
	// Unterminated.
	return "", "", 0, false
}

// lexEscape decodes the escape sequence at the start of src, which begins
// with a backslash, returning the rune and the number of source bytes.
func lexEscape(src []byte) (rune, int, bool) {
	if len(src) < 2 {
		return 0, 0, false
	}
	switch src[1] {
	case '"':
		return '"', 2, true
	case '\\':
		return '\\', 2, true
	case '/':
		return '/', 2, true
	case 'b':
		return '\b', 2, true
	case 'f':
		return '\f', 2, true
	case 'n':
		return '\n', 2, true
	case 'r':
		return '\r', 2, true
	case 't':
		return '\t', 2, true
	case 'u':
		val, ok := lexHex4(src[2:])
		if !ok {
			return 0, 0, false
		}
		if val >= 0xD800 && val <= 0xDFFF {
			// Surrogate code points are not valid scalar values.
			return 0, 0, false
		}
		return val, 6, true
	}
	return 0, 0, false
}

func lexHex4(src []byte) (rune, bool) {
	if len(src) < 4 {
		return 0, false
	}
	var val rune
	for _, c := range src[:4] {
		var d rune
		switch {
		case '0' <= c && c <= '9':
			d = rune(c - '0')
		case 'a' <= c && c <= 'f':
			d = rune(c-'a') + 10
		case 'A' <= c && c <= 'F':
			d = rune(c-'A') + 10
		default:
			return 0, false
		}
		val = val*16 + d
	}
	return val, true
}

// lexIdentifier recognizes a letter or underscore followed by letters,
// digits and underscores.
func lexIdentifier(src []byte) (token.Type, string, int, bool) {
	if len(src) == 0 || !isIdentStart(src[0]) {
		return "", "", 0, false
	}
	i := 1
	for i < len(src) && isIdentPart(src[i]) {
		i++
	}
	return token.IDENT, string(src[:i]), i, true
}

// lexNumber recognizes a decimal literal: optional sign, digits, optional
// fraction and optional exponent. The fraction dot and the exponent marker
// are consumed only when well-formed digits follow, so the longest valid
// prefix wins: "1.x" lexes the number 1 and leaves ".x" behind.
func lexNumber(src []byte) (token.Type, string, int, bool) {
	i := 0
	if i < len(src) && src[i] == '-' {
		i++
	}
	start := i
	i = consumeDigits(src, i)
	if i == start {
		return "", "", 0, false
	}
	if i+1 < len(src) && src[i] == '.' && isDigit(src[i+1]) {
		i = consumeDigits(src, i+1)
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if k := consumeDigits(src, j); k > j {
			i = k
		}
	}
	return token.NUMBER, string(src[:i]), i, true
}

func consumeDigits(src []byte, i int) int {
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	return i
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isForbiddenControlChar(ch rune) bool {
	return (ch >= 0x00 && ch <= 0x08) || (ch >= 0x0A && ch <= 0x1F) || ch == 0x7F
}
