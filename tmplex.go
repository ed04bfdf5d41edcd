package tmplex

import (
	"github.com/KimNorgaard/go-tmplex/lexer"
	"github.com/KimNorgaard/go-tmplex/token"
)

// Tokenize scans input and returns its tokens in source order. The trailing
// EOF token is not included. If part of the input matches no rule, the slice
// covers only the input before the failure point; use TokenizeAll to detect
// that case.
func Tokenize(input []byte) []token.Token {
	toks, _ := TokenizeAll(input)
	return toks
}

// TokenizeAll scans input and returns its tokens along with the number of
// input bytes consumed. A consumed count smaller than len(input) means
// lexing stopped at unrecognized input and the token slice is incomplete;
// downstream parsers should treat that as a syntax error at the position
// just past the last token.
func TokenizeAll(input []byte) ([]token.Token, int) {
	l := lexer.New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			return toks, l.Consumed()
		}
		toks = append(toks, tok)
	}
}
