/*
Package tmplex tokenizes a small template expression language in the style of
Go's text/template: {{ and }} delimiters, dotted field access on $, boolean
and comparison operators, and string, number and identifier literals.

The package converts raw source text into a flat sequence of positioned
tokens for a downstream parser. Tokenize is the one-call entry point:

	toks := tmplex.Tokenize([]byte(`{{ $.Name == "Bob" }}`))
	// toks[0].Type == token.LDELIM, toks[1].Type == token.DOLLAR, ...

For a pull-based stream, use the lexer package directly:

	l := lexer.New(src)
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		// ...
	}

Lexing has exactly one failure mode: when the remaining input matches no
rule, the token stream simply ends. Callers that need to distinguish a clean
lex from a truncated one compare the consumed length against the input
length:

	toks, n := tmplex.TokenizeAll(src)
	if n < len(src) {
		// unrecognized input just past the last token
	}

Every token carries the line and column of its first character; lines are
1-based and columns are 0-based, counting characters. Numeric literals keep
full decimal precision: Token.Decimal exposes the value as a
github.com/cockroachdb/apd/v3 decimal rather than a float64.
*/
package tmplex
