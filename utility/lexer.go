package utility

import (
	"fmt"
	"strconv"
)

// tokenKind enumerates lexical classes.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPow // "**" or "^"
	tokLParen
	tokRParen
	tokComma
)

var tokenNames = [...]string{
	tokEOF:    "end of input",
	tokNumber: "number",
	tokIdent:  "identifier",
	tokPlus:   "'+'",
	tokMinus:  "'-'",
	tokStar:   "'*'",
	tokSlash:  "'/'",
	tokPow:    "'**'",
	tokLParen: "'('",
	tokRParen: "')'",
	tokComma:  "','",
}

func (k tokenKind) String() string { return tokenNames[k] }

// token is one lexeme with its byte offset in the source.
type token struct {
	kind tokenKind
	text string
	num  float64
	pos  int
}

func (t token) describe() string {
	switch t.kind {
	case tokNumber, tokIdent:
		return fmt.Sprintf("%s %q", t.kind, t.text)
	default:
		return t.kind.String()
	}
}

// lex splits src into tokens, ending with tokEOF.
//
// Complexity: O(len(src)).
func lex(src string) ([]token, error) {
	var (
		toks []token
		i    int
		n    = len(src)
	)
	for i < n {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c) || (c == '.' && i+1 < n && isDigit(src[i+1])):
			start := i
			i = scanNumber(src, i)
			v, err := strconv.ParseFloat(src[start:i], 64)
			if err != nil {
				return nil, &SyntaxError{Expr: src, Offset: start, Msg: fmt.Sprintf("malformed number %q", src[start:i])}
			}
			toks = append(toks, token{kind: tokNumber, text: src[start:i], num: v, pos: start})
		case isIdentStart(c):
			start := i
			for i < n && isIdentPart(src[i]) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: src[start:i], pos: start})
		case c == '*' && i+1 < n && src[i+1] == '*':
			toks = append(toks, token{kind: tokPow, text: "**", pos: i})
			i += 2
		default:
			kind, ok := singleCharTokens[c]
			if !ok {
				return nil, &SyntaxError{Expr: src, Offset: i, Msg: fmt.Sprintf("unexpected character %q", c)}
			}
			toks = append(toks, token{kind: kind, text: string(c), pos: i})
			i++
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: n})

	return toks, nil
}

var singleCharTokens = map[byte]tokenKind{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'/': tokSlash,
	'^': tokPow,
	'(': tokLParen,
	')': tokRParen,
	',': tokComma,
}

// scanNumber consumes digits, an optional fraction and an optional exponent.
// Validation is left to strconv.ParseFloat.
func scanNumber(src string, i int) int {
	n := len(src)
	for i < n && isDigit(src[i]) {
		i++
	}
	if i < n && src[i] == '.' {
		i++
		for i < n && isDigit(src[i]) {
			i++
		}
	}
	if i < n && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < n && (src[j] == '+' || src[j] == '-') {
			j++
		}
		// Only an exponent when digits follow; "2e" lexes as 2 then the identifier e.
		if j < n && isDigit(src[j]) {
			i = j
			for i < n && isDigit(src[i]) {
				i++
			}
		}
	}

	return i
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isIdentStart(c byte) bool { return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isIdentPart(c byte) bool  { return isIdentStart(c) || isDigit(c) }
